// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of expgen

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expgen/expgen/pkg/experiments"
)

// renderMetadata emits the metadata artifact. In fixed mode the rollout
// decision is already baked into the accessors and no table is needed, so
// only the package clause is emitted.
func renderMetadata(resolved []experiments.Resolved, opts Options) []byte {
	var b strings.Builder
	goBanner(&b, "")
	fmt.Fprintf(&b, "package %s\n", opts.GoPackage)

	if opts.Mode == ModeFixed {
		return []byte(b.String())
	}

	fmt.Fprintf(&b, "\nimport (\n\texpruntime %q\n)\n", opts.RuntimeImport)

	for _, exp := range resolved {
		pascal := SnakeToPascal(exp.Name)
		b.WriteString("\n")
		fmt.Fprintf(&b, "const description%s = %s\n", pascal, strconv.Quote(exp.Description))
		fmt.Fprintf(&b, "const additionalConstraints%s = \"\"\n", pascal)
	}

	b.WriteString("\n// Metadata is the experiment metadata table, in document order.\n")
	b.WriteString("var Metadata = [NumExperiments]expruntime.ExperimentMetadata{\n")
	for _, exp := range resolved {
		pascal := SnakeToPascal(exp.Name)
		fmt.Fprintf(&b, "\t{Name: %s, Description: description%s, AdditionalConstraints: additionalConstraints%s, Default: %s, AllowInFuzzing: %t},\n",
			strconv.Quote(exp.Name), pascal, pascal, exp.Policy.DefaultExpr(), exp.AllowInFuzzing)
	}
	b.WriteString("}\n")

	b.WriteString("\nfunc init() {\n\texpruntime.Register(Metadata[:])\n}\n")
	return []byte(b.String())
}
