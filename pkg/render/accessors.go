// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of expgen

package render

import (
	"fmt"
	"strings"

	"github.com/expgen/expgen/pkg/defaults"
	"github.com/expgen/expgen/pkg/experiments"
)

const accessorsExplainer = `This file contains the generated part of the experiments API.

Two symbols are generated for each experiment. For the experiment named
new_car_project:

- a function IsNewCarProjectEnabled() reporting whether the experiment
  should be enabled at runtime.

- a constant EXPERIMENT_IS_INCLUDED_NEW_CAR_PROJECT that is present if the
  experiment *could* be enabled at runtime. If the experiment brings
  significant bloat, the constant lets size-sensitive builds compile the
  experiment code path out entirely.

In tunable mode accessors consult the runtime lookup table, so experiments
can be toggled without rebuilding. In fixed mode the rollout decision is
baked in at generation time.`

// renderAccessors emits the accessor artifact: one accessor and inclusion
// marker per experiment, plus the aggregate count.
func renderAccessors(resolved []experiments.Resolved, opts Options) []byte {
	var b strings.Builder
	goBanner(&b, accessorsExplainer)
	fmt.Fprintf(&b, "package %s\n", opts.GoPackage)

	if needsRuntimeImport(resolved, opts.Mode) {
		fmt.Fprintf(&b, "\nimport (\n\texpruntime %q\n)\n", opts.RuntimeImport)
	}

	for _, exp := range resolved {
		pascal := SnakeToPascal(exp.Name)
		marker := defaults.MarkerPrefix + SnakeToUpper(exp.Name)

		b.WriteString("\n")
		switch opts.Mode {
		case ModeFixed:
			if expr, ok := exp.Policy.MarkerExpr(); ok {
				fmt.Fprintf(&b, "const %s = %s\n\n", marker, expr)
			}
			fmt.Fprintf(&b, "func Is%sEnabled() bool { %s }\n", pascal, exp.Policy.ReturnExpr())
		default:
			fmt.Fprintf(&b, "const %s = true\n\n", marker)
			fmt.Fprintf(&b, "func Is%sEnabled() bool { return expruntime.Enabled(%d) }\n", pascal, exp.Index)
		}
	}

	b.WriteString("\n// NumExperiments is the number of declared experiments.\n")
	fmt.Fprintf(&b, "const NumExperiments = %d\n", len(resolved))
	return []byte(b.String())
}

func needsRuntimeImport(resolved []experiments.Resolved, mode Mode) bool {
	if mode == ModeTunable {
		return len(resolved) > 0
	}
	for _, exp := range resolved {
		if exp.Policy == experiments.PolicyDebugOnly {
			return true
		}
	}
	return false
}
