// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of expgen

// Package render serializes the resolved experiment list into the three
// generated artifacts: the accessor file, the metadata file and the
// build-tag mapping. Rendering is deterministic: identical input yields
// byte-identical output, since downstream tooling diffs the artifacts.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/expgen/expgen/pkg/defaults"
	"github.com/expgen/expgen/pkg/experiments"
)

// Mode selects how accessors decide whether an experiment is active.
type Mode int

const (
	// ModeTunable generates accessors that consult the runtime lookup by
	// positional index, so flags can be toggled without rebuilding.
	ModeTunable Mode = iota

	// ModeFixed bakes the activation decision in at generation time.
	ModeFixed
)

// ParseMode parses the --mode option value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "tunable":
		return ModeTunable, nil
	case "fixed":
		return ModeFixed, nil
	default:
		return ModeTunable, fmt.Errorf("unknown mode %q, expected fixed or tunable", s)
	}
}

func (m Mode) String() string {
	if m == ModeFixed {
		return "fixed"
	}
	return "tunable"
}

// Options configure a rendering run.
type Options struct {
	Mode Mode

	// GoPackage is the package clause of the generated Go artifacts.
	GoPackage string

	// RuntimeImport is the import path of the runtime support package.
	RuntimeImport string

	// OutputDir receives the generated Go artifacts.
	OutputDir string

	// BzlPath is the path of the build-tag mapping artifact.
	BzlPath string
}

func (o Options) withDefaults() Options {
	if o.GoPackage == "" {
		o.GoPackage = defaults.GoPackage
	}
	if o.RuntimeImport == "" {
		o.RuntimeImport = defaults.RuntimeImportPath
	}
	if o.OutputDir == "" {
		o.OutputDir = defaults.OutputDir
	}
	if o.BzlPath == "" {
		o.BzlPath = defaults.BzlFile
	}
	return o
}

// Artifact is one fully rendered output file.
type Artifact struct {
	Path string
	Data []byte
}

// Artifacts renders all three artifacts into memory. Nothing touches the
// file system here; a failed run must not leave partial output behind.
func Artifacts(resolved []experiments.Resolved, opts Options) []Artifact {
	opts = opts.withDefaults()
	return []Artifact{
		{
			Path: filepath.Join(opts.OutputDir, defaults.AccessorsFile),
			Data: renderAccessors(resolved, opts),
		},
		{
			Path: filepath.Join(opts.OutputDir, defaults.MetadataFile),
			Data: renderMetadata(resolved, opts),
		},
		{
			Path: opts.BzlPath,
			Data: renderBuildMap(resolved),
		},
	}
}

// Write overwrites every artifact in full.
func Write(artifacts []Artifact) error {
	for _, artifact := range artifacts {
		if dir := filepath.Dir(artifact.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(artifact.Path, artifact.Data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", artifact.Path, err)
		}
	}
	return nil
}

// SnakeToPascal converts an experiment name to the accessor naming style:
// foo_bar becomes FooBar.
func SnakeToPascal(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// SnakeToUpper converts an experiment name to the inclusion marker naming
// style: foo_bar becomes FOO_BAR.
func SnakeToUpper(s string) string {
	return strings.ToUpper(s)
}

func goBanner(b *strings.Builder, explainer string) {
	b.WriteString("// SPDX-License-Identifier: Apache-2.0\n")
	b.WriteString("// Copyright Authors of expgen\n\n")
	b.WriteString("// Code generated by expgen. DO NOT EDIT.\n")
	if explainer != "" {
		b.WriteString("//\n")
		for _, line := range strings.Split(strings.TrimSpace(explainer), "\n") {
			if line == "" {
				b.WriteString("//\n")
				continue
			}
			b.WriteString("// " + line + "\n")
		}
	}
	b.WriteString("\n")
}
