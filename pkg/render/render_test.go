// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of expgen

package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expgen/expgen/pkg/experiments"
)

func resolvedFixture() []experiments.Resolved {
	return []experiments.Resolved{
		{
			Definition: experiments.Definition{
				Name:           "foo_bar",
				Description:    "a \"quoted\" description",
				TestTags:       []string{"core"},
				AllowInFuzzing: true,
				Index:          0,
			},
			Policy: experiments.PolicyEnabled,
		},
		{
			Definition: experiments.Definition{
				Name:     "broken_thing",
				TestTags: []string{"core", "extra"},
				Index:    1,
			},
			Policy: experiments.PolicyBroken,
		},
		{
			Definition: experiments.Definition{
				Name:           "off_thing",
				TestTags:       []string{"core"},
				AllowInFuzzing: true,
				Index:          2,
			},
			Policy: experiments.PolicyDisabled,
		},
		{
			Definition: experiments.Definition{
				Name:           "dbg_thing",
				TestTags:       []string{"debug_tags"},
				AllowInFuzzing: true,
				Index:          3,
			},
			Policy: experiments.PolicyDebugOnly,
		},
	}
}

func artifactByName(t *testing.T, artifacts []Artifact, name string) string {
	t.Helper()
	for _, artifact := range artifacts {
		if filepath.Base(artifact.Path) == name {
			return string(artifact.Data)
		}
	}
	t.Fatalf("no artifact named %s", name)
	return ""
}

func TestSnakeToPascal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "foo_bar", want: "FooBar"},
		{in: "monitoring_experiment", want: "MonitoringExperiment"},
		{in: "single", want: "Single"},
		{in: "double__underscore", want: "DoubleUnderscore"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SnakeToPascal(tt.in))
		})
	}
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("fixed")
	require.NoError(t, err)
	assert.Equal(t, ModeFixed, mode)

	mode, err = ParseMode("tunable")
	require.NoError(t, err)
	assert.Equal(t, ModeTunable, mode)

	_, err = ParseMode("compiled")
	assert.Error(t, err)
}

func TestAccessorsTunable(t *testing.T) {
	artifacts := Artifacts(resolvedFixture(), Options{Mode: ModeTunable})
	accessors := artifactByName(t, artifacts, "experiments.go")

	assert.Contains(t, accessors, "// Code generated by expgen. DO NOT EDIT.")
	assert.Contains(t, accessors, "package experiments\n")
	assert.Contains(t, accessors, `expruntime "github.com/expgen/expgen/pkg/expruntime"`)

	// Every experiment gets a marker and an index-keyed accessor.
	assert.Contains(t, accessors, "const EXPERIMENT_IS_INCLUDED_FOO_BAR = true\n")
	assert.Contains(t, accessors, "const EXPERIMENT_IS_INCLUDED_BROKEN_THING = true\n")
	assert.Contains(t, accessors, "func IsFooBarEnabled() bool { return expruntime.Enabled(0) }\n")
	assert.Contains(t, accessors, "func IsBrokenThingEnabled() bool { return expruntime.Enabled(1) }\n")
	assert.Contains(t, accessors, "func IsDbgThingEnabled() bool { return expruntime.Enabled(3) }\n")

	assert.Contains(t, accessors, "const NumExperiments = 4\n")
}

func TestAccessorsFixed(t *testing.T) {
	artifacts := Artifacts(resolvedFixture(), Options{Mode: ModeFixed})
	accessors := artifactByName(t, artifacts, "experiments.go")

	assert.Contains(t, accessors, "func IsFooBarEnabled() bool { return true }\n")
	assert.Contains(t, accessors, "func IsBrokenThingEnabled() bool { return false }\n")
	assert.Contains(t, accessors, "func IsOffThingEnabled() bool { return false }\n")
	assert.Contains(t, accessors, "func IsDbgThingEnabled() bool { return expruntime.DebugBuild }\n")

	// Markers: unconditional for enabled, debug-gated for debug-only,
	// absent for broken and disabled.
	assert.Contains(t, accessors, "const EXPERIMENT_IS_INCLUDED_FOO_BAR = true\n")
	assert.Contains(t, accessors, "const EXPERIMENT_IS_INCLUDED_DBG_THING = expruntime.DebugBuild\n")
	assert.NotContains(t, accessors, "EXPERIMENT_IS_INCLUDED_BROKEN_THING")
	assert.NotContains(t, accessors, "EXPERIMENT_IS_INCLUDED_OFF_THING")

	assert.Contains(t, accessors, "const NumExperiments = 4\n")
}

func TestAccessorsFixedWithoutDebugOnlySkipsImport(t *testing.T) {
	resolved := resolvedFixture()[:3]
	artifacts := Artifacts(resolved, Options{Mode: ModeFixed})
	accessors := artifactByName(t, artifacts, "experiments.go")
	assert.NotContains(t, accessors, "import")
}

func TestMetadataTunable(t *testing.T) {
	artifacts := Artifacts(resolvedFixture(), Options{Mode: ModeTunable})
	metadata := artifactByName(t, artifacts, "experiments_metadata.go")

	assert.Contains(t, metadata, "const descriptionFooBar = \"a \\\"quoted\\\" description\"\n")
	assert.Contains(t, metadata, "const additionalConstraintsFooBar = \"\"\n")
	assert.Contains(t, metadata, "var Metadata = [NumExperiments]expruntime.ExperimentMetadata{\n")
	assert.Contains(t, metadata, `{Name: "foo_bar", Description: descriptionFooBar, AdditionalConstraints: additionalConstraintsFooBar, Default: true, AllowInFuzzing: true},`)
	assert.Contains(t, metadata, `{Name: "broken_thing", Description: descriptionBrokenThing, AdditionalConstraints: additionalConstraintsBrokenThing, Default: false, AllowInFuzzing: false},`)
	assert.Contains(t, metadata, `{Name: "dbg_thing", Description: descriptionDbgThing, AdditionalConstraints: additionalConstraintsDbgThing, Default: expruntime.DebugBuild, AllowInFuzzing: true},`)
	assert.Contains(t, metadata, "expruntime.Register(Metadata[:])")
}

func TestMetadataFixedIsStub(t *testing.T) {
	artifacts := Artifacts(resolvedFixture(), Options{Mode: ModeFixed})
	metadata := artifactByName(t, artifacts, "experiments_metadata.go")

	assert.Contains(t, metadata, "package experiments\n")
	assert.NotContains(t, metadata, "Metadata")
	assert.NotContains(t, metadata, "import")
}

const buildMapGolden = `# SPDX-License-Identifier: Apache-2.0
# Copyright Authors of expgen
#
# Code generated by expgen. DO NOT EDIT.

"""Dictionary of tags to experiments so we know when to test different experiments."""

EXPERIMENTS = {
    "dbg": {
        "debug_tags": [
            "dbg_thing",
        ],
    },
    "off": {
        "core": [
            "off_thing",
        ],
    },
    "on": {
        "core": [
            "foo_bar",
        ],
    },
}
`

func TestBuildMap(t *testing.T) {
	artifacts := Artifacts(resolvedFixture(), Options{})
	buildMap := artifactByName(t, artifacts, "experiments.bzl")

	// Broken experiments are dropped entirely; everything else lands under
	// its sorted category and tag.
	if diff := cmp.Diff(buildMapGolden, buildMap); diff != "" {
		t.Fatalf("build map mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMapEmptyCategoriesPresent(t *testing.T) {
	artifacts := Artifacts(nil, Options{})
	buildMap := artifactByName(t, artifacts, "experiments.bzl")

	assert.Contains(t, buildMap, `"dbg": {`)
	assert.Contains(t, buildMap, `"off": {`)
	assert.Contains(t, buildMap, `"on": {`)
}

func TestRenderDeterministic(t *testing.T) {
	for _, mode := range []Mode{ModeFixed, ModeTunable} {
		first := Artifacts(resolvedFixture(), Options{Mode: mode})
		second := Artifacts(resolvedFixture(), Options{Mode: mode})
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("mode %s rendering is not deterministic (-first +second):\n%s", mode, diff)
		}
	}
}

func TestWriteOverwritesInFull(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		OutputDir: filepath.Join(dir, "out"),
		BzlPath:   filepath.Join(dir, "experiments.bzl"),
	}

	require.NoError(t, Write(Artifacts(resolvedFixture(), opts)))
	artifacts := Artifacts(resolvedFixture()[:1], opts)
	require.NoError(t, Write(artifacts))

	data, err := os.ReadFile(filepath.Join(dir, "out", "experiments.go"))
	require.NoError(t, err)
	assert.Equal(t, artifactByName(t, artifacts, "experiments.go"), string(data))
	assert.NotContains(t, string(data), "off_thing")
}
