// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of expgen

package defaults

const (
	// ExperimentsFile is the default path to the experiment definition
	// document.
	ExperimentsFile = "examples/experiments.yaml"

	// RolloutsFile is the default path to the rollout policy document.
	RolloutsFile = "examples/rollouts.yaml"

	// OutputDir is the default directory the generated Go artifacts are
	// written to.
	OutputDir = "experiments"

	// AccessorsFile is the file name of the generated accessor artifact,
	// relative to the output directory.
	AccessorsFile = "experiments.go"

	// MetadataFile is the file name of the generated metadata artifact,
	// relative to the output directory.
	MetadataFile = "experiments_metadata.go"

	// BzlFile is the default path of the generated build-tag mapping
	// artifact.
	BzlFile = "experiments.bzl"

	// GoPackage is the default package clause of the generated Go artifacts.
	GoPackage = "experiments"

	// MonitoringExperiment is the one experiment exempt from expiry date
	// checks. It must carry the ExpiryNever sentinel instead.
	MonitoringExperiment = "monitoring_experiment"

	// ExpiryNever is the sentinel expiry of MonitoringExperiment.
	ExpiryNever = "never-ever"

	// ExpiryLayout is the calendar date layout expiry fields must parse as.
	ExpiryLayout = "2006/01/02"

	// ExpiryWindowDays is how far in the future an expiry may lie, inclusive.
	ExpiryWindowDays = 180

	// AnnotationPrefix starts the experiment annotation string handed to the
	// runtime config system.
	AnnotationPrefix = "experiments:"

	// AnnotationMaxLen bounds the annotation string. The consumer stores it
	// in a fixed-size buffer.
	AnnotationMaxLen = 2000

	// MarkerPrefix is the name prefix of generated inclusion marker
	// constants.
	MarkerPrefix = "EXPERIMENT_IS_INCLUDED_"

	// RuntimeImportPath is the import path of the runtime support package
	// referenced by generated code.
	RuntimeImportPath = "github.com/expgen/expgen/pkg/expruntime"

	// EnvPrefix is the prefix of environment variables bound to command line
	// options.
	EnvPrefix = "expgen"

	// ConfigName is the name of the optional config file (without extension)
	// searched for in the home directory.
	ConfigName = ".expgen"
)
