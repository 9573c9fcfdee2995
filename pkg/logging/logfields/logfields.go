// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of expgen

// Package logfields defines common logging fields which are used across
// packages.
package logfields

const (
	// LogSubsys is the field denoting the subsystem when logging
	LogSubsys = "subsys"

	// Error is the Go error
	Error = "error"

	// Experiment is the name of an experiment definition
	Experiment = "experiment"

	// Rollout is the name of a rollout policy record
	Rollout = "rollout"

	// Policy is the rollout policy tag of an experiment
	Policy = "policy"

	// Expiry is the raw expiry field of an experiment
	Expiry = "expiry"

	// Path is a file system path, input or output
	Path = "path"

	// Artifact is the name of a generated artifact
	Artifact = "artifact"

	// Record is the zero-based position of a record in its source document
	Record = "record"

	// Violations is the number of validation violations found in a run
	Violations = "violations"
)
