// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of expgen

// Package expruntime is the compile-time contract between generated
// experiment code and the runtime configuration system. Generated accessors
// in tunable mode call Enabled with their positional index; the metadata
// table generated alongside them registers the per-experiment defaults.
package expruntime

import (
	"sync"
)

// ExperimentMetadata describes one experiment in the generated metadata
// table, in document order.
type ExperimentMetadata struct {
	Name string

	Description string

	// AdditionalConstraints is an empty placeholder for future structured
	// constraints.
	AdditionalConstraints string

	// Default is the activation state derived from the rollout policy.
	Default bool

	// AllowInFuzzing reports whether fuzzers may toggle the experiment.
	AllowInFuzzing bool
}

var (
	mutex     sync.RWMutex
	metadata  []ExperimentMetadata
	overrides map[int]bool
)

// Register installs the generated metadata table. Called from the generated
// metadata artifact's init.
func Register(table []ExperimentMetadata) {
	mutex.Lock()
	defer mutex.Unlock()
	metadata = table
	overrides = nil
}

// Enabled reports whether the experiment at the given positional index is
// active: an override if one was set, the registered default otherwise.
func Enabled(index int) bool {
	mutex.RLock()
	defer mutex.RUnlock()
	if on, ok := overrides[index]; ok {
		return on
	}
	if index < 0 || index >= len(metadata) {
		return false
	}
	return metadata[index].Default
}

// SetEnabled overrides the activation state of one experiment.
func SetEnabled(index int, on bool) {
	mutex.Lock()
	defer mutex.Unlock()
	if overrides == nil {
		overrides = make(map[int]bool)
	}
	overrides[index] = on
}

// Metadata returns the registered metadata table.
func Metadata() []ExperimentMetadata {
	mutex.RLock()
	defer mutex.RUnlock()
	return metadata
}

// Reset drops all overrides, reverting every experiment to its default.
func Reset() {
	mutex.Lock()
	defer mutex.Unlock()
	overrides = nil
}
