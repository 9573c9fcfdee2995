// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of expgen

// Package experiments holds the data model of the generator: experiment
// definitions, rollout policies and their join. All values are constructed
// once per run and held immutably through validation and rendering.
package experiments

import (
	"github.com/expgen/expgen/pkg/loader"
)

// Definition is one experiment as declared in the experiment document.
type Definition struct {
	// Name is the unique snake_case identifier of the experiment.
	Name string

	// Description is free text shown in the generated metadata table.
	Description string

	// Owner is whoever gets asked when the experiment expires.
	Owner string

	// Expiry is the raw expiry field: a YYYY/MM/DD date, or the never-ever
	// sentinel on the monitoring experiment.
	Expiry string

	// TestTags select which build-system test suites exercise the
	// experiment.
	TestTags []string

	// AllowInFuzzing reports whether fuzzers may toggle the experiment.
	AllowInFuzzing bool

	// Index is the zero-based load position. Tunable accessors are keyed by
	// it, so it must be stable across runs of identical input.
	Index int
}

// Rollout is one entry of the rollout document.
type Rollout struct {
	Name   string
	Policy Policy
}

// Resolved is a definition joined with its rollout policy. Synthetic is set
// when no rollout record matched and the disabled substitution was applied.
type Resolved struct {
	Definition
	Policy    Policy
	Synthetic bool
}

// DefinitionsFromRecords converts validated experiment records in load
// order. It assumes the records already passed validation.
func DefinitionsFromRecords(records []loader.Record) []Definition {
	defs := make([]Definition, 0, len(records))
	for _, r := range records {
		defs = append(defs, Definition{
			Name:           r.String("name"),
			Description:    r.String("description"),
			Owner:          r.String("owner"),
			Expiry:         r.String("expiry"),
			TestTags:       r.StringSlice("test_tags"),
			AllowInFuzzing: r.Bool("allow_in_fuzzing_config", true),
			Index:          r.Index(),
		})
	}
	return defs
}

// RolloutsFromRecords converts validated rollout records in load order.
// Records whose default does not parse are skipped; validation already
// rejected the run in that case.
func RolloutsFromRecords(records []loader.Record) []Rollout {
	rollouts := make([]Rollout, 0, len(records))
	for _, r := range records {
		policy, ok := ParsePolicyValue(r.Value("default"))
		if !ok {
			continue
		}
		rollouts = append(rollouts, Rollout{
			Name:   r.String("name"),
			Policy: policy,
		})
	}
	return rollouts
}
