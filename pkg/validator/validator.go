// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of expgen

// Package validator enforces the structural and policy invariants of the
// experiment and rollout documents. Every record is checked independently
// and every violation is reported, so a single run surfaces all problems at
// once.
package validator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/expgen/expgen/pkg/defaults"
	"github.com/expgen/expgen/pkg/experiments"
	"github.com/expgen/expgen/pkg/loader"
	"github.com/expgen/expgen/pkg/logging"
	"github.com/expgen/expgen/pkg/logging/logfields"
)

// Options configure a validation run. Today is the reference date expiry
// windows are computed against; tests inject fixed dates through it.
type Options struct {
	Today time.Time

	// Relaxed disables expiry date enforcement. Used for formatting-only
	// checks where stale dates must not fail the run.
	Relaxed bool

	Logger *slog.Logger
}

// Result aggregates everything a validation run found. The run failed if it
// holds any violation.
type Result struct {
	// Violations are the accumulated error messages, in discovery order.
	Violations []string

	// Annotation is the comma-delimited experiment annotation built from all
	// passing non-exempt experiments. Empty in relaxed mode.
	Annotation string
}

// Failed reports whether any violation was found.
func (r *Result) Failed() bool {
	return len(r.Violations) > 0
}

func (r *Result) violate(logger *slog.Logger, msg string, args ...any) {
	r.Violations = append(r.Violations, msg)
	logger.Error(msg, args...)
}

// Run validates both documents. It never aborts early: the full record set
// is always scanned.
func Run(exps, rollouts []loader.Record, opts Options) Result {
	logger := opts.Logger
	if logger == nil {
		logger = logging.DefaultSlogLogger
	}

	var result Result
	result.checkRollouts(logger, rollouts)
	result.checkExperiments(logger, exps, opts)
	return result
}

func (r *Result) checkRollouts(logger *slog.Logger, rollouts []loader.Record) {
	for _, record := range rollouts {
		if !record.Has("name") {
			r.violate(logger, fmt.Sprintf("rollout record %d has no name", record.Index()),
				logfields.Record, record.Index())
			continue
		}
		name := record.String("name")
		if !record.Has("default") {
			r.violate(logger, fmt.Sprintf("no default for experiment %s", name),
				logfields.Rollout, name)
			continue
		}
		if _, ok := experiments.ParsePolicyValue(record.Value("default")); !ok {
			r.violate(logger, fmt.Sprintf("invalid default for experiment %s: %v", name, record.Value("default")),
				logfields.Rollout, name)
		}
	}
}

func (r *Result) checkExperiments(logger *slog.Logger, exps []loader.Record, opts Options) {
	today := midnight(opts.Today)
	windowEnd := today.AddDate(0, 0, defaults.ExpiryWindowDays)
	annotation := defaults.AnnotationPrefix

	for _, record := range exps {
		if !record.Has("name") {
			// The remaining diagnostics all key off the name.
			r.violate(logger, fmt.Sprintf("experiment record %d has no name", record.Index()),
				logfields.Record, record.Index())
			continue
		}
		name := record.String("name")
		for _, field := range []string{"description", "owner", "expiry"} {
			if !record.Has(field) {
				r.violate(logger, fmt.Sprintf("no %s for experiment %s", field, name),
					logfields.Experiment, name)
			}
		}
		if !record.Has("expiry") {
			continue
		}
		expiry := record.String("expiry")

		if name == defaults.MonitoringExperiment {
			if expiry != defaults.ExpiryNever {
				r.violate(logger, fmt.Sprintf("%s should never expire", defaults.MonitoringExperiment),
					logfields.Experiment, name, logfields.Expiry, expiry)
			}
			continue
		}

		expiryDate, err := time.Parse(defaults.ExpiryLayout, expiry)
		if err != nil {
			r.violate(logger, fmt.Sprintf("invalid expiry for experiment %s: %q", name, expiry),
				logfields.Experiment, name, logfields.Expiry, expiry)
			continue
		}
		if opts.Relaxed {
			continue
		}
		passed := true
		if expiryDate.Before(today) {
			r.violate(logger, fmt.Sprintf("experiment %s expired on %s", name, expiry),
				logfields.Experiment, name, logfields.Expiry, expiry)
			passed = false
		}
		if expiryDate.After(windowEnd) {
			r.violate(logger, fmt.Sprintf("experiment %s expires far in the future on %s; expiry should be no more than two quarters from now", name, expiry),
				logfields.Experiment, name, logfields.Expiry, expiry)
			passed = false
		}
		if passed {
			annotation += name + ":0,"
		}
	}

	if !opts.Relaxed {
		if len(annotation) > defaults.AnnotationMaxLen {
			r.violate(logger, "comma-delimited string of experiments is too long",
				logfields.Violations, len(annotation))
		}
		r.Annotation = annotation
	}
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
