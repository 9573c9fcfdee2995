// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of expgen

// Package resolver joins experiment definitions with their rollout
// policies. Experiments without a rollout record are disabled instead of
// failing the build: an undocumented flag ships off rather than breaking
// everyone's build.
package resolver

import (
	"log/slog"

	"github.com/expgen/expgen/pkg/experiments"
	"github.com/expgen/expgen/pkg/logging"
	"github.com/expgen/expgen/pkg/logging/logfields"
)

// Resolve joins every definition with its rollout policy, in definition
// order. Definitions without a matching rollout get a synthetic disabled
// policy and a warning. Rollout records without a matching definition are
// reported at debug level only; they usually mean a removed experiment whose
// rollout entry was never cleaned up.
func Resolve(defs []experiments.Definition, rollouts []experiments.Rollout, logger *slog.Logger) []experiments.Resolved {
	if logger == nil {
		logger = logging.DefaultSlogLogger
	}

	policies := make(map[string]experiments.Policy, len(rollouts))
	for _, rollout := range rollouts {
		policies[rollout.Name] = rollout.Policy
	}

	matched := make(map[string]struct{}, len(defs))
	resolved := make([]experiments.Resolved, 0, len(defs))
	for _, def := range defs {
		policy, ok := policies[def.Name]
		if !ok {
			logger.Warn("experiment has no rollout configuration, disabling it",
				logfields.Experiment, def.Name)
			policy = experiments.PolicyDisabled
		} else {
			matched[def.Name] = struct{}{}
		}
		resolved = append(resolved, experiments.Resolved{
			Definition: def,
			Policy:     policy,
			Synthetic:  !ok,
		})
	}

	for _, rollout := range rollouts {
		if _, ok := matched[rollout.Name]; !ok {
			logger.Debug("rollout record matches no experiment",
				logfields.Rollout, rollout.Name)
		}
	}

	return resolved
}
