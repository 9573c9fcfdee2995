// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of expgen

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/expgen/expgen/pkg/defaults"
	"github.com/expgen/expgen/pkg/experiments"
	"github.com/expgen/expgen/pkg/loader"
	"github.com/expgen/expgen/pkg/logging/logfields"
	"github.com/expgen/expgen/pkg/render"
	"github.com/expgen/expgen/pkg/resolver"
	"github.com/expgen/expgen/pkg/validator"
)

// generateCmd runs the full pipeline and writes all three artifacts
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the experiment artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		resolved := runPipeline()

		mode, err := render.ParseMode(viper.GetString("mode"))
		if err != nil {
			Usagef(cmd, "%s", err)
		}

		artifacts := render.Artifacts(resolved, render.Options{
			Mode:          mode,
			GoPackage:     viper.GetString("go-package"),
			RuntimeImport: viper.GetString("runtime-import"),
			OutputDir:     viper.GetString("output-dir"),
			BzlPath:       viper.GetString("bzl-file"),
		})
		if err := render.Write(artifacts); err != nil {
			Fatalf("Cannot write artifacts: %s", err)
		}
		for _, artifact := range artifacts {
			log.Info("wrote artifact", logfields.Artifact, artifact.Path)
		}
	},
}

// validateCmd runs the loader and validator only, writing nothing
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the experiment and rollout documents",
	Run: func(cmd *cobra.Command, args []string) {
		runPipeline()
		fmt.Fprintln(os.Stderr, color.GreenString("Documents are valid"))
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)

	flags := generateCmd.Flags()
	flags.String("output-dir", defaults.OutputDir, "Directory the generated Go artifacts are written to")
	flags.String("bzl-file", defaults.BzlFile, "Path of the generated build-tag mapping artifact")
	flags.String("mode", render.ModeTunable.String(), "Accessor generation mode, one of: fixed or tunable")
	flags.String("go-package", defaults.GoPackage, "Package clause of the generated Go artifacts")
	flags.String("runtime-import", defaults.RuntimeImportPath, "Import path of the runtime support package")
	viper.BindPFlags(flags)
}

// runPipeline loads, validates and resolves the documents. It exits the
// program on parse errors and on validation failure, before any artifact is
// written.
func runPipeline() []experiments.Resolved {
	exps, rollouts, err := loader.Documents(viper.GetString("experiments"), viper.GetString("rollouts"))
	if err != nil {
		Fatalf("Cannot load documents: %s", err)
	}

	result := validator.Run(exps, rollouts, validator.Options{
		Today:   time.Now(),
		Relaxed: viper.GetBool("check"),
		Logger:  log,
	})
	if result.Failed() {
		fmt.Fprintln(os.Stderr, color.RedString("Validation failed with %d violations", len(result.Violations)))
		os.Exit(1)
	}

	defs := experiments.DefinitionsFromRecords(exps)
	rolls := experiments.RolloutsFromRecords(rollouts)
	return resolver.Resolve(defs, rolls, log)
}
