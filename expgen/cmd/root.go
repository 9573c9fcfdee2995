// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of expgen

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/expgen/expgen/pkg/defaults"
	"github.com/expgen/expgen/pkg/logging"
	"github.com/expgen/expgen/pkg/logging/logfields"
)

var (
	cfgFile string
	log     = logging.DefaultSlogLogger.With(logfields.LogSubsys, "expgen")
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "expgen",
	Short: "Experiment artifact generator",
	Long: `Generates the typed accessor API, the runtime metadata table and the
build-system tag mapping from the experiment and rollout documents.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.expgen.yaml)")
	flags.BoolP("debug", "D", false, "Enable debug messages")
	flags.Bool("check", false, "Relaxed mode: do not enforce expiry dates (formatting-only checks)")
	flags.String("experiments", defaults.ExperimentsFile, "Path to the experiment definition document")
	flags.String("rollouts", defaults.RolloutsFile, "Path to the rollout policy document")
	viper.BindPFlags(flags)
	rootCmd.SetOut(os.Stderr)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" { // enable ability to specify config file via flag
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix(defaults.EnvPrefix)
	viper.SetConfigName(defaults.ConfigName) // name of config file (without extension)
	viper.AddConfigPath("$HOME")             // adding home directory as first search path
	viper.AutomaticEnv()                     // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	logging.SetupLogging("info", viper.GetBool("debug"))
	log = logging.DefaultSlogLogger.With(logfields.LogSubsys, "expgen")
}
