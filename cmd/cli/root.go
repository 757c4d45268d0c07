package main

import (
	"os"

	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "relay-cli",
	Short: "relay-cli is the command-line interface for jenkins-relay.",
	Long: `A CLI for running the jenkins-relay pipeline without Slack: extract build
parameters from a sentence, trigger the resulting Jenkins job, or preview the
job name for a given set of parameters.

Configuration is read from .env and the environment, the same way the server
reads it.`,
	SilenceUsage: true,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override LOG_LEVEL for this run (debug, info, warn, error)")
}

// initLogging keeps log lines off stdout so command output stays parseable.
func initLogging() {
	if os.Getenv("LOG_OUTPUT") == "" {
		_ = os.Setenv("LOG_OUTPUT", "stderr")
	}
	if logLevel != "" {
		_ = os.Setenv("LOG_LEVEL", logLevel)
	}
}
