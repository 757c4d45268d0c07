package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sevigo/jenkins-relay/internal/config"
	"github.com/sevigo/jenkins-relay/internal/core"
	"github.com/sevigo/jenkins-relay/internal/jobs"
)

var jobNameFlags struct {
	product     string
	environment string
	suite       string
	testType    string
}

var jobNameCmd = &cobra.Command{
	Use:   "jobname",
	Short: "Print the Jenkins job name and URL for a set of parameters",
	Long: `Print the Jenkins job name and trigger URL for the given parameters.
Omitted parameters render as None, exactly as they would in the relay.
Only JENKINS_URL and JENKINS_SUFFIX are read; no credentials are needed and
no service is contacted.

Example:
  relay-cli jobname --product Checkout --type API --suite Smoke --environment staging`,
	Args: cobra.NoArgs,
	RunE: runJobName,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	f := jobNameCmd.Flags()
	f.StringVar(&jobNameFlags.product, "product", "", "Product or application name")
	f.StringVar(&jobNameFlags.environment, "environment", "", "Target environment")
	f.StringVar(&jobNameFlags.suite, "suite", "", "Test suite")
	f.StringVar(&jobNameFlags.testType, "type", "", "Test type (API, UI, Web)")
	f.StringVarP(&outputFormat, "output", "o", formatText, "Output format: text, json or yaml")
	rootCmd.AddCommand(jobNameCmd)
}

func runJobName(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Read(".env")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	record := recordFromFlags(cmd)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	inv := jobs.NewDispatcher(cfg, nil, nil, logger).Plan(record)

	return printPreview(cmd.OutOrStdout(), outputFormat, newPreview("", record, inv))
}

// recordFromFlags sets only the fields whose flag was given.
func recordFromFlags(cmd *cobra.Command) core.ParameterRecord {
	var record core.ParameterRecord
	flags := cmd.Flags()
	if flags.Changed("product") {
		record.Product = core.StringPtr(jobNameFlags.product)
	}
	if flags.Changed("environment") {
		record.Environment = core.StringPtr(jobNameFlags.environment)
	}
	if flags.Changed("suite") {
		record.Suite = core.StringPtr(jobNameFlags.suite)
	}
	if flags.Changed("type") {
		record.Type = core.StringPtr(jobNameFlags.testType)
	}
	return record
}
