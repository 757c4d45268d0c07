package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sevigo/jenkins-relay/internal/wire"
)

var outputFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [sentence]",
	Short: "Extract build parameters from a sentence without triggering Jenkins",
	Long: `Extract build parameters from a sentence and show the Jenkins job that
would be triggered. Nothing is sent to Jenkins.

Examples:
  relay-cli parse "run Smoke API tests for Checkout on staging"
  relay-cli parse -o json "trigger UI regression cases for Payments on prod"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	parseCmd.Flags().StringVarP(&outputFormat, "output", "o", formatText, "Output format: text, json or yaml")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sentence := strings.Join(args, " ")

	appInstance, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer cleanup()

	record, inv := appInstance.Runner.Preview(ctx, sentence)
	return printPreview(cmd.OutOrStdout(), outputFormat, newPreview(sentence, record, inv))
}
