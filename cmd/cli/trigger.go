package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sevigo/jenkins-relay/internal/wire"
)

var triggerCmd = &cobra.Command{
	Use:   "trigger [sentence]",
	Short: "Extract build parameters from a sentence and trigger the Jenkins job",
	Long: `Run the full relay pipeline once: extract build parameters from the
sentence, trigger the matching Jenkins job and print the status message that
would be posted to Slack. The command exits non-zero when the trigger fails.

Example:
  relay-cli trigger "run Smoke API tests for Checkout on staging"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTrigger,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(triggerCmd)
}

func runTrigger(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sentence := strings.Join(args, " ")

	appInstance, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer cleanup()

	outcome := appInstance.Runner.HandleCommand(ctx, sentence)
	printOutcome(cmd.OutOrStdout(), outcome)

	if outcome.Success {
		return nil
	}
	if outcome.Err != nil {
		return outcome.Err
	}
	return errors.New(outcome.Message)
}
