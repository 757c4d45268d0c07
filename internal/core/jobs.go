// Package core defines the data model and the contracts between the stages of
// the relay pipeline: text interpretation, job dispatch and chat replies.
package core

import (
	"context"
)

//go:generate mockgen -destination=../../mocks/mock_core.go -package=mocks . TextGenerator,CommandInterpreter,JobDispatcher,CommandHandler,Responder

// TextGenerator is the single-call contract with a text-understanding provider.
type TextGenerator interface {
	// Generate sends prompt to the provider and returns its raw text answer.
	Generate(ctx context.Context, prompt string) (string, error)
}

// CommandInterpreter turns a free-text sentence into a ParameterRecord.
// Implementations never fail: an unusable provider answer yields an empty record.
type CommandInterpreter interface {
	Interpret(ctx context.Context, text string) ParameterRecord
}

// JobDispatcher triggers the build job addressed by a ParameterRecord and
// classifies the result. It performs exactly one outbound request.
type JobDispatcher interface {
	// Plan derives the invocation without performing any request.
	Plan(record ParameterRecord) JobInvocation
	Dispatch(ctx context.Context, record ParameterRecord) TriggerOutcome
}

// CommandHandler runs a complete command: interpretation followed by dispatch.
type CommandHandler interface {
	HandleCommand(ctx context.Context, text string) TriggerOutcome
}

// Responder posts a status message back to the chat conversation the command
// came from.
type Responder interface {
	Reply(ctx context.Context, channel, threadTS, text string) error
}
