package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/sevigo/jenkins-relay/internal/config"
	"github.com/sevigo/jenkins-relay/internal/core"
	"github.com/sevigo/jenkins-relay/internal/metrics"
)

// maxSlotWait caps how long a command queues for a free slot.
const maxSlotWait = 10 * time.Second

// CommandRunner implements core.CommandHandler. It runs interpretation and
// dispatch sequentially inside the caller's request and caps how many
// commands run at once.
type CommandRunner struct {
	interpreter core.CommandInterpreter
	dispatcher  core.JobDispatcher
	slots       *semaphore.Weighted
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

var _ core.CommandHandler = (*CommandRunner)(nil)

// NewCommandRunner creates a runner allowing cfg.MaxConcurrentCommands
// concurrent commands. m may be nil.
func NewCommandRunner(cfg *config.Config, interpreter core.CommandInterpreter, dispatcher core.JobDispatcher, m *metrics.Metrics, logger *slog.Logger) *CommandRunner {
	maxConcurrent := cfg.MaxConcurrentCommands
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &CommandRunner{
		interpreter: interpreter,
		dispatcher:  dispatcher,
		slots:       semaphore.NewWeighted(int64(maxConcurrent)),
		metrics:     m,
		logger:      logger,
	}
}

// HandleCommand interprets text and triggers the resulting job. Every failure
// is reported through the returned outcome's message.
func (r *CommandRunner) HandleCommand(ctx context.Context, text string) core.TriggerOutcome {
	r.metrics.ObserveCommand()
	r.logger.Info("received command", "text", text)

	waitCtx, cancel := slotWaitContext(ctx)
	err := r.slots.Acquire(waitCtx, 1)
	cancel()
	if err != nil {
		r.logger.Warn("no free command slot", "error", err)
		return core.TriggerOutcome{
			Message: fmt.Sprintf("⚠️ Relay is busy, command was not processed: %v", err),
			Err:     fmt.Errorf("waiting for a command slot: %w", err),
		}
	}
	defer r.slots.Release(1)

	record := r.interpreter.Interpret(ctx, text)
	r.logger.Info("extracted parameters",
		"product", core.Display(record.Product),
		"environment", core.Display(record.Environment),
		"suite", core.Display(record.Suite),
		"type", core.Display(record.Type),
	)

	outcome := r.dispatcher.Dispatch(ctx, record)
	r.logger.Info("command finished", "success", outcome.Success, "result", outcome.Message)
	return outcome
}

// slotWaitContext bounds the slot wait by maxSlotWait and by half of the time
// left on ctx, so the busy reply is written while the request is still open.
func slotWaitContext(ctx context.Context) (context.Context, context.CancelFunc) {
	wait := maxSlotWait
	if deadline, ok := ctx.Deadline(); ok {
		if half := time.Until(deadline) / 2; half < wait {
			wait = half
		}
	}
	return context.WithTimeout(ctx, wait)
}

// Preview interprets text and returns the invocation that HandleCommand would
// issue, without triggering anything.
func (r *CommandRunner) Preview(ctx context.Context, text string) (core.ParameterRecord, core.JobInvocation) {
	record := r.interpreter.Interpret(ctx, text)
	return record, r.dispatcher.Plan(record)
}
