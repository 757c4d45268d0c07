// Package llm turns chat sentences into structured build parameters using a
// text-understanding provider.
package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/sevigo/jenkins-relay/internal/core"
	"github.com/sevigo/jenkins-relay/internal/metrics"
)

// Interpreter implements core.CommandInterpreter with a single provider call
// per sentence and no retries.
type Interpreter struct {
	generator core.TextGenerator
	prompts   *PromptManager
	provider  ModelProvider
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

var _ core.CommandInterpreter = (*Interpreter)(nil)

// NewInterpreter creates an Interpreter. provider selects a provider-specific
// prompt when one is embedded; m may be nil.
func NewInterpreter(generator core.TextGenerator, prompts *PromptManager, provider ModelProvider, m *metrics.Metrics, logger *slog.Logger) *Interpreter {
	return &Interpreter{
		generator: generator,
		prompts:   prompts,
		provider:  provider,
		metrics:   m,
		logger:    logger,
	}
}

// Interpret extracts a ParameterRecord from text. Any failure along the way is
// logged and yields an empty record so the pipeline always continues.
func (i *Interpreter) Interpret(ctx context.Context, text string) core.ParameterRecord {
	prompt, err := i.prompts.Render(ExtractParamsPrompt, i.provider, ExtractParamsData{Sentence: text})
	if err != nil {
		i.logger.Warn("failed to render extraction prompt", "error", err)
		i.metrics.ObserveExtraction(0, false)
		return core.EmptyRecord()
	}

	start := time.Now()
	raw, err := i.generator.Generate(ctx, prompt)
	if err != nil {
		i.logger.Warn("parameter extraction failed", "error", err)
		i.metrics.ObserveExtraction(time.Since(start), false)
		return core.EmptyRecord()
	}

	record, err := parseParameterRecord(StripCodeFence(raw))
	if err != nil {
		i.logger.Warn("JSON parse failed", "error", err, "response", raw)
		i.metrics.ObserveExtraction(time.Since(start), false)
		return core.EmptyRecord()
	}

	i.metrics.ObserveExtraction(time.Since(start), true)
	i.logger.Debug("parameters extracted",
		"product", core.Display(record.Product),
		"environment", core.Display(record.Environment),
		"suite", core.Display(record.Suite),
		"type", core.Display(record.Type),
	)
	return record
}
