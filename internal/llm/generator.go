package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sevigo/goframe/llms"
)

// ErrEmptyResponse is returned when the provider answered with no text.
var ErrEmptyResponse = errors.New("provider returned an empty response")

// Generator adapts a goframe model to core.TextGenerator and bounds every call
// with a timeout.
type Generator struct {
	call    func(ctx context.Context, prompt string) (string, error)
	timeout time.Duration
}

// NewGenerator wraps model. A non-positive timeout disables the bound.
func NewGenerator(model llms.Model, timeout time.Duration) *Generator {
	return &Generator{
		call: func(ctx context.Context, prompt string) (string, error) {
			return model.Call(ctx, prompt)
		},
		timeout: timeout,
	}
}

// Generate sends prompt to the model. A call that outlives the timeout returns
// context.DeadlineExceeded even if the provider client ignores cancellation.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	type result struct {
		resp string
		err  error
	}
	resultCh := make(chan result, 1)

	go func() {
		resp, err := g.call(ctx, prompt)
		resultCh <- result{resp, err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			return "", fmt.Errorf("text generation failed: %w", res.err)
		}
		if res.resp == "" {
			return "", ErrEmptyResponse
		}
		return res.resp, nil
	case <-ctx.Done():
		return "", fmt.Errorf("text generation aborted: %w", ctx.Err())
	}
}
