package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	g := &Generator{
		call: func(_ context.Context, prompt string) (string, error) {
			return "echo: " + prompt, nil
		},
		timeout: time.Second,
	}

	out, err := g.Generate(t.Context(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "echo: hi", out)
}

func TestGenerator_Errors(t *testing.T) {
	g := &Generator{call: func(context.Context, string) (string, error) { return "", errors.New("boom") }}
	_, err := g.Generate(t.Context(), "hi")
	assert.ErrorContains(t, err, "boom")

	g = &Generator{call: func(context.Context, string) (string, error) { return "", nil }}
	_, err = g.Generate(t.Context(), "hi")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGenerator_TimeoutOnUncooperativeProvider(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	g := &Generator{
		call: func(context.Context, string) (string, error) {
			<-release
			return "late", nil
		},
		timeout: 20 * time.Millisecond,
	}

	start := time.Now()
	_, err := g.Generate(t.Context(), "hi")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}
