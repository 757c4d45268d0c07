package llm

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/jenkins-relay/internal/core"
	"github.com/sevigo/jenkins-relay/internal/metrics"
	"github.com/sevigo/jenkins-relay/mocks"
)

func newTestInterpreter(t *testing.T, gen core.TextGenerator, logs *bytes.Buffer) *Interpreter {
	t.Helper()
	pm, err := NewPromptManager()
	require.NoError(t, err)
	return NewInterpreter(gen, pm, DefaultProvider, metrics.New(), slog.New(slog.NewTextHandler(logs, nil)))
}

func TestInterpreter_Interpret(t *testing.T) {
	const sentence = "run Smoke API tests for Checkout on staging"

	testCases := []struct {
		name     string
		response string
		err      error
		want     core.ParameterRecord
		wantWarn string
	}{
		{
			name:     "Plain JSON",
			response: `{"product":"Checkout","environment":"staging","suite":"Smoke","type":"API"}`,
			want: core.ParameterRecord{
				Product:     core.StringPtr("Checkout"),
				Environment: core.StringPtr("staging"),
				Suite:       core.StringPtr("Smoke"),
				Type:        core.StringPtr("API"),
			},
		},
		{
			name:     "Fenced JSON",
			response: "```json\n{\"product\": \"Checkout\", \"environment\": \"staging\", \"suite\": \"Smoke\", \"type\": \"API\"}\n```",
			want: core.ParameterRecord{
				Product:     core.StringPtr("Checkout"),
				Environment: core.StringPtr("staging"),
				Suite:       core.StringPtr("Smoke"),
				Type:        core.StringPtr("API"),
			},
		},
		{
			name:     "Missing environment",
			response: `{"product":"Checkout","suite":"Smoke","type":"API"}`,
			want: core.ParameterRecord{
				Product: core.StringPtr("Checkout"),
				Suite:   core.StringPtr("Smoke"),
				Type:    core.StringPtr("API"),
			},
		},
		{
			name:     "Malformed response",
			response: "I could not find any parameters.",
			want:     core.EmptyRecord(),
			wantWarn: "JSON parse failed",
		},
		{
			name:     "Empty response",
			response: "",
			want:     core.EmptyRecord(),
			wantWarn: "JSON parse failed",
		},
		{
			name:     "Provider error",
			err:      errors.New("quota exceeded"),
			want:     core.EmptyRecord(),
			wantWarn: "quota exceeded",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gen := mocks.NewMockTextGenerator(ctrl)
			gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(tc.response, tc.err).Times(1)

			var logs bytes.Buffer
			got := newTestInterpreter(t, gen, &logs).Interpret(t.Context(), sentence)

			assert.Equal(t, tc.want, got)
			if tc.wantWarn != "" {
				assert.Contains(t, logs.String(), "level=WARN")
				assert.Contains(t, logs.String(), tc.wantWarn)
			} else {
				assert.NotContains(t, logs.String(), "level=WARN")
			}
		})
	}
}

func TestInterpreter_PromptCarriesSentence(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockTextGenerator(ctrl)

	var prompt string
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p string) (string, error) {
			prompt = p
			return "{}", nil
		},
	)

	var logs bytes.Buffer
	newTestInterpreter(t, gen, &logs).Interpret(t.Context(), "trigger UI regression cases for Payments on prod")

	assert.Contains(t, prompt, `Sentence: "trigger UI regression cases for Payments on prod"`)
	for _, key := range []string{`"product"`, `"environment"`, `"suite"`, `"type"`} {
		assert.Contains(t, prompt, key)
	}
	assert.Contains(t, prompt, "Respond ONLY in JSON")
}
