package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/llms/gemini"
	"github.com/sevigo/goframe/llms/ollama"

	"github.com/sevigo/jenkins-relay/internal/app"
	"github.com/sevigo/jenkins-relay/internal/chat"
	"github.com/sevigo/jenkins-relay/internal/config"
	"github.com/sevigo/jenkins-relay/internal/core"
	"github.com/sevigo/jenkins-relay/internal/jenkins"
	"github.com/sevigo/jenkins-relay/internal/jobs"
	"github.com/sevigo/jenkins-relay/internal/llm"
	"github.com/sevigo/jenkins-relay/internal/logger"
	"github.com/sevigo/jenkins-relay/internal/metrics"
	"github.com/sevigo/jenkins-relay/internal/server"
)

var AppSet = wire.NewSet(
	app.NewApp,
	server.NewServer,
	config.LoadConfig,
	metrics.New,
	llm.NewPromptManager,
	jobs.NewDispatcher,
	jobs.NewCommandRunner,
	provideLogger,
	provideGeneratorLLM,
	provideTextGenerator,
	provideInterpreter,
	provideJenkinsClient,
	provideResponder,
	wire.Bind(new(core.CommandHandler), new(*jobs.CommandRunner)),
)

func provideLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	writer, closeWriter, err := logger.NewWriter(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log output: %w", err)
	}
	return logger.NewLogger(cfg.Logging, writer), closeWriter, nil
}

func provideGeneratorLLM(ctx context.Context, cfg *config.Config, logger *slog.Logger) (llms.Model, error) {
	switch cfg.AI.LLMProvider {
	case "gemini":
		if cfg.AI.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEN_AI_API_KEY is not set")
		}
		return gemini.New(ctx, gemini.WithModel(cfg.AI.Model), gemini.WithAPIKey(cfg.AI.GeminiAPIKey))
	case "ollama":
		return ollama.New(
			ollama.WithServerURL(cfg.AI.OllamaHost),
			ollama.WithHTTPClient(newOllamaHTTPClient()),
			ollama.WithModel(cfg.AI.Model),
			ollama.WithLogger(logger),
		)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.AI.LLMProvider)
	}
}

// The generator bounds each call with LLM_TIMEOUT; the client timeout only
// guards against a hung connection.
func newOllamaHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        20,
			MaxConnsPerHost:     10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
		Timeout: 5 * time.Minute,
	}
}

func provideTextGenerator(model llms.Model, cfg *config.Config) core.TextGenerator {
	return llm.NewGenerator(model, cfg.AI.Timeout)
}

func provideInterpreter(cfg *config.Config, generator core.TextGenerator, prompts *llm.PromptManager, m *metrics.Metrics, logger *slog.Logger) core.CommandInterpreter {
	return llm.NewInterpreter(generator, prompts, llm.ModelProvider(cfg.AI.LLMProvider), m, logger)
}

func provideJenkinsClient(cfg *config.Config, logger *slog.Logger) (jenkins.Client, error) {
	return jenkins.NewClient(logger,
		jenkins.WithBasicAuth(cfg.Jenkins.User, cfg.Jenkins.Token),
		jenkins.WithTimeout(cfg.Jenkins.Timeout),
	)
}

func provideResponder(cfg *config.Config, logger *slog.Logger) core.Responder {
	if cfg.Slack.BotToken == "" {
		logger.Info("SLACK_BOT_TOKEN not set, status messages are returned only in the HTTP response")
		return chat.NopResponder{}
	}
	return chat.NewSlackResponder(cfg.Slack.BotToken, logger)
}
