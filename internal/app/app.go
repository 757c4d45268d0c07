// Package app holds the assembled jenkins-relay components and controls their
// lifecycle.
package app

import (
	"log/slog"

	"github.com/sevigo/jenkins-relay/internal/config"
	"github.com/sevigo/jenkins-relay/internal/core"
	"github.com/sevigo/jenkins-relay/internal/jobs"
	"github.com/sevigo/jenkins-relay/internal/metrics"
	"github.com/sevigo/jenkins-relay/internal/server"
)

// App holds the main application components. The exported fields let the
// operator tools reuse the same pipeline as the HTTP server.
type App struct {
	Cfg         *config.Config
	Logger      *slog.Logger
	Interpreter core.CommandInterpreter
	Dispatcher  core.JobDispatcher
	Runner      *jobs.CommandRunner
	Metrics     *metrics.Metrics

	server *server.Server
}

// NewApp assembles an App from its wired components.
func NewApp(
	cfg *config.Config,
	interpreter core.CommandInterpreter,
	dispatcher core.JobDispatcher,
	runner *jobs.CommandRunner,
	m *metrics.Metrics,
	srv *server.Server,
	logger *slog.Logger,
) *App {
	return &App{
		Cfg:         cfg,
		Logger:      logger,
		Interpreter: interpreter,
		Dispatcher:  dispatcher,
		Runner:      runner,
		Metrics:     m,
		server:      srv,
	}
}

// Start runs the HTTP server and blocks until it stops.
func (a *App) Start() error {
	a.Logger.Info("starting jenkins-relay",
		"server_port", a.Cfg.Server.Port,
		"llm_provider", a.Cfg.AI.LLMProvider,
		"model", a.Cfg.AI.Model,
		"parameterized", a.Cfg.Jenkins.Parameterized(),
		"max_concurrent_commands", a.Cfg.MaxConcurrentCommands)

	if err := a.server.Start(); err != nil {
		a.Logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly. In-flight requests are allowed to
// finish.
func (a *App) Stop() error {
	a.Logger.Info("shutting down jenkins-relay")

	if err := a.server.Stop(); err != nil {
		a.Logger.Error("jenkins-relay stopped with errors", "error", err)
		return err
	}

	a.Logger.Info("jenkins-relay stopped successfully")
	return nil
}
