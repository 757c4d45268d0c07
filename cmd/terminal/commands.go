package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sevigo/jenkins-relay/internal/app"
	"github.com/sevigo/jenkins-relay/internal/wire"
)

// commandTimeout bounds a single console command, covering both the
// extraction and the trigger call.
const commandTimeout = 2 * time.Minute

func initializeAppCmd() tea.Cmd {
	return func() tea.Msg {
		a, cleanup, err := wire.InitializeApp(context.Background())
		if err != nil {
			return appInitializedMsg{err: err}
		}
		return appInitializedMsg{app: a, cleanup: cleanup}
	}
}

func triggerCmd(a *app.App, sentence string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		return triggerCompleteMsg{outcome: a.Runner.HandleCommand(ctx, sentence)}
	}
}

func previewCmd(a *app.App, sentence string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		record, inv := a.Runner.Preview(ctx, sentence)
		return previewCompleteMsg{record: record, inv: inv}
	}
}
