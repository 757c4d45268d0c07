// Package chat posts status messages back to the chat workspace.
package chat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/slack-go/slack"

	"github.com/sevigo/jenkins-relay/internal/core"
)

// SlackResponder implements core.Responder with the Slack Web API.
type SlackResponder struct {
	client *slack.Client
	logger *slog.Logger
}

var _ core.Responder = (*SlackResponder)(nil)

// NewSlackResponder creates a responder authenticated with a bot token.
// Extra options are passed to the Slack client, e.g. slack.OptionAPIURL.
func NewSlackResponder(token string, logger *slog.Logger, opts ...slack.Option) *SlackResponder {
	return &SlackResponder{
		client: slack.New(token, opts...),
		logger: logger,
	}
}

// Reply posts text to channel. A non-empty threadTS threads the message.
func (r *SlackResponder) Reply(ctx context.Context, channel, threadTS, text string) error {
	options := []slack.MsgOption{slack.MsgOptionText(text, false)}
	if threadTS != "" {
		options = append(options, slack.MsgOptionTS(threadTS))
	}

	_, ts, err := r.client.PostMessageContext(ctx, channel, options...)
	if err != nil {
		return fmt.Errorf("failed to post message to channel %s: %w", channel, err)
	}

	r.logger.Debug("status message posted", "channel", channel, "ts", ts, "thread_ts", threadTS)
	return nil
}

// NopResponder discards replies. It is used when no bot token is configured.
type NopResponder struct{}

var _ core.Responder = NopResponder{}

func (NopResponder) Reply(context.Context, string, string, string) error { return nil }
