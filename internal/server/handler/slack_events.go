// Package handler provides HTTP handlers for the jenkins-relay service.
package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"

	"github.com/sevigo/jenkins-relay/internal/config"
	"github.com/sevigo/jenkins-relay/internal/core"
)

const maxEventBodyBytes = 1 << 20

// SlackEventsHandler processes Slack Events API deliveries.
type SlackEventsHandler struct {
	cfg       *config.Config
	commands  core.CommandHandler
	responder core.Responder
	logger    *slog.Logger
}

// NewSlackEventsHandler creates a handler that runs mention commands through
// commands. responder may be nil, in which case no thread reply is posted.
func NewSlackEventsHandler(cfg *config.Config, commands core.CommandHandler, responder core.Responder, logger *slog.Logger) *SlackEventsHandler {
	return &SlackEventsHandler{
		cfg:       cfg,
		commands:  commands,
		responder: responder,
		logger:    logger,
	}
}

// Handle answers URL verification challenges and runs app_mention commands.
// Every other well-formed envelope is acknowledged.
func (h *SlackEventsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxEventBodyBytes))
	if err != nil {
		h.logger.Error("could not read event body", "error", err)
		http.Error(w, "Could not read body", http.StatusBadRequest)
		return
	}

	if h.cfg.Slack.SigningSecret != "" {
		if err := verifySignature(r.Header, body, h.cfg.Slack.SigningSecret); err != nil {
			h.logger.Error("invalid slack request signature", "error", err)
			http.Error(w, "Invalid signature", http.StatusUnauthorized)
			return
		}
	}

	if !json.Valid(body) {
		h.logger.Warn("event body is not valid JSON")
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	switch {
	case err == nil && event.Type == slackevents.URLVerification:
		h.handleURLVerification(w, event)
	case err == nil && event.Type == slackevents.CallbackEvent:
		h.handleCallback(r.Context(), w, event)
	default:
		// Envelopes that only carry an app_mention under "event" still run.
		if mention := mentionFromEnvelope(body); mention != nil {
			h.handleMention(r.Context(), w, mention)
			return
		}
		h.logger.Debug("ignoring unhandled event envelope", "type", event.Type, "error", err)
		writeJSON(w, h.logger, map[string]any{"ok": true})
	}
}

func (h *SlackEventsHandler) handleURLVerification(w http.ResponseWriter, event slackevents.EventsAPIEvent) {
	verification, ok := event.Data.(*slackevents.EventsAPIURLVerificationEvent)
	if !ok {
		writeJSON(w, h.logger, map[string]any{"ok": true})
		return
	}
	h.logger.Info("answering url verification challenge")
	writeJSON(w, h.logger, map[string]string{"challenge": verification.Challenge})
}

func (h *SlackEventsHandler) handleCallback(ctx context.Context, w http.ResponseWriter, event slackevents.EventsAPIEvent) {
	mention, ok := event.InnerEvent.Data.(*slackevents.AppMentionEvent)
	if !ok {
		h.logger.Debug("ignoring unhandled inner event", "type", event.InnerEvent.Type)
		writeJSON(w, h.logger, map[string]any{"ok": true})
		return
	}
	h.handleMention(ctx, w, mention)
}

func (h *SlackEventsHandler) handleMention(ctx context.Context, w http.ResponseWriter, mention *slackevents.AppMentionEvent) {
	command, err := core.EventFromAppMention(mention)
	if err != nil {
		h.logger.Debug("ignoring mention", "reason", err.Error(), "channel", mention.Channel)
		writeJSON(w, h.logger, map[string]any{"ok": true})
		return
	}

	outcome := h.commands.HandleCommand(ctx, command.Text)

	if h.responder != nil && command.Channel != "" {
		if err := h.responder.Reply(ctx, command.Channel, command.ReplyThread(), outcome.Message); err != nil {
			h.logger.Error("failed to post status message", "error", err, "channel", command.Channel)
		}
	}

	writeJSON(w, h.logger, map[string]string{"text": outcome.Message})
}

// mentionFromEnvelope reads an app_mention from the "event" field of an
// envelope slackevents does not recognize as an event callback.
func mentionFromEnvelope(body []byte) *slackevents.AppMentionEvent {
	var envelope struct {
		Event json.RawMessage `json:"event"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Event) == 0 {
		return nil
	}

	var mention slackevents.AppMentionEvent
	if err := json.Unmarshal(envelope.Event, &mention); err != nil || mention.Type != string(slackevents.AppMention) {
		return nil
	}
	return &mention
}

func verifySignature(header http.Header, body []byte, secret string) error {
	verifier, err := slack.NewSecretsVerifier(header, secret)
	if err != nil {
		return err
	}
	if _, err := verifier.Write(body); err != nil {
		return err
	}
	return verifier.Ensure()
}

// writeJSON writes v without HTML escaping so echoed values stay byte for byte.
func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))); err != nil {
		logger.Warn("failed to write response", "error", err)
	}
}
