package chat

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlackResponder_Reply(t *testing.T) {
	var form map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat.postMessage", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		form = map[string]string{
			"channel":   r.FormValue("channel"),
			"text":      r.FormValue("text"),
			"thread_ts": r.FormValue("thread_ts"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ok":true,"channel":"C123","ts":"1700000000.000200"}`)
	}))
	defer srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	responder := NewSlackResponder("xoxb-test", logger, slack.OptionAPIURL(srv.URL+"/"))

	err := responder.Reply(t.Context(), "C123", "1700000000.000100", "✅ Jenkins job triggered successfully: Checkout_API_Smoke_staging")
	require.NoError(t, err)

	assert.Equal(t, "C123", form["channel"])
	assert.Equal(t, "1700000000.000100", form["thread_ts"])
	assert.Equal(t, "✅ Jenkins job triggered successfully: Checkout_API_Smoke_staging", form["text"])
}

func TestSlackResponder_ReplyError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ok":false,"error":"channel_not_found"}`)
	}))
	defer srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	responder := NewSlackResponder("xoxb-test", logger, slack.OptionAPIURL(srv.URL+"/"))

	err := responder.Reply(t.Context(), "C404", "", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel_not_found")
}

func TestNopResponder(t *testing.T) {
	assert.NoError(t, NopResponder{}.Reply(t.Context(), "C1", "", "ignored"))
}
