package core

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack/slackevents"
)

// MentionEvent is the internal view of a chat mention that carries a command.
type MentionEvent struct {
	Channel   string
	User      string
	Text      string
	TimeStamp string
	ThreadTS  string
}

// ReplyThread returns the timestamp replies should be threaded on.
func (e *MentionEvent) ReplyThread() string {
	if e.ThreadTS != "" {
		return e.ThreadTS
	}
	return e.TimeStamp
}

// EventFromAppMention converts a Slack app_mention event into a MentionEvent.
// Mentions without any text besides whitespace are rejected.
func EventFromAppMention(event *slackevents.AppMentionEvent) (*MentionEvent, error) {
	if event == nil {
		return nil, fmt.Errorf("mention event is nil")
	}
	if strings.TrimSpace(event.Text) == "" {
		return nil, fmt.Errorf("mention has no text")
	}

	return &MentionEvent{
		Channel:   event.Channel,
		User:      event.User,
		Text:      event.Text,
		TimeStamp: event.TimeStamp,
		ThreadTS:  event.ThreadTimeStamp,
	}, nil
}
