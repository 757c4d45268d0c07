// Package jenkins triggers build jobs through the Jenkins remote access API.
package jenkins

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sevigo/jenkins-relay/internal/core"
)

const userAgent = "jenkins-relay"

// Response is the part of a trigger response the relay reports to users.
type Response struct {
	StatusCode int
	Body       string
}

// Client issues build triggers.
//
//go:generate mockgen -destination=../../mocks/mock_jenkins_client.go -package=mocks . Client
type Client interface {
	// Trigger performs a single POST to inv.TargetURL. A non-nil error means no
	// response was received; any HTTP status is returned as a Response.
	Trigger(ctx context.Context, inv core.JobInvocation) (*Response, error)
}

var _ Client = (*HTTPClient)(nil)

type HTTPClient struct {
	httpc  *resty.Client
	logger *slog.Logger
}

type ClientOpt func(c *HTTPClient) error

// NewClient returns a Jenkins client backed by a fresh resty client.
func NewClient(logger *slog.Logger, opts ...ClientOpt) (*HTTPClient, error) {
	return NewClientWithResty(resty.New(), logger, opts...)
}

// NewClientWithResty returns a Jenkins client using r for transport.
func NewClientWithResty(r *resty.Client, logger *slog.Logger, opts ...ClientOpt) (*HTTPClient, error) {
	c := &HTTPClient{
		httpc:  r,
		logger: logger,
	}

	c.httpc.SetHeader("User-Agent", userAgent)
	c.httpc.SetLogger(&restyLogger{logger: logger})
	c.httpc.SetRetryCount(0)

	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// WithBasicAuth authenticates every request with a Jenkins user and API token.
func WithBasicAuth(user, token string) ClientOpt {
	return func(c *HTTPClient) error {
		c.httpc.SetBasicAuth(user, token)
		return nil
	}
}

// WithTimeout bounds each trigger request.
func WithTimeout(d time.Duration) ClientOpt {
	return func(c *HTTPClient) error {
		c.httpc.SetTimeout(d)
		return nil
	}
}

func (c *HTTPClient) Trigger(ctx context.Context, inv core.JobInvocation) (*Response, error) {
	req := c.httpc.R().SetContext(ctx)
	if inv.UseParameterizedBuild && len(inv.Parameters) > 0 {
		req.SetQueryParams(inv.Parameters)
	}

	resp, err := req.Post(inv.TargetURL)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("jenkins responded",
		"url", inv.TargetURL,
		"status", resp.StatusCode(),
		"duration", resp.Time(),
	)

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       string(resp.Body()),
	}, nil
}

// restyLogger routes resty's internal messages into slog.
type restyLogger struct {
	logger *slog.Logger
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.logger.Error("resty: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn("resty: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug("resty: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}
