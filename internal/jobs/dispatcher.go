// Package jobs turns extracted parameters into Jenkins build triggers and runs
// complete chat commands through the relay pipeline.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sevigo/jenkins-relay/internal/config"
	"github.com/sevigo/jenkins-relay/internal/core"
	"github.com/sevigo/jenkins-relay/internal/jenkins"
	"github.com/sevigo/jenkins-relay/internal/metrics"
)

const jobNameSeparator = "_"

// dispatcher implements core.JobDispatcher on top of a Jenkins client.
type dispatcher struct {
	cfg     config.JenkinsConfig
	client  jenkins.Client
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewDispatcher creates a dispatcher that addresses jobs under
// cfg.Jenkins.BaseURL. m may be nil.
func NewDispatcher(cfg *config.Config, client jenkins.Client, m *metrics.Metrics, logger *slog.Logger) core.JobDispatcher {
	return &dispatcher{
		cfg:     cfg.Jenkins,
		client:  client,
		metrics: m,
		logger:  logger,
	}
}

// JobName joins product, type, suite and environment, in that order. Missing
// fields are rendered as core.MissingField, so an incomplete record still
// yields a name (and most likely a 404 from Jenkins) instead of an error.
func JobName(record core.ParameterRecord) string {
	return strings.Join([]string{
		core.Display(record.Product),
		core.Display(record.Type),
		core.Display(record.Suite),
		core.Display(record.Environment),
	}, jobNameSeparator)
}

// Plan derives the invocation for record without contacting Jenkins.
func (d *dispatcher) Plan(record core.ParameterRecord) core.JobInvocation {
	jobName := JobName(record)
	inv := core.JobInvocation{
		JobName:               jobName,
		TargetURL:             d.cfg.BaseURL + jobName + d.cfg.Suffix,
		UseParameterizedBuild: d.cfg.Parameterized(),
	}
	if inv.UseParameterizedBuild {
		inv.Parameters = record.Fields()
	}
	return inv
}

// Dispatch triggers the job once and classifies the result. It never retries.
func (d *dispatcher) Dispatch(ctx context.Context, record core.ParameterRecord) core.TriggerOutcome {
	inv := d.Plan(record)
	d.logger.Info("triggering jenkins job", "job_name", inv.JobName, "url", inv.TargetURL, "parameterized", inv.UseParameterizedBuild)

	start := time.Now()
	resp, err := d.client.Trigger(ctx, inv)
	elapsed := time.Since(start)

	outcome := classify(inv, resp, err)
	switch {
	case outcome.Success:
		d.metrics.ObserveTrigger(elapsed, metrics.ResultSuccess)
		d.logger.Info("jenkins job triggered", "job_name", inv.JobName, "status", outcome.Status(), "duration", elapsed)
	case errors.As(outcome.Err, new(*core.DispatchHTTPError)):
		d.metrics.ObserveTrigger(elapsed, metrics.ResultHTTPError)
		d.logger.Warn("jenkins rejected trigger", "job_name", inv.JobName, "status", outcome.Status(), "error", outcome.Err)
	default:
		d.metrics.ObserveTrigger(elapsed, metrics.ResultTransportError)
		d.logger.Error("jenkins trigger failed", "job_name", inv.JobName, "url", inv.TargetURL, "error", outcome.Err)
	}
	return outcome
}

func classify(inv core.JobInvocation, resp *jenkins.Response, err error) core.TriggerOutcome {
	if err != nil {
		return core.TriggerOutcome{
			JobName: inv.JobName,
			Message: fmt.Sprintf("⚠️ Error triggering Jenkins: %v", err),
			Err:     &core.DispatchTransportError{URL: inv.TargetURL, Err: err},
		}
	}

	status := resp.StatusCode
	if isTriggered(status) {
		return core.TriggerOutcome{
			Success:    true,
			StatusCode: &status,
			JobName:    inv.JobName,
			Message:    fmt.Sprintf("✅ Jenkins job triggered successfully: %s", inv.JobName),
		}
	}

	return core.TriggerOutcome{
		StatusCode: &status,
		JobName:    inv.JobName,
		Message:    fmt.Sprintf("⚠️ Jenkins failed (%d): %s", status, resp.Body),
		Err:        &core.DispatchHTTPError{StatusCode: status, Body: resp.Body},
	}
}

// isTriggered reports whether Jenkins accepted the build. Jenkins answers 201
// with a queue location for most triggers; some proxies rewrite it to 200.
func isTriggered(status int) bool {
	return status == 200 || status == 201
}
