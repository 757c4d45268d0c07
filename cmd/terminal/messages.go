package main

import (
	"github.com/sevigo/jenkins-relay/internal/app"
	"github.com/sevigo/jenkins-relay/internal/core"
)

// Indicates that the relay pipeline has been assembled.
type appInitializedMsg struct {
	app     *app.App
	cleanup func()
	err     error
}

// Carries the result of a full pipeline run.
type triggerCompleteMsg struct {
	outcome core.TriggerOutcome
}

// Carries the result of a dry run.
type previewCompleteMsg struct {
	record core.ParameterRecord
	inv    core.JobInvocation
}
