package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/jenkins-relay/internal/core"
)

func samplePreview() preview {
	record := core.ParameterRecord{
		Product: core.StringPtr("Checkout"),
		Suite:   core.StringPtr("Smoke"),
		Type:    core.StringPtr("API"),
	}
	return newPreview("run Smoke API tests for Checkout", record, core.JobInvocation{
		JobName:               "Checkout_API_Smoke_None",
		TargetURL:             "https://jenkins/job/Checkout_API_Smoke_None/buildWithParameters",
		UseParameterizedBuild: true,
		Parameters:            record.Fields(),
	})
}

func TestPrintPreview_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printPreview(&buf, formatJSON, samplePreview()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Checkout_API_Smoke_None", got["job_name"])
	assert.Equal(t, true, got["parameterized"])

	record := got["record"].(map[string]any)
	assert.Equal(t, "Checkout", record["product"])
	assert.Nil(t, record["environment"])
}

func TestPrintPreview_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printPreview(&buf, formatYAML, samplePreview()))

	var got preview
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Checkout_API_Smoke_None", got.JobName)
	assert.Equal(t, map[string]string{"product": "Checkout", "suite": "Smoke", "type": "API"}, got.Parameters)
}

func TestPrintPreview_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printPreview(&buf, formatText, samplePreview()))

	out := buf.String()
	assert.Contains(t, out, "Checkout_API_Smoke_None")
	assert.Contains(t, out, "environment: None")
	assert.Contains(t, out, "product=Checkout")
}

func TestPrintPreview_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, printPreview(&buf, "toml", samplePreview()))
}

func TestRecordFromFlags(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&jobNameFlags.product, "product", "", "")
	cmd.Flags().StringVar(&jobNameFlags.environment, "environment", "", "")
	cmd.Flags().StringVar(&jobNameFlags.suite, "suite", "", "")
	cmd.Flags().StringVar(&jobNameFlags.testType, "type", "", "")
	require.NoError(t, cmd.Flags().Parse([]string{"--product", "Checkout", "--type", "UI"}))

	record := recordFromFlags(cmd)
	assert.Equal(t, "Checkout", *record.Product)
	assert.Equal(t, "UI", *record.Type)
	assert.Nil(t, record.Environment)
	assert.Nil(t, record.Suite)
}
