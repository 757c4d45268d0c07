package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/jenkins-relay/internal/core"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
	boldColor    = color.New(color.Bold)
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// preview is the printable form of a dry run.
type preview struct {
	Sentence      string               `json:"sentence,omitempty" yaml:"sentence,omitempty"`
	Record        core.ParameterRecord `json:"record" yaml:"record"`
	JobName       string               `json:"job_name" yaml:"job_name"`
	TargetURL     string               `json:"target_url" yaml:"target_url"`
	Parameterized bool                 `json:"parameterized" yaml:"parameterized"`
	Parameters    map[string]string    `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

func newPreview(sentence string, record core.ParameterRecord, inv core.JobInvocation) preview {
	return preview{
		Sentence:      sentence,
		Record:        record,
		JobName:       inv.JobName,
		TargetURL:     inv.TargetURL,
		Parameterized: inv.UseParameterizedBuild,
		Parameters:    inv.Parameters,
	}
}

func printPreview(w io.Writer, format string, p preview) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return err
		}
		return enc.Close()
	case formatText, "":
		printPreviewText(w, p)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use text, json or yaml)", format)
	}
}

func printPreviewText(w io.Writer, p preview) {
	if p.Sentence != "" {
		titleColor.Fprintln(w, "Sentence")
		dimColor.Fprintf(w, "   %s\n\n", p.Sentence)
	}

	titleColor.Fprintln(w, "Parameters")
	printField(w, "product", p.Record.Product)
	printField(w, "environment", p.Record.Environment)
	printField(w, "suite", p.Record.Suite)
	printField(w, "type", p.Record.Type)
	if p.Record.IsEmpty() {
		warnColor.Fprintln(w, "   nothing was extracted")
	}

	fmt.Fprintln(w)
	titleColor.Fprintln(w, "Invocation")
	fmt.Fprintf(w, "   job:  %s\n", boldColor.Sprint(p.JobName))
	fmt.Fprintf(w, "   url:  %s\n", p.TargetURL)
	if !p.Parameterized {
		dimColor.Fprintln(w, "   no build parameters are sent")
		return
	}
	for _, key := range slices.Sorted(maps.Keys(p.Parameters)) {
		fmt.Fprintf(w, "   %s=%s\n", key, p.Parameters[key])
	}
}

func printField(w io.Writer, name string, value *string) {
	if value == nil {
		dimColor.Fprintf(w, "   %-12s %s\n", name+":", core.MissingField)
		return
	}
	fmt.Fprintf(w, "   %-12s %s\n", name+":", successColor.Sprint(*value))
}

func printOutcome(w io.Writer, outcome core.TriggerOutcome) {
	if outcome.Success {
		successColor.Fprintln(w, outcome.Message)
	} else {
		errorColor.Fprintln(w, outcome.Message)
	}
	dimColor.Fprintf(w, "   job: %s  status: %s\n", outcome.JobName, outcome.Status())
}
