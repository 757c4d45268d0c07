package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/sevigo/jenkins-relay/internal/core"
)

var (
	// Opening fence with an optional language tag: ```json, ```JSON, ```.
	leadingFenceRegex  = regexp.MustCompile("^```[A-Za-z0-9_+-]*")
	trailingFenceRegex = regexp.MustCompile("```$")
)

// StripCodeFence removes the code-fence decoration some models wrap around
// their JSON answer. It strips until nothing changes, so applying it twice
// gives the same result as applying it once.
func StripCodeFence(s string) string {
	for {
		next := stripFenceOnce(s)
		if next == s {
			return s
		}
		s = next
	}
}

func stripFenceOnce(s string) string {
	s = strings.TrimSpace(s)
	s = leadingFenceRegex.ReplaceAllString(s, "")
	s = trailingFenceRegex.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// parseParameterRecord decodes a sanitized provider answer. The answer must be
// a single JSON object; the four known keys are read from it and everything
// else is ignored.
func parseParameterRecord(raw string) (core.ParameterRecord, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return core.EmptyRecord(), fmt.Errorf("%w: %w", core.ErrExtractionParse, err)
	}
	if obj == nil {
		return core.EmptyRecord(), fmt.Errorf("%w: response is null", core.ErrExtractionParse)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return core.EmptyRecord(), fmt.Errorf("%w: unexpected data after the JSON object", core.ErrExtractionParse)
	}

	return core.ParameterRecord{
		Product:     fieldValue(obj, "product"),
		Environment: fieldValue(obj, "environment"),
		Suite:       fieldValue(obj, "suite"),
		Type:        fieldValue(obj, "type"),
	}, nil
}

// fieldValue renders a decoded JSON value as a field. Absent keys and nulls
// stay unset; scalars keep their JSON text.
func fieldValue(obj map[string]any, key string) *string {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil
	}

	switch val := v.(type) {
	case string:
		return &val
	case json.Number:
		return core.StringPtr(val.String())
	case bool:
		return core.StringPtr(strconv.FormatBool(val))
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(val); err != nil {
			return nil
		}
		return core.StringPtr(strings.TrimSpace(buf.String()))
	}
}
