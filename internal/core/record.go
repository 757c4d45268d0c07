package core

import "strconv"

// MissingField is rendered in place of any parameter the interpreter could not
// extract. It keeps job names constructible when the sentence was incomplete.
const MissingField = "None"

// ParameterRecord is the structured result of interpreting a chat command.
// Every field is independently optional; a nil field means the value was not
// present in the extraction result.
type ParameterRecord struct {
	Product     *string `json:"product" yaml:"product"`
	Environment *string `json:"environment" yaml:"environment"`
	Suite       *string `json:"suite" yaml:"suite"`
	Type        *string `json:"type" yaml:"type"`
}

// EmptyRecord returns a record with all four fields unset.
func EmptyRecord() ParameterRecord {
	return ParameterRecord{}
}

// IsEmpty reports whether no field was extracted.
func (r ParameterRecord) IsEmpty() bool {
	return r.Product == nil && r.Environment == nil && r.Suite == nil && r.Type == nil
}

// Fields returns the present fields keyed by their parameter name.
func (r ParameterRecord) Fields() map[string]string {
	fields := make(map[string]string, 4)
	for name, v := range map[string]*string{
		"product":     r.Product,
		"environment": r.Environment,
		"suite":       r.Suite,
		"type":        r.Type,
	} {
		if v != nil {
			fields[name] = *v
		}
	}
	return fields
}

// Display renders an optional field, substituting MissingField for nil.
func Display(v *string) string {
	if v == nil {
		return MissingField
	}
	return *v
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// JobInvocation is the trigger request derived from a ParameterRecord.
type JobInvocation struct {
	JobName               string            `json:"job_name" yaml:"job_name"`
	TargetURL             string            `json:"target_url" yaml:"target_url"`
	UseParameterizedBuild bool              `json:"parameterized" yaml:"parameterized"`
	Parameters            map[string]string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// TriggerOutcome is the classified result of a single trigger attempt.
type TriggerOutcome struct {
	Success    bool
	StatusCode *int
	Message    string
	JobName    string

	// Err is nil on success, otherwise a *DispatchHTTPError or
	// *DispatchTransportError.
	Err error
}

// Status returns the HTTP status as text, or "-" when no response was received.
func (o TriggerOutcome) Status() string {
	if o.StatusCode == nil {
		return "-"
	}
	return strconv.Itoa(*o.StatusCode)
}
