package validator

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
)

// Severity ranks an Issue. Lower values sort first.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

var severityNames = [...]string{
	SeverityError:   "error",
	SeverityWarning: "warning",
	SeverityInfo:    "info",
}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// MarshalJSON writes the severity name rather than its number.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Issue is one finding about a setting. Field is the setting key, empty for
// document-wide findings. Value echoes the offending value when there is one.
type Issue struct {
	Severity Severity `json:"severity"`
	Field    string   `json:"field,omitempty"`
	Message  string   `json:"message"`
	Value    any      `json:"value,omitempty"`
}

func (i Issue) Error() string {
	msg := i.Message
	if i.Field != "" {
		msg = i.Field + ": " + msg
	}
	if i.Value != nil {
		msg = fmt.Sprintf("%s (got %v)", msg, i.Value)
	}
	return i.Severity.String() + ": " + msg
}

// Result collects the issues found in one validation run. The zero value
// and a nil *Result are both empty and valid.
type Result struct {
	Issues []Issue `json:"issues"`
}

// Valid reports whether no issue is an error. Warnings and notes do not
// make a result invalid.
func (r *Result) Valid() bool {
	return !r.HasErrors()
}

func (r *Result) HasErrors() bool {
	return r.count(SeverityError) > 0
}

func (r *Result) Add(s Severity, field, message string, value any) {
	r.Issues = append(r.Issues, Issue{Severity: s, Field: field, Message: message, Value: value})
}

func (r *Result) AddError(field, message string, value any) {
	r.Add(SeverityError, field, message, value)
}

func (r *Result) AddWarning(field, message string, value any) {
	r.Add(SeverityWarning, field, message, value)
}

func (r *Result) AddInfo(field, message string, value any) {
	r.Add(SeverityInfo, field, message, value)
}

func (r *Result) Errors() []Issue   { return r.only(SeverityError) }
func (r *Result) Warnings() []Issue { return r.only(SeverityWarning) }
func (r *Result) Infos() []Issue    { return r.only(SeverityInfo) }

func (r *Result) only(s Severity) []Issue {
	if r == nil {
		return nil
	}
	return slices.DeleteFunc(slices.Clone(r.Issues), func(i Issue) bool {
		return i.Severity != s
	})
}

func (r *Result) count(s Severity) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, i := range r.Issues {
		if i.Severity == s {
			n++
		}
	}
	return n
}

// Sort orders issues by severity, then by field. Issues on the same field
// keep their insertion order.
func (r *Result) Sort() {
	slices.SortStableFunc(r.Issues, func(a, b Issue) int {
		return cmp.Or(cmp.Compare(a.Severity, b.Severity), cmp.Compare(a.Field, b.Field))
	})
}
