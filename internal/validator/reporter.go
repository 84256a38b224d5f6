package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/tunedeck/internal/errors"
)

// Format selects how a Reporter renders a Result.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// maxValueWidth bounds how much of a value is echoed in text reports.
const maxValueWidth = 50

// sections lists the text report blocks in display order.
var sections = []struct {
	title    string
	severity Severity
	color    color.Attribute
}{
	{"Errors", SeverityError, color.FgRed},
	{"Warnings", SeverityWarning, color.FgYellow},
	{"Notes", SeverityInfo, color.FgCyan},
}

// Reporter writes a Result as coloured text or as a JSON object of the
// form {"valid": bool, "issues": [...]}.
type Reporter struct {
	out    io.Writer
	format Format
}

func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{out: out, format: format}
}

// Report renders result. A nil result writes nothing.
func (r *Reporter) Report(result *Result) error {
	switch {
	case result == nil:
		return nil
	case r.format == FormatJSON:
		return r.writeJSON(result)
	default:
		r.writeText(result)
		return nil
	}
}

func (r *Reporter) writeJSON(result *Result) error {
	report := struct {
		Valid  bool    `json:"valid"`
		Issues []Issue `json:"issues"`
	}{Valid: result.Valid(), Issues: result.Issues}
	if report.Issues == nil {
		report.Issues = []Issue{}
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(err, "encoding JSON report")
	}
	return nil
}

func (r *Reporter) writeText(result *Result) {
	nErr, nWarn := len(result.Errors()), len(result.Warnings())
	if nErr == 0 {
		fmt.Fprintln(r.out, color.GreenString("✓ Validation passed"))
	} else {
		counts := color.RedString("%d error(s)", nErr)
		if nWarn > 0 {
			counts += ", " + color.YellowString("%d warning(s)", nWarn)
		}
		fmt.Fprintf(r.out, "Validation failed: %s\n", counts)
	}

	for _, sec := range sections {
		issues := result.only(sec.severity)
		if len(issues) == 0 {
			continue
		}
		fmt.Fprintf(r.out, "\n%s:\n", sec.title)
		for _, i := range issues {
			fmt.Fprintln(r.out, formatIssue(i, color.New(sec.color)))
		}
	}
}

// formatIssue renders "  • field: message [value]".
func formatIssue(i Issue, fieldColor *color.Color) string {
	var sb strings.Builder
	sb.WriteString("  • ")
	if i.Field != "" {
		sb.WriteString(fieldColor.Sprint(i.Field) + ": ")
	}
	sb.WriteString(i.Message)
	if i.Value != nil {
		sb.WriteString(color.HiBlackString(" [%s]", truncate(fmt.Sprint(i.Value), maxValueWidth)))
	}
	return sb.String()
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
