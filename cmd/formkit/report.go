package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for check reports.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// CheckResult is the outcome of one check.
type CheckResult struct {
	Valid      bool                `json:"valid"`
	Errors     map[string][]string `json:"errors"`
	Normalized map[string]string   `json:"normalized,omitempty"`
	// Invalid lists the invalid fields in schema order.
	Invalid []string `json:"-"`
}

// Reporter writes check results.
type Reporter struct {
	out    io.Writer
	format Format
}

func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{out: out, format: format}
}

func (r *Reporter) Report(res *CheckResult) error {
	if res == nil {
		return nil
	}
	if r.format == FormatJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(res), "encoding JSON report")
	}
	r.reportText(res)
	return nil
}

func (r *Reporter) reportText(res *CheckResult) {
	if res.Valid {
		fmt.Fprintln(r.out, color.GreenString("✓ Form is valid"))
	} else {
		fmt.Fprintf(r.out, "%s: %s\n\n", color.RedString("✗ Form is invalid"), color.RedString("%d field(s)", len(res.Invalid)))
		field := color.New(color.FgRed).SprintFunc()
		for _, name := range res.Invalid {
			for _, msg := range res.Errors[name] {
				fmt.Fprintf(r.out, "  • %s: %s\n", field(name), msg)
			}
		}
	}

	if len(res.Normalized) == 0 {
		return
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Normalized:")
	dim := color.New(color.FgHiBlack).SprintFunc()
	for _, name := range slices.Sorted(maps.Keys(res.Normalized)) {
		fmt.Fprintf(r.out, "  %s %s %s\n", name, dim("→"), res.Normalized[name])
	}
}
