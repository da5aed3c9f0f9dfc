// ============================================================================
// DateTool - Calendar Difference Calculator
// ============================================================================
//
// Package:     report
// Description: Rendering of difference results as text, JSON, YAML or a
//              styled terminal panel
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	dterror "github.com/msto63/datetool/foundation/core/error"
	"github.com/msto63/datetool/internal/difference"
)

// Format selects a renderer
type Format string

const (
	FormatText   Format = "text"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatPretty Format = "pretty"
)

// Formats returns all formats accepted by ParseFormat
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatPretty}
}

// ParseFormat parses a format name, case-insensitively. The empty string
// is text.
func ParseFormat(s string) (Format, error) {
	name := Format(strings.ToLower(strings.TrimSpace(s)))
	if name == "" {
		return FormatText, nil
	}
	for _, f := range Formats() {
		if f == name {
			return f, nil
		}
	}

	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return FormatText, dterror.Newf("unknown output format %q (valid: %s)", s, strings.Join(names, ", ")).
		WithCode(dterror.CodeInvalidArgument).
		WithOperation("report.ParseFormat").
		WithDetail("format", s)
}

// Report is one comparison and the results requested for it
type Report struct {
	Start   time.Time
	End     time.Time
	Unit    difference.Unit
	Results []difference.Result
}

// FromEngine runs the given calculations on e
func FromEngine(e *difference.Engine, kinds ...difference.Kind) Report {
	return Report{
		Start:   e.Start(),
		End:     e.End(),
		Unit:    e.Unit(),
		Results: e.Results(kinds...),
	}
}

// Line returns the sentence printed for r in text mode
func Line(r difference.Result) string {
	return fmt.Sprintf("The number of %s between the two dates is %d", r.Kind, r.Value)
}

// Render writes rep to w in format f
func Render(w io.Writer, f Format, rep Report) error {
	switch f {
	case FormatText, "":
		return renderText(w, rep)
	case FormatJSON:
		return renderJSON(w, rep)
	case FormatYAML:
		return renderYAML(w, rep)
	case FormatPretty:
		return renderPretty(w, rep)
	default:
		return dterror.Newf("unknown output format %q", string(f)).
			WithCode(dterror.CodeInvalidArgument).
			WithOperation("report.Render")
	}
}

func renderText(w io.Writer, rep Report) error {
	for _, r := range rep.Results {
		if _, err := fmt.Fprintln(w, Line(r)); err != nil {
			return err
		}
	}
	return nil
}

// document is the machine-readable shape shared by JSON and YAML
type document struct {
	Start   string          `json:"start" yaml:"start"`
	End     string          `json:"end" yaml:"end"`
	Unit    difference.Unit `json:"unit" yaml:"unit"`
	Results []entry         `json:"results" yaml:"results"`
}

type entry struct {
	Kind  string `json:"kind" yaml:"kind"`
	Value int64  `json:"value" yaml:"value"`
}

func newDocument(rep Report) document {
	doc := document{
		Start:   rep.Start.Format(time.RFC3339Nano),
		End:     rep.End.Format(time.RFC3339Nano),
		Unit:    rep.Unit,
		Results: make([]entry, 0, len(rep.Results)),
	}
	for _, r := range rep.Results {
		doc.Results = append(doc.Results, entry{Kind: r.Kind.Key(), Value: r.Value})
	}
	return doc
}

func renderJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newDocument(rep))
}

func renderYAML(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(rep)); err != nil {
		return err
	}
	return enc.Close()
}
