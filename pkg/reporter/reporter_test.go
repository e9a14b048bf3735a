package reporter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srcfix/pkg/config"
	"github.com/yaklabco/srcfix/pkg/engine"
	"github.com/yaklabco/srcfix/pkg/fix"
	"github.com/yaklabco/srcfix/pkg/plugin"
	"github.com/yaklabco/srcfix/pkg/runner"
)

func sampleResult() *runner.Result {
	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "src/app.js",
				Report: &engine.FileReport{
					Path: "src/app.js",
					Diagnostics: []plugin.Diagnostic{
						{
							PluginID:    "semicolons",
							Severity:    config.SeverityWarning,
							Message:     "Statement is missing a trailing semicolon",
							FilePath:    "src/app.js",
							StartLine:   3,
							StartColumn: 10,
							EndLine:     3,
							EndColumn:   10,
							Fixable:     true,
						},
						{
							PluginID: "todos",
							RuleID:   "TODO",
							Severity: config.SeverityInfo,
							Message:  "Unresolved TODO marker",
							FilePath: "src/app.js",
						},
					},
				},
			},
			{
				Path:   "src/clean.js",
				Report: &engine.FileReport{Path: "src/clean.js"},
			},
		},
	}
	result.Stats.FilesDiscovered = 2
	result.Stats.FilesProcessed = 2
	result.Stats.FilesWithIssues = 1
	result.Stats.DiagnosticsTotal = 2
	result.Stats.DiagnosticsFixable = 1
	result.Stats.DiagnosticsBySeverity = map[string]int{"warning": 1, "info": 1}
	return result
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"", FormatText, false},
		{"json", FormatJSON, false},
		{"diff", FormatDiff, false},
		{"sarif", "", true},
		{"TEXT", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestNew_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Format: Format("sarif")})
	assert.Error(t, err)
}

func TestNew_SelectsImplementation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	rep, err := New(Options{Writer: &buf, Format: FormatJSON})
	require.NoError(t, err)
	assert.IsType(t, &JSONReporter{}, rep)

	rep, err = New(Options{Writer: &buf, Format: FormatDiff})
	require.NoError(t, err)
	assert.IsType(t, &DiffReporter{}, rep)

	rep, err = New(Options{Writer: &buf})
	require.NoError(t, err)
	assert.IsType(t, &TextReporter{}, rep)
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := NewTextReporter(Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	n, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out := buf.String()
	assert.Contains(t, out, "src/app.js")
	assert.Contains(t, out, "missing a trailing semicolon")
	assert.Contains(t, out, "3:10")
	assert.Contains(t, out, "(semicolons)")
	assert.Contains(t, out, "(todos/TODO)")
	// Clean files produce no section.
	assert.NotContains(t, out, "src/clean.js")
	// Fixable issues remain, so the reader is pointed at fix mode.
	assert.Contains(t, out, "Run with --fix to auto-repair fixable issues")
}

func TestTextReporter_FixModeSuppressesHint(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := NewTextReporter(Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
		FixMode:     true,
	})

	_, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "Run with --fix")
}

func TestTextReporter_EmptyResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := NewTextReporter(Options{Writer: &buf, Color: "never", ShowSummary: true})

	n, err := rep.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, buf.String())
}

func TestTextReporter_CleanRunIsSilent(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "a.js", Report: &engine.FileReport{Path: "a.js"}},
			{Path: "b.js", Report: &engine.FileReport{Path: "b.js"}},
		},
	}
	result.Stats.FilesProcessed = 2

	var buf bytes.Buffer
	rep := NewTextReporter(Options{Writer: &buf, Color: "never", ShowSummary: true})

	n, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, buf.String())
}

func TestTextReporter_FileError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := NewTextReporter(Options{Writer: &buf, Color: "never"})

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "bad.js", Error: errors.New("permission denied")},
		},
	}
	result.Stats.FilesErrored = 1

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "permission denied")
}

func TestTextReporter_SkippedFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := NewTextReporter(Options{Writer: &buf, Color: "never"})

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "busy.js",
				Report: &engine.FileReport{
					Path:       "busy.js",
					Skipped:    true,
					SkipReason: "file modified during processing",
				},
			},
		},
	}

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "skipped: file modified during processing")
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := NewJSONReporter(Options{Writer: &buf})

	n, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0.0", out.Version)
	require.Len(t, out.Files, 2)
	assert.Equal(t, "src/app.js", out.Files[0].Path)
	require.Len(t, out.Files[0].Diagnostics, 2)

	diag := out.Files[0].Diagnostics[0]
	assert.Equal(t, "semicolons", diag.PluginID)
	assert.Equal(t, "warning", diag.Severity)
	assert.Equal(t, 3, diag.StartLine)
	assert.True(t, diag.Fixable)

	assert.Equal(t, 2, out.Summary.FilesChecked)
	assert.Equal(t, 1, out.Summary.FilesWithIssues)
	assert.Equal(t, 2, out.Summary.TotalIssues)
	assert.Equal(t, 1, out.Summary.BySeverity["warning"])
	assert.Equal(t, 1, out.Summary.BySeverity["info"])
}

func TestJSONReporter_Compact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := NewJSONReporter(Options{Writer: &buf, Compact: true})

	_, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)

	// Compact output is a single line.
	assert.Equal(t, 1, strings.Count(strings.TrimRight(buf.String(), "\n"), "\n")+1)
}

func TestJSONReporter_NilResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := NewJSONReporter(Options{Writer: &buf})

	n, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Empty(t, out.Files)
}

func TestDiffReporter(t *testing.T) {
	t.Parallel()

	diff := fix.GenerateDiff("/work/src/app.js",
		[]byte("let x = 1\n"),
		[]byte("let x = 1;\n"),
	)
	require.NotNil(t, diff)

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "/work/src/app.js",
				Report: &engine.FileReport{
					Path:    "/work/src/app.js",
					Commits: 1,
					Diff:    diff,
				},
			},
		},
	}
	result.Stats.FilesModified = 1

	var buf bytes.Buffer
	rep := NewDiffReporter(Options{
		Writer:     &buf,
		Color:      "never",
		WorkingDir: "/work",
	})

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "diff --git a/src/app.js b/src/app.js")
	assert.Contains(t, out, "-let x = 1")
	assert.Contains(t, out, "+let x = 1;")
}

func TestDiffReporter_NoChanges(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "a.js", Report: &engine.FileReport{Path: "a.js"}},
		},
	}

	var buf bytes.Buffer
	rep := NewDiffReporter(Options{Writer: &buf, Color: "never"})

	n, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.NotContains(t, buf.String(), "diff --git")
}
