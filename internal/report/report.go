// Package report renders assessment results for saving or printing.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abhisek/pathcheck/internal/coach"
	"github.com/abhisek/pathcheck/internal/scoring"
)

// Report is a rendered assessment outcome.
type Report struct {
	GeneratedAt time.Time        `json:"generated_at"`
	SessionID   string           `json:"session_id,omitempty"`
	Results     scoring.Results  `json:"results"`
	Narrative   *coach.Narrative `json:"narrative,omitempty"`
}

const rule = "----------------------------------------"

// WriteText renders the report as plain text.
func WriteText(w io.Writer, r Report) error {
	res := r.Results
	var b strings.Builder

	b.WriteString("PathCheck: Financial Analyst Assessment Results\n")
	b.WriteString(rule + "\n")
	if !r.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "Generated: %s\n", r.GeneratedAt.Format(time.RFC1123))
	}
	fmt.Fprintf(&b, "\n%s\n", res.Headline)
	fmt.Fprintf(&b, "Recommendation: %s\n", res.Recommendation)
	fmt.Fprintf(&b, "Overall score: %d/100 (%s)\n\n", res.OverallScore, res.OverallInterpretation)
	b.WriteString(wrap(res.Summary, 72))
	b.WriteString("\n\nScores\n" + rule + "\n")
	fmt.Fprintf(&b, "Psychometric fit:  %3d  %s\n", res.PsychometricScore, res.PsychometricInterpretation)
	fmt.Fprintf(&b, "Technical readiness: %d%%  %s\n", res.TechnicalScore, res.TechnicalInterpretation)

	b.WriteString("\nWISCAR analysis\n" + rule + "\n")
	for _, d := range scoring.AllDimensions() {
		fmt.Fprintf(&b, "%-18s %3d\n", d.Label(), res.WISCAR.Get(d))
	}

	section(&b, "Key insights", res.Insights, "- ")
	if n := r.Narrative; n != nil {
		b.WriteString("\nCoach notes\n" + rule + "\n")
		b.WriteString(wrap(n.Summary, 72) + "\n")
		section(&b, "Strengths", n.Strengths, "+ ")
		section(&b, "Areas to develop", n.Gaps, "* ")
		section(&b, "Next steps", n.NextSteps, "> ")
	}
	section(&b, "Career paths", res.CareerPaths, "- ")
	numbered(&b, "Learning path", res.LearningPath)
	if len(res.Alternatives) > 0 {
		section(&b, "Alternative careers to consider", res.Alternatives, "- ")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON renders the report as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Filename returns the default report file name for a time.
func Filename(t time.Time) string {
	return "pathcheck-report-" + t.Format("20060102-150405") + ".txt"
}

// Save writes a text report to path. When path is a directory the default
// file name is used inside it. It returns the path written.
func Save(path string, r Report) (string, error) {
	if path == "" {
		path = "."
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		at := r.GeneratedAt
		if at.IsZero() {
			at = time.Now()
		}
		path = filepath.Join(path, Filename(at))
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	if err := WriteText(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	return path, nil
}

func section(b *strings.Builder, title string, items []string, bullet string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n%s\n", title, rule)
	for _, it := range items {
		b.WriteString(bullet + it + "\n")
	}
}

func numbered(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n%s\n", title, rule)
	for i, it := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, it)
	}
}

// wrap breaks text on spaces so no line exceeds width, except single
// words longer than width.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	line := 0
	for i, w := range words {
		if i > 0 {
			if line+1+len(w) > width {
				b.WriteByte('\n')
				line = 0
			} else {
				b.WriteByte(' ')
				line++
			}
		}
		b.WriteString(w)
		line += len(w)
	}
	return b.String()
}
