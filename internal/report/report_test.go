package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathcheck/internal/answers"
	"github.com/abhisek/pathcheck/internal/coach"
	"github.com/abhisek/pathcheck/internal/scoring"
)

var fixedTime = time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

func emptyReport() Report {
	return Report{GeneratedAt: fixedTime, Results: scoring.Compute(answers.Sets{})}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, emptyReport()))
	out := buf.String()

	assert.Contains(t, out, "Recommendation: NO")
	assert.Contains(t, out, "Overall score: 15/100")
	assert.Contains(t, out, "Ability to Learn")
	assert.Contains(t, out, "Alternative careers to consider")
	assert.Contains(t, out, "1. ")
	assert.NotContains(t, out, "Coach notes")
}

func TestWriteText_WithNarrative(t *testing.T) {
	r := emptyReport()
	r.Narrative = &coach.Narrative{
		Summary:   "Keep going.",
		Strengths: []string{"Curious"},
		Gaps:      []string{"Accounting basics"},
		NextSteps: []string{"Take a course"},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "Coach notes")
	assert.Contains(t, out, "+ Curious")
	assert.Contains(t, out, "* Accounting basics")
	assert.Contains(t, out, "> Take a course")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, emptyReport()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	results := decoded["results"].(map[string]any)
	assert.Equal(t, "NO", results["recommendation"])
	assert.EqualValues(t, 15, results["overall_score"])
	assert.NotContains(t, decoded, "narrative")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "pathcheck-report-20260304-050607.txt", Filename(fixedTime))
}

func TestSave_Directory(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(dir, emptyReport())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, Filename(fixedTime)), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "PathCheck"))
}

func TestSave_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.txt")
	got, err := Save(path, emptyReport())
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestSave_MissingDirectory(t *testing.T) {
	_, err := Save(filepath.Join(t.TempDir(), "nope", "r.txt"), emptyReport())
	assert.Error(t, err)
}

func TestWrap(t *testing.T) {
	got := wrap("aaa bbb ccc ddd", 7)
	assert.Equal(t, "aaa bbb\nccc ddd", got)
	assert.Equal(t, "", wrap("   ", 10))
}
