package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Omochikun55/quiz-validator/internal/quiz"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", `[{"question": "What is 2+2?", "options": ["3", "4"]}]`)
	writeFile(t, dir, "sub/b.json", `[{"question": "Hi?", "options": ["A", "B"]}]`)
	writeFile(t, dir, "notes.txt", "not a quiz")

	res, err := Run(dir, nil)
	require.NoError(t, err)

	require.Len(t, res.Files, 2, "only json files are picked up")
	assert.False(t, res.Valid)
	assert.Equal(t, 2, res.Summary.Total)
	assert.Equal(t, 1, res.Summary.Passed)
	assert.Equal(t, 1, res.Summary.Failed)
	// Scores 100 and 83: round(183/2) = 92.
	assert.Equal(t, 92, res.Summary.AverageScore)
}

func TestRun_WalkOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.json", `[]`)
	writeFile(t, dir, "a.json", `[]`)

	res, err := Run(dir, nil)
	require.NoError(t, err)
	require.Len(t, res.Files, 2)
	assert.Equal(t, "a.json", filepath.Base(res.Files[0].Path))
	assert.Equal(t, "b.json", filepath.Base(res.Files[1].Path))
}

func TestRun_BadFileDoesNotAbort(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.json", `{not json`)
	writeFile(t, dir, "good.json", `[{"question": "What is 2+2?", "options": ["3", "4"]}]`)

	res, err := Run(dir, nil)
	require.NoError(t, err)

	require.Len(t, res.Files, 2)
	assert.Error(t, res.Files[0].Err)
	assert.Nil(t, res.Files[0].Set)
	assert.False(t, res.Valid, "a broken file marks the batch invalid")
	assert.Equal(t, 1, res.Summary.Total, "broken files contribute no questions")
}

func TestRun_EmptyDir(t *testing.T) {
	res, err := Run(t.TempDir(), nil)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, quiz.Summary{}, res.Summary)
}

func TestRun_OptionsApplied(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", `[{"question": "What is 2+2?", "options": ["3", "4"]}]`)

	res, err := Run(dir, &quiz.Options{RequireExplanation: true})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, 1, res.Summary.Failed)
}
