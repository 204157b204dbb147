// Package batch validates every quiz document under a directory tree.
package batch

import (
	"io/fs"
	"math"
	"path/filepath"
	"strings"

	"github.com/Omochikun55/quiz-validator/internal/loader"
	"github.com/Omochikun55/quiz-validator/internal/quiz"
)

// FileResult is the outcome for one document. Exactly one of Err and Set
// is meaningful: a file that failed to load has no set result.
type FileResult struct {
	Path string
	Set  *quiz.SetResult
	Err  error
}

// Result folds every file in walk order plus grand totals. Totals use
// the same rounding rules as the per-set summary: AverageScore is the
// rounded mean over all questions in all loadable files, 0 when there
// are none.
type Result struct {
	Files   []FileResult
	Valid   bool
	Summary quiz.Summary
}

// Run walks dir for *.json documents, validates each with opts, and
// aggregates. A file that fails to load is recorded and marks the batch
// invalid, but never stops the walk. The walk order (and therefore the
// Files order) is filepath.WalkDir's lexical order.
func Run(dir string, opts *quiz.Options) (*Result, error) {
	out := &Result{Valid: true}
	sum := 0

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}

		questions, err := loader.Load(path)
		if err != nil {
			out.Files = append(out.Files, FileResult{Path: path, Err: err})
			out.Valid = false
			return nil
		}

		set := quiz.ValidateSet(questions, opts)
		out.Files = append(out.Files, FileResult{Path: path, Set: &set})
		if !set.Valid {
			out.Valid = false
		}

		out.Summary.Total += set.Summary.Total
		out.Summary.Passed += set.Summary.Passed
		out.Summary.Failed += set.Summary.Failed
		for _, r := range set.Results {
			sum += r.Score
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out.Summary.AverageScore = int(math.Round(float64(sum) / float64(max(1, out.Summary.Total))))
	return out, nil
}
