// Package report renders validation results for humans and machines.
// All renderers treat quiz.SetResult and its summary as the stable
// contract surface; they never re-validate or reorder anything.
package report

import (
	"fmt"
	"io"

	"github.com/Omochikun55/quiz-validator/internal/quiz"
)

// Renderer writes one report for a validated question set. name labels
// the source document in the output (a file path, usually).
type Renderer interface {
	Render(w io.Writer, name string, set *quiz.SetResult) error
}

// For returns the renderer for a format name: "text", "json" or "html".
func For(format string) (Renderer, error) {
	switch format {
	case "text":
		return &TextRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	case "html":
		return &HTMLRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown report format %q", format)
}
