package report

import (
	"encoding/json"
	"io"

	"github.com/Omochikun55/quiz-validator/internal/quiz"
)

// JSONRenderer writes the machine-readable report. Field names are part
// of the output contract; renaming them breaks downstream consumers.
type JSONRenderer struct{}

// jsonReport is the top-level document shape.
type jsonReport struct {
	Name    string        `json:"name,omitempty"`
	Valid   bool          `json:"valid"`
	Results []quiz.Result `json:"results"`
	Summary quiz.Summary  `json:"summary"`
}

func (j *JSONRenderer) Render(w io.Writer, name string, set *quiz.SetResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Name:    name,
		Valid:   set.Valid,
		Results: set.Results,
		Summary: set.Summary,
	})
}
