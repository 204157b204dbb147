package quiz

import "math"

// Summary aggregates a set of per-question results.
type Summary struct {
	Total        int `json:"total"`
	Passed       int `json:"passed"`
	Failed       int `json:"failed"`
	AverageScore int `json:"averageScore"`
}

// SetResult is the outcome of validating an ordered question set.
// Results[i] corresponds to the i-th input question; downstream renderers
// rely on that positional correspondence.
type SetResult struct {
	Valid   bool     `json:"valid"`
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`
}

// ValidateSet validates each question independently and folds the results
// into a summary. Questions never affect one another; an empty set is
// valid with an average score of 0.
func ValidateSet(questions []*Question, opts *Options) SetResult {
	results := make([]Result, 0, len(questions))
	passed := 0
	sum := 0

	for _, q := range questions {
		r := ValidateQuestion(q, opts)
		if r.Valid {
			passed++
		}
		sum += r.Score
		results = append(results, r)
	}

	n := len(questions)
	avg := int(math.Round(float64(sum) / float64(max(1, n))))
	failed := n - passed

	return SetResult{
		Valid:   failed == 0,
		Results: results,
		Summary: Summary{
			Total:        n,
			Passed:       passed,
			Failed:       failed,
			AverageScore: avg,
		},
	}
}
