package quiz

import (
	"encoding/json"
	"fmt"
	"math"
)

// Result is the outcome of validating a single question. Valid is true
// exactly when Errors is empty; warnings never affect validity or the
// score.
type Result struct {
	Valid    bool         `json:"valid"`
	Errors   []FieldError `json:"errors"`
	Warnings []FieldError `json:"warnings"`
	Score    int          `json:"score"`
}

// MarshalJSON renders nil error lists as [] so machine-readable reports
// always carry arrays.
func (r Result) MarshalJSON() ([]byte, error) {
	type wire Result
	w := wire(r)
	if w.Errors == nil {
		w.Errors = []FieldError{}
	}
	if w.Warnings == nil {
		w.Warnings = []FieldError{}
	}
	return json.Marshal(w)
}

// ValidateQuestion runs the built-in rule set plus any custom rules
// against one question. Unlike EvaluateField, which stops at the first
// violated check for a single field, the checks here are independent:
// every field can contribute one error to the result.
//
// Custom rules with an empty Field label are skipped; the engine cannot
// resolve a target for them and treats them as a caller mistake rather
// than failing the question.
func ValidateQuestion(q *Question, opts *Options) Result {
	o := resolve(opts)

	var errs, warns []FieldError

	if fe := EvaluateField(stringOrNil(q.Question), Rule{
		Field:     "question",
		Required:  true,
		MinLength: o.QuestionMinLength,
		MaxLength: o.QuestionMaxLength,
	}); fe != nil {
		errs = append(errs, *fe)
	}

	if q.Options != nil {
		errs = append(errs, checkOptions(q.Options, o)...)
		if dup := duplicateWarning(q.Options); dup != nil {
			warns = append(warns, *dup)
		}
	}

	if o.RequireExplanation || q.Explanation != "" {
		if fe := EvaluateField(stringOrNil(q.Explanation), Rule{
			Field:     "explanation",
			Required:  o.RequireExplanation,
			MinLength: o.ExplanationMinLength,
			MaxLength: o.ExplanationMaxLength,
		}); fe != nil {
			errs = append(errs, *fe)
		}
	}

	if o.RequireCategory {
		if fe := EvaluateField(stringOrNil(q.Category), Rule{Field: "category", Required: true}); fe != nil {
			errs = append(errs, *fe)
		}
	}

	if o.RequireDifficulty {
		if fe := EvaluateField(stringOrNil(q.Difficulty), Rule{Field: "difficulty", Required: true}); fe != nil {
			errs = append(errs, *fe)
		}
	}

	for _, rule := range o.CustomRules {
		if rule.Field == "" {
			continue
		}
		if fe := EvaluateField(q.Field(rule.Field), rule); fe != nil {
			errs = append(errs, *fe)
		}
	}

	return Result{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
		Score:    score(len(errs), len(q.Options), o),
	}
}

// checkOptions validates the option count and each option value.
func checkOptions(options []string, o Options) []FieldError {
	var errs []FieldError

	n := len(options)
	if n < o.MinOptions {
		errs = append(errs, FieldError{
			Field:   "options",
			Message: fmt.Sprintf("question must have at least %d options (got %d)", o.MinOptions, n),
			Value:   n,
			Rule:    RuleMinOptions,
		})
	}
	if n > o.MaxOptions {
		errs = append(errs, FieldError{
			Field:   "options",
			Message: fmt.Sprintf("question must have at most %d options (got %d)", o.MaxOptions, n),
			Value:   n,
			Rule:    RuleMaxOptions,
		})
	}

	for i, opt := range options {
		if fe := EvaluateField(stringOrNil(opt), Rule{
			Field:     fmt.Sprintf("options[%d]", i),
			Required:  true,
			MinLength: o.OptionMinLength,
			MaxLength: o.OptionMaxLength,
		}); fe != nil {
			errs = append(errs, *fe)
		}
	}

	return errs
}

// duplicateWarning reports repeated option values. One warning covers any
// number of duplicates.
func duplicateWarning(options []string) *FieldError {
	seen := make(map[string]struct{}, len(options))
	for _, opt := range options {
		seen[opt] = struct{}{}
	}
	if len(seen) == len(options) {
		return nil
	}
	return &FieldError{
		Field:   "options",
		Message: "options contain duplicate values",
		Rule:    RuleDuplicates,
	}
}

// score derives the normalized 0-100 quality score.
//
// The base constant 4 covers the question-text, option-count, duplicate
// and correct-answer checks whether or not they ran; it is a fixed
// normalization constant kept for compatibility with the original scoring
// model, even though the correct-answer check it counts is never actually
// performed.
func score(failed, optionCount int, o Options) int {
	total := 4 + optionCount + len(o.CustomRules)
	if o.RequireExplanation {
		total++
	}
	if o.RequireCategory {
		total++
	}
	if o.RequireDifficulty {
		total++
	}

	s := int(math.Round(float64(total-failed) / float64(total) * 100))
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
