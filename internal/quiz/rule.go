package quiz

import (
	"fmt"
	"regexp"
)

// RuleKind tags a FieldError with the check that produced it.
type RuleKind string

const (
	RuleRequired   RuleKind = "required"
	RuleMinLength  RuleKind = "minLength"
	RuleMaxLength  RuleKind = "maxLength"
	RulePattern    RuleKind = "pattern"
	RuleCustom     RuleKind = "custom"
	RuleMinOptions RuleKind = "minOptions"
	RuleMaxOptions RuleKind = "maxOptions"
	RuleDuplicates RuleKind = "duplicates"
)

// Rule is one declarative check against one question field. The zero value
// of each constraint means "not set": a zero MinLength/MaxLength imposes no
// bound, a nil Pattern and a nil Validate skip those checks entirely.
//
// Rules are not mutated by the engine. Field must be a non-empty label;
// ValidateQuestion skips custom rules with an empty Field.
type Rule struct {
	// Field names the question field this rule targets (see Question.Field).
	Field string

	// Required rejects absent values (nil or empty string).
	Required bool

	// MinLength and MaxLength bound the length of string values,
	// inclusive on both ends. Non-string values are not length-checked.
	MinLength int
	MaxLength int

	// Pattern, when set, must match string values.
	Pattern *regexp.Regexp

	// Validate is an optional custom predicate. It must be pure for
	// validation to stay deterministic; that is the rule author's
	// obligation, not something the engine can enforce.
	Validate func(value any) bool

	// ErrorMessage overrides the default message for whichever check
	// fails first.
	ErrorMessage string
}

// FieldError describes one failed check. It is created fresh per
// evaluation and never mutated afterward.
type FieldError struct {
	Field   string   `json:"field"`
	Message string   `json:"message"`
	Value   any      `json:"value,omitempty"`
	Rule    RuleKind `json:"rule"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
