package quiz

import "fmt"

// EvaluateField checks one value against one rule and returns the first
// violated check, or nil if the value passes.
//
// Checks run in a fixed precedence order: required, then length bounds,
// then pattern, then the custom predicate. An absent value (nil or empty
// string) on an optional rule passes immediately; no later check sees it.
// Non-string values skip the length and pattern checks, so only required
// and the custom predicate apply to them.
func EvaluateField(value any, rule Rule) *FieldError {
	absent := value == nil || value == ""

	if rule.Required && absent {
		return fieldError(rule, RuleRequired, value,
			fmt.Sprintf("%s is required", rule.Field))
	}
	if absent {
		return nil
	}

	if s, ok := value.(string); ok {
		if rule.MinLength > 0 && len(s) < rule.MinLength {
			return fieldError(rule, RuleMinLength, value,
				fmt.Sprintf("%s must be at least %d characters (got %d)", rule.Field, rule.MinLength, len(s)))
		}
		if rule.MaxLength > 0 && len(s) > rule.MaxLength {
			return fieldError(rule, RuleMaxLength, value,
				fmt.Sprintf("%s must be at most %d characters (got %d)", rule.Field, rule.MaxLength, len(s)))
		}
		if rule.Pattern != nil && !rule.Pattern.MatchString(s) {
			return fieldError(rule, RulePattern, value,
				fmt.Sprintf("%s does not match pattern %s", rule.Field, rule.Pattern))
		}
	}

	if rule.Validate != nil && !rule.Validate(value) {
		return fieldError(rule, RuleCustom, value,
			fmt.Sprintf("%s failed custom validation", rule.Field))
	}

	return nil
}

// fieldError builds a FieldError, honoring the rule's message override.
func fieldError(rule Rule, kind RuleKind, value any, msg string) *FieldError {
	if rule.ErrorMessage != "" {
		msg = rule.ErrorMessage
	}
	return &FieldError{
		Field:   rule.Field,
		Message: msg,
		Value:   value,
		Rule:    kind,
	}
}
