package quiz

import (
	"encoding/json"
	"fmt"
)

// Question is the canonical record shape produced by the format converters
// and consumed by the validation engine.
type Question struct {
	// ID is an optional caller-supplied label. Source documents may carry
	// it as a string or a number; both are normalized to a string.
	// No uniqueness is enforced here.
	ID string

	// Question is the prompt text. Required.
	Question string

	// Options is the ordered list of answer options.
	// A nil slice means the question carries no options at all;
	// option-count and per-option checks are skipped in that case.
	Options []string

	// CorrectAnswer is the expected answer. Optional.
	CorrectAnswer string

	// Explanation is an optional worked explanation shown after answering.
	Explanation string

	// Category is an optional topic label.
	Category string

	// Difficulty is an optional difficulty label, normalized to a string
	// like ID.
	Difficulty string

	// Extra holds any additional named fields from the source document.
	// Custom rules may target these by name.
	Extra map[string]any
}

// Field resolves a rule's target field by name. Known fields are looked up
// first, then the Extra bag. Absent values are returned as nil so the rule
// evaluator treats them the same as a missing document key.
func (q *Question) Field(name string) any {
	switch name {
	case "id":
		return stringOrNil(q.ID)
	case "question":
		return stringOrNil(q.Question)
	case "options":
		if q.Options == nil {
			return nil
		}
		return q.Options
	case "correctAnswer":
		return stringOrNil(q.CorrectAnswer)
	case "explanation":
		return stringOrNil(q.Explanation)
	case "category":
		return stringOrNil(q.Category)
	case "difficulty":
		return stringOrNil(q.Difficulty)
	}
	if v, ok := q.Extra[name]; ok {
		return v
	}
	return nil
}

func stringOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// knownKeys are the JSON keys mapped onto struct fields; everything else
// lands in Extra.
var knownKeys = map[string]struct{}{
	"id": {}, "question": {}, "options": {}, "correctAnswer": {},
	"explanation": {}, "category": {}, "difficulty": {},
}

// questionJSON is the canonical wire shape.
type questionJSON struct {
	ID            json.RawMessage `json:"id,omitempty"`
	Question      string          `json:"question"`
	Options       []string        `json:"options,omitempty"`
	CorrectAnswer string          `json:"correctAnswer,omitempty"`
	Explanation   string          `json:"explanation,omitempty"`
	Category      string          `json:"category,omitempty"`
	Difficulty    json.RawMessage `json:"difficulty,omitempty"`
}

// UnmarshalJSON accepts the canonical question object. The id and
// difficulty keys may be strings or numbers; unknown keys are preserved
// in Extra.
func (q *Question) UnmarshalJSON(data []byte) error {
	var wire questionJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	id, err := scalarString(wire.ID)
	if err != nil {
		return fmt.Errorf("id: %w", err)
	}
	difficulty, err := scalarString(wire.Difficulty)
	if err != nil {
		return fmt.Errorf("difficulty: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var extra map[string]any
	for key, val := range raw {
		if _, ok := knownKeys[key]; ok {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		var v any
		if err := json.Unmarshal(val, &v); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		extra[key] = v
	}

	*q = Question{
		ID:            id,
		Question:      wire.Question,
		Options:       wire.Options,
		CorrectAnswer: wire.CorrectAnswer,
		Explanation:   wire.Explanation,
		Category:      wire.Category,
		Difficulty:    difficulty,
		Extra:         extra,
	}
	return nil
}

// MarshalJSON emits the canonical question object, folding Extra fields
// back in alongside the known keys.
func (q Question) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 7+len(q.Extra))
	for key, val := range q.Extra {
		out[key] = val
	}
	if q.ID != "" {
		out["id"] = q.ID
	}
	out["question"] = q.Question
	if q.Options != nil {
		out["options"] = q.Options
	}
	if q.CorrectAnswer != "" {
		out["correctAnswer"] = q.CorrectAnswer
	}
	if q.Explanation != "" {
		out["explanation"] = q.Explanation
	}
	if q.Category != "" {
		out["category"] = q.Category
	}
	if q.Difficulty != "" {
		out["difficulty"] = q.Difficulty
	}
	return json.Marshal(out)
}

// scalarString decodes a JSON string or number into its string form.
func scalarString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("expected string or number, got %s", raw)
	}
	return n.String(), nil
}
