// Package convert turns flat-text interchange formats into canonical
// question records. Each converter is pure text parsing; validation of the
// resulting records is the engine's job, not the converters'.
package convert

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/Omochikun55/quiz-validator/internal/quiz"
)

// Format identifies a supported interchange format.
type Format string

const (
	// FormatFlashcards is a tab-separated export: one "front<TAB>back"
	// flashcard per line.
	FormatFlashcards Format = "flashcards"

	// FormatCSV is a header-driven comma-separated tabular export.
	FormatCSV Format = "csv"

	// FormatLinePairs alternates question and answer lines.
	FormatLinePairs Format = "pairs"
)

// FormatForExtension maps a file extension (with or without the leading
// dot) to its default format. Returns false for unknown extensions.
func FormatForExtension(ext string) (Format, bool) {
	switch ext {
	case ".tsv", "tsv", ".tab", "tab":
		return FormatFlashcards, true
	case ".csv", "csv":
		return FormatCSV, true
	case ".txt", "txt":
		return FormatLinePairs, true
	}
	return "", false
}

// Convert dispatches to the converter for the given format.
func Convert(format Format, r io.Reader) ([]*quiz.Question, error) {
	switch format {
	case FormatFlashcards:
		return Flashcards(r)
	case FormatCSV:
		return CSV(r)
	case FormatLinePairs:
		return LinePairs(r)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// ErrBadRecord indicates a source line or row that cannot be converted.
type ErrBadRecord struct {
	Format Format
	Line   int
	Reason string
}

func (e *ErrBadRecord) Error() string {
	return fmt.Sprintf("%s: line %d: %s", e.Format, e.Line, e.Reason)
}

// newID labels converted records that carry no identifier of their own,
// so reports can reference them stably.
func newID() string {
	return uuid.NewString()
}

// question builds a record with a generated ID.
func question(text, answer string) *quiz.Question {
	return &quiz.Question{
		ID:            newID(),
		Question:      text,
		CorrectAnswer: answer,
	}
}
