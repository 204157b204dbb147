package cmd

import (
	"testing"

	"github.com/Omochikun55/quiz-validator/internal/convert"
)

func TestResolveFormat_ByExtension(t *testing.T) {
	tests := []struct {
		path string
		want convert.Format
	}{
		{"cards.tsv", convert.FormatFlashcards},
		{"export.csv", convert.FormatCSV},
		{"pairs.txt", convert.FormatLinePairs},
	}
	for _, tt := range tests {
		got, err := resolveFormat(convertCmd, tt.path)
		if err != nil {
			t.Errorf("%s: %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.path, tt.want, got)
		}
	}
}

func TestResolveFormat_UnknownExtension(t *testing.T) {
	if _, err := resolveFormat(convertCmd, "quiz.xml"); err == nil {
		t.Error("expected error for unknown extension")
	}
}

func TestResolveFormat_FromFlag(t *testing.T) {
	if err := convertCmd.Flags().Set("from", "csv"); err != nil {
		t.Fatal(err)
	}
	defer convertCmd.Flags().Set("from", "")

	got, err := resolveFormat(convertCmd, "anything.dat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != convert.FormatCSV {
		t.Errorf("expected csv, got %q", got)
	}
}

func TestResolveFormat_BadFromFlag(t *testing.T) {
	if err := convertCmd.Flags().Set("from", "xml"); err != nil {
		t.Fatal(err)
	}
	defer convertCmd.Flags().Set("from", "")

	if _, err := resolveFormat(convertCmd, "quiz.xml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestOptionsFromFlags_Defaults(t *testing.T) {
	opts := optionsFromFlags(validateCmd)
	if opts.QuestionMinLength != 5 || opts.MaxOptions != 10 {
		t.Errorf("flag defaults should mirror DefaultOptions, got %+v", opts)
	}
	if opts.RequireExplanation {
		t.Error("require-explanation should default to false")
	}
}
