package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Omochikun55/quiz-validator/internal/quiz"
)

// ErrValidationFailed signals that validation ran to completion and found
// failing questions. The CLI exits 1 for this and 2 for operational
// errors.
var ErrValidationFailed = errors.New("validation failed")

var rootCmd = &cobra.Command{
	Use:   "quiz-validator",
	Short: "Validate and score quiz question sets",
	Long: "quiz-validator checks quiz documents against a configurable rule set,\n" +
		"computes a 0-100 quality score per question, and renders text, JSON\n" +
		"or HTML reports. It also converts flashcard, CSV and line-pair\n" +
		"exports into the canonical question format.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, ErrValidationFailed) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(versionCmd)
}

// addOptionFlags registers the validation option flags shared by the
// validate and batch commands. Flag defaults mirror quiz.DefaultOptions
// so --help shows the effective values.
func addOptionFlags(cmd *cobra.Command) {
	def := quiz.DefaultOptions()
	fl := cmd.Flags()
	fl.Int("question-min-length", def.QuestionMinLength, "Minimum question text length")
	fl.Int("question-max-length", def.QuestionMaxLength, "Maximum question text length")
	fl.Int("option-min-length", def.OptionMinLength, "Minimum option text length")
	fl.Int("option-max-length", def.OptionMaxLength, "Maximum option text length")
	fl.Int("explanation-min-length", def.ExplanationMinLength, "Minimum explanation length")
	fl.Int("explanation-max-length", def.ExplanationMaxLength, "Maximum explanation length")
	fl.Int("min-options", def.MinOptions, "Minimum number of options")
	fl.Int("max-options", def.MaxOptions, "Maximum number of options")
	fl.Bool("require-explanation", false, "Require an explanation on every question")
	fl.Bool("require-category", false, "Require a category on every question")
	fl.Bool("require-difficulty", false, "Require a difficulty on every question")
}

// optionsFromFlags builds validation options from the command's flags.
func optionsFromFlags(cmd *cobra.Command) *quiz.Options {
	fl := cmd.Flags()
	intFlag := func(name string) int {
		v, _ := fl.GetInt(name)
		return v
	}
	boolFlag := func(name string) bool {
		v, _ := fl.GetBool(name)
		return v
	}
	return &quiz.Options{
		QuestionMinLength:    intFlag("question-min-length"),
		QuestionMaxLength:    intFlag("question-max-length"),
		OptionMinLength:      intFlag("option-min-length"),
		OptionMaxLength:      intFlag("option-max-length"),
		ExplanationMinLength: intFlag("explanation-min-length"),
		ExplanationMaxLength: intFlag("explanation-max-length"),
		MinOptions:           intFlag("min-options"),
		MaxOptions:           intFlag("max-options"),
		RequireExplanation:   boolFlag("require-explanation"),
		RequireCategory:      boolFlag("require-category"),
		RequireDifficulty:    boolFlag("require-difficulty"),
	}
}

// outputWriter resolves the --output flag, defaulting to stdout.
// The returned closer is a no-op for stdout.
func outputWriter(cmd *cobra.Command) (*os.File, func(), error) {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
