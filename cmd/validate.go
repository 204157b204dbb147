package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Omochikun55/quiz-validator/internal/loader"
	"github.com/Omochikun55/quiz-validator/internal/quiz"
	"github.com/Omochikun55/quiz-validator/internal/report"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a quiz document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		format, _ := cmd.Flags().GetString("format")
		renderer, err := report.For(format)
		if err != nil {
			return err
		}

		questions, err := loader.Load(path)
		if err != nil {
			return err
		}

		set := quiz.ValidateSet(questions, optionsFromFlags(cmd))

		w, closeOut, err := outputWriter(cmd)
		if err != nil {
			return err
		}
		defer closeOut()

		if err := renderer.Render(w, path, &set); err != nil {
			return err
		}
		if !set.Valid {
			return ErrValidationFailed
		}
		return nil
	},
}

func init() {
	addOptionFlags(validateCmd)
	validateCmd.Flags().String("format", "text", "Report format: text, json or html")
	validateCmd.Flags().String("output", "", "Write the report to a file instead of stdout")
}
