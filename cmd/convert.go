package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Omochikun55/quiz-validator/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a flat-text export to canonical question JSON",
	Long: "convert reads a flashcard (tab-separated), CSV or line-pair export\n" +
		"and writes the questions as canonical JSON. The format is inferred\n" +
		"from the file extension unless --from is given.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		format, err := resolveFormat(cmd, path)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		questions, err := convert.Convert(format, f)
		if err != nil {
			return err
		}

		w, closeOut, err := outputWriter(cmd)
		if err != nil {
			return err
		}
		defer closeOut()

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(questions)
	},
}

func init() {
	convertCmd.Flags().String("from", "", "Source format: flashcards, csv or pairs (default: by extension)")
	convertCmd.Flags().String("output", "", "Write the JSON to a file instead of stdout")
}

func resolveFormat(cmd *cobra.Command, path string) (convert.Format, error) {
	if from, _ := cmd.Flags().GetString("from"); from != "" {
		switch f := convert.Format(from); f {
		case convert.FormatFlashcards, convert.FormatCSV, convert.FormatLinePairs:
			return f, nil
		}
		return "", fmt.Errorf("unknown source format %q", from)
	}

	ext := filepath.Ext(path)
	if format, ok := convert.FormatForExtension(ext); ok {
		return format, nil
	}
	return "", fmt.Errorf("cannot infer format from extension %q; use --from", ext)
}
