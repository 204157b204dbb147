package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Omochikun55/quiz-validator/internal/batch"
	"github.com/Omochikun55/quiz-validator/internal/quiz"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Validate every quiz document under a directory",
	Long: "batch walks a directory tree, validates every *.json quiz document\n" +
		"with the same options, and prints one line per file plus grand\n" +
		"totals. The HTML report is per-document only; batch output is text\n" +
		"or json.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format != "text" && format != "json" {
			return fmt.Errorf("unknown batch report format %q", format)
		}

		res, err := batch.Run(args[0], optionsFromFlags(cmd))
		if err != nil {
			return err
		}

		w, closeOut, err := outputWriter(cmd)
		if err != nil {
			return err
		}
		defer closeOut()

		if format == "json" {
			err = renderBatchJSON(w, res)
		} else {
			err = renderBatchText(w, res)
		}
		if err != nil {
			return err
		}
		if !res.Valid {
			return ErrValidationFailed
		}
		return nil
	},
}

func init() {
	addOptionFlags(batchCmd)
	batchCmd.Flags().String("format", "text", "Report format: text or json")
	batchCmd.Flags().String("output", "", "Write the report to a file instead of stdout")
}

func renderBatchText(w io.Writer, res *batch.Result) error {
	for _, f := range res.Files {
		if f.Err != nil {
			fmt.Fprintf(w, "ERROR  %s: %v\n", f.Path, f.Err)
			continue
		}
		verdict := "ok"
		if !f.Set.Valid {
			verdict = "FAIL"
		}
		fmt.Fprintf(w, "%-5s  %s: %d questions, %d failed, average %d\n",
			verdict, f.Path, f.Set.Summary.Total, f.Set.Summary.Failed, f.Set.Summary.AverageScore)
	}

	fmt.Fprintf(w, "\n%d files, %d questions, %d passed, %d failed, average %d\n",
		len(res.Files), res.Summary.Total, res.Summary.Passed, res.Summary.Failed,
		res.Summary.AverageScore)
	return nil
}

type batchFileJSON struct {
	Path   string          `json:"path"`
	Error  string          `json:"error,omitempty"`
	Report *quiz.SetResult `json:"report,omitempty"`
}

func renderBatchJSON(w io.Writer, res *batch.Result) error {
	files := make([]batchFileJSON, 0, len(res.Files))
	for _, f := range res.Files {
		entry := batchFileJSON{Path: f.Path, Report: f.Set}
		if f.Err != nil {
			entry.Error = f.Err.Error()
		}
		files = append(files, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Valid   bool            `json:"valid"`
		Files   []batchFileJSON `json:"files"`
		Summary quiz.Summary    `json:"summary"`
	}{res.Valid, files, res.Summary})
}
