package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Omochikun55/quiz-validator/internal/quiz"
)

// TextRenderer writes a human-readable terminal report: one line per
// question with its errors and warnings indented beneath, then the
// summary block.
type TextRenderer struct{}

func (t *TextRenderer) Render(w io.Writer, name string, set *quiz.SetResult) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Quiz validation report"))
	if name != "" {
		b.WriteString(dimStyle.Render(" — " + name))
	}
	b.WriteString("\n\n")

	for i, r := range set.Results {
		b.WriteString(questionLine(i, r))
		b.WriteByte('\n')
		for _, fe := range r.Errors {
			fmt.Fprintf(&b, "    %s %s\n", failStyle.Render("error"), detailLine(fe))
		}
		for _, fe := range r.Warnings {
			fmt.Fprintf(&b, "    %s %s\n", warnStyle.Render("warning"), detailLine(fe))
		}
	}
	if len(set.Results) > 0 {
		b.WriteByte('\n')
	}

	b.WriteString(summaryBlock(set))

	_, err := io.WriteString(w, b.String())
	return err
}

func questionLine(index int, r quiz.Result) string {
	status := passStyle.Render("PASS")
	if !r.Valid {
		status = failStyle.Render("FAIL")
	}
	return fmt.Sprintf("  %s  question %d  %s", status, index+1,
		dimStyle.Render(fmt.Sprintf("score %d", r.Score)))
}

func detailLine(fe quiz.FieldError) string {
	return fmt.Sprintf("[%s] %s", fe.Rule, fe.Message)
}

func summaryBlock(set *quiz.SetResult) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Summary"))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "  total    %d\n", set.Summary.Total)
	fmt.Fprintf(&b, "  passed   %s\n", passStyle.Render(fmt.Sprintf("%d", set.Summary.Passed)))
	fmt.Fprintf(&b, "  failed   %s\n", failStyle.Render(fmt.Sprintf("%d", set.Summary.Failed)))
	fmt.Fprintf(&b, "  average  %d\n", set.Summary.AverageScore)

	verdict := passStyle.Render("VALID")
	if !set.Valid {
		verdict = failStyle.Render("INVALID")
	}
	fmt.Fprintf(&b, "  verdict  %s\n", verdict)

	return b.String()
}
