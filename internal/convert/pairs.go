package convert

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Omochikun55/quiz-validator/internal/quiz"
)

// LinePairs converts an alternating line-pair export: a question line
// followed by its answer line, repeated. Blank lines between pairs are
// skipped. A trailing question line without an answer is an error.
func LinePairs(r io.Reader) ([]*quiz.Question, error) {
	var questions []*quiz.Question

	scanner := bufio.NewScanner(r)
	line := 0
	pending := ""
	pendingLine := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		if pending == "" {
			pending = text
			pendingLine = line
			continue
		}
		questions = append(questions, question(pending, text))
		pending = ""
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line pairs: %w", err)
	}

	if pending != "" {
		return nil, &ErrBadRecord{
			Format: FormatLinePairs,
			Line:   pendingLine,
			Reason: "question line without an answer line",
		}
	}

	return questions, nil
}
