package convert

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/Omochikun55/quiz-validator/internal/quiz"
)

// optionSeparator splits the options cell of a CSV row.
const optionSeparator = "|"

// CSV converts a header-driven comma-separated tabular export. The first
// row names the columns; recognized headers are id, question, options
// (pipe-separated cell), correctAnswer, explanation, category and
// difficulty, matched case-insensitively. Any other column becomes an
// extra field on the record. A question column is mandatory.
func CSV(r io.Reader) ([]*quiz.Question, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ErrBadRecord{Format: FormatCSV, Line: 1, Reason: "empty document"}
	}
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	questionCol := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "question") {
			questionCol = i
		}
	}
	if questionCol == -1 {
		return nil, &ErrBadRecord{Format: FormatCSV, Line: 1, Reason: "missing question column"}
	}

	var questions []*quiz.Question
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}
		line++

		q := &quiz.Question{}
		for i, cell := range row {
			if i >= len(header) {
				break
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			switch key := strings.TrimSpace(header[i]); strings.ToLower(key) {
			case "id":
				q.ID = cell
			case "question":
				q.Question = cell
			case "options":
				q.Options = splitOptions(cell)
			case "correctanswer":
				q.CorrectAnswer = cell
			case "explanation":
				q.Explanation = cell
			case "category":
				q.Category = cell
			case "difficulty":
				q.Difficulty = cell
			default:
				if q.Extra == nil {
					q.Extra = make(map[string]any)
				}
				q.Extra[key] = cell
			}
		}

		if q.Question == "" {
			return nil, &ErrBadRecord{Format: FormatCSV, Line: line, Reason: "empty question cell"}
		}
		if q.ID == "" {
			q.ID = newID()
		}
		questions = append(questions, q)
	}

	return questions, nil
}

func splitOptions(cell string) []string {
	parts := strings.Split(cell, optionSeparator)
	options := make([]string, 0, len(parts))
	for _, p := range parts {
		options = append(options, strings.TrimSpace(p))
	}
	return options
}
