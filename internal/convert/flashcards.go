package convert

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Omochikun55/quiz-validator/internal/quiz"
)

// Flashcards converts a tab-separated flashcard export. Each non-blank
// line holds "front<TAB>back"; blank lines and lines starting with # are
// skipped. Extra tabs beyond the first become part of the answer.
func Flashcards(r io.Reader) ([]*quiz.Question, error) {
	var questions []*quiz.Question

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		front, back, ok := strings.Cut(text, "\t")
		if !ok {
			return nil, &ErrBadRecord{
				Format: FormatFlashcards,
				Line:   line,
				Reason: "expected front and back separated by a tab",
			}
		}
		front = strings.TrimSpace(front)
		back = strings.TrimSpace(back)
		if front == "" || back == "" {
			return nil, &ErrBadRecord{
				Format: FormatFlashcards,
				Line:   line,
				Reason: "empty front or back",
			}
		}

		questions = append(questions, question(front, back))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read flashcards: %w", err)
	}

	return questions, nil
}
