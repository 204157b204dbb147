package main

import (
	"errors"
	"os"

	"github.com/Omochikun55/quiz-validator/cmd"
)

func main() {
	err := cmd.Execute()
	switch {
	case err == nil:
	case errors.Is(err, cmd.ErrValidationFailed):
		os.Exit(1)
	default:
		os.Exit(2)
	}
}
