// Package loader reads quiz documents from JSON files and decodes them
// into the canonical question shape. Documents are checked against a JSON
// Schema before decoding so that shape violations are reported as loader
// errors and never reach the validation engine.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/Omochikun55/quiz-validator/internal/quiz"
)

// ErrInvalidDocument indicates the document is not valid JSON or does not
// match the expected quiz document shape.
type ErrInvalidDocument struct {
	Path string
	Err  error
}

func (e *ErrInvalidDocument) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid quiz document %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid quiz document: %v", e.Err)
}

func (e *ErrInvalidDocument) Unwrap() error { return e.Err }

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiled returns the document schema, compiling it on first use.
func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler expects a parsed JSON value, not raw bytes.
		// Marshal then unmarshal to get a clean any representation.
		raw, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://quiz-document.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Load reads and decodes the quiz document at path.
func Load(path string) ([]*quiz.Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	qs, err := Read(f)
	if err != nil {
		var inv *ErrInvalidDocument
		if errors.As(err, &inv) {
			inv.Path = path
		}
		return nil, err
	}
	return qs, nil
}

// Read decodes a quiz document from r. The document may be a bare array
// of question objects or an object with a "questions" key.
func Read(r io.Reader) ([]*quiz.Question, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &ErrInvalidDocument{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiled()
	if err != nil {
		return nil, fmt.Errorf("compile document schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrInvalidDocument{Err: err}
	}

	// The schema guarantees one of the two shapes decodes cleanly.
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("{")) {
		var wrapper struct {
			Questions []*quiz.Question `json:"questions"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, &ErrInvalidDocument{Err: err}
		}
		return wrapper.Questions, nil
	}

	var questions []*quiz.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, &ErrInvalidDocument{Err: err}
	}
	return questions, nil
}
