package gooffice

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by Render when the requested document kind
// is not one of presentation, workbook or report.
var ErrUnknownKind = errors.New("unknown document kind")

// SaveError wraps a failure while writing the output document. The
// partial file may or may not exist at Path, depending on where the
// writer stopped.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// FieldError is a single schema violation at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

// SpecError collects every schema violation found in an input spec.
type SpecError struct {
	Fields []FieldError
}

func (e *SpecError) Error() string {
	var sb strings.Builder
	sb.WriteString("spec validation failed:\n")
	for i, fe := range e.Fields {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, fe.Field, fe.Message))
	}
	return sb.String()
}
