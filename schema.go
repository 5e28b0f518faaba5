package gooffice

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// The input schemas ship inside the binary so validation never depends
// on the working directory.
var (
	//go:embed schemas/presentation.schema.json
	presentationSchema string

	//go:embed schemas/workbook.schema.json
	workbookSchema string

	//go:embed schemas/report.schema.json
	reportSchema string
)

func schemaFor(kind Kind) (string, error) {
	switch kind {
	case KindPresentation:
		return presentationSchema, nil
	case KindWorkbook:
		return workbookSchema, nil
	case KindReport:
		return reportSchema, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// validateSpec checks the raw JSON document against the embedded schema
// for its kind. Violations come back as one SpecError listing every
// failing field, not just the first.
func validateSpec(kind Kind, doc []byte) error {
	schema, err := schemaFor(kind)
	if err != nil {
		return err
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("failed to validate %s spec: %w", kind, err)
	}
	if result.Valid() {
		return nil
	}

	specErr := &SpecError{Fields: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		specErr.Fields = append(specErr.Fields, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return specErr
}
