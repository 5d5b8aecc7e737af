// Package schemas validates the skill cache and job posting documents the
// job board reads against embedded JSON Schemas.
package schemas

import (
	"github.com/xeipuuv/gojsonschema"
)

// ValidateBytes checks document against schema source. A schema that does
// not compile, or a document that is not JSON, yields a *SchemaLoadError;
// violations yield a *ValidationError.
func ValidateBytes(schema string, document []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return &SchemaLoadError{Name: "(inline)", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}
