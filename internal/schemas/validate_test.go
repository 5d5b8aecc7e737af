package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"type": "object",
	"required": ["name", "age"],
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0},
		"address": {
			"type": "object",
			"required": ["city"],
			"properties": {"city": {"type": "string"}}
		},
		"tags": {"type": "array", "items": {"type": "string"}}
	}
}`

func TestValidateBytes(t *testing.T) {
	tests := []struct {
		name      string
		document  string
		wantError bool
	}{
		{"valid", `{"name": "Ana", "age": 31}`, false},
		{"missing field", `{"name": "Ana"}`, true},
		{"wrong type", `{"name": "Ana", "age": "thirty"}`, true},
		{"nested missing field", `{"name": "Ana", "age": 31, "address": {}}`, true},
		{"array item wrong type", `{"name": "Ana", "age": 31, "tags": ["a", 2]}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBytes(personSchema, []byte(tt.document))
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateBytes_ReportsEveryViolation(t *testing.T) {
	err := ValidateBytes(personSchema, []byte(`{"age": -1}`))
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.GreaterOrEqual(t, len(validationErr.Errors), 2)
}

func TestValidateBytes_MalformedDocument(t *testing.T) {
	err := ValidateBytes(personSchema, []byte("{ invalid json }"))
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateBytes_RootField(t *testing.T) {
	err := ValidateBytes(personSchema, []byte(`[]`))
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidateBytes_BadSchema(t *testing.T) {
	err := ValidateBytes(`{"type": 12}`, []byte(`{}`))
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.NotNil(t, errors.Unwrap(loadErr))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "name is required"},
			{Field: "age", Message: "Invalid type"},
		},
	}

	assert.Equal(t, "validation failed: name: name is required; age: Invalid type", err.Error())
}

func TestSchema_Embedded(t *testing.T) {
	for _, name := range []string{SkillCache, JobPostings} {
		content, err := Schema(name)
		require.NoError(t, err, name)
		assert.Contains(t, content, `"$schema"`)
	}

	_, err := Schema("unknown")
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "unknown", loadErr.Name)
}

func TestValidate_SkillCache(t *testing.T) {
	tests := []struct {
		name      string
		document  string
		wantError bool
	}{
		{"valid", `{"welding": {"onet": {"name": "Welding"}}, "tig": {"onet": {"name": "TIG Welding", "code": "2.B.1"}}}`, false},
		{"empty", `{}`, false},
		{"missing onet", `{"welding": {"name": "Welding"}}`, true},
		{"empty name", `{"welding": {"onet": {"name": ""}}}`, true},
		{"not an object", `["welding"]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(SkillCache, []byte(tt.document))
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), SkillCache)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_JobPostings(t *testing.T) {
	assert.NoError(t, Validate(JobPostings, []byte(`[{"title": "Welder", "skills": ["TIG"]}]`)))
	assert.NoError(t, Validate(JobPostings, []byte(`[]`)))
	assert.Error(t, Validate(JobPostings, []byte(`[{"company": "Acme"}]`)))
	assert.Error(t, Validate(JobPostings, []byte(`[{"title": "Welder", "skills": "TIG"}]`)))
}
