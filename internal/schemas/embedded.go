package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.schema.json
var files embed.FS

// Embedded schema names
const (
	SkillCache  = "skill_cache"
	JobPostings = "job_postings"
)

// Schema returns the content of an embedded schema by name.
func Schema(name string) (string, error) {
	data, err := files.ReadFile(name + ".schema.json")
	if err != nil {
		return "", &SchemaLoadError{Name: name, Cause: err}
	}
	return string(data), nil
}

// Validate checks a JSON document against the named embedded schema.
func Validate(name string, document []byte) error {
	schema, err := Schema(name)
	if err != nil {
		return err
	}
	if err := ValidateBytes(schema, document); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
