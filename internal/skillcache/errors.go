package skillcache

import "fmt"

// LoadError is returned when a cache file cannot be read, parsed or validated.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("skill cache %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("skill cache %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
