package profile

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries every failed field, keyed by field name, so the
// form can display all of them at once.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// SubmissionError wraps a failed update call. Form state is preserved so the
// user can retry.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("could not update your profile, try again: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
