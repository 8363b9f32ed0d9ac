package scheduler

import (
	"errors"
	"fmt"
)

// ErrSuperseded reports that an availability response was discarded because a
// newer provider/date selection was made while the request was in flight.
var ErrSuperseded = errors.New("availability refresh superseded by a newer selection")

// ValidationError blocks a submission before any network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Message)
}

// SubmissionError wraps a failed create-appointment call. Form state is left
// untouched so the user can retry.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("could not create the appointment, try again: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
