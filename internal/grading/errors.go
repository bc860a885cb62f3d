package grading

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSystem means the reduced system key has no band table.
	ErrUnknownSystem = errors.New("unknown grading system")
	// ErrUnsupportedSystem means the identifier is outside the supported catalog.
	ErrUnsupportedSystem = errors.New("unsupported grading system")
)

// NoTestsError reports a subject with zero accumulated weightage, which would
// otherwise divide by zero during aggregation.
type NoTestsError struct {
	Subject string
}

func (e *NoTestsError) Error() string {
	return fmt.Sprintf("subject %q has no tests to aggregate", e.Subject)
}

// InsufficientCandidatesError reports a selection quota that cannot be filled
// from the remaining eligible subjects.
type InsufficientCandidatesError struct {
	Quota     string
	Required  int
	Available int
}

func (e *InsufficientCandidatesError) Error() string {
	return fmt.Sprintf("quota %q needs %d subjects, only %d available", e.Quota, e.Required, e.Available)
}
