package market

import (
	"errors"
	"fmt"
)

// ErrNoPostings signals that aggregation was attempted with an empty batch.
// Callers must interpret this as "insufficient data" rather than crash or
// report a fabricated profile.
var ErrNoPostings = errors.New("no job postings to analyze")

// FetchError reports that the document source could not supply postings.
// It is an explicit typed failure; aggregation never converts it into an
// empty-but-valid profile.
type FetchError struct {
	Role  string
	Cause error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch postings for role %q: %v", e.Role, e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}
