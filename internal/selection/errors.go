package selection

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest is returned before any search when the request is structurally invalid.
var ErrInvalidRequest = errors.New("invalid selection request")

// FailureError carries a failed Result's reason for callers that prefer error values.
type FailureError struct {
	Reason      FailureReason
	TargetMarks int
	Tag         string
}

func (e *FailureError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("selection failed (%s) for %d marks, tag %q", e.Reason, e.TargetMarks, e.Tag)
	}
	return fmt.Sprintf("selection failed (%s) for %d marks", e.Reason, e.TargetMarks)
}

// Err converts an unsuccessful result into a *FailureError. Successful results return nil.
func (r Result) Err(req Request) error {
	if r.Success {
		return nil
	}
	return &FailureError{Reason: r.FailureReason, TargetMarks: req.TargetMarks, Tag: req.Filter.Tag}
}
