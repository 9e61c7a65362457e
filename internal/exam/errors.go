package exam

import (
	"errors"
	"fmt"

	"github.com/gokatarajesh/exam-assembler/internal/selection"
)

var (
	ErrExamNotFound      = errors.New("exam not found")
	ErrNoActiveQuestions = errors.New("no active questions found")
	ErrTargetTooLarge    = errors.New("target marks exceed the configured maximum")
	ErrNothingToAssign   = errors.New("exam has zero total marks")
)

// SelectionFailedError reports an engine result that could not be assigned.
type SelectionFailedError struct {
	Reason selection.FailureReason
	Tag    string
}

func (e *SelectionFailedError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("no questions could be selected: %s", e.Reason)
	}
	return fmt.Sprintf("no %s questions could be selected: %s", e.Tag, e.Reason)
}
