package shift

import (
	"errors"
	"strings"
)

var (
	ErrShiftNotFound    = errors.New("shift not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidCompleter = errors.New("completer must be an assignee or work the same date")
)

// ConflictError carries the blocking errors a draft produced. The
// strings are surfaced to the operator verbatim.
type ConflictError struct {
	Result ValidationResult
}

func (e *ConflictError) Error() string {
	return "shift draft has blocking conflicts: " + strings.Join(e.Result.BlockingErrors, "; ")
}
