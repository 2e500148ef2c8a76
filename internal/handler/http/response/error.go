package response

import (
	"errors"
	"net/http"

	"github.com/campcrew/shiftboard-backend-go/internal/domain/employee"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/shift"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/stats"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/taskcategory"
	"github.com/campcrew/shiftboard-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Blocking conflicts from the shift validator
	var conflictErr *shift.ConflictError
	if errors.As(err, &conflictErr) {
		ShiftConflict(w, conflictErr.Result)
		return
	}

	switch {
	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, shift.ErrInvalidCompleter):
		BadRequest(w, "Completer must be an assignee or work the same date", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Task category domain errors
	case errors.Is(err, taskcategory.ErrTaskCategoryNotFound):
		NotFound(w, "Task category not found")

	// Stats domain errors
	case errors.Is(err, stats.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
