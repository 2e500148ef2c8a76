package shift

import (
	"github.com/campcrew/shiftboard-backend-go/internal/pkg/validator"
)

// Draft is a candidate shift as submitted by the manager. One draft may
// select several employees; committing fans it out into one record per
// employee. EditingShiftID identifies the record being edited so the
// conflict check can exclude it for the original employee.
type Draft struct {
	EmployeeIDs    []string `json:"employeeIds"`
	Date           string   `json:"date"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	BreakStartTime string   `json:"breakStartTime,omitempty"`
	BreakEndTime   string   `json:"breakEndTime,omitempty"`
	Role           string   `json:"role"`
	Tasks          []Task   `json:"tasks"`
	ShiftLog       string   `json:"shiftLog,omitempty"`
	Color          string   `json:"color,omitempty"`
	EditingShiftID string   `json:"editingShiftId,omitempty"`
}

// Validate checks the draft's shape: required fields and time/date
// formats. Scheduling conflicts are a separate, advisory concern handled
// by the conflict validator.
func (d *Draft) Validate() error {
	var errs validator.ValidationErrors

	if len(d.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeIds",
			Message: "at least one employee is required",
		})
	}
	if validator.IsEmpty(d.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(d.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(d.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "startTime",
			Message: "startTime is required",
		})
	} else if !validator.IsValidClockTime(d.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "startTime",
			Message: "startTime must be a valid time in HH:MM format",
		})
	}
	if validator.IsEmpty(d.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "endTime",
			Message: "endTime is required",
		})
	} else if !validator.IsValidClockTime(d.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "endTime",
			Message: "endTime must be a valid time in HH:MM format",
		})
	}
	if d.BreakStartTime != "" && !validator.IsValidClockTime(d.BreakStartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "breakStartTime",
			Message: "breakStartTime must be a valid time in HH:MM format",
		})
	}
	if d.BreakEndTime != "" && !validator.IsValidClockTime(d.BreakEndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "breakEndTime",
			Message: "breakEndTime must be a valid time in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ValidationResult is the conflict validator's output. BlockingErrors
// prevent a commit; Warnings are informational only.
type ValidationResult struct {
	BlockingErrors []string `json:"blockingErrors"`
	Warnings       []string `json:"warnings"`
}

// Clean reports whether the draft may be committed.
func (r ValidationResult) Clean() bool {
	return len(r.BlockingErrors) == 0
}

type MoveTaskRequest struct {
	FromTaskID string `json:"fromTaskId"`
	ToTaskID   string `json:"toTaskId"`
}

func (r *MoveTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FromTaskID) {
		errs = append(errs, validator.ValidationError{
			Field:   "fromTaskId",
			Message: "fromTaskId is required",
		})
	}
	if validator.IsEmpty(r.ToTaskID) {
		errs = append(errs, validator.ValidationError{
			Field:   "toTaskId",
			Message: "toTaskId is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ToggleTaskRequest struct {
	EmployeeID string `json:"employeeId"`
}

func (r *ToggleTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
