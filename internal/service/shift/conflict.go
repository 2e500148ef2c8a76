package shift

import (
	"fmt"

	"github.com/campcrew/shiftboard-backend-go/internal/domain/employee"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/shift"
	"github.com/campcrew/shiftboard-backend-go/internal/pkg/validator"
)

// ValidateConflicts checks a draft against the existing collection and
// returns blocking errors and advisory warnings. It is a pure function:
// every call is a full recompute over the inputs, it holds no state and
// never fails. The strings are surfaced to the operator verbatim.
func ValidateConflicts(draft shift.Draft, existing []shift.Shift, employees []employee.Employee) shift.ValidationResult {
	result := shift.ValidationResult{
		BlockingErrors: []string{},
		Warnings:       []string{},
	}

	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}
	nameOf := func(id string) string {
		if n, ok := names[id]; ok {
			return n
		}
		return "unknown (" + id + ")"
	}

	for _, empID := range draft.EmployeeIDs {
		if conflicting := findDayConflict(draft, existing, empID); conflicting != nil {
			role := conflicting.Role
			if role == "" {
				role = "unspecified role"
			}
			result.BlockingErrors = append(result.BlockingErrors, fmt.Sprintf(
				"%s is already scheduled on %s (%s)", nameOf(empID), draft.Date, role))
			// One shift per day already blocks this employee; the
			// overlap check below would only re-report the same record.
			continue
		}

		for _, s := range existing {
			if s.EmployeeID != empID || s.Date != draft.Date || s.ID == draft.EditingShiftID {
				continue
			}
			if Overlaps(draft.StartTime, draft.EndTime, s.StartTime, s.EndTime) {
				result.Warnings = append(result.Warnings, fmt.Sprintf(
					"%s's shift %s-%s overlaps an existing shift %s-%s on %s",
					nameOf(empID), draft.StartTime, draft.EndTime, s.StartTime, s.EndTime, draft.Date))
			}
		}
	}

	result.BlockingErrors = append(result.BlockingErrors, validateBreakRange(draft)...)

	return result
}

// findDayConflict returns the existing shift that double-books the
// employee on the draft's date, excluding the record under edit.
func findDayConflict(draft shift.Draft, existing []shift.Shift, employeeID string) *shift.Shift {
	for i := range existing {
		s := &existing[i]
		if s.EmployeeID != employeeID || s.Date != draft.Date {
			continue
		}
		if draft.EditingShiftID != "" && s.ID == draft.EditingShiftID {
			continue
		}
		return s
	}
	return nil
}

// Overlaps reports whether two same-day time ranges overlap. Times are
// compared as HHMM integers with strict inequality, so back-to-back
// shifts touching at an endpoint do not overlap. There is no
// cross-midnight handling here; midnight-spanning shifts are a known
// limitation of the overlap check.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return validator.ClockHHMM(aStart) < validator.ClockHHMM(bEnd) &&
		validator.ClockHHMM(aEnd) > validator.ClockHHMM(bStart)
}

// validateBreakRange checks the draft's break endpoints once per draft.
// Both set: the break must be a forward range fully contained in the
// shift. Exactly one set: incomplete range, blocking.
func validateBreakRange(draft shift.Draft) []string {
	hasStart := draft.BreakStartTime != ""
	hasEnd := draft.BreakEndTime != ""

	if hasStart != hasEnd {
		return []string{"incomplete break range: set both break start and break end"}
	}
	if !hasStart {
		return nil
	}

	var errs []string
	breakStart := validator.ClockHHMM(draft.BreakStartTime)
	breakEnd := validator.ClockHHMM(draft.BreakEndTime)
	if breakEnd <= breakStart {
		errs = append(errs, "break end time must be after break start time")
	}
	if breakStart < validator.ClockHHMM(draft.StartTime) || breakEnd > validator.ClockHHMM(draft.EndTime) {
		errs = append(errs, "break times must lie within the shift start and end times")
	}
	return errs
}
