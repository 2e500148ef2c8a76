package shift

import (
	"github.com/campcrew/shiftboard-backend-go/internal/domain/shift"
	"github.com/campcrew/shiftboard-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

// Commit fans a validated draft out into one record per selected
// employee and upserts the results into the collection. The original
// employee of an edited shift keeps the shift and task identities
// (preserving completion history); every other employee gets fresh
// identities and fresh, not-completed task copies.
//
// Commit trusts its caller: the conflict validator must have returned
// zero blocking errors before this point. That gate lives at the service
// boundary, not here.
func Commit(draft shift.Draft, existing []shift.Shift) (collection, produced []shift.Shift) {
	var editing *shift.Shift
	if draft.EditingShiftID != "" {
		for i := range existing {
			if existing[i].ID == draft.EditingShiftID {
				editing = &existing[i]
				break
			}
		}
	}

	for _, empID := range draft.EmployeeIDs {
		isOriginal := editing != nil && editing.EmployeeID == empID
		rec := buildRecord(draft, empID, isOriginal)
		if isOriginal {
			rec.ID = editing.ID
		}
		produced = append(produced, rec)
	}

	return upsert(existing, produced), produced
}

// Duplicate clones a shift pattern with all-fresh identities: every
// produced shift and task gets a new ID and every task is reset to
// incomplete, regardless of the source's completion state.
func Duplicate(draft shift.Draft, existing []shift.Shift) (collection, produced []shift.Shift) {
	for _, empID := range draft.EmployeeIDs {
		produced = append(produced, buildRecord(draft, empID, false))
	}

	collection = append(append([]shift.Shift(nil), existing...), produced...)
	return collection, produced
}

// buildRecord assembles one employee's copy of the draft. Tasks are
// filtered by assignment (empty AssigneeIDs means everyone) and deep
// copied so siblings never share slices. When the employee is not the
// original, task identities are minted fresh and completion state is
// stripped.
func buildRecord(draft shift.Draft, employeeID string, keepTaskIdentity bool) shift.Shift {
	rec := shift.Shift{
		ID:             uuid.NewString(),
		EmployeeID:     employeeID,
		Date:           draft.Date,
		StartTime:      draft.StartTime,
		EndTime:        draft.EndTime,
		BreakStartTime: draft.BreakStartTime,
		BreakEndTime:   draft.BreakEndTime,
		BreakDuration:  BreakMinutes(draft.BreakStartTime, draft.BreakEndTime),
		Role:           draft.Role,
		Tasks:          []shift.Task{},
		ShiftLog:       draft.ShiftLog,
		Color:          draft.Color,
	}

	for _, t := range draft.Tasks {
		if !t.AssignedTo(employeeID) {
			continue
		}
		task := t.Clone()
		if !keepTaskIdentity || task.ID == "" {
			task.ID = uuid.NewString()
		}
		if !keepTaskIdentity {
			task.IsCompleted = false
			task.CompletedBy = nil
		}
		rec.Tasks = append(rec.Tasks, task)
	}

	return rec
}

// BreakMinutes recomputes the derived break duration at commit time.
// Returns 0 unless both endpoints are set; never negative.
func BreakMinutes(breakStart, breakEnd string) int {
	if breakStart == "" || breakEnd == "" {
		return 0
	}
	minutes := validator.ClockMinutes(breakEnd) - validator.ClockMinutes(breakStart)
	if minutes < 0 {
		return 0
	}
	return minutes
}

// upsert replaces records with matching IDs and appends the rest,
// without mutating the input collection.
func upsert(existing, records []shift.Shift) []shift.Shift {
	collection := append([]shift.Shift(nil), existing...)
	for _, rec := range records {
		replaced := false
		for i := range collection {
			if collection[i].ID == rec.ID {
				collection[i] = rec
				replaced = true
				break
			}
		}
		if !replaced {
			collection = append(collection, rec)
		}
	}
	return collection
}

// MoveTask reorders a shift's task sequence: the task is removed from
// its current index and reinserted at the target task's index. Identity
// and completion state are untouched. Unknown IDs leave the sequence
// unchanged.
func MoveTask(tasks []shift.Task, fromID, toID string) []shift.Task {
	fromIndex, toIndex := -1, -1
	for i, t := range tasks {
		if t.ID == fromID {
			fromIndex = i
		}
		if t.ID == toID {
			toIndex = i
		}
	}
	if fromIndex < 0 || toIndex < 0 || fromIndex == toIndex {
		return append([]shift.Task(nil), tasks...)
	}

	reordered := append([]shift.Task(nil), tasks...)
	moved := reordered[fromIndex]
	reordered = append(reordered[:fromIndex], reordered[fromIndex+1:]...)
	reordered = append(reordered[:toIndex], append([]shift.Task{moved}, reordered[toIndex:]...)...)
	return reordered
}
