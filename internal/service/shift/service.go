package shift

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campcrew/shiftboard-backend-go/internal/domain/notification"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/shift"
	"github.com/campcrew/shiftboard-backend-go/internal/repository/session"
)

type shiftServiceImpl struct {
	store *session.Store
}

func NewShiftService(store *session.Store) shift.ShiftService {
	return &shiftServiceImpl{store: store}
}

// List implements shift.ShiftService.
func (s *shiftServiceImpl) List(ctx context.Context) ([]shift.Shift, error) {
	return s.store.Shifts(), nil
}

// Validate implements shift.ShiftService. It is the dry-run entry the
// editing UI calls on every input change.
func (s *shiftServiceImpl) Validate(ctx context.Context, draft shift.Draft) (shift.ValidationResult, error) {
	if err := draft.Validate(); err != nil {
		return shift.ValidationResult{}, err
	}
	return ValidateConflicts(draft, s.store.Shifts(), s.store.Employees()), nil
}

// Commit implements shift.ShiftService. The conflict gate lives here:
// the pure writer below trusts that a draft reaching it is clean.
func (s *shiftServiceImpl) Commit(ctx context.Context, draft shift.Draft) ([]shift.Shift, shift.ValidationResult, error) {
	if err := draft.Validate(); err != nil {
		return nil, shift.ValidationResult{}, err
	}

	result := ValidateConflicts(draft, s.store.Shifts(), s.store.Employees())
	if !result.Clean() {
		return nil, result, &shift.ConflictError{Result: result}
	}

	var produced []shift.Shift
	err := s.store.UpdateShifts(func(existing []shift.Shift) ([]shift.Shift, error) {
		var collection []shift.Shift
		collection, produced = Commit(draft, existing)
		return collection, nil
	})
	if err != nil {
		return nil, result, err
	}

	notifType := notification.TypeShiftCreated
	if draft.EditingShiftID != "" {
		notifType = notification.TypeShiftUpdated
	}
	for _, rec := range produced {
		s.notify(notifType, rec)
	}

	return produced, result, nil
}

// Duplicate implements shift.ShiftService.
func (s *shiftServiceImpl) Duplicate(ctx context.Context, draft shift.Draft) ([]shift.Shift, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	var produced []shift.Shift
	err := s.store.UpdateShifts(func(existing []shift.Shift) ([]shift.Shift, error) {
		var collection []shift.Shift
		collection, produced = Duplicate(draft, existing)
		return collection, nil
	})
	if err != nil {
		return nil, err
	}

	for _, rec := range produced {
		s.notify(notification.TypeShiftDuplicated, rec)
	}

	return produced, nil
}

// Delete implements shift.ShiftService.
func (s *shiftServiceImpl) Delete(ctx context.Context, id string) error {
	var removed shift.Shift
	err := s.store.UpdateShifts(func(existing []shift.Shift) ([]shift.Shift, error) {
		for i, rec := range existing {
			if rec.ID == id {
				removed = rec
				return append(append([]shift.Shift(nil), existing[:i]...), existing[i+1:]...), nil
			}
		}
		return nil, shift.ErrShiftNotFound
	})
	if err != nil {
		return err
	}

	s.notify(notification.TypeShiftDeleted, removed)
	return nil
}

// MoveTask implements shift.ShiftService.
func (s *shiftServiceImpl) MoveTask(ctx context.Context, shiftID string, req shift.MoveTaskRequest) (shift.Shift, error) {
	if err := req.Validate(); err != nil {
		return shift.Shift{}, err
	}

	var updated shift.Shift
	err := s.store.UpdateShifts(func(existing []shift.Shift) ([]shift.Shift, error) {
		collection := append([]shift.Shift(nil), existing...)
		for i, rec := range collection {
			if rec.ID != shiftID {
				continue
			}
			rec.Tasks = MoveTask(rec.Tasks, req.FromTaskID, req.ToTaskID)
			collection[i] = rec
			updated = rec.Clone()
			return collection, nil
		}
		return nil, shift.ErrShiftNotFound
	})
	if err != nil {
		return shift.Shift{}, err
	}
	return updated, nil
}

// ToggleTask implements shift.ShiftService. Completion is attributed to
// the acting employee, who must be an assignee of the task or have a
// shift of their own on the same date (a teammate helping out).
func (s *shiftServiceImpl) ToggleTask(ctx context.Context, shiftID, taskID string, req shift.ToggleTaskRequest) (shift.Shift, error) {
	if err := req.Validate(); err != nil {
		return shift.Shift{}, err
	}

	var updated shift.Shift
	err := s.store.UpdateShifts(func(existing []shift.Shift) ([]shift.Shift, error) {
		collection := append([]shift.Shift(nil), existing...)
		for i, rec := range collection {
			if rec.ID != shiftID {
				continue
			}
			for j, task := range rec.Tasks {
				if task.ID != taskID {
					continue
				}
				if task.IsCompleted {
					task.IsCompleted = false
					task.CompletedBy = nil
				} else {
					if !canComplete(req.EmployeeID, task, rec, collection) {
						return nil, shift.ErrInvalidCompleter
					}
					task.IsCompleted = true
					completer := req.EmployeeID
					task.CompletedBy = &completer
				}
				rec = rec.Clone()
				rec.Tasks[j] = task
				collection[i] = rec
				updated = rec.Clone()
				return collection, nil
			}
			return nil, shift.ErrTaskNotFound
		}
		return nil, shift.ErrShiftNotFound
	})
	if err != nil {
		return shift.Shift{}, err
	}
	return updated, nil
}

func canComplete(employeeID string, task shift.Task, rec shift.Shift, collection []shift.Shift) bool {
	if task.AssignedTo(employeeID) {
		return true
	}
	for _, other := range collection {
		if other.EmployeeID == employeeID && other.Date == rec.Date {
			return true
		}
	}
	return false
}

func (s *shiftServiceImpl) notify(notifType notification.NotificationType, rec shift.Shift) {
	s.store.AppendNotification(notification.Notification{
		ID:         uuid.NewString(),
		Type:       notifType,
		EmployeeID: rec.EmployeeID,
		Message:    fmt.Sprintf("%s shift on %s %s-%s", rec.Role, rec.Date, rec.StartTime, rec.EndTime),
	})
}
