package shift

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campcrew/shiftboard-backend-go/internal/domain/employee"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/notification"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/shift"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/snapshot"
	"github.com/campcrew/shiftboard-backend-go/internal/repository/memory"
	"github.com/campcrew/shiftboard-backend-go/internal/repository/session"
)

func newTestStore(t *testing.T, snap snapshot.Snapshot) *session.Store {
	t.Helper()
	store, err := session.Open(context.Background(), memory.NewSeededStore(snap), nil)
	require.NoError(t, err)
	return store
}

func testRoster() []employee.Employee {
	return []employee.Employee{
		{ID: "emp-anna", Name: "Anna", HourlyWage: 185},
		{ID: "emp-ben", Name: "Ben", HourlyWage: 200},
	}
}

func TestShiftService_CommitPersistsAndNotifies(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, snapshot.Snapshot{Employees: testRoster()})
	svc := NewShiftService(store)

	produced, result, err := svc.Commit(ctx, shift.Draft{
		EmployeeIDs: []string{"emp-anna"},
		Date:        "2026-07-14",
		StartTime:   "09:00",
		EndTime:     "17:00",
		Role:        "reception",
	})

	require.NoError(t, err)
	assert.True(t, result.Clean())
	require.Len(t, produced, 1)

	shifts := store.Shifts()
	require.Len(t, shifts, 1)
	assert.Equal(t, produced[0].ID, shifts[0].ID)

	notifications := store.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, notification.TypeShiftCreated, notifications[0].Type)
	assert.Equal(t, "emp-anna", notifications[0].EmployeeID)
}

func TestShiftService_CommitBlockedByConflict(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, snapshot.Snapshot{
		Employees: testRoster(),
		Shifts: []shift.Shift{
			{ID: "shift-1", EmployeeID: "emp-anna", Date: "2026-07-14", StartTime: "08:00", EndTime: "12:00", Role: "bar"},
		},
	})
	svc := NewShiftService(store)

	_, result, err := svc.Commit(ctx, shift.Draft{
		EmployeeIDs: []string{"emp-anna"},
		Date:        "2026-07-14",
		StartTime:   "13:00",
		EndTime:     "17:00",
	})

	var conflictErr *shift.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.False(t, result.Clean())
	assert.Equal(t, result, conflictErr.Result)

	// Nothing was written.
	assert.Len(t, store.Shifts(), 1)
	assert.Empty(t, store.Notifications())
}

func TestShiftService_CommitRejectsMalformedDraft(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, snapshot.Snapshot{})
	svc := NewShiftService(store)

	_, _, err := svc.Commit(ctx, shift.Draft{Date: "2026-07-14"})

	assert.Error(t, err)
	assert.Empty(t, store.Shifts())
}

func TestShiftService_ValidateIsDryRun(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, snapshot.Snapshot{
		Employees: testRoster(),
		Shifts: []shift.Shift{
			{ID: "shift-1", EmployeeID: "emp-anna", Date: "2026-07-14", StartTime: "08:00", EndTime: "12:00"},
		},
	})
	svc := NewShiftService(store)

	result, err := svc.Validate(ctx, shift.Draft{
		EmployeeIDs: []string{"emp-anna"},
		Date:        "2026-07-14",
		StartTime:   "13:00",
		EndTime:     "17:00",
	})

	require.NoError(t, err)
	assert.False(t, result.Clean())
	assert.Len(t, store.Shifts(), 1)
}

func TestShiftService_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, snapshot.Snapshot{
		Shifts: []shift.Shift{
			{ID: "shift-1", EmployeeID: "emp-anna", Date: "2026-07-14", StartTime: "09:00", EndTime: "17:00"},
		},
	})
	svc := NewShiftService(store)

	require.NoError(t, svc.Delete(ctx, "shift-1"))
	assert.Empty(t, store.Shifts())

	notifications := store.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, notification.TypeShiftDeleted, notifications[0].Type)

	assert.ErrorIs(t, svc.Delete(ctx, "shift-1"), shift.ErrShiftNotFound)
}

func TestShiftService_MoveTask(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, snapshot.Snapshot{
		Shifts: []shift.Shift{
			{
				ID: "shift-1", EmployeeID: "emp-anna", Date: "2026-07-14", StartTime: "09:00", EndTime: "17:00",
				Tasks: []shift.Task{{ID: "a"}, {ID: "b"}, {ID: "c"}},
			},
		},
	})
	svc := NewShiftService(store)

	updated, err := svc.MoveTask(ctx, "shift-1", shift.MoveTaskRequest{FromTaskID: "a", ToTaskID: "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, taskIDs(updated.Tasks))

	_, err = svc.MoveTask(ctx, "missing", shift.MoveTaskRequest{FromTaskID: "a", ToTaskID: "c"})
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestShiftService_ToggleTaskCompleterRule(t *testing.T) {
	ctx := context.Background()
	seed := snapshot.Snapshot{
		Employees: testRoster(),
		Shifts: []shift.Shift{
			{
				ID: "shift-1", EmployeeID: "emp-anna", Date: "2026-07-14", StartTime: "09:00", EndTime: "17:00",
				Tasks: []shift.Task{{ID: "task-1", Description: "open the gate", AssigneeIDs: []string{"emp-anna"}}},
			},
			{ID: "shift-2", EmployeeID: "emp-ben", Date: "2026-07-14", StartTime: "10:00", EndTime: "18:00"},
		},
	}

	t.Run("assignee may complete", func(t *testing.T) {
		svc := NewShiftService(newTestStore(t, seed))
		updated, err := svc.ToggleTask(ctx, "shift-1", "task-1", shift.ToggleTaskRequest{EmployeeID: "emp-anna"})
		require.NoError(t, err)
		require.True(t, updated.Tasks[0].IsCompleted)
		require.NotNil(t, updated.Tasks[0].CompletedBy)
		assert.Equal(t, "emp-anna", *updated.Tasks[0].CompletedBy)
	})

	t.Run("same-day teammate may complete", func(t *testing.T) {
		svc := NewShiftService(newTestStore(t, seed))
		updated, err := svc.ToggleTask(ctx, "shift-1", "task-1", shift.ToggleTaskRequest{EmployeeID: "emp-ben"})
		require.NoError(t, err)
		require.NotNil(t, updated.Tasks[0].CompletedBy)
		assert.Equal(t, "emp-ben", *updated.Tasks[0].CompletedBy)
	})

	t.Run("outsider is rejected", func(t *testing.T) {
		svc := NewShiftService(newTestStore(t, seed))
		_, err := svc.ToggleTask(ctx, "shift-1", "task-1", shift.ToggleTaskRequest{EmployeeID: "emp-stranger"})
		assert.ErrorIs(t, err, shift.ErrInvalidCompleter)
	})

	t.Run("toggling off clears attribution", func(t *testing.T) {
		svc := NewShiftService(newTestStore(t, seed))
		_, err := svc.ToggleTask(ctx, "shift-1", "task-1", shift.ToggleTaskRequest{EmployeeID: "emp-anna"})
		require.NoError(t, err)

		// Anyone may uncomplete, including someone who could not complete.
		updated, err := svc.ToggleTask(ctx, "shift-1", "task-1", shift.ToggleTaskRequest{EmployeeID: "emp-stranger"})
		require.NoError(t, err)
		assert.False(t, updated.Tasks[0].IsCompleted)
		assert.Nil(t, updated.Tasks[0].CompletedBy)
	})

	t.Run("unknown task", func(t *testing.T) {
		svc := NewShiftService(newTestStore(t, seed))
		_, err := svc.ToggleTask(ctx, "shift-1", "missing", shift.ToggleTaskRequest{EmployeeID: "emp-anna"})
		assert.ErrorIs(t, err, shift.ErrTaskNotFound)
	})
}

func TestShiftService_DuplicateAppendsAndNotifies(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, snapshot.Snapshot{
		Employees: testRoster(),
		Shifts: []shift.Shift{
			{ID: "shift-1", EmployeeID: "emp-anna", Date: "2026-07-14", StartTime: "09:00", EndTime: "17:00"},
		},
	})
	svc := NewShiftService(store)

	produced, err := svc.Duplicate(ctx, shift.Draft{
		EmployeeIDs: []string{"emp-anna"},
		Date:        "2026-07-15",
		StartTime:   "09:00",
		EndTime:     "17:00",
	})

	require.NoError(t, err)
	require.Len(t, produced, 1)
	assert.Len(t, store.Shifts(), 2)

	notifications := store.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, notification.TypeShiftDuplicated, notifications[0].Type)
}
