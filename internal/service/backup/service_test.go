package backup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campcrew/shiftboard-backend-go/internal/domain/employee"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/shift"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/snapshot"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/taskcategory"
	"github.com/campcrew/shiftboard-backend-go/internal/repository/memory"
	"github.com/campcrew/shiftboard-backend-go/internal/repository/session"
)

func TestBackupService_ExportRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	source, err := session.Open(ctx, memory.NewSeededStore(snapshot.Snapshot{
		Employees: []employee.Employee{{ID: "emp-1", Name: "Anna", HourlyWage: 185}},
		Shifts: []shift.Shift{
			{ID: "shift-1", EmployeeID: "emp-1", Date: "2026-07-14", StartTime: "09:00", EndTime: "17:00"},
		},
		TaskCategories: []taskcategory.TaskCategory{{ID: "cat-1", Name: "Morning routine"}},
	}), nil)
	require.NoError(t, err)

	blob, err := NewBackupService(source).Export(ctx)
	require.NoError(t, err)
	assert.Len(t, blob.Shifts, 1)
	assert.Len(t, blob.TaskCategories, 1)

	// Restore into a venue with a different roster: the shifts and
	// templates come over, the roster does not.
	target, err := session.Open(ctx, memory.NewSeededStore(snapshot.Snapshot{
		Employees: []employee.Employee{{ID: "emp-2", Name: "Ben", HourlyWage: 200}},
	}), nil)
	require.NoError(t, err)

	require.NoError(t, NewBackupService(target).Restore(ctx, blob))

	assert.Len(t, target.Shifts(), 1)
	assert.Len(t, target.TaskCategories(), 1)

	roster := target.Employees()
	require.Len(t, roster, 1)
	assert.Equal(t, "Ben", roster[0].Name)
}

func TestBackupService_RestoreEmptyBlob(t *testing.T) {
	ctx := context.Background()
	store, err := session.Open(ctx, memory.NewSeededStore(snapshot.Snapshot{
		Shifts: []shift.Shift{
			{ID: "shift-1", EmployeeID: "emp-1", Date: "2026-07-14", StartTime: "09:00", EndTime: "17:00"},
		},
	}), nil)
	require.NoError(t, err)

	require.NoError(t, NewBackupService(store).Restore(ctx, Blob{}))

	// An empty blob wipes the backed-up collections but leaves usable
	// empty slices behind.
	assert.Empty(t, store.Shifts())
	assert.NotNil(t, store.Shifts())
}
