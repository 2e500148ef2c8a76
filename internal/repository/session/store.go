package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/campcrew/shiftboard-backend-go/internal/domain/employee"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/notification"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/shift"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/snapshot"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/taskcategory"
)

// Store is the single-writer owner of the in-memory collections. All
// mutations go through its Update methods; after each one the full
// snapshot is handed to the backend on a detached goroutine. Persistence
// is best-effort: failures are logged and never surface to callers.
type Store struct {
	mu      sync.RWMutex
	snap    snapshot.Snapshot
	backend snapshot.Store
	logger  *slog.Logger
	wg      sync.WaitGroup
}

// Open loads the snapshot from the backend and normalizes it at the
// boundary so core logic never sees malformed data.
func Open(ctx context.Context, backend snapshot.Store, logger *slog.Logger) (*Store, error) {
	snap, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	snap.Normalize()

	return &Store{
		snap:    snap,
		backend: backend,
		logger:  logger,
	}, nil
}

func (s *Store) Shifts() []shift.Shift {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]shift.Shift, 0, len(s.snap.Shifts))
	for _, sh := range s.snap.Shifts {
		out = append(out, sh.Clone())
	}
	return out
}

func (s *Store) Employees() []employee.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]employee.Employee(nil), s.snap.Employees...)
}

func (s *Store) TaskCategories() []taskcategory.TaskCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]taskcategory.TaskCategory, 0, len(s.snap.TaskCategories))
	for _, tc := range s.snap.TaskCategories {
		tc.Tasks = append([]string(nil), tc.Tasks...)
		out = append(out, tc)
	}
	return out
}

func (s *Store) Notifications() []notification.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]notification.Notification(nil), s.snap.Notifications...)
}

// UpdateShifts replaces the shift collection with the result of fn. The
// error returned by fn aborts the update without persisting.
func (s *Store) UpdateShifts(fn func(shifts []shift.Shift) ([]shift.Shift, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated, err := fn(s.snap.Shifts)
	if err != nil {
		return err
	}
	s.snap.Shifts = updated
	s.persistLocked()
	return nil
}

func (s *Store) UpdateEmployees(fn func(employees []employee.Employee) ([]employee.Employee, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated, err := fn(s.snap.Employees)
	if err != nil {
		return err
	}
	s.snap.Employees = updated
	s.persistLocked()
	return nil
}

func (s *Store) UpdateTaskCategories(fn func(categories []taskcategory.TaskCategory) ([]taskcategory.TaskCategory, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated, err := fn(s.snap.TaskCategories)
	if err != nil {
		return err
	}
	s.snap.TaskCategories = updated
	s.persistLocked()
	return nil
}

func (s *Store) AppendNotification(n notification.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	s.snap.Notifications = append(s.snap.Notifications, n)
	s.persistLocked()
}

// Restore replaces the backed-up collections (shifts, task categories,
// notifications) from an imported blob. The employee roster is not part
// of the backup blob and stays as-is.
func (s *Store) Restore(shifts []shift.Shift, categories []taskcategory.TaskCategory, notifications []notification.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	restored := snapshot.Snapshot{
		Shifts:         shifts,
		Employees:      s.snap.Employees,
		TaskCategories: categories,
		Notifications:  notifications,
	}
	restored.Normalize()
	s.snap = restored
	s.persistLocked()
}

// persistLocked hands a deep copy of the snapshot to the backend on a
// detached goroutine. The caller must hold the write lock.
func (s *Store) persistLocked() {
	snap := s.snap.Clone()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.backend.Save(context.Background(), snap); err != nil {
			if s.logger != nil {
				s.logger.Error("snapshot save failed", "error", err)
			}
		}
	}()
}

// Flush waits for in-flight saves. Used on shutdown and in tests.
func (s *Store) Flush() {
	s.wg.Wait()
}
