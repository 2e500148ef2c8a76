package backup

import (
	"context"

	"github.com/campcrew/shiftboard-backend-go/internal/domain/notification"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/shift"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/taskcategory"
	"github.com/campcrew/shiftboard-backend-go/internal/repository/session"
)

// Blob is the whole-snapshot backup format. It carries exactly the
// collections a restore replaces; the employee roster is managed
// separately and never rides the blob.
type Blob struct {
	Shifts         []shift.Shift               `json:"shifts"`
	TaskCategories []taskcategory.TaskCategory `json:"taskCategories"`
	Notifications  []notification.Notification `json:"notifications"`
}

// BackupService exports and restores the backed-up collections as one
// opaque JSON blob. The mechanics of getting the blob to and from disk
// belong to the caller.
type BackupService interface {
	Export(ctx context.Context) (Blob, error)
	Restore(ctx context.Context, blob Blob) error
}

type backupServiceImpl struct {
	store *session.Store
}

func NewBackupService(store *session.Store) BackupService {
	return &backupServiceImpl{store: store}
}

// Export implements BackupService.
func (s *backupServiceImpl) Export(ctx context.Context) (Blob, error) {
	return Blob{
		Shifts:         s.store.Shifts(),
		TaskCategories: s.store.TaskCategories(),
		Notifications:  s.store.Notifications(),
	}, nil
}

// Restore implements BackupService. The imported collections replace
// the current ones wholesale; normalization happens in the session
// store so legacy blobs with missing fields round-trip safely.
func (s *backupServiceImpl) Restore(ctx context.Context, blob Blob) error {
	s.store.Restore(blob.Shifts, blob.TaskCategories, blob.Notifications)
	return nil
}
