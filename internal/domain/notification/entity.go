package notification

import "time"

// NotificationType marks what kind of scheduling event produced the entry.
type NotificationType string

const (
	TypeShiftCreated    NotificationType = "shift_created"
	TypeShiftUpdated    NotificationType = "shift_updated"
	TypeShiftDeleted    NotificationType = "shift_deleted"
	TypeShiftDuplicated NotificationType = "shift_duplicated"
)

// Notification is a feed entry produced by shift mutations. The feed
// rides the snapshot and the backup blob; rendering and delivery are
// outside this service.
type Notification struct {
	ID         string           `json:"id"`
	Type       NotificationType `json:"type"`
	EmployeeID string           `json:"employeeId,omitempty"`
	Message    string           `json:"message"`
	CreatedAt  time.Time        `json:"createdAt"`
}
