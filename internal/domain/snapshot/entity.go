package snapshot

import (
	"github.com/campcrew/shiftboard-backend-go/internal/domain/employee"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/notification"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/shift"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/taskcategory"
	"github.com/campcrew/shiftboard-backend-go/internal/pkg/validator"
)

// Snapshot is the whole persisted state: every backend stores it as one
// opaque JSON blob and the session store owns it in memory.
type Snapshot struct {
	Shifts         []shift.Shift               `json:"shifts"`
	Employees      []employee.Employee         `json:"employees"`
	TaskCategories []taskcategory.TaskCategory `json:"taskCategories"`
	Notifications  []notification.Notification `json:"notifications"`
}

// Normalize applies schema defaulting at the boundary so core logic
// never sees malformed data: nil collections become empty, a missing
// hourly wage falls back to the default, and break durations are
// rederived whenever both break endpoints are present. Legacy records
// carrying only a duration keep it.
func (s *Snapshot) Normalize() {
	if s.Shifts == nil {
		s.Shifts = []shift.Shift{}
	}
	if s.Employees == nil {
		s.Employees = []employee.Employee{}
	}
	if s.TaskCategories == nil {
		s.TaskCategories = []taskcategory.TaskCategory{}
	}
	if s.Notifications == nil {
		s.Notifications = []notification.Notification{}
	}

	for i := range s.Employees {
		if s.Employees[i].HourlyWage <= 0 {
			s.Employees[i].HourlyWage = employee.DefaultHourlyWage
		}
	}

	for i := range s.Shifts {
		sh := &s.Shifts[i]
		if sh.Tasks == nil {
			sh.Tasks = []shift.Task{}
		}
		if sh.BreakStartTime != "" && sh.BreakEndTime != "" {
			minutes := validator.ClockMinutes(sh.BreakEndTime) - validator.ClockMinutes(sh.BreakStartTime)
			if minutes < 0 {
				minutes = 0
			}
			sh.BreakDuration = minutes
		}
		if sh.BreakDuration < 0 {
			sh.BreakDuration = 0
		}
		for j := range sh.Tasks {
			if !sh.Tasks[j].IsCompleted {
				sh.Tasks[j].CompletedBy = nil
			}
		}
	}
}

// Clone deep-copies the snapshot so callers can hand it to a persistence
// goroutine without racing the session store.
func (s Snapshot) Clone() Snapshot {
	c := Snapshot{
		Shifts:         make([]shift.Shift, 0, len(s.Shifts)),
		Employees:      append([]employee.Employee(nil), s.Employees...),
		TaskCategories: make([]taskcategory.TaskCategory, 0, len(s.TaskCategories)),
		Notifications:  append([]notification.Notification(nil), s.Notifications...),
	}
	for _, sh := range s.Shifts {
		c.Shifts = append(c.Shifts, sh.Clone())
	}
	for _, tc := range s.TaskCategories {
		tcCopy := tc
		tcCopy.Tasks = append([]string(nil), tc.Tasks...)
		c.TaskCategories = append(c.TaskCategories, tcCopy)
	}
	return c
}
