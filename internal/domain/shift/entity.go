package shift

// Task is a unit of work attached to a shift. An empty AssigneeIDs list
// means the task is visible and actionable by every employee on the shift.
// CompletedBy is set only while IsCompleted is true.
type Task struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	IsCompleted bool     `json:"isCompleted"`
	Tags        []string `json:"tags,omitempty"`
	AssigneeIDs []string `json:"assigneeIds,omitempty"`
	CompletedBy *string  `json:"completedBy,omitempty"`
}

// Clone returns a deep copy of the task so sibling shifts never alias
// each other's tag or assignee slices.
func (t Task) Clone() Task {
	c := t
	if t.Tags != nil {
		c.Tags = append([]string(nil), t.Tags...)
	}
	if t.AssigneeIDs != nil {
		c.AssigneeIDs = append([]string(nil), t.AssigneeIDs...)
	}
	if t.CompletedBy != nil {
		v := *t.CompletedBy
		c.CompletedBy = &v
	}
	return c
}

// AssignedTo reports whether the task applies to the given employee.
func (t Task) AssignedTo(employeeID string) bool {
	if len(t.AssigneeIDs) == 0 {
		return true
	}
	for _, id := range t.AssigneeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

// Shift is one employee's scheduled work block on a single date.
// Multi-employee assignment is modeled as sibling records sharing
// date/time/role/log, each carrying its own task subset.
//
// Date is a calendar day "2006-01-02"; times are 24h "15:04" strings.
// BreakDuration is minutes, rederived from the break endpoints whenever
// both are set; legacy records may carry only the duration.
type Shift struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employeeId"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	BreakStartTime string `json:"breakStartTime,omitempty"`
	BreakEndTime   string `json:"breakEndTime,omitempty"`
	BreakDuration  int    `json:"breakDuration"`
	Role           string `json:"role"`
	Tasks          []Task `json:"tasks"`
	ShiftLog       string `json:"shiftLog,omitempty"`
	Color          string `json:"color,omitempty"`
}

// Clone returns a deep copy of the shift including its task list.
func (s Shift) Clone() Shift {
	c := s
	c.Tasks = make([]Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		c.Tasks = append(c.Tasks, t.Clone())
	}
	return c
}
