package employee

// Employee is a person who can be scheduled on shifts. Shifts reference
// employees by ID only; deleting an employee leaves its shifts in place
// and the dangling reference renders as "unknown" downstream.
type Employee struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	HourlyWage float64 `json:"hourlyWage"`
	Role       string  `json:"role,omitempty"`
	Color      string  `json:"color,omitempty"`
}

// DefaultHourlyWage is substituted when a record carries no wage.
const DefaultHourlyWage = 185
