package stats

import "context"

// EmployeeStats are one employee's aggregated numbers for a month.
// Hours are net (break deducted); the salary is a sum of per-shift
// rounded amounts, not a single rounding of the total.
type EmployeeStats struct {
	EmployeeID         string  `json:"employeeId"`
	Name               string  `json:"name"`
	ShiftCount         int     `json:"shiftCount"`
	TotalNetHours      float64 `json:"totalNetHours"`
	NormalHours        float64 `json:"normalHours"`
	Overtime1Hours     float64 `json:"overtime1Hours"`
	Overtime2Hours     float64 `json:"overtime2Hours"`
	EstimatedSalary    int     `json:"estimatedSalary"`
	TaskCompletionRate int     `json:"taskCompletionRate"`
}

type MonthlyStats struct {
	Month              string                   `json:"month"`
	PerEmployee        map[string]EmployeeStats `json:"perEmployee"`
	GrandTotalNetHours float64                  `json:"grandTotalNetHours"`
	GrandTotalSalary   int                      `json:"grandTotalSalary"`
	TotalShiftCount    int                      `json:"totalShiftCount"`
	AverageWage        int                      `json:"averageWage"`
}

// StatsService recomputes monthly statistics on demand from the
// committed shift collection. It is a total function: empty input yields
// zeros, never an error beyond a malformed month string.
type StatsService interface {
	Monthly(ctx context.Context, month string) (MonthlyStats, error)
}
