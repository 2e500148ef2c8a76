package stats

import (
	"math"
	"time"

	"github.com/campcrew/shiftboard-backend-go/internal/domain/employee"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/shift"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/stats"
	"github.com/campcrew/shiftboard-backend-go/internal/pkg/validator"
)

// Overtime multipliers: the first two hours past 8 net hours pay 1.34x,
// anything past 10 pays 1.67x.
const (
	overtime1Rate = 1.34
	overtime2Rate = 1.67

	normalTierLimit   = 8.0
	overtime1TierSpan = 2.0
)

// Tiers is a shift's net duration decomposed into pay tiers. The three
// parts always sum exactly to the net duration.
type Tiers struct {
	Normal    float64
	Overtime1 float64
	Overtime2 float64
}

// SplitTiers decomposes a non-negative net duration in hours.
func SplitTiers(net float64) Tiers {
	return Tiers{
		Normal:    math.Min(net, normalTierLimit),
		Overtime1: math.Min(math.Max(net-normalTierLimit, 0), overtime1TierSpan),
		Overtime2: math.Max(net-normalTierLimit-overtime1TierSpan, 0),
	}
}

// NetHours is a shift's scheduled duration minus its break, in hours,
// floored at zero. An end time numerically before the start time encodes
// an overnight shift and wraps by 24h; spans beyond one midnight
// crossing are not representable.
func NetHours(s shift.Shift) float64 {
	gross := validator.ClockMinutes(s.EndTime) - validator.ClockMinutes(s.StartTime)
	if gross < 0 {
		gross += 24 * 60
	}
	net := float64(gross)/60 - float64(s.BreakDuration)/60
	if net < 0 {
		net = 0
	}
	return net
}

// ShiftPay is one shift's pay, rounded per shift. Monthly salaries are
// sums of these per-shift roundings, never a single rounding of the
// total; downstream consumers rely on that digit-for-digit.
func ShiftPay(t Tiers, wage float64) int {
	return int(math.Round(t.Normal*wage + t.Overtime1*wage*overtime1Rate + t.Overtime2*wage*overtime2Rate))
}

// ComputeMonthlyStats aggregates hours, wages and task completion for
// every shift whose date falls in the reference month. It is a total
// function: empty input produces zeros, unknown employee references get
// a row of their own with the default wage, and it never fails.
func ComputeMonthlyStats(shifts []shift.Shift, employees []employee.Employee, referenceMonth time.Time) stats.MonthlyStats {
	perEmployee := make(map[string]stats.EmployeeStats)
	wages := make(map[string]float64)

	for _, e := range employees {
		wage := e.HourlyWage
		if wage <= 0 {
			wage = employee.DefaultHourlyWage
		}
		wages[e.ID] = wage
		perEmployee[e.ID] = stats.EmployeeStats{EmployeeID: e.ID, Name: e.Name}
	}

	taskTotals := make(map[string][2]int) // employeeID -> {completed, total}
	result := stats.MonthlyStats{
		Month: referenceMonth.Format("2006-01"),
	}

	for _, s := range shifts {
		date, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			continue
		}
		if date.Year() != referenceMonth.Year() || date.Month() != referenceMonth.Month() {
			continue
		}

		row, ok := perEmployee[s.EmployeeID]
		if !ok {
			// Dangling reference after an employee deletion.
			row = stats.EmployeeStats{EmployeeID: s.EmployeeID, Name: "unknown"}
			wages[s.EmployeeID] = employee.DefaultHourlyWage
		}

		net := NetHours(s)
		tiers := SplitTiers(net)

		row.ShiftCount++
		row.TotalNetHours += net
		row.NormalHours += tiers.Normal
		row.Overtime1Hours += tiers.Overtime1
		row.Overtime2Hours += tiers.Overtime2
		row.EstimatedSalary += ShiftPay(tiers, wages[s.EmployeeID])
		perEmployee[s.EmployeeID] = row

		counts := taskTotals[s.EmployeeID]
		for _, t := range s.Tasks {
			counts[1]++
			if t.IsCompleted {
				counts[0]++
			}
		}
		taskTotals[s.EmployeeID] = counts

		result.TotalShiftCount++
	}

	for id, row := range perEmployee {
		counts := taskTotals[id]
		if counts[1] > 0 {
			row.TaskCompletionRate = int(math.Round(100 * float64(counts[0]) / float64(counts[1])))
			perEmployee[id] = row
		}
		result.GrandTotalNetHours += row.TotalNetHours
		result.GrandTotalSalary += row.EstimatedSalary
	}

	if result.GrandTotalNetHours > 0 {
		result.AverageWage = int(math.Round(float64(result.GrandTotalSalary) / result.GrandTotalNetHours))
	}

	result.PerEmployee = perEmployee
	return result
}
