package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campcrew/shiftboard-backend-go/internal/domain/employee"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/shift"
)

func TestSplitTiers(t *testing.T) {
	tests := []struct {
		name   string
		net    float64
		normal float64
		ot1    float64
		ot2    float64
	}{
		{"zero", 0, 0, 0, 0},
		{"within normal", 7.5, 7.5, 0, 0},
		{"exactly eight", 8, 8, 0, 0},
		{"into first tier", 9, 8, 1, 0},
		{"exactly ten", 10, 8, 2, 0},
		{"into second tier", 11.5, 8, 2, 1.5},
		{"fractional boundary", 8.25, 8, 0.25, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiers := SplitTiers(tt.net)
			assert.Equal(t, tt.normal, tiers.Normal)
			assert.Equal(t, tt.ot1, tiers.Overtime1)
			assert.Equal(t, tt.ot2, tiers.Overtime2)
		})
	}
}

func TestSplitTiers_PartsSumToNet(t *testing.T) {
	for net := 0.0; net <= 16; net += 0.25 {
		tiers := SplitTiers(net)
		assert.InDelta(t, net, tiers.Normal+tiers.Overtime1+tiers.Overtime2, 1e-9, "net=%v", net)
	}
}

func TestNetHours(t *testing.T) {
	tests := []struct {
		name string
		s    shift.Shift
		want float64
	}{
		{"plain day shift", shift.Shift{StartTime: "09:00", EndTime: "17:00"}, 8},
		{"break deducted", shift.Shift{StartTime: "09:00", EndTime: "17:00", BreakDuration: 60}, 7},
		{"overnight wraps", shift.Shift{StartTime: "22:00", EndTime: "06:00"}, 8},
		{"overnight with break", shift.Shift{StartTime: "22:00", EndTime: "06:00", BreakDuration: 30}, 7.5},
		{"break exceeds span floors at zero", shift.Shift{StartTime: "09:00", EndTime: "10:00", BreakDuration: 90}, 0},
		{"zero-length shift", shift.Shift{StartTime: "09:00", EndTime: "09:00"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NetHours(tt.s), 1e-9)
		})
	}
}

func TestShiftPay(t *testing.T) {
	// 10 gross hours minus a 1h break: 8 normal + 1 first-tier overtime
	// at the default wage. 8*185 + 1*185*1.34 = 1480 + 247.9 -> 1728.
	tiers := SplitTiers(9)
	assert.Equal(t, 1728, ShiftPay(tiers, 185))

	// Second tier kicks in past 10 net hours.
	// 8*185 + 2*185*1.34 + 1*185*1.67 = 1480 + 495.8 + 308.95 -> 2285.
	tiers = SplitTiers(11)
	assert.Equal(t, 2285, ShiftPay(tiers, 185))

	assert.Equal(t, 0, ShiftPay(SplitTiers(0), 185))
}

func TestComputeMonthlyStats_SingleShiftWithOvertime(t *testing.T) {
	employees := []employee.Employee{{ID: "emp-anna", Name: "Anna", HourlyWage: 185}}
	shifts := []shift.Shift{
		{ID: "shift-1", EmployeeID: "emp-anna", Date: "2026-07-14", StartTime: "09:00", EndTime: "19:00", BreakDuration: 60},
	}

	result := ComputeMonthlyStats(shifts, employees, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2026-07", result.Month)
	assert.Equal(t, 1, result.TotalShiftCount)

	row := result.PerEmployee["emp-anna"]
	assert.Equal(t, "Anna", row.Name)
	assert.Equal(t, 1, row.ShiftCount)
	assert.InDelta(t, 9, row.TotalNetHours, 1e-9)
	assert.InDelta(t, 8, row.NormalHours, 1e-9)
	assert.InDelta(t, 1, row.Overtime1Hours, 1e-9)
	assert.InDelta(t, 0, row.Overtime2Hours, 1e-9)
	assert.Equal(t, 1728, row.EstimatedSalary)

	assert.InDelta(t, 9, result.GrandTotalNetHours, 1e-9)
	assert.Equal(t, 1728, result.GrandTotalSalary)
	// round(1728 / 9)
	assert.Equal(t, 192, result.AverageWage)
}

func TestComputeMonthlyStats_PerShiftRounding(t *testing.T) {
	// Two half-overtime shifts whose per-shift pay lands on .5: the
	// rounding happens per shift, then the rounded amounts are summed.
	// Rounding the sum instead would lose a unit.
	employees := []employee.Employee{{ID: "emp-anna", Name: "Anna", HourlyWage: 150}}
	shifts := []shift.Shift{
		{ID: "shift-1", EmployeeID: "emp-anna", Date: "2026-07-14", StartTime: "08:00", EndTime: "16:30"},
		{ID: "shift-2", EmployeeID: "emp-anna", Date: "2026-07-15", StartTime: "08:00", EndTime: "16:30"},
	}

	result := ComputeMonthlyStats(shifts, employees, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))

	// One shift: 8*150 + 0.5*150*1.34 = 1200 + 100.5 -> 1301 (round half up).
	// Two shifts sum the per-shift roundings: 2602.
	assert.Equal(t, 2602, result.PerEmployee["emp-anna"].EstimatedSalary)
}

func TestComputeMonthlyStats_MonthFilter(t *testing.T) {
	employees := []employee.Employee{{ID: "emp-anna", Name: "Anna", HourlyWage: 185}}
	shifts := []shift.Shift{
		{ID: "shift-1", EmployeeID: "emp-anna", Date: "2026-07-31", StartTime: "09:00", EndTime: "17:00"},
		{ID: "shift-2", EmployeeID: "emp-anna", Date: "2026-08-01", StartTime: "09:00", EndTime: "17:00"},
		{ID: "shift-3", EmployeeID: "emp-anna", Date: "not-a-date", StartTime: "09:00", EndTime: "17:00"},
	}

	result := ComputeMonthlyStats(shifts, employees, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 1, result.TotalShiftCount)
	assert.Equal(t, 1, result.PerEmployee["emp-anna"].ShiftCount)
}

func TestComputeMonthlyStats_EmptyMonthYieldsZeroRows(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-anna", Name: "Anna", HourlyWage: 185},
		{ID: "emp-ben", Name: "Ben", HourlyWage: 200},
	}

	result := ComputeMonthlyStats(nil, employees, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))

	// Every rostered employee gets a row even with no shifts, and the
	// zero denominators never divide.
	require.Len(t, result.PerEmployee, 2)
	for _, row := range result.PerEmployee {
		assert.Zero(t, row.ShiftCount)
		assert.Zero(t, row.EstimatedSalary)
		assert.Zero(t, row.TaskCompletionRate)
	}
	assert.Zero(t, result.TotalShiftCount)
	assert.Zero(t, result.GrandTotalSalary)
	assert.Zero(t, result.AverageWage)
}

func TestComputeMonthlyStats_DanglingEmployeeReference(t *testing.T) {
	shifts := []shift.Shift{
		{ID: "shift-1", EmployeeID: "emp-gone", Date: "2026-07-14", StartTime: "09:00", EndTime: "17:00"},
	}

	result := ComputeMonthlyStats(shifts, nil, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))

	row, ok := result.PerEmployee["emp-gone"]
	require.True(t, ok)
	assert.Equal(t, "unknown", row.Name)
	// Deleted employees fall back to the default wage: 8 * 185.
	assert.Equal(t, 1480, row.EstimatedSalary)
}

func TestComputeMonthlyStats_TaskCompletionRate(t *testing.T) {
	employees := []employee.Employee{{ID: "emp-anna", Name: "Anna", HourlyWage: 185}}
	shifts := []shift.Shift{
		{
			ID: "shift-1", EmployeeID: "emp-anna", Date: "2026-07-14", StartTime: "09:00", EndTime: "17:00",
			Tasks: []shift.Task{
				{ID: "a", IsCompleted: true},
				{ID: "b", IsCompleted: true},
				{ID: "c"},
			},
		},
	}

	result := ComputeMonthlyStats(shifts, employees, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))

	// round(100 * 2/3)
	assert.Equal(t, 67, result.PerEmployee["emp-anna"].TaskCompletionRate)
}

func TestComputeMonthlyStats_ZeroWageFallsBack(t *testing.T) {
	employees := []employee.Employee{{ID: "emp-anna", Name: "Anna"}}
	shifts := []shift.Shift{
		{ID: "shift-1", EmployeeID: "emp-anna", Date: "2026-07-14", StartTime: "09:00", EndTime: "17:00"},
	}

	result := ComputeMonthlyStats(shifts, employees, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 8*185, result.PerEmployee["emp-anna"].EstimatedSalary)
}
