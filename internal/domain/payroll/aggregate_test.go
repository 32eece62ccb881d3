package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"backoffice/internal/domain/attendance"
)

func TestHoursForPeriodUnderThreshold(t *testing.T) {
	source := newFakeSource(
		closedShift("s1", "2025-01-02T09:00:00Z", 8),
		closedShift("s1", "2025-01-03T09:00:00Z", 7.5),
	)
	agg := NewAggregator(source)

	regular, overtime, err := agg.HoursForPeriod(context.Background(), "s1", "2025-01")
	require.NoError(t, err)
	require.Equal(t, 15.5, regular)
	require.Zero(t, overtime)
}

func TestHoursForPeriodSplitsOvertime(t *testing.T) {
	source := newFakeSource(
		closedShift("s1", "2025-01-02T00:00:00Z", 100),
		closedShift("s1", "2025-01-10T00:00:00Z", 70),
	)
	agg := NewAggregator(source)

	regular, overtime, err := agg.HoursForPeriod(context.Background(), "s1", "2025-01")
	require.NoError(t, err)
	require.Equal(t, 160.0, regular)
	require.Equal(t, 10.0, overtime)
}

func TestHoursForPeriodExcludesOpenShifts(t *testing.T) {
	source := newFakeSource(
		closedShift("s1", "2025-01-02T09:00:00Z", 8),
		openShift("s1", "2025-01-03T09:00:00Z"),
	)
	agg := NewAggregator(source)

	regular, overtime, err := agg.HoursForPeriod(context.Background(), "s1", "2025-01")
	require.NoError(t, err)
	require.Equal(t, 8.0, regular)
	require.Zero(t, overtime)
}

func TestHoursForPeriodClampsClockErrors(t *testing.T) {
	// check-out before check-in contributes zero, never negative hours
	source := newFakeSource(
		closedShift("s1", "2025-01-02T09:00:00Z", -3),
		closedShift("s1", "2025-01-03T09:00:00Z", 6),
	)
	agg := NewAggregator(source)

	regular, overtime, err := agg.HoursForPeriod(context.Background(), "s1", "2025-01")
	require.NoError(t, err)
	require.Equal(t, 6.0, regular)
	require.Zero(t, overtime)
}

func TestHoursForPeriodIgnoresOtherWindows(t *testing.T) {
	source := newFakeSource(
		closedShift("s1", "2024-12-31T23:00:00Z", 8),
		closedShift("s1", "2025-02-01T00:00:00Z", 8),
		closedShift("s1", "2025-01-15T09:00:00Z", 4),
	)
	agg := NewAggregator(source)

	regular, overtime, err := agg.HoursForPeriod(context.Background(), "s1", "2025-01")
	require.NoError(t, err)
	require.Equal(t, 4.0, regular)
	require.Zero(t, overtime)
}

func TestHoursForPeriodNoRecords(t *testing.T) {
	agg := NewAggregator(newFakeSource())

	regular, overtime, err := agg.HoursForPeriod(context.Background(), "s1", "2025-01")
	require.NoError(t, err)
	require.Zero(t, regular)
	require.Zero(t, overtime)
}

func TestHoursForPeriodInvalidKey(t *testing.T) {
	agg := NewAggregator(newFakeSource())

	_, _, err := agg.HoursForPeriod(context.Background(), "s1", "2025/01")
	require.ErrorIs(t, err, ErrInvalidPeriod)
}

func closedShift(staffID, checkIn string, hours float64) attendance.Record {
	in, err := time.Parse(time.RFC3339, checkIn)
	if err != nil {
		panic(err)
	}
	out := in.Add(time.Duration(hours * float64(time.Hour)))
	return attendance.Record{StaffID: staffID, CheckIn: in, CheckOut: &out, Method: attendance.MethodManual, Status: attendance.StatusPresent}
}

func openShift(staffID, checkIn string) attendance.Record {
	in, err := time.Parse(time.RFC3339, checkIn)
	if err != nil {
		panic(err)
	}
	return attendance.Record{StaffID: staffID, CheckIn: in, Method: attendance.MethodManual, Status: attendance.StatusPresent}
}
