package payroll

import (
	"context"
	"time"

	"backoffice/internal/domain/attendance"
)

// OvertimeThresholdHours is the monthly split point between regular and
// overtime hours. Fixed policy, not derived from days in the month.
const OvertimeThresholdHours = 160.0

type AttendanceSource interface {
	ListClosedInRange(ctx context.Context, staffID string, start, end time.Time) ([]attendance.Record, error)
}

type Aggregator struct {
	source AttendanceSource
}

func NewAggregator(source AttendanceSource) *Aggregator {
	return &Aggregator{source: source}
}

// HoursForPeriod sums the worked hours of all closed shifts checked in
// during the period and splits them at the overtime threshold. Open
// shifts contribute nothing.
func (a *Aggregator) HoursForPeriod(ctx context.Context, staffID, period string) (regular, overtime float64, err error) {
	start, end, err := ParsePeriod(period)
	if err != nil {
		return 0, 0, err
	}

	records, err := a.source.ListClosedInRange(ctx, staffID, start, end)
	if err != nil {
		return 0, 0, err
	}

	var total float64
	for _, record := range records {
		total += record.Hours()
	}
	regular, overtime = SplitHours(total)
	return regular, overtime, nil
}

func SplitHours(total float64) (regular, overtime float64) {
	if total <= OvertimeThresholdHours {
		return total, 0
	}
	return OvertimeThresholdHours, total - OvertimeThresholdHours
}
