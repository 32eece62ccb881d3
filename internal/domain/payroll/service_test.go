package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"backoffice/internal/domain/attendance"
	"backoffice/internal/domain/staff"
)

type fakeSource struct {
	records []attendance.Record
}

func newFakeSource(records ...attendance.Record) *fakeSource {
	return &fakeSource{records: records}
}

func (f *fakeSource) add(records ...attendance.Record) {
	f.records = append(f.records, records...)
}

func (f *fakeSource) ListClosedInRange(_ context.Context, staffID string, start, end time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, record := range f.records {
		if record.StaffID != staffID || record.CheckOut == nil {
			continue
		}
		if record.CheckIn.Before(start) || !record.CheckIn.Before(end) {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

type fakeDirectory struct {
	members map[string]staff.Staff
}

func (f *fakeDirectory) GetByID(_ context.Context, id string) (staff.Staff, error) {
	member, ok := f.members[id]
	if !ok {
		return staff.Staff{}, staff.ErrNotFound
	}
	return member, nil
}

type fakeStore struct {
	byKey map[string]*Record
	byID  map[string]*Record
	slips []Payslip
	seq   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{byKey: map[string]*Record{}, byID: map[string]*Record{}}
}

func (f *fakeStore) UpsertRecord(_ context.Context, staffID, period string, gross, deductions, net float64) (Record, error) {
	key := staffID + "|" + period
	now := time.Now().UTC()
	if existing, ok := f.byKey[key]; ok {
		existing.GrossPay = gross
		existing.Deductions = deductions
		existing.NetPay = net
		existing.UpdatedAt = now
		return *existing, nil
	}
	f.seq++
	record := &Record{
		ID:         fmt.Sprintf("rec-%d", f.seq),
		StaffID:    staffID,
		Period:     period,
		GrossPay:   gross,
		Deductions: deductions,
		NetPay:     net,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	f.byKey[key] = record
	f.byID[record.ID] = record
	return *record, nil
}

func (f *fakeStore) GetRecord(_ context.Context, id string) (Record, error) {
	record, ok := f.byID[id]
	if !ok {
		return Record{}, ErrRecordNotFound
	}
	return *record, nil
}

func (f *fakeStore) ListRecords(_ context.Context, staffID string) ([]Record, error) {
	var out []Record
	for _, record := range f.byID {
		if record.StaffID == staffID {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (f *fakeStore) CreatePayslip(_ context.Context, payrollID, filePath string) (Payslip, error) {
	f.seq++
	slip := Payslip{
		ID:        fmt.Sprintf("slip-%d", f.seq),
		PayrollID: payrollID,
		FilePath:  filePath,
		IssuedAt:  time.Now().UTC(),
	}
	f.slips = append(f.slips, slip)
	return slip, nil
}

func (f *fakeStore) ListPayslips(_ context.Context, staffID string, limit, offset int) ([]Payslip, error) {
	var out []Payslip
	for _, slip := range f.slips {
		record := f.byID[slip.PayrollID]
		if record != nil && record.StaffID == staffID {
			out = append(out, slip)
		}
	}
	return out, nil
}

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.sent = append(f.sent, to)
	return nil
}

func testMember(id string) staff.Staff {
	return staff.Staff{
		ID:        id,
		FirstName: "Dana",
		LastName:  "Reyes",
		Email:     "dana@example.com",
		Position:  "line cook",
		Status:    staff.StatusActive,
	}
}

func newTestService(t *testing.T, directory *fakeDirectory, source *fakeSource, store *fakeStore, mailer *fakeMailer) *Service {
	t.Helper()
	return NewService(directory, source, store, DefaultRates(), mailer, t.TempDir())
}

func TestRunWorkedExample(t *testing.T) {
	directory := &fakeDirectory{members: map[string]staff.Staff{"s1": testMember("s1")}}
	source := newFakeSource(
		closedShift("s1", "2025-01-02T00:00:00Z", 100),
		closedShift("s1", "2025-01-10T00:00:00Z", 70),
	)
	store := newFakeStore()
	mailer := &fakeMailer{}
	svc := newTestService(t, directory, source, store, mailer)

	result, err := svc.Run(context.Background(), "s1", "2025-01")
	require.NoError(t, err)

	require.Equal(t, 2625.0, result.GrossPay)
	require.Equal(t, 525.0, result.Deductions)
	require.Equal(t, 2100.0, result.NetPay)
	require.Equal(t, 160.0, result.Breakdown.HoursWorked)
	require.Equal(t, 10.0, result.Breakdown.OvertimeHours)
	require.Equal(t, result.GrossPay-result.Deductions, result.NetPay)
	require.False(t, result.CreatedAt.IsZero())

	require.Len(t, store.byKey, 1)
	require.Len(t, store.slips, 1)
	require.Equal(t, []string{"dana@example.com"}, mailer.sent)
}

func TestRunRerunUpdatesRecordAppendsPayslip(t *testing.T) {
	directory := &fakeDirectory{members: map[string]staff.Staff{"s1": testMember("s1")}}
	source := newFakeSource(closedShift("s1", "2025-01-02T09:00:00Z", 40))
	store := newFakeStore()
	svc := newTestService(t, directory, source, store, &fakeMailer{})

	first, err := svc.Run(context.Background(), "s1", "2025-01")
	require.NoError(t, err)
	require.Equal(t, 600.0, first.GrossPay)

	source.add(closedShift("s1", "2025-01-09T09:00:00Z", 10))

	second, err := svc.Run(context.Background(), "s1", "2025-01")
	require.NoError(t, err)
	require.Equal(t, 750.0, second.GrossPay)

	records, err := svc.History(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 750.0, records[0].GrossPay)
	require.Equal(t, records[0].GrossPay-records[0].Deductions, records[0].NetPay)

	require.Len(t, store.slips, 2)
}

func TestRunUnknownStaffPersistsNothing(t *testing.T) {
	directory := &fakeDirectory{members: map[string]staff.Staff{}}
	store := newFakeStore()
	svc := newTestService(t, directory, newFakeSource(), store, &fakeMailer{})

	_, err := svc.Run(context.Background(), "ghost", "2025-01")
	require.ErrorIs(t, err, staff.ErrNotFound)
	require.ErrorContains(t, err, "ghost")
	require.Empty(t, store.byKey)
	require.Empty(t, store.slips)
}

func TestRunInvalidPeriodPersistsNothing(t *testing.T) {
	directory := &fakeDirectory{members: map[string]staff.Staff{"s1": testMember("s1")}}
	store := newFakeStore()
	svc := newTestService(t, directory, newFakeSource(), store, &fakeMailer{})

	_, err := svc.Run(context.Background(), "s1", "January 2025")
	require.ErrorIs(t, err, ErrInvalidPeriod)
	require.Empty(t, store.byKey)
	require.Empty(t, store.slips)
}

func TestRunNoAttendanceStillPersists(t *testing.T) {
	directory := &fakeDirectory{members: map[string]staff.Staff{"s1": testMember("s1")}}
	store := newFakeStore()
	svc := newTestService(t, directory, newFakeSource(), store, &fakeMailer{})

	result, err := svc.Run(context.Background(), "s1", "2025-03")
	require.NoError(t, err)
	require.Zero(t, result.GrossPay)
	require.Zero(t, result.Deductions)
	require.Zero(t, result.NetPay)

	require.Len(t, store.byKey, 1)
	require.Len(t, store.slips, 1)
}

func TestRunStaffHourlyRateOverride(t *testing.T) {
	member := testMember("s1")
	rate := 20.0
	member.HourlyRate = &rate
	directory := &fakeDirectory{members: map[string]staff.Staff{"s1": member}}
	source := newFakeSource(closedShift("s1", "2025-01-02T09:00:00Z", 10))
	store := newFakeStore()
	svc := newTestService(t, directory, source, store, &fakeMailer{})

	result, err := svc.Run(context.Background(), "s1", "2025-01")
	require.NoError(t, err)
	require.Equal(t, 200.0, result.GrossPay)
	require.Equal(t, 20.0, result.Breakdown.HourlyRate)
	require.Equal(t, 30.0, result.Breakdown.OvertimeRate)
}

func TestIssuePayslipMissingRecord(t *testing.T) {
	directory := &fakeDirectory{members: map[string]staff.Staff{}}
	svc := newTestService(t, directory, newFakeSource(), newFakeStore(), &fakeMailer{})

	_, err := svc.IssuePayslip(context.Background(), "missing")
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestHistoryUnknownStaff(t *testing.T) {
	directory := &fakeDirectory{members: map[string]staff.Staff{}}
	svc := newTestService(t, directory, newFakeSource(), newFakeStore(), &fakeMailer{})

	_, err := svc.History(context.Background(), "ghost")
	require.ErrorIs(t, err, staff.ErrNotFound)
}
