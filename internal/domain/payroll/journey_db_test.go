package payroll_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"backoffice/internal/config"
	"backoffice/internal/db"
	"backoffice/internal/domain/attendance"
	"backoffice/internal/domain/payroll"
	"backoffice/internal/domain/staff"
	"backoffice/migrations"
)

// Exercises the real Postgres stores end to end: migrations, shift
// recording, the payroll upsert and the payslip join. Needs a
// disposable database.
func TestPayrollJourneyAgainstDatabase(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, config.Config{DatabaseURL: dbURL})
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, db.Migrate(ctx, pool, migrations.FS))

	staffStore := staff.NewStore(pool)
	attendanceStore := attendance.NewStore(pool)
	payrollStore := payroll.NewStore(pool)

	staffID, err := staffStore.Create(ctx, staff.Staff{
		FirstName: "Journey",
		LastName:  "Cook",
		Email:     fmt.Sprintf("journey-%d@example.com", time.Now().UnixNano()),
		Position:  "line cook",
		Status:    staff.StatusActive,
	})
	require.NoError(t, err)

	// Seventeen 10h shifts in March 2024: 160h regular + 10h overtime.
	for day := 0; day < 17; day++ {
		in := time.Date(2024, 3, 1+day, 9, 0, 0, 0, time.UTC)
		_, err := attendanceStore.CheckIn(ctx, staffID, "manual", in)
		require.NoError(t, err)
		_, err = attendanceStore.CheckOut(ctx, staffID, in.Add(10*time.Hour))
		require.NoError(t, err)
	}

	// A second check-in with a shift still open must be refused.
	open, err := attendanceStore.CheckIn(ctx, staffID, "manual", time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = attendanceStore.CheckIn(ctx, staffID, "manual", time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, attendance.ErrShiftAlreadyOpen)
	_, err = attendanceStore.CheckOut(ctx, staffID, time.Date(2024, 4, 1, 17, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, open.ID)

	service := payroll.NewService(staffStore, attendanceStore, payrollStore, payroll.DefaultRates(), nil, t.TempDir())

	first, err := service.Run(ctx, staffID, "2024-03")
	require.NoError(t, err)
	require.InDelta(t, 2625.0, first.GrossPay, 1e-9)
	require.InDelta(t, 525.0, first.Deductions, 1e-9)
	require.InDelta(t, 2100.0, first.NetPay, 1e-9)

	// Rerun converges on the same row and appends another payslip.
	second, err := service.Run(ctx, staffID, "2024-03")
	require.NoError(t, err)
	require.InDelta(t, first.NetPay, second.NetPay, 1e-9)

	records, err := payrollStore.ListRecords(ctx, staffID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "2024-03", records[0].Period)

	fetched, err := payrollStore.GetRecord(ctx, records[0].ID)
	require.NoError(t, err)
	require.InDelta(t, 2100.0, fetched.NetPay, 1e-9)

	slips, err := payrollStore.ListPayslips(ctx, staffID, 10, 0)
	require.NoError(t, err)
	require.Len(t, slips, 2)
	for _, slip := range slips {
		require.Equal(t, records[0].ID, slip.PayrollID)
	}

	_, err = payrollStore.GetRecord(ctx, uuid.NewString())
	require.ErrorIs(t, err, payroll.ErrRecordNotFound)

	history, err := service.History(ctx, staffID)
	require.NoError(t, err)
	require.Len(t, history, 1)
}
