package payroll

import (
	"context"

	"backoffice/internal/domain/staff"
)

type StoreAPI interface {
	UpsertRecord(ctx context.Context, staffID, period string, gross, deductions, net float64) (Record, error)
	GetRecord(ctx context.Context, id string) (Record, error)
	ListRecords(ctx context.Context, staffID string) ([]Record, error)
	CreatePayslip(ctx context.Context, payrollID, filePath string) (Payslip, error)
	ListPayslips(ctx context.Context, staffID string, limit, offset int) ([]Payslip, error)
}

type StaffDirectory interface {
	GetByID(ctx context.Context, id string) (staff.Staff, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
