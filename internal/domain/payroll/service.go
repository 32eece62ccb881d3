package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"backoffice/internal/domain/staff"
)

type Service struct {
	staff      StaffDirectory
	aggregator *Aggregator
	store      StoreAPI
	rates      Rates
	mailer     Mailer
	payslipDir string
}

func NewService(directory StaffDirectory, source AttendanceSource, store StoreAPI, rates Rates, mailer Mailer, payslipDir string) *Service {
	return &Service{
		staff:      directory,
		aggregator: NewAggregator(source),
		store:      store,
		rates:      rates,
		mailer:     mailer,
		payslipDir: payslipDir,
	}
}

// Run calculates payroll for (staffID, period), upserts the durable record
// and issues a new payslip. Reruns overwrite the record in place but always
// append another payslip.
func (s *Service) Run(ctx context.Context, staffID, period string) (RunResult, error) {
	member, err := s.staff.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			return RunResult{}, fmt.Errorf("staff %s: %w", staffID, staff.ErrNotFound)
		}
		return RunResult{}, err
	}

	breakdown, err := s.calculate(ctx, member, period)
	if err != nil {
		return RunResult{}, err
	}

	record, err := s.store.UpsertRecord(ctx, staffID, period, breakdown.GrossEarnings, breakdown.TotalDeductions, breakdown.NetPay)
	if err != nil {
		return RunResult{}, err
	}

	if _, err := s.IssuePayslip(ctx, record.ID); err != nil {
		return RunResult{}, err
	}

	return RunResult{
		StaffID:    staffID,
		Period:     period,
		GrossPay:   record.GrossPay,
		Deductions: record.Deductions,
		NetPay:     record.NetPay,
		Breakdown:  breakdown,
		CreatedAt:  record.CreatedAt,
	}, nil
}

func (s *Service) calculate(ctx context.Context, member staff.Staff, period string) (Breakdown, error) {
	regular, overtime, err := s.aggregator.HoursForPeriod(ctx, member.ID, period)
	if err != nil {
		return Breakdown{}, err
	}

	rates := s.rates
	if member.HourlyRate != nil && *member.HourlyRate > 0 {
		rates.HourlyRate = *member.HourlyRate
	}
	return Compute(regular, overtime, rates), nil
}

// IssuePayslip appends a payslip for an existing payroll record. The
// record lookup guards against the record vanishing between commits. The
// PDF document and the notification mail are best effort; the row is the
// record of issuance.
func (s *Service) IssuePayslip(ctx context.Context, payrollID string) (Payslip, error) {
	record, err := s.store.GetRecord(ctx, payrollID)
	if err != nil {
		return Payslip{}, err
	}

	filePath := filepath.Join(s.payslipDir, record.ID+".pdf")
	slip, err := s.store.CreatePayslip(ctx, record.ID, filePath)
	if err != nil {
		return Payslip{}, err
	}

	member, err := s.staff.GetByID(ctx, record.StaffID)
	if err != nil {
		slog.Warn("payslip staff lookup failed", "payrollId", record.ID, "err", err)
		return slip, nil
	}

	if err := renderPayslipPDF(member, record, slip); err != nil {
		slog.Warn("payslip pdf render failed", "payslipId", slip.ID, "err", err)
	}

	if s.mailer != nil {
		subject := fmt.Sprintf("Payslip for %s", record.Period)
		body := fmt.Sprintf("Hi %s,\n\nYour payslip for %s has been issued.\nNet pay: %.2f\n", member.FirstName, record.Period, record.NetPay)
		if err := s.mailer.Send(ctx, member.Email, subject, body); err != nil {
			slog.Warn("payslip mail failed", "payslipId", slip.ID, "err", err)
		}
	}

	return slip, nil
}

// History lists every persisted payroll record for a staff member, newest
// period first.
func (s *Service) History(ctx context.Context, staffID string) ([]Record, error) {
	if _, err := s.staff.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			return nil, fmt.Errorf("staff %s: %w", staffID, staff.ErrNotFound)
		}
		return nil, err
	}
	return s.store.ListRecords(ctx, staffID)
}

func (s *Service) Payslips(ctx context.Context, staffID string, limit, offset int) ([]Payslip, error) {
	return s.store.ListPayslips(ctx, staffID, limit, offset)
}
