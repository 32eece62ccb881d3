package payroll

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// UpsertRecord writes the latest calculation for (staff, period) in one
// statement. The UNIQUE (staff_id, period) constraint makes concurrent
// runs converge on a single row, last commit wins.
func (s *Store) UpsertRecord(ctx context.Context, staffID, period string, gross, deductions, net float64) (Record, error) {
	var record Record
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payroll_records (staff_id, period, gross_pay, deductions, net_pay)
    VALUES ($1,$2,$3,$4,$5)
    ON CONFLICT (staff_id, period)
    DO UPDATE SET gross_pay = EXCLUDED.gross_pay, deductions = EXCLUDED.deductions, net_pay = EXCLUDED.net_pay, updated_at = now()
    RETURNING id, staff_id, period, gross_pay, deductions, net_pay, created_at, updated_at
  `, staffID, period, gross, deductions, net).Scan(&record.ID, &record.StaffID, &record.Period, &record.GrossPay, &record.Deductions, &record.NetPay, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return Record{}, err
	}
	return record, nil
}

func (s *Store) GetRecord(ctx context.Context, id string) (Record, error) {
	var record Record
	err := s.DB.QueryRow(ctx, `
    SELECT id, staff_id, period, gross_pay, deductions, net_pay, created_at, updated_at
    FROM payroll_records
    WHERE id = $1
  `, id).Scan(&record.ID, &record.StaffID, &record.Period, &record.GrossPay, &record.Deductions, &record.NetPay, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrRecordNotFound
		}
		return Record{}, err
	}
	return record, nil
}

func (s *Store) ListRecords(ctx context.Context, staffID string) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, staff_id, period, gross_pay, deductions, net_pay, created_at, updated_at
    FROM payroll_records
    WHERE staff_id = $1
    ORDER BY period DESC
  `, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		if err := rows.Scan(&record.ID, &record.StaffID, &record.Period, &record.GrossPay, &record.Deductions, &record.NetPay, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *Store) CreatePayslip(ctx context.Context, payrollID, filePath string) (Payslip, error) {
	var slip Payslip
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payslips (payroll_id, file_path)
    VALUES ($1,$2)
    RETURNING id, payroll_id, file_path, issued_at
  `, payrollID, filePath).Scan(&slip.ID, &slip.PayrollID, &slip.FilePath, &slip.IssuedAt)
	if err != nil {
		return Payslip{}, err
	}
	return slip, nil
}

func (s *Store) ListPayslips(ctx context.Context, staffID string, limit, offset int) ([]Payslip, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT p.id, p.payroll_id, p.file_path, p.issued_at
    FROM payslips p
    JOIN payroll_records r ON p.payroll_id = r.id
    WHERE r.staff_id = $1
    ORDER BY p.issued_at DESC
    LIMIT $2 OFFSET $3
  `, staffID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slips []Payslip
	for rows.Next() {
		var slip Payslip
		if err := rows.Scan(&slip.ID, &slip.PayrollID, &slip.FilePath, &slip.IssuedAt); err != nil {
			return nil, err
		}
		slips = append(slips, slip)
	}
	return slips, rows.Err()
}
