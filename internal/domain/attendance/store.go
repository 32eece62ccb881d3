package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrShiftAlreadyOpen = errors.New("staff member already has an open shift")
	ErrNoOpenShift      = errors.New("staff member has no open shift")
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// CheckIn opens a shift. The partial unique index on open shifts makes
// the insert fail when one is already open, so concurrent check-ins
// cannot both succeed.
func (s *Store) CheckIn(ctx context.Context, staffID, method string, at time.Time) (Record, error) {
	var record Record
	err := s.DB.QueryRow(ctx, `
    INSERT INTO attendance_records (staff_id, check_in, method)
    VALUES ($1,$2,$3)
    RETURNING id, staff_id, check_in, check_out, method, status, created_at
  `, staffID, at, method).Scan(&record.ID, &record.StaffID, &record.CheckIn, &record.CheckOut, &record.Method, &record.Status, &record.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Record{}, ErrShiftAlreadyOpen
		}
		return Record{}, err
	}
	return record, nil
}

func (s *Store) CheckOut(ctx context.Context, staffID string, at time.Time) (Record, error) {
	var record Record
	err := s.DB.QueryRow(ctx, `
    UPDATE attendance_records SET check_out = $2
    WHERE id = (
      SELECT id FROM attendance_records
      WHERE staff_id = $1 AND check_out IS NULL
      ORDER BY check_in DESC
      LIMIT 1
    )
    RETURNING id, staff_id, check_in, check_out, method, status, created_at
  `, staffID, at).Scan(&record.ID, &record.StaffID, &record.CheckIn, &record.CheckOut, &record.Method, &record.Status, &record.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNoOpenShift
		}
		return Record{}, err
	}
	return record, nil
}

// ListClosedInRange returns closed shifts whose check-in falls in
// [start, end). Open shifts are excluded entirely.
func (s *Store) ListClosedInRange(ctx context.Context, staffID string, start, end time.Time) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, staff_id, check_in, check_out, method, status, created_at
    FROM attendance_records
    WHERE staff_id = $1 AND check_in >= $2 AND check_in < $3 AND check_out IS NOT NULL
    ORDER BY check_in
  `, staffID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (s *Store) ListForStaff(ctx context.Context, staffID string, limit, offset int) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, staff_id, check_in, check_out, method, status, created_at
    FROM attendance_records
    WHERE staff_id = $1
    ORDER BY check_in DESC
    LIMIT $2 OFFSET $3
  `, staffID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows pgx.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var record Record
		if err := rows.Scan(&record.ID, &record.StaffID, &record.CheckIn, &record.CheckOut, &record.Method, &record.Status, &record.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
