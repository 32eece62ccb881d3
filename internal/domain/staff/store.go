package staff

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("staff member not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) GetByID(ctx context.Context, id string) (Staff, error) {
	var member Staff
	err := s.DB.QueryRow(ctx, `
    SELECT id, first_name, last_name, email, position, hourly_rate, status, created_at, updated_at
    FROM staff
    WHERE id = $1
  `, id).Scan(&member.ID, &member.FirstName, &member.LastName, &member.Email, &member.Position, &member.HourlyRate, &member.Status, &member.CreatedAt, &member.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Staff{}, ErrNotFound
		}
		return Staff{}, err
	}
	return member, nil
}

func (s *Store) List(ctx context.Context) ([]Staff, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, first_name, last_name, email, position, hourly_rate, status, created_at, updated_at
    FROM staff
    ORDER BY last_name, first_name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []Staff
	for rows.Next() {
		var member Staff
		if err := rows.Scan(&member.ID, &member.FirstName, &member.LastName, &member.Email, &member.Position, &member.HourlyRate, &member.Status, &member.CreatedAt, &member.UpdatedAt); err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

func (s *Store) Create(ctx context.Context, member Staff) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO staff (first_name, last_name, email, position, hourly_rate, status)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, member.FirstName, member.LastName, member.Email, member.Position, member.HourlyRate, member.Status).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}
