package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateAlumniShell inserts an empty alumni profile for a newly registered user
func (db *DB) CreateAlumniShell(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO alumni (user_id)
		 VALUES ($1)
		 ON CONFLICT (user_id) DO UPDATE SET user_id = $1
		 RETURNING id`,
		userID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create alumni profile: %w", err)
	}
	return id, nil
}

// GetAlumniByUserID retrieves the alumni profile belonging to a user account
func (db *DB) GetAlumniByUserID(ctx context.Context, userID uuid.UUID) (*Alumni, error) {
	var a Alumni
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, company, designation FROM alumni WHERE user_id = $1`,
		userID,
	).Scan(&a.ID, &a.UserID, &a.Company, &a.Designation)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get alumni by user: %w", err)
	}
	return &a, nil
}

// UpdateAlumniProfile sets the company and designation shown alongside
// referrals and mentorship slots
func (db *DB) UpdateAlumniProfile(ctx context.Context, id uuid.UUID, company, designation string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE alumni SET company = $1, designation = $2 WHERE id = $3`,
		company, designation, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update alumni profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("alumni not found: %s", id)
	}
	return nil
}
