package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateReferral inserts a job referral posted by an alumni
func (db *DB) CreateReferral(ctx context.Context, r *Referral) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO referrals (alumni_id, company, job_role, description, apply_link, deadline)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, posted_at`,
		r.AlumniID, r.Company, r.JobRole, r.Description, r.ApplyLink, r.Deadline,
	).Scan(&r.ID, &r.PostedAt)
	if err != nil {
		return fmt.Errorf("failed to create referral: %w", err)
	}
	return nil
}

// DeleteReferral removes a referral, but only when the given alumni posted it
func (db *DB) DeleteReferral(ctx context.Context, id, alumniID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM referrals WHERE id = $1 AND alumni_id = $2`,
		id, alumniID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete referral: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// ReferralDetail is a referral joined with the poster's name.
type ReferralDetail struct {
	Referral
	PostedBy string `json:"posted_by"`
}

// ListReferrals retrieves referrals with poster names, newest first
func (db *DB) ListReferrals(ctx context.Context, limit int) ([]ReferralDetail, error) {
	query := `SELECT r.id, r.alumni_id, r.company, r.job_role, r.description, r.apply_link,
		        r.deadline, r.posted_at, COALESCE(u.name, '?')
		 FROM referrals r
		 LEFT JOIN alumni al ON al.id = r.alumni_id
		 LEFT JOIN users u ON u.id = al.user_id
		 ORDER BY r.posted_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list referrals: %w", err)
	}
	defer rows.Close()

	var referrals []ReferralDetail
	for rows.Next() {
		var rd ReferralDetail
		if err := rows.Scan(&rd.ID, &rd.AlumniID, &rd.Company, &rd.JobRole, &rd.Description, &rd.ApplyLink,
			&rd.Deadline, &rd.PostedAt, &rd.PostedBy); err != nil {
			return nil, fmt.Errorf("failed to scan referral: %w", err)
		}
		referrals = append(referrals, rd)
	}
	return referrals, nil
}

// CountReferralsByAlumni counts referrals posted by a mentor
func (db *DB) CountReferralsByAlumni(ctx context.Context, alumniID uuid.UUID) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM referrals WHERE alumni_id = $1`,
		alumniID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count referrals: %w", err)
	}
	return count, nil
}
