package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UpsertInterview schedules or reschedules the interview for (student, drive).
// A second call for the same pair overwrites time, venue, and notes in place.
func (db *DB) UpsertInterview(ctx context.Context, iv *Interview) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO interviews (student_id, drive_id, time_slot, venue, notes)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (student_id, drive_id) DO UPDATE SET
		     time_slot = $3, venue = $4, notes = $5
		 RETURNING id`,
		iv.StudentID, iv.DriveID, iv.TimeSlot, iv.Venue, iv.Notes,
	).Scan(&iv.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert interview: %w", err)
	}
	return nil
}

// FindInterviewConflict looks for another drive's interview holding the same
// student at the same instant. The (student, drive) pair being rescheduled is
// excluded so a same-pair overwrite is never its own conflict.
func (db *DB) FindInterviewConflict(ctx context.Context, studentID, driveID uuid.UUID, at time.Time) (*Interview, error) {
	var iv Interview
	err := db.pool.QueryRow(ctx,
		`SELECT id, student_id, drive_id, time_slot, venue, notes
		 FROM interviews
		 WHERE student_id = $1 AND time_slot = $2 AND drive_id <> $3
		 LIMIT 1`,
		studentID, at, driveID,
	).Scan(&iv.ID, &iv.StudentID, &iv.DriveID, &iv.TimeSlot, &iv.Venue, &iv.Notes)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check interview conflict: %w", err)
	}
	return &iv, nil
}

// GetInterview retrieves an interview by ID
func (db *DB) GetInterview(ctx context.Context, id uuid.UUID) (*Interview, error) {
	var iv Interview
	err := db.pool.QueryRow(ctx,
		`SELECT id, student_id, drive_id, time_slot, venue, notes
		 FROM interviews WHERE id = $1`,
		id,
	).Scan(&iv.ID, &iv.StudentID, &iv.DriveID, &iv.TimeSlot, &iv.Venue, &iv.Notes)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return &iv, nil
}

// DeleteInterview removes a scheduled interview. Application status is left
// untouched.
func (db *DB) DeleteInterview(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM interviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete interview: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("interview not found: %s", id)
	}
	return nil
}

// InterviewDetail is an interview joined with student and drive context for
// the admin schedule. Missing references degrade to "?".
type InterviewDetail struct {
	Interview
	StudentName string `json:"student_name"`
	CompanyName string `json:"company_name"`
	JobRole     string `json:"job_role"`
}

// ListInterviewsDetailed retrieves the full schedule ordered by time, ties
// broken by student so the ordering is stable
func (db *DB) ListInterviewsDetailed(ctx context.Context) ([]InterviewDetail, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT i.id, i.student_id, i.drive_id, i.time_slot, i.venue, i.notes,
		        COALESCE(u.name, '?'), COALESCE(d.company_name, '?'), COALESCE(d.job_role, '?')
		 FROM interviews i
		 LEFT JOIN students s ON s.id = i.student_id
		 LEFT JOIN users u ON u.id = s.user_id
		 LEFT JOIN drives d ON d.id = i.drive_id
		 ORDER BY i.time_slot ASC, i.student_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer rows.Close()

	var details []InterviewDetail
	for rows.Next() {
		var ivd InterviewDetail
		if err := rows.Scan(&ivd.ID, &ivd.StudentID, &ivd.DriveID, &ivd.TimeSlot, &ivd.Venue, &ivd.Notes,
			&ivd.StudentName, &ivd.CompanyName, &ivd.JobRole); err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		details = append(details, ivd)
	}
	return details, nil
}
