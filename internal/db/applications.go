package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetApplicationByPair retrieves the application a student made to a drive
func (db *DB) GetApplicationByPair(ctx context.Context, studentID, driveID uuid.UUID) (*Application, error) {
	var a Application
	err := db.pool.QueryRow(ctx,
		`SELECT id, student_id, drive_id, status, applied_at
		 FROM applications WHERE student_id = $1 AND drive_id = $2`,
		studentID, driveID,
	).Scan(&a.ID, &a.StudentID, &a.DriveID, &a.Status, &a.AppliedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &a, nil
}

// GetApplication retrieves an application by ID
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*Application, error) {
	var a Application
	err := db.pool.QueryRow(ctx,
		`SELECT id, student_id, drive_id, status, applied_at
		 FROM applications WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.StudentID, &a.DriveID, &a.Status, &a.AppliedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &a, nil
}

// FindOrCreateApplication inserts an application for (student, drive) or
// returns the existing one unchanged. The unique constraint keeps concurrent
// applies down to a single row.
func (db *DB) FindOrCreateApplication(ctx context.Context, studentID, driveID uuid.UUID, status string) (*Application, error) {
	var a Application
	err := db.pool.QueryRow(ctx,
		`INSERT INTO applications (student_id, drive_id, status)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (student_id, drive_id) DO UPDATE SET status = applications.status
		 RETURNING id, student_id, drive_id, status, applied_at`,
		studentID, driveID, status,
	).Scan(&a.ID, &a.StudentID, &a.DriveID, &a.Status, &a.AppliedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &a, nil
}

// UpdateApplicationStatus sets the status of an application
func (db *DB) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE applications SET status = $1 WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("application not found: %s", id)
	}
	return nil
}

// ListApplicationsByStudent retrieves a student's applications, newest first
func (db *DB) ListApplicationsByStudent(ctx context.Context, studentID uuid.UUID, limit int) ([]Application, error) {
	query := `SELECT id, student_id, drive_id, status, applied_at
		 FROM applications WHERE student_id = $1 ORDER BY applied_at DESC`
	args := []any{studentID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.ID, &a.StudentID, &a.DriveID, &a.Status, &a.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, nil
}

// ApplicationDetail is an application joined with student and drive context
// for admin listings. Missing references degrade to "?" instead of failing.
type ApplicationDetail struct {
	Application
	StudentName string  `json:"student_name"`
	Branch      string  `json:"branch"`
	CGPA        float64 `json:"cgpa"`
	CompanyName string  `json:"company_name"`
	JobRole     string  `json:"job_role"`
}

// ListApplicationsDetailed retrieves all applications with student and drive
// context, newest first
func (db *DB) ListApplicationsDetailed(ctx context.Context) ([]ApplicationDetail, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT a.id, a.student_id, a.drive_id, a.status, a.applied_at,
		        COALESCE(u.name, '?'), COALESCE(s.branch, ''), COALESCE(s.cgpa, 0),
		        COALESCE(d.company_name, '?'), COALESCE(d.job_role, '?')
		 FROM applications a
		 LEFT JOIN students s ON s.id = a.student_id
		 LEFT JOIN users u ON u.id = s.user_id
		 LEFT JOIN drives d ON d.id = a.drive_id
		 ORDER BY a.applied_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var details []ApplicationDetail
	for rows.Next() {
		var ad ApplicationDetail
		if err := rows.Scan(&ad.ID, &ad.StudentID, &ad.DriveID, &ad.Status, &ad.AppliedAt,
			&ad.StudentName, &ad.Branch, &ad.CGPA, &ad.CompanyName, &ad.JobRole); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		details = append(details, ad)
	}
	return details, nil
}

// StudentApplication is an application joined with its drive and any
// scheduled interview, for the student's own listing.
type StudentApplication struct {
	Application
	CompanyName    string     `json:"company_name"`
	JobRole        string     `json:"job_role"`
	PackageLPA     *float64   `json:"package_lpa,omitempty"`
	DriveDate      *time.Time `json:"drive_date,omitempty"`
	DriveVenue     string     `json:"drive_venue"`
	InterviewTime  *time.Time `json:"interview_time,omitempty"`
	InterviewVenue string     `json:"interview_venue"`
}

// ListStudentApplications retrieves a student's applications with drive and
// interview context, newest first
func (db *DB) ListStudentApplications(ctx context.Context, studentID uuid.UUID) ([]StudentApplication, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT a.id, a.student_id, a.drive_id, a.status, a.applied_at,
		        COALESCE(d.company_name, '?'), COALESCE(d.job_role, '?'),
		        d.package_lpa, d.drive_date, COALESCE(d.venue, ''),
		        i.time_slot, COALESCE(i.venue, '')
		 FROM applications a
		 LEFT JOIN drives d ON d.id = a.drive_id
		 LEFT JOIN interviews i ON i.student_id = a.student_id AND i.drive_id = a.drive_id
		 WHERE a.student_id = $1
		 ORDER BY a.applied_at DESC`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list student applications: %w", err)
	}
	defer rows.Close()

	var apps []StudentApplication
	for rows.Next() {
		var sa StudentApplication
		if err := rows.Scan(&sa.ID, &sa.StudentID, &sa.DriveID, &sa.Status, &sa.AppliedAt,
			&sa.CompanyName, &sa.JobRole, &sa.PackageLPA, &sa.DriveDate, &sa.DriveVenue,
			&sa.InterviewTime, &sa.InterviewVenue); err != nil {
			return nil, fmt.Errorf("failed to scan student application: %w", err)
		}
		apps = append(apps, sa)
	}
	return apps, nil
}
