package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const driveColumns = `id, company_name, job_role, package_lpa, min_cgpa, allowed_branches,
	max_backlogs, drive_date, venue, description, status, created_at`

func scanDrive(row pgx.Row) (*Drive, error) {
	var d Drive
	err := row.Scan(&d.ID, &d.CompanyName, &d.JobRole, &d.PackageLPA, &d.MinCGPA, &d.AllowedBranches,
		&d.MaxBacklogs, &d.DriveDate, &d.Venue, &d.Description, &d.Status, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateDrive inserts a new placement drive and fills in its ID and timestamps
func (db *DB) CreateDrive(ctx context.Context, d *Drive) error {
	if d.Status == "" {
		d.Status = "upcoming"
	}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO drives (company_name, job_role, package_lpa, min_cgpa, allowed_branches,
		                     max_backlogs, drive_date, venue, description, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		d.CompanyName, d.JobRole, d.PackageLPA, d.MinCGPA, d.AllowedBranches,
		d.MaxBacklogs, d.DriveDate, d.Venue, d.Description, d.Status,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create drive: %w", err)
	}
	return nil
}

// GetDrive retrieves a drive by ID
func (db *DB) GetDrive(ctx context.Context, id uuid.UUID) (*Drive, error) {
	d, err := scanDrive(db.pool.QueryRow(ctx,
		`SELECT `+driveColumns+` FROM drives WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get drive: %w", err)
	}
	return d, nil
}

// ListDrives retrieves all drives, newest first
func (db *DB) ListDrives(ctx context.Context) ([]Drive, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+driveColumns+` FROM drives ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list drives: %w", err)
	}
	defer rows.Close()

	var drives []Drive
	for rows.Next() {
		d, err := scanDrive(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan drive: %w", err)
		}
		drives = append(drives, *d)
	}
	return drives, nil
}

// ListDrivesExcludingStatus retrieves drives whose status differs from the
// given one. Dashboards use it to hide completed drives.
func (db *DB) ListDrivesExcludingStatus(ctx context.Context, status string) ([]Drive, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+driveColumns+` FROM drives WHERE status <> $1 ORDER BY drive_date NULLS LAST, created_at DESC`,
		status)
	if err != nil {
		return nil, fmt.Errorf("failed to list drives: %w", err)
	}
	defer rows.Close()

	var drives []Drive
	for rows.Next() {
		d, err := scanDrive(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan drive: %w", err)
		}
		drives = append(drives, *d)
	}
	return drives, nil
}

// UpdateDriveStatus changes a drive's lifecycle status
func (db *DB) UpdateDriveStatus(ctx context.Context, id uuid.UUID, status string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE drives SET status = $1 WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update drive status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("drive not found: %s", id)
	}
	return nil
}

// DeleteDrive removes a drive. Applications and interviews that reference it
// are left in place and render with placeholders.
func (db *DB) DeleteDrive(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM drives WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete drive: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("drive not found: %s", id)
	}
	return nil
}
