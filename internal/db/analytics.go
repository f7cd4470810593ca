package db

import (
	"context"
	"fmt"
)

// StatusCount is one slice of the application status breakdown.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// BranchCount is the number of placed students from one branch.
type BranchCount struct {
	Branch string `json:"branch"`
	Count  int    `json:"count"`
}

// DriveStat summarizes applicant and selection counts for one drive.
type DriveStat struct {
	CompanyName string `json:"company_name"`
	JobRole     string `json:"job_role"`
	Applicants  int    `json:"applicants"`
	Selected    int    `json:"selected"`
}

// SkillCount is the number of role profiles demanding one skill.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// CountDrives counts all placement drives
func (db *DB) CountDrives(ctx context.Context) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM drives`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count drives: %w", err)
	}
	return count, nil
}

// CountApplications counts applications, optionally filtered by status
func (db *DB) CountApplications(ctx context.Context, status string) (int, error) {
	query := `SELECT COUNT(*) FROM applications`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}

	var count int
	if err := db.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}

// StatusBreakdown groups applications by status
func (db *DB) StatusBreakdown(ctx context.Context) ([]StatusCount, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT status, COUNT(*) AS count FROM applications GROUP BY status ORDER BY count DESC, status ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get status breakdown: %w", err)
	}
	defer rows.Close()

	var counts []StatusCount
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts = append(counts, sc)
	}
	return counts, nil
}

// BranchPlacedCounts groups selected applications by the student's branch.
// Applications whose student row is gone or has no branch are left out.
func (db *DB) BranchPlacedCounts(ctx context.Context) ([]BranchCount, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT s.branch, COUNT(*) AS count
		 FROM applications a
		 JOIN students s ON s.id = a.student_id
		 WHERE a.status = 'selected' AND s.branch <> ''
		 GROUP BY s.branch
		 ORDER BY count DESC, s.branch ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get branch placed counts: %w", err)
	}
	defer rows.Close()

	var counts []BranchCount
	for rows.Next() {
		var bc BranchCount
		if err := rows.Scan(&bc.Branch, &bc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan branch count: %w", err)
		}
		counts = append(counts, bc)
	}
	return counts, nil
}

// DriveStats summarizes the most recent drives with applicant and selected
// counts
func (db *DB) DriveStats(ctx context.Context, limit int) ([]DriveStat, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.pool.Query(ctx,
		`SELECT d.company_name, d.job_role,
		        COUNT(a.id),
		        COUNT(a.id) FILTER (WHERE a.status = 'selected')
		 FROM drives d
		 LEFT JOIN applications a ON a.drive_id = d.id
		 GROUP BY d.id, d.company_name, d.job_role, d.created_at
		 ORDER BY d.created_at DESC
		 LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get drive stats: %w", err)
	}
	defer rows.Close()

	var stats []DriveStat
	for rows.Next() {
		var ds DriveStat
		if err := rows.Scan(&ds.CompanyName, &ds.JobRole, &ds.Applicants, &ds.Selected); err != nil {
			return nil, fmt.Errorf("failed to scan drive stat: %w", err)
		}
		stats = append(stats, ds)
	}
	return stats, nil
}

// TopSkills counts how many role profiles demand each skill and returns the
// most demanded ones
func (db *DB) TopSkills(ctx context.Context, limit int) ([]SkillCount, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.pool.Query(ctx,
		`SELECT skill, COUNT(*) AS count
		 FROM market_skills, unnest(required_skills) AS skill
		 GROUP BY skill
		 ORDER BY count DESC, skill ASC
		 LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top skills: %w", err)
	}
	defer rows.Close()

	var skills []SkillCount
	for rows.Next() {
		var sc SkillCount
		if err := rows.Scan(&sc.Skill, &sc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan skill count: %w", err)
		}
		skills = append(skills, sc)
	}
	return skills, nil
}
