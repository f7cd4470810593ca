package db

import (
	"context"
	"fmt"
)

// migrations is the ordered list of idempotent DDL statements applied on
// startup. References between tables are deliberately unconstrained: rows can
// outlive what they point at, and read paths degrade to placeholders instead
// of failing.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL UNIQUE,
		roll_number TEXT NOT NULL DEFAULT '',
		branch TEXT NOT NULL DEFAULT '',
		cgpa NUMERIC(4,2) NOT NULL DEFAULT 0,
		backlogs INT NOT NULL DEFAULT 0,
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		skills TEXT NOT NULL DEFAULT '',
		certifications TEXT NOT NULL DEFAULT '',
		internships TEXT NOT NULL DEFAULT '',
		projects TEXT NOT NULL DEFAULT '',
		linkedin TEXT NOT NULL DEFAULT '',
		github TEXT NOT NULL DEFAULT '',
		profile_complete BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS alumni (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL UNIQUE,
		company TEXT NOT NULL DEFAULT '',
		designation TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS drives (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		company_name TEXT NOT NULL,
		job_role TEXT NOT NULL,
		package_lpa NUMERIC(6,2),
		min_cgpa NUMERIC(4,2) NOT NULL DEFAULT 0,
		allowed_branches TEXT[] NOT NULL DEFAULT '{}',
		max_backlogs INT NOT NULL DEFAULT 0,
		drive_date TIMESTAMPTZ,
		venue TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'upcoming',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		student_id UUID NOT NULL,
		drive_id UUID NOT NULL,
		status TEXT NOT NULL DEFAULT 'applied',
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (student_id, drive_id)
	)`,
	`CREATE TABLE IF NOT EXISTS interviews (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		student_id UUID NOT NULL,
		drive_id UUID NOT NULL,
		time_slot TIMESTAMPTZ NOT NULL,
		venue TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		UNIQUE (student_id, drive_id)
	)`,
	`CREATE TABLE IF NOT EXISTS mentorship_slots (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		alumni_id UUID NOT NULL,
		available_time TIMESTAMPTZ NOT NULL,
		meeting_link TEXT NOT NULL DEFAULT '',
		booked_by UUID
	)`,
	`CREATE TABLE IF NOT EXISTS referrals (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		alumni_id UUID NOT NULL,
		company TEXT NOT NULL,
		job_role TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		apply_link TEXT NOT NULL DEFAULT '',
		deadline TIMESTAMPTZ,
		posted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS faqs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		keywords TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS market_skills (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		job_role TEXT NOT NULL,
		required_skills TEXT[] NOT NULL DEFAULT '{}',
		insight TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_drive ON applications (drive_id)`,
	`CREATE INDEX IF NOT EXISTS idx_interviews_student_time ON interviews (student_id, time_slot)`,
	`CREATE INDEX IF NOT EXISTS idx_mentorship_slots_alumni ON mentorship_slots (alumni_id)`,
	`CREATE INDEX IF NOT EXISTS idx_referrals_posted ON referrals (posted_at)`,
}

// Migrate creates the schema if it does not exist yet
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
