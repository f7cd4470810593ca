package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateStudentShell inserts an empty student profile for a newly registered
// user. The profile stays incomplete until the student fills it in.
func (db *DB) CreateStudentShell(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO students (user_id)
		 VALUES ($1)
		 ON CONFLICT (user_id) DO UPDATE SET user_id = $1
		 RETURNING id`,
		userID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create student profile: %w", err)
	}
	return id, nil
}

// UpsertStudentProfile writes the full profile for a user, creating the row
// if registration never did
func (db *DB) UpsertStudentProfile(ctx context.Context, s *Student) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO students (user_id, roll_number, branch, cgpa, backlogs, phone, address,
		                       skills, certifications, internships, projects, linkedin, github, profile_complete)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 ON CONFLICT (user_id) DO UPDATE SET
		     roll_number = $2, branch = $3, cgpa = $4, backlogs = $5, phone = $6, address = $7,
		     skills = $8, certifications = $9, internships = $10, projects = $11,
		     linkedin = $12, github = $13, profile_complete = $14
		 RETURNING id`,
		s.UserID, s.RollNumber, s.Branch, s.CGPA, s.Backlogs, s.Phone, s.Address,
		s.Skills, s.Certifications, s.Internships, s.Projects, s.LinkedIn, s.GitHub, s.ProfileComplete,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert student profile: %w", err)
	}
	return nil
}

const studentColumns = `id, user_id, roll_number, branch, cgpa, backlogs, phone, address,
	skills, certifications, internships, projects, linkedin, github, profile_complete`

func scanStudent(row pgx.Row) (*Student, error) {
	var s Student
	err := row.Scan(&s.ID, &s.UserID, &s.RollNumber, &s.Branch, &s.CGPA, &s.Backlogs, &s.Phone, &s.Address,
		&s.Skills, &s.Certifications, &s.Internships, &s.Projects, &s.LinkedIn, &s.GitHub, &s.ProfileComplete)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetStudent retrieves a student profile by ID
func (db *DB) GetStudent(ctx context.Context, id uuid.UUID) (*Student, error) {
	s, err := scanStudent(db.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return s, nil
}

// GetStudentByUserID retrieves the student profile belonging to a user account
func (db *DB) GetStudentByUserID(ctx context.Context, userID uuid.UUID) (*Student, error) {
	s, err := scanStudent(db.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE user_id = $1`, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student by user: %w", err)
	}
	return s, nil
}

// StudentContact is a student profile joined with the account name and email
// used to reach them. A missing account degrades to "?" and an empty email.
type StudentContact struct {
	Student
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ListStudentContacts retrieves all student profiles with account names and
// emails, for eligibility listings and announcement fan-outs
func (db *DB) ListStudentContacts(ctx context.Context) ([]StudentContact, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT s.id, s.user_id, s.roll_number, s.branch, s.cgpa, s.backlogs, s.phone, s.address,
		        s.skills, s.certifications, s.internships, s.projects, s.linkedin, s.github, s.profile_complete,
		        COALESCE(u.name, '?'), COALESCE(u.email, '')
		 FROM students s
		 LEFT JOIN users u ON u.id = s.user_id
		 ORDER BY s.roll_number, s.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list student contacts: %w", err)
	}
	defer rows.Close()

	var contacts []StudentContact
	for rows.Next() {
		var c StudentContact
		if err := rows.Scan(&c.ID, &c.UserID, &c.RollNumber, &c.Branch, &c.CGPA, &c.Backlogs, &c.Phone, &c.Address,
			&c.Skills, &c.Certifications, &c.Internships, &c.Projects, &c.LinkedIn, &c.GitHub, &c.ProfileComplete,
			&c.Name, &c.Email); err != nil {
			return nil, fmt.Errorf("failed to scan student contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}
