package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that can log in. Role is one of
// "admin", "student", or "alumni".
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Student holds the placement profile attached to a student user.
// Skills, certifications, internships, and projects are free text;
// skills is a comma-separated list.
type Student struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	RollNumber      string    `json:"roll_number"`
	Branch          string    `json:"branch"`
	CGPA            float64   `json:"cgpa"`
	Backlogs        int       `json:"backlogs"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	Skills          string    `json:"skills"`
	Certifications  string    `json:"certifications"`
	Internships     string    `json:"internships"`
	Projects        string    `json:"projects"`
	LinkedIn        string    `json:"linkedin"`
	GitHub          string    `json:"github"`
	ProfileComplete bool      `json:"profile_complete"`
}

// Alumni holds the profile attached to an alumni user.
type Alumni struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Company     string    `json:"company"`
	Designation string    `json:"designation"`
}

// Drive represents a placement drive with its eligibility criteria.
type Drive struct {
	ID              uuid.UUID  `json:"id"`
	CompanyName     string     `json:"company_name"`
	JobRole         string     `json:"job_role"`
	PackageLPA      *float64   `json:"package_lpa,omitempty"`
	MinCGPA         float64    `json:"min_cgpa"`
	AllowedBranches []string   `json:"allowed_branches"`
	MaxBacklogs     int        `json:"max_backlogs"`
	DriveDate       *time.Time `json:"drive_date,omitempty"`
	Venue           string     `json:"venue"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Application links a student to a drive. One per (student, drive).
type Application struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"`
	DriveID   uuid.UUID `json:"drive_id"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
}

// Interview is a scheduled interview slot, keyed (student, drive).
type Interview struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"`
	DriveID   uuid.UUID `json:"drive_id"`
	TimeSlot  time.Time `json:"time_slot"`
	Venue     string    `json:"venue"`
	Notes     string    `json:"notes"`
}

// MentorshipSlot is an alumni-offered meeting slot. BookedBy is nil
// until a student claims it; a slot is claimed at most once.
type MentorshipSlot struct {
	ID            uuid.UUID  `json:"id"`
	AlumniID      uuid.UUID  `json:"alumni_id"`
	AvailableTime time.Time  `json:"available_time"`
	MeetingLink   string     `json:"meeting_link"`
	BookedBy      *uuid.UUID `json:"booked_by,omitempty"`
}

// Referral is a job referral posted by an alumni.
type Referral struct {
	ID          uuid.UUID  `json:"id"`
	AlumniID    uuid.UUID  `json:"alumni_id"`
	Company     string     `json:"company"`
	JobRole     string     `json:"job_role"`
	Description string     `json:"description"`
	ApplyLink   string     `json:"apply_link"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	PostedAt    time.Time  `json:"posted_at"`
}

// FAQ is a knowledge-base entry used by the chatbot. Keywords is a
// comma-separated list.
type FAQ struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Keywords  string    `json:"keywords"`
	CreatedAt time.Time `json:"created_at"`
}

// MarketSkill describes the skill profile the market expects for a job role.
type MarketSkill struct {
	ID             uuid.UUID `json:"id"`
	JobRole        string    `json:"job_role"`
	RequiredSkills []string  `json:"required_skills"`
	Insight        string    `json:"insight"`
}
