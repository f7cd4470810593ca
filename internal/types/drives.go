package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateDriveRequest represents an administrator announcing a placement
// drive along with its eligibility cutoffs.
type CreateDriveRequest struct {
	CompanyName     string     `json:"company_name" validate:"required,min=1"`
	JobRole         string     `json:"job_role" validate:"required,min=1"`
	PackageLPA      *float64   `json:"package_lpa,omitempty" validate:"omitempty,gte=0"`
	MinCGPA         float64    `json:"min_cgpa" validate:"gte=0,lte=10"`
	AllowedBranches []string   `json:"allowed_branches" validate:"required,min=1,dive,oneof=CSE IT ECE EEE ME CE MCA MBA Other"`
	MaxBacklogs     int        `json:"max_backlogs" validate:"gte=0"`
	DriveDate       *time.Time `json:"drive_date,omitempty"`
	Venue           string     `json:"venue,omitempty"`
	Description     string     `json:"description,omitempty"`
}

// UpdateDriveStatusRequest moves a drive through its lifecycle.
type UpdateDriveStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=upcoming ongoing completed"`
}

// ScheduleInterviewRequest books an interview slot for a student on a drive.
type ScheduleInterviewRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	DriveID   uuid.UUID `json:"drive_id" validate:"required"`
	TimeSlot  time.Time `json:"time_slot" validate:"required"`
	Venue     string    `json:"venue,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

// UpdateApplicationStatusRequest sets an application's status. The status
// value is checked against the recognized set by the application service, so
// an unknown status reports which value was rejected.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateFAQRequest adds an entry to the chatbot knowledge base.
type CreateFAQRequest struct {
	Question string `json:"question" validate:"required,min=1"`
	Answer   string `json:"answer" validate:"required,min=1"`
	Keywords string `json:"keywords" validate:"required,min=1"`
}

// UpdateFAQRequest rewrites the answer of an existing entry.
type UpdateFAQRequest struct {
	Answer string `json:"answer" validate:"required,min=1"`
}

// NotifyResult reports a drive announcement fan-out: how many students were
// eligible and how many notifications actually went out.
type NotifyResult struct {
	Eligible int `json:"eligible"`
	Notified int `json:"notified"`
}

// Validate validates the CreateDriveRequest using the validator.
func (r *CreateDriveRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateDriveStatusRequest using the validator.
func (r *UpdateDriveStatusRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ScheduleInterviewRequest using the validator.
func (r *ScheduleInterviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateApplicationStatusRequest using the validator.
func (r *UpdateApplicationStatusRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateFAQRequest using the validator.
func (r *CreateFAQRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateFAQRequest using the validator.
func (r *UpdateFAQRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
