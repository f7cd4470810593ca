package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// UpdateAlumniProfileRequest sets an alumni's company and designation.
type UpdateAlumniProfileRequest struct {
	Company     string `json:"company,omitempty"`
	Designation string `json:"designation,omitempty"`
}

// CreateReferralRequest posts a referral opening for students.
type CreateReferralRequest struct {
	Company     string     `json:"company" validate:"required,min=1"`
	JobRole     string     `json:"job_role" validate:"required,min=1"`
	Description string     `json:"description,omitempty"`
	ApplyLink   string     `json:"apply_link,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// CreateSlotRequest opens a mentorship slot students can book.
type CreateSlotRequest struct {
	AvailableTime time.Time `json:"available_time" validate:"required"`
	MeetingLink   string    `json:"meeting_link,omitempty"`
}

// Validate validates the UpdateAlumniProfileRequest using the validator.
func (r *UpdateAlumniProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateReferralRequest using the validator.
func (r *CreateReferralRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateSlotRequest using the validator.
func (r *CreateSlotRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
