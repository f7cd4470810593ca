package types

import "github.com/go-playground/validator/v10"

// UpdateProfileRequest represents a student updating their placement profile.
// Free-text fields (skills, projects, internships, certifications) hold one
// entry per line.
type UpdateProfileRequest struct {
	RollNumber     string  `json:"roll_number" validate:"required,min=1"`
	Branch         string  `json:"branch" validate:"required,oneof=CSE IT ECE EEE ME CE MCA MBA Other"`
	CGPA           float64 `json:"cgpa" validate:"gte=0,lte=10"`
	Backlogs       int     `json:"backlogs" validate:"gte=0"`
	Phone          string  `json:"phone,omitempty"`
	Address        string  `json:"address,omitempty"`
	Skills         string  `json:"skills,omitempty"`
	Certifications string  `json:"certifications,omitempty"`
	Internships    string  `json:"internships,omitempty"`
	Projects       string  `json:"projects,omitempty"`
	LinkedIn       string  `json:"linkedin,omitempty"`
	GitHub         string  `json:"github,omitempty"`
}

// SkillGapRequest asks for a gap analysis against one market role.
type SkillGapRequest struct {
	Role string `json:"role" validate:"required,min=1"`
}

// Validate validates the UpdateProfileRequest using the validator.
func (r *UpdateProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SkillGapRequest using the validator.
func (r *SkillGapRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
