package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request RegisterRequest
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid student",
			request: RegisterRequest{
				Name:     "Asha Rao",
				Email:    "asha@example.com",
				Password: "secret1",
				Role:     "student",
			},
			wantErr: false,
		},
		{
			name: "valid alumni",
			request: RegisterRequest{
				Name:     "Vikram Iyer",
				Email:    "vikram@example.com",
				Password: "secret1",
				Role:     "alumni",
			},
			wantErr: false,
		},
		{
			name: "password too short",
			request: RegisterRequest{
				Name:     "Asha Rao",
				Email:    "asha@example.com",
				Password: "five5",
				Role:     "student",
			},
			wantErr: true,
			errMsg:  "min",
		},
		{
			name: "unknown role",
			request: RegisterRequest{
				Name:     "Asha Rao",
				Email:    "asha@example.com",
				Password: "secret1",
				Role:     "recruiter",
			},
			wantErr: true,
			errMsg:  "oneof",
		},
		{
			name: "missing email",
			request: RegisterRequest{
				Name:     "Asha Rao",
				Password: "secret1",
				Role:     "student",
			},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name: "invalid email format",
			request: RegisterRequest{
				Name:     "Asha Rao",
				Email:    "not-an-email",
				Password: "secret1",
				Role:     "student",
			},
			wantErr: true,
			errMsg:  "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validation(t *testing.T) {
	valid := LoginRequest{Email: "asha@example.com", Password: "secret1"}
	assert.NoError(t, valid.Validate())

	noEmail := LoginRequest{Password: "secret1"}
	assert.Error(t, noEmail.Validate())

	badEmail := LoginRequest{Email: "not-an-email", Password: "secret1"}
	assert.Error(t, badEmail.Validate())

	noPassword := LoginRequest{Email: "asha@example.com"}
	assert.Error(t, noPassword.Validate())
}

func TestUpdateProfileRequest_Validation(t *testing.T) {
	valid := UpdateProfileRequest{
		RollNumber: "21CS001",
		Branch:     "CSE",
		CGPA:       8.2,
		Backlogs:   0,
	}

	tests := []struct {
		name    string
		mutate  func(r *UpdateProfileRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *UpdateProfileRequest) {}, wantErr: false},
		{name: "zero cgpa allowed", mutate: func(r *UpdateProfileRequest) { r.CGPA = 0 }, wantErr: false},
		{name: "cgpa above scale", mutate: func(r *UpdateProfileRequest) { r.CGPA = 10.5 }, wantErr: true},
		{name: "negative backlogs", mutate: func(r *UpdateProfileRequest) { r.Backlogs = -1 }, wantErr: true},
		{name: "unknown branch", mutate: func(r *UpdateProfileRequest) { r.Branch = "AI" }, wantErr: true},
		{name: "missing roll number", mutate: func(r *UpdateProfileRequest) { r.RollNumber = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := valid
			tt.mutate(&request)
			err := request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateDriveRequest_Validation(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	lpa := 12.0
	valid := CreateDriveRequest{
		CompanyName:     "Acme Corp",
		JobRole:         "SDE Intern",
		PackageLPA:      &lpa,
		MinCGPA:         7.0,
		AllowedBranches: []string{"CSE", "IT"},
		MaxBacklogs:     0,
		DriveDate:       &date,
	}

	tests := []struct {
		name    string
		mutate  func(r *CreateDriveRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *CreateDriveRequest) {}, wantErr: false},
		{name: "optional fields omitted", mutate: func(r *CreateDriveRequest) {
			r.PackageLPA = nil
			r.DriveDate = nil
		}, wantErr: false},
		{name: "missing company", mutate: func(r *CreateDriveRequest) { r.CompanyName = "" }, wantErr: true},
		{name: "no branches", mutate: func(r *CreateDriveRequest) { r.AllowedBranches = nil }, wantErr: true},
		{name: "unknown branch in list", mutate: func(r *CreateDriveRequest) { r.AllowedBranches = []string{"CSE", "AI"} }, wantErr: true},
		{name: "negative package", mutate: func(r *CreateDriveRequest) { bad := -1.0; r.PackageLPA = &bad }, wantErr: true},
		{name: "min cgpa above scale", mutate: func(r *CreateDriveRequest) { r.MinCGPA = 11 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := valid
			tt.mutate(&request)
			err := request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduleInterviewRequest_Validation(t *testing.T) {
	valid := ScheduleInterviewRequest{
		StudentID: uuid.New(),
		DriveID:   uuid.New(),
		TimeSlot:  time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
	}

	assert.NoError(t, valid.Validate())

	missingStudent := valid
	missingStudent.StudentID = uuid.Nil
	assert.Error(t, missingStudent.Validate())

	missingTime := valid
	missingTime.TimeSlot = time.Time{}
	assert.Error(t, missingTime.Validate())
}

func TestCreateSlotRequest_Validation(t *testing.T) {
	valid := CreateSlotRequest{
		AvailableTime: time.Date(2026, 9, 20, 17, 0, 0, 0, time.UTC),
		MeetingLink:   "https://meet.example/abc",
	}
	assert.NoError(t, valid.Validate())

	missing := CreateSlotRequest{}
	assert.Error(t, missing.Validate())
}

func TestUpdateDriveStatusRequest_Validation(t *testing.T) {
	for _, status := range []string{"upcoming", "ongoing", "completed"} {
		request := UpdateDriveStatusRequest{Status: status}
		assert.NoError(t, request.Validate(), status)
	}

	bad := UpdateDriveStatusRequest{Status: "cancelled"}
	assert.Error(t, bad.Validate())
}

func TestChatRequest_EmptyMessageDecodes(t *testing.T) {
	// An empty chat message must reach the bot, so it carries no
	// validation constraint at all.
	var request ChatRequest
	require.NoError(t, json.Unmarshal([]byte(`{"message":""}`), &request))
	assert.Equal(t, "", request.Message)
}

func TestLoginResponse_JSONShape(t *testing.T) {
	view := &UserView{ID: uuid.New(), Name: "Asha Rao", Email: "asha@example.com", Role: "student"}
	resp := LoginResponse{User: view, Token: "token-value"}

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"token":"token-value"`)
	assert.Contains(t, string(raw), `"role":"student"`)
	assert.NotContains(t, string(raw), "password")
}
