package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/suhan648/placementpro/internal/db"
	"github.com/suhan648/placementpro/internal/placement"
	"github.com/suhan648/placementpro/internal/resume"
	"github.com/suhan648/placementpro/internal/server/middleware"
	"github.com/suhan648/placementpro/internal/types"
)

// DriveForStudent is a drive annotated with the student's standing on it:
// whether the cutoffs admit them and their application, if any.
type DriveForStudent struct {
	db.Drive
	Eligible    bool            `json:"eligible"`
	Application *db.Application `json:"application,omitempty"`
}

// currentStudent resolves the authenticated user's student profile. On
// failure it writes the error response and returns nil.
func (s *Server) currentStudent(w http.ResponseWriter, r *http.Request) *db.Student {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}

	student, err := s.db.GetStudentByUserID(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load student profile")
		return nil
	}
	if student == nil {
		s.errorResponse(w, http.StatusNotFound, "Student profile not found")
		return nil
	}
	return student
}

// handleGetMyProfile returns the student's own profile.
func (s *Server) handleGetMyProfile(w http.ResponseWriter, r *http.Request) {
	student := s.currentStudent(w, r)
	if student == nil {
		return
	}

	s.jsonResponse(w, http.StatusOK, student)
}

// handleUpdateMyProfile upserts the student's placement profile.
func (s *Server) handleUpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	student := &db.Student{
		UserID:         userID,
		RollNumber:     req.RollNumber,
		Branch:         req.Branch,
		CGPA:           req.CGPA,
		Backlogs:       req.Backlogs,
		Phone:          req.Phone,
		Address:        req.Address,
		Skills:         req.Skills,
		Certifications: req.Certifications,
		Internships:    req.Internships,
		Projects:       req.Projects,
		LinkedIn:       req.LinkedIn,
		GitHub:         req.GitHub,
		// Roll number and branch are required, so a successful update
		// always completes the profile.
		ProfileComplete: true,
	}

	if err := s.db.UpsertStudentProfile(r.Context(), student); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, student)
}

// handleStudentDashboard returns the student's home view: open drives they
// are eligible for, their most recent applications, and fresh referrals.
func (s *Server) handleStudentDashboard(w http.ResponseWriter, r *http.Request) {
	student := s.currentStudent(w, r)
	if student == nil {
		return
	}
	ctx := r.Context()

	drives, err := s.db.ListDrivesExcludingStatus(ctx, placement.DriveCompleted)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load drives")
		return
	}
	eligible := placement.EligibleDrives(*student, drives)

	applications, err := s.db.ListApplicationsByStudent(ctx, student.ID, 5)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load applications")
		return
	}

	referrals, err := s.db.ListReferrals(ctx, 5)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load referrals")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"student":             student,
		"eligible_drives":     eligible,
		"recent_applications": applications,
		"recent_referrals":    referrals,
	})
}

// handleStudentDrives lists every drive annotated with eligibility and the
// student's application, so the UI can render apply buttons in one pass.
func (s *Server) handleStudentDrives(w http.ResponseWriter, r *http.Request) {
	student := s.currentStudent(w, r)
	if student == nil {
		return
	}
	ctx := r.Context()

	drives, err := s.db.ListDrives(ctx)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load drives")
		return
	}

	applications, err := s.db.ListApplicationsByStudent(ctx, student.ID, 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load applications")
		return
	}
	byDrive := make(map[uuid.UUID]*db.Application, len(applications))
	for i := range applications {
		byDrive[applications[i].DriveID] = &applications[i]
	}

	annotated := make([]DriveForStudent, 0, len(drives))
	for _, d := range drives {
		annotated = append(annotated, DriveForStudent{
			Drive:       d,
			Eligible:    placement.IsEligible(*student, d),
			Application: byDrive[d.ID],
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"drives": annotated,
		"count":  len(annotated),
	})
}

// handleApply records the student's application to a drive. Applying twice
// returns the existing application unchanged.
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	student := s.currentStudent(w, r)
	if student == nil {
		return
	}

	driveID, err := uuid.Parse(r.PathValue("drive_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid drive ID")
		return
	}

	drive, err := s.db.GetDrive(r.Context(), driveID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load drive")
		return
	}
	if drive == nil {
		s.errorResponse(w, http.StatusNotFound, "Drive not found")
		return
	}

	if !placement.IsEligible(*student, *drive) {
		s.errorResponse(w, http.StatusForbidden, "You do not meet the eligibility criteria for this drive")
		return
	}

	application, created, err := s.applications.Apply(r.Context(), student.ID, driveID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to apply")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	s.jsonResponse(w, status, application)
}

// handleMyApplications lists the student's applications with drive and
// interview context, newest first.
func (s *Server) handleMyApplications(w http.ResponseWriter, r *http.Request) {
	student := s.currentStudent(w, r)
	if student == nil {
		return
	}

	applications, err := s.db.ListStudentApplications(r.Context(), student.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load applications")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"applications": applications,
		"count":        len(applications),
	})
}

// handleResumeExport renders the student's profile as a plain-text resume
// and serves it as a download.
func (s *Server) handleResumeExport(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := s.db.GetUser(r.Context(), userID)
	if err != nil || user == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load account")
		return
	}

	student := s.currentStudent(w, r)
	if student == nil {
		return
	}

	text := resume.Render(*user, *student)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resume.Filename(user.Name)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		s.logger.Error("failed to write resume export", zap.Error(err))
	}
}
