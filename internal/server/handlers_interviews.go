package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/suhan648/placementpro/internal/types"
)

// handleScheduleInterview books an interview for a (student, drive) pair.
// A student with another drive's interview at the same instant is rejected
// with a conflict; booking the same pair again reschedules it.
func (s *Server) handleScheduleInterview(w http.ResponseWriter, r *http.Request) {
	var req types.ScheduleInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	student, err := s.db.GetStudent(r.Context(), req.StudentID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load student")
		return
	}
	if student == nil {
		s.errorResponse(w, http.StatusNotFound, "Student not found")
		return
	}

	drive, err := s.db.GetDrive(r.Context(), req.DriveID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load drive")
		return
	}
	if drive == nil {
		s.errorResponse(w, http.StatusNotFound, "Drive not found")
		return
	}

	interview, err := s.interviews.Schedule(r.Context(), req.StudentID, req.DriveID, req.TimeSlot, req.Venue, req.Notes)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, interview)
}

// handleListInterviews lists all interviews with student and company context.
func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	interviews, err := s.db.ListInterviewsDetailed(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load interviews")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"interviews": interviews,
		"count":      len(interviews),
	})
}

// handleDeleteInterview cancels an interview without touching the
// application's status.
func (s *Server) handleDeleteInterview(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return
	}

	if err := s.interviews.Remove(r.Context(), id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
