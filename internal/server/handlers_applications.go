package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/suhan648/placementpro/internal/types"
)

// handleListApplications lists every application with student and drive
// context for the placement cell.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := s.db.ListApplicationsDetailed(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load applications")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"applications": applications,
		"count":        len(applications),
	})
}

// handleUpdateApplicationStatus moves an application to any valid status.
// Admin updates are manual overrides, so terminal statuses do not lock the
// record here.
func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req types.UpdateApplicationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	application, err := s.applications.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, application)
}
