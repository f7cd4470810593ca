package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/suhan648/placementpro/internal/placement"
	"github.com/suhan648/placementpro/internal/types"
)

// handleMarketRoles lists the market roles available for gap analysis.
func (s *Server) handleMarketRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := s.db.ListMarketSkills(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load market roles")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"roles": roles,
		"count": len(roles),
	})
}

// handleSkillGap compares the student's skills against one market role's
// requirements. Role names match case-insensitively.
func (s *Server) handleSkillGap(w http.ResponseWriter, r *http.Request) {
	student := s.currentStudent(w, r)
	if student == nil {
		return
	}

	var req types.SkillGapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	roles, err := s.db.ListMarketSkills(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load market roles")
		return
	}

	for _, role := range roles {
		if !strings.EqualFold(role.JobRole, strings.TrimSpace(req.Role)) {
			continue
		}
		analysis := placement.AnalyzeSkillGap(placement.SplitSkills(student.Skills), role.RequiredSkills)
		analysis.Role = role.JobRole
		analysis.Insight = role.Insight
		s.jsonResponse(w, http.StatusOK, analysis)
		return
	}

	s.errorResponse(w, http.StatusNotFound, "Unknown role")
}
