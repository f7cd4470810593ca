package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/suhan648/placementpro/internal/db"
	"github.com/suhan648/placementpro/internal/server/middleware"
	"github.com/suhan648/placementpro/internal/types"
)

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// currentAlumni resolves the authenticated user's alumni profile. On failure
// it writes the error response and returns nil.
func (s *Server) currentAlumni(w http.ResponseWriter, r *http.Request) *db.Alumni {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}

	alumni, err := s.db.GetAlumniByUserID(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load alumni profile")
		return nil
	}
	if alumni == nil {
		s.errorResponse(w, http.StatusNotFound, "Alumni profile not found")
		return nil
	}
	return alumni
}

// handleAlumniDashboard returns the alumni's home view: referral and
// mentorship counts plus their slots with booking state.
func (s *Server) handleAlumniDashboard(w http.ResponseWriter, r *http.Request) {
	alumni := s.currentAlumni(w, r)
	if alumni == nil {
		return
	}
	ctx := r.Context()

	referralCount, err := s.db.CountReferralsByAlumni(ctx, alumni.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load referral count")
		return
	}

	slotCount, err := s.db.CountMentorshipSlots(ctx, alumni.ID, false)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load slot count")
		return
	}
	bookedCount, err := s.db.CountMentorshipSlots(ctx, alumni.ID, true)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load booked count")
		return
	}

	slots, err := s.db.ListMentorshipSlotsByAlumni(ctx, alumni.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load slots")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"alumni":         alumni,
		"referral_count": referralCount,
		"slot_count":     slotCount,
		"booked_count":   bookedCount,
		"slots":          slots,
	})
}

// handleUpdateAlumniProfile sets the alumni's company and designation.
func (s *Server) handleUpdateAlumniProfile(w http.ResponseWriter, r *http.Request) {
	alumni := s.currentAlumni(w, r)
	if alumni == nil {
		return
	}

	var req types.UpdateAlumniProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if err := s.db.UpdateAlumniProfile(r.Context(), alumni.ID, req.Company, req.Designation); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	alumni.Company = req.Company
	alumni.Designation = req.Designation

	s.jsonResponse(w, http.StatusOK, alumni)
}

// handleCreateReferral posts a referral opening for students.
func (s *Server) handleCreateReferral(w http.ResponseWriter, r *http.Request) {
	alumni := s.currentAlumni(w, r)
	if alumni == nil {
		return
	}

	var req types.CreateReferralRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	referral := &db.Referral{
		AlumniID:    alumni.ID,
		Company:     req.Company,
		JobRole:     req.JobRole,
		Description: req.Description,
		ApplyLink:   req.ApplyLink,
		Deadline:    req.Deadline,
	}
	if err := s.db.CreateReferral(r.Context(), referral); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create referral")
		return
	}

	s.jsonResponse(w, http.StatusCreated, referral)
}

// handleListReferrals lists referrals newest first. Open to any signed-in
// user; ?limit caps the page size.
func (s *Server) handleListReferrals(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 50, 200)

	referrals, err := s.db.ListReferrals(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load referrals")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"referrals": referrals,
		"count":     len(referrals),
	})
}

// handleDeleteReferral removes one of the alumni's own referrals. Someone
// else's referral reads as not found rather than forbidden, so the delete
// does not confirm the record exists.
func (s *Server) handleDeleteReferral(w http.ResponseWriter, r *http.Request) {
	alumni := s.currentAlumni(w, r)
	if alumni == nil {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid referral ID")
		return
	}

	deleted, err := s.db.DeleteReferral(r.Context(), id, alumni.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete referral")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Referral not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
