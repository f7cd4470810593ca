package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/suhan648/placementpro/internal/db"
	"github.com/suhan648/placementpro/internal/types"
)

// handleCreateSlot opens a mentorship slot students can book.
func (s *Server) handleCreateSlot(w http.ResponseWriter, r *http.Request) {
	alumni := s.currentAlumni(w, r)
	if alumni == nil {
		return
	}

	var req types.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	slot := &db.MentorshipSlot{
		AlumniID:      alumni.ID,
		AvailableTime: req.AvailableTime,
		MeetingLink:   req.MeetingLink,
	}
	if err := s.db.CreateMentorshipSlot(r.Context(), slot); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create slot")
		return
	}

	s.jsonResponse(w, http.StatusCreated, slot)
}

// handleMySlots lists the alumni's own slots with booking state.
func (s *Server) handleMySlots(w http.ResponseWriter, r *http.Request) {
	alumni := s.currentAlumni(w, r)
	if alumni == nil {
		return
	}

	slots, err := s.db.ListMentorshipSlotsByAlumni(r.Context(), alumni.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load slots")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"slots": slots,
		"count": len(slots),
	})
}

// handleDeleteSlot removes one of the alumni's own slots. As with referrals,
// someone else's slot reads as not found.
func (s *Server) handleDeleteSlot(w http.ResponseWriter, r *http.Request) {
	alumni := s.currentAlumni(w, r)
	if alumni == nil {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid slot ID")
		return
	}

	deleted, err := s.db.DeleteMentorshipSlot(r.Context(), id, alumni.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete slot")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Slot not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleOpenSlots lists unbooked slots students can still claim.
func (s *Server) handleOpenSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := s.db.ListOpenMentorshipSlots(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load slots")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"slots": slots,
		"count": len(slots),
	})
}

// handleClaimSlot books a slot for the student. Concurrent claims on the
// same slot resolve to exactly one winner; losers get a conflict.
func (s *Server) handleClaimSlot(w http.ResponseWriter, r *http.Request) {
	student := s.currentStudent(w, r)
	if student == nil {
		return
	}

	slotID, err := uuid.Parse(r.PathValue("slot_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid slot ID")
		return
	}

	slot, err := s.bookings.Claim(r.Context(), slotID, student.ID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, slot)
}
