package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/suhan648/placementpro/internal/db"
	"github.com/suhan648/placementpro/internal/types"
)

// handleCreateFAQ adds an entry to the chatbot knowledge base.
func (s *Server) handleCreateFAQ(w http.ResponseWriter, r *http.Request) {
	var req types.CreateFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	faq := &db.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
		Keywords: req.Keywords,
	}
	if err := s.db.CreateFAQ(r.Context(), faq); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create FAQ")
		return
	}

	s.jsonResponse(w, http.StatusCreated, faq)
}

// handleListFAQs lists the knowledge base.
func (s *Server) handleListFAQs(w http.ResponseWriter, r *http.Request) {
	faqs, err := s.db.ListFAQs(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load FAQs")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"faqs":  faqs,
		"count": len(faqs),
	})
}

// handleUpdateFAQ rewrites an entry's answer. Question and keywords stay
// fixed so existing chat matches keep working.
func (s *Server) handleUpdateFAQ(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid FAQ ID")
		return
	}

	var req types.UpdateFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	faq, err := s.db.GetFAQ(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load FAQ")
		return
	}
	if faq == nil {
		s.errorResponse(w, http.StatusNotFound, "FAQ not found")
		return
	}

	if err := s.db.UpdateFAQAnswer(r.Context(), id, req.Answer); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update FAQ")
		return
	}
	faq.Answer = req.Answer

	s.jsonResponse(w, http.StatusOK, faq)
}

// handleDeleteFAQ removes an entry from the knowledge base.
func (s *Server) handleDeleteFAQ(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid FAQ ID")
		return
	}

	faq, err := s.db.GetFAQ(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load FAQ")
		return
	}
	if faq == nil {
		s.errorResponse(w, http.StatusNotFound, "FAQ not found")
		return
	}

	if err := s.db.DeleteFAQ(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete FAQ")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
