package server

import (
	"encoding/json"
	"net/http"

	"github.com/suhan648/placementpro/internal/placement"
	"github.com/suhan648/placementpro/internal/types"
)

// handleChat answers a placement question from the FAQ knowledge base. There
// is always a reply; unmatched queries get a canned fallback rather than an
// error.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	faqs, err := s.db.ListFAQs(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load knowledge base")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.ChatResponse{
		Reply: placement.Reply(req.Message, faqs),
	})
}
