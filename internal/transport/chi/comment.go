package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cliphaven/clipdex/internal/domain/listing/scope"
)

// ListComments handles GET /api/v1/videos/{videoId}/comments.
func (s *Server) ListComments(w http.ResponseWriter, r *http.Request) {
	req, err := s.listingRequest(r, scope.Comment, "", chi.URLParam(r, "videoId"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	pg, err := s.listings.ListComments(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentPageToJSON(pg))
}

// AddComment handles POST /api/v1/videos/{videoId}/comments.
func (s *Server) AddComment(w http.ResponseWriter, r *http.Request) {
	owner := requirePrincipal(w, r)
	if owner == "" {
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	c, err := s.comments.Add(r.Context(), chi.URLParam(r, "videoId"), owner, body.Content)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, commentToJSON(&c, nil))
}

// UpdateComment handles PATCH /api/v1/comments/{commentId}.
func (s *Server) UpdateComment(w http.ResponseWriter, r *http.Request) {
	requester := requirePrincipal(w, r)
	if requester == "" {
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	c, err := s.comments.Update(r.Context(), chi.URLParam(r, "commentId"), requester, body.Content)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentToJSON(&c, nil))
}

// DeleteComment handles DELETE /api/v1/comments/{commentId}.
func (s *Server) DeleteComment(w http.ResponseWriter, r *http.Request) {
	requester := requirePrincipal(w, r)
	if requester == "" {
		return
	}

	if err := s.comments.Delete(r.Context(), chi.URLParam(r, "commentId"), requester); err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
