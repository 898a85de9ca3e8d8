package chi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cliphaven/clipdex/internal/domain/listing/query"
	"github.com/cliphaven/clipdex/internal/domain/listing/scope"
)

// ListVideos handles GET /api/v1/videos.
func (s *Server) ListVideos(w http.ResponseWriter, r *http.Request) {
	req, err := s.listingRequest(r, scope.Video, r.URL.Query().Get("userId"), "")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	pg, err := s.listings.ListVideos(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, videoPageToJSON(pg))
}

// PublishVideo handles POST /api/v1/videos.
func (s *Server) PublishVideo(w http.ResponseWriter, r *http.Request) {
	owner := requirePrincipal(w, r)
	if owner == "" {
		return
	}

	var body struct {
		Title        string  `json:"title"`
		Description  string  `json:"description"`
		VideoURL     string  `json:"videoUrl"`
		ThumbnailURL string  `json:"thumbnailUrl"`
		Duration     float64 `json:"duration"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	v, err := s.videos.Publish(
		r.Context(), owner, body.Title, body.Description, body.VideoURL, body.ThumbnailURL, body.Duration,
	)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/videos/"+v.ID())
	writeJSON(w, http.StatusCreated, videoToJSON(&v, nil))
}

// GetVideo handles GET /api/v1/videos/{videoId}.
func (s *Server) GetVideo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "videoId")

	v, owner, err := s.videos.Get(r.Context(), id, principal(r))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, videoToJSON(&v, authorToJSON(owner)))
}

// UpdateVideo handles PATCH /api/v1/videos/{videoId}.
func (s *Server) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	requester := requirePrincipal(w, r)
	if requester == "" {
		return
	}

	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	v, err := s.videos.UpdateDetails(r.Context(), chi.URLParam(r, "videoId"), requester, body.Title, body.Description)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, videoToJSON(&v, nil))
}

// DeleteVideo handles DELETE /api/v1/videos/{videoId}.
func (s *Server) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	requester := requirePrincipal(w, r)
	if requester == "" {
		return
	}

	if err := s.videos.Delete(r.Context(), chi.URLParam(r, "videoId"), requester); err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// TogglePublish handles POST /api/v1/videos/{videoId}/toggle-publish.
func (s *Server) TogglePublish(w http.ResponseWriter, r *http.Request) {
	requester := requirePrincipal(w, r)
	if requester == "" {
		return
	}

	v, err := s.videos.TogglePublish(r.Context(), chi.URLParam(r, "videoId"), requester)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, videoToJSON(&v, nil))
}

// AddView handles POST /api/v1/videos/{videoId}/views.
func (s *Server) AddView(w http.ResponseWriter, r *http.Request) {
	views, err := s.videos.AddView(r.Context(), chi.URLParam(r, "videoId"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"views": views})
}

// listingRequest builds a validated listing query from common URL params.
func (s *Server) listingRequest(r *http.Request, sc scope.Scope, owner, parent string) (*query.Request, error) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit <= 0 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	req, err := query.New(
		sc,
		q.Get("query"),
		q.Get("sortBy"),
		query.Direction(q.Get("sortType")),
		owner,
		parent,
		page,
		limit,
		principal(r),
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
