package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/cliphaven/clipdex/internal/domain"
	logpkg "github.com/cliphaven/clipdex/internal/logger"
	commentuc "github.com/cliphaven/clipdex/internal/usecase/comment"
	healthuc "github.com/cliphaven/clipdex/internal/usecase/health"
	listinguc "github.com/cliphaven/clipdex/internal/usecase/listing"
	videouc "github.com/cliphaven/clipdex/internal/usecase/video"
)

// principalHeader carries the authenticated user id, set by the gateway in
// front of this service.
const principalHeader = "X-Principal-ID"

// errorCode is the machine-readable error discriminator in error responses.
type errorCode string

const (
	codeBadRequest       errorCode = "bad_request"
	codeUnauthorized     errorCode = "unauthorized"
	codeValidationFailed errorCode = "validation_failed"
	codeNotFound         errorCode = "not_found"
	codeForbidden        errorCode = "forbidden"
	codeUpstreamError    errorCode = "upstream_error"
	codeInternalError    errorCode = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the listing service over HTTP.
type Server struct {
	listings *listinguc.Service
	videos   *videouc.Service
	comments *commentuc.Service
	health   *healthuc.Service
	logger   *zap.Logger

	defaultPageSize int
	maxPageSize     int

	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	listings *listinguc.Service,
	videos *videouc.Service,
	comments *commentuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		listings:        listings,
		videos:          videos,
		comments:        comments,
		health:          health,
		logger:          logger,
		defaultPageSize: 10,
		maxPageSize:     100,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidArgument, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrForbidden, http.StatusForbidden, codeForbidden),
		sentinelHandler(domain.ErrUpstream, http.StatusBadGateway, codeUpstreamError),
	}
	return s
}

// WithPagination overrides the configured page size bounds.
func (s *Server) WithPagination(defaultPageSize, maxPageSize int) *Server {
	if defaultPageSize > 0 {
		s.defaultPageSize = defaultPageSize
	}
	if maxPageSize > 0 {
		s.maxPageSize = maxPageSize
	}
	return s
}

// Routes mounts all API routes on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/videos", func(r chi.Router) {
			r.Get("/", s.ListVideos)
			r.Post("/", s.PublishVideo)
			r.Route("/{videoId}", func(r chi.Router) {
				r.Get("/", s.GetVideo)
				r.Patch("/", s.UpdateVideo)
				r.Delete("/", s.DeleteVideo)
				r.Post("/toggle-publish", s.TogglePublish)
				r.Post("/views", s.AddView)
				r.Get("/comments", s.ListComments)
				r.Post("/comments", s.AddComment)
			})
		})
		r.Route("/comments/{commentId}", func(r chi.Router) {
			r.Patch("/", s.UpdateComment)
			r.Delete("/", s.DeleteComment)
		})
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// principal returns the authenticated user id, "" when anonymous.
func principal(r *http.Request) string {
	return r.Header.Get(principalHeader)
}

// requirePrincipal writes 401 and returns "" when the request is anonymous.
func requirePrincipal(w http.ResponseWriter, r *http.Request) string {
	p := principal(r)
	if p == "" {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "authenticated user required")
	}
	return p
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a client-visible message without exposing
// internals. Invalid-argument errors carry their full domain text since it
// is caller-fixable; everything else degrades to the sentinel message.
func safeDomainMessage(err error) string {
	if errors.Is(err, domain.ErrInvalidArgument) {
		return err.Error()
	}
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrForbidden,
		domain.ErrUpstream,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	// Prefer the request-scoped logger so errors carry the request_id.
	log := logpkg.FromContext(r.Context(), s.logger)
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
