package query

import (
	"fmt"

	"github.com/cliphaven/clipdex/internal/domain"
	"github.com/cliphaven/clipdex/internal/domain/listing/scope"
)

// Paging limits.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxFreeTextLength bounds the free-text term source.
	MaxFreeTextLength = 512
)

// Direction is the requested sort direction.
type Direction string

// Sort direction constants.
const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sortable fields per scope. Caller-supplied sort keys are validated against
// these instead of being passed through to the sort stage verbatim.
var (
	videoSortKeys   = map[string]bool{"created_at": true, "views": true, "duration": true}
	commentSortKeys = map[string]bool{"created_at": true}
)

// Request is a validated listing query.
type Request struct {
	entityScope scope.Scope
	freeText    string
	sortKey     string
	sortDir     Direction
	owner       string
	parent      string
	page        int
	limit       int
	requester   string
}

// New validates and normalizes listing parameters.
//
// page and limit are coerced to positive values (page defaults to 1, limit to
// DefaultLimit and is clamped to MaxLimit). An unknown sort key fails with
// ErrInvalidArgument rather than silently degrading to the default order. A
// malformed owner filter is dropped, not rejected. Comment scope requires a
// well-formed parent video id.
func New(
	s scope.Scope,
	freeText, sortKey string,
	sortDir Direction,
	owner, parent string,
	page, limit int,
	requester string,
) (Request, error) {
	if !s.IsValid() {
		return Request{}, fmt.Errorf("%w: unknown listing scope %q", domain.ErrInvalidArgument, s)
	}
	if len(freeText) > MaxFreeTextLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidArgument, MaxFreeTextLength)
	}
	if sortKey != "" && !sortableKeys(s)[sortKey] {
		return Request{}, fmt.Errorf("%w: field %q is not sortable for %s listings", domain.ErrInvalidArgument, sortKey, s)
	}
	switch sortDir {
	case Desc, "-1":
		// "-1" is the numeric spelling older clients send.
		sortDir = Desc
	default:
		// Anything that is not an explicit descending request sorts ascending.
		sortDir = Asc
	}
	if owner != "" && !domain.IsValidID(owner) {
		owner = ""
	}
	switch s {
	case scope.Comment:
		if !domain.IsValidID(parent) {
			return Request{}, fmt.Errorf("%w: comment listing requires a valid video id", domain.ErrInvalidArgument)
		}
	case scope.Video:
		parent = ""
	}
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Request{
		entityScope: s,
		freeText:    freeText,
		sortKey:     sortKey,
		sortDir:     sortDir,
		owner:       owner,
		parent:      parent,
		page:        page,
		limit:       limit,
		requester:   requester,
	}, nil
}

func sortableKeys(s scope.Scope) map[string]bool {
	if s == scope.Comment {
		return commentSortKeys
	}
	return videoSortKeys
}

// Scope returns the entity scope.
func (r *Request) Scope() scope.Scope { return r.entityScope }

// FreeText returns the raw free-text query.
func (r *Request) FreeText() string { return r.freeText }

// HasFreeText reports whether a free-text query was supplied.
func (r *Request) HasFreeText() bool { return r.freeText != "" }

// SortKey returns the validated caller sort key ("" when absent).
func (r *Request) SortKey() string { return r.sortKey }

// SortDir returns the sort direction for the caller sort key.
func (r *Request) SortDir() Direction { return r.sortDir }

// Owner returns the owner filter ("" when absent or malformed).
func (r *Request) Owner() string { return r.owner }

// Parent returns the parent video id (comment scope only).
func (r *Request) Parent() string { return r.parent }

// Page returns the 1-based page number.
func (r *Request) Page() int { return r.page }

// Limit returns the page size.
func (r *Request) Limit() int { return r.limit }

// Requester returns the authenticated principal id ("" when anonymous).
func (r *Request) Requester() string { return r.requester }
