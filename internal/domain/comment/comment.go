package comment

import (
	"fmt"
	"strings"

	"github.com/cliphaven/clipdex/internal/domain"
)

// MaxContentLength bounds comment content in characters.
const MaxContentLength = 2048

// Comment is the comment aggregate (immutable value object).
type Comment struct {
	id        string
	ownerID   string
	videoID   string
	content   string
	createdAt int64 // unix millis
}

// New validates and creates a Comment.
func New(id, ownerID, videoID, content string, createdAt int64) (Comment, error) {
	if !domain.IsValidID(id) {
		return Comment{}, fmt.Errorf("comment ID must be alphanumeric with underscores and hyphens, 1-64 chars")
	}
	if !domain.IsValidID(ownerID) {
		return Comment{}, fmt.Errorf("owner ID must be alphanumeric with underscores and hyphens, 1-64 chars")
	}
	if !domain.IsValidID(videoID) {
		return Comment{}, fmt.Errorf("video ID must be alphanumeric with underscores and hyphens, 1-64 chars")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return Comment{}, fmt.Errorf("content is required")
	}
	if len(content) > MaxContentLength {
		return Comment{}, fmt.Errorf("content too long (max %d)", MaxContentLength)
	}

	return Comment{id: id, ownerID: ownerID, videoID: videoID, content: content, createdAt: createdAt}, nil
}

// Reconstruct creates a Comment without validation (storage hydration).
func Reconstruct(id, ownerID, videoID, content string, createdAt int64) Comment {
	return Comment{id: id, ownerID: ownerID, videoID: videoID, content: content, createdAt: createdAt}
}

// ID returns the comment identifier.
func (c *Comment) ID() string { return c.id }

// OwnerID returns the commenting user's identifier.
func (c *Comment) OwnerID() string { return c.ownerID }

// VideoID returns the parent video identifier.
func (c *Comment) VideoID() string { return c.videoID }

// Content returns the comment text.
func (c *Comment) Content() string { return c.content }

// CreatedAt returns the creation time in unix milliseconds.
func (c *Comment) CreatedAt() int64 { return c.createdAt }

// SearchText returns the text relevance scoring matches against.
func (c *Comment) SearchText() string { return c.content }

// SortValue resolves a caller-selectable sort key to a numeric value.
func (c *Comment) SortValue(key string) (float64, bool) {
	if key == "created_at" {
		return float64(c.createdAt), true
	}
	return 0, false
}

// WithContent returns a copy with the content replaced.
func (c *Comment) WithContent(content string) (Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Comment{}, fmt.Errorf("content is required")
	}
	if len(content) > MaxContentLength {
		return Comment{}, fmt.Errorf("content too long (max %d)", MaxContentLength)
	}
	cc := *c
	cc.content = content
	return cc, nil
}
