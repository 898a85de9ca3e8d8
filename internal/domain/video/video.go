package video

import (
	"fmt"
	"strings"

	"github.com/cliphaven/clipdex/internal/domain"
)

const (
	// MaxTitleLength bounds the title in characters.
	MaxTitleLength = 256
	// MaxDescriptionLength bounds the description in characters.
	MaxDescriptionLength = 4096
)

// Video is the video aggregate (immutable value object).
type Video struct {
	id           string
	ownerID      string
	title        string
	description  string
	videoURL     string
	thumbnailURL string
	duration     float64 // seconds
	views        int64
	isPublished  bool
	createdAt    int64 // unix millis
}

// New validates and creates a Video. Freshly created videos start published
// with zero views.
func New(id, ownerID, title, description, videoURL, thumbnailURL string, duration float64, createdAt int64) (Video, error) {
	if !domain.IsValidID(id) {
		return Video{}, fmt.Errorf("video ID must be alphanumeric with underscores and hyphens, 1-64 chars")
	}
	if !domain.IsValidID(ownerID) {
		return Video{}, fmt.Errorf("owner ID must be alphanumeric with underscores and hyphens, 1-64 chars")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return Video{}, fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return Video{}, fmt.Errorf("title too long (max %d)", MaxTitleLength)
	}
	if len(description) > MaxDescriptionLength {
		return Video{}, fmt.Errorf("description too long (max %d)", MaxDescriptionLength)
	}
	if videoURL == "" {
		return Video{}, fmt.Errorf("video URL is required")
	}
	if duration < 0 {
		return Video{}, fmt.Errorf("duration must be non-negative")
	}

	return Video{
		id:           id,
		ownerID:      ownerID,
		title:        title,
		description:  description,
		videoURL:     videoURL,
		thumbnailURL: thumbnailURL,
		duration:     duration,
		views:        0,
		isPublished:  true,
		createdAt:    createdAt,
	}, nil
}

// Reconstruct creates a Video without validation (storage hydration).
func Reconstruct(
	id, ownerID, title, description, videoURL, thumbnailURL string,
	duration float64, views int64, isPublished bool, createdAt int64,
) Video {
	return Video{
		id: id, ownerID: ownerID, title: title, description: description,
		videoURL: videoURL, thumbnailURL: thumbnailURL,
		duration: duration, views: views, isPublished: isPublished, createdAt: createdAt,
	}
}

// ID returns the video identifier.
func (v *Video) ID() string { return v.id }

// OwnerID returns the uploading user's identifier.
func (v *Video) OwnerID() string { return v.ownerID }

// Title returns the video title.
func (v *Video) Title() string { return v.title }

// Description returns the video description.
func (v *Video) Description() string { return v.description }

// VideoURL returns the playback URL.
func (v *Video) VideoURL() string { return v.videoURL }

// ThumbnailURL returns the thumbnail URL.
func (v *Video) ThumbnailURL() string { return v.thumbnailURL }

// Duration returns the length in seconds.
func (v *Video) Duration() float64 { return v.duration }

// Views returns the view counter.
func (v *Video) Views() int64 { return v.views }

// IsPublished reports whether the video is publicly listed.
func (v *Video) IsPublished() bool { return v.isPublished }

// CreatedAt returns the creation time in unix milliseconds.
func (v *Video) CreatedAt() int64 { return v.createdAt }

// SearchText returns the text relevance scoring matches against. Only the
// title participates in matching; the description is display metadata.
func (v *Video) SearchText() string { return v.title }

// SortValue resolves a caller-selectable sort key to a numeric value.
func (v *Video) SortValue(key string) (float64, bool) {
	switch key {
	case "created_at":
		return float64(v.createdAt), true
	case "views":
		return float64(v.views), true
	case "duration":
		return v.duration, true
	default:
		return 0, false
	}
}

// WithDetails returns a copy with title and description replaced.
func (v *Video) WithDetails(title, description string) (Video, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Video{}, fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return Video{}, fmt.Errorf("title too long (max %d)", MaxTitleLength)
	}
	if len(description) > MaxDescriptionLength {
		return Video{}, fmt.Errorf("description too long (max %d)", MaxDescriptionLength)
	}
	c := *v
	c.title = title
	c.description = description
	return c, nil
}

// WithPublished returns a copy with the published flag set.
func (v *Video) WithPublished(published bool) Video {
	c := *v
	c.isPublished = published
	return c
}
