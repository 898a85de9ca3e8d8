package chi

import (
	"time"

	domauth "github.com/cliphaven/clipdex/internal/domain/author"
	domcom "github.com/cliphaven/clipdex/internal/domain/comment"
	"github.com/cliphaven/clipdex/internal/domain/listing/page"
	domvid "github.com/cliphaven/clipdex/internal/domain/video"
	listinguc "github.com/cliphaven/clipdex/internal/usecase/listing"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// pageEnvelope is the listing response. The metadata field names are a
// stable contract with existing clients and must not change.
type pageEnvelope[T any] struct {
	Items         []T  `json:"items"`
	TotalDocs     int  `json:"totalDocs"`
	Limit         int  `json:"limit"`
	Page          int  `json:"page"`
	TotalPages    int  `json:"totalPages"`
	PagingCounter int  `json:"pagingCounter"`
	HasPrevPage   bool `json:"hasPrevPage"`
	HasNextPage   bool `json:"hasNextPage"`
	PrevPage      *int `json:"prevPage"`
	NextPage      *int `json:"nextPage"`
}

type authorJSON struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"fullName,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type videoJSON struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	VideoURL     string      `json:"videoUrl"`
	ThumbnailURL string      `json:"thumbnailUrl,omitempty"`
	Duration     float64     `json:"duration"`
	Views        int64       `json:"views"`
	IsPublished  bool        `json:"isPublished"`
	CreatedAt    time.Time   `json:"createdAt"`
	Owner        *authorJSON `json:"owner,omitempty"`
}

type commentJSON struct {
	ID        string      `json:"id"`
	VideoID   string      `json:"videoId"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"createdAt"`
	Owner     *authorJSON `json:"owner,omitempty"`
}

func authorToJSON(a domauth.Summary) *authorJSON {
	return &authorJSON{
		ID:        a.ID(),
		Username:  a.Username(),
		FullName:  a.FullName(),
		AvatarURL: a.AvatarURL(),
	}
}

func videoToJSON(v *domvid.Video, owner *authorJSON) videoJSON {
	return videoJSON{
		ID:           v.ID(),
		Title:        v.Title(),
		Description:  v.Description(),
		VideoURL:     v.VideoURL(),
		ThumbnailURL: v.ThumbnailURL(),
		Duration:     v.Duration(),
		Views:        v.Views(),
		IsPublished:  v.IsPublished(),
		CreatedAt:    time.UnixMilli(v.CreatedAt()).UTC(),
		Owner:        owner,
	}
}

func commentToJSON(c *domcom.Comment, owner *authorJSON) commentJSON {
	return commentJSON{
		ID:        c.ID(),
		VideoID:   c.VideoID(),
		Content:   c.Content(),
		CreatedAt: time.UnixMilli(c.CreatedAt()).UTC(),
		Owner:     owner,
	}
}

func videoPageToJSON(pg page.Page[listinguc.Item[*domvid.Video]]) pageEnvelope[videoJSON] {
	items := make([]videoJSON, len(pg.Items))
	for i, it := range pg.Items {
		items[i] = videoToJSON(it.Doc, authorToJSON(it.Author))
	}
	return envelope(pg, items)
}

func commentPageToJSON(pg page.Page[listinguc.Item[*domcom.Comment]]) pageEnvelope[commentJSON] {
	items := make([]commentJSON, len(pg.Items))
	for i, it := range pg.Items {
		items[i] = commentToJSON(it.Doc, authorToJSON(it.Author))
	}
	return envelope(pg, items)
}

func envelope[D any, T any](pg page.Page[D], items []T) pageEnvelope[T] {
	return pageEnvelope[T]{
		Items:         items,
		TotalDocs:     pg.TotalDocs,
		Limit:         pg.Limit,
		Page:          pg.Page,
		TotalPages:    pg.TotalPages,
		PagingCounter: pg.PagingCounter,
		HasPrevPage:   pg.HasPrevPage,
		HasNextPage:   pg.HasNextPage,
		PrevPage:      pg.PrevPage,
		NextPage:      pg.NextPage,
	}
}
