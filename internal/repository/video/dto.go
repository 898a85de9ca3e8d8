package video

import (
	"strconv"
	"strings"

	"github.com/cliphaven/clipdex/internal/domain"
	"github.com/cliphaven/clipdex/internal/domain/listing/predicate"
	domvid "github.com/cliphaven/clipdex/internal/domain/video"
)

// Hash field names of a stored video record.
const (
	fieldTitle        = "title"
	fieldDescription  = "description"
	fieldVideoURL     = "video_url"
	fieldThumbnailURL = "thumbnail_url"
	fieldDuration     = "duration"
	fieldViews        = "views"
	fieldCreatedAt    = "created_at"
)

func keyPrefix() string {
	return domain.KeyPrefix + "video:"
}

func videoKey(id string) string {
	return keyPrefix() + id
}

func indexName() string {
	return domain.KeyPrefix + "video:idx"
}

func idFromKey(key string) string {
	return strings.TrimPrefix(key, keyPrefix())
}

func fieldsFromVideo(v *domvid.Video) map[string]string {
	published := "0"
	if v.IsPublished() {
		published = "1"
	}
	return map[string]string{
		predicate.FieldOwner:     v.OwnerID(),
		predicate.FieldPublished: published,
		fieldTitle:               v.Title(),
		fieldDescription:         v.Description(),
		fieldVideoURL:            v.VideoURL(),
		fieldThumbnailURL:        v.ThumbnailURL(),
		fieldDuration:            strconv.FormatFloat(v.Duration(), 'f', -1, 64),
		fieldViews:               strconv.FormatInt(v.Views(), 10),
		fieldCreatedAt:           strconv.FormatInt(v.CreatedAt(), 10),
	}
}

func videoFromFields(id string, fields map[string]string) domvid.Video {
	duration, _ := strconv.ParseFloat(fields[fieldDuration], 64)
	views, _ := strconv.ParseInt(fields[fieldViews], 10, 64)
	createdAt, _ := strconv.ParseInt(fields[fieldCreatedAt], 10, 64)

	return domvid.Reconstruct(
		id,
		fields[predicate.FieldOwner],
		fields[fieldTitle],
		fields[fieldDescription],
		fields[fieldVideoURL],
		fields[fieldThumbnailURL],
		duration,
		views,
		fields[predicate.FieldPublished] == "1",
		createdAt,
	)
}
