package comment

import (
	"strconv"
	"strings"

	"github.com/cliphaven/clipdex/internal/domain"
	domcom "github.com/cliphaven/clipdex/internal/domain/comment"
	"github.com/cliphaven/clipdex/internal/domain/listing/predicate"
)

// Hash field names of a stored comment record.
const (
	fieldContent   = "content"
	fieldCreatedAt = "created_at"
)

func keyPrefix() string {
	return domain.KeyPrefix + "comment:"
}

func commentKey(id string) string {
	return keyPrefix() + id
}

func indexName() string {
	return domain.KeyPrefix + "comment:idx"
}

func idFromKey(key string) string {
	return strings.TrimPrefix(key, keyPrefix())
}

func fieldsFromComment(c *domcom.Comment) map[string]string {
	return map[string]string{
		predicate.FieldOwner:  c.OwnerID(),
		predicate.FieldParent: c.VideoID(),
		fieldContent:          c.Content(),
		fieldCreatedAt:        strconv.FormatInt(c.CreatedAt(), 10),
	}
}

func commentFromFields(id string, fields map[string]string) domcom.Comment {
	createdAt, _ := strconv.ParseInt(fields[fieldCreatedAt], 10, 64)

	return domcom.Reconstruct(
		id,
		fields[predicate.FieldOwner],
		fields[predicate.FieldParent],
		fields[fieldContent],
		createdAt,
	)
}
