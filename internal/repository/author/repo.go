// Package author reads user records written by the account subsystem.
// The listing service only denormalizes them, so the repository is
// read-only.
package author

import (
	"context"
	"fmt"

	"github.com/cliphaven/clipdex/internal/domain"
	domauth "github.com/cliphaven/clipdex/internal/domain/author"
)

// Hash field names of a stored user record.
const (
	fieldUsername  = "username"
	fieldFullName  = "full_name"
	fieldAvatarURL = "avatar_url"
)

// store is the consumer interface for user records (ISP).
type store interface {
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
}

// Repo implements the author lookup consumed by the usecase layer.
type Repo struct {
	store store
}

// New creates an author repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Lookup fetches author summaries for the given user IDs in one pipelined
// round-trip. Missing records hydrate to the deleted-user placeholder, so
// the result always has one entry per requested ID, keyed by ID.
func (r *Repo) Lookup(ctx context.Context, ids []string) (map[string]domauth.Summary, error) {
	if len(ids) == 0 {
		return map[string]domauth.Summary{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = userKey(id)
	}

	records, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	out := make(map[string]domauth.Summary, len(ids))
	for i, fields := range records {
		id := ids[i]
		if len(fields) == 0 {
			out[id] = domauth.Deleted(id)
			continue
		}
		out[id] = domauth.Reconstruct(id, fields[fieldUsername], fields[fieldFullName], fields[fieldAvatarURL])
	}
	return out, nil
}

func userKey(id string) string {
	return domain.KeyPrefix + "user:" + id
}
