package comment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cliphaven/clipdex/internal/domain"
	domcom "github.com/cliphaven/clipdex/internal/domain/comment"
)

// Service handles the comment lifecycle.
type Service struct {
	store  Store
	videos VideoReader

	now   func() int64
	newID func() string
}

// New creates a comment service.
func New(store Store, videos VideoReader) *Service {
	return &Service{
		store:  store,
		videos: videos,
		now:    func() int64 { return time.Now().UnixMilli() },
		newID:  uuid.NewString,
	}
}

// Add creates a comment under a video. The parent must exist.
func (s *Service) Add(ctx context.Context, videoID, ownerID, content string) (domcom.Comment, error) {
	if _, err := s.videos.Get(ctx, videoID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domcom.Comment{}, domain.ErrNotFound
		}
		return domcom.Comment{}, domain.NewUpstream("video store", err)
	}

	c, err := domcom.New(s.newID(), ownerID, videoID, content, s.now())
	if err != nil {
		return domcom.Comment{}, fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
	}

	if err := s.store.Upsert(ctx, &c); err != nil {
		return domcom.Comment{}, domain.NewUpstream("comment store", err)
	}
	return c, nil
}

// Update replaces a comment's content. Owner only.
func (s *Service) Update(ctx context.Context, id, requesterID, content string) (domcom.Comment, error) {
	c, err := s.fetchOwned(ctx, id, requesterID)
	if err != nil {
		return domcom.Comment{}, err
	}

	updated, err := c.WithContent(content)
	if err != nil {
		return domcom.Comment{}, fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
	}

	if err := s.store.Upsert(ctx, &updated); err != nil {
		return domcom.Comment{}, domain.NewUpstream("comment store", err)
	}
	return updated, nil
}

// Delete removes a comment. Owner only.
func (s *Service) Delete(ctx context.Context, id, requesterID string) error {
	if _, err := s.fetchOwned(ctx, id, requesterID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return domain.NewUpstream("comment store", err)
	}
	return nil
}

func (s *Service) fetchOwned(ctx context.Context, id, requesterID string) (domcom.Comment, error) {
	c, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domcom.Comment{}, domain.ErrNotFound
		}
		return domcom.Comment{}, domain.NewUpstream("comment store", err)
	}
	if c.OwnerID() != requesterID {
		return domcom.Comment{}, domain.ErrForbidden
	}
	return c, nil
}
