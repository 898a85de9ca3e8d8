package video

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cliphaven/clipdex/internal/domain"
	domauth "github.com/cliphaven/clipdex/internal/domain/author"
	domvid "github.com/cliphaven/clipdex/internal/domain/video"
)

// Service handles the video record lifecycle.
type Service struct {
	store   Store
	authors AuthorLookup

	now   func() int64
	newID func() string
}

// New creates a video service.
func New(store Store, authors AuthorLookup) *Service {
	return &Service{
		store:   store,
		authors: authors,
		now:     func() int64 { return time.Now().UnixMilli() },
		newID:   uuid.NewString,
	}
}

// Publish creates a new published video owned by the requester.
func (s *Service) Publish(
	ctx context.Context, ownerID, title, description, videoURL, thumbnailURL string, duration float64,
) (domvid.Video, error) {
	v, err := domvid.New(s.newID(), ownerID, title, description, videoURL, thumbnailURL, duration, s.now())
	if err != nil {
		return domvid.Video{}, fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
	}

	if err := s.store.Upsert(ctx, &v); err != nil {
		return domvid.Video{}, domain.NewUpstream("video store", err)
	}
	return v, nil
}

// Get returns a video with its author. Unpublished videos are visible to
// their owner only; everyone else sees not-found rather than forbidden, so
// existence does not leak.
func (s *Service) Get(ctx context.Context, id, requesterID string) (domvid.Video, domauth.Summary, error) {
	v, err := s.fetch(ctx, id)
	if err != nil {
		return domvid.Video{}, domauth.Summary{}, err
	}
	if !v.IsPublished() && v.OwnerID() != requesterID {
		return domvid.Video{}, domauth.Summary{}, domain.ErrNotFound
	}

	authors, err := s.authors.Lookup(ctx, []string{v.OwnerID()})
	if err != nil {
		return domvid.Video{}, domauth.Summary{}, domain.NewUpstream("author lookup", err)
	}
	return v, authors[v.OwnerID()], nil
}

// UpdateDetails replaces title and description. Owner only.
func (s *Service) UpdateDetails(ctx context.Context, id, requesterID, title, description string) (domvid.Video, error) {
	v, err := s.fetchOwned(ctx, id, requesterID)
	if err != nil {
		return domvid.Video{}, err
	}

	updated, err := v.WithDetails(title, description)
	if err != nil {
		return domvid.Video{}, fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
	}

	if err := s.store.Upsert(ctx, &updated); err != nil {
		return domvid.Video{}, domain.NewUpstream("video store", err)
	}
	return updated, nil
}

// TogglePublish flips the published flag. Owner only.
func (s *Service) TogglePublish(ctx context.Context, id, requesterID string) (domvid.Video, error) {
	v, err := s.fetchOwned(ctx, id, requesterID)
	if err != nil {
		return domvid.Video{}, err
	}

	updated := v.WithPublished(!v.IsPublished())
	if err := s.store.Upsert(ctx, &updated); err != nil {
		return domvid.Video{}, domain.NewUpstream("video store", err)
	}
	return updated, nil
}

// Delete removes a video. Owner only.
func (s *Service) Delete(ctx context.Context, id, requesterID string) error {
	if _, err := s.fetchOwned(ctx, id, requesterID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return domain.NewUpstream("video store", err)
	}
	return nil
}

// AddView bumps the view counter and returns the new count.
func (s *Service) AddView(ctx context.Context, id string) (int64, error) {
	n, err := s.store.IncrementViews(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrNotFound
		}
		return 0, domain.NewUpstream("video store", err)
	}
	return n, nil
}

func (s *Service) fetch(ctx context.Context, id string) (domvid.Video, error) {
	v, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domvid.Video{}, domain.ErrNotFound
		}
		return domvid.Video{}, domain.NewUpstream("video store", err)
	}
	return v, nil
}

func (s *Service) fetchOwned(ctx context.Context, id, requesterID string) (domvid.Video, error) {
	v, err := s.fetch(ctx, id)
	if err != nil {
		return domvid.Video{}, err
	}
	if v.OwnerID() != requesterID {
		return domvid.Video{}, domain.ErrForbidden
	}
	return v, nil
}
