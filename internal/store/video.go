package store

import (
	"context"
	"fmt"

	"github.com/clipcast/client/internal/domain"
	"github.com/clipcast/client/internal/gateway"
)

// RefreshCatalog replaces the catalog wholesale with the remote store's
// current view. On failure the previous catalog is kept and the shared error
// is set; the loading flag clears either way.
func (s *Store) RefreshCatalog(ctx context.Context) error {
	s.beginOp()
	defer s.endOp()

	s.mu.Lock()
	s.catalogGen++
	gen := s.catalogGen
	s.mu.Unlock()

	videos, err := s.gateway.ListVideos(ctx, s.userId)
	if err != nil {
		s.logger.InfoContext(ctx, "failed to refresh catalog", "error", err)
		s.setError("failed to fetch videos")
		return fmt.Errorf("failed to refresh catalog: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A newer refresh was issued while this one was in flight.
	if gen != s.catalogGen {
		return nil
	}

	s.videos = videos
	s.errMsg = ""

	return nil
}

// SelectVideo makes v the current selection and refetches its comments.
// Selecting the already-selected video refetches as well, there is no
// memoization.
func (s *Store) SelectVideo(ctx context.Context, v domain.Video) error {
	s.mu.Lock()
	selected := v
	s.selected = &selected
	s.selectionGen++
	gen := s.selectionGen
	s.mu.Unlock()

	return s.fetchComments(ctx, v.Id, gen)
}

// ClearSelection drops the selection and empties the comment list without
// contacting the remote store.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = nil
	s.comments = nil
	s.selectionGen++
}

type CreateVideoParams struct {
	Title       string
	Description string
	VideoURL    string
}

// CreateVideo posts a new video and, on success, re-derives the catalog from
// the remote store. The new video is never inserted locally ahead of the
// round trip.
func (s *Store) CreateVideo(ctx context.Context, params *CreateVideoParams) error {
	s.beginOp()
	defer s.endOp()

	if _, err := s.gateway.CreateVideo(ctx, &gateway.CreateVideoParams{
		UserId:      s.userId,
		Title:       params.Title,
		Description: params.Description,
		VideoURL:    params.VideoURL,
	}); err != nil {
		s.logger.InfoContext(ctx, "failed to create video", "error", err)
		s.setError("failed to create video")
		return fmt.Errorf("failed to create video: %w", err)
	}

	// The write itself succeeded; a failing refresh reports through the
	// shared error flag without turning the create into a failure.
	_ = s.RefreshCatalog(ctx)

	return nil
}

type EditVideoParams struct {
	Title       string
	Description string
}

// EditVideo posts an update for videoId. On success the catalog is
// refreshed and, if the edited video is the current selection, the selection
// is replaced with the server-returned representation.
func (s *Store) EditVideo(ctx context.Context, videoId string, params *EditVideoParams) error {
	s.beginOp()
	defer s.endOp()

	updated, err := s.gateway.EditVideo(ctx, &gateway.EditVideoParams{
		VideoId:     videoId,
		UserId:      s.userId,
		Title:       params.Title,
		Description: params.Description,
	})
	if err != nil {
		s.logger.InfoContext(ctx, "failed to edit video", "error", err)
		s.setError("failed to update video")
		return fmt.Errorf("failed to edit video: %w", err)
	}

	_ = s.RefreshCatalog(ctx)

	s.mu.Lock()
	if s.selected != nil && s.selected.Id == videoId {
		selected := updated
		s.selected = &selected
	}
	s.mu.Unlock()

	return nil
}
