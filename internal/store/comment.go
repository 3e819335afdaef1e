package store

import (
	"context"
	"fmt"

	"github.com/clipcast/client/internal/gateway"
)

// FetchComments replaces the comment list with the remote store's comments
// for videoId. On failure the previous list is kept and the shared error is
// set.
func (s *Store) FetchComments(ctx context.Context, videoId string) error {
	s.mu.Lock()
	gen := s.selectionGen
	s.mu.Unlock()

	return s.fetchComments(ctx, videoId, gen)
}

// fetchComments commits its result only if the selection generation still
// matches gen, so a fetch outlived by a newer selection cannot overwrite
// that selection's comments.
func (s *Store) fetchComments(ctx context.Context, videoId string, gen uint64) error {
	s.beginOp()
	defer s.endOp()

	comments, err := s.gateway.ListComments(ctx, videoId)
	if err != nil {
		s.logger.InfoContext(ctx, "failed to fetch comments", "error", err, "video_id", videoId)
		s.setError("failed to fetch comments")
		return fmt.Errorf("failed to fetch comments: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.selectionGen {
		return nil
	}

	s.comments = comments
	s.errMsg = ""

	return nil
}

// AddComment posts content as a comment on the currently selected video and
// refetches that video's comments on success. With no selection it fails
// fast without contacting the remote store.
func (s *Store) AddComment(ctx context.Context, content, userId string) error {
	s.mu.Lock()
	if s.selected == nil {
		s.errMsg = "no video selected"
		s.mu.Unlock()
		return ErrNoVideoSelected
	}
	videoId := s.selected.Id
	gen := s.selectionGen
	s.mu.Unlock()

	s.beginOp()
	defer s.endOp()

	if _, err := s.gateway.CreateComment(ctx, &gateway.CreateCommentParams{
		VideoId: videoId,
		UserId:  userId,
		Content: content,
	}); err != nil {
		s.logger.InfoContext(ctx, "failed to add comment", "error", err, "video_id", videoId)
		s.setError("failed to add comment")
		return fmt.Errorf("failed to add comment: %w", err)
	}

	// The comment was accepted; a failing refetch reports through the
	// shared error flag only.
	_ = s.fetchComments(ctx, videoId, gen)

	return nil
}
