package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/clipcast/client/internal/domain"
	"github.com/clipcast/client/internal/gateway"
)

// ListComments fetches all comments scoped to videoId. Same shape tolerance
// as ListVideos, with the wrapped form keyed by "comments".
func (c *Client) ListComments(ctx context.Context, videoId string) ([]domain.Comment, error) {
	query := url.Values{"video_id": {videoId}}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/videos/comments", query, nil, &raw); err != nil {
		c.logger.InfoContext(ctx, "failed to list comments", "error", err)
		return nil, gateway.ErrOperationFailed
	}

	return decodeList[domain.Comment](ctx, c, raw, "comments"), nil
}

func (c *Client) CreateComment(ctx context.Context, params *gateway.CreateCommentParams) (domain.Comment, error) {
	body := map[string]string{
		"user_id":  params.UserId,
		"content":  params.Content,
		"video_id": params.VideoId,
	}

	var comment domain.Comment
	if err := c.do(ctx, http.MethodPost, "/videos/comments", nil, body, &comment); err != nil {
		c.logger.InfoContext(ctx, "failed to create comment", "error", err)
		return domain.Comment{}, gateway.ErrOperationFailed
	}

	return comment, nil
}
