package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/clipcast/client/internal/domain"
	"github.com/clipcast/client/internal/gateway"
)

// ListVideos fetches the full catalog scoped to userId. The remote store
// answers either with a bare array or with the list wrapped under a "videos"
// key, a body matching neither shape degrades to an empty list.
func (c *Client) ListVideos(ctx context.Context, userId string) ([]domain.Video, error) {
	query := url.Values{"user_id": {userId}}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/videos", query, nil, &raw); err != nil {
		c.logger.InfoContext(ctx, "failed to list videos", "error", err)
		return nil, gateway.ErrOperationFailed
	}

	return decodeList[domain.Video](ctx, c, raw, "videos"), nil
}

func (c *Client) GetVideo(ctx context.Context, videoId string) (domain.Video, error) {
	query := url.Values{"video_id": {videoId}}

	var video domain.Video
	if err := c.do(ctx, http.MethodGet, "/videos/single", query, nil, &video); err != nil {
		c.logger.InfoContext(ctx, "failed to get video", "error", err)
		return domain.Video{}, gateway.ErrOperationFailed
	}

	return video, nil
}

func (c *Client) CreateVideo(ctx context.Context, params *gateway.CreateVideoParams) (domain.Video, error) {
	body := map[string]string{
		"user_id":     params.UserId,
		"title":       params.Title,
		"description": params.Description,
		"video_url":   params.VideoURL,
	}

	var video domain.Video
	if err := c.do(ctx, http.MethodPost, "/videos", nil, body, &video); err != nil {
		c.logger.InfoContext(ctx, "failed to create video", "error", err)
		return domain.Video{}, gateway.ErrOperationFailed
	}

	return video, nil
}

// EditVideo updates title and description for an existing video. The remote
// contract requires user_id in the body even though it is not editable.
func (c *Client) EditVideo(ctx context.Context, params *gateway.EditVideoParams) (domain.Video, error) {
	body := map[string]string{
		"video_id":    params.VideoId,
		"user_id":     params.UserId,
		"title":       params.Title,
		"description": params.Description,
	}

	var video domain.Video
	if err := c.do(ctx, http.MethodPut, "/videos", nil, body, &video); err != nil {
		c.logger.InfoContext(ctx, "failed to edit video", "error", err)
		return domain.Video{}, gateway.ErrOperationFailed
	}

	return video, nil
}

// decodeList accepts either a bare JSON array or an object wrapping the
// array under wrapKey. Anything else is logged and treated as empty.
func decodeList[T any](ctx context.Context, c *Client, raw json.RawMessage, wrapKey string) []T {
	var list []T
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		if inner, ok := wrapped[wrapKey]; ok {
			if err := json.Unmarshal(inner, &list); err == nil {
				return list
			}
		}
	}

	c.logger.InfoContext(ctx, "unexpected response shape", "key", wrapKey)
	return []T{}
}
