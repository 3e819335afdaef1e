package videometa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

func (c *Client) getFromOembed(ctx context.Context, videoId string) (*VideoMeta, error) {
	watchLink := fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoId)
	reqURL := fmt.Sprintf("%s?url=%s", c.oembedURL, url.QueryEscape(watchLink))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		switch resp.StatusCode {
		case http.StatusBadRequest, http.StatusNotFound:
			return nil, ErrVideoNotFound
		case http.StatusUnauthorized, http.StatusForbidden:
			return nil, ErrVideoNotEmbeddable
		default:
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
	}

	var meta VideoMeta
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, fmt.Errorf("failed to decode oembed response: %w", err)
	}

	return &meta, nil
}
