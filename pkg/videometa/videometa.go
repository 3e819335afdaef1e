// Package videometa looks up display metadata (title, author, thumbnail)
// for a YouTube video id, trying the oEmbed endpoint first and falling back
// to scraping the watch page for videos that are not embeddable.
package videometa

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrVideoNotFound      = errors.New("video not found")
	ErrVideoNotEmbeddable = errors.New("video is not embeddable")
)

type VideoMeta struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

type Client struct {
	httpClient *http.Client
	oembedURL  string
	watchURL   string
	thumbURL   string
}

type Option func(*Client)

// WithBaseURLs overrides the remote endpoints, primarily for tests.
func WithBaseURLs(oembedURL, watchURL, thumbURL string) Option {
	return func(c *Client) {
		c.oembedURL = oembedURL
		c.watchURL = watchURL
		c.thumbURL = thumbURL
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		oembedURL:  "https://www.youtube.com/oembed",
		watchURL:   "https://youtu.be",
		thumbURL:   "https://i.ytimg.com/vi",
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get fetches metadata for videoId. Non-embeddable videos fall back to the
// watch page, every other oEmbed failure is returned as-is.
func (c *Client) Get(ctx context.Context, videoId string) (*VideoMeta, error) {
	meta, err := c.getFromOembed(ctx, videoId)
	if err != nil {
		if !errors.Is(err, ErrVideoNotEmbeddable) {
			return nil, fmt.Errorf("failed to get video metadata from oembed: %w", err)
		}

		meta, err = c.getFromWatchPage(ctx, videoId)
		if err != nil {
			return nil, fmt.Errorf("failed to get video metadata from watch page: %w", err)
		}
	}

	return meta, nil
}
