package videometa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const watchPage = `<!DOCTYPE html>
<html>
<head>
<title>Some Video Title</title>
<link itemprop="name" content="Some Channel">
</head>
<body></body>
</html>`

func newTestClient(t *testing.T, oembedStatus int) *Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oembed", func(w http.ResponseWriter, r *http.Request) {
		if oembedStatus != http.StatusOK {
			w.WriteHeader(oembedStatus)
			return
		}
		json.NewEncoder(w).Encode(VideoMeta{
			Title:        "Oembed Title",
			AuthorName:   "Oembed Channel",
			ThumbnailURL: "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
		})
	})
	mux.HandleFunc("/watch/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, watchPage)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return NewClient(WithBaseURLs(server.URL+"/oembed", server.URL+"/watch", server.URL+"/thumb"))
}

func TestGetFromOembed(t *testing.T) {
	c := newTestClient(t, http.StatusOK)

	meta, err := c.Get(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "Oembed Title", meta.Title)
	assert.Equal(t, "Oembed Channel", meta.AuthorName)
}

func TestGetFallsBackToWatchPage(t *testing.T) {
	c := newTestClient(t, http.StatusUnauthorized)

	meta, err := c.Get(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "Some Video Title", meta.Title)
	assert.Equal(t, "Some Channel", meta.AuthorName)
	assert.Contains(t, meta.ThumbnailURL, "dQw4w9WgXcQ/hqdefault.jpg")
}

func TestGetVideoNotFound(t *testing.T) {
	c := newTestClient(t, http.StatusNotFound)

	_, err := c.Get(context.Background(), "dQw4w9WgXcQ")
	require.ErrorIs(t, err, ErrVideoNotFound)
}
