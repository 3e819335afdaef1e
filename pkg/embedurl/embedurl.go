// Package embedurl resolves arbitrary video URLs into embeddable player
// targets. Resolution is pure: no network access, and a URL that matches
// nothing is a normal result, not an error.
package embedurl

import "fmt"

type Platform string

const (
	PlatformYouTube Platform = "youtube"
	PlatformUnknown Platform = "unknown"
)

// youtubeIdLength is the canonical length of a YouTube video id. An
// extraction of any other length is treated as no match.
const youtubeIdLength = 11

// youtubeEmbedParams suppresses related-video suggestions, branding, the
// on-screen info panel and keyboard shortcuts while keeping controls and
// fullscreen available.
const youtubeEmbedParams = "rel=0&modestbranding=1&controls=1&showinfo=0&fs=1&disablekb=1&iv_load_policy=3"

type Result struct {
	Platform Platform
	VideoId  string
	EmbedURL string
}

// Resolve classifies rawURL and, for a recognized platform, constructs the
// embeddable target URL. Empty or malformed input yields PlatformUnknown.
func Resolve(rawURL string) Result {
	if rawURL == "" {
		return Result{Platform: PlatformUnknown}
	}

	for _, m := range matchers {
		id, ok := m.extract(rawURL)
		if !ok {
			continue
		}

		if len(id) != youtubeIdLength {
			continue
		}

		return Result{
			Platform: m.platform,
			VideoId:  id,
			EmbedURL: fmt.Sprintf("https://www.youtube.com/embed/%s?%s", id, youtubeEmbedParams),
		}
	}

	return Result{Platform: PlatformUnknown}
}
