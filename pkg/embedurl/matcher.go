package embedurl

import "regexp"

// matcher pairs a platform with an extractor for one known URL shape.
// Matchers are evaluated in order, the first one yielding an id of the
// platform's canonical length wins.
type matcher struct {
	platform Platform
	pattern  *regexp.Regexp
}

func (m matcher) extract(rawURL string) (string, bool) {
	match := m.pattern.FindStringSubmatch(rawURL)
	if match == nil {
		return "", false
	}

	return match[1], true
}

// YouTube URL shapes: short links, canonical watch links, embed links,
// bare /v/ links and channel-relative /u/<section>/ links.
var matchers = []matcher{
	{PlatformYouTube, regexp.MustCompile(`youtu\.be/([^#&?/]+)`)},
	{PlatformYouTube, regexp.MustCompile(`youtube\.com/watch\?(?:[^#]*&)?v=([^#&?/]+)`)},
	{PlatformYouTube, regexp.MustCompile(`youtube\.com/embed/([^#&?/]+)`)},
	{PlatformYouTube, regexp.MustCompile(`youtube\.com/v/([^#&?/]+)`)},
	{PlatformYouTube, regexp.MustCompile(`youtube\.com/u/\w/([^#&?/]+)`)},
}
