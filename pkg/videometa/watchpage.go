package videometa

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/net/html"
)

func (c *Client) getFromWatchPage(ctx context.Context, videoId string) (*VideoMeta, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.watchURL+"/"+videoId, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse watch page: %w", err)
	}

	return &VideoMeta{
		Title:        findTitle(doc),
		AuthorName:   findAuthorName(doc),
		ThumbnailURL: fmt.Sprintf("%s/%s/hqdefault.jpg", c.thumbURL, videoId),
	}, nil
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
		return n.FirstChild.Data
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if title := findTitle(child); title != "" {
			return title
		}
	}

	return ""
}

// findAuthorName walks the document for the <link itemprop="name"
// content="..."> element the watch page carries for the channel name.
func findAuthorName(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "link" {
		isName := false
		content := ""
		for _, attr := range n.Attr {
			switch attr.Key {
			case "itemprop":
				if attr.Val == "name" {
					isName = true
				}
			case "content":
				content = attr.Val
			}
		}
		if isName {
			return content
		}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if name := findAuthorName(child); name != "" {
			return name
		}
	}

	return ""
}
