// Package gateway defines the boundary to the remote video store. Transport
// failures never cross this boundary as-is, every implementation collapses
// them into ErrOperationFailed.
package gateway

import "errors"

var ErrOperationFailed = errors.New("operation failed")

type CreateVideoParams struct {
	UserId      string
	Title       string
	Description string
	VideoURL    string
}

type EditVideoParams struct {
	VideoId     string
	UserId      string
	Title       string
	Description string
}

type CreateCommentParams struct {
	VideoId string
	UserId  string
	Content string
}
