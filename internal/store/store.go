// Package store owns the canonical client state: the video catalog, the
// current selection, the selected video's comments and the shared
// loading/error pair. It is the single writer of that state, every other
// component either reads a snapshot or issues a command.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/clipcast/client/internal/domain"
	"github.com/clipcast/client/internal/gateway"
)

var ErrNoVideoSelected = errors.New("no video selected")

type iGateway interface {
	ListVideos(ctx context.Context, userId string) ([]domain.Video, error)
	CreateVideo(ctx context.Context, params *gateway.CreateVideoParams) (domain.Video, error)
	EditVideo(ctx context.Context, params *gateway.EditVideoParams) (domain.Video, error)
	ListComments(ctx context.Context, videoId string) ([]domain.Comment, error)
	CreateComment(ctx context.Context, params *gateway.CreateCommentParams) (domain.Comment, error)
}

type Store struct {
	gateway iGateway
	userId  string
	logger  *slog.Logger

	mu       sync.Mutex
	videos   []domain.Video
	selected *domain.Video
	comments []domain.Comment
	// inflight backs the single shared loading flag: the flag reads true
	// while at least one operation is outstanding.
	inflight int
	errMsg   string
	// Generation counters guard against stale completions. A fetch captures
	// the counter when it is issued and commits its result only if the
	// counter has not moved since.
	catalogGen   uint64
	selectionGen uint64
}

func NewStore(gw iGateway, userId string, logger *slog.Logger) *Store {
	return &Store{
		gateway: gw,
		userId:  userId,
		logger:  logger,
	}
}

// State is a point-in-time snapshot of the canonical state. Slices are
// copies, mutating them does not affect the store.
type State struct {
	Videos   []domain.Video
	Selected *domain.Video
	Comments []domain.Comment
	Loading  bool
	Error    string
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := State{
		Videos:   make([]domain.Video, len(s.videos)),
		Comments: make([]domain.Comment, len(s.comments)),
		Loading:  s.inflight > 0,
		Error:    s.errMsg,
	}
	copy(state.Videos, s.videos)
	copy(state.Comments, s.comments)

	if s.selected != nil {
		selected := *s.selected
		state.Selected = &selected
	}

	return state
}

func (s *Store) beginOp() {
	s.mu.Lock()
	s.inflight++
	s.mu.Unlock()
}

func (s *Store) endOp() {
	s.mu.Lock()
	s.inflight--
	s.mu.Unlock()
}

func (s *Store) setError(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
}
