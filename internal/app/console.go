package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/clipcast/client/internal/domain"
	"github.com/clipcast/client/internal/gateway/rest"
	"github.com/clipcast/client/internal/player"
	"github.com/clipcast/client/internal/store"
	"github.com/clipcast/client/pkg/embedurl"
	"github.com/clipcast/client/pkg/validator"
	"github.com/clipcast/client/pkg/videometa"
)

// console is the interactive surface over the store and the playback
// controller. It only ever reads store snapshots and issues commands, the
// store stays the single writer of canonical state.
type console struct {
	store    *store.Store
	gw       *rest.Client
	meta     *videometa.Client
	validate *validator.Validator
	userId   string
	logger   *slog.Logger

	in  io.Reader
	out io.Writer

	// playback exists only while a video is selected, mirroring a player
	// surface mounting and unmounting.
	playback *player.Controller
}

func newConsole(videoStore *store.Store, gw *rest.Client, userId string, in io.Reader, out io.Writer, logger *slog.Logger) *console {
	return &console{
		store:    videoStore,
		gw:       gw,
		meta:     videometa.NewClient(),
		validate: validator.NewValidator(),
		userId:   userId,
		logger:   logger,
		in:       in,
		out:      out,
	}
}

func (c *console) run(ctx context.Context) error {
	if err := c.store.RefreshCatalog(ctx); err != nil {
		c.logger.InfoContext(ctx, "initial catalog refresh failed", "error", err)
	}
	c.cmdList()

	fmt.Fprintln(c.out, `type "help" for commands`)

	// Input is read on its own goroutine so a cancelled context stops the
	// console without waiting for another line on stdin. The reader
	// goroutine stays blocked on the final read, the process is exiting
	// anyway.
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		readErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(c.out, "> ")

		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			return err
		case text := <-lines:
			line := strings.TrimSpace(text)
			if line == "" {
				continue
			}
			if line == "quit" || line == "exit" {
				return nil
			}

			c.dispatch(ctx, line)
		}
	}
}

func (c *console) dispatch(ctx context.Context, line string) {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "help":
		c.cmdHelp()
	case "list":
		c.cmdList()
	case "refresh":
		if err := c.store.RefreshCatalog(ctx); err != nil {
			c.printStoreError()
			return
		}
		c.cmdList()
	case "select":
		c.cmdSelect(ctx, rest)
	case "deselect":
		c.store.ClearSelection()
		c.playback = nil
		fmt.Fprintln(c.out, "selection cleared")
	case "show":
		c.cmdShow(ctx, rest)
	case "comments":
		c.cmdComments()
	case "comment":
		c.cmdComment(ctx, rest)
	case "add":
		c.cmdAdd(ctx, rest)
	case "edit":
		c.cmdEdit(ctx, rest)
	case "embed":
		c.cmdEmbed()
	case "info":
		c.cmdInfo(ctx)
	case "play", "pause":
		c.withPlayback(func(p *player.Controller) {
			c.printPlaybackState(p.TogglePlayPause())
		})
	case "volume":
		c.cmdVolume(rest)
	case "mute":
		c.withPlayback(func(p *player.Controller) {
			c.printPlaybackState(p.ToggleMute())
		})
	case "rate":
		c.cmdRate(rest)
	case "fullscreen":
		c.withPlayback(func(p *player.Controller) {
			if err := p.ToggleFullscreen(); err != nil {
				fmt.Fprintf(c.out, "fullscreen failed: %v\n", err)
			}
		})
	case "state":
		c.withPlayback(func(p *player.Controller) {
			c.printPlaybackState(p.State())
		})
	default:
		fmt.Fprintf(c.out, "unknown command %q, type \"help\"\n", cmd)
	}
}

func (c *console) cmdHelp() {
	fmt.Fprintln(c.out, `commands:
  list                               show the catalog
  refresh                            refetch the catalog
  select <n>                         select the n-th listed video
  deselect                           clear the selection
  show <n>                           fetch one video from the remote store
  comments                           show the selected video's comments
  comment <text>                     add a comment to the selected video
  add <title> | <url> [| <desc>]     create a video
  edit <title> | <desc>              edit the selected video
  embed                              print the selected video's embed url
  info                               look up title/author/thumbnail
  play | pause | mute | fullscreen   playback controls
  volume <0..1>                      set the volume
  rate <r>                           set the playback rate
  state                              print playback state
  quit`)
}

func (c *console) cmdList() {
	state := c.store.State()
	if state.Error != "" {
		fmt.Fprintf(c.out, "error: %s\n", state.Error)
	}
	if len(state.Videos) == 0 {
		fmt.Fprintln(c.out, "no videos")
		return
	}
	for i, v := range state.Videos {
		marker := " "
		if state.Selected != nil && state.Selected.Id == v.Id {
			marker = "*"
		}
		fmt.Fprintf(c.out, "%s %2d. %s (%s)\n", marker, i+1, v.Title, v.VideoURL)
	}
}

func (c *console) videoAt(arg string) (domain.Video, bool) {
	state := c.store.State()
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(state.Videos) {
		fmt.Fprintf(c.out, "pick a number between 1 and %d\n", len(state.Videos))
		return domain.Video{}, false
	}
	return state.Videos[n-1], true
}

func (c *console) cmdSelect(ctx context.Context, arg string) {
	v, ok := c.videoAt(arg)
	if !ok {
		return
	}

	if err := c.store.SelectVideo(ctx, v); err != nil {
		c.printStoreError()
	}

	// The player surface mounts with the selection: fresh session state.
	c.playback = player.NewController(&consoleSurface{logger: c.logger})

	fmt.Fprintf(c.out, "selected %q\n", v.Title)
	c.cmdComments()
}

func (c *console) cmdShow(ctx context.Context, arg string) {
	v, ok := c.videoAt(arg)
	if !ok {
		return
	}

	video, err := c.gw.GetVideo(ctx, v.Id)
	if err != nil {
		fmt.Fprintln(c.out, "failed to fetch video")
		return
	}

	fmt.Fprintf(c.out, "%s\n  url: %s\n  by:  %s\n  %s\n", video.Title, video.VideoURL, video.UserId, video.Description)
}

func (c *console) cmdComments() {
	state := c.store.State()
	if state.Selected == nil {
		fmt.Fprintln(c.out, "no video selected")
		return
	}
	if len(state.Comments) == 0 {
		fmt.Fprintln(c.out, "no comments yet")
		return
	}
	for _, comment := range state.Comments {
		fmt.Fprintf(c.out, "  %s: %s\n", comment.UserId, comment.Content)
	}
}

type commentForm struct {
	Content string `json:"content" validate:"required,max=1000"`
}

func (c *console) cmdComment(ctx context.Context, text string) {
	form := commentForm{Content: text}
	if validationErrors, ok := c.validate.Validate(form); !ok {
		c.printValidationErrors(validationErrors)
		return
	}

	if err := c.store.AddComment(ctx, form.Content, c.userId); err != nil {
		c.printStoreError()
		fmt.Fprintf(c.out, "your comment was kept, retry with: comment %s\n", text)
		return
	}

	c.cmdComments()
}

type videoForm struct {
	Title       string `json:"title" validate:"required,max=100"`
	VideoURL    string `json:"video_url" validate:"required,url"`
	Description string `json:"description" validate:"max=1000"`
}

func (c *console) cmdAdd(ctx context.Context, rest string) {
	parts := strings.SplitN(rest, "|", 3)
	if len(parts) < 2 {
		fmt.Fprintln(c.out, "usage: add <title> | <url> [| <description>]")
		return
	}

	form := videoForm{
		Title:    strings.TrimSpace(parts[0]),
		VideoURL: strings.TrimSpace(parts[1]),
	}
	if len(parts) == 3 {
		form.Description = strings.TrimSpace(parts[2])
	}

	if validationErrors, ok := c.validate.Validate(form); !ok {
		c.printValidationErrors(validationErrors)
		return
	}

	if err := c.store.CreateVideo(ctx, &store.CreateVideoParams{
		Title:       form.Title,
		Description: form.Description,
		VideoURL:    form.VideoURL,
	}); err != nil {
		c.printStoreError()
		fmt.Fprintf(c.out, "your input was kept, retry with: add %s\n", rest)
		return
	}

	c.cmdList()
}

func (c *console) cmdEdit(ctx context.Context, rest string) {
	state := c.store.State()
	if state.Selected == nil {
		fmt.Fprintln(c.out, "no video selected")
		return
	}

	parts := strings.SplitN(rest, "|", 2)
	title := strings.TrimSpace(parts[0])
	description := state.Selected.Description
	if len(parts) == 2 {
		description = strings.TrimSpace(parts[1])
	}

	if title == "" {
		fmt.Fprintln(c.out, "usage: edit <title> [| <description>]")
		return
	}

	if err := c.store.EditVideo(ctx, state.Selected.Id, &store.EditVideoParams{
		Title:       title,
		Description: description,
	}); err != nil {
		c.printStoreError()
		fmt.Fprintf(c.out, "your input was kept, retry with: edit %s\n", rest)
		return
	}

	c.cmdList()
}

func (c *console) cmdEmbed() {
	state := c.store.State()
	if state.Selected == nil {
		fmt.Fprintln(c.out, "no video selected")
		return
	}

	result := embedurl.Resolve(state.Selected.VideoURL)
	if result.Platform == embedurl.PlatformUnknown {
		fmt.Fprintln(c.out, "no embeddable source")
		return
	}

	fmt.Fprintln(c.out, result.EmbedURL)
}

func (c *console) cmdInfo(ctx context.Context) {
	state := c.store.State()
	if state.Selected == nil {
		fmt.Fprintln(c.out, "no video selected")
		return
	}

	result := embedurl.Resolve(state.Selected.VideoURL)
	if result.Platform == embedurl.PlatformUnknown {
		fmt.Fprintln(c.out, "no embeddable source")
		return
	}

	meta, err := c.meta.Get(ctx, result.VideoId)
	if err != nil {
		fmt.Fprintln(c.out, "failed to look up video metadata")
		c.logger.InfoContext(ctx, "failed to look up video metadata", "error", err)
		return
	}

	fmt.Fprintf(c.out, "%s\n  by:        %s\n  thumbnail: %s\n", meta.Title, meta.AuthorName, meta.ThumbnailURL)
}

func (c *console) cmdVolume(arg string) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		fmt.Fprintln(c.out, "usage: volume <0..1>")
		return
	}

	c.withPlayback(func(p *player.Controller) {
		c.printPlaybackState(p.SetVolume(v))
	})
}

func (c *console) cmdRate(arg string) {
	r, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		fmt.Fprintf(c.out, "usage: rate <one of %v>\n", player.Rates)
		return
	}

	c.withPlayback(func(p *player.Controller) {
		state, err := p.SetRate(r)
		if err != nil {
			fmt.Fprintf(c.out, "rate must be one of %v\n", player.Rates)
			return
		}
		c.printPlaybackState(state)
	})
}

func (c *console) withPlayback(fn func(*player.Controller)) {
	if c.playback == nil {
		fmt.Fprintln(c.out, "no video selected")
		return
	}
	fn(c.playback)
}

func (c *console) printPlaybackState(state player.State) {
	playing := "paused"
	if state.Playing {
		playing = "playing"
	}
	muted := ""
	if state.Muted {
		muted = " (muted)"
	}
	fmt.Fprintf(c.out, "%s, volume %.2f%s, %gx\n", playing, state.Volume, muted, state.Rate)
}

func (c *console) printStoreError() {
	if msg := c.store.State().Error; msg != "" {
		fmt.Fprintf(c.out, "error: %s\n", msg)
	}
}

func (c *console) printValidationErrors(validationErrors []validator.ValidationError) {
	for _, validationError := range validationErrors {
		fmt.Fprintf(c.out, "invalid input: %s\n", validationError.Message)
	}
}
