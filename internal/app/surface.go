package app

import "log/slog"

// consoleSurface stands in for the host environment's fullscreen
// capability. A terminal has no real fullscreen, so it just tracks the
// requested state and logs the transitions.
type consoleSurface struct {
	logger     *slog.Logger
	fullscreen bool
}

func (s *consoleSurface) IsFullscreen() bool {
	return s.fullscreen
}

func (s *consoleSurface) RequestFullscreen() error {
	s.fullscreen = true
	s.logger.Debug("entered fullscreen")
	return nil
}

func (s *consoleSurface) ExitFullscreen() error {
	s.fullscreen = false
	s.logger.Debug("exited fullscreen")
	return nil
}
