// Package player holds the per-surface playback control state machine. The
// state is ephemeral: a controller is created when a player surface mounts
// and discarded with it, nothing here is persisted or tied to a video
// identity.
package player

import (
	"errors"
	"fmt"
	"sync"
)

var ErrInvalidRate = errors.New("invalid playback rate")

// Rates is the full set of accepted playback rates.
var Rates = []float64{0.5, 0.75, 1.0, 1.25, 1.5, 2.0}

// Surface is the host environment's fullscreen capability. A denied request
// is reported by the surface and leaves playback state untouched.
type Surface interface {
	IsFullscreen() bool
	RequestFullscreen() error
	ExitFullscreen() error
}

type State struct {
	Playing bool    `json:"playing"`
	Volume  float64 `json:"volume"`
	Muted   bool    `json:"muted"`
	Rate    float64 `json:"rate"`
}

type Controller struct {
	surface Surface

	mu    sync.Mutex
	state State
}

func NewController(surface Surface) *Controller {
	return &Controller{
		surface: surface,
		state: State{
			Playing: false,
			Volume:  0.8,
			Muted:   false,
			Rate:    1.0,
		},
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// TogglePlayPause flips between playing and paused. Always legal.
func (c *Controller) TogglePlayPause() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Playing = !c.state.Playing

	return c.state
}

// SetVolume sets the volume, clamping v into [0,1]. Muted is derived here
// and nowhere else: zero volume means muted, anything above it unmutes.
func (c *Controller) SetVolume(v float64) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	c.state.Volume = v
	c.state.Muted = v == 0

	return c.state
}

// ToggleMute flips muted without touching the stored volume, so unmuting
// restores the prior level.
func (c *Controller) ToggleMute() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Muted = !c.state.Muted

	return c.state
}

// SetRate rejects any rate outside Rates.
func (c *Controller) SetRate(r float64) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	valid := false
	for _, rate := range Rates {
		if r == rate {
			valid = true
			break
		}
	}
	if !valid {
		return c.state, fmt.Errorf("%w: %v", ErrInvalidRate, r)
	}

	c.state.Rate = r

	return c.state, nil
}

// ToggleFullscreen asks the surface to enter or leave fullscreen depending
// on where it currently is. Surface failure is returned as-is and playback
// state is unchanged either way.
func (c *Controller) ToggleFullscreen() error {
	if c.surface == nil {
		return errors.New("no fullscreen surface")
	}

	if c.surface.IsFullscreen() {
		if err := c.surface.ExitFullscreen(); err != nil {
			return fmt.Errorf("failed to exit fullscreen: %w", err)
		}
		return nil
	}

	if err := c.surface.RequestFullscreen(); err != nil {
		return fmt.Errorf("failed to enter fullscreen: %w", err)
	}

	return nil
}
