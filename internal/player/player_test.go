package player

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	fullscreen bool
	failNext   error
	requests   int
	exits      int
}

func (s *fakeSurface) IsFullscreen() bool {
	return s.fullscreen
}

func (s *fakeSurface) RequestFullscreen() error {
	if s.failNext != nil {
		return s.failNext
	}
	s.requests++
	s.fullscreen = true
	return nil
}

func (s *fakeSurface) ExitFullscreen() error {
	if s.failNext != nil {
		return s.failNext
	}
	s.exits++
	s.fullscreen = false
	return nil
}

func TestInitialState(t *testing.T) {
	c := NewController(&fakeSurface{})

	state := c.State()
	assert.False(t, state.Playing)
	assert.Equal(t, 0.8, state.Volume)
	assert.False(t, state.Muted)
	assert.Equal(t, 1.0, state.Rate)
}

func TestTogglePlayPause(t *testing.T) {
	c := NewController(&fakeSurface{})

	assert.True(t, c.TogglePlayPause().Playing)
	assert.False(t, c.TogglePlayPause().Playing)
}

func TestSetVolumeDerivesMuted(t *testing.T) {
	c := NewController(&fakeSurface{})

	state := c.SetVolume(0)
	assert.True(t, state.Muted, "zero volume must mute")

	state = c.SetVolume(0.5)
	assert.False(t, state.Muted, "non-zero volume must unmute")
	assert.Equal(t, 0.5, state.Volume)

	// Previously muted by hand, raising the volume still unmutes.
	c.ToggleMute()
	state = c.SetVolume(0.3)
	assert.False(t, state.Muted)
}

func TestSetVolumeClamps(t *testing.T) {
	c := NewController(&fakeSurface{})

	state := c.SetVolume(1.5)
	assert.Equal(t, 1.0, state.Volume)
	assert.False(t, state.Muted)

	state = c.SetVolume(-0.5)
	assert.Equal(t, 0.0, state.Volume)
	assert.True(t, state.Muted, "clamping to zero must mute")
}

func TestToggleMutePreservesVolume(t *testing.T) {
	c := NewController(&fakeSurface{})
	c.SetVolume(0.6)

	state := c.ToggleMute()
	assert.True(t, state.Muted)
	assert.Equal(t, 0.6, state.Volume, "muting must not alter the stored volume")

	state = c.ToggleMute()
	assert.False(t, state.Muted, "toggling twice must restore the original value")
	assert.Equal(t, 0.6, state.Volume)
}

func TestSetRate(t *testing.T) {
	c := NewController(&fakeSurface{})

	for _, rate := range Rates {
		state, err := c.SetRate(rate)
		require.NoError(t, err)
		assert.Equal(t, rate, state.Rate)
	}

	state, err := c.SetRate(3.0)
	require.ErrorIs(t, err, ErrInvalidRate)
	assert.Equal(t, 2.0, state.Rate, "a rejected rate must leave the state unchanged")
}

func TestToggleFullscreen(t *testing.T) {
	surface := &fakeSurface{}
	c := NewController(surface)

	require.NoError(t, c.ToggleFullscreen())
	assert.Equal(t, 1, surface.requests)

	require.NoError(t, c.ToggleFullscreen())
	assert.Equal(t, 1, surface.exits)
}

func TestToggleFullscreenFailureLeavesStateAlone(t *testing.T) {
	surface := &fakeSurface{failNext: errors.New("denied by environment")}
	c := NewController(surface)
	before := c.State()

	require.Error(t, c.ToggleFullscreen())
	assert.Equal(t, before, c.State())
}
