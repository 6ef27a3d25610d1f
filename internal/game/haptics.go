package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/arrow-bubbles/internal/config"
)

// haptics buzzes the device on mobile and browsers, and every connected
// gamepad elsewhere. Platforms without either simply ignore the request.
type haptics struct {
	enabled   bool
	duration  time.Duration
	magnitude float64
	gamepads  []ebiten.GamepadID
	pulses    int
}

func newHaptics(cfg config.Haptics) *haptics {
	return &haptics{
		enabled:   cfg.Enabled && cfg.DurationMS > 0,
		duration:  time.Duration(cfg.DurationMS) * time.Millisecond,
		magnitude: cfg.Magnitude,
	}
}

func (h *haptics) Pulse() {
	if !h.enabled {
		return
	}
	h.pulses++

	ebiten.Vibrate(&ebiten.VibrateOptions{
		Duration:  h.duration,
		Magnitude: h.magnitude,
	})

	h.gamepads = ebiten.AppendGamepadIDs(h.gamepads[:0])
	for _, id := range h.gamepads {
		ebiten.VibrateGamepad(id, &ebiten.VibrateGamepadOptions{
			Duration:        h.duration,
			StrongMagnitude: h.magnitude,
			WeakMagnitude:   h.magnitude / 2,
		})
	}
}
