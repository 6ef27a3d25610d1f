package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/arrow-bubbles/internal/config"
)

var rippleColor = color.RGBA{R: 90, G: 110, B: 150, A: 255}

// ripple is the expanding ring left by every press, whether or not it hit anything.
type ripple struct {
	x, y   float64
	radius float64
}

func (r ripple) alpha() float64 {
	return 1 - r.radius/config.RippleMaxRange
}

func (g *Game) addRipple(x, y float64) {
	g.ripples = append(g.ripples, ripple{x: x, y: y})
}

func (g *Game) updateRipples() {
	live := g.ripples[:0]
	for _, r := range g.ripples {
		r.radius += config.RippleSpeed
		if r.radius >= config.RippleMaxRange {
			continue
		}
		live = append(live, r)
	}
	g.ripples = live
}

func (g *Game) drawRipples(screen *ebiten.Image) {
	for _, r := range g.ripples {
		vector.StrokeCircle(screen, float32(r.x), float32(r.y), float32(r.radius), 2, withAlpha(rippleColor, r.alpha()*0.8), true)
	}
}
