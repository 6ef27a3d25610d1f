package scene

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/arrow-bubbles/internal/config"
)

// Circle is a target. Current changes only on impact and goes back to Base on reset.
type Circle struct {
	X, Y    float64
	Base    color.RGBA
	Current color.RGBA
}

// Arrow slides horizontally toward its circle while Moving is set.
type Arrow struct {
	X       float64
	TargetX float64
	Y       float64
	OriginX float64
	Moving  bool
}

// Impact is reported once per arrow arrival.
type Impact struct {
	Index int
	X, Y  float64
	Color color.RGBA
}

// Scene holds the circles, their paired arrows and live particles.
// Arrow i always belongs to circle i.
type Scene struct {
	Circles   []Circle
	Arrows    []Arrow
	Particles []Particle

	hitColors []color.RGBA
	radius    float64
	arrowSize float64
	speed     float64
	burst     config.Burst
	rng       *rand.Rand
}

func New(cfg config.Scene, burst config.Burst, rng *rand.Rand) *Scene {
	s := &Scene{
		Circles:   make([]Circle, len(cfg.Rows)),
		Arrows:    make([]Arrow, len(cfg.Rows)),
		hitColors: make([]color.RGBA, len(cfg.Rows)),
		radius:    cfg.CircleRadius,
		arrowSize: cfg.ArrowSize,
		speed:     cfg.Speed,
		burst:     burst,
		rng:       rng,
	}

	targetX := cfg.CircleX + cfg.CircleRadius + cfg.ArrowSize
	for i, y := range cfg.Rows {
		base := cfg.BaseColors[i].ToRGBA()
		s.Circles[i] = Circle{X: cfg.CircleX, Y: y, Base: base, Current: base}
		s.Arrows[i] = Arrow{
			X:       cfg.ArrowStartX,
			TargetX: targetX,
			Y:       y,
			OriginX: cfg.ArrowStartX,
		}
		s.hitColors[i] = cfg.HitColors[i].ToRGBA()
	}
	return s
}

func (s *Scene) Radius() float64    { return s.radius }
func (s *Scene) ArrowSize() float64 { return s.arrowSize }

// HitColor is the color circle i takes when its arrow lands.
func (s *Scene) HitColor(i int) color.RGBA { return s.hitColors[i] }

// HitTest returns the index of every circle containing the point, edge included.
func (s *Scene) HitTest(x, y float64) []int {
	var hits []int
	for i, c := range s.Circles {
		if math.Hypot(x-c.X, y-c.Y) <= s.radius {
			hits = append(hits, i)
		}
	}
	return hits
}

// Launch starts arrow i. It reports false when the index is out of range
// or the arrow is already in flight.
func (s *Scene) Launch(i int) bool {
	if i < 0 || i >= len(s.Arrows) || s.Arrows[i].Moving {
		return false
	}
	s.Arrows[i].Moving = true
	return true
}

// Step advances the scene by one frame and returns the impacts that happened in it.
func (s *Scene) Step() []Impact {
	var impacts []Impact

	for i := range s.Arrows {
		a := &s.Arrows[i]
		if !a.Moving {
			continue
		}

		dx := a.TargetX - a.X
		if math.Abs(dx) <= s.speed {
			a.X = a.TargetX
			a.Moving = false

			hit := s.hitColors[i]
			s.Circles[i].Current = hit
			// burst where the arrow tip touches the circle
			impactX := a.X - s.arrowSize
			s.Burst(impactX, a.Y, hit)
			impacts = append(impacts, Impact{Index: i, X: impactX, Y: a.Y, Color: hit})
			continue
		}

		if dx > 0 {
			a.X += s.speed
		} else {
			a.X -= s.speed
		}
	}

	s.stepParticles()
	return impacts
}

// Busy reports whether anything still needs frames.
func (s *Scene) Busy() bool {
	for _, a := range s.Arrows {
		if a.Moving {
			return true
		}
	}
	return len(s.Particles) > 0
}

// Reset puts every circle and arrow back to its initial state and drops all particles.
func (s *Scene) Reset() {
	for i := range s.Arrows {
		s.Arrows[i].X = s.Arrows[i].OriginX
		s.Arrows[i].Moving = false
	}
	for i := range s.Circles {
		s.Circles[i].Current = s.Circles[i].Base
	}
	s.Particles = s.Particles[:0]
}
