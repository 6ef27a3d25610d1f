package scene

import (
	"image/color"
	"math"
)

// Particle is a short-lived spark spawned by an impact.
// Life runs from 1 down to 0; it is culled once Life reaches 0.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  color.RGBA
	Life   float64
	Decay  float64
	Size   float64
}

// Burst spawns the configured number of particles at (x, y), spread evenly
// around the circle with a little angular jitter.
func (s *Scene) Burst(x, y float64, c color.RGBA) {
	b := s.burst
	if b.Count <= 0 {
		return
	}

	step := 2 * math.Pi / float64(b.Count)
	for i := 0; i < b.Count; i++ {
		angle := float64(i)*step + (s.rng.Float64()-0.5)*step
		speed := lerp(b.MinSpeed, b.MaxSpeed, s.rng.Float64())
		s.Particles = append(s.Particles, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Color: c,
			Life:  1,
			Decay: lerp(b.MinDecay, b.MaxDecay, s.rng.Float64()),
			Size:  lerp(b.MinSize, b.MaxSize, s.rng.Float64()),
		})
	}
}

func (s *Scene) stepParticles() {
	live := s.Particles[:0]
	for _, p := range s.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= s.burst.Damping
		p.VY *= s.burst.Damping
		p.Life -= p.Decay
		p.Size *= s.burst.Shrink
		if p.Life <= 0 {
			continue
		}
		live = append(live, p)
	}
	s.Particles = live
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
