package scene

import (
	"math/rand"
	"testing"

	"github.com/iburimskiy/arrow-bubbles/internal/config"
)

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	cfg := config.Default()
	return New(cfg.Scene, cfg.Burst, rand.New(rand.NewSource(1)))
}

// runUntilIdle steps until the scene is quiet and returns the number of frames.
func runUntilIdle(t *testing.T, s *Scene, limit int) int {
	t.Helper()
	for frame := 1; frame <= limit; frame++ {
		s.Step()
		if !s.Busy() {
			return frame
		}
	}
	t.Fatalf("scene still busy after %d frames", limit)
	return 0
}

func TestNewPairsArrowsWithCircles(t *testing.T) {
	s := newTestScene(t)

	if len(s.Circles) != 4 || len(s.Arrows) != 4 {
		t.Fatalf("Expected 4 circles and 4 arrows, got %d and %d", len(s.Circles), len(s.Arrows))
	}

	wantTarget := float64(config.CircleX + config.CircleRadius + config.ArrowSize)
	for i, a := range s.Arrows {
		c := s.Circles[i]
		if a.Y != c.Y {
			t.Errorf("arrow %d: Expected Y=%v to match circle, got %v", i, c.Y, a.Y)
		}
		if a.TargetX != wantTarget {
			t.Errorf("arrow %d: Expected TargetX=%v, got %v", i, wantTarget, a.TargetX)
		}
		if a.X != config.ArrowStartX || a.OriginX != config.ArrowStartX {
			t.Errorf("arrow %d: Expected to start at origin %v, got X=%v OriginX=%v", i, config.ArrowStartX, a.X, a.OriginX)
		}
		if a.Moving {
			t.Errorf("arrow %d: Expected to start idle", i)
		}
		if c.Current != c.Base {
			t.Errorf("circle %d: Expected current color to start at base", i)
		}
	}
}

func TestHitTest(t *testing.T) {
	s := newTestScene(t)
	c := s.Circles[2]

	tests := []struct {
		name string
		x, y float64
		want []int
	}{
		{"center", c.X, c.Y, []int{2}},
		{"on edge", c.X + s.Radius(), c.Y, []int{2}},
		{"just outside", c.X + s.Radius() + 0.5, c.Y, nil},
		{"between rows", c.X, c.Y - 40, nil},
		{"on arrow", s.Arrows[2].X, s.Arrows[2].Y, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.HitTest(tt.x, tt.y)
			if len(got) != len(tt.want) {
				t.Fatalf("HitTest(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("HitTest(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
				}
			}
		})
	}
}

func TestLaunchStartsArrowTowardTarget(t *testing.T) {
	s := newTestScene(t)

	if !s.Launch(1) {
		t.Fatal("Expected Launch(1) to start the arrow")
	}
	if s.Launch(1) {
		t.Error("Expected a second Launch on a moving arrow to be ignored")
	}
	if s.Launch(-1) || s.Launch(len(s.Arrows)) {
		t.Error("Expected out of range launches to be ignored")
	}

	start := s.Arrows[1].X
	s.Step()
	a := s.Arrows[1]
	if a.X != start-config.AnimationSpeed {
		t.Errorf("Expected arrow to move %v toward target, got X=%v", config.AnimationSpeed, a.X)
	}
	for i, other := range s.Arrows {
		if i != 1 && (other.Moving || other.X != other.OriginX) {
			t.Errorf("arrow %d should not have moved", i)
		}
	}
}

func TestArrowImpactSetsHitColorAndHalts(t *testing.T) {
	s := newTestScene(t)
	s.Launch(0)

	var impacts []Impact
	for frame := 0; frame < 1000 && s.Arrows[0].Moving; frame++ {
		impacts = append(impacts, s.Step()...)
	}

	a := s.Arrows[0]
	if a.Moving {
		t.Fatal("Expected arrow to stop after reaching its target")
	}
	if a.X != a.TargetX {
		t.Errorf("Expected arrow to snap to target %v, got %v", a.TargetX, a.X)
	}
	if s.Circles[0].Current != s.HitColor(0) {
		t.Errorf("Expected circle 0 to take hit color %v, got %v", s.HitColor(0), s.Circles[0].Current)
	}
	if len(impacts) != 1 || impacts[0].Index != 0 {
		t.Fatalf("Expected exactly one impact on circle 0, got %+v", impacts)
	}
	if impacts[0].Color != s.HitColor(0) {
		t.Errorf("Expected impact color to be the hit color")
	}
	if len(s.Particles) == 0 {
		t.Error("Expected an impact to spawn a burst")
	}
	for i := 1; i < len(s.Circles); i++ {
		if s.Circles[i].Current != s.Circles[i].Base {
			t.Errorf("circle %d should keep its base color", i)
		}
	}
}

func TestArrowSnapsWhenWithinOneStep(t *testing.T) {
	s := newTestScene(t)
	a := &s.Arrows[3]
	a.X = a.TargetX + config.AnimationSpeed - 0.5
	s.Launch(3)

	impacts := s.Step()
	if len(impacts) != 1 {
		t.Fatalf("Expected an impact when within one step of target, got %d", len(impacts))
	}
	if a.X != a.TargetX || a.Moving {
		t.Errorf("Expected arrow to snap and stop, got X=%v Moving=%v", a.X, a.Moving)
	}
}

func TestRelaunchAtTargetImpactsAgain(t *testing.T) {
	s := newTestScene(t)
	s.Launch(2)
	runUntilIdle(t, s, 2000)

	if !s.Launch(2) {
		t.Fatal("Expected a resting arrow to be relaunchable")
	}
	if impacts := s.Step(); len(impacts) != 1 {
		t.Errorf("Expected relaunch at target to impact on the next step, got %d impacts", len(impacts))
	}
}

func TestResetRestoresEverything(t *testing.T) {
	s := newTestScene(t)

	// one arrow landed, one mid-flight, particles alive
	s.Launch(0)
	for s.Arrows[0].Moving {
		s.Step()
	}
	s.Launch(1)
	for i := 0; i < 10; i++ {
		s.Step()
	}
	if len(s.Particles) == 0 {
		t.Fatal("setup: expected live particles before reset")
	}

	s.Reset()

	for i, c := range s.Circles {
		if c.Current != c.Base {
			t.Errorf("circle %d: Expected base color after reset", i)
		}
	}
	for i, a := range s.Arrows {
		if a.X != a.OriginX || a.Moving {
			t.Errorf("arrow %d: Expected origin and idle after reset, got X=%v Moving=%v", i, a.X, a.Moving)
		}
	}
	if len(s.Particles) != 0 {
		t.Errorf("Expected no particles after reset, got %d", len(s.Particles))
	}
	if s.Busy() {
		t.Error("Expected scene to be idle after reset")
	}

	// reset on a fresh scene is harmless
	s.Reset()
	if s.Busy() {
		t.Error("Expected repeated reset to leave scene idle")
	}
}

func TestBusyUntilParticlesExpire(t *testing.T) {
	s := newTestScene(t)
	s.Launch(0)
	for s.Arrows[0].Moving {
		s.Step()
	}
	if !s.Busy() {
		t.Fatal("Expected scene to stay busy while particles live")
	}
	runUntilIdle(t, s, 1000)
	if len(s.Particles) != 0 {
		t.Errorf("Expected all particles culled, got %d", len(s.Particles))
	}
}
