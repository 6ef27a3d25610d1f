package scene

import "testing"

func TestLoopIdleUntilStarted(t *testing.T) {
	s := newTestScene(t)
	l := NewLoop(s, nil)

	s.Launch(0)
	if l.Tick() {
		t.Error("Expected Tick to do nothing before Start")
	}
	if s.Arrows[0].X != s.Arrows[0].OriginX {
		t.Error("Expected arrow not to move while the loop is idle")
	}
}

func TestLoopTerminatesWhenSceneIsQuiet(t *testing.T) {
	s := newTestScene(t)
	var impacts []Impact
	l := NewLoop(s, func(imp Impact) { impacts = append(impacts, imp) })

	s.Launch(1)
	l.Start()
	l.Start() // idempotent

	ticks := 0
	for l.Tick() {
		ticks++
		if ticks > 2000 {
			t.Fatal("loop never terminated")
		}
	}

	if l.Running() {
		t.Error("Expected loop to stop once nothing moves")
	}
	if s.Busy() {
		t.Error("Expected scene to be quiet when the loop stops")
	}
	if len(impacts) != 1 || impacts[0].Index != 1 {
		t.Errorf("Expected one impact on circle 1, got %+v", impacts)
	}
	if l.Frames() != ticks {
		t.Errorf("Expected %d frames, got %d", ticks, l.Frames())
	}
	if l.Tick() {
		t.Error("Expected Tick to stay idle after termination")
	}
}

func TestLoopStopCancels(t *testing.T) {
	s := newTestScene(t)
	l := NewLoop(s, nil)

	s.Launch(2)
	l.Start()
	l.Tick()
	x := s.Arrows[2].X

	l.Stop()
	l.Stop()
	if l.Tick() {
		t.Error("Expected Tick to do nothing after Stop")
	}
	if s.Arrows[2].X != x {
		t.Error("Expected arrow to hold position after Stop")
	}

	// restart picks up where it left off
	l.Start()
	l.Tick()
	if s.Arrows[2].X >= x {
		t.Error("Expected arrow to resume after restart")
	}
}

func TestLoopStopsItselfWithoutWork(t *testing.T) {
	s := newTestScene(t)
	l := NewLoop(s, nil)

	l.Start()
	if !l.Tick() {
		t.Fatal("Expected one step after Start")
	}
	if l.Running() {
		t.Error("Expected an empty scene to stop the loop after one step")
	}
}
