package scene

// Loop gates stepping on a running flag. The host calls Tick once per
// display refresh; Tick is a no-op until something calls Start, and the
// loop stops itself once the scene has nothing left to animate.
type Loop struct {
	scene    *Scene
	onImpact func(Impact)
	running  bool
	frames   int
}

func NewLoop(s *Scene, onImpact func(Impact)) *Loop {
	return &Loop{scene: s, onImpact: onImpact}
}

// Start is idempotent.
func (l *Loop) Start() {
	l.running = true
}

// Stop cancels any further stepping until the next Start.
func (l *Loop) Stop() {
	l.running = false
}

func (l *Loop) Running() bool { return l.running }

// Frames counts steps taken since the loop was created.
func (l *Loop) Frames() int { return l.frames }

// Tick steps the scene once if the loop is running and reports whether it did.
func (l *Loop) Tick() bool {
	if !l.running {
		return false
	}

	impacts := l.scene.Step()
	l.frames++
	if l.onImpact != nil {
		for _, imp := range impacts {
			l.onImpact(imp)
		}
	}

	if !l.scene.Busy() {
		l.running = false
	}
	return true
}
