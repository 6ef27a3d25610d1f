package game

import (
	"image"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/arrow-bubbles/internal/config"
	"github.com/iburimskiy/arrow-bubbles/internal/scene"
	"github.com/iburimskiy/arrow-bubbles/internal/sound"
)

// Game hosts the scene inside Ebitengine. Update runs once per tick on a
// single goroutine; the scene loop only steps while something is animating.
type Game struct {
	cfg     config.Config
	scene   *scene.Scene
	loop    *scene.Loop
	sound   *sound.Player
	haptics *haptics

	ripples []ripple
	lastHit int

	// button state
	buttonHovered bool
	buttonPressed bool

	touchIDs  []ebiten.TouchID
	showDebug bool
	lastErr   error
}

func NewGame(cfg config.Config, player *sound.Player) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:     cfg,
		scene:   scene.New(cfg.Scene, cfg.Burst, rand.New(rand.NewSource(seed))),
		sound:   player,
		haptics: newHaptics(cfg.Haptics),
		lastHit: -1,
	}
	g.loop = scene.NewLoop(g.scene, g.onImpact)
	return g
}

func (g *Game) Update() error {
	g.handlePointers()
	if err := g.handleKeys(); err != nil {
		return err
	}

	g.loop.Tick()
	g.updateRipples()
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// press dispatches a pointer press in canvas coordinates.
func (g *Game) press(x, y float64) {
	g.addRipple(x, y)
	for _, i := range g.scene.HitTest(x, y) {
		g.launch(i)
	}
}

func (g *Game) launch(i int) {
	if g.scene.Launch(i) {
		g.loop.Start()
	}
}

// Reset stops the animation and restores the initial scene.
func (g *Game) Reset() {
	g.loop.Stop()
	g.scene.Reset()
	g.ripples = g.ripples[:0]
	g.lastHit = -1
	g.lastErr = nil
}

func (g *Game) onImpact(imp scene.Impact) {
	g.lastHit = imp.Index
	g.sound.PlayImpact(imp.Index)
	g.haptics.Pulse()
}

func (g *Game) toggleMute() {
	if !g.sound.Available() {
		return
	}
	g.sound.SetMuted(!g.sound.Muted())
}

// chooseCue blocks on the native file dialog, like any modal picker.
func (g *Game) chooseCue() {
	path, err := sound.SelectCueFile()
	if err != nil {
		g.lastErr = err
		return
	}
	if path == "" {
		return
	}
	if err := g.sound.LoadCue(path); err != nil {
		g.lastErr = err
		return
	}
	log.Printf("Loaded impact sound %s", path)
	g.lastErr = nil
}

func (g *Game) buttonRect() image.Rectangle {
	x := (g.cfg.Window.Width - config.ButtonWidth) / 2
	y := g.cfg.Window.Height - config.ButtonHeight - config.ButtonMarginY
	return image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
}
