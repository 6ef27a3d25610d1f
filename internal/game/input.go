package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var launchKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// handlePointers feeds mouse and touch presses into the scene. The reset
// button fires on release over the button, circles fire on press.
func (g *Game) handlePointers() {
	button := g.buttonRect()

	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = inRect(button, mouseX, mouseY)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.buttonHovered {
			g.buttonPressed = true
		} else {
			g.press(float64(mouseX), float64(mouseY))
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.Reset()
		}
		g.buttonPressed = false
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if inRect(button, x, y) {
			g.buttonPressed = true
			continue
		}
		g.press(float64(x), float64(y))
	}

	g.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		if g.buttonPressed && inRect(button, x, y) {
			g.Reset()
		}
		g.buttonPressed = false
	}
}

func (g *Game) handleKeys() error {
	for i, k := range launchKeys {
		if i < len(g.scene.Arrows) && inpututil.IsKeyJustPressed(k) {
			g.launch(i)
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.toggleMute()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.chooseCue()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.sound.ClearCue()
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		g.showDebug = !g.showDebug
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	}
	return nil
}
