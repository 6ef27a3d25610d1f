package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/arrow-bubbles/internal/scene"
)

var (
	backgroundColor = color.RGBA{R: 246, G: 246, B: 242, A: 255}
	outlineColor    = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	arrowColor      = color.RGBA{A: 255}
	statusColor     = color.RGBA{R: 70, G: 70, B: 80, A: 255}

	labelFace = text.NewGoXFace(basicfont.Face7x13)

	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawGlow(screen)
	for _, c := range g.scene.Circles {
		g.drawCircle(screen, c)
	}
	for _, a := range g.scene.Arrows {
		drawArrow(screen, a.X, a.Y, g.scene.ArrowSize())
	}
	g.drawParticles(screen)
	g.drawRipples(screen)
	g.drawButton(screen)
	g.drawStatus(screen)

	if g.showDebug {
		msg := fmt.Sprintf("TPS: %0.1f  FPS: %0.1f\nframes: %d  running: %v\nparticles: %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.loop.Frames(), g.loop.Running(), len(g.scene.Particles))
		vector.DrawFilledRect(screen, 4, 4, 200, 52, color.RGBA{A: 180}, false)
		ebitenutil.DebugPrintAt(screen, msg, 8, 6)
	}
}

func (g *Game) drawCircle(screen *ebiten.Image, c scene.Circle) {
	r := float32(g.scene.Radius())
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), r, c.Current, true)
	vector.StrokeCircle(screen, float32(c.X), float32(c.Y), r, 2, outlineColor, true)
}

// drawArrow fills a left-pointing arrow whose tip sits size pixels left of x.
func drawArrow(screen *ebiten.Image, x, y, size float64) {
	var path vector.Path
	path.MoveTo(float32(x-size), float32(y))
	path.LineTo(float32(x), float32(y-size/2))
	path.LineTo(float32(x), float32(y-size/4))
	path.LineTo(float32(x+size), float32(y-size/4))
	path.LineTo(float32(x+size), float32(y+size/4))
	path.LineTo(float32(x), float32(y+size/4))
	path.LineTo(float32(x), float32(y+size/2))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, gr, b, a := arrowColor.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(gr) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (g *Game) drawParticles(screen *ebiten.Image) {
	for _, p := range g.scene.Particles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), withAlpha(p.Color, p.Life), true)
	}
}

// drawGlow rings the last hit circle, pulsing with the audible cue.
func (g *Game) drawGlow(screen *ebiten.Image) {
	if g.lastHit < 0 || g.lastHit >= len(g.scene.Circles) {
		return
	}
	level := g.sound.Level()
	if level < 0.005 {
		return
	}
	c := g.scene.Circles[g.lastHit]
	radius := g.scene.Radius() + 4 + level*60
	vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(radius), 3, withAlpha(c.Current, 0.3+level), true)
}

func (g *Game) drawButton(screen *ebiten.Image) {
	rect := g.buttonRect()
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	w, h := float32(rect.Dx()), float32(rect.Dy())

	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(rect.Min.X)+float64(rect.Dx())/2, float64(rect.Min.Y)+float64(rect.Dy())/2)
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, "Reset", labelFace, op)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(12, 12)
	op.ColorScale.ScaleWithColor(statusColor)
	text.Draw(screen, g.statusLine(), labelFace, op)
}

func (g *Game) statusLine() string {
	status := "Click a circle to fire its arrow"
	switch {
	case !g.sound.Available():
		status += " | sound unavailable"
	case g.sound.Muted():
		status += " | sound muted"
	case g.sound.CueName() != "":
		status += " | sound: " + g.sound.CueName()
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}
