package boxjump

import (
	"fmt"
	"math"

	"github.com/vovakirdan/box-jump/internal/core"
)

// Visual characters for rendering
const (
	BoxChar    = '█'
	SpikeChar  = '▲'
	PillarChar = '▓'
	GroundChar = '═'
)

// viewport maps world pixels onto screen cells.
type viewport struct {
	sx, sy float64 // Cells per world pixel
}

func newViewport(worldW, worldH float64, dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / worldW,
		sy: float64(dst.Height()) / worldH,
	}
}

// cellCenter returns the world position of a cell's center.
func (v viewport) cellCenter(cx, cy int) core.Vec2 {
	return core.Vec2{X: (float64(cx) + 0.5) / v.sx, Y: (float64(cy) + 0.5) / v.sy}
}

// fill paints every cell whose center lies inside the polygon.
func (v viewport) fill(dst *core.Screen, poly []core.Vec2, r rune, c core.Color) {
	b := core.BoundsOf(poly)
	x0 := core.Max(0, int(math.Floor(b.MinX*v.sx)))
	x1 := core.Min(dst.Width()-1, int(math.Ceil(b.MaxX*v.sx)))
	y0 := core.Max(0, int(math.Floor(b.MinY*v.sy)))
	y1 := core.Min(dst.Height()-1, int(math.Ceil(b.MaxY*v.sy)))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if core.PolygonContains(poly, v.cellCenter(x, y)) {
				dst.SetColor(x, y, r, c)
			}
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	f := g.Frame()
	v := newViewport(g.cfg.Screen.Width, g.cfg.Screen.Height, dst)

	// Draw ground
	groundRow := int(math.Floor(g.cfg.GroundY() * v.sy))
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGray)

	// Draw obstacles
	for _, o := range f.Obstacles {
		if p, ok := g.geo.Pillar(o); ok {
			corners := p.Corners()
			v.fill(dst, corners[:], PillarChar, core.ColorCyan)
		}
		if tri, ok := g.geo.Triangle(o); ok {
			v.fill(dst, tri[:], SpikeChar, core.ColorRed)
		}
	}

	// Draw player
	boxColor := core.ColorBrightYellow
	if f.Collided {
		boxColor = core.ColorBrightRed
	}
	v.fill(dst, f.Box[:], BoxChar, boxColor)

	// Draw HUD
	scoreText := fmt.Sprintf(" Score: %d ", f.Score)
	dst.DrawText(2, 0, scoreText)

	if g.runtime.ShowFPS {
		fpsText := fmt.Sprintf(" FPS: %.0f ", f.FPS)
		dst.DrawTextColor(dst.Width()-len(fpsText)-2, 0, fpsText, core.ColorGreen)
	}

	if f.Paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	} else if f.Collided && !f.Shaking {
		g.drawCenteredMessage(dst, "CRASHED", fmt.Sprintf("Score: %d  |  Press R to restart", f.Score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
