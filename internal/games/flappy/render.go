package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Shades for decreasing alpha. A fully faded sprite is not drawn.
var shades = []rune{'█', '▓', '▒', '░'}

// shadeFor picks the glyph for a sprite with alpha a.
func shadeFor(a float64) (rune, bool) {
	switch {
	case a >= 0.75:
		return shades[0], true
	case a >= 0.5:
		return shades[1], true
	case a >= 0.25:
		return shades[2], true
	case a > 0:
		return shades[3], true
	default:
		return 0, false
	}
}

// cellRect projects a world box onto the character grid. Each cell covers
// scale.X by scale.Y world units; row 0 is the top of the viewport.
// Boxes thinner than a cell still cover one cell.
func cellRect(b core.Box, view core.Viewport, scale core.Vec2) core.Rect {
	lo, hi := b.Min(), b.Max()

	x0 := int(math.Floor((lo.X + view.W/2) / scale.X))
	x1 := int(math.Ceil((hi.X + view.W/2) / scale.X))
	y0 := int(math.Floor((view.H/2 - hi.Y) / scale.Y))
	y1 := int(math.Ceil((view.H/2 - lo.Y) / scale.Y))

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the world and the HUD into a character grid.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.w == nil {
		return
	}

	scale := g.runtime.UnitScale()
	for _, s := range g.Sprites() {
		r, ok := shadeFor(s.Color.A)
		if !ok {
			continue
		}
		rect := cellRect(core.NewBox(s.Pos, s.Size), g.view, scale)
		dst.DrawRect(rect, core.Cell{Rune: r, Color: s.Color})
	}

	g.renderHUD(dst)
}

// renderHUD centers the score near the top and the hint in the middle.
func (g *Game) renderHUD(dst *core.Screen) {
	h := dst.Height()
	for _, l := range g.Labels() {
		switch l.Role {
		case core.LabelScore:
			dst.DrawTextCentered(min(2, h-1), " "+l.Text+" ", l.Color)
		case core.LabelHighscore:
			dst.DrawTextCentered(min(3, h-1), " best "+l.Text+" ", l.Color)
		case core.LabelHint:
			dst.DrawTextCentered(h/2+2, " "+l.Text+" ", l.Color)
		}
	}
}
