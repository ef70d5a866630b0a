package kitchen

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-kitchen/internal/cook"
	"github.com/vovakirdan/tui-kitchen/internal/core"
	"github.com/vovakirdan/tui-kitchen/internal/food"
	"github.com/vovakirdan/tui-kitchen/internal/station"
)

// Terminal cells are about twice as tall as wide, so a tile spans two
// columns.
const cellsPerTile = 2

// Rows above the kitchen.
const hudRows = 2

// Visual characters for rendering
const (
	WallChar    = '█'
	ProbeChar   = '·'
	BorderHoriz = '─'
)

// Cook glyphs by facing; the holding set is used while the stack is not
// empty.
var (
	cookGlyphs = map[cook.Facing]rune{
		cook.FacingUp:    '▲',
		cook.FacingDown:  '▼',
		cook.FacingLeft:  '◀',
		cook.FacingRight: '▶',
	}
	holdingGlyphs = map[cook.Facing]rune{
		cook.FacingUp:    '△',
		cook.FacingDown:  '▽',
		cook.FacingLeft:  '◁',
		cook.FacingRight: '▷',
	}
)

// CookGlyph returns the rune drawn for a cook.
func CookGlyph(f cook.Facing, holding bool) rune {
	glyphs := cookGlyphs
	if holding {
		glyphs = holdingGlyphs
	}
	if r, ok := glyphs[f]; ok {
		return r
	}
	return '●'
}

// ItemGlyph returns the rune and color drawn for a food item. Raw items are
// lowercase, prepared ones uppercase.
func ItemGlyph(id food.ID) (rune, core.Color) {
	switch id {
	case food.Tomato:
		return 't', core.ColorRed
	case food.ChoppedTomato:
		return 'T', core.ColorRed
	case food.Lettuce:
		return 'l', core.ColorGreen
	case food.ChoppedLettuce:
		return 'L', core.ColorGreen
	case food.Onion:
		return 'o', core.ColorMagenta
	case food.ChoppedOnion:
		return 'O', core.ColorMagenta
	case food.Meat:
		return 'm', core.ColorRed
	case food.Patty:
		return 'P', core.ColorBrown
	case food.Bun:
		return 'B', core.ColorYellow
	default:
		return '?', core.ColorDefault
	}
}

// stationGlyph returns the rune and color of a station's left cell.
func stationGlyph(s station.Station) (rune, core.Color) {
	switch s.Kind() {
	case station.KindCounter:
		return '▒', core.ColorBrown
	case station.KindPantry:
		_, c := ItemGlyph(s.(*station.Pantry).Item())
		return '▣', c
	case station.KindBin:
		return '✕', core.ColorGray
	case station.KindChoppingBoard:
		return '╪', core.ColorCyan
	case station.KindServing:
		return '★', core.ColorYellow
	default:
		return '?', core.ColorDefault
	}
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderWalls(dst)
	g.renderStations(dst)
	g.renderProbe(dst)
	g.renderCooks(dst)
	g.renderOverlay(dst)
}

// cell converts a world position to a screen cell.
func (g *Game) cell(x, y float64) (int, int) {
	return g.originX + int(math.Floor(x))*cellsPerTile, g.originY + int(math.Floor(y))
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score()))

	if g.ticksLeft >= 0 {
		secs := (g.ticksLeft + g.tickRate() - 1) / g.tickRate()
		dst.DrawTextCentered(0, fmt.Sprintf("Time: %d:%02d", secs/60, secs%60))
	} else {
		dst.DrawTextCentered(0, g.layout.Name)
	}

	cookText := fmt.Sprintf("Cook %d/%d", g.active+1, len(g.cooks))
	dst.DrawText(dst.Width()-len(cookText)-1, 0, cookText)

	for x := range dst.Width() {
		dst.Set(x, 1, BorderHoriz)
	}
}

func (g *Game) renderWalls(dst *core.Screen) {
	for _, r := range g.layout.Walls {
		x, y := g.cell(float64(r.X), float64(r.Y))
		dst.DrawRect(core.NewRect(x, y, r.W*cellsPerTile, r.H), WallChar, core.ColorGray)
	}
}

func (g *Game) renderStations(dst *core.Screen) {
	for _, s := range g.stations {
		box := s.Rect()
		x, y := g.cell(box.X, box.Y)

		r, c := stationGlyph(s)
		dst.SetColor(x, y, r, c)

		if items := s.Contents(); len(items) > 0 && s.Kind() != station.KindPantry {
			r, c = ItemGlyph(items[0])
			dst.SetColor(x+1, y, r, c)
			continue
		}
		if board, ok := s.(*station.ChoppingBoard); ok {
			if done, _ := board.Progress(); done > 0 {
				dst.SetColor(x+1, y, rune('0'+done%10), core.ColorCyan)
				continue
			}
		}
		dst.SetColor(x+1, y, r, c)
	}
}

// renderProbe marks the spot the controlled cook would interact with.
func (g *Game) renderProbe(dst *core.Screen) {
	if len(g.cooks) == 0 {
		return
	}
	center := g.cooks[g.active].ProbeBox().Center()
	x, y := g.cell(center.X, center.Y)
	if dst.Get(x, y) == ' ' {
		dst.SetColor(x, y, ProbeChar, core.ColorGray)
	}
}

func (g *Game) renderCooks(dst *core.Screen) {
	for i, c := range g.cooks {
		px, py := c.Position()
		x, y := g.cell(px, py)

		color := core.ColorCyan
		if i == g.active {
			color = core.ColorBrightWhite
		}
		dst.SetColor(x, y, CookGlyph(c.Facing(), c.Holding()), color)

		if top, ok := c.Stack().Peek(); ok {
			r, ic := ItemGlyph(top)
			dst.SetColor(x+1, y, r, ic)
		} else {
			dst.SetColor(x+1, y, rune('1'+i), color)
		}
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Served: %d  |  Press R to restart", g.score(), g.served())
		g.drawCenteredBox(dst, "TIME'S UP", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
