package board

import (
	"github.com/vovakirdan/hextiles/internal/core"
	"github.com/vovakirdan/hextiles/internal/hex"
	"github.com/vovakirdan/hextiles/internal/tile"
)

// Text layout. Each cell is a GlyphWidth-wide glyph, cells in a row sit
// CellPitch columns apart, and every row below shifts half a pitch west so
// that SE and SW neighbors sit diagonally below.
const (
	GlyphWidth = 3
	CellPitch  = 4
)

// Column returns the text column of the left margin of c. The glyph starts
// one column to the right, and a cursor bracket takes the margin.
func Column(p hex.Params, c hex.Coord) int {
	return CellPitch*c.X - CellPitch/2*c.Y + CellPitch/2*(p.B-1)
}

// TextWidth returns the number of columns needed to draw region p.
func TextWidth(p hex.Params) int {
	if !p.Valid() {
		return 0
	}
	widest := 0
	for y := 0; y < p.Height(); y++ {
		last := p.A - 1 + min(y, p.C-1)
		widest = max(widest, Column(p, hex.C(last, y)))
	}
	return widest + GlyphWidth
}

var elevationGlyphs = [...]rune{'~', '_', '.', 'n', '^'}

// Glyph returns the three-character text form of a state: elevation,
// terrain, then detail. The detail letter is lowercase when the tile also
// holds water, and an empty wet tile shows 'w'.
func Glyph(s tile.State) string {
	g := []rune{'?', '?', '?'}
	if int(s.Elevation) < len(elevationGlyphs) {
		g[0] = elevationGlyphs[s.Elevation]
	}

	switch {
	case s.HasAttribute(tile.AttrVolcano):
		g[1] = 'V'
	case s.Terrain == tile.TerrainStone:
		g[1] = 's'
	case s.Terrain == tile.TerrainGrass:
		g[1] = 'g'
	case s.Terrain == tile.TerrainSnow:
		g[1] = '*'
	}

	wet := s.Water == tile.Feature
	switch s.Detail {
	case tile.Empty:
		g[2] = ' '
		if wet {
			g[2] = 'w'
		}
	case tile.Trees:
		g[2] = 'T'
	case tile.Village:
		g[2] = 'H'
	case tile.Fort:
		g[2] = 'F'
	}
	if wet && s.Detail != tile.Empty {
		g[2] += 'a' - 'A'
	}
	return string(g)
}

// Palette returns the display color of a state.
func Palette(s tile.State) core.Color {
	switch {
	case s.HasAttribute(tile.AttrVolcano):
		return core.ColorRed
	case s.Elevation == tile.Sea:
		return core.ColorBlue
	case s.Terrain == tile.TerrainSnow:
		return core.ColorBrightWhite
	case s.Elevation == tile.Mountain:
		return core.ColorGray
	case s.Water == tile.Feature:
		return core.ColorCyan
	case s.Detail == tile.Trees:
		return core.ColorBrightGreen
	case s.Terrain == tile.TerrainGrass:
		return core.ColorGreen
	case s.Detail == tile.Village || s.Detail == tile.Fort:
		return core.ColorMagenta
	default:
		return core.ColorYellow
	}
}

// RenderText draws the board as plain text. When cursor is on the board its
// glyph is wrapped in brackets.
func (b *Board) RenderText(cursor *hex.Coord) string {
	scr := core.NewScreen(TextWidth(b.params)+2, b.params.Height())
	for i, c := range b.Coords() {
		col := Column(b.params, c)
		scr.DrawText(col+1, c.Y, Glyph(b.cells[i]))
	}
	if cursor != nil && b.params.Contains(*cursor) {
		col := Column(b.params, *cursor)
		scr.Set(col, cursor.Y, '[')
		scr.Set(col+GlyphWidth+1, cursor.Y, ']')
	}
	return scr.String()
}
