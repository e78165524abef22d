package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hextiles/internal/board"
	"github.com/vovakirdan/hextiles/internal/core"
	"github.com/vovakirdan/hextiles/internal/hex"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
)

func styleFor(c core.Color) lipgloss.Style {
	style, ok := colorStyles[c]
	if !ok {
		return colorStyles[core.ColorDefault]
	}
	return style
}

// RenderBoard draws b with one colored glyph per cell. Rows shift half a
// cell per row, as in board.RenderText, and the cursor cell is bracketed.
func RenderBoard(b *board.Board, cursor hex.Coord) string {
	p := b.Params()
	var sb strings.Builder

	row, pos := 0, 0
	for _, c := range b.Coords() {
		if c.Y != row {
			sb.WriteByte('\n')
			row, pos = c.Y, 0
		}

		col := board.Column(p, c)
		if pos < col {
			sb.WriteString(strings.Repeat(" ", col-pos))
			pos = col
		}
		// The cursor's closing bracket may already cover this margin.
		if pos == col {
			if c == cursor {
				sb.WriteString(cursorStyle.Render("["))
			} else {
				sb.WriteByte(' ')
			}
			pos++
		}

		s, _ := b.Get(c)
		sb.WriteString(styleFor(board.Palette(s)).Render(board.Glyph(s)))
		pos += board.GlyphWidth

		if c == cursor {
			sb.WriteString(cursorStyle.Render("]"))
			pos++
		}
	}
	return sb.String()
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
