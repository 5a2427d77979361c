package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lightsout/internal/core"
)

// palette gives every core.Color a light and a dark terminal variant.
// Lit cells stay warm and unlit cells cool on both backgrounds.
var palette = map[core.Color]lipgloss.AdaptiveColor{
	core.ColorGray:          {Light: "244", Dark: "245"},
	core.ColorBrightGreen:   {Light: "28", Dark: "10"},
	core.ColorBrightMagenta: {Light: "127", Dark: "13"},
	core.ColorBrightWhite:   {Light: "0", Dark: "15"},
	core.ColorBrightYellow:  {Light: "136", Dark: "11"},
	core.ColorPink:          {Light: "205", Dark: "213"},
	core.ColorHotPink:       {Light: "198", Dark: "205"},
	core.ColorLavender:      {Light: "104", Dark: "141"},
	core.ColorPurple:        {Light: "61", Dark: "98"},
}

var cellStyles = buildCellStyles()

func buildCellStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, ac := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(ac)
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := cellStyles[c]; ok {
		return s
	}
	return cellStyles[core.ColorDefault]
}

// span is a run of same-colored cells within one row.
type span struct {
	color core.Color
	text  string
}

// rowSpans splits row y into same-colored runs.
func rowSpans(s *core.Screen, y int) []span {
	var spans []span
	var run []rune
	cur := s.GetCell(0, y).Color

	for x := 0; x < s.Width(); x++ {
		cell := s.GetCell(x, y)
		if cell.Color != cur {
			spans = append(spans, span{color: cur, text: string(run)})
			run = run[:0]
			cur = cell.Color
		}
		run = append(run, cell.Rune)
	}
	if len(run) > 0 {
		spans = append(spans, span{color: cur, text: string(run)})
	}
	return spans
}

// RenderScreen converts a Screen buffer to a styled string. Each colored run
// is styled once, so a board tile costs one escape sequence per row.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	for y := range lines {
		var sb strings.Builder
		for _, sp := range rowSpans(s, y) {
			sb.WriteString(styleFor(sp.color).Render(sp.text))
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
