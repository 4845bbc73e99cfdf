package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/mandelzoom/internal/fractal"
	"github.com/san-kum/mandelzoom/internal/palette"
)

// Blocks renders an iteration grid as colored half-block cells, two grid
// rows per terminal row (upper half foreground, lower half background).
// The grid is expected to already be sized for the terminal; no
// downsampling happens here.
func Blocks(div fractal.IterationGrid, maxIter int) string {
	height := len(div)
	if height == 0 {
		return ""
	}
	width := len(div[0])

	var sb strings.Builder
	for j := 0; j+1 < height; j += 2 {
		for i := 0; i < width; i++ {
			top := palette.Pixel(div[j][i], maxIter)
			bot := palette.Pixel(div[j+1][i], maxIter)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", top.R, top.G, top.B))).
				Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", bot.R, bot.G, bot.B)))
			sb.WriteString(style.Render("▀"))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
