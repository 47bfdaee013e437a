package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/hexflower/internal/grid"
	"golang.org/x/term"
)

// biomeStyles colors one terminal cell per biome, roughly matching the
// SVG palette.
var biomeStyles = map[grid.Biome]lipgloss.Style{
	grid.Grassland: lipgloss.NewStyle().Background(lipgloss.Color("112")).Foreground(lipgloss.Color("0")),
	grid.Forest:    lipgloss.NewStyle().Background(lipgloss.Color("29")).Foreground(lipgloss.Color("15")),
	grid.Hills:     lipgloss.NewStyle().Background(lipgloss.Color("180")).Foreground(lipgloss.Color("0")),
	grid.Marsh:     lipgloss.NewStyle().Background(lipgloss.Color("66")).Foreground(lipgloss.Color("15")),
	grid.Mountains: lipgloss.NewStyle().Background(lipgloss.Color("248")).Foreground(lipgloss.Color("0")),
}

var unknownStyle = lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("15"))

// cellWidth is the number of terminal columns per hex. Odd rows shift by
// half of it, which approximates the hexagonal packing.
const cellWidth = 4

func styleFor(b grid.Biome) lipgloss.Style {
	if style, found := biomeStyles[b]; found {
		return style
	}
	return unknownStyle
}

// Preview prints a colored block per hex to stdout, row by row in the
// grid's sorted order, centered to the terminal width. It is a rough
// at-a-glance rendition, the SVG output is the faithful one.
func Preview(g *grid.Grid) {
	if g.Len() == 0 {
		return
	}

	// Column of a hex in half-cell units: the axial x projection 2q+r.
	minCol, maxCol, minRow := 0, 0, 0
	first := true
	for _, cell := range g.SortedCells() {
		col := 2*cell.Hex.Q + cell.Hex.R
		if first || col < minCol {
			minCol = col
		}
		if first || col > maxCol {
			maxCol = col
		}
		if first {
			minRow = cell.Hex.R
		}
		first = false
	}

	var lines []string
	line := ""
	lineWidth := 0
	row := minRow
	flush := func() {
		lines = append(lines, line)
		line = ""
		lineWidth = 0
	}
	for _, cell := range g.SortedCells() {
		for cell.Hex.R > row {
			flush()
			row++
		}
		col := (2*cell.Hex.Q + cell.Hex.R - minCol) * cellWidth / 2
		if col > lineWidth {
			line += strings.Repeat(" ", col-lineWidth)
			lineWidth = col
		}
		line += styleFor(cell.Biome).Render(strings.Repeat(" ", cellWidth))
		lineWidth += cellWidth
	}
	flush()

	blockWidth := (maxCol-minCol)/2*cellWidth + cellWidth
	printCentered(lines, blockWidth)
	printLegend()
}

// printCentered indents the block to the middle of the terminal, when
// stdout is one.
func printCentered(lines []string, blockWidth int) {
	terminalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	indent := (terminalWidth - blockWidth) / 2
	if indent < 0 {
		indent = 0
	}
	for _, line := range lines {
		fmt.Printf("%s%s\n", strings.Repeat(" ", indent), line)
	}
}

func printLegend() {
	parts := make([]string, 0, len(grid.Biomes))
	for _, b := range grid.Biomes {
		parts = append(parts, styleFor(b).Render(" "+string(b)+" "))
	}
	fmt.Println()
	fmt.Println(strings.Join(parts, " "))
}
