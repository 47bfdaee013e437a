package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/janpfeifer/hexflower/internal/generics"
	"github.com/janpfeifer/hexflower/internal/grid"
	"github.com/pkg/errors"
)

// DefaultPalette maps each biome to its fill color.
var DefaultPalette = map[grid.Biome]string{
	grid.Grassland: "#9ACD32",
	grid.Forest:    "#2E8B57",
	grid.Hills:     "#C2B280",
	grid.Marsh:     "#5F9EA0",
	grid.Mountains: "#A9A9A9",
}

// unknownFill is used for biomes outside the palette.
const unknownFill = "#DDDDDD"

// SVGRenderer renders a grid to an SVG image, one polygon per hex.
type SVGRenderer struct {
	Layout      PointyTopLayout
	Palette     map[grid.Biome]string
	Stroke      string
	StrokeWidth float64
	Background  string
}

// NewSVGRenderer returns a renderer with the default palette and styling.
func NewSVGRenderer(layout PointyTopLayout) *SVGRenderer {
	return &SVGRenderer{
		Layout:      layout,
		Palette:     DefaultPalette,
		Stroke:      "#333333",
		StrokeWidth: 2.0,
		Background:  "white",
	}
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Options for Render.
type Options struct {
	Title      string
	ShowCoords bool
	ShowLabels bool
}

// paddingFactor scales the hex size into the margin around the map.
const paddingFactor = 2.2

// Render returns the SVG document for the grid. Hexes are drawn in the
// grid's stable sorted order. It fails on an empty grid.
func (r *SVGRenderer) Render(g *grid.Grid, opts Options) (string, error) {
	if g.Len() == 0 {
		return "", errors.New("cannot render an empty grid")
	}

	minX, maxX, minY, maxY := g.PixelBounds(r.Layout)
	pad := r.Layout.Size * paddingFactor
	viewMinX := minX - pad
	viewMinY := minY - pad
	width := (maxX - minX) + 2*pad
	height := (maxY - minY) + 2*pad

	var sb strings.Builder
	fmt.Fprintf(&sb,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="%.0f %.0f %.0f %.0f">`+"\n",
		width, height, viewMinX, viewMinY, width, height)
	fmt.Fprintf(&sb,
		`<rect x="%.0f" y="%.0f" width="%.0f" height="%.0f" fill="%s"/>`+"\n",
		viewMinX, viewMinY, width, height, xmlEscaper.Replace(r.Background))
	if opts.Title != "" {
		fmt.Fprintf(&sb,
			`<text x="%.1f" y="%.1f" font-family="Arial" font-size="18" fill="#111">%s</text>`+"\n",
			viewMinX+pad/2, viewMinY+pad/2, xmlEscaper.Replace(opts.Title))
	}

	for _, cell := range g.SortedCells() {
		cx, cy := r.Layout.AxialToPixel(cell.Hex)
		points := generics.SliceMap(r.Layout.Corners(cx, cy), func(p [2]float64) string {
			return fmt.Sprintf("%.1f,%.1f", p[0], p[1])
		})
		fill, found := r.Palette[cell.Biome]
		if !found {
			fill = unknownFill
		}
		fmt.Fprintf(&sb,
			`<polygon points="%s" fill="%s" stroke="%s" stroke-width="%.2f"/>`+"\n",
			strings.Join(points, " "), xmlEscaper.Replace(fill), xmlEscaper.Replace(r.Stroke), r.StrokeWidth)

		if opts.ShowCoords {
			fmt.Fprintf(&sb,
				`<text x="%.1f" y="%.1f" font-family="Arial" font-size="12" text-anchor="middle" fill="#111">%s</text>`+"\n",
				cx, cy-2, xmlEscaper.Replace(fmt.Sprintf("%d,%d", cell.Hex.Q, cell.Hex.R)))
		}
		if opts.ShowLabels {
			fmt.Fprintf(&sb,
				`<text x="%.1f" y="%.1f" font-family="Arial" font-size="11" text-anchor="middle" fill="#111">%s</text>`+"\n",
				cx, cy+16, xmlEscaper.Replace(string(cell.Biome)))
		}
	}

	sb.WriteString("</svg>")
	return sb.String(), nil
}

// WriteSVG renders the grid and writes it to path, creating parent
// directories as needed.
func (r *SVGRenderer) WriteSVG(g *grid.Grid, path string, opts Options) error {
	svg, err := r.Render(g, opts)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create directory for %q", path)
		}
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return errors.Wrapf(err, "failed to write SVG to %q", path)
	}
	return nil
}
