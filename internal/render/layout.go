// Package render turns a finished grid into presentation output: an SVG
// image, or a colored terminal preview.
package render

import (
	"math"

	"github.com/janpfeifer/hexflower/internal/hex"
)

// PointyTopLayout converts axial coordinates to pixel space for pointy-top
// hexes of the given radius (in pixels).
type PointyTopLayout struct {
	Size float64
}

// AxialToPixel returns the pixel center of the hex.
func (l PointyTopLayout) AxialToPixel(h hex.Hex) (x, y float64) {
	x = l.Size * math.Sqrt(3) * (float64(h.Q) + float64(h.R)/2)
	y = l.Size * 1.5 * float64(h.R)
	return
}

// Corners returns the six corner points of a hex centered at (cx, cy),
// starting at the top-right corner (pointy-top, so corners sit at
// 60°*i - 30°).
func (l PointyTopLayout) Corners(cx, cy float64) [][2]float64 {
	out := make([][2]float64, hex.NumDirections)
	for ii := range out {
		angle := math.Pi / 180 * (60*float64(ii) - 30)
		out[ii] = [2]float64{cx + l.Size*math.Cos(angle), cy + l.Size*math.Sin(angle)}
	}
	return out
}
