// Package hex implements axial coordinates for a pointy-top hexagonal grid,
// and the ring/spiral traversal orders the generators are built on.
package hex

import (
	"fmt"
	"sort"
)

// Hex is an axial coordinate (q, r), pointy-top orientation.
// It is a value type: transforms return new values, nothing is mutated.
type Hex struct {
	Q, R int
}

// NumDirections of each coordinate: the grid is hexagonal.
const NumDirections = 6

// Directions are the axial unit vectors, index 0 pointing east and going
// counter-clockwise. Index 4 (south-west) is the ring traversal start.
var Directions = [NumDirections]Hex{
	{1, 0},  // E
	{1, -1}, // NE
	{0, -1}, // NW
	{-1, 0}, // W
	{-1, 1}, // SW
	{0, 1},  // SE
}

// Named direction indices into Directions.
const (
	DirE = iota
	DirNE
	DirNW
	DirW
	DirSW
	DirSE
)

// Neighbor returns the coordinate one step along the given direction.
// The direction index must be in [0, NumDirections).
func (h Hex) Neighbor(direction int) Hex {
	d := Directions[direction]
	return Hex{h.Q + d.Q, h.R + d.R}
}

// Neighbors returns the 6 adjacent coordinates, in Directions order.
// It returns a newly allocated slice.
func (h Hex) Neighbors() []Hex {
	out := make([]Hex, NumDirections)
	for ii := range Directions {
		out[ii] = h.Neighbor(ii)
	}
	return out
}

// Add returns h translated by (dq, dr).
func (h Hex) Add(dq, dr int) Hex {
	return Hex{h.Q + dq, h.R + dr}
}

// ScaleDir returns the coordinate k steps along the given direction.
// k may be zero or negative.
func (h Hex) ScaleDir(direction, k int) Hex {
	d := Directions[direction]
	return Hex{h.Q + d.Q*k, h.R + d.R*k}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Distance returns the hexagonal distance between two coordinates:
// max(|dq|, |dr|, |d(q+r)|). It is symmetric, zero only for equal
// coordinates, and satisfies the triangle inequality.
func (h Hex) Distance(other Hex) int {
	dq := absInt(h.Q - other.Q)
	dr := absInt(h.R - other.R)
	ds := absInt((h.Q + h.R) - (other.Q + other.R))
	return max(dq, max(dr, ds))
}

// String returns a text representation of the coordinate.
func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d)", h.Q, h.R)
}

// Sort orders coordinates by r first and then q. This is the stable order
// used for export and has no geometric meaning.
func Sort(hexes []Hex) {
	sort.Slice(hexes, func(i, j int) bool {
		if hexes[i].R != hexes[j].R {
			return hexes[i].R < hexes[j].R
		}
		return hexes[i].Q < hexes[j].Q
	})
}
