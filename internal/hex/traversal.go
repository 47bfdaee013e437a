package hex

import (
	"github.com/pkg/errors"
)

// Ring returns the ordered sequence of coordinates at exactly the given
// distance from center: the single center for radius 0, otherwise 6*radius
// coordinates.
//
// The order is part of the contract: the walk starts radius steps to the
// south-west (Directions[DirSW]) and proceeds as six straight segments of
// radius steps each, segment ii stepping along Directions[ii].
func Ring(center Hex, radius int) ([]Hex, error) {
	if radius < 0 {
		return nil, errors.Errorf("ring radius must be >= 0, got %d", radius)
	}
	if radius == 0 {
		return []Hex{center}, nil
	}
	h := center.ScaleDir(DirSW, radius)
	out := make([]Hex, 0, NumDirections*radius)
	for side := 0; side < NumDirections; side++ {
		for ii := 0; ii < radius; ii++ {
			out = append(out, h)
			h = h.Neighbor(side)
		}
	}
	return out, nil
}

// Spiral returns all coordinates of rings 0 through radius, center first,
// each ring in Ring order. It returns 1+3*radius*(radius+1) coordinates.
func Spiral(center Hex, radius int) ([]Hex, error) {
	if radius < 0 {
		return nil, errors.Errorf("spiral radius must be >= 0, got %d", radius)
	}
	out := make([]Hex, 0, 1+3*radius*(radius+1))
	for r := 0; r <= radius; r++ {
		ring, err := Ring(center, r)
		if err != nil {
			return nil, err
		}
		out = append(out, ring...)
	}
	return out, nil
}
