// Package grid implements the sparse hexagonal grid mapping coordinates to
// biomes, and the merge/adjacency predicates the cluster builders compose
// maps with.
package grid

import (
	"encoding/json"

	"github.com/janpfeifer/hexflower/internal/generics"
	"github.com/janpfeifer/hexflower/internal/hex"
	"github.com/pkg/errors"
)

// Biome is the terrain label assigned to a hex cell.
type Biome string

// The fixed biome vocabulary of the generator tables.
const (
	Grassland Biome = "grassland"
	Forest    Biome = "forest"
	Hills     Biome = "hills"
	Marsh     Biome = "marsh"
	Mountains Biome = "mountains"
)

// Biomes enumerates the vocabulary, in table order.
var Biomes = []Biome{Grassland, Forest, Hills, Marsh, Mountains}

// Grid is a sparse mapping from hex coordinates to biomes. The zero value
// is not usable, use New.
type Grid struct {
	cells map[hex.Hex]Biome
}

// New returns an empty grid.
func New() *Grid {
	return &Grid{cells: make(map[hex.Hex]Biome)}
}

// Len returns the number of cells set.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Has returns whether the coordinate has a biome assigned.
func (g *Grid) Has(h hex.Hex) bool {
	_, found := g.cells[h]
	return found
}

// At returns the biome at the coordinate, and whether one is set.
func (g *Grid) At(h hex.Hex) (Biome, bool) {
	b, found := g.cells[h]
	return b, found
}

// Set assigns the biome at the coordinate, overwriting any previous value.
func (g *Grid) Set(h hex.Hex, b Biome) {
	g.cells[h] = b
}

// Update merges other into g, overwriting cells present in both. It is the
// merge used when the caller has already proven disjointness.
func (g *Grid) Update(other *Grid) {
	for h, b := range other.cells {
		g.cells[h] = b
	}
}

// MergeFirstWins merges other into g without ever overwriting: cells
// already set in g keep their value. Kept as a separate operation from
// Update so the two builders can't accidentally swap merge policies.
func (g *Grid) MergeFirstWins(other *Grid) {
	for h, b := range other.cells {
		if _, found := g.cells[h]; !found {
			g.cells[h] = b
		}
	}
}

// IsDisjoint returns whether g and other share no coordinate.
func (g *Grid) IsDisjoint(other *Grid) bool {
	small, large := g, other
	if large.Len() < small.Len() {
		small, large = large, small
	}
	for h := range small.cells {
		if _, found := large.cells[h]; found {
			return false
		}
	}
	return true
}

// Touches returns whether any cell of g is edge-adjacent to a cell of other.
func (g *Grid) Touches(other *Grid) bool {
	for h := range g.cells {
		for ii := 0; ii < hex.NumDirections; ii++ {
			if other.Has(h.Neighbor(ii)) {
				return true
			}
		}
	}
	return false
}

// Translate returns a new grid with every cell shifted by (dq, dr).
func (g *Grid) Translate(dq, dr int) *Grid {
	out := New()
	for h, b := range g.cells {
		out.cells[h.Add(dq, dr)] = b
	}
	return out
}

// Frontier returns the empty coordinates edge-adjacent to the occupied
// region, deduplicated, in sorted order. For an empty grid it is empty.
func (g *Grid) Frontier() []hex.Hex {
	seen := generics.MakeSet[hex.Hex]()
	var out []hex.Hex
	for h := range g.cells {
		for ii := 0; ii < hex.NumDirections; ii++ {
			nb := h.Neighbor(ii)
			if g.Has(nb) || seen.Has(nb) {
				continue
			}
			seen.Insert(nb)
			out = append(out, nb)
		}
	}
	hex.Sort(out)
	return out
}

// Hexes returns all occupied coordinates in sorted order.
func (g *Grid) Hexes() []hex.Hex {
	out := make([]hex.Hex, 0, len(g.cells))
	for h := range g.cells {
		out = append(out, h)
	}
	hex.Sort(out)
	return out
}

// Cell is one (coordinate, biome) entry of a grid's enumeration.
type Cell struct {
	Hex   hex.Hex
	Biome Biome
}

// SortedCells enumerates all cells sorted by r then q. Both the JSON export
// and the SVG draw order rely on this enumeration being stable.
func (g *Grid) SortedCells() []Cell {
	hexes := g.Hexes()
	out := make([]Cell, len(hexes))
	for ii, h := range hexes {
		out[ii] = Cell{Hex: h, Biome: g.cells[h]}
	}
	return out
}

// Layout projects an axial coordinate to a pixel-space center. Implemented
// by the renderer; the grid only needs it to answer bounding box queries.
type Layout interface {
	AxialToPixel(h hex.Hex) (x, y float64)
}

// PixelBounds returns (minX, maxX, minY, maxY) over the projected centers
// of all cells. An empty grid yields all zeros.
func (g *Grid) PixelBounds(layout Layout) (minX, maxX, minY, maxY float64) {
	first := true
	for h := range g.cells {
		x, y := layout.AxialToPixel(h)
		if first || x < minX {
			minX = x
		}
		if first || x > maxX {
			maxX = x
		}
		if first || y < minY {
			minY = y
		}
		if first || y > maxY {
			maxY = y
		}
		first = false
	}
	return
}

// cellJSON is the exported record format: {"q":.., "r":.., "value":..}.
type cellJSON struct {
	Q     int   `json:"q"`
	R     int   `json:"r"`
	Value Biome `json:"value"`
}

// MarshalJSON encodes the grid as a list of cell records in SortedCells
// order, so the bytes are deterministic for a given grid.
func (g *Grid) MarshalJSON() ([]byte, error) {
	records := generics.SliceMap(g.SortedCells(), func(c Cell) cellJSON {
		return cellJSON{Q: c.Hex.Q, R: c.Hex.R, Value: c.Biome}
	})
	data, err := json.Marshal(records)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode grid cells")
	}
	return data, nil
}
