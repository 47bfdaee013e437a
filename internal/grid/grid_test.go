package grid_test

import (
	"encoding/json"
	"testing"

	"github.com/janpfeifer/hexflower/internal/grid"
	"github.com/janpfeifer/hexflower/internal/hex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndAt(t *testing.T) {
	g := grid.New()
	assert.Zero(t, g.Len())
	assert.False(t, g.Has(hex.Hex{}))

	g.Set(hex.Hex{}, grid.Forest)
	g.Set(hex.Hex{Q: 1, R: -1}, grid.Marsh)
	assert.Equal(t, 2, g.Len())

	b, found := g.At(hex.Hex{})
	require.True(t, found)
	assert.Equal(t, grid.Forest, b)

	_, found = g.At(hex.Hex{Q: 5, R: 5})
	assert.False(t, found)

	// Set overwrites.
	g.Set(hex.Hex{}, grid.Hills)
	b, _ = g.At(hex.Hex{})
	assert.Equal(t, grid.Hills, b)
	assert.Equal(t, 2, g.Len())
}

func TestMergePolicies(t *testing.T) {
	a := grid.New()
	a.Set(hex.Hex{}, grid.Grassland)
	a.Set(hex.Hex{Q: 1}, grid.Forest)

	b := grid.New()
	b.Set(hex.Hex{}, grid.Mountains)
	b.Set(hex.Hex{Q: 2}, grid.Marsh)

	// Update overwrites cells present in both.
	u := grid.New()
	u.Update(a)
	u.Update(b)
	got, _ := u.At(hex.Hex{})
	assert.Equal(t, grid.Mountains, got)
	assert.Equal(t, 3, u.Len())

	// MergeFirstWins never overwrites.
	f := grid.New()
	f.MergeFirstWins(a)
	f.MergeFirstWins(b)
	got, _ = f.At(hex.Hex{})
	assert.Equal(t, grid.Grassland, got)
	assert.Equal(t, 3, f.Len())
}

func TestTranslate(t *testing.T) {
	g := grid.New()
	g.Set(hex.Hex{}, grid.Forest)
	g.Set(hex.Hex{Q: 1, R: 2}, grid.Hills)

	moved := g.Translate(-3, 1)
	assert.Equal(t, 2, moved.Len())
	b, found := moved.At(hex.Hex{Q: -3, R: 1})
	require.True(t, found)
	assert.Equal(t, grid.Forest, b)
	b, found = moved.At(hex.Hex{Q: -2, R: 3})
	require.True(t, found)
	assert.Equal(t, grid.Hills, b)

	// Original untouched.
	assert.True(t, g.Has(hex.Hex{}))
	assert.False(t, g.Has(hex.Hex{Q: -3, R: 1}))
}

func TestIsDisjointAndTouches(t *testing.T) {
	a := grid.New()
	a.Set(hex.Hex{}, grid.Grassland)

	b := grid.New()
	b.Set(hex.Hex{Q: 2}, grid.Forest)

	// Two cells apart: disjoint, not touching.
	assert.True(t, a.IsDisjoint(b))
	assert.True(t, b.IsDisjoint(a))
	assert.False(t, a.Touches(b))
	assert.False(t, b.Touches(a))

	// Edge-adjacent: disjoint and touching.
	b.Set(hex.Hex{Q: 1}, grid.Forest)
	assert.True(t, a.IsDisjoint(b))
	assert.True(t, a.Touches(b))
	assert.True(t, b.Touches(a))

	// Overlapping: not disjoint.
	b.Set(hex.Hex{}, grid.Forest)
	assert.False(t, a.IsDisjoint(b))
}

func TestFrontier(t *testing.T) {
	g := grid.New()
	assert.Empty(t, g.Frontier())

	g.Set(hex.Hex{}, grid.Grassland)
	frontier := g.Frontier()
	require.Len(t, frontier, 6)
	want := hex.Hex{}.Neighbors()
	hex.Sort(want)
	assert.Equal(t, want, frontier)

	// Two adjacent cells share two frontier neighbors: 6+6-2 shared
	// frontier cells minus the two occupied ones.
	g.Set(hex.Hex{Q: 1}, grid.Forest)
	frontier = g.Frontier()
	assert.Len(t, frontier, 8)
	for _, h := range frontier {
		assert.False(t, g.Has(h))
	}
}

func TestSortedCells(t *testing.T) {
	g := grid.New()
	g.Set(hex.Hex{Q: 1, R: 1}, grid.Marsh)
	g.Set(hex.Hex{Q: 0, R: 0}, grid.Forest)
	g.Set(hex.Hex{Q: -1, R: 1}, grid.Hills)
	g.Set(hex.Hex{Q: 2, R: 0}, grid.Grassland)

	cells := g.SortedCells()
	require.Len(t, cells, 4)
	assert.Equal(t, []grid.Cell{
		{Hex: hex.Hex{Q: 0, R: 0}, Biome: grid.Forest},
		{Hex: hex.Hex{Q: 2, R: 0}, Biome: grid.Grassland},
		{Hex: hex.Hex{Q: -1, R: 1}, Biome: grid.Hills},
		{Hex: hex.Hex{Q: 1, R: 1}, Biome: grid.Marsh},
	}, cells)
}

func TestMarshalJSON(t *testing.T) {
	g := grid.New()
	g.Set(hex.Hex{Q: 1, R: -1}, grid.Mountains)
	g.Set(hex.Hex{Q: 0, R: 0}, grid.Grassland)

	data, err := json.Marshal(g)
	require.NoError(t, err)
	assert.Equal(t,
		`[{"q":1,"r":-1,"value":"mountains"},{"q":0,"r":0,"value":"grassland"}]`,
		string(data))

	empty, err := json.Marshal(grid.New())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

// unitLayout projects axial coordinates 1:1 for bounding box tests.
type unitLayout struct{}

func (unitLayout) AxialToPixel(h hex.Hex) (x, y float64) {
	return float64(h.Q), float64(h.R)
}

func TestPixelBounds(t *testing.T) {
	g := grid.New()
	minX, maxX, minY, maxY := g.PixelBounds(unitLayout{})
	assert.Zero(t, minX)
	assert.Zero(t, maxX)
	assert.Zero(t, minY)
	assert.Zero(t, maxY)

	g.Set(hex.Hex{Q: -2, R: 1}, grid.Forest)
	g.Set(hex.Hex{Q: 3, R: -4}, grid.Hills)
	minX, maxX, minY, maxY = g.PixelBounds(unitLayout{})
	assert.Equal(t, -2.0, minX)
	assert.Equal(t, 3.0, maxX)
	assert.Equal(t, -4.0, minY)
	assert.Equal(t, 1.0, maxY)
}
