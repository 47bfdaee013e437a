package gen

import (
	"math/rand/v2"

	"github.com/janpfeifer/hexflower/internal/grid"
	"github.com/janpfeifer/hexflower/internal/hex"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Snowflake generates one hexflower cluster ring-by-ring, using an inward
// already-filled neighbor as the "previous hex" so biome transitions follow
// the d10 tables outward from the center.
//
// All randomness flows through the single rng, one draw per cell in ring
// order, so the same seed reproduces the same cluster.
type Snowflake struct {
	rng *rand.Rand
}

// NewSnowflake returns a generator drawing from the given rng.
func NewSnowflake(rng *rand.Rand) *Snowflake {
	return &Snowflake{rng: rng}
}

// choosePredecessor picks the already-filled neighbor whose biome seeds the
// transition roll for target. Preference order: the first neighbor, in
// Directions order, that is exactly one step closer to center; otherwise the
// first filled neighbor in Directions order; otherwise none.
//
// The scan order is fixed so the rng draw sequence is reproducible.
func choosePredecessor(target, center hex.Hex, g *grid.Grid) (hex.Hex, bool) {
	targetDist := target.Distance(center)
	neighbors := target.Neighbors()
	for _, nb := range neighbors {
		if g.Has(nb) && nb.Distance(center) == targetDist-1 {
			return nb, true
		}
	}
	for _, nb := range neighbors {
		if g.Has(nb) {
			return nb, true
		}
	}
	return hex.Hex{}, false
}

// Generate builds one cluster of the given radius around center. The center
// cell is always generated first and always included, whatever the radius.
func (s *Snowflake) Generate(center hex.Hex, radius int) (*grid.Grid, error) {
	if radius < 0 {
		return nil, errors.Errorf("snowflake radius must be >= 0, got %d", radius)
	}

	g := grid.New()
	g.Set(center, StartBiome(s.rng))

	for r := 1; r <= radius; r++ {
		ring, err := hex.Ring(center, r)
		if err != nil {
			return nil, err
		}
		for _, h := range ring {
			prev, found := choosePredecessor(h, center, g)
			if !found {
				// Unreachable once the center is set and rings are filled
				// in increasing radius; fall back to a fresh start roll.
				klog.Warningf("no filled neighbor for %s while generating ring %d, rolling a fresh start biome", h, r)
				g.Set(h, StartBiome(s.rng))
				continue
			}
			prevBiome, _ := g.At(prev)
			if prevBiome == "" {
				prevBiome = grid.Grassland
			}
			g.Set(h, NextBiome(prevBiome, s.rng))
		}
	}
	klog.V(1).Infof("generated snowflake at %s, radius=%d: %d cells", center, radius, g.Len())
	return g, nil
}
