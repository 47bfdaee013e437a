package gen

import (
	"math/rand/v2"

	"github.com/janpfeifer/hexflower/internal/grid"
	"github.com/janpfeifer/hexflower/internal/hex"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// DefaultMaxTries is the per-cluster retry budget for connected placement.
const DefaultMaxTries = 5000

// ConnectedBuilder chains multiple snowflakes into one connected super-map:
// each new cluster is translated to a random spot where it touches the
// existing map edge-to-edge without overlapping it.
type ConnectedBuilder struct {
	rng *rand.Rand
}

// NewConnectedBuilder returns a builder drawing from the given rng.
func NewConnectedBuilder(rng *rand.Rand) *ConnectedBuilder {
	return &ConnectedBuilder{rng: rng}
}

// BuildChain generates count snowflakes of the given radius and connects
// them. The first cluster seeds the map at the origin; each following
// cluster is generated at the origin and then retried at random offsets, up
// to maxTries per cluster, until it lands disjoint from and adjacent to the
// map built so far.
func (b *ConnectedBuilder) BuildChain(count, radius, maxTries int) (*grid.Grid, error) {
	if count < 1 {
		return nil, errors.Errorf("cluster count must be >= 1, got %d", count)
	}

	gen := NewSnowflake(b.rng)
	superMap, err := gen.Generate(hex.Hex{}, radius)
	if err != nil {
		return nil, err
	}

	for ii := 1; ii < count; ii++ {
		cluster, err := gen.Generate(hex.Hex{}, radius)
		if err != nil {
			return nil, err
		}
		placed, err := b.place(superMap, cluster, maxTries)
		if err != nil {
			return nil, errors.WithMessagef(err, "placing cluster %d of %d", ii+1, count)
		}
		// Disjointness was checked by place, so plain union is unambiguous.
		superMap.Update(placed)
	}
	return superMap, nil
}

// place tries up to maxTries random translations of cluster and returns the
// first translation that is disjoint from superMap and touches it. Each
// attempt aligns a random cluster cell (the anchor) onto a random frontier
// cell of superMap.
func (b *ConnectedBuilder) place(superMap, cluster *grid.Grid, maxTries int) (*grid.Grid, error) {
	frontier := superMap.Frontier()
	if len(frontier) == 0 {
		return nil, errors.Errorf("super-map of %d cells has no frontier to attach to", superMap.Len())
	}
	anchors := cluster.Hexes()

	for try := 0; try < maxTries; try++ {
		target := frontier[b.rng.IntN(len(frontier))]
		anchor := anchors[b.rng.IntN(len(anchors))]
		moved := cluster.Translate(target.Q-anchor.Q, target.R-anchor.R)

		if !superMap.IsDisjoint(moved) {
			continue
		}
		// The anchor sits on a frontier cell, so adjacency is all but
		// guaranteed; keep the check strict anyway.
		if !superMap.Touches(moved) {
			continue
		}
		klog.V(1).Infof("placed cluster anchored at %s onto %s after %d tries", anchor, target, try+1)
		return moved, nil
	}
	return nil, errors.Errorf("no overlap-free adjacent placement found in %d tries", maxTries)
}
