package gen

import (
	"math/rand/v2"

	"github.com/janpfeifer/hexflower/internal/grid"
	"github.com/janpfeifer/hexflower/internal/hex"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ConcentricBuilder lays out snowflakes on a meta-hexflower: cluster centers
// sit on a spiral of meta-grid positions, so the composite is symmetric.
//
// metaRadius counts concentric rings of clusters (0 -> 1 cluster, 1 -> 7,
// 2 -> 19, ...).
type ConcentricBuilder struct {
	rng *rand.Rand
}

// NewConcentricBuilder returns a builder drawing from the given rng.
func NewConcentricBuilder(rng *rand.Rand) *ConcentricBuilder {
	return &ConcentricBuilder{rng: rng}
}

// Build generates one snowflake of clusterRadius per meta-position of
// Spiral(origin, metaRadius) and merges them first-wins into one grid.
//
// Centers are spaced 2*clusterRadius apart per meta-axis: one step short of
// disjoint, so neighboring clusters overlap by a rim and the composite shows
// no seams. Because the spiral enumerates positions center-first, inner
// clusters win every contested cell over outer ones.
func (b *ConcentricBuilder) Build(metaRadius, clusterRadius int) (*grid.Grid, error) {
	if metaRadius < 0 {
		return nil, errors.Errorf("meta radius must be >= 0, got %d", metaRadius)
	}
	if clusterRadius < 0 {
		return nil, errors.Errorf("cluster radius must be >= 0, got %d", clusterRadius)
	}

	spacing := 2 * clusterRadius
	metaPositions, err := hex.Spiral(hex.Hex{}, metaRadius)
	if err != nil {
		return nil, err
	}

	gen := NewSnowflake(b.rng)
	out := grid.New()
	for _, mh := range metaPositions {
		center := hex.Hex{Q: mh.Q * spacing, R: mh.R * spacing}
		cluster, err := gen.Generate(center, clusterRadius)
		if err != nil {
			return nil, err
		}
		out.MergeFirstWins(cluster)
	}
	klog.V(1).Infof("concentric build: %d clusters, %d cells total", len(metaPositions), out.Len())
	return out, nil
}
