// Package gen implements the map generators: the d10 biome tables, the
// ring-by-ring snowflake fill, and the two cluster composition builders.
package gen

import (
	"math/rand/v2"

	"github.com/janpfeifer/hexflower/internal/grid"
)

// d10 rolls a uniform integer in [1, 10].
func d10(rng *rand.Rand) int {
	return 1 + rng.IntN(10)
}

// StartBiome rolls the starting hex table:
//
//	1-4 grassland, 5-6 forest, 7-8 hills, 9 marsh, 10 mountains.
func StartBiome(rng *rand.Rand) grid.Biome {
	switch x := d10(rng); {
	case x <= 4:
		return grid.Grassland
	case x <= 6:
		return grid.Forest
	case x <= 8:
		return grid.Hills
	case x == 9:
		return grid.Marsh
	default:
		return grid.Mountains
	}
}

// NextBiome rolls the transition table given the previous hex's biome:
//
//	1-5 same as previous, 6 grassland, 7 forest, 8 hills, 9 marsh, 10 mountains.
//
// prev is echoed back on 1-5 even if it is outside the fixed vocabulary.
func NextBiome(prev grid.Biome, rng *rand.Rand) grid.Biome {
	switch x := d10(rng); {
	case x <= 5:
		return prev
	case x == 6:
		return grid.Grassland
	case x == 7:
		return grid.Forest
	case x == 8:
		return grid.Hills
	case x == 9:
		return grid.Marsh
	default:
		return grid.Mountains
	}
}
