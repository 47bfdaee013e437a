// hexflower generates procedural hexflower maps and exports them to
// JSON and SVG.
//
// Examples:
//
//	hexflower -seed=42 -radius=2 -svg=map.svg
//	hexflower -seed=42 -radius=2 -count=5 -json=map.json
//	hexflower -seed=42 -radius=2 -meta_radius=1 -svg=flower.svg -preview
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/janpfeifer/hexflower/internal/gen"
	"github.com/janpfeifer/hexflower/internal/grid"
	"github.com/janpfeifer/hexflower/internal/hex"
	"github.com/janpfeifer/hexflower/internal/render"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagSeed   = flag.Int64("seed", -1, "RNG seed for reproducibility. Negative means seed from the clock.")
	flagRadius = flag.Int("radius", 2, "Snowflake radius (2 => 19 hexes).")
	flagCount  = flag.Int("count", 1, "Number of snowflakes to connect in a chain.")
	flagMeta   = flag.Int("meta_radius", -1,
		"Number of concentric rings of snowflakes (1->7, 2->19, 3->37 ...). If >= 0, overrides -count.")
	flagJSON    = flag.String("json", "", "Write JSON output to this path.")
	flagSVG     = flag.String("svg", "", "Write SVG output to this path.")
	flagHexSize = flag.Float64("hex_size", 38.0, "Hex radius in pixels for SVG.")
	flagCoords  = flag.Bool("coords", true, "Render coordinate labels in SVG.")
	flagLabels  = flag.Bool("labels", true, "Render biome labels in SVG.")
	flagTitle   = flag.String("title", "", "SVG title. A default is derived from the parameters.")
	flagPreview = flag.Bool("preview", false, "Print a colored preview of the map to the terminal.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	seed := *flagSeed
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))

	g, err := generate(rng)
	if err != nil {
		klog.Exitf("Failed to generate map: %+v", err)
	}

	if *flagJSON != "" {
		writeJSON(g, *flagJSON)
	}
	if *flagSVG != "" {
		renderer := render.NewSVGRenderer(render.PointyTopLayout{Size: *flagHexSize})
		err := renderer.WriteSVG(g, *flagSVG, render.Options{
			Title:      title(seed),
			ShowCoords: *flagCoords,
			ShowLabels: *flagLabels,
		})
		if err != nil {
			klog.Exitf("Failed to write SVG: %+v", err)
		}
	}
	if *flagPreview {
		render.Preview(g)
	}

	// Default output when no file was requested.
	if *flagJSON == "" && *flagSVG == "" && !*flagPreview {
		fmt.Println(string(must.M1(json.MarshalIndent(g, "", "  "))))
	}
}

// generate picks the builder from the flags: concentric meta-map, single
// snowflake, or connected chain.
func generate(rng *rand.Rand) (*grid.Grid, error) {
	switch {
	case *flagMeta >= 0:
		return gen.NewConcentricBuilder(rng).Build(*flagMeta, *flagRadius)
	case *flagCount == 1:
		return gen.NewSnowflake(rng).Generate(hex.Hex{}, *flagRadius)
	default:
		return gen.NewConnectedBuilder(rng).BuildChain(*flagCount, *flagRadius, gen.DefaultMaxTries)
	}
}

func title(seed int64) string {
	if *flagTitle != "" {
		return *flagTitle
	}
	if *flagMeta >= 0 {
		return fmt.Sprintf("Hexflower-of-Hexflowers (radius=%d, meta_radius=%d, seed=%d)",
			*flagRadius, *flagMeta, seed)
	}
	return fmt.Sprintf("Hexflower (radius=%d, count=%d, seed=%d)", *flagRadius, *flagCount, seed)
}

func writeJSON(g *grid.Grid, path string) {
	data := must.M1(json.MarshalIndent(g, "", "  "))
	if dir := filepath.Dir(path); dir != "." {
		must.M(os.MkdirAll(dir, 0755))
	}
	must.M(os.WriteFile(path, data, 0644))
}
