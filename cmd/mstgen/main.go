// Command mstgen writes random connected graphs in the adjacency-matrix format,
// one file per requested size, for use with mst and mstbench.
//
//	mstgen [-out ./inputs] [-sizes 10,50,100,500] [-density 0.3] [-max_weight 100] [-seed 42]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/matrix"
)

// config holds the parsed command line.
type config struct {
	output    string
	sizes     []int
	density   float64
	maxWeight int64
	seed      int64
}

func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("mstgen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	output := fs.String("out", "./inputs", "Folder the generated files are written to")
	sizes := fs.String("sizes", "10,50,100,500", "Comma-separated vertex counts, one file each")
	density := fs.Float64("density", 0.3, "Probability of each extra edge beyond the random spanning tree")
	maxWeight := fs.Int64("max_weight", 100, "Edge weights are drawn uniformly from [1, max_weight]")
	seed := fs.Int64("seed", 42, "Seed value for the random number generator")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := config{output: *output, density: *density, maxWeight: *maxWeight, seed: *seed}
	if err := validateConfig(cfg); err != nil {
		return config{}, err
	}
	var err error
	if cfg.sizes, err = parseSizes(*sizes); err != nil {
		return config{}, fmt.Errorf("invalid -sizes: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg config) error {
	if cfg.output == "" {
		return fmt.Errorf("missing output folder")
	}
	if p := cfg.density; p < 0 || p > 1 {
		return fmt.Errorf("density must be in [0,1], got %v", p)
	}
	if w := cfg.maxWeight; w < 1 {
		return fmt.Errorf("max_weight must be at least 1, got %d", w)
	}

	return nil
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid size %q", f)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}

	return sizes, nil
}

// run parses args and writes one graph file per requested size.
func run(args []string, logger *log.Logger) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(cfg.output, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", cfg.output, err)
	}

	for i, n := range cfg.sizes {
		g, err := builder.BuildGraph(n,
			[]builder.BuilderOption{
				builder.WithSeed(cfg.seed + int64(i)),
				builder.WithWeightRange(1, cfg.maxWeight),
			},
			builder.RandomConnected(cfg.density),
		)
		if err != nil {
			return fmt.Errorf("failed to build graph with %d vertices: %w", n, err)
		}

		path := filepath.Join(cfg.output, fmt.Sprintf("graph_%d.txt", n))
		if err := matrix.WriteFile(path, g); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Printf("Wrote %s: %d vertices, %d edges", path, g.Order(), g.Size())
	}

	return nil
}

func main() {
	if err := run(os.Args[1:], log.Default()); err != nil {
		log.Fatal(err)
	}
}
