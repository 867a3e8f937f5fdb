// Command mstbench times the MST algorithms over every input file of a folder and
// writes the measurements as CSV.
//
//	mstbench [-inputs ./inputs] [-out ./logs/results.csv] [-runs 30] [-methods kruskal,prim]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/katalvlaran/spantree/bench"
	"github.com/katalvlaran/spantree/prim_kruskal"
)

// config holds the parsed command line.
type config struct {
	inputs  string
	output  string
	runs    int
	methods []prim_kruskal.Method
}

func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("mstbench", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	inputs := fs.String("inputs", "./inputs", "Folder containing the input matrices")
	output := fs.String("out", "./logs/results.csv", "Path of the CSV file to write")
	runs := fs.Int("runs", bench.DefaultRuns, "Repetitions per (file, algorithm)")
	methods := fs.String("methods", "kruskal,prim", "Comma-separated algorithms to time")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() != 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	ms, err := parseMethods(*methods)
	if err != nil {
		return config{}, fmt.Errorf("invalid -methods: %w", err)
	}

	return config{inputs: *inputs, output: *output, runs: *runs, methods: ms}, nil
}

func parseMethods(s string) ([]prim_kruskal.Method, error) {
	var out []prim_kruskal.Method
	for _, name := range strings.Split(s, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		m, err := prim_kruskal.ParseMethod(name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no algorithm selected")
	}

	return out, nil
}

// run parses args, times every selected algorithm and writes the CSV.
func run(ctx context.Context, args []string, logger *log.Logger) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	start := time.Now()
	trials, err := bench.Run(ctx, cfg.inputs,
		bench.WithRuns(cfg.runs),
		bench.WithMethods(cfg.methods...),
		bench.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	if err = bench.WriteCSVFile(cfg.output, trials); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	logger.Printf("%d trials in %s, results saved to %s", len(trials), time.Since(start).Round(time.Millisecond), cfg.output)

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], log.Default()); err != nil {
		stop()
		log.Fatal(err)
	}
}
