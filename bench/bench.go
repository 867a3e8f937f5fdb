// Package bench measures the wall-clock time of the MST algorithms over a folder of
// adjacency-matrix input files and records one Trial per (file, method, repetition).
//
// Every trial loads the file again and then computes the MST, so the measured time
// covers parsing plus the algorithm, and no graph is shared between trials.
// Results are written as CSV with the header
//
//	input_file,algorithm,cost,execution_time
//
// where execution_time is in seconds.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/spantree/matrix"
	"github.com/katalvlaran/spantree/prim_kruskal"
)

// DefaultRuns is the number of repetitions per (file, method) pair.
const DefaultRuns = 30

// DefaultExt selects input files inside a folder.
const DefaultExt = ".txt"

// ErrNoInputs indicates that the input folder holds no matching file.
var ErrNoInputs = errors.New("bench: no input files")

// ErrBadRuns indicates a non-positive repetition count.
var ErrBadRuns = errors.New("bench: runs must be positive")

// Trial is the outcome of one timed run.
type Trial struct {
	InputFile string
	Method    prim_kruskal.Method
	Cost      int64
	Elapsed   time.Duration
}

// Options configures a benchmark run.
type Options struct {
	Runs    int
	Methods []prim_kruskal.Method
	Ext     string
	Logger  *log.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithRuns sets the repetition count per (file, method).
func WithRuns(n int) Option {
	return func(o *Options) { o.Runs = n }
}

// WithMethods replaces the list of algorithms to time.
func WithMethods(ms ...prim_kruskal.Method) Option {
	return func(o *Options) { o.Methods = append([]prim_kruskal.Method(nil), ms...) }
}

// WithExt changes the file extension used by Run to pick inputs.
func WithExt(ext string) Option {
	return func(o *Options) { o.Ext = ext }
}

// WithLogger sets the progress logger. Nothing is logged by default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns 30 runs of Kruskal and Prim over *.txt files, silently.
func DefaultOptions() Options {
	return Options{
		Runs:    DefaultRuns,
		Methods: []prim_kruskal.Method{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim},
		Ext:     DefaultExt,
		Logger:  log.New(io.Discard, "", 0),
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Runs <= 0 {
		return o, fmt.Errorf("runs=%d: %w", o.Runs, ErrBadRuns)
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard, "", 0)
	}

	return o, nil
}

// Inputs lists the files of dir whose name ends with ext, sorted by name.
func Inputs(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s/*%s: %w", dir, ext, ErrNoInputs)
	}

	return files, nil
}

// Run times every method on every matching file of dir.
func Run(ctx context.Context, dir string, opts ...Option) ([]Trial, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	files, err := Inputs(dir, o.Ext)
	if err != nil {
		return nil, err
	}

	return RunFiles(ctx, files, opts...)
}

// RunFiles times every method on every given file. It stops at the first load or
// compute error and checks ctx between trials.
func RunFiles(ctx context.Context, files []string, opts ...Option) ([]Trial, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	var trials []Trial
	for _, path := range files {
		for _, m := range o.Methods {
			o.Logger.Printf("%s: %s x%d", filepath.Base(path), m, o.Runs)
			for i := 0; i < o.Runs; i++ {
				if err = ctx.Err(); err != nil {
					return trials, err
				}
				tr, err := runOnce(path, m)
				if err != nil {
					return trials, err
				}
				trials = append(trials, tr)
			}
		}
	}
	o.Logger.Printf("completed %d trials", len(trials))

	return trials, nil
}

func runOnce(path string, m prim_kruskal.Method) (Trial, error) {
	start := time.Now()
	g, err := matrix.ReadFile(path)
	if err != nil {
		return Trial{}, err
	}
	_, cost, err := prim_kruskal.Compute(g, m)
	if err != nil {
		return Trial{}, fmt.Errorf("%s %s: %w", path, m, err)
	}

	return Trial{
		InputFile: filepath.Base(path),
		Method:    m,
		Cost:      cost,
		Elapsed:   time.Since(start),
	}, nil
}
