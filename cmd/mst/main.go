// Command mst loads an adjacency-matrix file and prints the total cost of its
// minimum spanning tree (or forest).
//
//	mst [-root v] [-edges] <kruskal|prim|prim-indexed> <filename>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/spantree/matrix"
	"github.com/katalvlaran/spantree/prim_kruskal"
)

const usage = "Usage: mst [-root v] [-edges] <kruskal|prim|prim-indexed> <filename>"

var errUsage = errors.New(usage)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mst: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// run parses args, computes the MST and writes the cost (and optionally the edges) to out.
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("mst", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	root := fs.Int("root", 0, "Start vertex for prim and prim-indexed")
	edges := fs.Bool("edges", false, "Print the MST edges, one \"u v w\" per line, after the cost")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%v: %w", err, errUsage)
	}
	if fs.NArg() != 2 {
		return errUsage
	}

	method, err := prim_kruskal.ParseMethod(fs.Arg(0))
	if err != nil {
		return err
	}
	g, err := matrix.ReadFile(fs.Arg(1))
	if err != nil {
		return err
	}

	mst, cost, err := prim_kruskal.Compute(g, method, prim_kruskal.WithRoot(*root))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, cost)
	if *edges {
		for _, e := range mst {
			fmt.Fprintf(out, "%d %d %d\n", e.From, e.To, e.Weight)
		}
	}

	return nil
}
