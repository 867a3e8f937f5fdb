// Package prim_kruskal defines configuration options, the Method selector and sentinel errors
// for MST computation.
package prim_kruskal

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/spantree/core"
)

// ErrInvalidGraph indicates that the graph description handed to an MST algorithm is unusable.
var ErrInvalidGraph = errors.New("prim_kruskal: invalid graph")

// ErrRootOutOfRange indicates that the Prim start vertex is not in [0, n).
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrUnknownMethod indicates an unrecognized algorithm name.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// Method selects an MST algorithm. The zero value is MethodKruskal.
type Method int

const (
	// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
	MethodKruskal Method = iota

	// MethodPrim selects Prim's algorithm with a lazy-deletion heap.
	MethodPrim

	// MethodPrimIndexed selects Prim's algorithm with a decrease-key indexed heap.
	MethodPrimIndexed
)

var methodNames = [...]string{
	MethodKruskal:     "kruskal",
	MethodPrim:        "prim",
	MethodPrimIndexed: "prim-indexed",
}

// Methods lists every supported Method in declaration order.
func Methods() []Method {
	return []Method{MethodKruskal, MethodPrim, MethodPrimIndexed}
}

// String returns the command-line name of m.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod resolves a case-insensitive algorithm name.
//
// Errors: ErrUnknownMethod.
func ParseMethod(name string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, s := range methodNames {
		if s == key {
			return Method(i), nil
		}
	}

	return 0, fmt.Errorf("%q (want one of %s): %w", name, strings.Join(methodNames[:], ", "), ErrUnknownMethod)
}

// MSTOptions configures Prim's start vertex. Kruskal ignores it.
type MSTOptions struct {
	// Root is the starting vertex for Prim's algorithm.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions with Root = 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{Root: 0}
}

func buildOptions(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute runs the algorithm selected by m over g.
//
//	– MethodKruskal:     Kruskal(g.Order(), g.Edges()).
//	– MethodPrim:        Prim(g.Order(), g.Adjacency(), opts...).
//	– MethodPrimIndexed: PrimIndexed(g.Order(), g.Adjacency(), opts...).
//
// Errors: ErrInvalidGraph for a nil graph, ErrUnknownMethod for an undeclared Method,
// plus whatever the selected algorithm returns.
func Compute(g *core.Graph, m Method, opts ...Option) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}

	switch m {
	case MethodKruskal:
		return Kruskal(g.Order(), g.Edges())
	case MethodPrim:
		return Prim(g.Order(), g.Adjacency(), opts...)
	case MethodPrimIndexed:
		return PrimIndexed(g.Order(), g.Adjacency(), opts...)
	default:
		return nil, 0, fmt.Errorf("%v: %w", m, ErrUnknownMethod)
	}
}

// Spans reports whether mst spans all n vertices, i.e. the input graph was connected.
func Spans(n int, mst []core.Edge) bool {
	if n <= 1 {
		return len(mst) == 0
	}

	return len(mst) == n-1
}

// Vertices returns the sorted distinct endpoints of mst.
func Vertices(mst []core.Edge) []int {
	seen := make(map[int]struct{}, len(mst)+1)
	out := make([]int, 0, len(mst)+1)
	for _, e := range mst {
		for _, v := range [2]int{e.From, e.To} {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Ints(out)

	return out
}
