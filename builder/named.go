// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// named.go - name-addressable constructors for configuration-driven callers
// (the generate command and config files).

package builder

import (
	"fmt"
	"sort"
	"strings"
)

// Topology names accepted by Shape.
const (
	TopologyPath            = "path"
	TopologyCycle           = "cycle"
	TopologyStar            = "star"
	TopologyWheel           = "wheel"
	TopologyComplete        = "complete"
	TopologyGrid            = "grid"
	TopologyRandomSparse    = "sparse"
	TopologyRandomConnected = "connected"
)

// Shape describes one graph to generate.
//
//	Topology     one of the Topology* names (case-insensitive).
//	Vertices     n for every topology except grid.
//	Rows, Cols   grid dimensions.
//	Probability  edge probability for sparse.
//	Extra        extra edges beyond the spanning tree for connected.
type Shape struct {
	Topology    string  `mapstructure:"topology" yaml:"topology"`
	Vertices    int     `mapstructure:"vertices" yaml:"vertices"`
	Rows        int     `mapstructure:"rows" yaml:"rows"`
	Cols        int     `mapstructure:"cols" yaml:"cols"`
	Probability float64 `mapstructure:"probability" yaml:"probability"`
	Extra       int     `mapstructure:"extra" yaml:"extra"`
}

var shapeFactories = map[string]func(Shape) Constructor{
	TopologyPath:            func(s Shape) Constructor { return Path(s.Vertices) },
	TopologyCycle:           func(s Shape) Constructor { return Cycle(s.Vertices) },
	TopologyStar:            func(s Shape) Constructor { return Star(s.Vertices) },
	TopologyWheel:           func(s Shape) Constructor { return Wheel(s.Vertices) },
	TopologyComplete:        func(s Shape) Constructor { return Complete(s.Vertices) },
	TopologyGrid:            func(s Shape) Constructor { return Grid(s.Rows, s.Cols) },
	TopologyRandomSparse:    func(s Shape) Constructor { return RandomSparse(s.Vertices, s.Probability) },
	TopologyRandomConnected: func(s Shape) Constructor { return RandomConnected(s.Vertices, s.Extra) },
}

// Constructor resolves the shape to its Constructor.
// Unknown names → ErrUnknownTopology. Size errors surface when the constructor runs.
func (s Shape) Constructor() (Constructor, error) {
	f, ok := shapeFactories[strings.ToLower(strings.TrimSpace(s.Topology))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownTopology, s.Topology, strings.Join(Topologies(), ", "))
	}

	return f(s), nil
}

// String renders the shape compactly, e.g. "sparse(n=20,p=0.15)".
func (s Shape) String() string {
	switch strings.ToLower(s.Topology) {
	case TopologyGrid:
		return fmt.Sprintf("%s(%dx%d)", s.Topology, s.Rows, s.Cols)
	case TopologyRandomSparse:
		return fmt.Sprintf("%s(n=%d,p=%g)", s.Topology, s.Vertices, s.Probability)
	case TopologyRandomConnected:
		return fmt.Sprintf("%s(n=%d,extra=%d)", s.Topology, s.Vertices, s.Extra)
	default:
		return fmt.Sprintf("%s(n=%d)", s.Topology, s.Vertices)
	}
}

// Topologies returns the known topology names, sorted.
func Topologies() []string {
	out := make([]string, 0, len(shapeFactories))
	for k := range shapeFactories {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
