package chemgraph

import (
	"sort"

	chem "github.com/rmera/mol2props"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Atom is a node of the molecular graph. Its ID is the index of
// the atom in the topology.
type Atom struct {
	*chem.Atom
}

func (A Atom) ID() int64 {
	return int64(A.Index())
}

// Bond is an undirected edge of the molecular graph
type Bond struct {
	*chem.Bond
	F, T Atom
}

func (B Bond) From() graph.Node {
	return B.F
}

func (B Bond) To() graph.Node {
	return B.T
}

// bonds are not directional
func (B Bond) ReversedEdge() graph.Edge {
	return Bond{Bond: B.Bond, F: B.T, T: B.F}
}

// Topology implements gonum's graph.Undirected over a chem.Topology.
type Topology struct {
	*chem.Topology
	g *simple.UndirectedGraph
}

// TopologyFromChem builds the molecular graph of T. Every atom is a node, even if
// it has no bonds.
func TopologyFromChem(T *chem.Topology) *Topology {
	T.FillIndexes()
	g := simple.NewUndirectedGraph()
	for _, at := range T.Atoms {
		g.AddNode(Atom{at})
	}
	for _, b := range T.Bonds {
		if b.At1 == b.At2 {
			continue //simple graphs can't have self edges, and the parser rejects them anyway
		}
		g.SetEdge(Bond{Bond: b, F: Atom{b.At1}, T: Atom{b.At2}})
	}
	return &Topology{Topology: T, g: g}
}

func (T *Topology) Node(id int64) graph.Node {
	return T.g.Node(id)
}

func (T *Topology) Nodes() graph.Nodes {
	return T.g.Nodes()
}

func (T *Topology) From(id int64) graph.Nodes {
	return T.g.From(id)
}

func (T *Topology) HasEdgeBetween(xid, yid int64) bool {
	return T.g.HasEdgeBetween(xid, yid)
}

func (T *Topology) Edge(uid, vid int64) graph.Edge {
	return T.g.Edge(uid, vid)
}

func (T *Topology) EdgeBetween(xid, yid int64) graph.Edge {
	return T.g.EdgeBetween(xid, yid)
}

// BondBetween returns the chem.Bond between atoms i and j, or nil if they are not bonded.
func (T *Topology) BondBetween(i, j int) *chem.Bond {
	e := T.g.EdgeBetween(int64(i), int64(j))
	if e == nil {
		return nil
	}
	return e.(Bond).Bond
}

// CycleBasis returns a cycle basis of the molecular graph, each ring as the sorted
// indexes of its atoms. The number of rings is the cyclomatic number of the molecule.
// Rings are sorted by size, and then by their first atom.
func (T *Topology) CycleBasis() [][]int {
	cycles := topo.UndirectedCyclesIn(T)
	rings := make([][]int, 0, len(cycles))
	for _, c := range cycles {
		seen := make(map[int64]bool, len(c))
		ring := make([]int, 0, len(c))
		for _, n := range c {
			if seen[n.ID()] {
				continue //the first node is repeated to close the cycle.
			}
			seen[n.ID()] = true
			ring = append(ring, int(n.ID()))
		}
		if len(ring) < 3 {
			continue
		}
		sort.Ints(ring)
		rings = append(rings, ring)
	}
	sortRings(rings)
	return rings
}

// RingBonds returns the bonds between consecutive members of the ring, i.e. those where both
// atoms are in ring and are bonded.
func (T *Topology) RingBonds(ring []int) []*chem.Bond {
	ret := make([]*chem.Bond, 0, len(ring))
	for i, a := range ring {
		for _, b := range ring[i+1:] {
			if bond := T.BondBetween(a, b); bond != nil {
				ret = append(ret, bond)
			}
		}
	}
	return ret
}

func sortRings(rings [][]int) {
	sort.Slice(rings, func(i, j int) bool {
		if len(rings[i]) != len(rings[j]) {
			return len(rings[i]) < len(rings[j])
		}
		return rings[i][0] < rings[j][0]
	})
}
