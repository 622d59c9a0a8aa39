package datastructure

import (
	"github.com/osmroute/roadgraph/pkg/geo"
)

// AdjacencyList maps each node key to its outgoing edges, in the order the
// edges were produced. parallel edges between the same node pair are never
// merged.
type AdjacencyList map[NodeKey][]Edge

// Graph owns the node and edge arenas of one pipeline run. edges reference
// nodes by index in both directions and no single-owner relationship exists
// between them, so cross-references are arena indexes instead of pointers.
// a Graph is immutable once built; a new run fully replaces it.
type Graph struct {
	nodes     []Node
	nodeIndex map[NodeKey]Index
	edges     []Edge
	outEdges  [][]Index

	wayGeometry map[int64][]geo.Coordinate
}

func NewGraph(nodes []Node, nodeIndex map[NodeKey]Index, edges []Edge,
	outEdges [][]Index) *Graph {
	return &Graph{
		nodes:     nodes,
		nodeIndex: nodeIndex,
		edges:     edges,
		outEdges:  outEdges,
	}
}

func (g *Graph) NumberOfVertices() int {
	return len(g.nodes)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.edges)
}

func (g *Graph) GetNode(key NodeKey) (*Node, bool) {
	idx, ok := g.nodeIndex[key]
	if !ok {
		return nil, false
	}
	return &g.nodes[idx], true
}

func (g *Graph) GetNodeByIndex(idx Index) *Node {
	return &g.nodes[idx]
}

func (g *Graph) GetEdge(idx Index) Edge {
	return g.edges[idx]
}

// GetOutgoingEdges returns the outgoing edges of key in production order.
// unknown keys yield nil.
func (g *Graph) GetOutgoingEdges(key NodeKey) []Edge {
	idx, ok := g.nodeIndex[key]
	if !ok {
		return nil
	}
	out := make([]Edge, len(g.outEdges[idx]))
	for i, eIdx := range g.outEdges[idx] {
		out[i] = g.edges[eIdx]
	}
	return out
}

func (g *Graph) ForNodes(fn func(n *Node)) {
	for i := range g.nodes {
		fn(&g.nodes[i])
	}
}

func (g *Graph) ForEdges(fn func(e Edge)) {
	for i := range g.edges {
		fn(g.edges[i])
	}
}

// AdjacencyList materializes the node key -> outgoing edges mapping. edge
// order per node is production order.
func (g *Graph) AdjacencyList() AdjacencyList {
	adj := make(AdjacencyList, len(g.nodes))
	for i := range g.nodes {
		key := g.nodes[i].Key()
		adj[key] = g.GetOutgoingEdges(key)
	}
	return adj
}

func (g *Graph) SetWayGeometry(geometry map[int64][]geo.Coordinate) {
	g.wayGeometry = geometry
}

func (g *Graph) GetWayGeometry(wayID int64) []geo.Coordinate {
	return g.wayGeometry[wayID]
}

func (g *Graph) TotalDistance() float64 {
	total := 0.0
	for i := range g.edges {
		total += g.edges[i].Distance()
	}
	return total
}
