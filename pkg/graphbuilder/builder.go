package graphbuilder

import (
	"github.com/osmroute/roadgraph/pkg/concurrent"
	"github.com/osmroute/roadgraph/pkg/datastructure"
	"github.com/osmroute/roadgraph/pkg/geo"
	"github.com/osmroute/roadgraph/pkg/util"
	"go.uber.org/zap"
)

type decomposeResult struct {
	edges       []datastructure.Edge
	occurrences []Occurrence
}

// Builder runs the way -> graph pipeline: parallel per-way decomposition,
// node deduplication and adjacency assembly. decomposition is pure and
// independent per way, so it fans out across numWorkers goroutines; results
// are restored to way order before the single-threaded reduction so two
// runs over the same input produce identical output.
type Builder struct {
	numWorkers int
	log        *zap.Logger
}

func NewBuilder(numWorkers int, log *zap.Logger) *Builder {
	return &Builder{
		numWorkers: util.Max(numWorkers, 1),
		log:        log,
	}
}

func (b *Builder) Build(ways []datastructure.Way) (*datastructure.Graph, error) {
	b.log.Sugar().Infof("decomposing %d ways across %d workers...", len(ways), b.numWorkers)

	results := concurrent.MapOrdered(b.numWorkers, ways, func(w datastructure.Way) decomposeResult {
		edges, occurrences := DecomposeWay(w)
		return decomposeResult{edges: edges, occurrences: occurrences}
	})

	edges := make([]datastructure.Edge, 0, len(ways)*2)
	occurrences := make([]Occurrence, 0, len(ways)*2)
	for _, res := range results {
		edges = append(edges, res.edges...)
		occurrences = append(occurrences, res.occurrences...)
	}

	nodes, nodeIndex := dedupNodes(occurrences)

	outEdges, err := assemble(edges, nodeIndex, len(nodes))
	if err != nil {
		return nil, err
	}

	graph := datastructure.NewGraph(nodes, nodeIndex, edges, outEdges)
	graph.SetWayGeometry(collectWayGeometry(ways))

	b.log.Sugar().Infof("graph built: %d vertices, %d edges", graph.NumberOfVertices(), graph.NumberOfEdges())
	return graph, nil
}

// dedupNodes merges coordinate occurrences into one node per quantized key.
// occurrences arrive in way order then position order, so the first-seen
// raw coordinate that represents a key is reproducible across runs.
func dedupNodes(occurrences []Occurrence) ([]datastructure.Node, map[datastructure.NodeKey]datastructure.Index) {
	nodes := make([]datastructure.Node, 0, len(occurrences))
	nodeIndex := make(map[datastructure.NodeKey]datastructure.Index, len(occurrences))

	for _, occ := range occurrences {
		key := datastructure.NewNodeKey(occ.Coord.GetLat(), occ.Coord.GetLon())
		idx, ok := nodeIndex[key]
		if !ok {
			idx = datastructure.Index(len(nodes))
			nodeIndex[key] = idx
			nodes = append(nodes, *datastructure.NewNode(key, occ.Coord.GetLat(), occ.Coord.GetLon()))
		}
		nodes[idx].AddOccurrence(occ.WayID)
	}

	return nodes, nodeIndex
}

// assemble builds the per-node outgoing edge index lists, in edge
// production order. an edge whose source or target key is missing from the
// node set aborts assembly: that is a decomposition bug and masking it as
// data sparsity would corrupt every downstream consumer.
func assemble(edges []datastructure.Edge, nodeIndex map[datastructure.NodeKey]datastructure.Index,
	numNodes int) ([][]datastructure.Index, error) {
	outEdges := make([][]datastructure.Index, numNodes)

	for i, e := range edges {
		srcIdx, ok := nodeIndex[e.Source()]
		if !ok {
			return nil, util.WrapErrorf(nil, util.ErrGraphIntegrity,
				"edge %d of way %d: source key %s not in node set", i, e.WayID(), e.Source())
		}
		if _, ok := nodeIndex[e.Target()]; !ok {
			return nil, util.WrapErrorf(nil, util.ErrGraphIntegrity,
				"edge %d of way %d: target key %s not in node set", i, e.WayID(), e.Target())
		}
		outEdges[srcIdx] = append(outEdges[srcIdx], datastructure.Index(i))
	}

	return outEdges, nil
}

func collectWayGeometry(ways []datastructure.Way) map[int64][]geo.Coordinate {
	geometry := make(map[int64][]geo.Coordinate, len(ways))
	for _, w := range ways {
		if len(w.Coordinates()) > 0 {
			geometry[w.ID()] = w.Coordinates()
		}
	}
	return geometry
}
