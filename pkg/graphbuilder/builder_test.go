package graphbuilder

import (
	"errors"
	"testing"

	"github.com/osmroute/roadgraph/pkg/datastructure"
	"github.com/osmroute/roadgraph/pkg/geo"
	"github.com/osmroute/roadgraph/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testWays() []datastructure.Way {
	// ways 1 and 2 share their junction at (40.01, -80.0); way 2's raw
	// junction coordinate differs only beyond the 6th decimal place
	return []datastructure.Way{
		datastructure.NewWay(1,
			[]geo.Coordinate{
				geo.NewCoordinate(40.0, -80.0),
				geo.NewCoordinate(40.01, -80.0),
			},
			"residential", datastructure.TextMaxSpeed("50"), "", "First"),
		datastructure.NewWay(2,
			[]geo.Coordinate{
				geo.NewCoordinate(40.0100004, -80.0000003),
				geo.NewCoordinate(40.02, -80.0),
			},
			"primary", datastructure.TextMaxSpeed("30 mph"), "yes", "Second"),
	}
}

func TestBuildMergesCoincidentEndpoints(t *testing.T) {
	builder := NewBuilder(1, zap.NewNop())
	graph, err := builder.Build(testWays())
	require.NoError(t, err)

	// 4 raw coordinates, 3 distinct keys
	assert.Equal(t, 3, graph.NumberOfVertices())
	// way 1 bidirectional, way 2 oneway
	assert.Equal(t, 3, graph.NumberOfEdges())

	junctionKey := datastructure.NewNodeKey(40.01, -80.0)
	junction, ok := graph.GetNode(junctionKey)
	require.True(t, ok)

	// representative coordinate is the first-seen raw one, from way 1
	assert.Equal(t, 40.01, junction.GetLat())
	assert.Equal(t, -80.0, junction.GetLon())
	assert.Equal(t, 2, junction.Occurrences())
	assert.ElementsMatch(t, []int64{1, 2}, junction.WayIDs())

	// the junction has the reverse edge of way 1 and the forward edge of
	// way 2 outgoing, in production order
	out := graph.GetOutgoingEdges(junctionKey)
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].WayID())
	assert.Equal(t, int64(2), out[1].WayID())
}

func TestBuildDeterministic(t *testing.T) {
	ways := testWays()

	first, err := NewBuilder(1, zap.NewNop()).Build(ways)
	require.NoError(t, err)
	second, err := NewBuilder(4, zap.NewNop()).Build(ways)
	require.NoError(t, err)

	// identical content and ordering regardless of worker count
	assert.Equal(t, first.AdjacencyList(), second.AdjacencyList())
}

func TestBuildParallelEdgesAreKept(t *testing.T) {
	coords := []geo.Coordinate{
		geo.NewCoordinate(40.0, -80.0),
		geo.NewCoordinate(40.01, -80.0),
	}
	ways := []datastructure.Way{
		datastructure.NewWay(1, coords, "residential", datastructure.AbsentMaxSpeed(), "yes", ""),
		datastructure.NewWay(2, coords, "residential", datastructure.AbsentMaxSpeed(), "yes", ""),
	}

	graph, err := NewBuilder(1, zap.NewNop()).Build(ways)
	require.NoError(t, err)

	out := graph.GetOutgoingEdges(datastructure.NewNodeKey(40.0, -80.0))
	require.Len(t, out, 2, "parallel edges between the same node pair are never merged")
	assert.Equal(t, int64(1), out[0].WayID())
	assert.Equal(t, int64(2), out[1].WayID())
}

func TestAssembleRejectsUnknownNodeKey(t *testing.T) {
	nodes, nodeIndex := dedupNodes([]Occurrence{
		{Coord: geo.NewCoordinate(40.0, -80.0), WayID: 1, Position: 0},
	})
	require.Len(t, nodes, 1)

	known := datastructure.NewNodeKey(40.0, -80.0)
	unknown := datastructure.NewNodeKey(41.0, -81.0)
	edges := []datastructure.Edge{
		datastructure.NewEdge(known, unknown, 10, 10, 1, 50),
	}

	adjacency, err := assemble(edges, nodeIndex, len(nodes))
	require.Error(t, err)
	assert.Nil(t, adjacency, "no partial adjacency on integrity violation")

	var werr *util.Error
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, util.ErrGraphIntegrity, werr.Code())
}

func TestBuilderClampsWorkerCount(t *testing.T) {
	graph, err := NewBuilder(0, zap.NewNop()).Build(testWays())
	require.NoError(t, err)
	assert.Equal(t, 3, graph.NumberOfVertices())
	assert.Equal(t, 3, graph.NumberOfEdges())
}

func TestBuildEmptyInput(t *testing.T) {
	graph, err := NewBuilder(2, zap.NewNop()).Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, graph.NumberOfVertices())
	assert.Equal(t, 0, graph.NumberOfEdges())
	assert.Empty(t, graph.AdjacencyList())
}
