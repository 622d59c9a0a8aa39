package graphbuilder

import (
	"strings"

	"github.com/osmroute/roadgraph/pkg/datastructure"
	"github.com/osmroute/roadgraph/pkg/geo"
)

// Occurrence records one vertex visit of a way: the raw coordinate, the way
// it belongs to and its position along the way. occurrences feed node
// bookkeeping, not edge creation.
type Occurrence struct {
	Coord    geo.Coordinate
	WayID    int64
	Position int
}

// DecomposeWay turns one way into its directed edges plus the occurrence
// list of every vertex in its polyline. edges run between the way's first
// and last vertex only; a reverse edge is added unless the way is oneway.
// ways with fewer than two coordinates produce no edges but still
// contribute their occurrences.
func DecomposeWay(way datastructure.Way) ([]datastructure.Edge, []Occurrence) {
	coords := way.Coordinates()

	occurrences := make([]Occurrence, len(coords))
	for i, c := range coords {
		occurrences[i] = Occurrence{
			Coord:    c,
			WayID:    way.ID(),
			Position: i,
		}
	}

	if len(coords) < 2 {
		return nil, occurrences
	}

	distance := geo.PolylineLength(coords)
	speedKmh := NormalizeMaxSpeed(way.MaxSpeed())
	weight := travelTimeWeight(distance, speedKmh)

	first := coords[0]
	last := coords[len(coords)-1]
	forward := datastructure.NewEdge(
		datastructure.NewNodeKey(first.GetLat(), first.GetLon()),
		datastructure.NewNodeKey(last.GetLat(), last.GetLon()),
		weight, distance, way.ID(), speedKmh,
	)

	if isOneway(way.Oneway()) {
		return []datastructure.Edge{forward}, occurrences
	}
	return []datastructure.Edge{forward, forward.Reversed()}, occurrences
}

// travelTimeWeight is the edge weight in seconds when speed is positive.
// when it is not, the weight falls back to the raw distance in meters: a
// unit mismatch inherited from the original planner and kept for output
// compatibility with its consumers.
func travelTimeWeight(distanceM, speedKmh float64) float64 {
	if speedKmh > 0 {
		return distanceM / 1000.0 / speedKmh * 3600.0
	}
	return distanceM
}

func isOneway(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "true", "1":
		return true
	}
	return false
}
