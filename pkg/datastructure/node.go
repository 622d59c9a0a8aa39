package datastructure

import (
	"fmt"
	"math"

	"github.com/osmroute/roadgraph/pkg"
)

type Index uint32

// NodeKey is the identity of a graph node: a coordinate pair quantized to 6
// decimal places, stored fixed-point so the key is comparable and hashable.
// two raw coordinates that quantize to the same key are the same node, by
// construction. NodeKey is an identity function, not a validator: NaN and
// infinities map to deterministic sentinel values instead of failing.
type NodeKey struct {
	latE6 int64
	lonE6 int64
}

func NewNodeKey(lat, lon float64) NodeKey {
	return NodeKey{
		latE6: quantizeE6(lat),
		lonE6: quantizeE6(lon),
	}
}

// quantizeE6 keeps the first 6 decimal places and drops the rest, so e.g.
// 40.1234567 and 40.1234564 map to the same key. the nudge before
// truncation absorbs float representation error for values like 40.01
// whose e6-scaled form sits a few ulp below the integer boundary; it is
// far smaller than one quantization unit.
func quantizeE6(deg float64) int64 {
	scaled := deg * pkg.COORDINATE_SCALE_FACTOR
	if math.IsNaN(scaled) {
		return math.MinInt64
	}
	if scaled >= math.MaxInt64 {
		return math.MaxInt64
	}
	if scaled <= math.MinInt64+1 {
		return math.MinInt64 + 1
	}
	return int64(math.Trunc(scaled + math.Copysign(1e-3, scaled)))
}

func (k NodeKey) Lat() float64 {
	return float64(k.latE6) / pkg.COORDINATE_SCALE_FACTOR
}

func (k NodeKey) Lon() float64 {
	return float64(k.lonE6) / pkg.COORDINATE_SCALE_FACTOR
}

// String renders the key as the 6-decimal "lat,lon" form used for node
// identity in the persisted adjacency output.
func (k NodeKey) String() string {
	return fmt.Sprintf("%.6f,%.6f", k.Lat(), k.Lon())
}

// Node is one deduplicated vertex of the road graph. lat/lon keep the raw
// first-seen coordinate for the key, not the quantized one.
type Node struct {
	key         NodeKey
	lat         float64
	lon         float64
	wayIDs      map[int64]struct{}
	occurrences int
}

func NewNode(key NodeKey, lat, lon float64) *Node {
	return &Node{
		key:    key,
		lat:    lat,
		lon:    lon,
		wayIDs: make(map[int64]struct{}),
	}
}

func (n *Node) Key() NodeKey {
	return n.key
}

func (n *Node) GetLat() float64 {
	return n.lat
}

func (n *Node) GetLon() float64 {
	return n.lon
}

func (n *Node) AddOccurrence(wayID int64) {
	n.wayIDs[wayID] = struct{}{}
	n.occurrences++
}

// Occurrences counts (way, position) tuples mapping to this key. a way
// passing straight through the point still increments it, so this is a
// vertex-visit count, not graph degree.
func (n *Node) Occurrences() int {
	return n.occurrences
}

func (n *Node) TouchesWay(wayID int64) bool {
	_, ok := n.wayIDs[wayID]
	return ok
}

func (n *Node) NumWays() int {
	return len(n.wayIDs)
}

func (n *Node) WayIDs() []int64 {
	ids := make([]int64, 0, len(n.wayIDs))
	for id := range n.wayIDs {
		ids = append(ids, id)
	}
	return ids
}
