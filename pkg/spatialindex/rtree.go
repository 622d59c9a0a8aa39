package spatialindex

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/osmroute/roadgraph/pkg"
	"github.com/osmroute/roadgraph/pkg/datastructure"
	"github.com/osmroute/roadgraph/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree indexes the graph's nodes for nearest-node queries, the entry point
// a route planner needs to snap a raw coordinate onto the network.
type Rtree struct {
	tr *rtree.RTreeG[datastructure.Index]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[datastructure.Index]
	return &Rtree{
		tr: &tr,
	}
}

func (rt *Rtree) Build(graph *datastructure.Graph, log *zap.Logger) {
	log.Info("building r-tree spatial index over graph nodes...")

	for i := 0; i < graph.NumberOfVertices(); i++ {
		n := graph.GetNodeByIndex(datastructure.Index(i))
		point := [2]float64{n.GetLon(), n.GetLat()}
		rt.tr.Insert(point, point, datastructure.Index(i))
	}

	log.Info("r-tree spatial index built", zap.Int("nodes", graph.NumberOfVertices()))
}

// NearestNode returns the index of the graph node closest to (qLat, qLon)
// within radius km, or false when none is inside the search box.
func (rt *Rtree) NearestNode(graph *datastructure.Graph, qLat, qLon, radiusKm float64) (datastructure.Index, bool) {
	rect := searchRect(qLat, qLon, radiusKm)

	best := datastructure.Index(0)
	bestDist := math.Inf(1)
	found := false

	rt.tr.Search(
		[2]float64{rect.Lo().Lng.Degrees(), rect.Lo().Lat.Degrees()},
		[2]float64{rect.Hi().Lng.Degrees(), rect.Hi().Lat.Degrees()},
		func(min, max [2]float64, idx datastructure.Index) bool {
			n := graph.GetNodeByIndex(idx)
			dist := geo.CalculateHaversineDistance(qLat, qLon, n.GetLat(), n.GetLon())
			if dist < bestDist {
				bestDist = dist
				best = idx
				found = true
			}
			return true
		})

	if !found || bestDist > radiusKm*1000.0 {
		return 0, false
	}
	return best, true
}

// searchRect is the lat/lng bounding rectangle of a spherical cap with the
// given radius around the query point.
func searchRect(lat, lon, radiusKm float64) s2.Rect {
	center := s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))
	angle := s1.Angle(radiusKm * 1000.0 / pkg.EARTH_RADIUS_M)
	c := s2.CapFromCenterAngle(center, angle)
	return c.RectBound()
}
