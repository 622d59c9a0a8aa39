package geo

import (
	"math"

	"github.com/osmroute/roadgraph/pkg"
	"github.com/osmroute/roadgraph/pkg/util"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

// NewCoordinateFromLonLat builds a Coordinate from a longitude-first pair,
// the convention of the source geometry (geojson-like linestrings).
func NewCoordinateFromLonLat(lonlat [2]float64) Coordinate {
	return Coordinate{
		Lat: lonlat[1],
		Lon: lonlat[0],
	}
}

func NewCoordinates(lat, lon []float64) []Coordinate {
	coords := make([]Coordinate, len(lat))
	for i := range lat {
		coords[i] = NewCoordinate(lat[i], lon[i])
	}
	return coords
}

// CalculateHaversineDistance. calculate haversine great-circle distance
// between two points in meter
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	phiOne := util.DegreeToRadians(latOne)
	phiTwo := util.DegreeToRadians(latTwo)
	deltaPhi := util.DegreeToRadians(latTwo - latOne)
	deltaLambda := util.DegreeToRadians(longTwo - longOne)

	a := math.Sin(deltaPhi/2.0)*math.Sin(deltaPhi/2.0) +
		math.Cos(phiOne)*math.Cos(phiTwo)*
			math.Sin(deltaLambda/2.0)*math.Sin(deltaLambda/2.0)
	c := 2.0 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return pkg.EARTH_RADIUS_M * c
}

// PolylineLength. total length of a polyline in meter, as the sum of the
// haversine lengths of its consecutive segments. nil/empty/single-point
// polylines have length 0.
func PolylineLength(points []Coordinate) float64 {
	if len(points) < 2 {
		return 0.0
	}

	totalDistance := 0.0
	for i := 0; i < len(points)-1; i++ {
		totalDistance += CalculateHaversineDistance(
			points[i].GetLat(), points[i].GetLon(),
			points[i+1].GetLat(), points[i+1].GetLon(),
		)
	}
	return totalDistance
}
