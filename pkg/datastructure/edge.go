package datastructure

// Edge is one directed traversal of a way between its first and last vertex.
// weight is travel time in second when the normalized speed is positive;
// when it is not, weight falls back to the raw distance in meter (see
// graphbuilder.travelTimeWeight).
type Edge struct {
	source   NodeKey
	target   NodeKey
	weight   float64
	distance float64
	wayID    int64
	speedKmh float64
}

func NewEdge(source, target NodeKey, weight, distance float64, wayID int64, speedKmh float64) Edge {
	return Edge{
		source:   source,
		target:   target,
		weight:   weight,
		distance: distance,
		wayID:    wayID,
		speedKmh: speedKmh,
	}
}

func (e Edge) Source() NodeKey {
	return e.source
}

func (e Edge) Target() NodeKey {
	return e.target
}

func (e Edge) Weight() float64 {
	return e.weight
}

func (e Edge) Distance() float64 {
	return e.distance
}

func (e Edge) WayID() int64 {
	return e.wayID
}

func (e Edge) SpeedKmh() float64 {
	return e.speedKmh
}

// Reversed returns the opposite traversal of the same way with identical
// weight, distance and speed.
func (e Edge) Reversed() Edge {
	return Edge{
		source:   e.target,
		target:   e.source,
		weight:   e.weight,
		distance: e.distance,
		wayID:    e.wayID,
		speedKmh: e.speedKmh,
	}
}
