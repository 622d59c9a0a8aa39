package datastructure

import (
	"github.com/osmroute/roadgraph/pkg/geo"
)

type MaxSpeedKind uint8

const (
	MAXSPEED_ABSENT MaxSpeedKind = iota
	MAXSPEED_NUMERIC
	MAXSPEED_TEXT
)

// MaxSpeed is the raw speed-limit value of a way. source data carries it in
// whatever shape it happens to be (missing, a number, or free text like
// "30 mph"), so it is kept as a tagged variant until normalization.
type MaxSpeed struct {
	kind    MaxSpeedKind
	numeric float64
	text    string
}

func AbsentMaxSpeed() MaxSpeed {
	return MaxSpeed{kind: MAXSPEED_ABSENT}
}

func NumericMaxSpeed(v float64) MaxSpeed {
	return MaxSpeed{kind: MAXSPEED_NUMERIC, numeric: v}
}

func TextMaxSpeed(s string) MaxSpeed {
	return MaxSpeed{kind: MAXSPEED_TEXT, text: s}
}

func (m MaxSpeed) Kind() MaxSpeedKind {
	return m.kind
}

func (m MaxSpeed) Numeric() float64 {
	return m.numeric
}

func (m MaxSpeed) Text() string {
	return m.text
}

// Way is one tagged road polyline from the source data.
type Way struct {
	id          int64
	coordinates []geo.Coordinate
	highway     string
	maxSpeed    MaxSpeed
	oneway      string
	name        string

	// precomputed length from the source record, when it carries one.
	// decomposition always recomputes from geometry; this is kept for
	// reporting.
	length    float64
	hasLength bool
}

func NewWay(id int64, coordinates []geo.Coordinate, highway string, maxSpeed MaxSpeed,
	oneway string, name string) Way {
	return Way{
		id:          id,
		coordinates: coordinates,
		highway:     highway,
		maxSpeed:    maxSpeed,
		oneway:      oneway,
		name:        name,
	}
}

func (w Way) ID() int64 {
	return w.id
}

func (w Way) Coordinates() []geo.Coordinate {
	return w.coordinates
}

func (w Way) Highway() string {
	return w.highway
}

func (w Way) MaxSpeed() MaxSpeed {
	return w.maxSpeed
}

func (w Way) Oneway() string {
	return w.oneway
}

func (w Way) Name() string {
	return w.name
}

func (w Way) SetLength(length float64) Way {
	w.length = length
	w.hasLength = true
	return w
}

func (w Way) Length() (float64, bool) {
	return w.length, w.hasLength
}
