package dataloader

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/osmroute/roadgraph/pkg/datastructure"
	"github.com/osmroute/roadgraph/pkg/geo"
	"go.uber.org/zap"
)

type nodeRecord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// edgeRecord is one road segment as produced by the external extractor:
// maxspeed and oneway arrive in whatever shape the source tags had, so they
// are decoded loosely and normalized later.
type edgeRecord struct {
	U        int64       `json:"u"`
	V        int64       `json:"v"`
	Distance float64     `json:"distance"`
	MaxSpeed interface{} `json:"maxspeed"`
	Highway  string      `json:"highway"`
	Oneway   interface{} `json:"oneway"`
	Name     string      `json:"name"`
}

// Loader reads the nodes.json/edges.json pair written by the extractor and
// materializes way records for the graph pipeline. per-record anomalies
// (missing endpoint node, odd tag shapes) are normalized or skipped, never
// fatal. when a highway speed table is given, ways without a maxspeed are
// seeded with their highway type's default before normalization.
type Loader struct {
	highwaySpeeds map[string]float64
	log           *zap.Logger
}

func NewLoader(highwaySpeeds map[string]float64, log *zap.Logger) *Loader {
	return &Loader{
		highwaySpeeds: highwaySpeeds,
		log:           log,
	}
}

func (l *Loader) Load(nodesFile, edgesFile string) ([]datastructure.Way, error) {
	nodesData, err := os.ReadFile(nodesFile)
	if err != nil {
		return nil, err
	}
	var nodes map[string]nodeRecord
	if err := json.Unmarshal(nodesData, &nodes); err != nil {
		return nil, err
	}

	edgesData, err := os.ReadFile(edgesFile)
	if err != nil {
		return nil, err
	}
	var edges []edgeRecord
	if err := json.Unmarshal(edgesData, &edges); err != nil {
		return nil, err
	}

	l.log.Sugar().Infof("loaded %d nodes and %d edges from %s, %s",
		len(nodes), len(edges), nodesFile, edgesFile)

	ways := make([]datastructure.Way, 0, len(edges))
	skipped := 0
	for i, rec := range edges {
		uNode, uOK := nodes[strconv.FormatInt(rec.U, 10)]
		vNode, vOK := nodes[strconv.FormatInt(rec.V, 10)]
		if !uOK || !vOK {
			skipped++
			continue
		}

		way := datastructure.NewWay(int64(i),
			[]geo.Coordinate{
				geo.NewCoordinate(uNode.Lat, uNode.Lon),
				geo.NewCoordinate(vNode.Lat, vNode.Lon),
			},
			rec.Highway,
			l.maxSpeedOf(rec),
			onewayString(rec.Oneway),
			rec.Name,
		)
		ways = append(ways, way.SetLength(rec.Distance))
	}

	if skipped > 0 {
		l.log.Sugar().Infof("skipped %d edge records with missing endpoint nodes", skipped)
	}
	return ways, nil
}

func (l *Loader) maxSpeedOf(rec edgeRecord) datastructure.MaxSpeed {
	switch v := rec.MaxSpeed.(type) {
	case float64:
		return datastructure.NumericMaxSpeed(v)
	case string:
		if v != "" {
			return datastructure.TextMaxSpeed(v)
		}
	}

	if speed, ok := l.highwaySpeeds[rec.Highway]; ok {
		return datastructure.NumericMaxSpeed(speed)
	}
	return datastructure.AbsentMaxSpeed()
}

func onewayString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "yes"
		}
	case float64:
		if val == 1 {
			return "1"
		}
	}
	return ""
}
