package osmparser

import (
	"context"
	"io"
	"os"

	"github.com/osmroute/roadgraph/pkg/datastructure"
	"github.com/osmroute/roadgraph/pkg/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

type nodeCoord struct {
	lat float64
	lon float64
}

type scannedWay struct {
	id       int64
	nodeIDs  []int64
	highway  string
	maxspeed string
	oneway   string
	name     string
}

// OsmParser turns a .osm.pbf file into the way records the graph pipeline
// consumes. it scans the file twice: first to collect the drivable ways and
// the node ids they reference, then to resolve those ids to coordinates.
type OsmParser struct {
	wayNodeSet      map[int64]struct{}
	acceptedNodeMap map[int64]nodeCoord
}

func NewOsmParser() *OsmParser {
	return &OsmParser{
		wayNodeSet:      make(map[int64]struct{}),
		acceptedNodeMap: make(map[int64]nodeCoord),
	}
}

func (p *OsmParser) Parse(mapFile string, logger *zap.Logger) ([]datastructure.Way, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := osmpbf.New(context.Background(), f, 0)
	// must not be parallel
	scannedWays := make([]scannedWay, 0)
	countWays := 0
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeWay {
			continue
		}
		way := o.(*osm.Way)
		if len(way.Nodes) < 2 {
			continue
		}
		if !acceptHighway(way.Tags.Find("highway")) {
			continue
		}
		if (countWays+1)%50000 == 0 {
			logger.Sugar().Infof("scanning openstreetmap ways: %d...", countWays+1)
		}
		countWays++

		nodeIDs := make([]int64, 0, len(way.Nodes))
		for _, node := range way.Nodes {
			nodeIDs = append(nodeIDs, int64(node.ID))
			p.wayNodeSet[int64(node.ID)] = struct{}{}
		}

		scannedWays = append(scannedWays, scannedWay{
			id:       int64(way.ID),
			nodeIDs:  nodeIDs,
			highway:  way.Tags.Find("highway"),
			maxspeed: way.Tags.Find("maxspeed"),
			oneway:   way.Tags.Find("oneway"),
			name:     way.Tags.Find("name"),
		})
	}
	scanner.Close()

	_, err = f.Seek(0, io.SeekStart)
	if err != nil {
		return nil, err
	}

	scanner = osmpbf.New(context.Background(), f, 0)
	defer scanner.Close()

	countNodes := 0
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeNode {
			continue
		}
		node := o.(*osm.Node)
		if (countNodes+1)%500000 == 0 {
			logger.Sugar().Infof("processing openstreetmap nodes: %d...", countNodes+1)
		}
		countNodes++

		if _, ok := p.wayNodeSet[int64(node.ID)]; ok {
			p.acceptedNodeMap[int64(node.ID)] = nodeCoord{
				lat: node.Lat,
				lon: node.Lon,
			}
		}
	}

	ways := make([]datastructure.Way, 0, len(scannedWays))
	for _, sw := range scannedWays {
		coords := make([]geo.Coordinate, 0, len(sw.nodeIDs))
		for _, id := range sw.nodeIDs {
			coord, ok := p.acceptedNodeMap[id]
			if !ok {
				// way references a node missing from the extract,
				// common at bbox boundaries. skip the vertex.
				continue
			}
			coords = append(coords, geo.NewCoordinate(coord.lat, coord.lon))
		}

		maxSpeed := datastructure.AbsentMaxSpeed()
		if sw.maxspeed != "" {
			maxSpeed = datastructure.TextMaxSpeed(sw.maxspeed)
		}

		ways = append(ways, datastructure.NewWay(sw.id, coords, sw.highway,
			maxSpeed, sw.oneway, sw.name))
	}

	logger.Sugar().Infof("parsed %d drivable ways from %s", len(ways), mapFile)
	return ways, nil
}
