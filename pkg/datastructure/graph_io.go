package datastructure

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/dsnet/compress/bzip2"
	"github.com/osmroute/roadgraph/pkg/util"
	"github.com/twpayne/go-polyline"
)

// WriteGraph persists the graph as bzip2-compressed text. layout:
// header "numNodes numEdges", one node line per vertex
// (latE6 lonE6 rawLat rawLon occurrences numWays wayIds...), then one edge
// line per edge (srcIdx dstIdx weight distance wayId speedKmh).
func (g *Graph) WriteGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)

	fmt.Fprintf(w, "%d %d\n", len(g.nodes), len(g.edges))

	for i := range g.nodes {
		n := &g.nodes[i]
		latF := strconv.FormatFloat(n.lat, 'f', -1, 64)
		lonF := strconv.FormatFloat(n.lon, 'f', -1, 64)

		fmt.Fprintf(w, "%d %d %s %s %d %d",
			n.key.latE6, n.key.lonE6, latF, lonF, n.occurrences, len(n.wayIDs))

		wayIDs := n.WayIDs()
		sort.Slice(wayIDs, func(a, b int) bool { return wayIDs[a] < wayIDs[b] })
		for _, id := range wayIDs {
			fmt.Fprintf(w, " %d", id)
		}
		fmt.Fprintf(w, "\n")
	}

	for _, e := range g.edges {
		weightF := strconv.FormatFloat(e.weight, 'f', -1, 64)
		distF := strconv.FormatFloat(e.distance, 'f', -1, 64)
		speedF := strconv.FormatFloat(e.speedKmh, 'f', -1, 64)

		fmt.Fprintf(w, "%d %d %s %s %d %s\n",
			g.nodeIndex[e.source], g.nodeIndex[e.target], weightF, distF, e.wayID, speedF)
	}

	return w.Flush()
}

// ReadGraph loads a graph written by WriteGraph.
func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	br := bufio.NewReader(bz)

	line, err := util.ReadLine(br)
	if err != nil {
		return nil, err
	}
	ff := util.Fields(line)
	if len(ff) != 2 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "malformed graph header: %q", line)
	}
	numNodes, err := strconv.Atoi(ff[0])
	if err != nil {
		return nil, err
	}
	numEdges, err := strconv.Atoi(ff[1])
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, numNodes)
	nodeIndex := make(map[NodeKey]Index, numNodes)
	for i := 0; i < numNodes; i++ {
		line, err = util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		ff = util.Fields(line)
		if len(ff) < 6 {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "malformed node line: %q", line)
		}

		latE6, err := strconv.ParseInt(ff[0], 10, 64)
		if err != nil {
			return nil, err
		}
		lonE6, err := strconv.ParseInt(ff[1], 10, 64)
		if err != nil {
			return nil, err
		}
		lat, err := strconv.ParseFloat(ff[2], 64)
		if err != nil {
			return nil, err
		}
		lon, err := strconv.ParseFloat(ff[3], 64)
		if err != nil {
			return nil, err
		}
		occurrences, err := strconv.Atoi(ff[4])
		if err != nil {
			return nil, err
		}
		numWays, err := strconv.Atoi(ff[5])
		if err != nil {
			return nil, err
		}
		if len(ff) != 6+numWays {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "malformed node line: %q", line)
		}

		key := NodeKey{latE6: latE6, lonE6: lonE6}
		n := Node{
			key:         key,
			lat:         lat,
			lon:         lon,
			wayIDs:      make(map[int64]struct{}, numWays),
			occurrences: occurrences,
		}
		for j := 0; j < numWays; j++ {
			id, err := strconv.ParseInt(ff[6+j], 10, 64)
			if err != nil {
				return nil, err
			}
			n.wayIDs[id] = struct{}{}
		}

		nodes[i] = n
		nodeIndex[key] = Index(i)
	}

	edges := make([]Edge, 0, numEdges)
	outEdges := make([][]Index, numNodes)
	for i := 0; i < numEdges; i++ {
		line, err = util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		ff = util.Fields(line)
		if len(ff) != 6 {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "malformed edge line: %q", line)
		}

		srcIdx, err := strconv.Atoi(ff[0])
		if err != nil {
			return nil, err
		}
		dstIdx, err := strconv.Atoi(ff[1])
		if err != nil {
			return nil, err
		}
		if srcIdx < 0 || dstIdx < 0 || srcIdx >= numNodes || dstIdx >= numNodes {
			return nil, util.WrapErrorf(nil, util.ErrGraphIntegrity,
				"edge references node index out of range: %q", line)
		}
		weight, err := strconv.ParseFloat(ff[2], 64)
		if err != nil {
			return nil, err
		}
		distance, err := strconv.ParseFloat(ff[3], 64)
		if err != nil {
			return nil, err
		}
		wayID, err := strconv.ParseInt(ff[4], 10, 64)
		if err != nil {
			return nil, err
		}
		speedKmh, err := strconv.ParseFloat(ff[5], 64)
		if err != nil {
			return nil, err
		}

		edges = append(edges, NewEdge(nodes[srcIdx].key, nodes[dstIdx].key,
			weight, distance, wayID, speedKmh))
		outEdges[srcIdx] = append(outEdges[srcIdx], Index(i))
	}

	return NewGraph(nodes, nodeIndex, edges, outEdges), nil
}

type adjacencyRecord struct {
	Target   string  `json:"target"`
	Weight   float64 `json:"weight"`
	Distance float64 `json:"distance"`
	WayID    int64   `json:"way_id"`
	SpeedKmh float64 `json:"speed_kmh"`
	Geometry string  `json:"geometry,omitempty"`
}

// ExportAdjacencyJSON writes the adjacency structure in the collaborator
// format: node identity ("lat,lon" at 6 decimals) to the list of outgoing
// edge records. when the graph retains way geometry, each record also
// carries it as an encoded polyline for visualizer collaborators.
func (g *Graph) ExportAdjacencyJSON(filename string) error {
	out := make(map[string][]adjacencyRecord, len(g.nodes))

	for i := range g.nodes {
		key := g.nodes[i].Key()
		edges := g.GetOutgoingEdges(key)
		records := make([]adjacencyRecord, len(edges))
		for j, e := range edges {
			rec := adjacencyRecord{
				Target:   e.Target().String(),
				Weight:   e.Weight(),
				Distance: e.Distance(),
				WayID:    e.WayID(),
				SpeedKmh: e.SpeedKmh(),
			}
			if coords := g.GetWayGeometry(e.WayID()); len(coords) > 0 {
				latLons := make([][]float64, len(coords))
				for k, c := range coords {
					latLons[k] = []float64{c.GetLat(), c.GetLon()}
				}
				rec.Geometry = string(polyline.EncodeCoords(latLons))
			}
			records[j] = rec
		}
		out[key.String()] = records
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}
