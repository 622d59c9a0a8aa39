package stats

import (
	"sort"
	"strconv"

	"github.com/osmroute/roadgraph/pkg/datastructure"
	"go.uber.org/zap"
)

// Report summarizes the road-network composition of a way collection:
// which highway types occur, which raw maxspeed values occur, and how well
// the two are tagged.
type Report struct {
	TotalWays        int
	WaysWithHighway  int
	WaysWithMaxspeed int
	WaysWithBoth     int

	HighwayCounts   map[string]int
	MaxspeedCounts  map[string]int
	HighwayToSpeeds map[string]map[string]struct{}
}

func Analyze(ways []datastructure.Way) *Report {
	r := &Report{
		TotalWays:       len(ways),
		HighwayCounts:   make(map[string]int),
		MaxspeedCounts:  make(map[string]int),
		HighwayToSpeeds: make(map[string]map[string]struct{}),
	}

	for _, w := range ways {
		highway := w.Highway()
		maxspeed := rawMaxspeed(w.MaxSpeed())

		if highway != "" {
			r.HighwayCounts[highway]++
			r.WaysWithHighway++
		}
		if maxspeed != "" {
			r.MaxspeedCounts[maxspeed]++
			r.WaysWithMaxspeed++
		}
		if highway != "" && maxspeed != "" {
			if _, ok := r.HighwayToSpeeds[highway]; !ok {
				r.HighwayToSpeeds[highway] = make(map[string]struct{})
			}
			r.HighwayToSpeeds[highway][maxspeed] = struct{}{}
			r.WaysWithBoth++
		}
	}

	return r
}

func rawMaxspeed(ms datastructure.MaxSpeed) string {
	switch ms.Kind() {
	case datastructure.MAXSPEED_NUMERIC:
		return strconv.FormatFloat(ms.Numeric(), 'f', -1, 64)
	case datastructure.MAXSPEED_TEXT:
		return ms.Text()
	default:
		return ""
	}
}

// Log writes the report through the given logger, highway types in
// descending frequency order.
func (r *Report) Log(log *zap.Logger) {
	sugar := log.Sugar()
	sugar.Infof("analyzed %d ways: %d with highway tag, %d with maxspeed, %d with both",
		r.TotalWays, r.WaysWithHighway, r.WaysWithMaxspeed, r.WaysWithBoth)

	types := make([]string, 0, len(r.HighwayCounts))
	for t := range r.HighwayCounts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		if r.HighwayCounts[types[i]] != r.HighwayCounts[types[j]] {
			return r.HighwayCounts[types[i]] > r.HighwayCounts[types[j]]
		}
		return types[i] < types[j]
	})

	for _, t := range types {
		sugar.Infof("  %-20s %8d ways, %d distinct maxspeed values",
			t, r.HighwayCounts[t], len(r.HighwayToSpeeds[t]))
	}
}

// LogGraph writes a one-line summary of the built graph.
func LogGraph(g *datastructure.Graph, log *zap.Logger) {
	log.Sugar().Infof("graph summary: %d vertices, %d edges, %.2f km total edge length",
		g.NumberOfVertices(), g.NumberOfEdges(), g.TotalDistance()/1000.0)
}
