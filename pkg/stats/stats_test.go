package stats

import (
	"testing"

	"github.com/osmroute/roadgraph/pkg/datastructure"
	"github.com/osmroute/roadgraph/pkg/geo"
)

func TestAnalyze(t *testing.T) {
	coords := []geo.Coordinate{
		geo.NewCoordinate(40.0, -80.0),
		geo.NewCoordinate(40.01, -80.0),
	}
	ways := []datastructure.Way{
		datastructure.NewWay(1, coords, "residential", datastructure.TextMaxSpeed("30"), "", ""),
		datastructure.NewWay(2, coords, "residential", datastructure.TextMaxSpeed("50"), "", ""),
		datastructure.NewWay(3, coords, "primary", datastructure.AbsentMaxSpeed(), "", ""),
		datastructure.NewWay(4, coords, "", datastructure.TextMaxSpeed("30"), "", ""),
	}

	r := Analyze(ways)

	if r.TotalWays != 4 {
		t.Errorf("TotalWays = %d, want 4", r.TotalWays)
	}
	if r.WaysWithHighway != 3 {
		t.Errorf("WaysWithHighway = %d, want 3", r.WaysWithHighway)
	}
	if r.WaysWithMaxspeed != 3 {
		t.Errorf("WaysWithMaxspeed = %d, want 3", r.WaysWithMaxspeed)
	}
	if r.WaysWithBoth != 2 {
		t.Errorf("WaysWithBoth = %d, want 2", r.WaysWithBoth)
	}
	if r.HighwayCounts["residential"] != 2 {
		t.Errorf("HighwayCounts[residential] = %d, want 2", r.HighwayCounts["residential"])
	}
	if len(r.HighwayToSpeeds["residential"]) != 2 {
		t.Errorf("residential should map to 2 distinct maxspeed values, got %d",
			len(r.HighwayToSpeeds["residential"]))
	}
	if _, ok := r.HighwayToSpeeds["primary"]; ok {
		t.Error("primary has no maxspeed and should not appear in the combination map")
	}
}
