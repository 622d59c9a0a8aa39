package graphbuilder

import (
	"math"
	"testing"

	"github.com/osmroute/roadgraph/pkg/datastructure"
)

func TestNormalizeMaxSpeed(t *testing.T) {
	testCases := []struct {
		name string
		ms   datastructure.MaxSpeed
		want float64
	}{
		{
			name: "absent falls back to default",
			ms:   datastructure.AbsentMaxSpeed(),
			want: 50.0,
		},
		{
			name: "numeric used as-is",
			ms:   datastructure.NumericMaxSpeed(80),
			want: 80.0,
		},
		{
			name: "numeric zero is falsy",
			ms:   datastructure.NumericMaxSpeed(0),
			want: 50.0,
		},
		{
			name: "numeric negative falls back",
			ms:   datastructure.NumericMaxSpeed(-30),
			want: 50.0,
		},
		{
			name: "numeric NaN falls back",
			ms:   datastructure.NumericMaxSpeed(math.NaN()),
			want: 50.0,
		},
		{
			name: "mph converted",
			ms:   datastructure.TextMaxSpeed("30 mph"),
			want: 30 * 1.609,
		},
		{
			name: "mph case-insensitive without space",
			ms:   datastructure.TextMaxSpeed("20MPH"),
			want: 20 * 1.609,
		},
		{
			name: "digits-only text parsed as km/h",
			ms:   datastructure.TextMaxSpeed("50"),
			want: 50.0,
		},
		{
			name: "km/h suffix stripped via digit extraction",
			ms:   datastructure.TextMaxSpeed("60 km/h"),
			want: 60.0,
		},
		{
			name: "mixed content keeps digit characters only",
			ms:   datastructure.TextMaxSpeed("50; 60"),
			want: 5060.0,
		},
		{
			name: "no digits falls back",
			ms:   datastructure.TextMaxSpeed("walk"),
			want: 50.0,
		},
		{
			name: "empty text is falsy",
			ms:   datastructure.TextMaxSpeed(""),
			want: 50.0,
		},
		{
			name: "unparseable mph falls back",
			ms:   datastructure.TextMaxSpeed("mph"),
			want: 50.0,
		},
		{
			name: "signed text parses via digit extraction",
			ms:   datastructure.TextMaxSpeed("-30"),
			want: 30.0,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeMaxSpeed(tt.ms)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NormalizeMaxSpeed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeMaxSpeedAlwaysPositive(t *testing.T) {
	inputs := []datastructure.MaxSpeed{
		datastructure.AbsentMaxSpeed(),
		datastructure.NumericMaxSpeed(math.Inf(1)),
		datastructure.NumericMaxSpeed(math.Inf(-1)),
		datastructure.NumericMaxSpeed(math.NaN()),
		datastructure.NumericMaxSpeed(-1e300),
		datastructure.TextMaxSpeed("NaN"),
		datastructure.TextMaxSpeed("Inf"),
		datastructure.TextMaxSpeed("0"),
		datastructure.TextMaxSpeed("000"),
		datastructure.TextMaxSpeed("0 mph"),
		datastructure.TextMaxSpeed("   "),
		datastructure.TextMaxSpeed("national"),
		datastructure.TextMaxSpeed("DE:urban"),
	}

	for _, ms := range inputs {
		got := NormalizeMaxSpeed(ms)
		if !(got > 0) || math.IsInf(got, 0) || math.IsNaN(got) {
			t.Errorf("NormalizeMaxSpeed(%+v) = %v, want finite positive", ms, got)
		}
	}
}
