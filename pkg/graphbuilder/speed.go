package graphbuilder

import (
	"math"
	"strconv"
	"strings"

	"github.com/osmroute/roadgraph/pkg"
	"github.com/osmroute/roadgraph/pkg/datastructure"
)

// NormalizeMaxSpeed converts a raw speed-limit value into km/h. it is a
// total function: any shape of input yields a finite positive speed, and
// anything unparseable falls back to the 50 km/h default. precedence:
// absent/falsy -> default, numeric -> as-is, "mph" text -> strip unit and
// convert, digits-only text -> parse, mixed text -> keep digit characters
// only, anything else -> default. the default-on-failure policy matches the
// original planner and downstream consumers depend on it.
func NormalizeMaxSpeed(ms datastructure.MaxSpeed) float64 {
	switch ms.Kind() {
	case datastructure.MAXSPEED_NUMERIC:
		v := ms.Numeric()
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return pkg.DEFAULT_SPEED_KMH
		}
		return v
	case datastructure.MAXSPEED_TEXT:
		return normalizeTextSpeed(ms.Text())
	default:
		return pkg.DEFAULT_SPEED_KMH
	}
}

func normalizeTextSpeed(raw string) float64 {
	val := strings.TrimSpace(raw)
	if val == "" {
		return pkg.DEFAULT_SPEED_KMH
	}

	lower := strings.ToLower(val)
	if strings.Contains(lower, "mph") {
		numPart := strings.TrimSpace(strings.ReplaceAll(lower, "mph", ""))
		mph, err := strconv.ParseFloat(numPart, 64)
		if err != nil || mph <= 0 {
			return pkg.DEFAULT_SPEED_KMH
		}
		return mph * pkg.MPH_TO_KMH
	}

	if isDigitsOnly(lower) {
		kmh, err := strconv.ParseFloat(lower, 64)
		if err != nil || kmh <= 0 {
			return pkg.DEFAULT_SPEED_KMH
		}
		return kmh
	}

	// mixed content like "50 km/h" or "50; 60": keep digit characters only
	digits := keepDigits(lower)
	if digits == "" {
		return pkg.DEFAULT_SPEED_KMH
	}
	kmh, err := strconv.ParseFloat(digits, 64)
	if err != nil || kmh <= 0 {
		return pkg.DEFAULT_SPEED_KMH
	}
	return kmh
}

func isDigitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func keepDigits(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
