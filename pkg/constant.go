package pkg

const (
	// fallback speed limit when a way carries no usable maxspeed tag
	DEFAULT_SPEED_KMH = 50.0

	MPH_TO_KMH = 1.609

	EARTH_RADIUS_M = 6371000.0

	// node identity quantizes coordinates to 6 decimal places (~11cm)
	COORDINATE_PRECISION    = 6
	COORDINATE_SCALE_FACTOR = 1e6
)

const (
	DEBUG = false
)
