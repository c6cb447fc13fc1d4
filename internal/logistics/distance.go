package logistics

import (
	"math"

	"poi-logistics-service/internal/domain"
)

// Distance returns the haversine great-circle distance in kilometres.
// Inputs are decimal degrees and are not range checked.
func (e *Engine) Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRad(lat1)
	phi2 := toRad(lat2)
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(phi1)*math.Cos(phi2)*sinLon*sinLon

	// Rounding can push a slightly past 1 for antipodal points.
	a = math.Min(1, math.Max(0, a))

	c := 2 * math.Asin(math.Sqrt(a))
	return c * e.params.EarthRadiusKm
}

// Between is Distance over two coordinates.
func (e *Engine) Between(from, to domain.Coordinate) float64 {
	return e.Distance(from.Lat, from.Lon, to.Lat, to.Lon)
}

// Distance uses the default engine.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	return defaultEngine.Distance(lat1, lon1, lat2, lon2)
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
