// Package geo provides the great-circle distance used by proximity checks.
package geo

import "math"

// earthRadiusMeters is the mean earth radius.
const earthRadiusMeters = 6371008.8

// Distance returns the haversine great-circle distance in meters between two
// latitude/longitude pairs given in degrees. Accuracy is well within ordinary
// GPS error, which is all the proximity threshold requires.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
