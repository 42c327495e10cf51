/*
Copyright © 2026 the Spatial4n authors.
This file is part of Spatial4n.

Spatial4n is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Spatial4n is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Spatial4n.  If not, see <http://www.gnu.org/licenses/>.
*/

package spatial4n

import "math"

// Spherical-trigonometry helpers shared by the geodesic distance calculators.
// Angles are in radians unless the name says DEG.

const (
	// EarthMeanRadiusKM is the mean radius of the Earth in kilometers.
	EarthMeanRadiusKM = 6371.0087714
	// EarthEquatorialRadiusKM is the equatorial radius of the Earth in
	// kilometers.
	EarthEquatorialRadiusKM = 6378.137

	// DegToKM converts a degree of arc at the Earth's surface to kilometers.
	DegToKM = EarthMeanRadiusKM * math.Pi / 180
	// KMToDeg converts kilometers to degrees of arc at the Earth's surface.
	KMToDeg = 1 / DegToKM
)

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// NormLonDEG normalizes a longitude in degrees to the range [-180, 180].
func NormLonDEG(lon float64) float64 {
	if lon >= -180 && lon <= 180 {
		return lon
	}
	off := math.Mod(lon+180, 360)
	switch {
	case off < 0:
		return 180 + off
	case off == 0 && lon > 0:
		return 180
	default:
		return -180 + off
	}
}

// NormLatDEG normalizes a latitude in degrees to the range [-90, 90], folding
// values that pass over a pole.
func NormLatDEG(lat float64) float64 {
	if lat >= -90 && lat <= 90 {
		return lat
	}
	off := math.Abs(math.Mod(lat+90, 360))
	if off <= 180 {
		return off - 90
	}
	return (360 - off) - 90
}

// distHaversineRAD computes the great-circle distance in radians between two
// lat/lon points given in radians, using the haversine formula.
func distHaversineRAD(lat1, lon1, lat2, lon2 float64) float64 {
	hsinX := math.Sin((lon1 - lon2) * 0.5)
	hsinY := math.Sin((lat1 - lat2) * 0.5)
	h := hsinY*hsinY + math.Cos(lat1)*math.Cos(lat2)*hsinX*hsinX
	if h > 1 {
		h = 1
	}
	return 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// distLawOfCosinesRAD computes the great-circle distance in radians using the
// spherical law of cosines. Cheaper than haversine but numerically poor for
// very small distances.
func distLawOfCosinesRAD(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}
	c := math.Sin(lat1)*math.Sin(lat2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Cos(lon1-lon2)
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}

// distVincentyRAD computes the great-circle distance in radians using the
// Vincenty formula for a sphere, accurate over the full range of inputs.
func distVincentyRAD(lat1, lon1, lat2, lon2 float64) float64 {
	cosLat1, sinLat1 := math.Cos(lat1), math.Sin(lat1)
	cosLat2, sinLat2 := math.Cos(lat2), math.Sin(lat2)
	dLon := lon2 - lon1
	cosDLon, sinDLon := math.Cos(dLon), math.Sin(dLon)

	a := cosLat2 * sinDLon
	b := cosLat1*sinLat2 - sinLat1*cosLat2*cosDLon
	c := sinLat1*sinLat2 + cosLat1*cosLat2*cosDLon
	return math.Atan2(math.Sqrt(a*a+b*b), c)
}

// pointOnBearingRAD computes the destination point reached by traveling dist
// radians from (lat, lon) along the given bearing, all in radians. The result
// longitude is not normalized.
func pointOnBearingRAD(lat, lon, dist, bearing float64) (lat2, lon2 float64) {
	sinDist, cosDist := math.Sin(dist), math.Cos(dist)
	cosLat, sinLat := math.Cos(lat), math.Sin(lat)
	sinBearing, cosBearing := math.Sin(bearing), math.Cos(bearing)

	sinLat2 := sinLat*cosDist + cosLat*sinDist*cosBearing
	lat2 = math.Asin(sinLat2)
	lon2 = lon + math.Atan2(sinBearing*sinDist*cosLat, cosDist-sinLat*sinLat2)
	return lat2, lon2
}

// calcBoxByDistDeltaLonDEG returns the longitudinal half-width, in degrees, of
// the bounding box of a spherical circle of radius distDEG centered at
// latitude lat. Returns 90 when the small-circle calculation degenerates near
// a pole.
func calcBoxByDistDeltaLonDEG(lat, distDEG float64) float64 {
	if distDEG == 0 {
		return 0
	}
	latRad := toRadians(lat)
	distRad := toRadians(distDEG)
	result := toDegrees(math.Asin(math.Sin(distRad) / math.Cos(latRad)))
	if math.IsNaN(result) {
		return 90
	}
	return result
}

// calcBoxByDistLatHorizAxisDEG returns the latitude, in degrees, at which the
// bounding box of a spherical circle centered at lat with radius distDEG is
// widest. It differs from lat because meridians converge toward the poles.
func calcBoxByDistLatHorizAxisDEG(lat, distDEG float64) float64 {
	if distDEG == 0 {
		return lat
	}
	latRad := toRadians(lat)
	distRad := toRadians(distDEG)
	result := math.Asin(math.Sin(latRad) / math.Cos(distRad))
	if math.IsNaN(result) {
		// the box touches a pole
		if lat > 0 {
			return 90
		}
		return -90
	}
	return toDegrees(result)
}
