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

// DistanceCalculator computes distances, bearings and areas in either a
// spherical-geodesic or planar-Euclidean model. Geodesic calculators work in
// degrees; planar ones in the linear units of the coordinates.
type DistanceCalculator interface {
	// Distance returns the distance from from to (x, y).
	Distance(from *Point, x, y float64) float64

	// Within reports whether (x, y) lies within distance of from. Prefer this
	// over comparing Distance yourself: the squared-Euclidean calculator
	// compares in squared space.
	Within(from *Point, x, y, distance float64) bool

	// PointOnBearing returns the point reached by traveling dist from from
	// along bearingDEG (clockwise from north, or from +Y for planar). If reuse
	// is non-nil it is overwritten and returned.
	PointOnBearing(from *Point, dist, bearingDEG float64, ctx *SpatialContext, reuse *Point) *Point

	// CalcBoxByDistFromPt returns the bounding box of all points within dist
	// of from, clipped to the context's world bounds.
	CalcBoxByDistFromPt(from *Point, dist float64, ctx *SpatialContext, reuse *Rectangle) *Rectangle

	// CalcBoxByDistFromPtHorizAxis returns the Y value at which that bounding
	// box is widest. For planar models this is from's Y.
	CalcBoxByDistFromPtHorizAxis(from *Point, dist float64) float64

	// AreaRect returns the area of the rectangle under this distance model.
	AreaRect(r *Rectangle) float64

	// AreaCircle returns the area of the circle under this distance model.
	AreaCircle(c *Circle) float64
}

// geodesicSphereCalc implements DistanceCalculator on a unit sphere with
// coordinates and distances in degrees. The distance formula is pluggable.
type geodesicSphereCalc struct {
	name    string
	distRAD func(lat1, lon1, lat2, lon2 float64) float64
}

// NewHaversineCalculator returns a geodesic calculator using the haversine
// formula.
func NewHaversineCalculator() DistanceCalculator {
	return &geodesicSphereCalc{name: "haversine", distRAD: distHaversineRAD}
}

// NewLawOfCosinesCalculator returns a geodesic calculator using the spherical
// law of cosines.
func NewLawOfCosinesCalculator() DistanceCalculator {
	return &geodesicSphereCalc{name: "lawOfCosines", distRAD: distLawOfCosinesRAD}
}

// NewVincentySphereCalculator returns a geodesic calculator using the Vincenty
// formula for a sphere.
func NewVincentySphereCalculator() DistanceCalculator {
	return &geodesicSphereCalc{name: "vincentySphere", distRAD: distVincentyRAD}
}

func (g *geodesicSphereCalc) Distance(from *Point, x, y float64) float64 {
	return toDegrees(g.distRAD(toRadians(from.Y()), toRadians(from.X()),
		toRadians(y), toRadians(x)))
}

func (g *geodesicSphereCalc) Within(from *Point, x, y, distance float64) bool {
	return g.Distance(from, x, y) <= distance
}

func (g *geodesicSphereCalc) PointOnBearing(from *Point, dist, bearingDEG float64, ctx *SpatialContext, reuse *Point) *Point {
	lat, lon := pointOnBearingRAD(toRadians(from.Y()), toRadians(from.X()),
		toRadians(dist), toRadians(bearingDEG))
	x := NormLonDEG(toDegrees(lon))
	y := NormLatDEG(toDegrees(lat))
	if reuse != nil {
		reuse.Reset(x, y)
		return reuse
	}
	return newPoint(x, y, ctx)
}

func (g *geodesicSphereCalc) CalcBoxByDistFromPt(from *Point, dist float64, ctx *SpatialContext, reuse *Rectangle) *Rectangle {
	lat, lon := from.Y(), from.X()
	var minX, maxX, minY, maxY float64
	switch {
	case dist == 0:
		minX, maxX, minY, maxY = lon, lon, lat, lat
	case dist >= 180:
		// distance reaches the opposite side of the globe
		minX, maxX, minY, maxY = -180, 180, -90, 90
	default:
		minY = lat - dist
		maxY = lat + dist
		if minY <= -90 || maxY >= 90 { // reaches or passes a pole
			minX, maxX = -180, 180
			if maxY <= 90 && minY >= -90 { // touches but doesn't pass over
				minX = NormLonDEG(lon - 90)
				maxX = NormLonDEG(lon + 90)
			}
			minY = math.Max(minY, -90)
			maxY = math.Min(maxY, 90)
		} else {
			lonDelta := calcBoxByDistDeltaLonDEG(lat, dist)
			minX = NormLonDEG(lon - lonDelta)
			maxX = NormLonDEG(lon + lonDelta)
		}
	}
	if reuse != nil {
		reuse.Reset(minX, maxX, minY, maxY)
		return reuse
	}
	return newRectangle(minX, maxX, minY, maxY, ctx)
}

func (g *geodesicSphereCalc) CalcBoxByDistFromPtHorizAxis(from *Point, dist float64) float64 {
	return calcBoxByDistLatHorizAxisDEG(from.Y(), dist)
}

// AreaRect returns the surface area of the rectangle on a unit sphere
// (radius 1, so the whole world is 4*pi). From the spherical-zone formula.
func (g *geodesicSphereCalc) AreaRect(r *Rectangle) float64 {
	if r.IsEmpty() {
		return 0
	}
	lat1 := toRadians(r.MinY())
	lat2 := toRadians(r.MaxY())
	return toRadians(r.Width()) * math.Abs(math.Sin(lat2)-math.Sin(lat1))
}

// AreaCircle returns the surface area of a spherical cap of the circle's
// radius on a unit sphere.
func (g *geodesicSphereCalc) AreaCircle(c *Circle) float64 {
	if c.IsEmpty() {
		return 0
	}
	return 2 * math.Pi * (1 - math.Cos(toRadians(c.Radius())))
}

// cartesianCalc implements DistanceCalculator on a flat plane. When squared is
// set, Distance returns squared distances, which sorts and compares
// equivalently while avoiding the square root.
type cartesianCalc struct {
	squared bool
}

// NewCartesianCalculator returns a planar Euclidean calculator.
func NewCartesianCalculator() DistanceCalculator { return &cartesianCalc{} }

// NewCartesianSquaredCalculator returns a planar calculator whose Distance is
// the squared Euclidean distance.
func NewCartesianSquaredCalculator() DistanceCalculator {
	return &cartesianCalc{squared: true}
}

func (c *cartesianCalc) Distance(from *Point, x, y float64) float64 {
	dx := from.X() - x
	dy := from.Y() - y
	sq := dx*dx + dy*dy
	if c.squared {
		return sq
	}
	return math.Sqrt(sq)
}

func (c *cartesianCalc) Within(from *Point, x, y, distance float64) bool {
	dx := from.X() - x
	dy := from.Y() - y
	return dx*dx+dy*dy <= distance*distance
}

func (c *cartesianCalc) PointOnBearing(from *Point, dist, bearingDEG float64, ctx *SpatialContext, reuse *Point) *Point {
	rad := toRadians(bearingDEG)
	x := from.X() + math.Sin(rad)*dist
	y := from.Y() + math.Cos(rad)*dist
	if reuse != nil {
		reuse.Reset(x, y)
		return reuse
	}
	return newPoint(x, y, ctx)
}

func (c *cartesianCalc) CalcBoxByDistFromPt(from *Point, dist float64, ctx *SpatialContext, reuse *Rectangle) *Rectangle {
	wb := ctx.WorldBounds()
	minX := math.Max(wb.MinX(), from.X()-dist)
	maxX := math.Min(wb.MaxX(), from.X()+dist)
	minY := math.Max(wb.MinY(), from.Y()-dist)
	maxY := math.Min(wb.MaxY(), from.Y()+dist)
	if reuse != nil {
		reuse.Reset(minX, maxX, minY, maxY)
		return reuse
	}
	return newRectangle(minX, maxX, minY, maxY, ctx)
}

func (c *cartesianCalc) CalcBoxByDistFromPtHorizAxis(from *Point, dist float64) float64 {
	return from.Y()
}

func (c *cartesianCalc) AreaRect(r *Rectangle) float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Width() * r.Height()
}

func (c *cartesianCalc) AreaCircle(circle *Circle) float64 {
	if circle.IsEmpty() {
		return 0
	}
	return math.Pi * circle.Radius() * circle.Radius()
}
