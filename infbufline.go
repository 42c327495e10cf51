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

// infBufLine is an infinite line y = slope*x + intercept inflated by a buffer
// on each side: one of the two perpendicular strips whose intersection forms a
// BufferedLine. A vertical line has slope +Inf, and intercept then holds the
// x intercept instead.
type infBufLine struct {
	slope        float64
	intercept    float64
	buf          float64
	distDenomInv float64 // 1 / sqrt(slope^2 + 1); NaN for vertical
}

func newInfBufLine(slope float64, point *Point, buf float64) *infBufLine {
	l := &infBufLine{slope: slope, buf: buf}
	if math.IsInf(slope, 0) {
		l.slope = math.Inf(1)
		l.intercept = point.X()
		l.distDenomInv = math.NaN()
	} else {
		l.intercept = point.Y() - slope*point.X()
		l.distDenomInv = 1 / math.Sqrt(slope*slope+1)
	}
	return l
}

func (l *infBufLine) contains(x, y float64) bool {
	return l.distanceUnbuffered(x, y) <= l.buf
}

// distanceUnbuffered returns the perpendicular distance from (x, y) to the
// center line.
func (l *infBufLine) distanceUnbuffered(x, y float64) float64 {
	if math.IsInf(l.slope, 0) {
		return math.Abs(x - l.intercept)
	}
	// line as ax + by + c = 0 with a=slope, b=-1, c=intercept
	num := math.Abs(y - l.slope*x - l.intercept)
	return num * l.distDenomInv
}

// quadrant classifies (x, y) relative to the center line: 1..4 == NE, NW, SW,
// SE of it, in the rotated frame of the line.
func (l *infBufLine) quadrant(x, y float64) int {
	if math.IsInf(l.slope, 0) {
		if x > l.intercept {
			return 1 // 4 would do as well
		}
		return 2
	}
	// works for a horizontal line too
	yAtX := l.slope*x + l.intercept
	above := y >= yAtX
	if l.slope > 0 {
		// forward slash: above is NW, below SE
		if above {
			return 2
		}
		return 4
	}
	if above {
		return 1
	}
	return 3
}

var oppositeQuad = [5]int{-1, 3, 4, 1, 2}

func cornerByQuadrant(r *Rectangle, quad int) (x, y float64) {
	if quad == 1 || quad == 4 {
		x = r.MaxX()
	} else {
		x = r.MinX()
	}
	if quad == 1 || quad == 2 {
		y = r.MaxY()
	} else {
		y = r.MinY()
	}
	return x, y
}

// relate relates the strip to a rectangle, using the rectangle's center as
// the representative sample. Returns Contains, Intersects or Disjoint.
func (l *infBufLine) relate(r *Rectangle, center *Point) SpatialRelation {
	cQuad := l.quadrant(center.X(), center.Y())

	nearX, nearY := cornerByQuadrant(r, oppositeQuad[cQuad])
	if !l.contains(nearX, nearY) {
		if l.quadrant(nearX, nearY) == cQuad {
			// out of the buffer on the same side as the center
			return Disjoint
		}
		return Intersects // near and far corners straddle the strip
	}
	farX, farY := cornerByQuadrant(r, cQuad)
	if l.contains(farX, farY) {
		return Contains
	}
	return Intersects
}
