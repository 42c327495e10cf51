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

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate. The empty point is represented by NaN ordinates.
type Point struct {
	x, y float64
	ctx  *SpatialContext
}

func newPoint(x, y float64, ctx *SpatialContext) *Point {
	return &Point{x: x, y: y, ctx: ctx}
}

// X returns the x ordinate (longitude in geodetic mode).
func (p *Point) X() float64 { return p.x }

// Y returns the y ordinate (latitude in geodetic mode).
func (p *Point) Y() float64 { return p.y }

// Reset overwrites the coordinates in place. It exists for tight loops that
// probe many candidate positions without reallocating; never call it on a
// point another goroutine may read, or on one shared as an immutable value.
func (p *Point) Reset(x, y float64) {
	p.x = x
	p.y = y
}

// IsEmpty reports whether the point is the empty sentinel.
func (p *Point) IsEmpty() bool { return math.IsNaN(p.x) }

// BoundingBox returns a degenerate rectangle at the point.
func (p *Point) BoundingBox() *Rectangle {
	return newRectangle(p.x, p.x, p.y, p.y, p.ctx)
}

// Center returns the point itself.
func (p *Point) Center() *Point { return p }

// HasArea returns false.
func (p *Point) HasArea() bool { return false }

// Area returns 0.
func (p *Point) Area(dc DistanceCalculator) float64 { return 0 }

// Equals reports coordinate equality. Two empty points are equal.
func (p *Point) Equals(other *Point) bool {
	if p.IsEmpty() || other.IsEmpty() {
		return p.IsEmpty() && other.IsEmpty()
	}
	return p.x == other.x && p.y == other.y
}

// Relate returns Contains for an identical point, Disjoint for a distinct
// one, and defers to the other shape (transposed) otherwise.
func (p *Point) Relate(other Shape) (SpatialRelation, error) {
	if p.IsEmpty() || other.IsEmpty() {
		return Disjoint, nil
	}
	if o, ok := other.(*Point); ok {
		if p.Equals(o) {
			return Contains, nil
		}
		return Disjoint, nil
	}
	rel, err := other.Relate(p)
	if err != nil {
		return Disjoint, err
	}
	return rel.Transpose(), nil
}

// Buffered returns a circle of the given radius around the point.
func (p *Point) Buffered(distance float64, ctx *SpatialContext) (Shape, error) {
	return ctx.MakeCircle(p, distance)
}

func (p *Point) String() string {
	return fmt.Sprintf("Pt(x=%v,y=%v)", p.x, p.y)
}
