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

// Circle is a center point plus a radius in the same units as the coordinates
// (degrees in geodetic mode). It caches its enclosing bounding rectangle and
// the Y value at which that rectangle is widest.
type Circle struct {
	point  *Point
	radius float64
	ctx    *SpatialContext

	enclosingBox *Rectangle
	horizAxisY   float64
}

func newCircle(point *Point, radius float64, ctx *SpatialContext) *Circle {
	c := &Circle{point: point, radius: radius, ctx: ctx}
	c.init()
	return c
}

func (c *Circle) init() {
	if c.point.IsEmpty() {
		c.radius = math.NaN()
		c.enclosingBox = newRectangle(math.NaN(), math.NaN(), math.NaN(), math.NaN(), c.ctx)
		c.horizAxisY = math.NaN()
		return
	}
	dc := c.ctx.DistanceCalculator()
	c.enclosingBox = dc.CalcBoxByDistFromPt(c.point, c.radius, c.ctx, nil)
	c.horizAxisY = dc.CalcBoxByDistFromPtHorizAxis(c.point, c.radius)
}

// Reset overwrites the center and radius in place, recomputing the cached
// bounding rectangle. Same caveats as Point.Reset.
func (c *Circle) Reset(x, y, radius float64) {
	c.point.Reset(x, y)
	c.radius = radius
	c.init()
}

// Center returns the circle's center.
func (c *Circle) Center() *Point { return c.point }

// Radius returns the radius.
func (c *Circle) Radius() float64 { return c.radius }

// IsEmpty reports whether the center point is empty.
func (c *Circle) IsEmpty() bool { return c.point.IsEmpty() }

// BoundingBox returns the cached enclosing rectangle.
func (c *Circle) BoundingBox() *Rectangle { return c.enclosingBox }

// HasArea reports whether the radius is nonzero.
func (c *Circle) HasArea() bool { return c.radius > 0 }

// Area returns the area per the given calculator, or pi*r^2 when dc is nil.
func (c *Circle) Area(dc DistanceCalculator) float64 {
	if c.IsEmpty() {
		return 0
	}
	if dc == nil {
		return math.Pi * c.radius * c.radius
	}
	return dc.AreaCircle(c)
}

// Equals reports equal center and radius.
func (c *Circle) Equals(other *Circle) bool {
	return c.point.Equals(other.point) &&
		(c.radius == other.radius || (math.IsNaN(c.radius) && math.IsNaN(other.radius)))
}

// Contains reports whether (x, y) lies within the circle.
func (c *Circle) Contains(x, y float64) bool {
	return c.ctx.DistanceCalculator().Within(c.point, x, y, c.radius)
}

// Relate computes the relation to the other shape.
func (c *Circle) Relate(other Shape) (SpatialRelation, error) {
	if c.IsEmpty() || other.IsEmpty() {
		return Disjoint, nil
	}
	switch o := other.(type) {
	case *Point:
		return c.RelatePoint(o), nil
	case *Rectangle:
		return c.RelateRectangle(o)
	case *Circle:
		return c.RelateCircle(o), nil
	default:
		rel, err := other.Relate(c)
		if err != nil {
			return Disjoint, err
		}
		return rel.Transpose(), nil
	}
}

// RelatePoint returns Contains if the point is within the radius, else
// Disjoint.
func (c *Circle) RelatePoint(p *Point) SpatialRelation {
	if c.IsEmpty() || p.IsEmpty() {
		return Disjoint
	}
	if c.Contains(p.X(), p.Y()) {
		return Contains
	}
	return Disjoint
}

// RelateCircle compares center distance against the two radii.
func (c *Circle) RelateCircle(other *Circle) SpatialRelation {
	if c.IsEmpty() || other.IsEmpty() {
		return Disjoint
	}
	d := c.ctx.DistanceCalculator().Distance(c.point, other.point.X(), other.point.Y())
	r1, r2 := c.radius, other.radius
	if d > r1+r2 {
		return Disjoint
	}
	if d < r1 && d+r2 <= r1 {
		return Contains
	}
	if d < r2 && d+r1 <= r2 {
		return Within
	}
	return Intersects
}

// RelateRectangle is a two-phase test: the cached bounding box settles
// Disjoint and Within cheaply, then exact corner tests decide the rest. The
// corner phase is not dateline safe; a dateline-crossing or world-wrapping
// rectangle argument yields an UnsupportedOperationError rather than a wrong
// answer.
func (c *Circle) RelateRectangle(r *Rectangle) (SpatialRelation, error) {
	if c.IsEmpty() || r.IsEmpty() {
		return Disjoint, nil
	}
	bboxSect := c.enclosingBox.RelateRectangle(r)
	if bboxSect == Disjoint || bboxSect == Within {
		return bboxSect, nil
	}
	if bboxSect == Contains && c.enclosingBox.Equals(r) {
		// identity edge case: a circle can't contain its own bounding box's
		// corners
		return Within, nil
	}
	return c.relateRectanglePhase2(r, bboxSect)
}

func (c *Circle) relateRectanglePhase2(r *Rectangle, bboxSect SpatialRelation) (SpatialRelation, error) {
	if c.ctx.IsGeo() && (r.CrossesDateline() || r.Width() == 360) {
		return Disjoint, unsupportedf(
			"circle-rectangle relation is not dateline safe; rectangle %v crosses the dateline", r)
	}

	xAxis := c.point.X()
	yAxis := c.horizAxisY

	var closestX, farthestX float64
	switch {
	case r.MaxX() < xAxis:
		closestX, farthestX = r.MaxX(), r.MinX()
	case r.MinX() > xAxis:
		closestX, farthestX = r.MinX(), r.MaxX()
	default:
		closestX = xAxis // the rectangle spans the vertical axis
		farthestX = r.MaxX()
		if xAxis-r.MinX() > r.MaxX()-xAxis {
			farthestX = r.MinX()
		}
	}

	var closestY, farthestY float64
	switch {
	case r.MaxY() < yAxis:
		closestY, farthestY = r.MaxY(), r.MinY()
	case r.MinY() > yAxis:
		closestY, farthestY = r.MinY(), r.MaxY()
	default:
		closestY = yAxis // the rectangle spans the horizontal axis
		farthestY = r.MaxY()
		if yAxis-r.MinY() > r.MaxY()-yAxis {
			farthestY = r.MinY()
		}
	}

	// If the rectangle spans neither axis, the nearest corner decides
	// Disjoint; spanning an axis rules Disjoint out because the bbox check
	// already intersected.
	if closestX != xAxis && closestY != yAxis {
		if !c.Contains(closestX, closestY) {
			return Disjoint, nil
		}
	}

	// Not disjoint and not within (phase 1 settled that). Contains requires
	// the bbox relation to agree and the far corners to be inside.
	if bboxSect == Contains && c.Contains(farthestX, farthestY) {
		if c.horizAxisY != c.point.Y() {
			// the widest row isn't the center's row; the farthest-corner
			// heuristic can be fooled when the rectangle straddles it, so
			// check the opposite corner too
			farthestY2 := r.MaxY()
			if farthestY == r.MaxY() {
				farthestY2 = r.MinY()
			}
			if !c.Contains(farthestX, farthestY2) {
				return Intersects, nil
			}
		}
		return Contains, nil
	}
	return Intersects, nil
}

// Buffered returns a circle with the radius expanded by distance.
func (c *Circle) Buffered(distance float64, ctx *SpatialContext) (Shape, error) {
	return ctx.MakeCircle(c.point, c.radius+distance)
}

func (c *Circle) String() string {
	return fmt.Sprintf("Circle(%v, d=%v)", c.point, c.radius)
}
