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
	"strings"
)

// ShapeCollection is an ordered list of shapes with an aggregate,
// longitude-aware bounding box. Relating a collection folds the members'
// relations together with SpatialRelation.Combine.
type ShapeCollection struct {
	shapes []Shape
	ctx    *SpatialContext
	bbox   *Rectangle

	// When true (the default), a member relating as Contains ends the scan
	// early. Set false only when members may overlap such that a shape
	// contained by their union is contained by no single member.
	containsShortCircuits bool
}

func newShapeCollection(shapes []Shape, ctx *SpatialContext) *ShapeCollection {
	c := &ShapeCollection{shapes: shapes, ctx: ctx, containsShortCircuits: true}
	c.bbox = computeMutualBBox(shapes, ctx)
	return c
}

// computeMutualBBox aggregates member bounding boxes, unioning the X ranges
// with dateline awareness so that parts on both sides of the antimeridian
// produce a narrow crossing box rather than a nearly world-wide one.
func computeMutualBBox(shapes []Shape, ctx *SpatialContext) *Rectangle {
	if len(shapes) == 0 {
		return newRectangle(math.NaN(), math.NaN(), math.NaN(), math.NaN(), ctx)
	}
	var xr valueRange
	first := true
	minY := math.Inf(1)
	maxY := math.Inf(-1)
	for _, s := range shapes {
		r := s.BoundingBox()
		if r.IsEmpty() {
			continue
		}
		xr2 := xRangeOf(r, ctx)
		if first {
			xr = xr2
			first = false
		} else {
			xr = xr.expandTo(xr2)
		}
		minY = math.Min(minY, r.MinY())
		maxY = math.Max(maxY, r.MaxY())
	}
	if first {
		return newRectangle(math.NaN(), math.NaN(), math.NaN(), math.NaN(), ctx)
	}
	return newRectangle(xr.min, xr.max, minY, maxY, ctx)
}

// Shapes returns the member shapes in order.
func (c *ShapeCollection) Shapes() []Shape { return c.shapes }

// Len returns the number of members.
func (c *ShapeCollection) Len() int { return len(c.shapes) }

// Get returns the i'th member.
func (c *ShapeCollection) Get(i int) Shape { return c.shapes[i] }

// SetContainsShortCircuits configures the Contains fast path; see the field
// comment.
func (c *ShapeCollection) SetContainsShortCircuits(v bool) {
	c.containsShortCircuits = v
}

// IsEmpty reports whether the collection has no non-empty members.
func (c *ShapeCollection) IsEmpty() bool { return c.bbox.IsEmpty() }

// BoundingBox returns the aggregate bounding box.
func (c *ShapeCollection) BoundingBox() *Rectangle { return c.bbox }

// Center returns the center of the aggregate bounding box.
func (c *ShapeCollection) Center() *Point { return c.bbox.Center() }

// HasArea reports whether any member has area.
func (c *ShapeCollection) HasArea() bool {
	for _, s := range c.shapes {
		if s.HasArea() {
			return true
		}
	}
	return false
}

// Area returns the sum of the member areas. Overlap is not deduplicated.
func (c *ShapeCollection) Area(dc DistanceCalculator) float64 {
	sum := 0.0
	for _, s := range c.shapes {
		sum += s.Area(dc)
	}
	return sum
}

// Relate folds each member's relation into an aggregate, short-circuiting on
// Intersects, and on Contains when permitted.
func (c *ShapeCollection) Relate(other Shape) (SpatialRelation, error) {
	if c.IsEmpty() || other.IsEmpty() {
		return Disjoint, nil
	}
	bboxSect, err := c.bbox.Relate(other)
	if err != nil {
		return Disjoint, err
	}
	if bboxSect == Disjoint || bboxSect == Within {
		return bboxSect, nil
	}

	_, otherIsPoint := other.(*Point)
	shortCircuits := otherIsPoint || c.containsShortCircuits

	sect := Disjoint
	for i, s := range c.shapes {
		next, err := s.Relate(other)
		if err != nil {
			return Disjoint, err
		}
		if i == 0 {
			sect = next
		} else {
			sect = sect.Combine(next)
		}
		if sect == Intersects {
			return Intersects, nil
		}
		if sect == Contains && shortCircuits {
			return Contains, nil
		}
	}
	return sect, nil
}

// Buffered buffers each member and returns the resulting collection.
func (c *ShapeCollection) Buffered(distance float64, ctx *SpatialContext) (Shape, error) {
	buffered := make([]Shape, len(c.shapes))
	for i, s := range c.shapes {
		b, err := s.Buffered(distance, ctx)
		if err != nil {
			return nil, err
		}
		buffered[i] = b
	}
	return ctx.MakeCollection(buffered), nil
}

func (c *ShapeCollection) String() string {
	var b strings.Builder
	b.WriteString("ShapeCollection(")
	for i, s := range c.shapes {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", s)
	}
	b.WriteString(")")
	return b.String()
}
