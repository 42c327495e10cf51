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

// BufferedLine is a line segment from A to B inflated by a buffer distance,
// modeled as the intersection of two perpendicular infinite buffered strips:
// one along the segment, one across it bounding the segment's extent plus
// buffer. It is a planar shape; for geodetic use see
// ExpandBufForLongitudeSkew.
type BufferedLine struct {
	pA, pB *Point
	buf    float64
	ctx    *SpatialContext

	linePrimary *infBufLine // along A-B
	linePerp    *infBufLine // across A-B
	bbox        *Rectangle
}

func newBufferedLine(pA, pB *Point, buf float64, ctx *SpatialContext) *BufferedLine {
	bl := &BufferedLine{pA: pA, pB: pB, buf: buf, ctx: ctx}

	deltaX := pB.X() - pA.X()
	deltaY := pB.Y() - pA.Y()

	if pA.Equals(pB) {
		// degenerate zero-length line: point-like, perpendicular axis at
		// infinity
		bl.linePrimary = newInfBufLine(0, pA, buf)
		bl.linePerp = newInfBufLine(math.Inf(1), pA, buf)
	} else {
		center := newPoint(pA.X()+deltaX/2, pA.Y()+deltaY/2, ctx)
		perpExtent := math.Sqrt(deltaX*deltaX+deltaY*deltaY)/2 + buf
		bl.linePrimary = newInfBufLine(deltaY/deltaX, center, buf)
		bl.linePerp = newInfBufLine(-deltaX/deltaY, center, perpExtent)
	}

	minX, maxX := pA.X(), pB.X()
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := pA.Y(), pB.Y()
	if minY > maxY {
		minY, maxY = maxY, minY
	}

	// Expansion of the bounds by the buffer. For a sloped segment the strip
	// corners stick out by buf*(|cos|+|sin|) of the slope angle, which stays
	// within [buf, 1.5*buf].
	bufDelta := buf
	if deltaX != 0 && deltaY != 0 {
		bufDelta = buf * bl.linePrimary.distDenomInv *
			(1 + math.Abs(bl.linePrimary.slope))
	}

	wb := ctx.WorldBounds()
	bl.bbox = newRectangle(
		math.Max(wb.MinX(), minX-bufDelta),
		math.Min(wb.MaxX(), maxX+bufDelta),
		math.Max(wb.MinY(), minY-bufDelta),
		math.Min(wb.MaxY(), maxY+bufDelta),
		ctx)
	return bl
}

// ExpandBufForLongitudeSkew widens a buffer to compensate for longitude
// compression at high latitude, using the more poleward of the two endpoint
// latitudes.
func ExpandBufForLongitudeSkew(pA, pB *Point, buf float64) float64 {
	maxLat := math.Max(math.Abs(pA.Y()), math.Abs(pB.Y()))
	return buf / math.Cos(toRadians(maxLat))
}

// A returns the first endpoint.
func (bl *BufferedLine) A() *Point { return bl.pA }

// B returns the second endpoint.
func (bl *BufferedLine) B() *Point { return bl.pB }

// Buf returns the buffer distance.
func (bl *BufferedLine) Buf() float64 { return bl.buf }

// IsEmpty reports whether either endpoint is empty.
func (bl *BufferedLine) IsEmpty() bool { return bl.pA.IsEmpty() || bl.pB.IsEmpty() }

// BoundingBox returns the precomputed bounding rectangle, clipped to world
// bounds.
func (bl *BufferedLine) BoundingBox() *Rectangle { return bl.bbox }

// Center returns the segment midpoint.
func (bl *BufferedLine) Center() *Point { return bl.bbox.Center() }

// HasArea reports whether the buffer is nonzero.
func (bl *BufferedLine) HasArea() bool { return bl.buf > 0 }

// Area returns the planar area of the buffered strip intersection.
func (bl *BufferedLine) Area(dc DistanceCalculator) float64 {
	if bl.IsEmpty() {
		return 0
	}
	deltaX := bl.pB.X() - bl.pA.X()
	deltaY := bl.pB.Y() - bl.pA.Y()
	length := math.Sqrt(deltaX*deltaX + deltaY*deltaY)
	return (length + 2*bl.buf) * 2 * bl.buf
}

// Contains reports whether the point lies within the buffer of both strips.
func (bl *BufferedLine) Contains(p *Point) bool {
	if bl.IsEmpty() || p.IsEmpty() {
		return false
	}
	return bl.linePrimary.contains(p.X(), p.Y()) &&
		bl.linePerp.contains(p.X(), p.Y())
}

// Relate computes the relation to a Point or Rectangle; other combinations
// are unsupported.
func (bl *BufferedLine) Relate(other Shape) (SpatialRelation, error) {
	if bl.IsEmpty() || other.IsEmpty() {
		return Disjoint, nil
	}
	switch o := other.(type) {
	case *Point:
		if bl.Contains(o) {
			return Contains, nil
		}
		return Disjoint, nil
	case *Rectangle:
		return bl.RelateRectangle(o), nil
	default:
		return Disjoint, unsupportedf("BufferedLine cannot relate to %T", other)
	}
}

// RelateRectangle relates via a bbox prefilter, then the two strips evaluated
// against the rectangle: either strip disjoint means disjoint; agreement wins;
// disagreement is Intersects.
func (bl *BufferedLine) RelateRectangle(r *Rectangle) SpatialRelation {
	if bl.IsEmpty() || r.IsEmpty() {
		return Disjoint
	}
	bboxR := bl.bbox.RelateRectangle(r)
	if bboxR == Disjoint || bboxR == Within {
		return bboxR
	}
	center := r.Center()
	primary := bl.linePrimary.relate(r, center)
	if primary == Disjoint {
		return Disjoint
	}
	perp := bl.linePerp.relate(r, center)
	if perp == Disjoint {
		return Disjoint
	}
	if primary == perp {
		return primary
	}
	return Intersects
}

// Buffered returns the same segment with a wider buffer.
func (bl *BufferedLine) Buffered(distance float64, ctx *SpatialContext) (Shape, error) {
	return ctx.MakeBufferedLine(bl.pA, bl.pB, bl.buf+distance)
}

func (bl *BufferedLine) String() string {
	return fmt.Sprintf("BufferedLine(%v, %v b=%v)", bl.pA, bl.pB, bl.buf)
}
