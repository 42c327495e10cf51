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
	"strings"
)

// BufferedLineString is an ordered chain of points joined into BufferedLine
// segments, held as a ShapeCollection. A single point is treated as a
// degenerate zero-length segment.
type BufferedLineString struct {
	segments *ShapeCollection
	points   []*Point
	buf      float64
}

// newBufferedLineString builds the chain. When expandBufForLongitudeSkew is
// set, each segment's buffer is widened using the latitude of the more
// poleward endpoint.
func newBufferedLineString(points []*Point, buf float64, expandBufForLongitudeSkew bool, ctx *SpatialContext) *BufferedLineString {
	bls := &BufferedLineString{points: points, buf: buf}

	var segments []Shape
	var prev *Point
	for _, point := range points {
		if prev != nil {
			segBuf := buf
			if expandBufForLongitudeSkew {
				segBuf = ExpandBufForLongitudeSkew(prev, point, buf)
			}
			segments = append(segments, newBufferedLine(prev, point, segBuf, ctx))
		}
		prev = point
	}
	if len(segments) == 0 && prev != nil {
		segments = append(segments, newBufferedLine(prev, prev, buf, ctx))
	}
	bls.segments = newShapeCollection(segments, ctx)
	return bls
}

// Points returns the chain's points in order.
func (b *BufferedLineString) Points() []*Point { return b.points }

// Buf returns the buffer distance.
func (b *BufferedLineString) Buf() float64 { return b.buf }

// Segments returns the underlying collection of BufferedLine segments.
func (b *BufferedLineString) Segments() *ShapeCollection { return b.segments }

// IsEmpty reports whether the chain has no segments.
func (b *BufferedLineString) IsEmpty() bool { return b.segments.IsEmpty() }

// BoundingBox returns the aggregate bounding box of the segments.
func (b *BufferedLineString) BoundingBox() *Rectangle { return b.segments.BoundingBox() }

// Center returns the center of the bounding box.
func (b *BufferedLineString) Center() *Point { return b.segments.Center() }

// HasArea reports whether the buffer is nonzero.
func (b *BufferedLineString) HasArea() bool { return b.buf > 0 }

// Area returns the summed segment areas; joints are double counted.
func (b *BufferedLineString) Area(dc DistanceCalculator) float64 {
	return b.segments.Area(dc)
}

// Relate delegates to the segment collection.
func (b *BufferedLineString) Relate(other Shape) (SpatialRelation, error) {
	if b.IsEmpty() || other.IsEmpty() {
		return Disjoint, nil
	}
	return b.segments.Relate(other)
}

// Buffered returns the same chain with a wider buffer.
func (b *BufferedLineString) Buffered(distance float64, ctx *SpatialContext) (Shape, error) {
	return ctx.MakeBufferedLineString(b.points, b.buf+distance)
}

func (b *BufferedLineString) String() string {
	var s strings.Builder
	s.WriteString("BufferedLineString(buf=")
	fmt.Fprintf(&s, "%v", b.buf)
	s.WriteString(" pts=")
	for i, p := range b.points {
		if i > 0 {
			s.WriteString(", ")
		}
		fmt.Fprintf(&s, "%v %v", p.X(), p.Y())
	}
	s.WriteString(")")
	return s.String()
}
