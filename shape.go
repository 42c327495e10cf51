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

// Package spatial4n provides geometric primitives (points, rectangles,
// circles, buffered lines, geometry wrappers, shape collections) supporting a
// uniform spatial-relation query, geodetic and Euclidean distance models, WKT
// parsing, and a compact binary serialization format. Geodetic shapes handle
// antimeridian (dateline) wraparound.
package spatial4n

// SpatialRelation describes how one shape relates to another.
type SpatialRelation int

const (
	// Disjoint means the two shapes share no points.
	Disjoint SpatialRelation = iota
	// Intersects means the shapes share some but not all points.
	Intersects
	// Contains means the first shape completely contains the second.
	Contains
	// Within means the first shape is completely contained by the second.
	Within
)

// Transpose swaps Contains and Within; Disjoint and Intersects are
// self-inverse. For all shape pairs, A.Relate(B) == B.Relate(A).Transpose().
func (r SpatialRelation) Transpose() SpatialRelation {
	switch r {
	case Contains:
		return Within
	case Within:
		return Contains
	default:
		return r
	}
}

// Combine folds the relation of one component shape into a running aggregate,
// as when relating a collection of shapes member by member. The result is
// order independent.
func (r SpatialRelation) Combine(other SpatialRelation) SpatialRelation {
	if r == other {
		return r
	}
	if r == Disjoint && other == Contains || r == Contains && other == Disjoint {
		return Contains
	}
	return Intersects
}

// Intersects reports whether the relation is anything other than Disjoint.
func (r SpatialRelation) Intersects() bool { return r != Disjoint }

func (r SpatialRelation) String() string {
	switch r {
	case Disjoint:
		return "DISJOINT"
	case Intersects:
		return "INTERSECTS"
	case Contains:
		return "CONTAINS"
	case Within:
		return "WITHIN"
	}
	return "UNKNOWN"
}

// Shape is the capability set every geometric entity implements. Shapes are
// immutable once constructed and safe for concurrent reads; the Reset methods
// on Point, Rectangle and Circle are documented performance escape hatches
// that forfeit that safety.
type Shape interface {
	// IsEmpty reports whether the shape has no geometry.
	IsEmpty() bool

	// BoundingBox returns the minimal axis-aligned rectangle enclosing the
	// shape. In geodetic mode it may cross the dateline.
	BoundingBox() *Rectangle

	// Center returns a representative center point.
	Center() *Point

	// HasArea reports whether the shape covers area (false for points and
	// unbuffered lines).
	HasArea() bool

	// Area returns the shape's area using the given calculator, or simple
	// Euclidean area when dc is nil.
	Area(dc DistanceCalculator) float64

	// Relate computes the spatial relation of this shape to other. The
	// relation obeys the transpose law. An UnsupportedOperationError is
	// returned for shape pairs with no relation implementation.
	Relate(other Shape) (SpatialRelation, error)

	// Buffered returns a copy of the shape expanded by distance, in the same
	// units as the coordinates.
	Buffered(distance float64, ctx *SpatialContext) (Shape, error)
}
