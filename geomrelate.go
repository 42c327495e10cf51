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
	"math"
	"sort"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerances for classifying overlap areas from the boolean engine, which
// introduces small numerical error on clipped vertices.
const (
	areaTolAbs = 1e-10
	areaTolRel = 1e-9
)

// Relate computes the relation of the wrapped geometry to another shape.
// Rectangles crossing the dateline are handled by splitting; circles are
// approximated by an inscribed-error polygon; buffered lines are not
// supported against general geometries.
func (s *GeomShape) Relate(other Shape) (SpatialRelation, error) {
	if s.IsEmpty() || other.IsEmpty() {
		return Disjoint, nil
	}
	switch o := other.(type) {
	case *Point:
		return s.relatePoint(o), nil
	case *Rectangle:
		return s.relateRectangle(o)
	case *Circle:
		return s.relateCircle(o)
	case *GeomShape:
		return s.relateGeomShape(o)
	case *ShapeCollection:
		rel, err := o.Relate(s)
		if err != nil {
			return Intersects, err
		}
		return rel.Transpose(), nil
	default:
		return Intersects, unsupportedf("cannot relate a geometry to a %T", other)
	}
}

func (s *GeomShape) relatePoint(p *Point) SpatialRelation {
	if rel := s.bbox.RelatePoint(p); rel == Disjoint {
		return Disjoint
	}
	pt := geom.Point{X: p.X(), Y: p.Y()}
	if s.containsPoint(pt) {
		return Contains
	}
	return Disjoint
}

// containsPoint reports whether the geometry covers the point, consulting
// the acceleration index when one has been built.
func (s *GeomShape) containsPoint(pt geom.Point) bool {
	if s.index != nil {
		for _, hit := range s.index.SearchIntersect(pt.Bounds()) {
			if partContainsPoint(hit, pt) {
				return true
			}
		}
		return false
	}
	for _, part := range geomParts(s.g) {
		if partContainsPoint(part, pt) {
			return true
		}
	}
	return false
}

func partContainsPoint(part geom.Geom, pt geom.Point) bool {
	switch t := part.(type) {
	case geom.Polygon:
		return pt.Within(t) != geom.Outside
	case geom.LineString:
		return pointOnLine(pt, t)
	case geom.Point:
		return t.Equals(pt)
	default:
		return false
	}
}

func pointOnLine(pt geom.Point, ls geom.LineString) bool {
	for i := 1; i < len(ls); i++ {
		if onSegment(pt, ls[i-1], ls[i]) {
			return true
		}
	}
	return false
}

func (s *GeomShape) relateRectangle(r *Rectangle) (SpatialRelation, error) {
	bboxSect := s.bbox.RelateRectangle(r)
	if bboxSect == Disjoint || bboxSect == Within {
		return bboxSect, nil
	}
	return s.relateToPolygonal(rectToPolygonal(r)), nil
}

// rectToPolygonal converts a rectangle to the boolean engine's coordinate
// space, splitting a dateline-crossing rectangle into western and eastern
// boxes.
func rectToPolygonal(r *Rectangle) geom.Polygonal {
	box := func(minX, maxX float64) geom.Polygon {
		return geom.Polygon{{
			{X: minX, Y: r.MinY()},
			{X: maxX, Y: r.MinY()},
			{X: maxX, Y: r.MaxY()},
			{X: minX, Y: r.MaxY()},
			{X: minX, Y: r.MinY()},
		}}
	}
	if r.CrossesDateline() {
		return geom.MultiPolygon{box(r.MinX(), 180), box(-180, r.MaxX())}
	}
	return box(r.MinX(), r.MaxX())
}

func (s *GeomShape) relateCircle(c *Circle) (SpatialRelation, error) {
	// the circle's exact rectangle test resolves the cheap cases; Within of
	// our bbox in the circle means the whole geometry is within it
	if rel, err := c.RelateRectangle(s.bbox); err == nil {
		bboxSect := rel.Transpose()
		if bboxSect == Disjoint || bboxSect == Within {
			return bboxSect, nil
		}
	}
	approx, err := circleToGeomShape(c, s.ctx)
	if err != nil {
		return Intersects, err
	}
	return s.relateGeomShape(approx)
}

// circleToGeomShape approximates a circle as a regular polygon run through
// the normalization pipeline, so circles near the dateline become split
// multi-polygons like any other geometry.
func circleToGeomShape(c *Circle, ctx *SpatialContext) (*GeomShape, error) {
	n := ctx.circleSegments
	if n < 4 {
		n = defaultCircleSegments
	}
	ring := make([]geom.Point, 0, n+1)
	center := c.Center()
	if ctx.IsGeo() {
		dc := ctx.DistanceCalculator()
		scratch := newPoint(0, 0, ctx)
		for i := 0; i < n; i++ {
			p := dc.PointOnBearing(center, c.Radius(), float64(i)*360/float64(n), ctx, scratch)
			ring = append(ring, geom.Point{X: p.X(), Y: p.Y()})
		}
	} else {
		for i := 0; i < n; i++ {
			a := 2 * math.Pi * float64(i) / float64(n)
			ring = append(ring, geom.Point{
				X: center.X() + c.Radius()*math.Cos(a),
				Y: center.Y() + c.Radius()*math.Sin(a),
			})
		}
	}
	ring = append(ring, ring[0])
	return NewGeomShape(geom.Polygon{ring}, ctx, ctx.IsGeo(), false)
}

type geomKind int

const (
	kindPoint geomKind = iota
	kindLine
	kindPoly
)

func kindOf(g geom.Geom) geomKind {
	switch g.(type) {
	case geom.Point, geom.MultiPoint:
		return kindPoint
	case geom.LineString, geom.MultiLineString:
		return kindLine
	default:
		return kindPoly
	}
}

func (s *GeomShape) relateGeomShape(o *GeomShape) (SpatialRelation, error) {
	if s.bbox.RelateRectangle(o.bbox) == Disjoint {
		return Disjoint, nil
	}
	sk, ok := kindOf(s.g), kindOf(o.g)
	switch {
	case sk == kindPoly && ok == kindPoly:
		return relatePolyPoly(s.g.(geom.Polygonal), o.g.(geom.Polygonal)), nil
	case sk == kindPoly && ok == kindLine:
		return relateLinePoly(o.g, s.g.(geom.Polygonal)).Transpose(), nil
	case sk == kindLine && ok == kindPoly:
		return relateLinePoly(s.g, o.g.(geom.Polygonal)), nil
	case sk == kindPoly && ok == kindPoint:
		return relatePointsPoly(o.g, s.g.(geom.Polygonal)).Transpose(), nil
	case sk == kindPoint && ok == kindPoly:
		return relatePointsPoly(s.g, o.g.(geom.Polygonal)), nil
	case sk == kindLine && ok == kindLine:
		return relateLineLine(s.g, o.g), nil
	case sk == kindPoint && ok == kindLine:
		return relatePointsLine(s.g, o.g), nil
	case sk == kindLine && ok == kindPoint:
		return relatePointsLine(o.g, s.g).Transpose(), nil
	default: // point vs point
		return relatePointsPoints(s.g, o.g), nil
	}
}

// relateToPolygonal relates the wrapped geometry to an areal operand built
// from a rectangle or circle.
func (s *GeomShape) relateToPolygonal(other geom.Polygonal) SpatialRelation {
	switch kindOf(s.g) {
	case kindPoly:
		return relatePolyPoly(s.g.(geom.Polygonal), other)
	case kindLine:
		return relateLinePoly(s.g, other)
	default:
		return relatePointsPoly(s.g, other)
	}
}

// relatePolyPoly classifies two areal geometries by comparing the area of
// their intersection against each operand's own area.
func relatePolyPoly(a, b geom.Polygonal) SpatialRelation {
	inter := a.Intersection(b)
	ia := inter.Area()
	if ia <= areaTolAbs {
		if polygonalsTouch(a, b) {
			return Intersects
		}
		return Disjoint
	}
	if areaEqual(ia, b.Area()) {
		return Contains
	}
	if areaEqual(ia, a.Area()) {
		return Within
	}
	return Intersects
}

func areaEqual(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, areaTolAbs, areaTolRel)
}

// polygonalsTouch reports whether two areal geometries with no interior
// overlap still share boundary points.
func polygonalsTouch(a, b geom.Polygonal) bool {
	for _, pa := range a.Polygons() {
		for _, pb := range b.Polygons() {
			for _, ra := range pa {
				for _, rb := range pb {
					for _, sa := range ringSegments(ra) {
						for _, sb := range ringSegments(rb) {
							if segmentsIntersect(sa[0], sa[1], sb[0], sb[1]) {
								return true
							}
						}
					}
				}
			}
		}
	}
	return false
}

// relateLinePoly returns the relation of a linear geometry to an areal one,
// from the line's point of view.
func relateLinePoly(line geom.Geom, poly geom.Polygonal) SpatialRelation {
	polys := poly.Polygons()
	anyIn, anyOut := false, false
	for _, v := range collectVertices(line) {
		st := withinAny(v, polys)
		switch st {
		case geom.Inside:
			anyIn = true
		case geom.Outside:
			anyOut = true
		}
	}
	if lineCrossesBoundary(line, polys) {
		return Intersects
	}
	if anyIn && anyOut {
		return Intersects
	}
	if anyOut {
		return Disjoint
	}
	// all vertices inside or on the boundary, no proper crossing
	return Within
}

func withinAny(p geom.Point, polys []geom.Polygon) geom.WithinStatus {
	st := geom.Outside
	for _, poly := range polys {
		switch p.Within(poly) {
		case geom.Inside:
			return geom.Inside
		case geom.OnEdge:
			st = geom.OnEdge
		}
	}
	return st
}

func lineCrossesBoundary(line geom.Geom, polys []geom.Polygon) bool {
	var lines []geom.LineString
	switch t := line.(type) {
	case geom.LineString:
		lines = []geom.LineString{t}
	case geom.MultiLineString:
		lines = t
	}
	for _, ls := range lines {
		for i := 1; i < len(ls); i++ {
			for _, poly := range polys {
				for _, ring := range poly {
					for _, seg := range ringSegments(ring) {
						if segmentsProperlyCross(ls[i-1], ls[i], seg[0], seg[1]) {
							return true
						}
					}
				}
			}
		}
	}
	return false
}

// relatePointsPoly returns the relation of a point geometry to an areal one,
// from the points' point of view.
func relatePointsPoly(points geom.Geom, poly geom.Polygonal) SpatialRelation {
	polys := poly.Polygons()
	anyIn, anyOut := false, false
	for _, v := range collectVertices(points) {
		if withinAny(v, polys) == geom.Outside {
			anyOut = true
		} else {
			anyIn = true
		}
	}
	switch {
	case anyIn && anyOut:
		return Intersects
	case anyIn:
		return Within
	default:
		return Disjoint
	}
}

func relateLineLine(a, b geom.Geom) SpatialRelation {
	la, lb := lineStringsOf(a), lineStringsOf(b)
	switch {
	case lineCoveredBy(lb, la):
		return Contains
	case lineCoveredBy(la, lb):
		return Within
	}
	for _, sa := range lineSegments(la) {
		for _, sb := range lineSegments(lb) {
			if segmentsIntersect(sa[0], sa[1], sb[0], sb[1]) {
				return Intersects
			}
		}
	}
	return Disjoint
}

func lineSegments(lines []geom.LineString) [][2]geom.Point {
	var segs [][2]geom.Point
	for _, ls := range lines {
		for i := 1; i < len(ls); i++ {
			segs = append(segs, [2]geom.Point{ls[i-1], ls[i]})
		}
	}
	return segs
}

func onAnyLine(p geom.Point, lines []geom.LineString) bool {
	for _, ls := range lines {
		if pointOnLine(p, ls) {
			return true
		}
	}
	return false
}

// lineCoveredBy reports whether every point of the runs in a lies on the
// runs in b, so a collinear sub-line counts as contained.
func lineCoveredBy(a, b []geom.LineString) bool {
	if len(a) == 0 {
		return false
	}
	for _, ls := range a {
		if len(ls) == 1 && !onAnyLine(ls[0], b) {
			return false
		}
		for i := 1; i < len(ls); i++ {
			if !segmentCoveredBy(ls[i-1], ls[i], b) {
				return false
			}
		}
	}
	return true
}

// segmentCoveredBy splits pq at the vertices of b that lie on it and tests
// the midpoint of each piece, so coverage spanning several b segments is
// still detected.
func segmentCoveredBy(p, q geom.Point, b []geom.LineString) bool {
	if !onAnyLine(p, b) || !onAnyLine(q, b) {
		return false
	}
	if p.Equals(q) {
		return true
	}
	cuts := []float64{0, 1}
	for _, ls := range b {
		for _, v := range ls {
			if onSegment(v, p, q) {
				cuts = append(cuts, segmentParam(p, q, v))
			}
		}
	}
	sort.Float64s(cuts)
	for i := 1; i < len(cuts); i++ {
		t := (cuts[i-1] + cuts[i]) / 2
		mid := geom.Point{X: p.X + t*(q.X-p.X), Y: p.Y + t*(q.Y-p.Y)}
		if !onAnyLine(mid, b) {
			return false
		}
	}
	return true
}

// segmentParam returns v's position along pq as a fraction of its length,
// assuming v is collinear with pq.
func segmentParam(p, q, v geom.Point) float64 {
	dx, dy := q.X-p.X, q.Y-p.Y
	if math.Abs(dx) >= math.Abs(dy) {
		return (v.X - p.X) / dx
	}
	return (v.Y - p.Y) / dy
}

func lineStringsOf(g geom.Geom) []geom.LineString {
	switch t := g.(type) {
	case geom.LineString:
		return []geom.LineString{t}
	case geom.MultiLineString:
		return t
	default:
		return nil
	}
}

func relatePointsLine(points, line geom.Geom) SpatialRelation {
	anyOn, anyOff := false, false
	lines := lineStringsOf(line)
	for _, v := range collectVertices(points) {
		on := false
		for _, ls := range lines {
			if pointOnLine(v, ls) {
				on = true
				break
			}
		}
		if on {
			anyOn = true
		} else {
			anyOff = true
		}
	}
	switch {
	case anyOn && anyOff:
		return Intersects
	case anyOn:
		return Within
	default:
		return Disjoint
	}
}

func relatePointsPoints(a, b geom.Geom) SpatialRelation {
	av, bv := collectVertices(a), collectVertices(b)
	aInB := pointSetCovered(av, bv)
	bInA := pointSetCovered(bv, av)
	switch {
	case aInB && bInA:
		return Contains // equal sets
	case bInA:
		return Contains
	case aInB:
		return Within
	default:
		anyShared := false
		for _, p := range av {
			for _, q := range bv {
				if p.Equals(q) {
					anyShared = true
				}
			}
		}
		if anyShared {
			return Intersects
		}
		return Disjoint
	}
}

func pointSetCovered(sub, super []geom.Point) bool {
	for _, p := range sub {
		found := false
		for _, q := range super {
			if p.Equals(q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
