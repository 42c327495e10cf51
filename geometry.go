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
	"sort"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// GeomShape wraps an external geometry object (point, line, polygon or
// multi-polygon) in a dateline-aware Shape. Construction in geodetic mode
// unwraps geometries that cross the antimeridian into an extended longitude
// range, optionally unions overlapping multi-part inputs, re-pages the result
// into standard 360-degree bands, and computes a geo-correct bounding box.
//
// Bare geom.GeometryCollection values are rejected; use the typed multi
// variants instead.
type GeomShape struct {
	g       geom.Geom
	ctx     *SpatialContext
	bbox    *Rectangle
	hasArea bool

	validated bool
	index     *rtree.Rtree // nil until Index(); build is not thread-safe
}

// NewGeomShape wraps g. dateline180Check enables the antimeridian unwrap;
// allowMultiOverlap unions multi-polygon parts that overlap (tolerating
// inputs that violate strict OGC validity). Construction copies coordinates
// as needed; the caller's geometry is never modified.
func NewGeomShape(g geom.Geom, ctx *SpatialContext, dateline180Check, allowMultiOverlap bool) (*GeomShape, error) {
	if _, bare := g.(geom.GeometryCollection); bare {
		return nil, invalidShapef(
			"GeomShape does not support bare geom.GeometryCollection; use a typed multi geometry")
	}

	s := &GeomShape{ctx: ctx}
	if ctx.IsGeo() {
		var err error
		if dateline180Check {
			g, _, err = unwrapDateline(g)
			if err != nil {
				return nil, err
			}
		}
		if allowMultiOverlap {
			g = unionMultiParts(g)
		}
		g, err = cutUnwrappedInto360(g)
		if err != nil {
			return nil, err
		}
		assertEnvelopeWidth(g)
		if _, bare := g.(geom.GeometryCollection); bare {
			return nil, invalidShapef("normalization produced a bare geometry collection")
		}
		s.bbox = computeGeoBBox(g, ctx)
	} else {
		if allowMultiOverlap {
			g = unionMultiParts(g)
		}
		b := g.Bounds()
		if b.Empty() {
			s.bbox = newRectangle(math.NaN(), math.NaN(), math.NaN(), math.NaN(), ctx)
		} else {
			s.bbox = newRectangle(b.Min.X, b.Max.X, b.Min.Y, b.Max.Y, ctx)
		}
	}
	s.g = g
	_, s.hasArea = g.(geom.Polygonal)
	return s, nil
}

// assertEnvelopeWidth fails loudly on a post-normalization envelope wider
// than 360 degrees: that is a logic defect, and continuing would produce
// geometrically wrong answers.
func assertEnvelopeWidth(g geom.Geom) {
	b := g.Bounds()
	if b.Empty() {
		return
	}
	if w := b.Max.X - b.Min.X; w > 360+1e-9 {
		panic(fmt.Sprintf("spatial4n: envelope width %v exceeds 360 after normalization", w))
	}
}

// Geom returns the wrapped (normalized) geometry.
func (s *GeomShape) Geom() geom.Geom { return s.g }

// IsEmpty reports whether the wrapped geometry has no extent.
func (s *GeomShape) IsEmpty() bool { return s.bbox.IsEmpty() }

// BoundingBox returns the geo-corrected bounding rectangle.
func (s *GeomShape) BoundingBox() *Rectangle { return s.bbox }

// Center returns the centroid for polygonal geometries, otherwise the center
// of the bounding box.
func (s *GeomShape) Center() *Point {
	if p, ok := s.g.(geom.Polygonal); ok && !s.IsEmpty() {
		c := p.Centroid()
		return newPoint(c.X, c.Y, s.ctx)
	}
	return s.bbox.Center()
}

// HasArea reports whether the geometry is polygonal.
func (s *GeomShape) HasArea() bool { return s.hasArea }

// Area returns the engine's area in coordinate space (square degrees in
// geodetic mode); the calculator is not consulted.
func (s *GeomShape) Area(dc DistanceCalculator) float64 {
	if p, ok := s.g.(geom.Polygonal); ok {
		return p.Area()
	}
	return 0
}

// Validated reports whether Validate has succeeded.
func (s *GeomShape) Validated() bool { return s.validated }

// Validate checks the wrapped geometry for validity (ring self-intersection
// and crossing rings) and caches success.
func (s *GeomShape) Validate() error {
	if s.validated {
		return nil
	}
	if err := validateGeom(s.g); err != nil {
		return &InvalidShapeError{Msg: "geometry failed validity check", Err: err}
	}
	s.validated = true
	return nil
}

// Indexed reports whether the acceleration index has been built.
func (s *GeomShape) Indexed() bool { return s.index != nil }

// Index builds an r-tree over the geometry's parts to speed up repeated
// relation queries, returning the shape for chaining. The build itself is a
// one-time state transition and is not thread-safe; complete it before
// concurrent Relate calls begin. Indexing twice is a no-op.
func (s *GeomShape) Index() *GeomShape {
	if s.index != nil {
		return s
	}
	t := rtree.NewTree(25, 50)
	for _, part := range geomParts(s.g) {
		t.Insert(part)
	}
	s.index = t
	return s
}

// geomParts splits multi geometries into their parts; single geometries are
// one part.
func geomParts(g geom.Geom) []geom.Geom {
	switch t := g.(type) {
	case geom.MultiPolygon:
		parts := make([]geom.Geom, len(t))
		for i, p := range t {
			parts[i] = p
		}
		return parts
	case geom.MultiLineString:
		parts := make([]geom.Geom, len(t))
		for i, l := range t {
			parts[i] = l
		}
		return parts
	case geom.MultiPoint:
		parts := make([]geom.Geom, len(t))
		for i, p := range t {
			parts[i] = p
		}
		return parts
	default:
		return []geom.Geom{g}
	}
}

// unwrapDateline returns a copy of g in which every ring or line whose
// envelope spans at least 180 degrees and jumps more than 180 degrees between
// consecutive vertices is reinterpreted as crossing the dateline the shorter
// way, with coordinates shifted into one contiguous band starting at or above
// -180. The second result is the number of 360-degree pages crossed.
func unwrapDateline(g geom.Geom) (geom.Geom, int, error) {
	switch t := g.(type) {
	case geom.Point, geom.MultiPoint:
		return g, 0, nil
	case geom.LineString:
		if boundsWidth(t.Bounds()) < 180 {
			return g, 0, nil
		}
		out, cross := unwrapCoords([]geom.Point(t))
		return geom.LineString(out), cross, nil
	case geom.MultiLineString:
		out := make(geom.MultiLineString, len(t))
		maxCross := 0
		for i, l := range t {
			unwrapped, cross, err := unwrapDateline(l)
			if err != nil {
				return nil, 0, err
			}
			out[i] = unwrapped.(geom.LineString)
			if cross > maxCross {
				maxCross = cross
			}
		}
		return out, maxCross, nil
	case geom.Polygon:
		return unwrapPolygon(t)
	case geom.MultiPolygon:
		out := make(geom.MultiPolygon, len(t))
		maxCross := 0
		for i, p := range t {
			unwrapped, cross, err := unwrapPolygon(p)
			if err != nil {
				return nil, 0, err
			}
			out[i] = unwrapped.(geom.Polygon)
			if cross > maxCross {
				maxCross = cross
			}
		}
		return out, maxCross, nil
	default:
		return g, 0, nil
	}
}

func unwrapPolygon(p geom.Polygon) (geom.Geom, int, error) {
	if len(p) == 0 || boundsWidth(p.Bounds()) < 180 {
		return p, 0, nil
	}
	out := make(geom.Polygon, len(p))
	exterior, cross := unwrapCoords(p[0])
	out[0] = exterior
	for i, hole := range p[1:] {
		h, _ := unwrapCoords(hole)
		if cross > 0 {
			// shift the hole east in whole pages until it fits inside the
			// shifted exterior; more shifts than crossings means the ring
			// nesting is malformed
			shifts := 0
			for !ringContainsRing(exterior, h) {
				if shifts > cross {
					return nil, 0, invalidShapef(
						"interior ring does not appear to be within the exterior ring after %d shifts", shifts)
				}
				h = shiftRingX(h, 360)
				shifts++
			}
		}
		out[i+1] = h
	}
	return out, cross, nil
}

// unwrapCoords walks the coordinate sequence left to right, accumulating a
// page shift each time consecutive vertices jump more than 180 degrees, then
// shifts the whole sequence so the minimum page reached sits at page zero.
// Returns the shifted copy and the page span (number of crossings).
func unwrapCoords(pts []geom.Point) ([]geom.Point, int) {
	out := make([]geom.Point, len(pts))
	copy(out, pts)
	if len(out) <= 1 {
		return out, 0
	}
	shiftX := 0.0
	page, pageMin, pageMax := 0, 0, 0
	prevX := out[0].X
	for i := 1; i < len(out); i++ {
		thisX := out[i].X + shiftX
		if prevX-thisX > 180 { // crossed the dateline heading east
			thisX += 360
			shiftX += 360
			page++
			if page > pageMax {
				pageMax = page
			}
		} else if thisX-prevX > 180 { // crossed heading west
			thisX -= 360
			shiftX -= 360
			page--
			if page < pageMin {
				pageMin = page
			}
		}
		out[i].X = thisX
		prevX = thisX
	}
	if pageMin != 0 {
		for i := range out {
			out[i].X -= 360 * float64(pageMin)
		}
	}
	return out, pageMax - pageMin
}

func shiftRingX(ring []geom.Point, dx float64) []geom.Point {
	out := make([]geom.Point, len(ring))
	for i, p := range ring {
		out[i] = geom.Point{X: p.X + dx, Y: p.Y}
	}
	return out
}

// ringContainsRing reports whether every vertex of inner lies within or on
// the polygon formed by outer.
func ringContainsRing(outer, inner []geom.Point) bool {
	poly := geom.Polygon{outer}
	for _, p := range inner {
		if p.Within(poly) == geom.Outside {
			return false
		}
	}
	return true
}

// unionMultiParts replaces a multi-polygon with the union of its parts,
// absorbing self-overlaps the strict validity rules would reject. Other
// geometry kinds pass through.
func unionMultiParts(g geom.Geom) geom.Geom {
	mp, ok := g.(geom.MultiPolygon)
	if !ok || len(mp) <= 1 {
		return g
	}
	var u geom.Polygonal = mp[0]
	for _, p := range mp[1:] {
		u = u.Union(p)
	}
	return flattenPolygonal(u)
}

// flattenPolygonal converts a boolean-op result to a concrete Polygon or
// MultiPolygon, dropping empty parts.
func flattenPolygonal(p geom.Polygonal) geom.Geom {
	var polys []geom.Polygon
	for _, poly := range p.Polygons() {
		if len(poly) > 0 {
			polys = append(polys, poly)
		}
	}
	switch len(polys) {
	case 0:
		return geom.Polygon{}
	case 1:
		return polys[0]
	default:
		return geom.MultiPolygon(polys)
	}
}

// cutUnwrappedInto360 re-pages an unwrapped geometry whose envelope extends
// past the standard [-180, 180] range: each 360-degree band is intersected
// with the geometry, shifted back into standard bounds, and the pieces are
// reassembled as a multi geometry.
func cutUnwrappedInto360(g geom.Geom) (geom.Geom, error) {
	b := g.Bounds()
	if b.Empty() || (b.Min.X >= -180 && b.Max.X <= 180) {
		return g, nil
	}
	switch t := g.(type) {
	case geom.Polygonal:
		var pieces []geom.Polygon
		for page := 0; ; page++ {
			bandMinX := -180 + float64(page)*360
			if b.Max.X <= bandMinX {
				break
			}
			band := geom.Polygon{{
				{X: bandMinX, Y: -90},
				{X: bandMinX + 360, Y: -90},
				{X: bandMinX + 360, Y: 90},
				{X: bandMinX, Y: 90},
				{X: bandMinX, Y: -90},
			}}
			piece := t.Intersection(band)
			for _, poly := range piece.Polygons() {
				if len(poly) == 0 {
					continue
				}
				pieces = append(pieces, shiftPolygonX(poly, -360*float64(page)))
			}
		}
		switch len(pieces) {
		case 0:
			return geom.Polygon{}, nil
		case 1:
			return pieces[0], nil
		default:
			return geom.MultiPolygon(pieces), nil
		}
	case geom.LineString:
		return cutLineInto360(t), nil
	case geom.MultiLineString:
		var out geom.MultiLineString
		for _, l := range t {
			cut, err := cutUnwrappedInto360(l)
			if err != nil {
				return nil, err
			}
			switch c := cut.(type) {
			case geom.LineString:
				out = append(out, c)
			case geom.MultiLineString:
				out = append(out, c...)
			}
		}
		return out, nil
	default:
		return nil, invalidShapef("cannot re-page geometry of type %T", g)
	}
}

func shiftPolygonX(p geom.Polygon, dx float64) geom.Polygon {
	out := make(geom.Polygon, len(p))
	for i, ring := range p {
		out[i] = shiftRingX(ring, dx)
	}
	return out
}

// cutLineInto360 splits a line at every 360-degree page boundary and shifts
// each run back into standard longitude bounds.
func cutLineInto360(ls geom.LineString) geom.Geom {
	pageOf := func(x float64) int {
		// x exactly on a boundary belongs to the lower page
		p := int(math.Floor((x + 180) / 360))
		if x == -180+float64(p)*360 && p > 0 {
			p--
		}
		return p
	}
	shift := func(p geom.Point, page int) geom.Point {
		return geom.Point{X: p.X - 360*float64(page), Y: p.Y}
	}

	var runs geom.MultiLineString
	if len(ls) == 0 {
		return ls
	}
	prev := ls[0]
	curPage := pageOf(prev.X)
	run := []geom.Point{shift(prev, curPage)}
	for i := 1; i < len(ls); i++ {
		p := ls[i]
		// a segment may span more than one page; cut repeatedly
		for {
			var boundary float64
			nextPage := curPage
			if p.X > -180+float64(curPage+1)*360 {
				boundary = -180 + float64(curPage+1)*360
				nextPage = curPage + 1
			} else if p.X < -180+float64(curPage)*360 {
				boundary = -180 + float64(curPage)*360
				nextPage = curPage - 1
			} else {
				break
			}
			f := (boundary - prev.X) / (p.X - prev.X)
			cut := geom.Point{X: boundary, Y: prev.Y + f*(p.Y-prev.Y)}
			run = append(run, shift(cut, curPage))
			runs = append(runs, geom.LineString(run))
			curPage = nextPage
			run = []geom.Point{shift(cut, curPage)}
			prev = cut
		}
		run = append(run, shift(p, curPage))
		prev = p
	}
	if len(run) > 1 {
		runs = append(runs, geom.LineString(run))
	}
	if len(runs) == 1 {
		return runs[0]
	}
	return runs
}

func boundsWidth(b *geom.Bounds) float64 {
	if b.Empty() {
		return 0
	}
	return b.Max.X - b.Min.X
}

// computeGeoBBox computes the bounding box of a normalized geometry. When the
// raw envelope is wider than 180 degrees and the geometry has several parts,
// the X range is the longitude-aware union of the parts' ranges, choosing the
// direction that minimizes width; two narrow parts on opposite sides of the
// dateline then yield a narrow crossing box instead of a nearly world-wide
// one.
func computeGeoBBox(g geom.Geom, ctx *SpatialContext) *Rectangle {
	b := g.Bounds()
	if b.Empty() {
		return newRectangle(math.NaN(), math.NaN(), math.NaN(), math.NaN(), ctx)
	}
	parts := geomParts(g)
	if b.Max.X-b.Min.X > 180 && len(parts) > 1 {
		var xr valueRange
		for i, part := range parts {
			pb := part.Bounds()
			r2 := valueRange{min: pb.Min.X, max: pb.Max.X, lon: true}
			if i == 0 {
				xr = r2
			} else {
				xr = xr.expandTo(r2)
			}
			if xr == worldLonRange {
				break // can't grow any bigger
			}
		}
		return newRectangle(xr.min, xr.max, b.Min.Y, b.Max.Y, ctx)
	}
	return newRectangle(b.Min.X, b.Max.X, b.Min.Y, b.Max.Y, ctx)
}

// validateGeom checks polygonal rings for self-intersection and for crossing
// sibling rings. Lines and points are always valid.
func validateGeom(g geom.Geom) error {
	poly, ok := g.(geom.Polygonal)
	if !ok {
		return nil
	}
	for _, p := range poly.Polygons() {
		for i, ring := range p {
			if len(ring) < 3 {
				return fmt.Errorf("ring %d has only %d points", i, len(ring))
			}
			if err := ringSelfIntersects(ring); err != nil {
				return fmt.Errorf("ring %d: %v", i, err)
			}
		}
		for i := 0; i < len(p); i++ {
			for j := i + 1; j < len(p); j++ {
				if ringsCross(p[i], p[j]) {
					return fmt.Errorf("rings %d and %d cross", i, j)
				}
			}
		}
	}
	return nil
}

func ringSegments(ring []geom.Point) [][2]geom.Point {
	n := len(ring)
	if n < 2 {
		return nil
	}
	segs := make([][2]geom.Point, 0, n)
	for i := 1; i < n; i++ {
		segs = append(segs, [2]geom.Point{ring[i-1], ring[i]})
	}
	if !ring[n-1].Equals(ring[0]) {
		segs = append(segs, [2]geom.Point{ring[n-1], ring[0]})
	}
	return segs
}

func ringSelfIntersects(ring []geom.Point) error {
	segs := ringSegments(ring)
	n := len(segs)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // first and last segments share the ring's start
			}
			if segmentsProperlyCross(segs[i][0], segs[i][1], segs[j][0], segs[j][1]) {
				return fmt.Errorf("segments %d and %d cross", i, j)
			}
		}
	}
	return nil
}

func ringsCross(a, b []geom.Point) bool {
	for _, sa := range ringSegments(a) {
		for _, sb := range ringSegments(b) {
			if segmentsProperlyCross(sa[0], sa[1], sb[0], sb[1]) {
				return true
			}
		}
	}
	return false
}

func orient(a, b, c geom.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// segmentsProperlyCross reports whether the two segments cross in their
// interiors; touching at endpoints does not count.
func segmentsProperlyCross(p1, p2, q1, q2 geom.Point) bool {
	d1 := orient(q1, q2, p1)
	d2 := orient(q1, q2, p2)
	d3 := orient(p1, p2, q1)
	d4 := orient(p1, p2, q2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func onSegment(p, a, b geom.Point) bool {
	if orient(a, b, p) != 0 {
		return false
	}
	return p.X >= math.Min(a.X, b.X) && p.X <= math.Max(a.X, b.X) &&
		p.Y >= math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y)
}

// segmentsIntersect reports whether two segments share any point, including
// endpoint touches and collinear overlap.
func segmentsIntersect(p1, p2, q1, q2 geom.Point) bool {
	if segmentsProperlyCross(p1, p2, q1, q2) {
		return true
	}
	return onSegment(q1, p1, p2) || onSegment(q2, p1, p2) ||
		onSegment(p1, q1, q2) || onSegment(p2, q1, q2)
}

// repairGeometry applies a configured repair transform after a failed
// validity check.
func repairGeometry(g geom.Geom, rule ValidationRule) (geom.Geom, error) {
	switch rule {
	case ValidationRuleRepairConvexHull:
		pts := collectVertices(g)
		if len(pts) < 3 {
			return nil, invalidShapef("not enough vertices for a convex hull repair")
		}
		return convexHull(pts), nil
	case ValidationRuleRepairBuffer0:
		poly, ok := g.(geom.Polygonal)
		if !ok {
			return g, nil
		}
		// union with self resolves self-intersections the way a
		// zero-distance buffer does
		polys := poly.Polygons()
		if len(polys) == 0 {
			return g, nil
		}
		var u geom.Polygonal = polys[0].Union(polys[0])
		for _, p := range polys[1:] {
			u = u.Union(p)
		}
		return flattenPolygonal(u), nil
	default:
		return nil, invalidShapef("no repair rule configured")
	}
}

func collectVertices(g geom.Geom) []geom.Point {
	var pts []geom.Point
	switch t := g.(type) {
	case geom.Point:
		pts = append(pts, t)
	case geom.MultiPoint:
		pts = append(pts, t...)
	case geom.LineString:
		pts = append(pts, t...)
	case geom.MultiLineString:
		for _, l := range t {
			pts = append(pts, l...)
		}
	case geom.Polygon:
		for _, r := range t {
			pts = append(pts, r...)
		}
	case geom.MultiPolygon:
		for _, p := range t {
			for _, r := range p {
				pts = append(pts, r...)
			}
		}
	}
	return pts
}

// convexHull computes the convex hull of the points by Andrew's monotone
// chain, returned as a closed single-ring polygon.
func convexHull(pts []geom.Point) geom.Polygon {
	sorted := make([]geom.Point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	// dedupe
	uniq := sorted[:0]
	for i, p := range sorted {
		if i == 0 || !p.Equals(sorted[i-1]) {
			uniq = append(uniq, p)
		}
	}
	if len(uniq) < 3 {
		ring := append([]geom.Point{}, uniq...)
		ring = append(ring, uniq[0])
		return geom.Polygon{ring}
	}
	var lower, upper []geom.Point
	for _, p := range uniq {
		for len(lower) >= 2 && orient(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	for i := len(uniq) - 1; i >= 0; i-- {
		p := uniq[i]
		for len(upper) >= 2 && orient(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	ring := append(lower[:len(lower)-1], upper...)
	return geom.Polygon{ring}
}

// Buffered is unsupported for wrapped geometries: the planar engine exposes
// boolean operations but no offsetting.
func (s *GeomShape) Buffered(distance float64, ctx *SpatialContext) (Shape, error) {
	return nil, unsupportedf("buffering a wrapped geometry is not supported")
}

func (s *GeomShape) String() string {
	return fmt.Sprintf("GeomShape(%T, bbox=%v)", s.g, s.bbox)
}
