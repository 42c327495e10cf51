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
	"strconv"
	"strings"
	"unicode"

	"github.com/ctessum/geom"
)

// WKTReader parses Well-Known Text into shapes. Beyond standard WKT it
// accepts two extensions: ENVELOPE(minX, maxX, maxY, minY) for rectangles
// and BUFFER(shape, distance), which turns a point into a circle and a
// linestring into a buffered linestring.
type WKTReader struct {
	ctx *SpatialContext
}

// NewWKTReader returns a reader that validates ordinates against ctx.
func NewWKTReader(ctx *SpatialContext) *WKTReader {
	return &WKTReader{ctx: ctx}
}

// ReadWKT parses a WKT string using ctx's rules.
func (ctx *SpatialContext) ReadWKT(wkt string) (Shape, error) {
	return NewWKTReader(ctx).Parse(wkt)
}

// Parse reads a single shape from wkt. Trailing non-whitespace input is an
// error.
func (r *WKTReader) Parse(wkt string) (Shape, error) {
	sc := &wktScanner{src: wkt}
	s, err := r.parseShape(sc)
	if err != nil {
		return nil, err
	}
	sc.skipWS()
	if !sc.eof() {
		return nil, sc.errorf("unexpected trailing input")
	}
	return s, nil
}

func (r *WKTReader) parseShape(sc *wktScanner) (Shape, error) {
	word, err := sc.nextWord()
	if err != nil {
		return nil, err
	}
	switch strings.ToUpper(word) {
	case "POINT":
		return r.parsePoint(sc)
	case "ENVELOPE":
		return r.parseEnvelope(sc)
	case "BUFFER":
		return r.parseBuffer(sc)
	case "LINESTRING":
		return r.parseLineString(sc)
	case "MULTILINESTRING":
		return r.parseMultiLineString(sc)
	case "MULTIPOINT":
		return r.parseMultiPoint(sc)
	case "POLYGON":
		return r.parsePolygon(sc)
	case "MULTIPOLYGON":
		return r.parseMultiPolygon(sc)
	case "GEOMETRYCOLLECTION":
		return r.parseGeometryCollection(sc)
	default:
		return nil, sc.errorf("unknown shape keyword %q", word)
	}
}

func (r *WKTReader) parsePoint(sc *wktScanner) (Shape, error) {
	if sc.consumeEmpty() {
		return r.ctx.MakePoint(math.NaN(), math.NaN())
	}
	if err := sc.expect('('); err != nil {
		return nil, err
	}
	x, y, err := sc.coordinate()
	if err != nil {
		return nil, err
	}
	if err := sc.expect(')'); err != nil {
		return nil, err
	}
	return r.ctx.MakePoint(x, y)
}

func (r *WKTReader) parseEnvelope(sc *wktScanner) (Shape, error) {
	if err := sc.expect('('); err != nil {
		return nil, err
	}
	vals := make([]float64, 4)
	for i := range vals {
		if i > 0 {
			if err := sc.expect(','); err != nil {
				return nil, err
			}
		}
		v, err := sc.number()
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	if err := sc.expect(')'); err != nil {
		return nil, err
	}
	// ENVELOPE ordinate order is minX, maxX, maxY, minY
	return r.ctx.MakeRectangle(vals[0], vals[1], vals[3], vals[2])
}

func (r *WKTReader) parseBuffer(sc *wktScanner) (Shape, error) {
	if err := sc.expect('('); err != nil {
		return nil, err
	}
	inner, err := r.parseShape(sc)
	if err != nil {
		return nil, err
	}
	if err := sc.expect(','); err != nil {
		return nil, err
	}
	dist, err := sc.number()
	if err != nil {
		return nil, err
	}
	if err := sc.expect(')'); err != nil {
		return nil, err
	}
	switch t := inner.(type) {
	case *Point:
		return r.ctx.MakeCircle(t, dist)
	case *GeomShape:
		ls, ok := t.Geom().(geom.LineString)
		if !ok {
			return nil, sc.errorf("BUFFER applies to POINT or LINESTRING, not %T", t.Geom())
		}
		pts := make([]*Point, len(ls))
		for i, p := range ls {
			pts[i] = newPoint(p.X, p.Y, r.ctx)
		}
		return r.ctx.MakeBufferedLineString(pts, dist)
	default:
		return nil, sc.errorf("BUFFER applies to POINT or LINESTRING, not %T", inner)
	}
}

func (r *WKTReader) parseLineString(sc *wktScanner) (Shape, error) {
	if sc.consumeEmpty() {
		return r.ctx.MakeGeometry(geom.LineString(nil))
	}
	pts, err := r.coordinateList(sc)
	if err != nil {
		return nil, err
	}
	return r.ctx.MakeGeometry(geom.LineString(pts))
}

func (r *WKTReader) parseMultiLineString(sc *wktScanner) (Shape, error) {
	if sc.consumeEmpty() {
		return r.ctx.MakeGeometry(geom.MultiLineString(nil))
	}
	if err := sc.expect('('); err != nil {
		return nil, err
	}
	var mls geom.MultiLineString
	for {
		pts, err := r.coordinateList(sc)
		if err != nil {
			return nil, err
		}
		mls = append(mls, geom.LineString(pts))
		if !sc.consume(',') {
			break
		}
	}
	if err := sc.expect(')'); err != nil {
		return nil, err
	}
	return r.ctx.MakeGeometry(mls)
}

func (r *WKTReader) parseMultiPoint(sc *wktScanner) (Shape, error) {
	if sc.consumeEmpty() {
		return r.ctx.MakeGeometry(geom.MultiPoint(nil))
	}
	if err := sc.expect('('); err != nil {
		return nil, err
	}
	var mp geom.MultiPoint
	for {
		// both MULTIPOINT (1 2, 3 4) and MULTIPOINT ((1 2), (3 4))
		wrapped := sc.consume('(')
		pt, err := r.coordinate(sc)
		if err != nil {
			return nil, err
		}
		if wrapped {
			if err := sc.expect(')'); err != nil {
				return nil, err
			}
		}
		mp = append(mp, pt)
		if !sc.consume(',') {
			break
		}
	}
	if err := sc.expect(')'); err != nil {
		return nil, err
	}
	return r.ctx.MakeGeometry(mp)
}

func (r *WKTReader) parsePolygon(sc *wktScanner) (Shape, error) {
	if sc.consumeEmpty() {
		return r.ctx.MakeGeometry(geom.Polygon(nil))
	}
	p, err := r.readPolygonRings(sc)
	if err != nil {
		return nil, err
	}
	if rect, ok := r.polygonAsRect(p); ok {
		return rect, nil
	}
	return r.ctx.MakeGeometry(p)
}

func (r *WKTReader) readPolygonRings(sc *wktScanner) (geom.Polygon, error) {
	if err := sc.expect('('); err != nil {
		return nil, err
	}
	var p geom.Polygon
	for {
		pts, err := r.coordinateList(sc)
		if err != nil {
			return nil, err
		}
		p = append(p, pts)
		if !sc.consume(',') {
			break
		}
	}
	if err := sc.expect(')'); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *WKTReader) parseMultiPolygon(sc *wktScanner) (Shape, error) {
	if sc.consumeEmpty() {
		return r.ctx.MakeGeometry(geom.MultiPolygon(nil))
	}
	if err := sc.expect('('); err != nil {
		return nil, err
	}
	var mp geom.MultiPolygon
	for {
		p, err := r.readPolygonRings(sc)
		if err != nil {
			return nil, err
		}
		mp = append(mp, p)
		if !sc.consume(',') {
			break
		}
	}
	if err := sc.expect(')'); err != nil {
		return nil, err
	}
	return r.ctx.MakeGeometry(mp)
}

func (r *WKTReader) parseGeometryCollection(sc *wktScanner) (Shape, error) {
	if sc.consumeEmpty() {
		return r.ctx.MakeCollection(nil), nil
	}
	if err := sc.expect('('); err != nil {
		return nil, err
	}
	var shapes []Shape
	for {
		s, err := r.parseShape(sc)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
		if !sc.consume(',') {
			break
		}
	}
	if err := sc.expect(')'); err != nil {
		return nil, err
	}
	return r.ctx.MakeCollection(shapes), nil
}

// polygonAsRect converts a single five-vertex axis-parallel ring to a
// Rectangle. Under the counter-clockwise rectangle rule, clockwise winding
// marks a rectangle that crosses the dateline.
func (r *WKTReader) polygonAsRect(p geom.Polygon) (Shape, bool) {
	if len(p) != 1 || len(p[0]) != 5 {
		return nil, false
	}
	ring := p[0]
	if !ring[4].Equals(ring[0]) {
		return nil, false
	}
	xs := map[float64]bool{}
	ys := map[float64]bool{}
	for _, pt := range ring[:4] {
		xs[pt.X] = true
		ys[pt.Y] = true
	}
	if len(xs) != 2 || len(ys) != 2 {
		return nil, false
	}
	// each edge must be axis-parallel
	for i := 1; i < 5; i++ {
		if ring[i].X != ring[i-1].X && ring[i].Y != ring[i-1].Y {
			return nil, false
		}
	}
	var minX, maxX, minY, maxY float64
	first := true
	for x := range xs {
		if first || x < minX {
			minX = x
		}
		if first || x > maxX {
			maxX = x
		}
		first = false
	}
	first = true
	for y := range ys {
		if first || y < minY {
			minY = y
		}
		if first || y > maxY {
			maxY = y
		}
		first = false
	}
	if r.ctx.IsGeo() {
		switch r.ctx.DatelineRule() {
		case DatelineRuleWidth180:
			// a raw span over 180 degrees means the short way around
			// crosses the dateline
			if maxX-minX > 180 {
				minX, maxX = maxX, minX
			}
		case DatelineRuleCcwRect:
			if ringIsClockwise(ring) {
				// points listed clockwise only make a counter-clockwise
				// rectangle by going the other way around the globe
				minX, maxX = maxX, minX
			}
		}
	}
	rect, err := r.ctx.MakeRectangle(minX, maxX, minY, maxY)
	if err != nil {
		return nil, false
	}
	return rect, true
}

// coordinate reads an x y pair, normalizing X and validating both ordinates
// against the context's world bounds.
func (r *WKTReader) coordinate(sc *wktScanner) (geom.Point, error) {
	x, y, err := sc.coordinate()
	if err != nil {
		return geom.Point{}, err
	}
	x = r.ctx.NormX(x)
	if err := r.ctx.VerifyX(x); err != nil {
		return geom.Point{}, err
	}
	if err := r.ctx.VerifyY(y); err != nil {
		return geom.Point{}, err
	}
	return geom.Point{X: x, Y: y}, nil
}

// coordinateList reads a parenthesized comma-separated run of validated
// coordinates.
func (r *WKTReader) coordinateList(sc *wktScanner) ([]geom.Point, error) {
	if err := sc.expect('('); err != nil {
		return nil, err
	}
	var pts []geom.Point
	for {
		pt, err := r.coordinate(sc)
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
		if !sc.consume(',') {
			break
		}
	}
	if err := sc.expect(')'); err != nil {
		return nil, err
	}
	return pts, nil
}

// ringIsClockwise reports negative signed area.
func ringIsClockwise(ring []geom.Point) bool {
	sum := 0.0
	for i := 1; i < len(ring); i++ {
		sum += (ring[i].X - ring[i-1].X) * (ring[i].Y + ring[i-1].Y)
	}
	return sum > 0
}

// wktScanner is a minimal cursor over a WKT string. Errors carry the byte
// offset of the failure.
type wktScanner struct {
	src string
	pos int
}

func (sc *wktScanner) errorf(format string, args ...interface{}) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Offset: sc.pos}
}

func (sc *wktScanner) eof() bool { return sc.pos >= len(sc.src) }

func (sc *wktScanner) skipWS() {
	for sc.pos < len(sc.src) && unicode.IsSpace(rune(sc.src[sc.pos])) {
		sc.pos++
	}
}

// nextWord reads a keyword of letters and digits.
func (sc *wktScanner) nextWord() (string, error) {
	sc.skipWS()
	start := sc.pos
	for sc.pos < len(sc.src) {
		c := sc.src[sc.pos]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
			sc.pos++
		} else {
			break
		}
	}
	if sc.pos == start {
		return "", sc.errorf("expected a keyword")
	}
	return sc.src[start:sc.pos], nil
}

// consumeEmpty eats the EMPTY keyword if present.
func (sc *wktScanner) consumeEmpty() bool {
	sc.skipWS()
	if len(sc.src)-sc.pos >= 5 && strings.EqualFold(sc.src[sc.pos:sc.pos+5], "EMPTY") {
		sc.pos += 5
		return true
	}
	return false
}

func (sc *wktScanner) expect(c byte) error {
	sc.skipWS()
	if sc.eof() || sc.src[sc.pos] != c {
		return sc.errorf("expected %q", string(c))
	}
	sc.pos++
	return nil
}

// consume eats c if it is next, reporting whether it did.
func (sc *wktScanner) consume(c byte) bool {
	sc.skipWS()
	if !sc.eof() && sc.src[sc.pos] == c {
		sc.pos++
		return true
	}
	return false
}

func (sc *wktScanner) number() (float64, error) {
	sc.skipWS()
	start := sc.pos
	for sc.pos < len(sc.src) {
		c := sc.src[sc.pos]
		if (c >= '0' && c <= '9') || c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E' {
			sc.pos++
		} else {
			break
		}
	}
	if sc.pos == start {
		return 0, sc.errorf("expected a number")
	}
	v, err := strconv.ParseFloat(sc.src[start:sc.pos], 64)
	if err != nil {
		return 0, &ParseError{Msg: fmt.Sprintf("bad number %q", sc.src[start:sc.pos]), Offset: start}
	}
	return v, nil
}

// coordinate reads an x y pair, skipping any extra Z or M ordinates.
func (sc *wktScanner) coordinate() (x, y float64, err error) {
	x, err = sc.number()
	if err != nil {
		return 0, 0, err
	}
	y, err = sc.number()
	if err != nil {
		return 0, 0, err
	}
	for {
		sc.skipWS()
		if sc.eof() {
			break
		}
		c := sc.src[sc.pos]
		if c == ',' || c == ')' {
			break
		}
		if _, err := sc.number(); err != nil {
			return 0, 0, err
		}
	}
	return x, y, nil
}
