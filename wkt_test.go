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
	"errors"
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWKTPoint(t *testing.T) {
	ctx := NewGeoContext()
	s, err := ctx.ReadWKT("POINT (10 20)")
	require.NoError(t, err)
	p, ok := s.(*Point)
	require.True(t, ok, "want *Point, have %T", s)
	assert.Equal(t, 10.0, p.X())
	assert.Equal(t, 20.0, p.Y())

	s, err = ctx.ReadWKT("POINT EMPTY")
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
}

func TestWKTEnvelope(t *testing.T) {
	ctx := NewGeoContext()
	s, err := ctx.ReadWKT("ENVELOPE (10, 40, 30, 20)")
	require.NoError(t, err)
	r, ok := s.(*Rectangle)
	require.True(t, ok, "want *Rectangle, have %T", s)
	assert.Equal(t, 10.0, r.MinX())
	assert.Equal(t, 40.0, r.MaxX())
	assert.Equal(t, 20.0, r.MinY())
	assert.Equal(t, 30.0, r.MaxY())
}

func TestWKTBufferPoint(t *testing.T) {
	ctx := NewGeoContext()
	s, err := ctx.ReadWKT("BUFFER (POINT (10 20), 5)")
	require.NoError(t, err)
	c, ok := s.(*Circle)
	require.True(t, ok, "want *Circle, have %T", s)
	assert.Equal(t, 10.0, c.Center().X())
	assert.Equal(t, 20.0, c.Center().Y())
	assert.Equal(t, 5.0, c.Radius())
}

func TestWKTBufferLineString(t *testing.T) {
	ctx := NewGeoContext()
	s, err := ctx.ReadWKT("BUFFER (LINESTRING (0 0, 10 0, 10 10), 2)")
	require.NoError(t, err)
	bls, ok := s.(*BufferedLineString)
	require.True(t, ok, "want *BufferedLineString, have %T", s)
	assert.Equal(t, 2.0, bls.Buf())
	assert.Len(t, bls.Points(), 3)
}

func TestWKTBufferRejectsPolygon(t *testing.T) {
	ctx := NewGeoContext()
	_, err := ctx.ReadWKT("BUFFER (POLYGON ((0 0, 1 0, 1 2, 0 0)), 2)")
	require.Error(t, err)
}

func TestWKTPolygonAsRectangle(t *testing.T) {
	ctx := NewGeoContext()
	s, err := ctx.ReadWKT("POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")
	require.NoError(t, err)
	r, ok := s.(*Rectangle)
	require.True(t, ok, "want *Rectangle, have %T", s)
	assert.Equal(t, 0.0, r.MinX())
	assert.Equal(t, 10.0, r.MaxX())
	assert.False(t, r.CrossesDateline())
}

func TestWKTPolygonAsRectangleWidth180(t *testing.T) {
	ctx := NewGeoContext()
	// a rectangle ring spanning more than 180 degrees reads as crossing the
	// dateline, the same way the geometry pipeline reads the ring
	s, err := ctx.ReadWKT("POLYGON ((170 -10, -170 -10, -170 10, 170 10, 170 -10))")
	require.NoError(t, err)
	r, ok := s.(*Rectangle)
	require.True(t, ok, "want *Rectangle, have %T", s)
	assert.True(t, r.CrossesDateline())
	assert.Equal(t, 170.0, r.MinX())
	assert.Equal(t, -170.0, r.MaxX())
	rel, err := r.Relate(mustPoint(t, ctx, 180, 0))
	require.NoError(t, err)
	assert.Equal(t, Contains, rel)
}

func TestWKTPolygonAsRectangleCcwRule(t *testing.T) {
	ctx, err := MakeSpatialContext(map[string]string{
		"DatelineRule": "counterClockwiseRectangle",
	})
	require.NoError(t, err)

	// counter-clockwise winding reads as an ordinary rectangle
	s, err := ctx.ReadWKT("POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")
	require.NoError(t, err)
	r := s.(*Rectangle)
	assert.False(t, r.CrossesDateline())

	// clockwise winding only closes counter-clockwise by crossing the
	// dateline the long way around
	s, err = ctx.ReadWKT("POLYGON ((0 0, 0 10, 10 10, 10 0, 0 0))")
	require.NoError(t, err)
	r = s.(*Rectangle)
	assert.True(t, r.CrossesDateline())
	assert.Equal(t, 10.0, r.MinX())
	assert.Equal(t, 0.0, r.MaxX())
}

func TestWKTPolygonWithHole(t *testing.T) {
	ctx := NewGeoContext()
	s, err := ctx.ReadWKT("POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0), (2 2, 8 2, 8 8, 2 8, 2 2))")
	require.NoError(t, err)
	g, ok := s.(*GeomShape)
	require.True(t, ok, "want *GeomShape, have %T", s)
	p, ok := g.Geom().(geom.Polygon)
	require.True(t, ok, "want geom.Polygon, have %T", g.Geom())
	assert.Len(t, p, 2)

	rel, err := g.Relate(mustPoint(t, ctx, 5, 5))
	require.NoError(t, err)
	assert.Equal(t, Disjoint, rel, "a point in the hole is outside")
	rel, err = g.Relate(mustPoint(t, ctx, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, Contains, rel)
}

func TestWKTLineString(t *testing.T) {
	ctx := NewGeoContext()
	s, err := ctx.ReadWKT("LINESTRING (0 0, 10 10, 20 0)")
	require.NoError(t, err)
	g, ok := s.(*GeomShape)
	require.True(t, ok, "want *GeomShape, have %T", s)
	ls, ok := g.Geom().(geom.LineString)
	require.True(t, ok, "want geom.LineString, have %T", g.Geom())
	assert.Len(t, ls, 3)
	assert.False(t, g.HasArea())
}

func TestWKTMultiPoint(t *testing.T) {
	ctx := NewGeoContext()
	for _, wkt := range []string{
		"MULTIPOINT (0 0, 10 10)",
		"MULTIPOINT ((0 0), (10 10))",
	} {
		s, err := ctx.ReadWKT(wkt)
		require.NoError(t, err, wkt)
		g, ok := s.(*GeomShape)
		require.True(t, ok, "want *GeomShape, have %T", s)
		mp, ok := g.Geom().(geom.MultiPoint)
		require.True(t, ok, "want geom.MultiPoint, have %T", g.Geom())
		assert.Len(t, mp, 2, wkt)
	}
}

func TestWKTGeometryCollection(t *testing.T) {
	ctx := NewGeoContext()
	s, err := ctx.ReadWKT("GEOMETRYCOLLECTION (POINT (1 2), ENVELOPE (0, 10, 10, 0))")
	require.NoError(t, err)
	col, ok := s.(*ShapeCollection)
	require.True(t, ok, "want *ShapeCollection, have %T", s)
	require.Equal(t, 2, col.Len())
	assert.IsType(t, &Point{}, col.Get(0))
	assert.IsType(t, &Rectangle{}, col.Get(1))

	s, err = ctx.ReadWKT("GEOMETRYCOLLECTION EMPTY")
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
}

func TestWKTZAndMOrdinatesIgnored(t *testing.T) {
	ctx := NewGeoContext()
	s, err := ctx.ReadWKT("LINESTRING (0 0 5, 10 10 5)")
	require.NoError(t, err)
	g := s.(*GeomShape)
	ls := g.Geom().(geom.LineString)
	require.Len(t, ls, 2)
	assert.Equal(t, geom.Point{X: 10, Y: 10}, ls[1])
}

func TestWKTOrdinateValidation(t *testing.T) {
	ctx := NewGeoContext()
	cases := []string{
		"LINESTRING (0 95, 10 10)",
		"LINESTRING (200 0, 10 10)",
		"POLYGON ((0 0, 10 0, 10 95, 0 0))",
		"MULTIPOINT (0 0, 0 -95)",
	}
	for _, wkt := range cases {
		_, err := ctx.ReadWKT(wkt)
		require.Error(t, err, "%q has an out-of-bounds ordinate", wkt)
		var invalid *InvalidShapeError
		assert.True(t, errors.As(err, &invalid), "%q: want *InvalidShapeError, have %T", wkt, err)
	}
}

func TestWKTOrdinateWrapping(t *testing.T) {
	ctx, err := MakeSpatialContext(map[string]string{"NormWrapLongitude": "true"})
	require.NoError(t, err)
	s, err := ctx.ReadWKT("LINESTRING (190 0, 200 10)")
	require.NoError(t, err)
	g := s.(*GeomShape)
	ls := g.Geom().(geom.LineString)
	require.Len(t, ls, 2)
	assert.Equal(t, geom.Point{X: -170, Y: 0}, ls[0])
	assert.Equal(t, geom.Point{X: -160, Y: 10}, ls[1])
}

func TestWKTParseErrors(t *testing.T) {
	ctx := NewGeoContext()
	cases := []string{
		"TRIANGLE (0 0, 1 1, 2 0)",
		"POINT (1 2) junk",
		"POINT (1)",
		"ENVELOPE (1, 2, 3)",
		"POINT 1 2",
		"",
	}
	for _, wkt := range cases {
		_, err := ctx.ReadWKT(wkt)
		require.Error(t, err, "%q should not parse", wkt)
		var pe *ParseError
		assert.True(t, errors.As(err, &pe), "%q: want *ParseError, have %T", wkt, err)
	}
}

func TestWKTParseErrorOffset(t *testing.T) {
	ctx := NewGeoContext()
	_, err := ctx.ReadWKT("POINT (1 2) junk")
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 12, pe.Offset)
}

func TestWKTRoundTrip(t *testing.T) {
	ctx := NewGeoContext()
	cases := []string{
		"POINT (10 20)",
		"POINT EMPTY",
		"ENVELOPE (10, 40, 30, 20)",
		"BUFFER (POINT (10 20), 5)",
		"LINESTRING (0 0, 10 10, 20 0)",
		"MULTIPOINT (0 0, 10 10)",
		"POLYGON ((0 0, 10 0, 5 8, 0 0))",
		"MULTILINESTRING ((0 0, 10 10), (20 20, 30 30))",
		"GEOMETRYCOLLECTION (POINT (1 2), LINESTRING (0 0, 2 2))",
		"GEOMETRYCOLLECTION EMPTY",
	}
	for _, wkt := range cases {
		s, err := ctx.ReadWKT(wkt)
		require.NoError(t, err, wkt)
		out, err := WriteWKT(s)
		require.NoError(t, err, wkt)
		assert.Equal(t, wkt, out)
	}
}

func TestWKTWriteRectangle(t *testing.T) {
	ctx := NewGeoContext()
	r := mustRect(t, ctx, -10, 10, -20, 20)
	out, err := WriteWKT(r)
	require.NoError(t, err)
	assert.Equal(t, "ENVELOPE (-10, 10, 20, -20)", out)
}

func TestWKTWriteBufferedLineString(t *testing.T) {
	ctx := NewGeoContext()
	s, err := ctx.ReadWKT("BUFFER (LINESTRING (0 0, 10 0), 2)")
	require.NoError(t, err)
	out, err := WriteWKT(s)
	require.NoError(t, err)
	assert.Equal(t, "BUFFER (LINESTRING (0 0, 10 0), 2)", out)
}
