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
	"strconv"
	"strings"

	"github.com/ctessum/geom"
)

// WriteWKT renders a shape as Well-Known Text, using the ENVELOPE and
// BUFFER extensions for rectangles, circles and buffered lines. The output
// round-trips through WKTReader.
func WriteWKT(s Shape) (string, error) {
	var b strings.Builder
	if err := writeShapeWKT(&b, s); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeShapeWKT(b *strings.Builder, s Shape) error {
	switch t := s.(type) {
	case *Point:
		if t.IsEmpty() {
			b.WriteString("POINT EMPTY")
			return nil
		}
		b.WriteString("POINT (")
		writeOrd(b, t.X())
		b.WriteByte(' ')
		writeOrd(b, t.Y())
		b.WriteByte(')')
		return nil
	case *Rectangle:
		b.WriteString("ENVELOPE (")
		writeOrd(b, t.MinX())
		b.WriteString(", ")
		writeOrd(b, t.MaxX())
		b.WriteString(", ")
		writeOrd(b, t.MaxY())
		b.WriteString(", ")
		writeOrd(b, t.MinY())
		b.WriteByte(')')
		return nil
	case *Circle:
		b.WriteString("BUFFER (POINT (")
		writeOrd(b, t.Center().X())
		b.WriteByte(' ')
		writeOrd(b, t.Center().Y())
		b.WriteString("), ")
		writeOrd(b, t.Radius())
		b.WriteByte(')')
		return nil
	case *BufferedLine:
		b.WriteString("BUFFER (LINESTRING (")
		writeOrd(b, t.A().X())
		b.WriteByte(' ')
		writeOrd(b, t.A().Y())
		b.WriteString(", ")
		writeOrd(b, t.B().X())
		b.WriteByte(' ')
		writeOrd(b, t.B().Y())
		b.WriteString("), ")
		writeOrd(b, t.Buf())
		b.WriteByte(')')
		return nil
	case *BufferedLineString:
		b.WriteString("BUFFER (LINESTRING (")
		for i, p := range t.Points() {
			if i > 0 {
				b.WriteString(", ")
			}
			writeOrd(b, p.X())
			b.WriteByte(' ')
			writeOrd(b, p.Y())
		}
		b.WriteString("), ")
		writeOrd(b, t.Buf())
		b.WriteByte(')')
		return nil
	case *GeomShape:
		return writeGeomWKT(b, t.Geom())
	case *ShapeCollection:
		shapes := t.Shapes()
		if len(shapes) == 0 {
			b.WriteString("GEOMETRYCOLLECTION EMPTY")
			return nil
		}
		b.WriteString("GEOMETRYCOLLECTION (")
		for i, member := range shapes {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := writeShapeWKT(b, member); err != nil {
				return err
			}
		}
		b.WriteByte(')')
		return nil
	default:
		return unsupportedf("cannot write WKT for %T", s)
	}
}

func writeGeomWKT(b *strings.Builder, g geom.Geom) error {
	switch t := g.(type) {
	case geom.Point:
		b.WriteString("POINT (")
		writeGeomCoord(b, t)
		b.WriteByte(')')
	case geom.MultiPoint:
		if len(t) == 0 {
			b.WriteString("MULTIPOINT EMPTY")
			return nil
		}
		b.WriteString("MULTIPOINT (")
		for i, p := range t {
			if i > 0 {
				b.WriteString(", ")
			}
			writeGeomCoord(b, p)
		}
		b.WriteByte(')')
	case geom.LineString:
		if len(t) == 0 {
			b.WriteString("LINESTRING EMPTY")
			return nil
		}
		b.WriteString("LINESTRING ")
		writeCoordRun(b, t)
	case geom.MultiLineString:
		if len(t) == 0 {
			b.WriteString("MULTILINESTRING EMPTY")
			return nil
		}
		b.WriteString("MULTILINESTRING (")
		for i, l := range t {
			if i > 0 {
				b.WriteString(", ")
			}
			writeCoordRun(b, l)
		}
		b.WriteByte(')')
	case geom.Polygon:
		if len(t) == 0 {
			b.WriteString("POLYGON EMPTY")
			return nil
		}
		b.WriteString("POLYGON ")
		writePolygonBody(b, t)
	case geom.MultiPolygon:
		if len(t) == 0 {
			b.WriteString("MULTIPOLYGON EMPTY")
			return nil
		}
		b.WriteString("MULTIPOLYGON (")
		for i, p := range t {
			if i > 0 {
				b.WriteString(", ")
			}
			writePolygonBody(b, p)
		}
		b.WriteByte(')')
	default:
		return unsupportedf("cannot write WKT for geometry %T", g)
	}
	return nil
}

func writePolygonBody(b *strings.Builder, p geom.Polygon) {
	b.WriteByte('(')
	for i, ring := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		writeCoordRun(b, closedRing(ring))
	}
	b.WriteByte(')')
}

// closedRing appends the first point when the ring is stored open.
func closedRing(ring []geom.Point) []geom.Point {
	if len(ring) >= 3 && !ring[len(ring)-1].Equals(ring[0]) {
		return append(append([]geom.Point{}, ring...), ring[0])
	}
	return ring
}

func writeCoordRun(b *strings.Builder, pts []geom.Point) {
	b.WriteByte('(')
	for i, p := range pts {
		if i > 0 {
			b.WriteString(", ")
		}
		writeGeomCoord(b, p)
	}
	b.WriteByte(')')
}

func writeGeomCoord(b *strings.Builder, p geom.Point) {
	writeOrd(b, p.X)
	b.WriteByte(' ')
	writeOrd(b, p.Y)
}

func writeOrd(b *strings.Builder, v float64) {
	b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
}
