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

// Package geomconv bridges the boolean-operation geometry types to the
// go-geom types used for Well-Known Binary serialization.
package geomconv

import (
	"encoding/binary"
	"fmt"

	"github.com/ctessum/geom"
	twgeom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// ToWKB serializes a geometry as little-endian Well-Known Binary.
func ToWKB(g geom.Geom) ([]byte, error) {
	t, err := ToGeomT(g)
	if err != nil {
		return nil, err
	}
	data, err := wkb.Marshal(t, binary.LittleEndian)
	if err != nil {
		return nil, fmt.Errorf("geomconv.ToWKB: %v", err)
	}
	return data, nil
}

// FromWKB deserializes Well-Known Binary of either byte order.
func FromWKB(data []byte) (geom.Geom, error) {
	t, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("geomconv.FromWKB: %v", err)
	}
	return FromGeomT(t)
}

// ToGeomT converts to the go-geom representation.
func ToGeomT(g geom.Geom) (twgeom.T, error) {
	switch t := g.(type) {
	case geom.Point:
		return twgeom.NewPointFlat(twgeom.XY, []float64{t.X, t.Y}), nil
	case geom.MultiPoint:
		flat := make([]float64, 0, 2*len(t))
		for _, p := range t {
			flat = append(flat, p.X, p.Y)
		}
		return twgeom.NewMultiPointFlat(twgeom.XY, flat), nil
	case geom.LineString:
		return twgeom.NewLineStringFlat(twgeom.XY, flatCoords(t)), nil
	case geom.MultiLineString:
		var flat []float64
		ends := make([]int, 0, len(t))
		for _, l := range t {
			flat = append(flat, flatCoords(l)...)
			ends = append(ends, len(flat))
		}
		return twgeom.NewMultiLineStringFlat(twgeom.XY, flat, ends), nil
	case geom.Polygon:
		flat, ends := flatRings(t)
		return twgeom.NewPolygonFlat(twgeom.XY, flat, ends), nil
	case geom.MultiPolygon:
		var flat []float64
		endss := make([][]int, 0, len(t))
		for _, p := range t {
			pFlat, pEnds := flatRings(p)
			base := len(flat)
			flat = append(flat, pFlat...)
			for i := range pEnds {
				pEnds[i] += base
			}
			endss = append(endss, pEnds)
		}
		return twgeom.NewMultiPolygonFlat(twgeom.XY, flat, endss), nil
	default:
		return nil, fmt.Errorf("geomconv.ToGeomT: unsupported geometry %T", g)
	}
}

// FromGeomT converts from the go-geom representation, dropping any Z or M
// ordinates.
func FromGeomT(t twgeom.T) (geom.Geom, error) {
	stride := t.Stride()
	switch v := t.(type) {
	case *twgeom.Point:
		c := v.FlatCoords()
		return geom.Point{X: c[0], Y: c[1]}, nil
	case *twgeom.MultiPoint:
		c := v.FlatCoords()
		mp := make(geom.MultiPoint, 0, len(c)/stride)
		for i := 0; i < len(c); i += stride {
			mp = append(mp, geom.Point{X: c[i], Y: c[i+1]})
		}
		return mp, nil
	case *twgeom.LineString:
		return geom.LineString(pointRun(v.FlatCoords(), 0, len(v.FlatCoords()), stride)), nil
	case *twgeom.MultiLineString:
		c := v.FlatCoords()
		out := make(geom.MultiLineString, 0, len(v.Ends()))
		start := 0
		for _, end := range v.Ends() {
			out = append(out, geom.LineString(pointRun(c, start, end, stride)))
			start = end
		}
		return out, nil
	case *twgeom.Polygon:
		return polygonFromFlat(v.FlatCoords(), v.Ends(), 0, stride), nil
	case *twgeom.MultiPolygon:
		c := v.FlatCoords()
		out := make(geom.MultiPolygon, 0, len(v.Endss()))
		start := 0
		for _, ends := range v.Endss() {
			out = append(out, polygonFromFlat(c, ends, start, stride))
			if len(ends) > 0 {
				start = ends[len(ends)-1]
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("geomconv.FromGeomT: unsupported geometry %T", t)
	}
}

func flatCoords(pts []geom.Point) []float64 {
	flat := make([]float64, 0, 2*len(pts))
	for _, p := range pts {
		flat = append(flat, p.X, p.Y)
	}
	return flat
}

// flatRings flattens polygon rings, closing any open ring.
func flatRings(p geom.Polygon) ([]float64, []int) {
	var flat []float64
	ends := make([]int, 0, len(p))
	for _, ring := range p {
		flat = append(flat, flatCoords(ring)...)
		if n := len(ring); n >= 3 && !ring[n-1].Equals(ring[0]) {
			flat = append(flat, ring[0].X, ring[0].Y)
		}
		ends = append(ends, len(flat))
	}
	return flat, ends
}

func pointRun(flat []float64, start, end, stride int) []geom.Point {
	pts := make([]geom.Point, 0, (end-start)/stride)
	for i := start; i < end; i += stride {
		pts = append(pts, geom.Point{X: flat[i], Y: flat[i+1]})
	}
	return pts
}

func polygonFromFlat(flat []float64, ends []int, start, stride int) geom.Polygon {
	p := make(geom.Polygon, 0, len(ends))
	for _, end := range ends {
		p = append(p, pointRun(flat, start, end, stride))
		start = end
	}
	return p
}
