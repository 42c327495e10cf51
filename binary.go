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
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Spatial4n/Spatial4n/internal/geomconv"
)

// Binary type discriminators. These values are part of the serialized form
// and must not be renumbered.
const (
	binTypePoint      byte = 1
	binTypeRect       byte = 2
	binTypeCircle     byte = 3
	binTypeCollection byte = 4
	binTypeGeometry   byte = 5
)

// BinaryCodec reads and writes shapes in a compact little-endian binary
// form: a one-byte type discriminator followed by ordinates, with general
// geometries embedded as length-prefixed Well-Known Binary. Ordinates are
// float64 by default; single precision halves the size at the cost of about
// a centimeter of geodetic accuracy.
type BinaryCodec struct {
	ctx             *SpatialContext
	singlePrecision bool
}

// NewBinaryCodec returns a double-precision codec for ctx.
func NewBinaryCodec(ctx *SpatialContext) *BinaryCodec {
	return &BinaryCodec{ctx: ctx}
}

// NewBinaryCodecSinglePrecision returns a codec that stores ordinates as
// float32.
func NewBinaryCodecSinglePrecision(ctx *SpatialContext) *BinaryCodec {
	return &BinaryCodec{ctx: ctx, singlePrecision: true}
}

func (c *BinaryCodec) writeVal(w io.Writer, v float64) error {
	if c.singlePrecision {
		return binary.Write(w, binary.LittleEndian, float32(v))
	}
	return binary.Write(w, binary.LittleEndian, v)
}

func (c *BinaryCodec) readVal(r io.Reader) (float64, error) {
	if c.singlePrecision {
		var v float32
		err := binary.Read(r, binary.LittleEndian, &v)
		return float64(v), err
	}
	var v float64
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

// WriteShape serializes s to w.
func (c *BinaryCodec) WriteShape(w io.Writer, s Shape) error {
	typ, err := typeByteOf(s)
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte{typ}); err != nil {
		return err
	}
	return c.writeShapeBody(w, s)
}

func typeByteOf(s Shape) (byte, error) {
	switch s.(type) {
	case *Point:
		return binTypePoint, nil
	case *Rectangle:
		return binTypeRect, nil
	case *Circle:
		return binTypeCircle, nil
	case *ShapeCollection:
		return binTypeCollection, nil
	case *GeomShape:
		return binTypeGeometry, nil
	default:
		return 0, unsupportedf("cannot serialize %T", s)
	}
}

// collectionHint returns the shared type byte when every member has the same
// fixed-width layout, or 0 for the self-describing layout.
func collectionHint(shapes []Shape) byte {
	if len(shapes) == 0 {
		return 0
	}
	first, err := typeByteOf(shapes[0])
	if err != nil || first > binTypeCircle {
		return 0
	}
	for _, s := range shapes[1:] {
		b, err := typeByteOf(s)
		if err != nil || b != first {
			return 0
		}
	}
	return first
}

func (c *BinaryCodec) writeShapeBody(w io.Writer, s Shape) error {
	switch t := s.(type) {
	case *Point:
		if err := c.writeVal(w, t.X()); err != nil {
			return err
		}
		return c.writeVal(w, t.Y())
	case *Rectangle:
		for _, v := range []float64{t.MinX(), t.MaxX(), t.MinY(), t.MaxY()} {
			if err := c.writeVal(w, v); err != nil {
				return err
			}
		}
		return nil
	case *Circle:
		for _, v := range []float64{t.Center().X(), t.Center().Y(), t.Radius()} {
			if err := c.writeVal(w, v); err != nil {
				return err
			}
		}
		return nil
	case *ShapeCollection:
		// a nonzero element type hint elides the per-member type bytes
		shapes := t.Shapes()
		hint := collectionHint(shapes)
		if _, err := w.Write([]byte{hint}); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, int32(len(shapes))); err != nil {
			return err
		}
		for _, member := range shapes {
			var err error
			if hint == 0 {
				err = c.WriteShape(w, member)
			} else {
				err = c.writeShapeBody(w, member)
			}
			if err != nil {
				return err
			}
		}
		return nil
	case *GeomShape:
		data, err := geomconv.ToWKB(t.Geom())
		if err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, int32(len(data))); err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return unsupportedf("cannot serialize %T", s)
	}
}

// ReadShape deserializes one shape from r.
func (c *BinaryCodec) ReadShape(r io.Reader) (Shape, error) {
	var typ [1]byte
	if _, err := io.ReadFull(r, typ[:]); err != nil {
		return nil, err
	}
	return c.readShapeBody(r, typ[0])
}

func (c *BinaryCodec) readShapeBody(r io.Reader, typ byte) (Shape, error) {
	switch typ {
	case binTypePoint:
		x, err := c.readVal(r)
		if err != nil {
			return nil, err
		}
		y, err := c.readVal(r)
		if err != nil {
			return nil, err
		}
		return c.ctx.MakePoint(x, y)
	case binTypeRect:
		vals := make([]float64, 4)
		for i := range vals {
			v, err := c.readVal(r)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return c.ctx.MakeRectangle(vals[0], vals[1], vals[2], vals[3])
	case binTypeCircle:
		vals := make([]float64, 3)
		for i := range vals {
			v, err := c.readVal(r)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		center, err := c.ctx.MakePoint(vals[0], vals[1])
		if err != nil {
			return nil, err
		}
		return c.ctx.MakeCircle(center, vals[2])
	case binTypeCollection:
		var hint [1]byte
		if _, err := io.ReadFull(r, hint[:]); err != nil {
			return nil, err
		}
		var n int32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("spatial4n.BinaryCodec: negative collection size %d", n)
		}
		shapes := make([]Shape, 0, n)
		for i := int32(0); i < n; i++ {
			var (
				s   Shape
				err error
			)
			if hint[0] == 0 {
				s, err = c.ReadShape(r)
			} else {
				s, err = c.readShapeBody(r, hint[0])
			}
			if err != nil {
				return nil, err
			}
			shapes = append(shapes, s)
		}
		return c.ctx.MakeCollection(shapes), nil
	case binTypeGeometry:
		var n int32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("spatial4n.BinaryCodec: negative geometry size %d", n)
		}
		data := make([]byte, n)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, err
		}
		g, err := geomconv.FromWKB(data)
		if err != nil {
			return nil, err
		}
		return c.ctx.MakeGeometry(g)
	default:
		return nil, unsupportedf("unknown shape type byte %d", typ)
	}
}
