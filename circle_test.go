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
	"math"
	"testing"
)

func mustCircle(t *testing.T, ctx *SpatialContext, x, y, radius float64) *Circle {
	t.Helper()
	c, err := ctx.MakeCircle(mustPoint(t, ctx, x, y), radius)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCircleBoundingBox(t *testing.T) {
	ctx := NewGeoContext()
	c := mustCircle(t, ctx, 0, 0, 10)
	bb := c.BoundingBox()
	// at the equator the box is exactly radius degrees in each direction
	if math.Abs(bb.MinX()+10) > 1e-9 || math.Abs(bb.MaxX()-10) > 1e-9 ||
		bb.MinY() != -10 || bb.MaxY() != 10 {
		t.Errorf("want [-10,10]x[-10,10] but have %v", bb)
	}

	// near the dateline the box crosses it
	d := mustCircle(t, ctx, 175, 0, 10)
	if !d.BoundingBox().CrossesDateline() {
		t.Errorf("want a dateline-crossing bbox but have %v", d.BoundingBox())
	}
}

func TestCircleRelatePoint(t *testing.T) {
	ctx := NewGeoContext()
	c := mustCircle(t, ctx, 0, 0, 10)
	cases := []struct {
		x, y float64
		want SpatialRelation
	}{
		{0, 0, Contains},
		{5, 5, Contains},
		{10, 0, Contains}, // on the boundary
		{8, 8, Disjoint},  // farther than 10 degrees along the diagonal
		{20, 0, Disjoint},
	}
	for _, c2 := range cases {
		p := mustPoint(t, ctx, c2.x, c2.y)
		if have := c.RelatePoint(p); have != c2.want {
			t.Errorf("relate (%v,%v): want %v but have %v", c2.x, c2.y, c2.want, have)
		}
	}

	// a zero-radius circle still contains its own center
	dot := mustCircle(t, ctx, 3, 4, 0)
	if have := dot.RelatePoint(mustPoint(t, ctx, 3, 4)); have != Contains {
		t.Errorf("zero radius at center: want %v but have %v", Contains, have)
	}
	if have := dot.RelatePoint(mustPoint(t, ctx, 3, 4.001)); have != Disjoint {
		t.Errorf("zero radius off center: want %v but have %v", Disjoint, have)
	}
}

func TestCircleRelateCircle(t *testing.T) {
	ctx := NewGeoContext()
	c := mustCircle(t, ctx, 0, 0, 10)
	cases := []struct {
		other *Circle
		want  SpatialRelation
	}{
		{mustCircle(t, ctx, 30, 0, 10), Disjoint},
		{mustCircle(t, ctx, 5, 0, 2), Contains},
		{mustCircle(t, ctx, 0, 2, 20), Within},
		{mustCircle(t, ctx, 15, 0, 10), Intersects},
		{mustCircle(t, ctx, 0, 0, 10), Contains}, // coincident
	}
	for _, c2 := range cases {
		if have := c.RelateCircle(c2.other); have != c2.want {
			t.Errorf("%v relate %v: want %v but have %v", c, c2.other, c2.want, have)
		}
	}

	// the transpose law holds
	a := mustCircle(t, ctx, 5, 0, 2)
	if have := a.RelateCircle(c); have != Within {
		t.Errorf("transpose: want %v but have %v", Within, have)
	}
}

func TestCircleRelateRectangle(t *testing.T) {
	ctx := NewGeoContext()
	c := mustCircle(t, ctx, 0, 0, 10)
	cases := []struct {
		r    *Rectangle
		want SpatialRelation
	}{
		{mustRect(t, ctx, -2, 2, -2, 2), Contains},
		{mustRect(t, ctx, 20, 30, -5, 5), Disjoint},
		{mustRect(t, ctx, 5, 15, -5, 5), Intersects},
		{mustRect(t, ctx, 8, 9, 8, 9), Disjoint}, // inside the bbox corner but outside the circle
		{mustRect(t, ctx, -90, 90, -90, 90), Within},
	}
	for _, c2 := range cases {
		have, err := c.RelateRectangle(c2.r)
		if err != nil {
			t.Fatal(err)
		}
		if have != c2.want {
			t.Errorf("%v relate %v: want %v but have %v", c, c2.r, c2.want, have)
		}
	}

	// a circle is within its own bounding box
	have, err := c.RelateRectangle(c.BoundingBox())
	if err != nil {
		t.Fatal(err)
	}
	if have != Within {
		t.Errorf("own bbox: want %v but have %v", Within, have)
	}
}

func TestCircleRelateRectangleDatelineUnsupported(t *testing.T) {
	ctx := NewGeoContext()
	c := mustCircle(t, ctx, 180, 0, 10)
	r := mustRect(t, ctx, 175, -175, -5, 5)
	_, err := c.RelateRectangle(r)
	if err == nil {
		t.Fatal("want an error for a dateline-crossing rectangle")
	}
	var unsupported *UnsupportedOperationError
	if !errors.As(err, &unsupported) {
		t.Errorf("want *UnsupportedOperationError but have %T: %v", err, err)
	}
}

func TestCircleBuffered(t *testing.T) {
	ctx := NewGeoContext()
	c := mustCircle(t, ctx, 0, 0, 10)
	s, err := c.Buffered(5, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if have := s.(*Circle).Radius(); have != 15 {
		t.Errorf("want radius 15 but have %v", have)
	}
}
