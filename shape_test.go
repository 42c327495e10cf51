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
	"testing"
)

func TestSpatialRelationTranspose(t *testing.T) {
	cases := []struct{ in, want SpatialRelation }{
		{Contains, Within},
		{Within, Contains},
		{Intersects, Intersects},
		{Disjoint, Disjoint},
	}
	for _, c := range cases {
		if have := c.in.Transpose(); have != c.want {
			t.Errorf("%v.Transpose(): want %v but have %v", c.in, c.want, have)
		}
	}
}

func TestSpatialRelationCombine(t *testing.T) {
	cases := []struct{ a, b, want SpatialRelation }{
		{Disjoint, Disjoint, Disjoint},
		{Contains, Contains, Contains},
		{Within, Within, Within},
		{Contains, Disjoint, Contains},
		{Disjoint, Contains, Contains},
		{Within, Disjoint, Intersects},
		{Contains, Within, Intersects},
		{Intersects, Contains, Intersects},
	}
	for _, c := range cases {
		if have := c.a.Combine(c.b); have != c.want {
			t.Errorf("%v.Combine(%v): want %v but have %v", c.a, c.b, c.want, have)
		}
	}
}

func TestSpatialRelationIntersects(t *testing.T) {
	for rel, want := range map[SpatialRelation]bool{
		Disjoint: false, Intersects: true, Contains: true, Within: true,
	} {
		if have := rel.Intersects(); have != want {
			t.Errorf("%v.Intersects(): want %v but have %v", rel, want, have)
		}
	}
}

func TestPointBasics(t *testing.T) {
	ctx := NewGeoContext()
	p := mustPoint(t, ctx, 10, 20)
	if p.IsEmpty() {
		t.Error("point should not be empty")
	}
	if p.HasArea() || p.Area(nil) != 0 {
		t.Error("a point has no area")
	}
	bb := p.BoundingBox()
	if bb.MinX() != 10 || bb.MaxX() != 10 || bb.MinY() != 20 || bb.MaxY() != 20 {
		t.Errorf("want degenerate bbox at (10,20) but have %v", bb)
	}

	empty := mustPoint(t, ctx, math.NaN(), math.NaN())
	if !empty.IsEmpty() {
		t.Error("NaN point should be empty")
	}
	rel, err := empty.Relate(p)
	if err != nil {
		t.Fatal(err)
	}
	if rel != Disjoint {
		t.Errorf("empty relate: want %v but have %v", Disjoint, rel)
	}
}

func TestPointRelate(t *testing.T) {
	ctx := NewGeoContext()
	a := mustPoint(t, ctx, 10, 20)
	b := mustPoint(t, ctx, 10, 20)
	c := mustPoint(t, ctx, 11, 20)

	rel, err := a.Relate(b)
	if err != nil {
		t.Fatal(err)
	}
	if rel != Contains {
		t.Errorf("equal points: want %v but have %v", Contains, rel)
	}
	rel, err = a.Relate(c)
	if err != nil {
		t.Fatal(err)
	}
	if rel != Disjoint {
		t.Errorf("distinct points: want %v but have %v", Disjoint, rel)
	}

	// relating to a rectangle transposes the rectangle's answer
	r := mustRect(t, ctx, 0, 30, 0, 30)
	rel, err = a.Relate(r)
	if err != nil {
		t.Fatal(err)
	}
	if rel != Within {
		t.Errorf("point in rect: want %v but have %v", Within, rel)
	}
}

func TestPointBuffered(t *testing.T) {
	ctx := NewGeoContext()
	p := mustPoint(t, ctx, 10, 20)
	s, err := p.Buffered(5, ctx)
	if err != nil {
		t.Fatal(err)
	}
	c, ok := s.(*Circle)
	if !ok {
		t.Fatalf("want *Circle but have %T", s)
	}
	if !c.Center().Equals(p) || c.Radius() != 5 {
		t.Errorf("want circle at %v radius 5 but have %v", p, c)
	}
}
