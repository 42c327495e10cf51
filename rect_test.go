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

func mustRect(t *testing.T, ctx *SpatialContext, minX, maxX, minY, maxY float64) *Rectangle {
	t.Helper()
	r, err := ctx.MakeRectangle(minX, maxX, minY, maxY)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func mustPoint(t *testing.T, ctx *SpatialContext, x, y float64) *Point {
	t.Helper()
	p, err := ctx.MakePoint(x, y)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRectWidth(t *testing.T) {
	ctx := NewGeoContext()
	cases := []struct {
		minX, maxX, want float64
	}{
		{10, 20, 10},
		{-180, 180, 360},
		{170, -170, 20},  // crosses the dateline
		{-170, 170, 340}, // does not
	}
	for _, c := range cases {
		r := mustRect(t, ctx, c.minX, c.maxX, -10, 10)
		if have := r.Width(); have != c.want {
			t.Errorf("width of [%v,%v]: want %v but have %v", c.minX, c.maxX, c.want, have)
		}
	}
	if !mustRect(t, ctx, 170, -170, -10, 10).CrossesDateline() {
		t.Error("[170,-170] should cross the dateline")
	}
	if mustRect(t, ctx, -170, 170, -10, 10).CrossesDateline() {
		t.Error("[-170,170] should not cross the dateline")
	}
}

func TestRectCenterAcrossDateline(t *testing.T) {
	ctx := NewGeoContext()
	c := mustRect(t, ctx, 170, -170, -10, 10).Center()
	if math.Abs(c.X()-180) > 1e-9 && math.Abs(c.X()+180) > 1e-9 {
		t.Errorf("want center at the dateline but have %v", c)
	}
	if c.Y() != 0 {
		t.Errorf("want center Y 0 but have %v", c.Y())
	}
}

func TestRectRelatePoint(t *testing.T) {
	ctx := NewGeoContext()
	r := mustRect(t, ctx, 170, -170, -10, 10)
	cases := []struct {
		x, y float64
		want SpatialRelation
	}{
		{175, 0, Contains},
		{-175, 0, Contains},
		{180, 0, Contains},
		{170, 10, Contains}, // corner
		{0, 0, Disjoint},
		{175, 20, Disjoint},
	}
	for _, c := range cases {
		p := mustPoint(t, ctx, c.x, c.y)
		if have := r.RelatePoint(p); have != c.want {
			t.Errorf("%v relate (%v,%v): want %v but have %v", r, c.x, c.y, c.want, have)
		}
	}
}

func TestRectRelateRectangle(t *testing.T) {
	ctx := NewGeoContext()
	a := mustRect(t, ctx, 10, 30, 10, 30)
	cases := []struct {
		minX, maxX, minY, maxY float64
		want                   SpatialRelation
	}{
		{12, 28, 12, 28, Contains},
		{0, 40, 0, 40, Within},
		{10, 30, 10, 30, Contains}, // equal
		{25, 40, 25, 40, Intersects},
		{40, 50, 10, 30, Disjoint},
		{10, 30, 40, 50, Disjoint},
		{30, 40, 10, 30, Intersects}, // edge touch
	}
	for _, c := range cases {
		b := mustRect(t, ctx, c.minX, c.maxX, c.minY, c.maxY)
		if have := a.RelateRectangle(b); have != c.want {
			t.Errorf("%v relate %v: want %v but have %v", a, b, c.want, have)
		}
	}
}

func TestRectRelateRectangleDateline(t *testing.T) {
	ctx := NewGeoContext()
	cross := mustRect(t, ctx, 170, -170, -10, 10)
	cases := []struct {
		other *Rectangle
		want  SpatialRelation
	}{
		{mustRect(t, ctx, 175, -175, -5, 5), Contains},
		{mustRect(t, ctx, 160, -160, -20, 20), Within},
		{mustRect(t, ctx, 175, -160, -5, 5), Intersects},
		{mustRect(t, ctx, -150, -100, -5, 5), Disjoint},
		{mustRect(t, ctx, 100, 150, -5, 5), Disjoint},
		{mustRect(t, ctx, -180, 180, -20, 20), Within},
	}
	for _, c := range cases {
		if have := cross.RelateRectangle(c.other); have != c.want {
			t.Errorf("%v relate %v: want %v but have %v", cross, c.other, c.want, have)
		}
	}

	world := mustRect(t, ctx, -180, 180, -90, 90)
	if have := world.RelateRectangle(cross); have != Contains {
		t.Errorf("world relate %v: want %v but have %v", cross, Contains, have)
	}
}

func TestRectBuffered(t *testing.T) {
	ctx := NewGeoContext()

	// buffering into a pole collapses longitude to the full range
	polar, err := mustRect(t, ctx, 10, 20, 70, 80).Buffered(15, ctx)
	if err != nil {
		t.Fatal(err)
	}
	pr := polar.(*Rectangle)
	if pr.MinX() != -180 || pr.MaxX() != 180 || pr.MaxY() != 90 || pr.MinY() != 55 {
		t.Errorf("want [-180,180]x[55,90] but have %v", pr)
	}

	// a small buffer near the equator grows both axes without collapsing
	small, err := mustRect(t, ctx, 10, 20, -10, 10).Buffered(5, ctx)
	if err != nil {
		t.Fatal(err)
	}
	sr := small.(*Rectangle)
	if sr.MinY() != -15 || sr.MaxY() != 15 {
		t.Errorf("want Y range [-15,15] but have %v", sr)
	}
	if sr.MinX() >= 10 || sr.MaxX() <= 20 || sr.CrossesDateline() {
		t.Errorf("want X range around [10,20] but have %v", sr)
	}

	planar := NewPlanarContext()
	pb, err := mustRect(t, planar, 0, 10, 0, 10).Buffered(2, planar)
	if err != nil {
		t.Fatal(err)
	}
	if r := pb.(*Rectangle); r.MinX() != -2 || r.MaxX() != 12 || r.MinY() != -2 || r.MaxY() != 12 {
		t.Errorf("want [-2,12]x[-2,12] but have %v", r)
	}
}
