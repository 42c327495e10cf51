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

func TestNormLonDEG(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{180, 180},
		{-180, -180},
		{190, -170},
		{-190, 170},
		{370, 10},
		{-370, -10},
		{540, 180},
		{-540, -180},
	}
	for _, c := range cases {
		if have := NormLonDEG(c.in); have != c.want {
			t.Errorf("NormLonDEG(%v): want %v but have %v", c.in, c.want, have)
		}
	}
}

func TestNormLatDEG(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{90, 90},
		{-90, -90},
		{91, 89},
		{-91, -89},
		{181, -1},
		{271, -89},
	}
	for _, c := range cases {
		if have := NormLatDEG(c.in); math.Abs(have-c.want) > 1e-12 {
			t.Errorf("NormLatDEG(%v): want %v but have %v", c.in, c.want, have)
		}
	}
}

func TestGeodesicDistance(t *testing.T) {
	origin := newPoint(0, 0, NewGeoContext())
	calcs := map[string]DistanceCalculator{
		"haversine":      NewHaversineCalculator(),
		"lawOfCosines":   NewLawOfCosinesCalculator(),
		"vincentySphere": NewVincentySphereCalculator(),
	}
	cases := []struct{ x, y, want float64 }{
		{0, 90, 90},   // to the north pole
		{90, 0, 90},   // a quarter of the equator
		{180, 0, 180}, // antipode
		{0, 0, 0},
	}
	for name, dc := range calcs {
		for _, c := range cases {
			if have := dc.Distance(origin, c.x, c.y); math.Abs(have-c.want) > 1e-9 {
				t.Errorf("%s: distance to (%v,%v): want %v but have %v",
					name, c.x, c.y, c.want, have)
			}
		}
	}

	// the formulas should agree with each other away from the special points
	from := newPoint(25.3, 17.2, NewGeoContext())
	want := calcs["haversine"].Distance(from, -60.1, -33.8)
	for name, dc := range calcs {
		if have := dc.Distance(from, -60.1, -33.8); math.Abs(have-want) > 1e-9 {
			t.Errorf("%s: want %v but have %v", name, want, have)
		}
	}
}

func TestPointOnBearing(t *testing.T) {
	ctx := NewGeoContext()
	dc := ctx.DistanceCalculator()
	origin := newPoint(0, 0, ctx)

	north := dc.PointOnBearing(origin, 30, 0, ctx, nil)
	if math.Abs(north.X()-0) > 1e-9 || math.Abs(north.Y()-30) > 1e-9 {
		t.Errorf("bearing 0: want (0,30) but have %v", north)
	}
	east := dc.PointOnBearing(origin, 30, 90, ctx, nil)
	if math.Abs(east.X()-30) > 1e-9 || math.Abs(east.Y()-0) > 1e-9 {
		t.Errorf("bearing 90: want (30,0) but have %v", east)
	}

	// a destination point lies at the requested distance
	from := newPoint(-70, 40, ctx)
	for bearing := 0.0; bearing < 360; bearing += 45 {
		p := dc.PointOnBearing(from, 15, bearing, ctx, nil)
		if d := dc.Distance(from, p.X(), p.Y()); math.Abs(d-15) > 1e-9 {
			t.Errorf("bearing %v: want distance 15 but have %v", bearing, d)
		}
	}
}

func TestCalcBoxByDistFromPt(t *testing.T) {
	ctx := NewGeoContext()
	dc := ctx.DistanceCalculator()

	// mid-latitude box is wider in longitude than the distance
	from := newPoint(0, 40, ctx)
	box := dc.CalcBoxByDistFromPt(from, 10, ctx, nil)
	if box.MinY() != 30 || box.MaxY() != 50 {
		t.Errorf("want Y range [30,50] but have [%v,%v]", box.MinY(), box.MaxY())
	}
	if box.MaxX() <= 10 || box.MaxX() >= 90 {
		t.Errorf("lon delta out of range: have %v", box.MaxX())
	}
	if box.MinX() != -box.MaxX() {
		t.Errorf("want symmetric X range but have [%v,%v]", box.MinX(), box.MaxX())
	}

	// all destination points fall inside the box, allowing for rounding on
	// the boundary cases
	const eps = 1e-9
	for bearing := 0.0; bearing < 360; bearing += 15 {
		p := dc.PointOnBearing(from, 10, bearing, ctx, nil)
		if p.Y() < box.MinY()-eps || p.Y() > box.MaxY()+eps {
			t.Errorf("bearing %v: box %v does not contain %v", bearing, box, p)
		}
		if p.X() < box.MinX()-eps || p.X() > box.MaxX()+eps {
			t.Errorf("bearing %v: box %v does not contain %v", bearing, box, p)
		}
	}

	// touching a pole spans half the longitudes
	touch := dc.CalcBoxByDistFromPt(newPoint(0, 80, ctx), 10, ctx, nil)
	if touch.MinX() != -90 || touch.MaxX() != 90 || touch.MaxY() != 90 {
		t.Errorf("pole touch: want [-90,90]x[70,90] but have %v", touch)
	}

	// passing over a pole spans all longitudes
	over := dc.CalcBoxByDistFromPt(newPoint(0, 85, ctx), 10, ctx, nil)
	if over.MinX() != -180 || over.MaxX() != 180 || over.MaxY() != 90 || over.MinY() != 75 {
		t.Errorf("pole crossing: want [-180,180]x[75,90] but have %v", over)
	}

	// huge distances cover the world
	world := dc.CalcBoxByDistFromPt(newPoint(0, 0, ctx), 180, ctx, nil)
	if world.MinX() != -180 || world.MaxX() != 180 || world.MinY() != -90 || world.MaxY() != 90 {
		t.Errorf("world: have %v", world)
	}
}

func TestGeodesicArea(t *testing.T) {
	ctx := NewGeoContext()
	dc := ctx.DistanceCalculator()

	world, err := ctx.MakeRectangle(-180, 180, -90, 90)
	if err != nil {
		t.Fatal(err)
	}
	if have := dc.AreaRect(world); math.Abs(have-4*math.Pi) > 1e-12 {
		t.Errorf("world area: want %v but have %v", 4*math.Pi, have)
	}

	north, err := ctx.MakeRectangle(-180, 180, 0, 90)
	if err != nil {
		t.Fatal(err)
	}
	if have := dc.AreaRect(north); math.Abs(have-2*math.Pi) > 1e-12 {
		t.Errorf("hemisphere area: want %v but have %v", 2*math.Pi, have)
	}

	center, err := ctx.MakePoint(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	all, err := ctx.MakeCircle(center, 180)
	if err != nil {
		t.Fatal(err)
	}
	if have := dc.AreaCircle(all); math.Abs(have-4*math.Pi) > 1e-12 {
		t.Errorf("full circle area: want %v but have %v", 4*math.Pi, have)
	}
}

func TestCartesianCalculator(t *testing.T) {
	ctx := NewPlanarContext()
	from := newPoint(0, 0, ctx)

	dc := NewCartesianCalculator()
	if have := dc.Distance(from, 3, 4); have != 5 {
		t.Errorf("want 5 but have %v", have)
	}
	sq := NewCartesianSquaredCalculator()
	if have := sq.Distance(from, 3, 4); have != 25 {
		t.Errorf("want 25 but have %v", have)
	}
	// Within compares in real units for both
	for name, c := range map[string]DistanceCalculator{"cartesian": dc, "cartesian^2": sq} {
		if !c.Within(from, 3, 4, 5) {
			t.Errorf("%s: (3,4) should be within 5 of the origin", name)
		}
		if c.Within(from, 3, 4, 4.9) {
			t.Errorf("%s: (3,4) should not be within 4.9 of the origin", name)
		}
	}

	box := dc.CalcBoxByDistFromPt(from, 2, ctx, nil)
	if box.MinX() != -2 || box.MaxX() != 2 || box.MinY() != -2 || box.MaxY() != 2 {
		t.Errorf("want [-2,2]x[-2,2] but have %v", box)
	}
}
