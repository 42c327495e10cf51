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

import "testing"

func lonRange(min, max float64) valueRange {
	return valueRange{min: min, max: max, lon: true}
}

func TestValueRangeWidth(t *testing.T) {
	cases := []struct {
		r    valueRange
		want float64
	}{
		{lonRange(0, 10), 10},
		{lonRange(170, -170), 20},
		{lonRange(-180, 180), 360},
		{valueRange{min: -5, max: 5}, 10},
	}
	for _, c := range cases {
		if have := c.r.width(); have != c.want {
			t.Errorf("width of %+v: want %v but have %v", c.r, c.want, have)
		}
	}
}

func TestValueRangeContains(t *testing.T) {
	wrap := lonRange(170, -170)
	for x, want := range map[float64]bool{175: true, -175: true, 180: true, 0: false, 169: false} {
		if have := wrap.contains(x); have != want {
			t.Errorf("%+v contains %v: want %v but have %v", wrap, x, want, have)
		}
	}
}

func TestValueRangeCenter(t *testing.T) {
	if have := lonRange(170, -170).center(); have != 180 && have != -180 {
		t.Errorf("want the dateline but have %v", have)
	}
	if have := lonRange(0, 10).center(); have != 5 {
		t.Errorf("want 5 but have %v", have)
	}
}

func TestValueRangeExpandTo(t *testing.T) {
	cases := []struct {
		a, b, want valueRange
	}{
		{lonRange(0, 10), lonRange(5, 20), lonRange(0, 20)},
		{lonRange(5, 20), lonRange(0, 10), lonRange(0, 20)},
		{lonRange(0, 20), lonRange(5, 10), lonRange(0, 20)},
		{lonRange(5, 10), lonRange(0, 20), lonRange(0, 20)},
		{lonRange(3, 7), lonRange(3, 7), lonRange(3, 7)},
		// disjoint across the dateline joins the short way
		{lonRange(150, 175), lonRange(-175, -160), lonRange(150, -160)},
		{lonRange(-175, -160), lonRange(150, 175), lonRange(150, -160)},
		// mutual coverage collapses to the world
		{lonRange(-170, 170), lonRange(160, -160), worldLonRange},
	}
	for _, c := range cases {
		if have := c.a.expandTo(c.b); have != c.want {
			t.Errorf("%+v expandTo %+v: want %+v but have %+v", c.a, c.b, c.want, have)
		}
	}
}
