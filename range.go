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

// valueRange is a 1-D range used when aggregating bounding boxes. The lon
// variant wraps at the dateline: min > max is legal and means the range
// crosses it. Expanding chooses the direction that keeps the union narrowest.
type valueRange struct {
	min, max float64
	lon      bool // longitude semantics (wrap at ±180)
}

func xRangeOf(r *Rectangle, ctx *SpatialContext) valueRange {
	return valueRange{min: r.MinX(), max: r.MaxX(), lon: ctx.IsGeo()}
}

var worldLonRange = valueRange{min: -180, max: 180, lon: true}

func (v valueRange) width() float64 {
	w := v.max - v.min
	if v.lon && w < 0 {
		w += 360
	}
	return w
}

func (v valueRange) contains(x float64) bool {
	if !v.lon {
		return x >= v.min && x <= v.max
	}
	if v.min <= v.max {
		return x >= v.min && x <= v.max
	}
	return x >= v.min || x <= v.max
}

func (v valueRange) center() float64 {
	c := v.min + v.width()/2
	if v.lon && c > 180 {
		c -= 360
	}
	return c
}

// expandTo returns the smallest range covering both v and o. A longitude
// result may cross the dateline; two ranges covering each other's endpoints
// from both sides collapse to the full world, and disjoint ranges join in
// whichever direction is narrower.
func (v valueRange) expandTo(o valueRange) valueRange {
	if !v.lon {
		return valueRange{min: minF(v.min, o.min), max: maxF(v.max, o.max)}
	}
	if v.contains(o.min) {
		if v.contains(o.max) {
			if v.min == o.min && v.max == o.max {
				return v
			}
			if o.contains(v.min) && o.contains(v.max) {
				// mutual coverage leaves no gap anywhere
				return worldLonRange
			}
			return v
		}
		return valueRange{min: v.min, max: o.max, lon: true}
	}
	if o.contains(v.min) {
		if o.contains(v.max) {
			return o
		}
		return valueRange{min: o.min, max: v.max, lon: true}
	}
	c1 := valueRange{min: v.min, max: o.max, lon: true}
	c2 := valueRange{min: o.min, max: v.max, lon: true}
	if c1.width() <= c2.width() {
		return c1
	}
	return c2
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
