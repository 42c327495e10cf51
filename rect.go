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
	"fmt"
	"math"
)

// Rectangle is an axis-aligned box. In geodetic mode minX may exceed maxX,
// meaning the rectangle crosses the dateline; Width normalizes for that. The
// empty rectangle has NaN bounds.
type Rectangle struct {
	minX, maxX, minY, maxY float64
	ctx                    *SpatialContext
}

func newRectangle(minX, maxX, minY, maxY float64, ctx *SpatialContext) *Rectangle {
	return &Rectangle{minX: minX, maxX: maxX, minY: minY, maxY: maxY, ctx: ctx}
}

// MinX returns the western (or left) bound.
func (r *Rectangle) MinX() float64 { return r.minX }

// MaxX returns the eastern (or right) bound.
func (r *Rectangle) MaxX() float64 { return r.maxX }

// MinY returns the southern (or bottom) bound.
func (r *Rectangle) MinY() float64 { return r.minY }

// MaxY returns the northern (or top) bound.
func (r *Rectangle) MaxY() float64 { return r.maxY }

// Reset overwrites the bounds in place. Same caveats as Point.Reset.
func (r *Rectangle) Reset(minX, maxX, minY, maxY float64) {
	r.minX, r.maxX, r.minY, r.maxY = minX, maxX, minY, maxY
}

// IsEmpty reports whether the rectangle is the empty sentinel.
func (r *Rectangle) IsEmpty() bool { return math.IsNaN(r.minX) }

// CrossesDateline reports whether the rectangle wraps across the
// antimeridian.
func (r *Rectangle) CrossesDateline() bool { return r.minX > r.maxX }

// Width returns the X span, normalized by +360 when the rectangle crosses the
// dateline, so it is always in [0, 360].
func (r *Rectangle) Width() float64 {
	w := r.maxX - r.minX
	if w < 0 {
		w += 360
	}
	return w
}

// Height returns the Y span.
func (r *Rectangle) Height() float64 { return r.maxY - r.minY }

// BoundingBox returns the rectangle itself.
func (r *Rectangle) BoundingBox() *Rectangle { return r }

// Center returns the midpoint, normalized across the dateline if needed.
func (r *Rectangle) Center() *Point {
	if r.IsEmpty() {
		return newPoint(math.NaN(), math.NaN(), r.ctx)
	}
	y := r.minY + r.Height()/2
	x := r.minX + r.Width()/2
	if r.minX > r.maxX {
		x = NormLonDEG(x)
	}
	return newPoint(x, y, r.ctx)
}

// HasArea reports whether both spans are nonzero.
func (r *Rectangle) HasArea() bool { return r.Width() > 0 && r.Height() > 0 }

// Area returns the area per the given calculator, or width*height when dc is
// nil.
func (r *Rectangle) Area(dc DistanceCalculator) float64 {
	if r.IsEmpty() {
		return 0
	}
	if dc == nil {
		return r.Width() * r.Height()
	}
	return dc.AreaRect(r)
}

// Equals reports exact bounds equality. Two empty rectangles are equal.
func (r *Rectangle) Equals(other *Rectangle) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return r.IsEmpty() && other.IsEmpty()
	}
	return r.minX == other.minX && r.maxX == other.maxX &&
		r.minY == other.minY && r.maxY == other.maxY
}

// Relate computes the relation to the other shape.
func (r *Rectangle) Relate(other Shape) (SpatialRelation, error) {
	if r.IsEmpty() || other.IsEmpty() {
		return Disjoint, nil
	}
	switch o := other.(type) {
	case *Point:
		return r.RelatePoint(o), nil
	case *Rectangle:
		return r.RelateRectangle(o), nil
	default:
		rel, err := other.Relate(r)
		if err != nil {
			return Disjoint, err
		}
		return rel.Transpose(), nil
	}
}

// RelatePoint returns Contains or Disjoint; points have no area so Within
// never applies from this call.
func (r *Rectangle) RelatePoint(p *Point) SpatialRelation {
	if r.IsEmpty() || p.IsEmpty() {
		return Disjoint
	}
	if p.Y() > r.maxY || p.Y() < r.minY {
		return Disjoint
	}
	minX, maxX := r.minX, r.maxX
	pX := p.X()
	if r.ctx.IsGeo() {
		// unwrap the dateline and shift the point into range if possible
		pX = NormLonDEG(pX)
		if maxX < minX {
			maxX += 360
		}
		if pX < minX {
			pX += 360
		}
	}
	if pX >= minX && pX <= maxX {
		return Contains
	}
	return Disjoint
}

// RelateRectangle decomposes the relation into independent X and Y range
// relations and combines them.
func (r *Rectangle) RelateRectangle(other *Rectangle) SpatialRelation {
	if r.IsEmpty() || other.IsEmpty() {
		return Disjoint
	}
	yRel := relateRange(r.minY, r.maxY, other.minY, other.maxY)
	if yRel == Disjoint {
		return Disjoint
	}
	xRel := r.relateXRange(other.minX, other.maxX)
	if xRel == Disjoint {
		return Disjoint
	}
	if xRel == yRel {
		return xRel
	}
	// degenerate edge touching: defer to the other axis if one is equal
	if r.minX == other.minX && r.maxX == other.maxX {
		return yRel
	}
	if r.minY == other.minY && r.maxY == other.maxY {
		return xRel
	}
	return Intersects
}

// relateXRange relates this rectangle's X span to [extMin, extMax], dateline
// aware in geodetic mode.
func (r *Rectangle) relateXRange(extMin, extMax float64) SpatialRelation {
	minX, maxX := r.minX, r.maxX
	if r.ctx.IsGeo() {
		rectWidth := r.Width()
		extWidth := extMax - extMin
		if extWidth < 0 {
			extWidth += 360
		}
		// a full-width span contains everything in X
		if rectWidth == 360 {
			return Contains
		}
		if extWidth == 360 {
			return Within
		}
		// unwrap both spans past +180
		if maxX < minX {
			maxX = minX + rectWidth
		}
		if extMax < extMin {
			extMax = extMin + extWidth
		}
		// shift one span by 360 if they'd only overlap that way
		if maxX < extMin {
			minX += 360
			maxX += 360
		} else if extMax < minX {
			extMin += 360
			extMax += 360
		}
	}
	return relateRange(minX, maxX, extMin, extMax)
}

// relateRange relates the inner range [intMin, intMax] to the outer range
// [extMin, extMax].
func relateRange(intMin, intMax, extMin, extMax float64) SpatialRelation {
	if extMin > intMax || extMax < intMin {
		return Disjoint
	}
	if extMin >= intMin && extMax <= intMax {
		return Contains
	}
	if extMin <= intMin && extMax >= intMax {
		return Within
	}
	return Intersects
}

// Buffered expands the rectangle by distance. In geodetic mode, reaching a
// pole or full longitude width collapses the result to a world-wide band.
func (r *Rectangle) Buffered(distance float64, ctx *SpatialContext) (Shape, error) {
	if ctx.IsGeo() {
		if r.maxY+distance >= 90 {
			return ctx.MakeRectangle(-180, 180, math.Max(-90, r.minY-distance), 90)
		}
		if r.minY-distance <= -90 {
			return ctx.MakeRectangle(-180, 180, -90, math.Min(90, r.maxY+distance))
		}
		closestToPoleY := r.maxY
		if math.Abs(r.minY) > math.Abs(r.maxY) {
			closestToPoleY = r.minY
		}
		lonDist := calcBoxByDistDeltaLonDEG(closestToPoleY, distance)
		if lonDist*2+r.Width() >= 360 {
			return ctx.MakeRectangle(-180, 180, r.minY-distance, r.maxY+distance)
		}
		return ctx.MakeRectangle(
			NormLonDEG(r.minX-lonDist), NormLonDEG(r.maxX+lonDist),
			r.minY-distance, r.maxY+distance)
	}
	wb := ctx.WorldBounds()
	return ctx.MakeRectangle(
		math.Max(wb.MinX(), r.minX-distance),
		math.Min(wb.MaxX(), r.maxX+distance),
		math.Max(wb.MinY(), r.minY-distance),
		math.Min(wb.MaxY(), r.maxY+distance))
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rect(minX=%v,maxX=%v,minY=%v,maxY=%v)",
		r.minX, r.maxX, r.minY, r.maxY)
}
