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

	"github.com/ctessum/geom"
)

// SpatialContext is the factory and configuration for all shape types. It is
// immutable after construction; every shape-factory method routes coordinate
// validation and normalization through it. Contexts are per-instance, not
// global: two contexts with different settings coexist fine.
type SpatialContext struct {
	geo               bool
	calc              DistanceCalculator
	worldBounds       *Rectangle
	normWrapLongitude bool

	// geometry-wrapper subsystem options (see SpatialContextFactory)
	datelineRule      DatelineRule
	validationRule    ValidationRule
	autoIndex         bool
	allowMultiOverlap bool
	circleSegments    int
}

// NewGeoContext returns a geodetic context: degrees, haversine distance,
// world bounds [-180,180] x [-90,90].
func NewGeoContext() *SpatialContext {
	ctx := &SpatialContext{
		geo:            true,
		calc:           NewHaversineCalculator(),
		datelineRule:   DatelineRuleWidth180,
		circleSegments: defaultCircleSegments,
	}
	ctx.worldBounds = newRectangle(-180, 180, -90, 90, ctx)
	return ctx
}

// NewPlanarContext returns a flat Euclidean context with unbounded world
// bounds.
func NewPlanarContext() *SpatialContext {
	ctx := &SpatialContext{
		geo:            false,
		calc:           NewCartesianCalculator(),
		circleSegments: defaultCircleSegments,
	}
	ctx.worldBounds = newRectangle(-math.MaxFloat64, math.MaxFloat64,
		-math.MaxFloat64, math.MaxFloat64, ctx)
	return ctx
}

// IsGeo reports whether coordinates are latitude/longitude degrees on a
// sphere.
func (ctx *SpatialContext) IsGeo() bool { return ctx.geo }

// DistanceCalculator returns the configured distance calculator.
func (ctx *SpatialContext) DistanceCalculator() DistanceCalculator { return ctx.calc }

// WorldBounds returns the valid coordinate envelope.
func (ctx *SpatialContext) WorldBounds() *Rectangle { return ctx.worldBounds }

// NormWrapLongitude reports whether out-of-range longitudes are wrapped into
// [-180, 180] instead of rejected.
func (ctx *SpatialContext) NormWrapLongitude() bool { return ctx.normWrapLongitude }

// DatelineRule returns the rule used when deciding whether an ambiguous
// polygon or rectangle crosses the dateline.
func (ctx *SpatialContext) DatelineRule() DatelineRule { return ctx.datelineRule }

// ValidationRule returns the geometry validation behavior.
func (ctx *SpatialContext) ValidationRule() ValidationRule { return ctx.validationRule }

// NormX normalizes an X ordinate, wrapping longitude when configured.
func (ctx *SpatialContext) NormX(x float64) float64 {
	if ctx.geo && ctx.normWrapLongitude {
		return NormLonDEG(x)
	}
	return x
}

// VerifyX checks an X ordinate against the world bounds.
func (ctx *SpatialContext) VerifyX(x float64) error {
	wb := ctx.worldBounds
	if x < wb.MinX() || x > wb.MaxX() {
		return invalidShapef("bad X value %v is not in boundary %v", x, wb)
	}
	return nil
}

// VerifyY checks a Y ordinate against the world bounds.
func (ctx *SpatialContext) VerifyY(y float64) error {
	wb := ctx.worldBounds
	if y < wb.MinY() || y > wb.MaxY() {
		return invalidShapef("bad Y value %v is not in boundary %v", y, wb)
	}
	return nil
}

// MakePoint constructs a point, normalizing X and validating both ordinates.
// NaN ordinates construct the empty point.
func (ctx *SpatialContext) MakePoint(x, y float64) (*Point, error) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return newPoint(math.NaN(), math.NaN(), ctx), nil
	}
	x = ctx.NormX(x)
	if err := ctx.VerifyX(x); err != nil {
		return nil, err
	}
	if err := ctx.VerifyY(y); err != nil {
		return nil, err
	}
	return newPoint(x, y, ctx), nil
}

// MakeRectangle constructs a rectangle. In geodetic mode minX > maxX is legal
// and means dateline crossing; in planar mode it is an error. NaN minX
// constructs the empty rectangle.
func (ctx *SpatialContext) MakeRectangle(minX, maxX, minY, maxY float64) (*Rectangle, error) {
	if math.IsNaN(minX) {
		return newRectangle(math.NaN(), math.NaN(), math.NaN(), math.NaN(), ctx), nil
	}
	wb := ctx.worldBounds
	if minY > maxY {
		return nil, invalidShapef("maxY must be >= minY: %v to %v", minY, maxY)
	}
	if minY < wb.MinY() || maxY > wb.MaxY() {
		return nil, invalidShapef("Y values [%v to %v] not in boundary %v", minY, maxY, wb)
	}
	if ctx.geo {
		if err := ctx.VerifyX(minX); err != nil {
			return nil, err
		}
		if err := ctx.VerifyX(maxX); err != nil {
			return nil, err
		}
	} else {
		if minX > maxX {
			return nil, invalidShapef("maxX must be >= minX: %v to %v", minX, maxX)
		}
		if minX < wb.MinX() || maxX > wb.MaxX() {
			return nil, invalidShapef("X values [%v to %v] not in boundary %v", minX, maxX, wb)
		}
	}
	return newRectangle(minX, maxX, minY, maxY, ctx), nil
}

// MakeCircle constructs a circle around center. The radius is in degrees for
// geodetic contexts and must be nonnegative; an empty center yields an empty
// circle with NaN radius.
func (ctx *SpatialContext) MakeCircle(center *Point, radius float64) (*Circle, error) {
	if radius < 0 {
		return nil, invalidShapef("circle radius must be >= 0: %v", radius)
	}
	if ctx.geo && radius > 180 {
		// a 180 degree radius already covers the whole sphere
		radius = 180
	}
	return newCircle(center, radius, ctx), nil
}

// MakeBufferedLine constructs a buffered line segment between two points.
func (ctx *SpatialContext) MakeBufferedLine(pA, pB *Point, buf float64) (*BufferedLine, error) {
	if buf < 0 {
		return nil, invalidShapef("line buffer must be >= 0: %v", buf)
	}
	return newBufferedLine(pA, pB, buf, ctx), nil
}

// MakeBufferedLineString constructs a buffered chain through points. In
// geodetic contexts each segment's buffer is widened for longitude skew.
func (ctx *SpatialContext) MakeBufferedLineString(points []*Point, buf float64) (*BufferedLineString, error) {
	if buf < 0 {
		return nil, invalidShapef("line buffer must be >= 0: %v", buf)
	}
	return newBufferedLineString(points, buf, ctx.geo, ctx), nil
}

// MakeCollection constructs a shape collection with an aggregate bounding
// box.
func (ctx *SpatialContext) MakeCollection(shapes []Shape) *ShapeCollection {
	return newShapeCollection(shapes, ctx)
}

// MakeGeometry wraps an external geometry object in a dateline-aware shape,
// applying the context's dateline, overlap, validation and indexing rules.
func (ctx *SpatialContext) MakeGeometry(g geom.Geom) (*GeomShape, error) {
	datelineCheck := ctx.geo && ctx.datelineRule != DatelineRuleNone
	s, err := NewGeomShape(g, ctx, datelineCheck, ctx.allowMultiOverlap)
	if err != nil {
		return nil, err
	}
	switch ctx.validationRule {
	case ValidationRuleNone:
	case ValidationRuleError:
		if err := s.Validate(); err != nil {
			return nil, err
		}
	case ValidationRuleRepairConvexHull, ValidationRuleRepairBuffer0:
		if err := s.Validate(); err != nil {
			repaired, rerr := repairGeometry(g, ctx.validationRule)
			if rerr != nil {
				return nil, err // repair failed; report the original problem
			}
			s, err = NewGeomShape(repaired, ctx, datelineCheck, ctx.allowMultiOverlap)
			if err != nil {
				return nil, err
			}
		}
	}
	if ctx.autoIndex {
		s.Index()
	}
	return s, nil
}
