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
	"strings"

	"github.com/spf13/cast"
)

// DatelineRule controls how an ambiguous polygon or rectangle spanning more
// than 180 degrees of longitude is interpreted in geodetic mode.
type DatelineRule int

const (
	// DatelineRuleNone reads coordinates literally; nothing crosses the
	// dateline.
	DatelineRuleNone DatelineRule = iota
	// DatelineRuleWidth180 treats a jump of more than 180 degrees between
	// consecutive vertices as a dateline crossing the short way around.
	DatelineRuleWidth180
	// DatelineRuleCcwRect interprets a rectangle-shaped polygon whose
	// vertices wind counter-clockwise as crossing the dateline.
	DatelineRuleCcwRect
)

func (r DatelineRule) String() string {
	switch r {
	case DatelineRuleNone:
		return "none"
	case DatelineRuleWidth180:
		return "width180"
	case DatelineRuleCcwRect:
		return "counterClockwiseRectangle"
	default:
		return fmt.Sprintf("DatelineRule(%d)", int(r))
	}
}

// ParseDatelineRule converts a configuration string to a DatelineRule.
func ParseDatelineRule(s string) (DatelineRule, error) {
	for _, r := range []DatelineRule{DatelineRuleNone, DatelineRuleWidth180, DatelineRuleCcwRect} {
		if strings.EqualFold(s, r.String()) {
			return r, nil
		}
	}
	return DatelineRuleNone, fmt.Errorf("spatial4n.ParseDatelineRule: unknown rule %q", s)
}

// ValidationRule controls what MakeGeometry does with a geometry that fails
// the validity check.
type ValidationRule int

const (
	// ValidationRuleNone skips validation entirely.
	ValidationRuleNone ValidationRule = iota
	// ValidationRuleError rejects invalid geometries with an error.
	ValidationRuleError
	// ValidationRuleRepairConvexHull replaces an invalid geometry with the
	// convex hull of its vertices.
	ValidationRuleRepairConvexHull
	// ValidationRuleRepairBuffer0 resolves self-intersections with a
	// zero-distance buffer equivalent.
	ValidationRuleRepairBuffer0
)

func (r ValidationRule) String() string {
	switch r {
	case ValidationRuleNone:
		return "none"
	case ValidationRuleError:
		return "error"
	case ValidationRuleRepairConvexHull:
		return "repairConvexHull"
	case ValidationRuleRepairBuffer0:
		return "repairBuffer0"
	default:
		return fmt.Sprintf("ValidationRule(%d)", int(r))
	}
}

// ParseValidationRule converts a configuration string to a ValidationRule.
func ParseValidationRule(s string) (ValidationRule, error) {
	for _, r := range []ValidationRule{ValidationRuleNone, ValidationRuleError,
		ValidationRuleRepairConvexHull, ValidationRuleRepairBuffer0} {
		if strings.EqualFold(s, r.String()) {
			return r, nil
		}
	}
	return ValidationRuleNone, fmt.Errorf("spatial4n.ParseValidationRule: unknown rule %q", s)
}

// ParseDistanceCalculator returns the named calculator. Recognized names are
// haversine, lawOfCosines, vincentySphere, cartesian and cartesian^2.
func ParseDistanceCalculator(name string) (DistanceCalculator, error) {
	switch {
	case strings.EqualFold(name, "haversine"):
		return NewHaversineCalculator(), nil
	case strings.EqualFold(name, "lawOfCosines"):
		return NewLawOfCosinesCalculator(), nil
	case strings.EqualFold(name, "vincentySphere"):
		return NewVincentySphereCalculator(), nil
	case strings.EqualFold(name, "cartesian"):
		return NewCartesianCalculator(), nil
	case strings.EqualFold(name, "cartesian^2"):
		return NewCartesianSquaredCalculator(), nil
	default:
		return nil, fmt.Errorf("spatial4n.ParseDistanceCalculator: unknown calculator %q", name)
	}
}

// SpatialContextFactory assembles a SpatialContext from configuration.
// Zero-value fields fall back to geodetic defaults in NewSpatialContext.
type SpatialContextFactory struct {
	IsGeo             bool
	Calculator        DistanceCalculator
	WorldBounds       *Rectangle
	NormWrapLongitude bool
	DatelineRule      DatelineRule
	ValidationRule    ValidationRule
	AutoIndex         bool
	AllowMultiOverlap bool
	CircleSegments    int
}

// NewSpatialContextFactory returns a factory configured for the common
// geodetic setup.
func NewSpatialContextFactory() *SpatialContextFactory {
	return &SpatialContextFactory{
		IsGeo:          true,
		DatelineRule:   DatelineRuleWidth180,
		CircleSegments: defaultCircleSegments,
	}
}

// factoryOptions maps configuration keys to the setters that apply them.
// Unknown keys are rejected by Apply.
var factoryOptions = map[string]func(f *SpatialContextFactory, v string) error{
	"IsGeo": func(f *SpatialContextFactory, v string) error {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return err
		}
		f.IsGeo = b
		return nil
	},
	"DistanceCalculator": func(f *SpatialContextFactory, v string) error {
		dc, err := ParseDistanceCalculator(v)
		if err != nil {
			return err
		}
		f.Calculator = dc
		return nil
	},
	"WorldBounds": func(f *SpatialContextFactory, v string) error {
		r, err := parseEnvelopeBounds(v)
		if err != nil {
			return err
		}
		f.WorldBounds = r
		return nil
	},
	"NormWrapLongitude": func(f *SpatialContextFactory, v string) error {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return err
		}
		f.NormWrapLongitude = b
		return nil
	},
	"DatelineRule": func(f *SpatialContextFactory, v string) error {
		r, err := ParseDatelineRule(v)
		if err != nil {
			return err
		}
		f.DatelineRule = r
		return nil
	},
	"ValidationRule": func(f *SpatialContextFactory, v string) error {
		r, err := ParseValidationRule(v)
		if err != nil {
			return err
		}
		f.ValidationRule = r
		return nil
	},
	"AutoIndex": func(f *SpatialContextFactory, v string) error {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return err
		}
		f.AutoIndex = b
		return nil
	},
	"AllowMultiOverlap": func(f *SpatialContextFactory, v string) error {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return err
		}
		f.AllowMultiOverlap = b
		return nil
	},
	"CircleSegments": func(f *SpatialContextFactory, v string) error {
		n, err := cast.ToIntE(v)
		if err != nil {
			return err
		}
		if n < 4 {
			return fmt.Errorf("need at least 4 segments, got %d", n)
		}
		f.CircleSegments = n
		return nil
	},
}

// Apply sets factory fields from a string configuration map, rejecting
// unknown keys.
func (f *SpatialContextFactory) Apply(config map[string]string) error {
	for key, val := range config {
		set, ok := factoryOptions[key]
		if !ok {
			return fmt.Errorf("spatial4n.SpatialContextFactory: unknown option %q", key)
		}
		if err := set(f, val); err != nil {
			return fmt.Errorf("spatial4n.SpatialContextFactory: option %q: %v", key, err)
		}
	}
	return nil
}

// NewSpatialContext builds the context the factory describes.
func (f *SpatialContextFactory) NewSpatialContext() *SpatialContext {
	var ctx *SpatialContext
	if f.IsGeo {
		ctx = NewGeoContext()
	} else {
		ctx = NewPlanarContext()
	}
	if f.Calculator != nil {
		ctx.calc = f.Calculator
	}
	if f.WorldBounds != nil {
		wb := *f.WorldBounds
		wb.ctx = ctx
		ctx.worldBounds = &wb
	}
	ctx.normWrapLongitude = f.NormWrapLongitude
	ctx.datelineRule = f.DatelineRule
	ctx.validationRule = f.ValidationRule
	ctx.autoIndex = f.AutoIndex
	ctx.allowMultiOverlap = f.AllowMultiOverlap
	if f.CircleSegments >= 4 {
		ctx.circleSegments = f.CircleSegments
	}
	return ctx
}

// MakeSpatialContext builds a context directly from a configuration map.
func MakeSpatialContext(config map[string]string) (*SpatialContext, error) {
	f := NewSpatialContextFactory()
	if err := f.Apply(config); err != nil {
		return nil, err
	}
	return f.NewSpatialContext(), nil
}

// parseEnvelopeBounds reads world bounds in the ENVELOPE(minX, maxX, maxY,
// minY) form.
func parseEnvelopeBounds(s string) (*Rectangle, error) {
	body := strings.TrimSpace(s)
	upper := strings.ToUpper(body)
	if !strings.HasPrefix(upper, "ENVELOPE") {
		return nil, fmt.Errorf("world bounds must be an ENVELOPE, got %q", s)
	}
	body = strings.TrimSpace(body[len("ENVELOPE"):])
	if len(body) < 2 || body[0] != '(' || body[len(body)-1] != ')' {
		return nil, fmt.Errorf("malformed ENVELOPE %q", s)
	}
	fields := strings.Split(body[1:len(body)-1], ",")
	if len(fields) != 4 {
		return nil, fmt.Errorf("ENVELOPE needs 4 ordinates, got %d", len(fields))
	}
	vals := make([]float64, 4)
	for i, field := range fields {
		v, err := cast.ToFloat64E(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("ENVELOPE ordinate %d: %v", i, err)
		}
		vals[i] = v
	}
	minX, maxX, maxY, minY := vals[0], vals[1], vals[2], vals[3]
	if minY > maxY {
		return nil, fmt.Errorf("ENVELOPE minY %v > maxY %v", minY, maxY)
	}
	return newRectangle(minX, maxX, minY, maxY, nil), nil
}

const defaultCircleSegments = 64
