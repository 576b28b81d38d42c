// Package geometry turns a planform into drawing coordinates.
//
// Drawing space has X along the span (root at 0, tip at HalfSpan) and Y along
// the chord (root leading edge at 0, increasing towards the trailing edge).
// One half of the wing is drawn; the other half is its mirror image.
package geometry

import (
	"fmt"
	"math"

	"github.com/aalvaropc/wingen/internal/domain"
)

// DefaultScale converts meters to drawing units.
const DefaultScale = 1000

// Derive computes the outline, hinge line and elevon outline of p at the given
// scale. It is a pure function of its inputs.
//
// Elevon stations that fall outside [0, HalfSpan] are clamped to the outline and
// reported as out-of-bounds warnings on the result.
func Derive(p domain.Planform, scale float64) (domain.DerivedGeometry, error) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return domain.DerivedGeometry{}, domain.InvalidConfig("geometry.derive", "scale", fmt.Sprintf("must be > 0, got %g", scale))
	}

	g := domain.DerivedGeometry{Scale: scale}

	g.HalfSpan = p.HalfSpan() * scale
	g.RootTE = p.RootChord * scale
	g.TipLE = math.Sin(p.DihedralAngle) * g.HalfSpan
	g.TipTE = g.TipLE + p.TipChord*scale

	g.Outline = domain.Polygon{
		{X: 0, Y: 0},
		{X: g.HalfSpan, Y: g.TipLE},
		{X: g.HalfSpan, Y: g.TipTE},
		{X: 0, Y: g.RootTE},
	}

	g.HingeRoot = domain.Point{X: 0, Y: (1 - p.ElevonChord) * p.RootChord * scale}
	g.HingeTip = domain.Point{X: g.HalfSpan, Y: (1-p.ElevonChord)*p.TipChord*scale + g.TipLE}

	hinge, err := FitLine(g.HingeRoot, g.HingeTip)
	if err != nil {
		return domain.DerivedGeometry{}, &domain.OpError{
			Op:   "geometry.derive",
			Kind: domain.KindDegenerateGeometry,
			Err:  fmt.Errorf("hinge line for wing span %g m: %w", p.WingSpan, err),
		}
	}
	g.Hinge = hinge

	// Same X as the hinge points, so this cannot fail once the hinge fit succeeded.
	te, err := FitLine(domain.Point{X: 0, Y: g.RootTE}, domain.Point{X: g.HalfSpan, Y: g.TipTE})
	if err != nil {
		return domain.DerivedGeometry{}, err
	}

	rootX := g.HalfSpan - (p.ElevonSpan+p.ElevonOffset)*scale
	tipX := g.HalfSpan - p.ElevonOffset*scale
	rootX = clampStation(&g, "elevon_root_le_x", rootX)
	tipX = clampStation(&g, "elevon_tip_le_x", tipX)

	g.Elevon = domain.Polygon{
		{X: rootX, Y: hinge.At(rootX)},
		{X: tipX, Y: hinge.At(tipX)},
		{X: tipX, Y: te.At(tipX)},
		{X: rootX, Y: te.At(rootX)},
	}

	return g, nil
}

// clampStation pins a spanwise station to [0, HalfSpan], recording a warning
// when it had to move.
func clampStation(g *domain.DerivedGeometry, field string, x float64) float64 {
	clamped := min(max(x, 0), g.HalfSpan)
	if clamped == x {
		return x
	}
	g.Warnings = append(g.Warnings, domain.GeometryWarning{
		Kind:    domain.WarningOutOfBounds,
		Field:   field,
		Value:   x,
		Clamped: clamped,
		Message: fmt.Sprintf("%s=%.3f outside wing outline [0, %.3f], clamped to %.3f", field, x, g.HalfSpan, clamped),
	})
	return clamped
}
