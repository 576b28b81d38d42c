package geometry

import (
	"fmt"
	"math"

	"github.com/aalvaropc/wingen/internal/domain"
)

// spanEpsilon is the smallest spanwise separation, in drawing units, for which
// a two-point line fit is still considered defined.
const spanEpsilon = 1e-9

// FitLine returns the unique line through p1 and p2. Points that share an X
// (within spanEpsilon) yield a DegenerateGeometryError instead of a division by zero.
func FitLine(p1, p2 domain.Point) (domain.Line, error) {
	det := p1.X - p2.X
	if math.Abs(det) < spanEpsilon || math.IsNaN(det) {
		return domain.Line{}, &domain.OpError{
			Op:   "geometry.fit_line",
			Kind: domain.KindDegenerateGeometry,
			Err:  fmt.Errorf("points (%g,%g) and (%g,%g) share a span station: %w", p1.X, p1.Y, p2.X, p2.Y, domain.ErrDegenerateGeometry),
		}
	}

	return domain.Line{
		Slope:     (p1.Y - p2.Y) / det,
		Intercept: (p1.X*p2.Y - p2.X*p1.Y) / det,
	}, nil
}
