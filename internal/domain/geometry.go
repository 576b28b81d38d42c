package domain

// Point is a 2D coordinate in drawing units: X runs spanwise from the root,
// Y runs chordwise from the root leading edge.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon is an implicitly closed vertex list.
type Polygon []Point

// Line is y = Slope*x + Intercept.
type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// DerivedGeometry is the drawable form of a Planform at a given scale.
type DerivedGeometry struct {
	Scale    float64 `json:"scale"`
	HalfSpan float64 `json:"half_span"`
	RootTE   float64 `json:"root_te"`
	TipLE    float64 `json:"tip_le"`
	TipTE    float64 `json:"tip_te"`

	Outline Polygon `json:"outline"`

	HingeRoot Point `json:"hinge_root"`
	HingeTip  Point `json:"hinge_tip"`
	Hinge     Line  `json:"hinge"`

	Elevon Polygon `json:"elevon"`

	Warnings []GeometryWarning `json:"-"`
}

// Bounds returns the min and max corners over all outline and elevon vertices.
func (g DerivedGeometry) Bounds() (Point, Point) {
	var lo, hi Point
	first := true
	for _, poly := range []Polygon{g.Outline, g.Elevon} {
		for _, p := range poly {
			if first {
				lo, hi = p, p
				first = false
				continue
			}
			lo.X = min(lo.X, p.X)
			lo.Y = min(lo.Y, p.Y)
			hi.X = max(hi.X, p.X)
			hi.Y = max(hi.Y, p.Y)
		}
	}
	return lo, hi
}

// Canvas is the target drawing size in drawing units.
type Canvas struct {
	Width  int
	Height int
	// Fit adds a view box covering the geometry, so large designs are not clipped.
	Fit bool
	// Title is embedded in formats that support it.
	Title string
}
