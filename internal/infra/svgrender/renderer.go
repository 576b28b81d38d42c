// Package svgrender draws planform geometry as SVG using svgo.
package svgrender

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/aalvaropc/wingen/internal/domain"
	"github.com/aalvaropc/wingen/internal/ports"
)

const (
	OutlineStyle = "fill:white;stroke:black;stroke-width:1"
	ElevonStyle  = "fill:lightgray;stroke:black;stroke-width:1"
	HingeStyle   = "stroke:gray;stroke-width:1;stroke-dasharray:6,4"

	// fitMargin is the view box padding as a fraction of the geometry extent.
	fitMargin = 0.05
)

type Renderer struct{}

func New() *Renderer {
	return &Renderer{}
}

var _ ports.Renderer = (*Renderer)(nil)

func (r *Renderer) Format() string { return "svg" }

// Render writes one standalone SVG document: the wing outline, the closed elevon
// outline and the hinge line.
func (r *Renderer) Render(w io.Writer, g domain.DerivedGeometry, c domain.Canvas) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	if c.Fit {
		x, y, vw, vh := viewBox(g)
		canvas.Startview(c.Width, c.Height, x, y, vw, vh)
	} else {
		canvas.Start(c.Width, c.Height)
	}
	if c.Title != "" {
		canvas.Title(c.Title)
	}

	canvas.Gid("planform")
	xs, ys := ints(g.Outline)
	canvas.Polygon(xs, ys, OutlineStyle)
	canvas.Gend()

	if len(g.Elevon) > 0 {
		canvas.Gid("elevon")
		xs, ys = ints(g.Elevon)
		canvas.Polygon(xs, ys, ElevonStyle)
		canvas.Line(
			round(g.HingeRoot.X), round(g.HingeRoot.Y),
			round(g.HingeTip.X), round(g.HingeTip.Y),
			HingeStyle,
		)
		canvas.Gend()
	}

	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("svgrender: %w", ew.err)
	}
	return nil
}

// viewBox covers the outline, elevon and hinge with a small margin.
func viewBox(g domain.DerivedGeometry) (x, y, w, h int) {
	lo, hi := g.Bounds()
	for _, p := range []domain.Point{g.HingeRoot, g.HingeTip} {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}

	pad := fitMargin * max(hi.X-lo.X, hi.Y-lo.Y, 1)
	x = int(math.Floor(lo.X - pad))
	y = int(math.Floor(lo.Y - pad))
	w = int(math.Ceil(hi.X+pad)) - x
	h = int(math.Ceil(hi.Y+pad)) - y
	return x, y, w, h
}

func ints(poly domain.Polygon) ([]int, []int) {
	xs := make([]int, len(poly))
	ys := make([]int, len(poly))
	for i, p := range poly {
		xs[i] = round(p.X)
		ys[i] = round(p.Y)
	}
	return xs, ys
}

func round(v float64) int {
	return int(math.Round(v))
}

// errWriter keeps the first write error; svgo itself does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
