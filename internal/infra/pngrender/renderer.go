// Package pngrender rasterises planform geometry into PNG previews with gogpu/gg.
package pngrender

import (
	"fmt"
	"image/png"
	"io"

	"github.com/gogpu/gg"

	"github.com/aalvaropc/wingen/internal/domain"
	"github.com/aalvaropc/wingen/internal/ports"
)

const fitMargin = 0.05

type Renderer struct{}

func New() *Renderer {
	return &Renderer{}
}

var _ ports.Renderer = (*Renderer)(nil)

func (r *Renderer) Format() string { return "png" }

// Render draws the same primitives as the SVG renderer on a white software canvas.
func (r *Renderer) Render(w io.Writer, g domain.DerivedGeometry, c domain.Canvas) error {
	dc := gg.NewContext(c.Width, c.Height)
	defer dc.Close()

	dc.ClearWithColor(gg.White)

	if c.Fit {
		scale, dx, dy := fitTransform(g, c)
		dc.Translate(dx, dy)
		dc.Scale(scale, scale)
	}

	tracePolygon(dc, g.Outline)
	dc.SetRGB(1, 1, 1)
	if err := dc.FillPreserve(); err != nil {
		return fmt.Errorf("pngrender: fill outline: %w", err)
	}
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("pngrender: stroke outline: %w", err)
	}

	if len(g.Elevon) > 0 {
		tracePolygon(dc, g.Elevon)
		dc.SetRGB(0.83, 0.83, 0.83)
		if err := dc.FillPreserve(); err != nil {
			return fmt.Errorf("pngrender: fill elevon: %w", err)
		}
		dc.SetRGB(0, 0, 0)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("pngrender: stroke elevon: %w", err)
		}

		dc.SetRGB(0.5, 0.5, 0.5)
		dc.SetDash(6, 4)
		dc.DrawLine(g.HingeRoot.X, g.HingeRoot.Y, g.HingeTip.X, g.HingeTip.Y)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("pngrender: stroke hinge: %w", err)
		}
	}

	if err := png.Encode(w, dc.Image()); err != nil {
		return fmt.Errorf("pngrender: encode: %w", err)
	}
	return nil
}

func tracePolygon(dc *gg.Context, poly domain.Polygon) {
	for i, p := range poly {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
			continue
		}
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
}

// fitTransform maps the geometry bounds, plus margin, into the canvas while
// keeping the aspect ratio.
func fitTransform(g domain.DerivedGeometry, c domain.Canvas) (scale, dx, dy float64) {
	lo, hi := g.Bounds()
	w := max(hi.X-lo.X, 1)
	h := max(hi.Y-lo.Y, 1)
	pad := fitMargin * max(w, h)

	scale = min(float64(c.Width)/(w+2*pad), float64(c.Height)/(h+2*pad))
	dx = (pad - lo.X) * scale
	dy = (pad - lo.Y) * scale
	return scale, dx, dy
}
