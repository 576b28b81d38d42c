package svgrender

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aalvaropc/wingen/internal/domain"
	"github.com/aalvaropc/wingen/internal/usecase/geometry"
)

func referenceGeometry(t *testing.T) domain.DerivedGeometry {
	t.Helper()
	g, err := geometry.Derive(domain.Planform{
		WingSpan:     2,
		RootChord:    1,
		TaperRatio:   0.5,
		TipChord:     0.5,
		ElevonChord:  0.2,
		ElevonSpan:   0.5,
		ElevonOffset: 0.25,
	}, geometry.DefaultScale)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	return g
}

func TestRender_DrawsOutlineElevonAndHinge(t *testing.T) {
	var buf bytes.Buffer
	err := New().Render(&buf, referenceGeometry(t), domain.Canvas{Width: 1100, Height: 850, Title: "wingen design 0"})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	out := buf.String()

	wants := []string{
		"<svg",
		`width="1100"`,
		`height="850"`,
		"<title>wingen design 0</title>",
		"1000,500",
		"250,700",
		"750,625",
		OutlineStyle,
		ElevonStyle,
		"stroke-dasharray",
		"</svg>",
	}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Fatalf("expected output to contain %q, got:\n%s", w, out)
		}
	}
	if n := strings.Count(out, "<polygon"); n != 2 {
		t.Fatalf("expected 2 polygons, got=%d", n)
	}
	if strings.Contains(out, "viewBox") {
		t.Fatalf("expected no viewBox without fit")
	}
}

func TestRender_FitAddsViewBox(t *testing.T) {
	var buf bytes.Buffer
	if err := New().Render(&buf, referenceGeometry(t), domain.Canvas{Width: 1100, Height: 850, Fit: true}); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(buf.String(), "viewBox") {
		t.Fatalf("expected viewBox, got:\n%s", buf.String())
	}
}

func TestViewBox_CoversGeometryWithMargin(t *testing.T) {
	x, y, w, h := viewBox(referenceGeometry(t))
	// geometry spans [0,1000] x [0,1000]; 5% margin = 50
	if x != -50 || y != -50 || w != 1100 || h != 1100 {
		t.Fatalf("expected (-50,-50,1100,1100), got=(%d,%d,%d,%d)", x, y, w, h)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_PropagatesWriteError(t *testing.T) {
	err := New().Render(failingWriter{}, referenceGeometry(t), domain.Canvas{Width: 10, Height: 10})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected write error, got: %v", err)
	}
}

func TestFormat(t *testing.T) {
	if New().Format() != "svg" {
		t.Fatalf("expected svg")
	}
}
