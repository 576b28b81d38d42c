package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/wingen/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func designTitle(d domain.DesignResult) string {
	status := "OK"
	switch {
	case d.Failed():
		status = "FAIL"
	case len(d.Warnings) > 0:
		status = "WARN"
	}
	return fmt.Sprintf("Design %d [%s]", d.Index, status)
}

func designSummary(d domain.DesignResult) string {
	if d.Failed() {
		return clampString(string(d.Error.Kind)+": "+d.Error.Message, 48)
	}
	p := d.Planform
	return fmt.Sprintf("span %.3f m, taper %.3f", p.WingSpan, p.TaperRatio)
}

func renderDesignDetails(t Theme, d domain.DesignResult) string {
	var b strings.Builder

	b.WriteString(t.Title.Render(designTitle(d)))
	b.WriteString("\n\n")

	if d.Error != nil {
		b.WriteString(t.Error.Render("Error:"))
		b.WriteString("\n  - kind: ")
		b.WriteString(string(d.Error.Kind))
		b.WriteString("\n  - msg: ")
		b.WriteString(d.Error.Message)
		b.WriteString("\n\n")
	}

	b.WriteString("Parameters:\n")
	for _, prm := range d.Planform.Parameters() {
		fmt.Fprintf(&b, "  %-16s %10.4f %s\n", prm.Label, prm.Value, t.Subtitle.Render(prm.Unit))
	}

	if len(d.Warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, w := range d.Warnings {
			b.WriteString("  - ")
			b.WriteString(t.Warn.Render(w.String()))
			b.WriteString("\n")
		}
	}

	if d.Geometry != nil {
		g := d.Geometry
		fmt.Fprintf(&b, "\nGeometry (scale %.0f):\n", g.Scale)
		fmt.Fprintf(&b, "  half span %.1f, tip LE %.1f, tip TE %.1f\n", g.HalfSpan, g.TipLE, g.TipTE)
		fmt.Fprintf(&b, "  hinge y = %.4f·x + %.1f\n", g.Hinge.Slope, g.Hinge.Intercept)
	}

	if len(d.Files) > 0 {
		b.WriteString("\nFiles:\n")
		for _, f := range d.Files {
			b.WriteString("  - ")
			b.WriteString(filepath.Base(f))
			b.WriteString("\n")
		}
	}

	return b.String()
}
