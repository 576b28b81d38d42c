// Package report prints sampled planform parameters to the terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/wingen/internal/domain"
	"github.com/aalvaropc/wingen/internal/ports"
)

type Format string

const (
	FormatPretty Format = "pretty"
	FormatPlain  Format = "plain"
	FormatJSON   Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPretty, FormatPlain, FormatJSON:
		return f, nil
	case "":
		return FormatPretty, nil
	}
	return "", domain.InvalidConfig("report.format", "format", fmt.Sprintf("unknown format %q (want pretty, plain or json)", s))
}

type styles struct {
	header lipgloss.Style
	label  lipgloss.Style
	unit   lipgloss.Style
	block  lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		label:  lipgloss.NewStyle().Bold(true).Width(16),
		unit:   lipgloss.NewStyle().Faint(true),
		block: lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("63")),
	}
}

// Reporter writes one block per design. Each block is written with a single
// Write call, so concurrent designs never interleave within a block.
type Reporter struct {
	mu     sync.Mutex
	w      io.Writer
	format Format
	styles styles
}

func New(w io.Writer, format Format) *Reporter {
	return &Reporter{w: w, format: format, styles: defaultStyles()}
}

var _ ports.Reporter = (*Reporter)(nil)

func (r *Reporter) Report(index int, p domain.Planform) error {
	var (
		out string
		err error
	)
	switch r.format {
	case FormatJSON:
		out, err = jsonLine(index, p)
	case FormatPlain:
		out = plainBlock(index, p)
	default:
		out = r.prettyBlock(index, p)
	}
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	_, err = io.WriteString(r.w, out)
	return err
}

func plainBlock(index int, p domain.Planform) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Design %d\n", index)
	for _, prm := range p.Parameters() {
		fmt.Fprintf(&b, "%s:\t%s (%s)\n", prm.Label, formatValue(prm.Value), prm.Unit)
	}
	b.WriteString("\n")
	return b.String()
}

func (r *Reporter) prettyBlock(index int, p domain.Planform) string {
	lines := make([]string, 0, len(p.Parameters())+1)
	lines = append(lines, r.styles.header.Render(fmt.Sprintf("Design %d", index)))
	for _, prm := range p.Parameters() {
		lines = append(lines, r.styles.label.Render(prm.Label)+" "+formatValue(prm.Value)+" "+r.styles.unit.Render(prm.Unit))
	}
	return r.styles.block.Render(strings.Join(lines, "\n")) + "\n\n"
}

func jsonLine(index int, p domain.Planform) (string, error) {
	b, err := json.Marshal(struct {
		Index    int             `json:"index"`
		Planform domain.Planform `json:"planform"`
	}{index, p})
	if err != nil {
		return "", fmt.Errorf("report: marshal design %d: %w", index, err)
	}
	return string(b) + "\n", nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
