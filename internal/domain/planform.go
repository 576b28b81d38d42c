package domain

import (
	"fmt"
	"math"
)

// Range is a closed interval [Min, Max]. Min == Max is a valid single-point range.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		return fmt.Errorf("range bounds must be numbers: %w", ErrInvalidConfig)
	}
	if math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("range bounds must be finite: %w", ErrInvalidConfig)
	}
	if r.Min > r.Max {
		return fmt.Errorf("min %g > max %g: %w", r.Min, r.Max, ErrInvalidConfig)
	}
	return nil
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) Width() float64 {
	return r.Max - r.Min
}

// SamplerConfig bounds every independently drawn planform parameter.
// Angles are radians; elevon span/offset are fractions of the half-span.
type SamplerConfig struct {
	WingSpan             Range
	RootChord            Range
	TaperRatio           Range
	SweepbackAngle       Range
	DihedralAngle        Range
	WashoutAngle         Range
	ElevonChord          Range
	ElevonSpanFraction   Range
	ElevonOffsetFraction Range
}

// DefaultSamplerConfig returns the stock parameter ranges.
func DefaultSamplerConfig() SamplerConfig {
	return SamplerConfig{
		WingSpan:             Range{Min: 0, Max: 2},
		RootChord:            Range{Min: 0, Max: 1},
		TaperRatio:           Range{Min: 0, Max: 1},
		SweepbackAngle:       Range{Min: 0, Max: math.Pi / 2},
		DihedralAngle:        Range{Min: 0, Max: math.Pi / 2},
		WashoutAngle:         Range{Min: -math.Pi / 2, Max: math.Pi / 2},
		ElevonChord:          Range{Min: 0, Max: 1},
		ElevonSpanFraction:   Range{Min: 0.1, Max: 1},
		ElevonOffsetFraction: Range{Min: 0, Max: 0.5},
	}
}

// NamedRange pairs a range with its configuration key.
type NamedRange struct {
	Name  string
	Range Range
	// NonNegative is set for lengths, ratios and fractions.
	NonNegative bool
}

// Ranges lists the ranges in sampling order, keyed by their wingen.yaml names.
func (c SamplerConfig) Ranges() []NamedRange {
	return []NamedRange{
		{Name: "wing_span", Range: c.WingSpan, NonNegative: true},
		{Name: "root_chord", Range: c.RootChord, NonNegative: true},
		{Name: "taper_ratio", Range: c.TaperRatio, NonNegative: true},
		{Name: "sweepback_angle", Range: c.SweepbackAngle},
		{Name: "dihedral_angle", Range: c.DihedralAngle},
		{Name: "washout_angle", Range: c.WashoutAngle},
		{Name: "elevon_chord", Range: c.ElevonChord, NonNegative: true},
		{Name: "elevon_span_fraction", Range: c.ElevonSpanFraction, NonNegative: true},
		{Name: "elevon_offset_fraction", Range: c.ElevonOffsetFraction, NonNegative: true},
	}
}

// Validate reports the first range whose bounds are out of order, not finite,
// or negative where only non-negative values make sense.
func (c SamplerConfig) Validate() error {
	for _, nr := range c.Ranges() {
		err := nr.Range.Validate()
		if err == nil && nr.NonNegative && nr.Range.Min < 0 {
			err = fmt.Errorf("min %g must be >= 0: %w", nr.Range.Min, ErrInvalidConfig)
		}
		if err != nil {
			return &OpError{
				Op:   "sampler.validate",
				Kind: KindInvalidConfig,
				Err:  fmt.Errorf("range %s: %w", nr.Name, err),
			}
		}
	}
	return nil
}

// Planform is one complete wing design. Lengths are meters, angles radians.
type Planform struct {
	WingSpan       float64 `json:"wing_span"`
	RootChord      float64 `json:"root_chord"`
	TipChord       float64 `json:"tip_chord"`
	TaperRatio     float64 `json:"taper_ratio"`
	SweepbackAngle float64 `json:"sweepback_angle"`
	DihedralAngle  float64 `json:"dihedral_angle"`
	WashoutAngle   float64 `json:"washout_angle"`
	// ElevonChord is the fraction of local chord taken by the elevon.
	ElevonChord  float64 `json:"elevon_chord"`
	ElevonSpan   float64 `json:"elevon_span"`
	ElevonOffset float64 `json:"elevon_offset"`
}

func (p Planform) HalfSpan() float64 {
	return p.WingSpan / 2
}

// Parameter is one labelled planform value, in report order.
type Parameter struct {
	Key   string
	Label string
	Value float64
	Unit  string
}

func (p Planform) Parameters() []Parameter {
	return []Parameter{
		{"wing_span", "Wing Span", p.WingSpan, "m"},
		{"root_chord", "Root Chord", p.RootChord, "m"},
		{"tip_chord", "Tip Chord", p.TipChord, "m"},
		{"taper_ratio", "Taper Ratio", p.TaperRatio, "ratio"},
		{"sweepback_angle", "Sweepback Angle", p.SweepbackAngle, "rad"},
		{"dihedral_angle", "Dihedral Angle", p.DihedralAngle, "rad"},
		{"washout_angle", "Washout Angle", p.WashoutAngle, "rad"},
		{"elevon_chord", "Elevon Chord", p.ElevonChord, "chord"},
		{"elevon_span", "Elevon Span", p.ElevonSpan, "m"},
		{"elevon_offset", "Elevon Offset", p.ElevonOffset, "m"},
	}
}
