package domain

import (
	"errors"
	"time"
)

// DesignError is the structured, serializable form of a per-design failure.
type DesignError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// NewDesignError classifies err; unknown errors become KindExecution.
func NewDesignError(err error) *DesignError {
	if err == nil {
		return nil
	}
	kind := KindExecution
	var oe *OpError
	if errors.As(err, &oe) && oe.Kind != "" {
		kind = oe.Kind
	}
	return &DesignError{Kind: kind, Message: err.Error()}
}

// DesignResult is the outcome of generating one design in a batch.
type DesignResult struct {
	Index    int               `json:"index"`
	Planform Planform          `json:"planform"`
	Geometry *DerivedGeometry  `json:"geometry,omitempty"`
	Files    []string          `json:"files,omitempty"`
	Warnings []GeometryWarning `json:"warnings,omitempty"`
	Error    *DesignError      `json:"error,omitempty"`
}

func (d DesignResult) Failed() bool {
	return d.Error != nil
}

// BatchResult is the persisted record of one generate run.
type BatchResult struct {
	ID        string         `json:"id"`
	Seed      uint64         `json:"seed"`
	Scale     float64        `json:"scale"`
	Dir       string         `json:"dir,omitempty"`
	StartedAt time.Time      `json:"started_at"`
	EndedAt   time.Time      `json:"ended_at"`
	Designs   []DesignResult `json:"designs"`
}

func (b BatchResult) Failures() int {
	n := 0
	for _, d := range b.Designs {
		if d.Failed() {
			n++
		}
	}
	return n
}

func (b BatchResult) WarningCount() int {
	n := 0
	for _, d := range b.Designs {
		n += len(d.Warnings)
	}
	return n
}

// BatchRef is a lightweight pointer to a saved batch, as listed in the index.
type BatchRef struct {
	ID        string    `json:"id"`
	Dir       string    `json:"dir"`
	Manifest  string    `json:"manifest"`
	Count     int       `json:"count"`
	Failures  int       `json:"failures"`
	StartedAt time.Time `json:"started_at"`
}
