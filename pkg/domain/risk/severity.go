// Package risk holds the compliance-review entities and the pure
// derivations that turn a risk report into renderable view state: score
// banding, severity bucketing, and coverage evaluation.
package risk

import "fmt"

// Severity classifies how serious a finding is.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
	SeverityInfo   Severity = "info"
)

// Severities lists all severities in descending display priority.
func Severities() []Severity {
	return []Severity{SeverityHigh, SeverityMedium, SeverityLow, SeverityInfo}
}

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow, SeverityInfo:
		return true
	}
	return false
}

// Label returns the capitalized display name.
func (s Severity) Label() string {
	switch s {
	case SeverityHigh:
		return "High"
	case SeverityMedium:
		return "Medium"
	case SeverityLow:
		return "Low"
	case SeverityInfo:
		return "Info"
	}
	return string(s)
}

func (s Severity) String() string { return string(s) }

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, rejecting unknown
// enumerants at the decode boundary.
func (s *Severity) UnmarshalText(text []byte) error {
	v := Severity(text)
	if !v.Valid() {
		return fmt.Errorf("unknown severity %q", string(text))
	}
	*s = v
	return nil
}
