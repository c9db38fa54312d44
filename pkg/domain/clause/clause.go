// Package clause defines the closed clause-type taxonomy used across the
// ClauseGuard API and the view derivations built on top of it.
package clause

import "fmt"

// Type identifies a fixed category of contractual clause.
type Type string

const (
	Indemnity       Type = "indemnity"
	LiabilityCap    Type = "liability_cap"
	Termination     Type = "termination"
	Confidentiality Type = "confidentiality"
	IPAssignment    Type = "ip_assignment"
	GoverningLaw    Type = "governing_law"
	DataProtection  Type = "data_protection"
	ForceMajeure    Type = "force_majeure"
	Other           Type = "other"
)

var all = []Type{
	Indemnity,
	LiabilityCap,
	Termination,
	Confidentiality,
	IPAssignment,
	GoverningLaw,
	DataProtection,
	ForceMajeure,
	Other,
}

var labels = map[Type]string{
	Indemnity:       "Indemnity",
	LiabilityCap:    "Liability Cap",
	Termination:     "Termination",
	Confidentiality: "Confidentiality",
	IPAssignment:    "IP Assignment",
	GoverningLaw:    "Governing Law",
	DataProtection:  "Data Protection",
	ForceMajeure:    "Force Majeure",
	Other:           "Other",
}

// All returns every clause type in canonical display order.
func All() []Type {
	out := make([]Type, len(all))
	copy(out, all)
	return out
}

// Coverable returns the clause types that participate in coverage display.
// "other" is a catch-all bucket and is never a coverage target.
func Coverable() []Type {
	out := make([]Type, 0, len(all)-1)
	for _, t := range all {
		if t != Other {
			out = append(out, t)
		}
	}
	return out
}

// Valid reports whether t is a member of the closed taxonomy.
func (t Type) Valid() bool {
	_, ok := labels[t]
	return ok
}

// Label returns the human-readable display name for t.
func (t Type) Label() string {
	if l, ok := labels[t]; ok {
		return l
	}
	return string(t)
}

func (t Type) String() string { return string(t) }

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown enumerants
// from the collaborator are rejected at the decode boundary rather than
// passed through silently.
func (t *Type) UnmarshalText(text []byte) error {
	v := Type(text)
	if !v.Valid() {
		return fmt.Errorf("unknown clause type %q", string(text))
	}
	*t = v
	return nil
}
