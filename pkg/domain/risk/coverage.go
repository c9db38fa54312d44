package risk

import "github.com/clauseguard/clausectl/pkg/domain/clause"

// CoverageStatus is the per-type display state on the coverage map.
type CoverageStatus int

const (
	CoverageNotFound CoverageStatus = iota
	CoverageMissingRequired
	CoverageFound
)

// Label returns the display name for the status.
func (s CoverageStatus) Label() string {
	switch s {
	case CoverageFound:
		return "Present"
	case CoverageMissingRequired:
		return "Missing (required)"
	default:
		return "Not found"
	}
}

// EvaluateCoverage resolves a display status for every coverable clause
// type, whether or not it appears in the inputs. An absent coverage key
// reads as false. Found is checked before missing-required, so a type the
// service reports both found and missing renders as Found.
func EvaluateCoverage(coverage map[clause.Type]bool, missingRequired []clause.Type) map[clause.Type]CoverageStatus {
	missing := make(map[clause.Type]struct{}, len(missingRequired))
	for _, t := range missingRequired {
		missing[t] = struct{}{}
	}

	out := make(map[clause.Type]CoverageStatus, len(clause.Coverable()))
	for _, t := range clause.Coverable() {
		if coverage[t] {
			out[t] = CoverageFound
		} else if _, required := missing[t]; required {
			out[t] = CoverageMissingRequired
		} else {
			out[t] = CoverageNotFound
		}
	}
	return out
}
