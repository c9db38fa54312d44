package risk

import (
	"fmt"

	"github.com/clauseguard/clausectl/pkg/domain/clause"
)

// Finding is a single detected deviation from an expected clause. Findings
// carry no identity; list position is display order.
type Finding struct {
	ClauseType     clause.Type `json:"clause_type"`
	Severity       Severity    `json:"severity"`
	ClauseText     string      `json:"clause_text"`
	TemplateText   string      `json:"template_text"`
	Deviation      string      `json:"deviation"`
	Risk           string      `json:"risk"`
	Recommendation string      `json:"recommendation"`
	Confidence     float64     `json:"confidence"`
}

// Report is the full compliance review for one contract.
type Report struct {
	ContractID             string               `json:"contract_id"`
	ContractFilename       string               `json:"contract_filename"`
	OverallRiskScore       float64              `json:"overall_risk_score"`
	Summary                string               `json:"summary"`
	Findings               []Finding            `json:"findings"`
	Coverage               map[clause.Type]bool `json:"coverage"`
	MissingRequiredClauses []clause.Type        `json:"missing_required_clauses"`
	NumHigh                int                  `json:"num_high"`
	NumMedium              int                  `json:"num_medium"`
	NumLow                 int                  `json:"num_low"`
}

// Validate cross-checks the report's severity counters against the counts
// derivable from its findings. A mismatch does not make the report
// unusable; callers surface it as a diagnostic and render anyway.
func (r Report) Validate() error {
	b := BucketBySeverity(r.Findings)
	if r.NumHigh != b.Counts[SeverityHigh] || r.NumMedium != b.Counts[SeverityMedium] || r.NumLow != b.Counts[SeverityLow] {
		return fmt.Errorf("severity counters disagree with findings: reported %d/%d/%d, derived %d/%d/%d",
			r.NumHigh, r.NumMedium, r.NumLow,
			b.Counts[SeverityHigh], b.Counts[SeverityMedium], b.Counts[SeverityLow])
	}
	return nil
}
