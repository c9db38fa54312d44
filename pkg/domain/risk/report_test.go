package risk_test

import (
	"encoding/json"
	"testing"

	"github.com/clauseguard/clausectl/pkg/domain/risk"
)

func TestReportValidate(t *testing.T) {
	report := risk.Report{
		Findings: []risk.Finding{
			mkFinding(risk.SeverityHigh, ""),
			mkFinding(risk.SeverityMedium, ""),
			mkFinding(risk.SeverityMedium, ""),
			mkFinding(risk.SeverityInfo, ""),
		},
		NumHigh:   1,
		NumMedium: 2,
		NumLow:    0,
	}
	if err := report.Validate(); err != nil {
		t.Errorf("consistent report flagged: %v", err)
	}

	report.NumHigh = 3
	if err := report.Validate(); err == nil {
		t.Errorf("expected mismatch between counters and findings")
	}
}

func TestFindingDecodeRejectsUnknownSeverity(t *testing.T) {
	payload := `{"clause_type": "indemnity", "severity": "catastrophic"}`
	var f risk.Finding
	if err := json.Unmarshal([]byte(payload), &f); err == nil {
		t.Errorf("expected error for unknown severity enumerant")
	}
}
