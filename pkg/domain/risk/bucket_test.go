package risk_test

import (
	"testing"

	"github.com/clauseguard/clausectl/pkg/domain/clause"
	"github.com/clauseguard/clausectl/pkg/domain/risk"
)

func mkFinding(s risk.Severity, deviation string) risk.Finding {
	return risk.Finding{ClauseType: clause.Indemnity, Severity: s, Deviation: deviation}
}

func TestBucketBySeverity(t *testing.T) {
	findings := []risk.Finding{
		mkFinding(risk.SeverityMedium, "m1"),
		mkFinding(risk.SeverityHigh, "h1"),
		mkFinding(risk.SeverityInfo, "i1"),
		mkFinding(risk.SeverityMedium, "m2"),
		mkFinding(risk.SeverityLow, "l1"),
	}

	b := risk.BucketBySeverity(findings)

	tabTotal := b.Counts[risk.SeverityHigh] + b.Counts[risk.SeverityMedium] + b.Counts[risk.SeverityLow]
	if tabTotal != 4 {
		t.Errorf("tab counts sum to %d, want 4 (info excluded)", tabTotal)
	}

	// Relative order within a bucket matches input order.
	medium := b.Bucket(risk.SeverityMedium)
	if len(medium) != 2 || medium[0].Deviation != "m1" || medium[1].Deviation != "m2" {
		t.Errorf("medium bucket out of order: %v", medium)
	}

	// Info findings stay out of the tab set but are still bucketed for
	// anything that needs the full partition.
	for _, s := range risk.TabSeverities() {
		if s == risk.SeverityInfo {
			t.Errorf("info must not be a selectable tab")
		}
	}
}

func TestDefaultTab(t *testing.T) {
	cases := []struct {
		name     string
		findings []risk.Finding
		want     risk.Severity
	}{
		{"high present", []risk.Finding{mkFinding(risk.SeverityHigh, ""), mkFinding(risk.SeverityLow, "")}, risk.SeverityHigh},
		{"medium only", []risk.Finding{mkFinding(risk.SeverityMedium, ""), mkFinding(risk.SeverityMedium, ""), mkFinding(risk.SeverityMedium, "")}, risk.SeverityMedium},
		{"low only", []risk.Finding{mkFinding(risk.SeverityLow, "")}, risk.SeverityLow},
		{"all empty", nil, risk.SeverityHigh},
		{"info only", []risk.Finding{mkFinding(risk.SeverityInfo, "")}, risk.SeverityHigh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := risk.BucketBySeverity(tc.findings)
			if got := b.DefaultTab(); got != tc.want {
				t.Errorf("DefaultTab() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestDefaultTabEmptyDoesNotPanic(t *testing.T) {
	b := risk.BucketBySeverity(nil)
	def := b.DefaultTab()
	if got := b.Bucket(def); len(got) != 0 {
		t.Errorf("empty default bucket should render empty, got %v", got)
	}
}
