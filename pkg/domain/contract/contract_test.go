package contract_test

import (
	"testing"
	"time"

	"github.com/clauseguard/clausectl/pkg/domain/clause"
	"github.com/clauseguard/clausectl/pkg/domain/contract"
)

func TestPortfolio(t *testing.T) {
	contracts := []contract.Metadata{
		{
			ContractID: "c1", NumPages: 12, NumClauses: 5,
			ClauseTypesFound: []clause.Type{clause.Indemnity, clause.Termination},
		},
		{
			ContractID: "c2", NumPages: 3, NumClauses: 2,
			ClauseTypesFound: []clause.Type{clause.Termination, clause.Confidentiality},
		},
	}

	stats := contract.Portfolio(contracts)
	if stats.Contracts != 2 {
		t.Errorf("Contracts = %d", stats.Contracts)
	}
	if stats.Clauses != 7 {
		t.Errorf("Clauses = %d", stats.Clauses)
	}
	if stats.Pages != 15 {
		t.Errorf("Pages = %d", stats.Pages)
	}
	// Termination appears in both contracts but counts once.
	if stats.ClauseTypes != 3 {
		t.Errorf("ClauseTypes = %d, want 3 distinct", stats.ClauseTypes)
	}
}

func TestPortfolioEmpty(t *testing.T) {
	stats := contract.Portfolio(nil)
	if stats != (contract.PortfolioStats{}) {
		t.Errorf("stats = %+v, want zero", stats)
	}
}

func TestUploaded(t *testing.T) {
	cases := []struct {
		raw  string
		ok   bool
		want time.Time
	}{
		{"2026-08-01T10:00:00Z", true, time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)},
		{"2026-08-01T10:00:00+02:00", true, time.Date(2026, 8, 1, 10, 0, 0, 0, time.FixedZone("", 2*3600))},
		{"2026-08-01T10:00:00", true, time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)},
		{"2026-08-01T10:00:00.123456", true, time.Date(2026, 8, 1, 10, 0, 0, 123456000, time.UTC)},
		{"yesterday", false, time.Time{}},
		{"", false, time.Time{}},
	}
	for _, tc := range cases {
		m := contract.Metadata{UploadTimestamp: tc.raw}
		got, ok := m.Uploaded()
		if ok != tc.ok {
			t.Errorf("Uploaded(%q) ok = %v, want %v", tc.raw, ok, tc.ok)
			continue
		}
		if ok && !got.Equal(tc.want) {
			t.Errorf("Uploaded(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
