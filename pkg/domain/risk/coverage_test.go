package risk_test

import (
	"testing"

	"github.com/clauseguard/clausectl/pkg/domain/clause"
	"github.com/clauseguard/clausectl/pkg/domain/risk"
)

func TestEvaluateCoverage(t *testing.T) {
	coverage := map[clause.Type]bool{
		clause.Indemnity:    true,
		clause.Termination:  false,
		clause.GoverningLaw: true,
	}
	missing := []clause.Type{clause.Termination, clause.LiabilityCap}

	statuses := risk.EvaluateCoverage(coverage, missing)

	// Every coverable type gets exactly one status, even types absent
	// from both inputs.
	if len(statuses) != len(clause.Coverable()) {
		t.Fatalf("got %d statuses, want %d", len(statuses), len(clause.Coverable()))
	}
	if _, ok := statuses[clause.Other]; ok {
		t.Errorf("other must not appear in coverage display")
	}

	cases := map[clause.Type]risk.CoverageStatus{
		clause.Indemnity:       risk.CoverageFound,
		clause.GoverningLaw:    risk.CoverageFound,
		clause.Termination:     risk.CoverageMissingRequired,
		clause.LiabilityCap:    risk.CoverageMissingRequired,
		clause.Confidentiality: risk.CoverageNotFound,
		clause.ForceMajeure:    risk.CoverageNotFound,
	}
	for typ, want := range cases {
		if got := statuses[typ]; got != want {
			t.Errorf("status[%s] = %v, want %v", typ, got, want)
		}
	}
}

func TestEvaluateCoverageFoundWins(t *testing.T) {
	// A type both covered and flagged missing-required renders Found;
	// the rule resolves the contradiction deterministically.
	statuses := risk.EvaluateCoverage(
		map[clause.Type]bool{clause.DataProtection: true},
		[]clause.Type{clause.DataProtection},
	)
	if got := statuses[clause.DataProtection]; got != risk.CoverageFound {
		t.Errorf("status = %v, want Found (found takes precedence)", got)
	}
}

func TestEvaluateCoverageEmptyInputs(t *testing.T) {
	statuses := risk.EvaluateCoverage(nil, nil)
	for _, typ := range clause.Coverable() {
		if got := statuses[typ]; got != risk.CoverageNotFound {
			t.Errorf("status[%s] = %v, want NotFound for absent key", typ, got)
		}
	}
}
