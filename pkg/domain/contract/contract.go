// Package contract holds contract-level metadata entities and the
// portfolio derivations rendered on the overview page.
package contract

import (
	"time"

	"github.com/clauseguard/clausectl/pkg/domain/clause"
)

// Metadata describes an uploaded contract as reported by the service.
// UploadTimestamp stays a raw string: the service emits ISO 8601 with or
// without a zone offset, so parsing is deferred to display time.
type Metadata struct {
	ContractID       string        `json:"contract_id"`
	Filename         string        `json:"filename"`
	UploadTimestamp  string        `json:"upload_timestamp"`
	NumPages         int           `json:"num_pages"`
	NumClauses       int           `json:"num_clauses"`
	ClauseTypesFound []clause.Type `json:"clause_types_found"`
	TextLength       int           `json:"text_length"`
}

// UploadResult is the service's acknowledgement of a contract upload.
type UploadResult struct {
	ContractID       string        `json:"contract_id"`
	Filename         string        `json:"filename"`
	NumClauses       int           `json:"num_clauses"`
	ClauseTypesFound []clause.Type `json:"clause_types_found"`
	Message          string        `json:"message"`
}

// PortfolioStats are the aggregate counters shown above the contract list.
type PortfolioStats struct {
	Contracts   int
	Clauses     int
	ClauseTypes int
	Pages       int
}

// Portfolio computes aggregate stats over a contract list. The type counter
// counts distinct clause types across all contracts; clause_types_found is
// treated as a set even though the source gives no uniqueness guarantee.
func Portfolio(contracts []Metadata) PortfolioStats {
	types := make(map[clause.Type]struct{})
	stats := PortfolioStats{Contracts: len(contracts)}
	for _, c := range contracts {
		stats.Clauses += c.NumClauses
		stats.Pages += c.NumPages
		for _, t := range c.ClauseTypesFound {
			types[t] = struct{}{}
		}
	}
	stats.ClauseTypes = len(types)
	return stats
}

// Uploaded parses the upload timestamp for display. ok is false when the
// value is not a recognizable ISO 8601 instant.
func (m Metadata) Uploaded() (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04:05.999999"} {
		if ts, err := time.Parse(layout, m.UploadTimestamp); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
