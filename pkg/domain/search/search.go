// Package search owns the clause-search view state: query text, the
// multi-select type filter, result sizing, and the request/response
// lifecycle, including the guard against stale responses overwriting a
// newer search.
package search

import (
	"github.com/clauseguard/clausectl/pkg/domain/clause"
)

// Hit is a single semantic-search result.
type Hit struct {
	ClauseID      string      `json:"clause_id"`
	ContractID    string      `json:"contract_id"`
	ClauseType    clause.Type `json:"clause_type"`
	Text          string      `json:"text"`
	Score         float64     `json:"score"`
	SectionNumber string      `json:"section_number"`
	PageNumber    int         `json:"page_number"`
	Highlights    []string    `json:"highlights"`
}

// Request is the wire form of a search submission.
type Request struct {
	Query       string        `json:"query"`
	ClauseTypes []clause.Type `json:"clause_types,omitempty"`
	ContractIDs []string      `json:"contract_ids,omitempty"`
	TopK        int           `json:"top_k,omitempty"`
}

// Response is the service's answer to a search request.
type Response struct {
	Query     string `json:"query"`
	TotalHits int    `json:"total_hits"`
	Hits      []Hit  `json:"hits"`
}
