package clause

// Extracted is a single clause pulled out of a contract by the analysis
// service. Instances are decoded from API responses and never mutated.
type Extracted struct {
	ClauseID        string  `json:"clause_id"`
	ContractID      string  `json:"contract_id"`
	ClauseType      Type    `json:"clause_type"`
	Text            string  `json:"text"`
	SectionNumber   string  `json:"section_number"`
	PageNumber      int     `json:"page_number"`
	CharOffsetStart int     `json:"char_offset_start"`
	CharOffsetEnd   int     `json:"char_offset_end"`
	Confidence      float64 `json:"confidence"`
}
