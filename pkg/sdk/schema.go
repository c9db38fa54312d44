package sdk

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// payloadSchema validates a collaborator payload's shape before decoding.
// The API is a duck-typed boundary; a malformed payload should fail with a
// named violation instead of a zero-valued struct.
type payloadSchema struct {
	name   string
	loader gojsonschema.JSONLoader
}

func newPayloadSchema(name, schemaJSON string) *payloadSchema {
	return &payloadSchema{
		name:   name,
		loader: gojsonschema.NewStringLoader(schemaJSON),
	}
}

func (s *payloadSchema) check(body []byte) error {
	result, err := gojsonschema.Validate(s.loader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("validate %s payload: %w", s.name, err)
	}
	if !result.Valid() {
		return fmt.Errorf("invalid %s payload: %s", s.name, result.Errors()[0])
	}
	return nil
}

var riskReportSchema = newPayloadSchema("risk report", `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["contract_id", "overall_risk_score", "findings", "coverage"],
  "properties": {
    "contract_id": { "type": "string" },
    "contract_filename": { "type": "string" },
    "overall_risk_score": { "type": "number" },
    "summary": { "type": "string" },
    "findings": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["clause_type", "severity"],
        "properties": {
          "clause_type": { "type": "string" },
          "severity": { "type": "string" },
          "confidence": { "type": "number" }
        }
      }
    },
    "coverage": {
      "type": "object",
      "additionalProperties": { "type": "boolean" }
    },
    "missing_required_clauses": {
      "type": "array",
      "items": { "type": "string" }
    },
    "num_high": { "type": "integer" },
    "num_medium": { "type": "integer" },
    "num_low": { "type": "integer" }
  }
}`)

var searchResponseSchema = newPayloadSchema("search response", `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["query", "total_hits", "hits"],
  "properties": {
    "query": { "type": "string" },
    "total_hits": { "type": "integer" },
    "hits": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["clause_id", "contract_id", "clause_type", "text", "score"],
        "properties": {
          "clause_id": { "type": "string" },
          "contract_id": { "type": "string" },
          "clause_type": { "type": "string" },
          "text": { "type": "string" },
          "score": { "type": "number" },
          "highlights": {
            "type": "array",
            "items": { "type": "string" }
          }
        }
      }
    }
  }
}`)
