package dto

import "errors"

// ErrMalformedDocument marks input that cannot be traversed at all, as
// opposed to a document that is merely missing fields.
var ErrMalformedDocument = errors.New("malformed ITR document")

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// RuleInfo describes one rule-table entry for the rules listing endpoint.
type RuleInfo struct {
	Key            string `json:"key"`
	AssessmentYear string `json:"assessment_year"`
	Regime         Regime `json:"regime"`
	SlabCount      int    `json:"slab_count"`
	HasSeniorSlabs bool   `json:"has_senior_slabs"`
}

// ClientListResponse wraps the stored summaries.
type ClientListResponse struct {
	Clients []*ClientSummary `json:"clients"`
	Count   int              `json:"count"`
}
