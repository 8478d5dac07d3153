package core

import "fmt"

// Response is an immutable candidate answer produced by a LogicAdapter for a
// single turn. Confidence is an uncalibrated ordering key: adapters are free
// to return values outside [0,1] and the arbitrator only ever compares them,
// it never interprets them as probabilities.
type Response struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// NewResponse creates a response candidate.
func NewResponse(text string, confidence float64) Response {
	return Response{Text: text, Confidence: confidence}
}

// String renders a short "confidence:text..." form used in candidate logs.
func (r Response) String() string {
	text := r.Text
	if len(text) > 32 {
		text = text[:32]
	}
	return fmt.Sprintf("%.2f:%s...", r.Confidence, text)
}
