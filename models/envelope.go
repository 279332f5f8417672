package models

import "encoding/json"

// EnvelopeSuccessCode is the errorCode of a successful response.
const EnvelopeSuccessCode = 0

// Envelope is the wrapper every API response is delivered in.
type Envelope[T any] struct {
	Data      T      `json:"data"`
	ErrorCode int    `json:"errorCode"`
	ErrorMsg  string `json:"errorMsg"`
}

// OK reports whether the server marked the response as successful.
func (e Envelope[T]) OK() bool {
	return e.ErrorCode == EnvelopeSuccessCode
}

// RawEnvelope is an [Envelope] whose payload is left undecoded. It is used
// when only the status fields need to be inspected.
type RawEnvelope = Envelope[json.RawMessage]
