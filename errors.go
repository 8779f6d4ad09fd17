package blindpay

import (
	"errors"
	"fmt"
)

// Sentinel errors returned when constructing a Client with incomplete
// credentials.
var (
	ErrMissingAPIKey     = errors.New("missing API key")
	ErrMissingInstanceID = errors.New("missing instance ID")
)

// APIError represents an error response from the BlindPay API. It is
// returned whenever the API answers with a non-2xx status, carrying the
// remote message when the error body is decodable and the raw body
// otherwise.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	RawBody    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("BlindPay API error (status %d): %s", e.StatusCode, e.RawBody)
	}
	if e.Code != "" {
		return fmt.Sprintf("BlindPay API error [%s] = %s", e.Code, e.Message)
	}
	return fmt.Sprintf("BlindPay API error = %s", e.Message)
}

// TransportError wraps a failure to complete an HTTP exchange with the
// API. The request never produced a status code.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("making HTTP request: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// SerializationError wraps a JSON conversion failure, either while
// encoding a request body or while decoding a success response.
type SerializationError struct {
	Op  string // "encoding" or "decoding"
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("%s JSON payload: %v", e.Op, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
