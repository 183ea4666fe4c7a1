// Package jsonrpc implements the JSON-RPC 2.0 envelope the ERP web
// controllers speak, and the HTTP transport that carries it.
package jsonrpc

import "encoding/json"

const (
	// Version is the protocol version tag sent on every request.
	Version = "2.0"
	// MethodCall is the only envelope method the ERP web controllers accept.
	MethodCall = "call"

	// MaxRequestID bounds the random correlation id.
	MaxRequestID = 1_000_000

	fallbackErrorMessage = "API call failed"
)

// Request is the envelope posted to an endpoint.
type Request struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	ID      int         `json:"id"`
}

// Response is the envelope returned by an endpoint. Exactly one of Result
// and Error is expected to be set.
type Response struct {
	JSONRPC string          `json:"jsonrpc,omitempty"`
	ID      *int            `json:"id,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *ErrorObject    `json:"error,omitempty"`
}

// ErrorObject is the error member of a failed response.
type ErrorObject struct {
	Code    int        `json:"code,omitempty"`
	Message string     `json:"message,omitempty"`
	Data    *ErrorData `json:"data,omitempty"`
}

// ErrorData carries the server side exception details.
type ErrorData struct {
	Name          string `json:"name,omitempty"`
	Message       string `json:"message,omitempty"`
	Debug         string `json:"debug,omitempty"`
	ExceptionType string `json:"exception_type,omitempty"`
}

// Text returns the most specific message available: data.message, then
// message, then a generic fallback.
func (e *ErrorObject) Text() string {
	if e == nil {
		return fallbackErrorMessage
	}

	if e.Data != nil && e.Data.Message != "" {
		return e.Data.Message
	}

	if e.Message != "" {
		return e.Message
	}

	return fallbackErrorMessage
}

// NewRequest builds a call envelope with the given correlation id.
func NewRequest(params interface{}, id int) Request {
	return Request{
		JSONRPC: Version,
		Method:  MethodCall,
		Params:  params,
		ID:      id,
	}
}
