package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const jsonrpcVersion = "2.0"

// JSON-RPC error codes. The -320xx range is reserved for server errors.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603

	CodeUpstreamFailure = -32000
	CodeNotRunning      = -32003
	CodeNotImplemented  = -32004
	CodeNotFound        = -32005
)

// request is a single JSON-RPC call. A missing ID marks a notification.
type request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
}

func (r *request) validate() error {
	if r.JSONRPC != jsonrpcVersion {
		return fmt.Errorf("invalid jsonrpc version %q", r.JSONRPC)
	}
	if r.Method == "" {
		return errors.New("method is required")
	}
	return nil
}

func (r *request) isNotification() bool {
	return r.ID == nil
}

// positional returns the params array; absent or null params are an empty list.
func (r *request) positional() ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(r.Params)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, nil
	}
	if trimmed[0] != '[' {
		return nil, errors.New("params must be a positional array")
	}
	var params []json.RawMessage
	if err := json.Unmarshal(trimmed, &params); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	return params, nil
}

// Error is a JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func newError(code int, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
	ID      json.RawMessage `json:"id"`
}

func errorResponse(id json.RawMessage, err *Error) *response {
	return &response{JSONRPC: jsonrpcVersion, Error: err, ID: id}
}

// parseBody splits a body into its calls and reports whether it was a batch.
func parseBody(body []byte) ([]json.RawMessage, bool, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, false, errors.New("empty body")
	}
	if body[0] != '[' {
		if !json.Valid(body) {
			return nil, false, errors.New("malformed JSON")
		}
		return []json.RawMessage{body}, false, nil
	}
	var calls []json.RawMessage
	if err := json.Unmarshal(body, &calls); err != nil {
		return nil, true, err
	}
	return calls, true, nil
}
