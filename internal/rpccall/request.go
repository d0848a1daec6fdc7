// Package rpccall implements the administrative JSON-RPC client used when
// xbwd is invoked as a one-shot command against a running server.
package rpccall

import (
	"log/slog"
)

// APIMaximumSupportedVersion is the newest admin API version this build
// speaks.
const APIMaximumSupportedVersion = 1

// APIMinimumSupportedVersion is the oldest admin API version this build
// accepts.
const APIMinimumSupportedVersion = 1

// Field names used in requests and responses.
const (
	FieldMethod       = "method"
	FieldAPIVersion   = "api_version"
	FieldResult       = "result"
	FieldStatus       = "status"
	FieldError        = "error"
	FieldErrorMessage = "error_message"
	FieldRequest      = "request"
)

// Status values of a response result.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Methods known to the admin API.
const (
	MethodServerInfo = "server_info"
	MethodStop       = "stop"
)

// Request is a JSON-RPC request object.
type Request map[string]any

// Method returns the method of the request, or the empty string if it has no
// string method.
func (r Request) Method() string {
	m, _ := r[FieldMethod].(string)
	return m
}

// LogValue implements the slog.LogValuer interface.
func (r Request) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("method", r.Method()),
		slog.Any("apiVersion", r[FieldAPIVersion]),
	)
}

// Response is a JSON-RPC response object.
type Response map[string]any

// Status returns the status field of the response result, or the empty string
// if there is none.
func (r Response) Status() string {
	result, ok := r[FieldResult].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := result[FieldStatus].(string)
	return s
}
