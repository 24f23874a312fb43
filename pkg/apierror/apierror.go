package apierror

import (
	"encoding/json"
	"errors"
)

// Kind classifies a backend call failure. Callers branch on kinds, never on
// raw transport errors or status codes.
type Kind string

const (
	KindNetwork    Kind = "network"
	KindTimeout    Kind = "timeout"
	KindValidation Kind = "validation"
	KindAuth       Kind = "auth"
	KindForbidden  Kind = "forbidden"
	KindNotFound   Kind = "not_found"
	KindServer     Kind = "server"
	KindUnknown    Kind = "unknown"
)

const (
	msgNetwork      = "Network error. Please check your connection."
	msgTimeout      = "Request timed out. Please try again."
	msgUnauthorized = "Authentication failed. Please login again."
	msgForbidden    = "You do not have permission to perform this action."
	msgNotFound     = "The requested resource was not found."
	msgServer       = "Server error. Please try again later."
	msgDefault      = "An unexpected error occurred."
	msgBadRequest   = "Invalid request data"
)

// Error is the single failure shape the gateway produces. Message is safe to
// show to the user; Details carries the raw response body when one exists.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Details json.RawMessage
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an Error with an explicit kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Network wraps a transport failure where no response was received.
func Network() *Error {
	return &Error{Kind: KindNetwork, Message: msgNetwork, Status: 0}
}

// Timeout marks a request that exceeded the configured deadline.
func Timeout() *Error {
	return &Error{Kind: KindTimeout, Message: msgTimeout, Status: 0}
}

// Validation marks a client-correctable input problem.
func Validation(message string) *Error {
	if message == "" {
		message = msgBadRequest
	}
	return &Error{Kind: KindValidation, Message: message, Status: 400}
}

// FromStatus maps an HTTP error response to the taxonomy. A 400 body of the
// backend's `{"error":{"message":...}}` shape contributes its message.
func FromStatus(status int, body []byte) *Error {
	e := &Error{Status: status, Details: body}

	switch status {
	case 400:
		e.Kind = KindValidation
		e.Message = messageFromBody(body, msgBadRequest)
	case 401:
		e.Kind = KindAuth
		e.Message = msgUnauthorized
	case 403:
		e.Kind = KindForbidden
		e.Message = msgForbidden
	case 404:
		e.Kind = KindNotFound
		e.Message = msgNotFound
	case 500:
		e.Kind = KindServer
		e.Message = msgServer
	default:
		e.Kind = KindUnknown
		e.Message = messageFromBody(body, msgDefault)
	}

	return e
}

func messageFromBody(body []byte, fallback string) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	return fallback
}

// KindOf extracts the taxonomy kind from err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// IsAuth reports whether err is an authentication failure (HTTP 401).
// Forbidden (403) is not an auth failure: the session is valid, the action is not allowed.
func IsAuth(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindAuth
}
