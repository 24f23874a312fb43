package gateway

import (
	"context"
	"encoding/json"
	"net/url"
)

// Result is the success half of a backend call. Data holds the response's
// `data` field when the backend wraps its payload, otherwise the whole body;
// Meta is present only for collection responses.
type Result struct {
	Data json.RawMessage
	Meta json.RawMessage
}

// Gateway is the uniform wrapper around the remote content backend. Every
// failure is returned as a *apierror.Error; implementations never panic and
// never leak raw transport errors.
type Gateway interface {
	// Call issues a request carrying the static API credential.
	Call(ctx context.Context, method, path string, body any, query url.Values) (*Result, error)

	// CallWithToken issues a request carrying the given session bearer token
	// instead of the static credential. Used for identity endpoints.
	CallWithToken(ctx context.Context, token, method, path string, body any, query url.Values) (*Result, error)
}
