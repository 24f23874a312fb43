package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"medibook-portal/config"
	"medibook-portal/internal/domain/gateway"
	"medibook-portal/pkg/apierror"

	"github.com/sirupsen/logrus"
)

// Client is the REST client for the hosted content backend. It implements
// gateway.Gateway: transport and HTTP failures are mapped to the apierror
// taxonomy before they reach any caller.
type Client struct {
	baseURL  string
	apiToken string
	http     *http.Client
	log      *logrus.Logger
}

func NewClient(cfg config.BackendConfig, log *logrus.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiToken: cfg.APIToken,
		http:     &http.Client{Timeout: cfg.Timeout},
		log:      log,
	}
}

func (c *Client) Call(ctx context.Context, method, path string, body any, query url.Values) (*gateway.Result, error) {
	return c.CallWithToken(ctx, "", method, path, body, query)
}

func (c *Client) CallWithToken(ctx context.Context, token, method, path string, body any, query url.Values) (*gateway.Result, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, apierror.New(apierror.KindUnknown, fmt.Sprintf("encode request body: %v", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, apierror.New(apierror.KindUnknown, fmt.Sprintf("build request: %v", err))
	}

	bearer := c.apiToken
	if token != "" {
		bearer = token
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.log.Warnf("Backend request timed out: %s %s", method, path)
			return nil, apierror.Timeout()
		}
		c.log.Warnf("Backend request failed: %s %s: %v", method, path, err)
		return nil, apierror.Network()
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warnf("Backend response read failed: %s %s: %v", method, path, err)
		return nil, apierror.Network()
	}

	if resp.StatusCode >= 400 {
		apiErr := apierror.FromStatus(resp.StatusCode, raw)
		c.log.Warnf("Backend returned %d for %s %s: %s", resp.StatusCode, method, path, apiErr.Message)
		return nil, apiErr
	}

	return unwrap(raw), nil
}

// unwrap extracts the backend's `{data, meta}` envelope when present. Auth
// endpoints respond without the envelope; those bodies pass through whole.
// Empty bodies (DELETE gives no body guarantee) yield an empty result.
func unwrap(raw []byte) *gateway.Result {
	if len(raw) == 0 {
		return &gateway.Result{}
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
		Meta json.RawMessage `json:"meta"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		return &gateway.Result{Data: envelope.Data, Meta: envelope.Meta}
	}

	return &gateway.Result{Data: raw}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}
