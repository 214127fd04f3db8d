// Package backend is the outbound HTTP client for the remote marketplace
// API. It attaches the bearer credential, classifies every failure into one
// of five kinds, and never retries: each error is surfaced to the caller,
// which decides the fallback.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tivra/storefront-gateway/internal/api/metrics"
)

const defaultTimeout = 15 * time.Second

// Client issues REST calls against one configured base URL. The base URL is
// read once at startup and never re-read.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

// New validates the base URL and returns a ready client. A timeout of zero
// falls back to the 15s default; the original storefront had none and could
// hang a screen in Loading forever.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		base: strings.TrimRight(u.String(), "/") + "/",
		http: &http.Client{Timeout: timeout},
		log:  log,
	}, nil
}

// Do performs one call. A non-empty token is attached as
// "Authorization: Bearer <token>"; an empty token sends the request
// unauthenticated. The response body is returned raw for the normalizers.
func (c *Client) Do(ctx context.Context, method, path, token string, body any) (json.RawMessage, error) {
	start := time.Now()
	raw, err := c.do(ctx, method, path, token, body)
	c.observe(method, path, err, time.Since(start))
	return raw, err
}

func (c *Client) do(ctx context.Context, method, path, token string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: KindValidation, Message: "unencodable request body", cause: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+strings.TrimLeft(path, "/"), reader)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: "building request", cause: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend unreachable")
		return nil, &Error{Kind: KindNetwork, Message: "no response from backend", cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Status: resp.StatusCode, Message: "reading response", cause: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}
	return nil, classify(resp.StatusCode, data)
}

// classify maps a non-2xx response to the error taxonomy.
func classify(status int, body []byte) *Error {
	switch {
	case status == http.StatusUnauthorized:
		return &Error{Kind: KindUnauthorized, Status: status, Message: bodyMessage(body, "authentication required")}
	case status == http.StatusNotFound:
		return &Error{Kind: KindNotFound, Status: status, Message: bodyMessage(body, "not found")}
	case status >= 500:
		return &Error{Kind: KindServer, Status: status, Message: "backend error"}
	default:
		e := &Error{Kind: KindValidation, Status: status, Message: bodyMessage(body, "request rejected")}
		e.Fields = fieldErrors(body)
		return e
	}
}

// bodyMessage extracts the backend's "detail"/"error" message when present.
func bodyMessage(body []byte, fallback string) string {
	var envelope struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Detail != "" {
			return envelope.Detail
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	return fallback
}

// fieldErrors decodes the Django REST field-error shape, tolerating both
// string and list values per field.
func fieldErrors(body []byte) map[string][]string {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}
	fields := make(map[string][]string)
	for name, v := range raw {
		switch msgs := v.(type) {
		case string:
			fields[name] = []string{msgs}
		case []any:
			for _, m := range msgs {
				if s, ok := m.(string); ok {
					fields[name] = append(fields[name], s)
				}
			}
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func (c *Client) observe(method, path string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		if be, ok := err.(*Error); ok {
			outcome = be.Kind.String()
		} else {
			outcome = "error"
		}
	}
	metrics.BackendRequestsTotal.WithLabelValues(method, routeLabel(path), outcome).Inc()
	metrics.BackendRequestDuration.WithLabelValues(method, routeLabel(path)).Observe(elapsed.Seconds())
}

// routeLabel collapses entity IDs so metric cardinality stays bounded.
func routeLabel(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, p := range parts {
		if p != "" && strings.IndexFunc(p, func(r rune) bool { return r < '0' || r > '9' }) == -1 {
			parts[i] = ":id"
		}
	}
	return strings.Join(parts, "/")
}
