package ports

import (
	"context"
	"encoding/json"
)

// Marketplace is the outbound port to the remote marketplace API. Do issues
// one call with the given bearer token (empty for anonymous requests) and
// returns the raw response body for the normalizers; failures are classified
// by the implementation before they reach callers.
type Marketplace interface {
	Do(ctx context.Context, method, path, token string, body any) (json.RawMessage, error)
}
