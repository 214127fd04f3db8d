package service

import (
	"context"

	"github.com/tivra/storefront-gateway/internal/api/metrics"
)

// MutateThenReload is the single write path for every list screen: run the
// mutation, and only after it succeeded re-fetch the owning collection. The
// fresh list fully replaces local state: no optimistic merge, no partial
// patch. On failure at either step the caller's current list is returned
// unchanged alongside the error, so the UI never shows a stale success.
//
// The reload is sequenced strictly after the mutation's success response;
// the two calls are never in flight concurrently.
func MutateThenReload[T any](
	ctx context.Context,
	collection string,
	current []T,
	action func(context.Context) error,
	fetch func(context.Context) ([]T, error),
) ([]T, error) {
	if err := action(ctx); err != nil {
		metrics.ReloadCyclesTotal.WithLabelValues(collection, "action_failed").Inc()
		return current, err
	}
	fresh, err := fetch(ctx)
	if err != nil {
		metrics.ReloadCyclesTotal.WithLabelValues(collection, "reload_failed").Inc()
		return current, err
	}
	metrics.ReloadCyclesTotal.WithLabelValues(collection, "ok").Inc()
	return fresh, nil
}
