package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/catgateway/internal/domain"
	"github.com/heartmarshall/catgateway/internal/metrics"
)

// newOwnerBatchFn fetches each owner with its own GET, at most limit at a
// time. A failed lookup fails only its own key.
func newOwnerBatchFn(users userFetcher, limit int) dataloader.BatchFunc[string, *domain.User] {
	if limit < 1 {
		limit = 1
	}
	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.User] {
		metrics.RecordOwnerBatch(len(keys))

		results := make([]*dataloader.Result[*domain.User], len(keys))

		var g errgroup.Group
		g.SetLimit(limit)
		for i, key := range keys {
			g.Go(func() error {
				u, err := users.GetUser(ctx, key)
				results[i] = &dataloader.Result[*domain.User]{Data: u, Error: err}
				// Per-key errors are carried in results, never returned,
				// so one failure does not cancel its siblings.
				return nil
			})
		}
		_ = g.Wait()

		return results
	}
}
