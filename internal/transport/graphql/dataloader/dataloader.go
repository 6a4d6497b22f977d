// Package dataloader provides per-request DataLoaders for stitching identity
// service users into cat responses. Every distinct owner id in one response
// is fetched once, with bounded parallelism.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/catgateway/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// userFetcher is the part of the identity client the owner loader needs.
type userFetcher interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

// Sources holds the backends required by DataLoaders.
type Sources struct {
	Users userFetcher

	// MaxConcurrent bounds the parallel lookups of one batch. Values below 1
	// mean one lookup at a time.
	MaxConcurrent int
}

// Loaders contains all per-request DataLoader instances.
type Loaders struct {
	OwnerByID *dataloader.Loader[string, *domain.User]
}

// NewLoaders creates a new set of DataLoaders backed by the given sources.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(src *Sources) *Loaders {
	return &Loaders{
		OwnerByID: newLoader(newOwnerBatchFn(src.Users, src.MaxConcurrent)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[K comparable, V any](batchFn dataloader.BatchFunc[K, V]) *dataloader.Loader[K, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[K, V](wait),
		dataloader.WithBatchCapacity[K, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}
