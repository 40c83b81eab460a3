package search

import (
	"context"
	"time"

	"github.com/nearlive/event-search-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

// Cache is the injectable result store. Implementations must treat values as
// immutable once stored and may drop entries at any time; a miss is never an
// error for the pipeline.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
}

// EventSource performs the upstream search and returns already-normalized
// records plus the upstream page metadata.
type EventSource interface {
	Search(ctx context.Context, q Query, w Window) (*Page, error)
}

// Page is one upstream result page after normalization, before the local
// window re-filter.
type Page struct {
	Events   []domain.NormalizedEvent
	PageInfo domain.PageInfo
}
