package search

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	zlog "github.com/rs/zerolog/log"

	"github.com/nearlive/event-search-service/internal/domain"
)

var (
	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_cache_lookups_total",
			Help: "Result cache lookups by outcome",
		},
		[]string{"outcome"}, // hit | miss | bypass
	)

	upstreamCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_upstream_calls_total",
			Help: "Upstream search calls by outcome",
		},
		[]string{"outcome"}, // ok | error
	)
)

// Result is the final response payload: the normalized, window-filtered,
// chronologically sorted events plus upstream pagination metadata.
type Result struct {
	Results  []domain.NormalizedEvent `json:"results"`
	PageInfo domain.PageInfo          `json:"pageInfo"`
}

type Service struct {
	source EventSource
	cache  Cache
	clock  Clock
	loc    *time.Location
	ttl    time.Duration
}

func New(source EventSource, cache Cache, clock Clock, loc *time.Location, ttl time.Duration) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{source: source, cache: cache, clock: clock, loc: loc, ttl: ttl}
}

// Search runs the full pipeline for an already-validated query:
// window resolution -> cache lookup -> upstream fetch -> re-filter/sort ->
// cache store. Cache failures degrade to upstream calls, never to errors.
func (s *Service) Search(ctx context.Context, q Query) (Result, error) {
	w := ResolveWindow(q.From, q.To, s.clock.Now(), s.loc)

	key := ""
	if q.Fresh || s.cache == nil {
		cacheLookups.WithLabelValues("bypass").Inc()
	} else {
		key = fingerprint(q, w)
		var cached Result
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache get failed")
		} else if found {
			cacheLookups.WithLabelValues("hit").Inc()
			zlog.Debug().Str("key", key).Msg("cache hit")
			return cached, nil
		}
		cacheLookups.WithLabelValues("miss").Inc()
	}

	page, err := s.source.Search(ctx, q, w)
	if err != nil {
		upstreamCalls.WithLabelValues("error").Inc()
		return Result{}, err
	}
	upstreamCalls.WithLabelValues("ok").Inc()

	res := Result{
		Results:  FilterByWindow(page.Events, w, s.loc),
		PageInfo: page.PageInfo,
	}

	// An abandoned request must not store a result it never delivered.
	if key != "" && ctx.Err() == nil {
		if err := s.cache.Set(ctx, key, res, s.ttl); err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}

	return res, nil
}
