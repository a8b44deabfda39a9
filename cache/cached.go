package cache

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/zoobzio/wareql"
	"github.com/zoobzio/wareql/warehouse"
)

// Querier runs a rendered query. *warehouse.Client implements it.
type Querier interface {
	Query(ctx context.Context, q *wareql.QueryResult) (*warehouse.ResultSet, error)
}

// Cached serves repeated queries from a Store.
type Cached struct {
	querier   Querier
	store     Store
	codec     *codec
	namespace string
	logger    zerolog.Logger
	hits      atomic.Int64
	misses    atomic.Int64
}

// New wraps querier with store. Keys are scoped by namespace.
func New(querier Querier, store Store, namespace string, logger zerolog.Logger) (*Cached, error) {
	if querier == nil {
		return nil, fmt.Errorf("querier cannot be nil")
	}
	if store == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}
	c, err := newCodec()
	if err != nil {
		return nil, err
	}
	return &Cached{
		querier:   querier,
		store:     store,
		codec:     c,
		namespace: namespace,
		logger:    logger.With().Str("component", "cache").Logger(),
	}, nil
}

// Query returns the cached result for q, or runs it and stores the result.
// With refresh set the store is bypassed on read and overwritten on success.
// Errors from the store are logged and never returned.
func (c *Cached) Query(ctx context.Context, q *wareql.QueryResult, refresh bool) (*warehouse.ResultSet, error) {
	if q == nil || q.SQL == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}
	key := Key(c.namespace, q)
	log := c.logger.With().Str("key", key).Logger()

	if !refresh {
		if rs, ok := c.lookup(ctx, key, log); ok {
			c.hits.Add(1)
			log.Debug().Int("rows", rs.Len()).Msg("Cache hit")
			return rs, nil
		}
	}
	c.misses.Add(1)

	rs, err := c.querier.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	data, err := c.codec.encode(rs)
	if err != nil {
		log.Warn().Err(err).Msg("Result not cached")
		return rs, nil
	}
	if err := c.store.Set(ctx, key, data); err != nil {
		log.Warn().Err(err).Msg("Failed to store result")
		return rs, nil
	}
	log.Debug().Int("rows", rs.Len()).Int("bytes", len(data)).Msg("Result cached")
	return rs, nil
}

func (c *Cached) lookup(ctx context.Context, key string, log zerolog.Logger) (*warehouse.ResultSet, bool) {
	data, ok, err := c.store.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Msg("Cache lookup failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	rs, err := c.codec.decode(data)
	if err != nil {
		log.Warn().Err(err).Msg("Discarding unreadable cache entry")
		return nil, false
	}
	return rs, true
}

// Invalidate removes the cached result for q.
func (c *Cached) Invalidate(ctx context.Context, q *wareql.QueryResult) error {
	return c.store.Delete(ctx, Key(c.namespace, q))
}

// Hits returns the number of queries served from the store.
func (c *Cached) Hits() int64 {
	return c.hits.Load()
}

// Misses returns the number of queries sent to the warehouse.
func (c *Cached) Misses() int64 {
	return c.misses.Load()
}

// Close releases the codec.
func (c *Cached) Close() {
	c.codec.close()
}
