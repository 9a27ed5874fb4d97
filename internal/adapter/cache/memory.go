package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Cubey2019/insight-vtc-api/internal/domain/model"
	"github.com/Cubey2019/insight-vtc-api/internal/domain/ports"
	"github.com/Cubey2019/insight-vtc-api/internal/metrics"
	"github.com/Cubey2019/insight-vtc-api/pkg/logger"
	"github.com/Cubey2019/insight-vtc-api/pkg/utils"
)

// MemoryCache holds the last known rate and refreshes it from the ticker
// once it is older than the TTL. Lookups never fail: a failed refresh
// serves whatever was stored before, which is 0 until the first success.
//
// The mutex only guards the two stored fields. It is not held across the
// fetch, so concurrent stale lookups may each fetch; the last one to
// finish wins.
type MemoryCache struct {
	mutex       sync.RWMutex
	rate        float64
	lastUpdated time.Time

	cacheTTL time.Duration
	fetcher  ports.QuoteFetcher
	clock    ports.Clock
	log      *logger.Logger
	metrics  *metrics.Metrics
}

type Option func(*MemoryCache)

func WithClock(clock ports.Clock) Option {
	return func(c *MemoryCache) {
		c.clock = clock
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *MemoryCache) {
		c.metrics = m
	}
}

func NewMemoryCache(fetcher ports.QuoteFetcher, cacheTTL time.Duration, log *logger.Logger, opts ...Option) *MemoryCache {
	c := &MemoryCache{
		cacheTTL: cacheTTL,
		fetcher:  fetcher,
		clock:    utils.SystemClock{},
		log:      log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *MemoryCache) Get(ctx context.Context) model.RateLookup {
	rate, lastUpdated := c.Snapshot()

	age := c.clock.Now().Sub(lastUpdated)
	if !lastUpdated.IsZero() && age < c.cacheTTL {
		c.log.Debug("Cache hit", "rate", rate, "age", age)
		return c.lookup(model.LookupHit, rate, lastUpdated)
	}

	c.log.Debug("Cache stale, fetching ticker", "last_updated", utils.FormatTimestamp(lastUpdated))

	// The fetch outlives the inbound request: its result is applied even if
	// the caller has gone away.
	start := time.Now()
	body, err := c.fetcher.Fetch(context.WithoutCancel(ctx))
	c.observeFetch(time.Since(start))

	if err != nil {
		c.countFetch("transport_error")
		rate, lastUpdated = c.Snapshot()
		c.log.Error("Failed to fetch ticker", "error", err, "stale_rate", rate, "last_updated", utils.FormatTimestamp(lastUpdated))
		return c.lookup(model.LookupStale, rate, lastUpdated)
	}

	price, err := model.ParseQuote(body)
	if err != nil {
		c.countFetch("parse_error")
		rate, lastUpdated = c.Snapshot()
		c.log.Warn("Ignoring malformed ticker response", "error", err, "stale_rate", rate, "last_updated", utils.FormatTimestamp(lastUpdated))
		return c.lookup(model.LookupStale, rate, lastUpdated)
	}

	updated := c.clock.Now()
	c.mutex.Lock()
	c.rate = price
	c.lastUpdated = updated
	c.mutex.Unlock()

	c.countFetch("success")
	if c.metrics != nil {
		c.metrics.CurrentRate.Set(price)
		c.metrics.RateLastUpdated.Set(float64(updated.Unix()))
	}
	c.log.Info("Rate refreshed", "rate", price)

	return c.lookup(model.LookupRefreshed, price, updated)
}

// Snapshot returns the stored rate and when it was set.
func (c *MemoryCache) Snapshot() (float64, time.Time) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.rate, c.lastUpdated
}

func (c *MemoryCache) lookup(result model.LookupResult, rate float64, updatedAt time.Time) model.RateLookup {
	if c.metrics != nil {
		c.metrics.RateLookupsTotal.WithLabelValues(string(result)).Inc()
	}
	return model.RateLookup{
		Rate:      rate,
		Status:    model.StatusOK,
		Result:    result,
		UpdatedAt: updatedAt,
	}
}

func (c *MemoryCache) countFetch(outcome string) {
	if c.metrics != nil {
		c.metrics.UpstreamFetchesTotal.WithLabelValues(outcome).Inc()
	}
}

func (c *MemoryCache) observeFetch(d time.Duration) {
	if c.metrics != nil {
		c.metrics.UpstreamFetchDuration.Observe(d.Seconds())
	}
}
