package notify

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/smartsched/reminder-scheduler/internal/geo"
)

//go:generate mockgen -source=center.go -destination=../mocks/notify/mock.go -package=mocks

// requestDeliverer hands a fired notification to the delivery pipeline.
type requestDeliverer interface {
	Deliver(identifier, title, body string) error
}

// statusCache records the delivery status of an identifier so the delivery
// worker can skip cancelled notifications.
type statusCache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
}

// Center owns the armed set of notification requests. Submitting a request
// under an already-armed identifier replaces it; cancelling removes it. Both
// operations are idempotent, which makes startup restores safe to repeat.
//
// Immediate requests are delivered on submission. Timed requests fire once
// their timestamp passes during a dispatch tick and then disarm. Region
// requests fire on every reported coordinate inside their region and stay
// armed until cancelled.
type Center struct {
	mu    sync.Mutex
	armed map[string]Request

	deliverer requestDeliverer
	cache     statusCache
	strategy  retry.Strategy
}

// NewCenter creates a Center delivering fired requests through d.
func NewCenter(d requestDeliverer, cache statusCache, strategy retry.Strategy) *Center {
	return &Center{
		armed:     make(map[string]Request),
		deliverer: d,
		cache:     cache,
		strategy:  strategy,
	}
}

// Submit arms a request, replacing any armed request with the same
// identifier. Submission is best-effort: delivery and cache failures are
// logged and never surface to the caller.
func (c *Center) Submit(ctx context.Context, req Request) {
	if req.Trigger.Kind == TriggerImmediate {
		c.fire(ctx, req)
		return
	}

	c.mu.Lock()
	c.armed[req.Identifier] = req
	c.mu.Unlock()

	if err := c.cache.SetWithRetry(ctx, c.strategy, req.Identifier, "armed"); err != nil {
		zlog.Logger.Error().Err(err).Str("identifier", req.Identifier).Msg("failed to cache armed status")
	}
}

// Cancel disarms the request with the given identifier. Cancelling an
// identifier that is not armed is a no-op apart from the status write, so a
// late cancel still stops an already-fired delivery that is waiting in the
// queue.
func (c *Center) Cancel(ctx context.Context, identifier string) {
	c.mu.Lock()
	delete(c.armed, identifier)
	c.mu.Unlock()

	if err := c.cache.SetWithRetry(ctx, c.strategy, identifier, "cancelled"); err != nil {
		zlog.Logger.Error().Err(err).Str("identifier", identifier).Msg("failed to cache cancelled status")
	}
}

// Armed returns the identifiers currently armed.
func (c *Center) Armed() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]string, 0, len(c.armed))
	for id := range c.armed {
		ids = append(ids, id)
	}

	return ids
}

// Run drives the time-trigger dispatch loop until ctx is cancelled. The
// first tick happens after one interval; reminders due in the past fire on
// that tick.
func (c *Center) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("notification dispatch stopped")
			return
		case now := <-ticker.C:
			c.dispatchDue(ctx, now)
		}
	}
}

// ReportLocation evaluates every armed region request against the reported
// coordinate and fires those whose region contains it. Region requests stay
// armed after firing.
func (c *Center) ReportLocation(ctx context.Context, lat, lon float64) {
	c.mu.Lock()
	var entered []Request
	for _, req := range c.armed {
		t := req.Trigger
		if t.Kind != TriggerOnRegionEntry {
			continue
		}
		if geo.Distance(lat, lon, t.Latitude, t.Longitude) <= t.RadiusMeters {
			entered = append(entered, req)
		}
	}
	c.mu.Unlock()

	for _, req := range entered {
		c.fire(ctx, req)
	}
}

// dispatchDue fires and disarms every timed request whose timestamp has
// passed.
func (c *Center) dispatchDue(ctx context.Context, now time.Time) {
	c.mu.Lock()
	var due []Request
	for id, req := range c.armed {
		if req.Trigger.Kind == TriggerAt && !req.Trigger.At.After(now) {
			due = append(due, req)
			delete(c.armed, id)
		}
	}
	c.mu.Unlock()

	for _, req := range due {
		c.fire(ctx, req)
	}
}

func (c *Center) fire(ctx context.Context, req Request) {
	if err := c.deliverer.Deliver(req.Identifier, req.Title, req.Body); err != nil {
		zlog.Logger.Error().Err(err).Str("identifier", req.Identifier).Msg("failed to deliver notification")
		return
	}

	zlog.Logger.Info().Str("identifier", req.Identifier).Msg("notification delivered to queue")
}
