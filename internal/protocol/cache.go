package protocol

import (
	"context"
	"sync"
	"time"
)

// DetectionCache is a time-bounded cache sitting in front of a Detector.
// Caching is an explicit collaborator here; adapters never memoize their
// own capability results. Entries are keyed by host and credential so a
// scan that failed with one credential never masks a later attempt with
// the next candidate.
type DetectionCache struct {
	detector Detector
	ttl      time.Duration
	entries  map[cacheKey]cacheEntry
	now      func() time.Time
	mux      sync.Mutex
}

type cacheKey struct {
	host  string
	creds Credentials
}

type cacheEntry struct {
	result  *DetectionResult
	expires time.Time
}

// NewDetectionCache wraps detector with a per-host, per-credential TTL cache
func NewDetectionCache(detector Detector, ttl time.Duration) *DetectionCache {
	return &DetectionCache{
		detector: detector,
		ttl:      ttl,
		entries:  map[cacheKey]cacheEntry{},
		now:      time.Now,
	}
}

// Detect returns the cached result for the host and credential when
// fresh, otherwise delegates and stores the outcome
func (c *DetectionCache) Detect(ctx context.Context, identity ServerIdentity, creds Credentials) *DetectionResult {
	key := cacheKey{host: identity.Host, creds: creds}

	c.mux.Lock()
	entry, ok := c.entries[key]
	c.mux.Unlock()

	if ok && c.now().Before(entry.expires) {
		return entry.result
	}

	result := c.detector.Detect(ctx, identity, creds)

	c.mux.Lock()
	c.entries[key] = cacheEntry{
		result:  result,
		expires: c.now().Add(c.ttl),
	}
	c.mux.Unlock()

	return result
}

// Invalidate drops every cached result for a host, used after an update
// changes what detection would report
func (c *DetectionCache) Invalidate(host string) {
	c.mux.Lock()
	defer c.mux.Unlock()

	for key := range c.entries {
		if key.host == host {
			delete(c.entries, key)
		}
	}
}
