package trust

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// defaultReplayCacheSize bounds the replay cache when no explicit size is
// configured. Entries expire after the skew window anyway, so the bound
// only matters under sustained bursts.
const defaultReplayCacheSize = 8192

// ReplayCache records credentials that have already been accepted so an
// identical, still-fresh credential cannot be replayed within the clock-skew
// window. Entries expire automatically after the configured TTL, which
// should equal the verifier's maximum skew.
//
// The cache is the only shared mutable state in the trust layer; Claim uses
// a single lock around the contains-and-add pair so two racing duplicates
// cannot both pass.
type ReplayCache struct {
	mu   sync.Mutex
	seen *expirable.LRU[string, struct{}]
}

// NewReplayCache constructs a replay cache whose entries live for ttl.
// A non-positive size falls back to a bounded default.
func NewReplayCache(ttl time.Duration, size int) *ReplayCache {
	if size <= 0 {
		size = defaultReplayCacheSize
	}

	return &ReplayCache{
		seen: expirable.NewLRU[string, struct{}](size, nil, ttl),
	}
}

// Claim atomically records key as consumed. It returns true on first use
// and false if the key was already claimed and has not yet expired.
func (c *ReplayCache) Claim(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seen.Contains(key) {
		return false
	}

	c.seen.Add(key, struct{}{})
	return true
}
