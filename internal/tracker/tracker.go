// Package tracker dedupes recently-seen ICAO addresses for the CLI's
// periodic "-stats" summary line. It never affects decoding or frame
// acceptance -- it is a pure side observer of the sink.
//
// Grounded on Regentag-go1090's mode_s.Decoder.icao_cache, which uses
// github.com/patrickmn/go-cache with a fixed TTL to answer "have we
// seen this address recently" without unbounded memory growth.
package tracker

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// icaoCacheTTL matches the teacher's MODES_ICAO_CACHE_TTL convention.
const icaoCacheTTL = 60 * time.Second

const cacheCleanupInterval = 10 * time.Second

// entry is the value stored per address.
type entry struct {
	lastSeen time.Time
	frames   int
}

// Tracker counts distinct ICAO addresses observed within the TTL window.
type Tracker struct {
	cache *cache.Cache
}

// New creates a Tracker with the default 60s TTL.
func New() *Tracker {
	return &Tracker{cache: cache.New(icaoCacheTTL, cacheCleanupInterval)}
}

// Seen records an observation of a 24-bit ICAO address.
func (t *Tracker) Seen(addr uint32) {
	key := fmt.Sprintf("%06X", addr)
	if v, ok := t.cache.Get(key); ok {
		e := v.(entry)
		e.lastSeen = time.Now()
		e.frames++
		t.cache.SetDefault(key, e)
		return
	}
	t.cache.SetDefault(key, entry{lastSeen: time.Now(), frames: 1})
}

// DistinctCount returns the number of distinct addresses seen within the
// TTL window, i.e. the cache's current item count.
func (t *Tracker) DistinctCount() int {
	return t.cache.ItemCount()
}

// TotalFrames returns the sum of per-address frame counts currently
// tracked, i.e. how many frames contributed to the current window.
func (t *Tracker) TotalFrames() int {
	total := 0
	for _, v := range t.cache.Items() {
		e := v.Object.(entry)
		total += e.frames
	}
	return total
}
