// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package globwalk

import (
	"container/list"
	"sync"
)

// defaultCacheCapacity bounds the process-wide compiled-pattern cache.
const defaultCacheCapacity = 1024

// cacheKey identifies one compiled pattern: pattern text plus every
// flag that affects compilation. Being comparable, it can be a plain map key.
type cacheKey struct {
	text  string
	flags CompileFlags
}

// PatternCache is a process-wide, concurrency-safe bounded LRU of compiled
// Patterns. Compilation happens outside the mutex so a cache miss
// never serializes expensive regex builds across goroutines; a benign race
// producing two equivalent compiles for the same key is accepted; the last
// writer wins and both values are interchangeable.
//
// The cache is hand-rolled on container/list: a map for O(1) lookup, a
// loading marker so concurrent callers for the same key wait instead of
// duplicating work, and the expensive step performed with the lock released.
type PatternCache struct {
	capacity int

	mu      sync.Mutex
	ll      *list.List // front = most recently used
	entries map[cacheKey]*list.Element
}

// cacheEntry is the payload stored in each list element.
type cacheEntry struct {
	key     cacheKey
	value   *Pattern
	loading bool
	wg      sync.WaitGroup
	err     error
}

// NewPatternCache creates a PatternCache with the given capacity. A capacity
// of zero or less uses defaultCacheCapacity.
func NewPatternCache(capacity int) *PatternCache {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	return &PatternCache{
		capacity: capacity,
		ll:       list.New(),
		entries:  make(map[cacheKey]*list.Element),
	}
}

// defaultCache is the process-wide cache backing the package-level entry
// points (GlobSync, Glob, HasMagic, ...).
var defaultCache = NewPatternCache(defaultCacheCapacity)

// getOrCompile returns the cached Pattern for (text, flags), compiling and
// inserting it on a miss.
func (c *PatternCache) getOrCompile(text string, flags CompileFlags) (*Pattern, error) {
	key := cacheKey{text: text, flags: flags}

	c.mu.Lock()
	if el, ok := c.entries[key]; ok {
		c.ll.MoveToFront(el)
		entry := el.Value.(*cacheEntry)
		loading := entry.loading
		c.mu.Unlock()
		if loading {
			entry.wg.Wait()
		}
		return entry.value, entry.err
	}

	entry := &cacheEntry{key: key, loading: true}
	entry.wg.Add(1)
	el := c.ll.PushFront(entry)
	c.entries[key] = el
	c.evictLocked()
	c.mu.Unlock()

	pattern, err := compilePattern(text, flags)

	c.mu.Lock()
	entry.value = pattern
	entry.err = err
	entry.loading = false
	c.mu.Unlock()
	entry.wg.Done()

	return pattern, err
}

// evictLocked drops least-recently-used entries beyond capacity. Caller must
// hold c.mu. Eviction never consults whether an entry is still in use,
// since Patterns are immutable and safe to keep alive by any existing
// reference a caller already holds.
func (c *PatternCache) evictLocked() {
	for c.ll.Len() > c.capacity {
		oldest := c.ll.Back()
		if oldest == nil {
			return
		}
		c.ll.Remove(oldest)
		entry := oldest.Value.(*cacheEntry)
		delete(c.entries, entry.key)
	}
}

// clear empties the cache. Test-only.
func (c *PatternCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ll.Init()
	c.entries = make(map[cacheKey]*list.Element)
}

// len reports the current number of cached entries. Test-only.
func (c *PatternCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
