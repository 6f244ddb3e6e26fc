// Package cache provides an in-process TTL cache with LRU eviction.
package cache

import (
	"sync"
	"time"
)

// MemoryItem stores cached value with expiration.
type MemoryItem[V any] struct {
	Value    V
	ExpireAt time.Time
}

// MemoryCache maps string keys to values. Reads extend an item's lifetime,
// so TTL is measured from last access.
type MemoryCache[V any] struct {
	data          map[string]*MemoryItem[V]
	access        map[string]time.Time
	mutex         sync.Mutex
	maxSize       int
	ttl           time.Duration
	now           func() time.Time
	cleanupTicker *time.Ticker
	done          chan struct{}
	closeOnce     sync.Once
}

// NewMemoryCache creates an in-memory cache and starts its cleanup loop.
func NewMemoryCache[V any](opts ...MemoryOption) *MemoryCache[V] {
	cfg := &MemoryConfig{
		MaxSize:         1000,
		TTL:             time.Hour,
		CleanupInterval: 5 * time.Minute,
		Now:             time.Now,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	mc := &MemoryCache[V]{
		data:    make(map[string]*MemoryItem[V]),
		access:  make(map[string]time.Time),
		maxSize: cfg.MaxSize,
		ttl:     cfg.TTL,
		now:     cfg.Now,
		done:    make(chan struct{}),
	}
	if cfg.CleanupInterval > 0 {
		mc.cleanupTicker = time.NewTicker(cfg.CleanupInterval)
		go mc.cleanupLoop()
	}
	return mc
}

// Set stores value under key, evicting the least recently used entry when
// the cache is full.
func (mc *MemoryCache[V]) Set(key string, value V) {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()
	mc.setLocked(key, value)
}

func (mc *MemoryCache[V]) setLocked(key string, value V) {
	if _, exists := mc.data[key]; !exists && mc.maxSize > 0 && len(mc.data) >= mc.maxSize {
		mc.evictLRU()
	}
	now := mc.now()
	mc.data[key] = &MemoryItem[V]{Value: value, ExpireAt: now.Add(mc.ttl)}
	mc.access[key] = now
}

// Get returns the live value for key.
func (mc *MemoryCache[V]) Get(key string) (V, bool) {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()
	return mc.getLocked(key)
}

func (mc *MemoryCache[V]) getLocked(key string) (V, bool) {
	var zero V
	item, exists := mc.data[key]
	if !exists {
		return zero, false
	}
	now := mc.now()
	if now.After(item.ExpireAt) {
		delete(mc.data, key)
		delete(mc.access, key)
		return zero, false
	}
	item.ExpireAt = now.Add(mc.ttl)
	mc.access[key] = now
	return item.Value, true
}

// GetOrCreate returns the live value for key, storing create() first if
// there is none.
func (mc *MemoryCache[V]) GetOrCreate(key string, create func() V) V {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	if v, ok := mc.getLocked(key); ok {
		return v
	}
	v := create()
	mc.setLocked(key, v)
	return v
}

// Len counts stored items, including expired ones not yet swept.
func (mc *MemoryCache[V]) Len() int {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()
	return len(mc.data)
}

func (mc *MemoryCache[V]) evictLRU() {
	var oldestKey string
	var oldestTime time.Time

	for key, accessTime := range mc.access {
		if oldestKey == "" || accessTime.Before(oldestTime) {
			oldestTime = accessTime
			oldestKey = key
		}
	}

	if oldestKey != "" {
		delete(mc.data, oldestKey)
		delete(mc.access, oldestKey)
	}
}

// Sweep drops expired items.
func (mc *MemoryCache[V]) Sweep() {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	now := mc.now()
	for key, item := range mc.data {
		if now.After(item.ExpireAt) {
			delete(mc.data, key)
			delete(mc.access, key)
		}
	}
}

func (mc *MemoryCache[V]) cleanupLoop() {
	for {
		select {
		case <-mc.cleanupTicker.C:
			mc.Sweep()
		case <-mc.done:
			return
		}
	}
}

// Close stops the cleanup loop.
func (mc *MemoryCache[V]) Close() error {
	mc.closeOnce.Do(func() {
		if mc.cleanupTicker != nil {
			mc.cleanupTicker.Stop()
		}
		close(mc.done)
	})
	return nil
}
