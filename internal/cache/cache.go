// Package cache provides a small byte-value cache used for transport-layer
// state such as robots.txt payloads. Evidence state (hits, candidates) is
// never cached; every resolution call starts from empty state.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is the byte-value cache interface.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
	Clear()
}

// Key builds a stable cache key from a URL.
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "namesake:v1:" + hex.EncodeToString(hash[:])
}

// Memory is an in-process cache with TTL eviction.
type Memory struct {
	cache *gocache.Cache
}

// NewMemory creates a memory cache.
func NewMemory(defaultTTL, cleanupInterval time.Duration) *Memory {
	return &Memory{cache: gocache.New(defaultTTL, cleanupInterval)}
}

// Get retrieves a value.
func (m *Memory) Get(key string) ([]byte, bool) {
	if val, found := m.cache.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a value with the given TTL.
func (m *Memory) Set(key string, value []byte, ttl time.Duration) {
	m.cache.Set(key, value, ttl)
}

// Delete removes a value.
func (m *Memory) Delete(key string) {
	m.cache.Delete(key)
}

// Clear removes all values.
func (m *Memory) Clear() {
	m.cache.Flush()
}
