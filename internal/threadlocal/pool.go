// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package threadlocal provides per-key pooling for objects that are cheap
// to reuse but expensive to allocate, such as command-buffer recording
// scratch state kept per submitting queue. It builds on sync.Pool rather
// than goroutine-local storage, since Go has no portable thread-local
// primitive: callers key a pool by queue (or any other contention domain)
// so unrelated queues never block each other acquiring scratch state.
package threadlocal

import "sync"

// Pool manages a keyed set of sync.Pool instances, one per key. It is safe
// for concurrent use by multiple goroutines across multiple keys.
type Pool[K comparable, V any] struct {
	mu    sync.RWMutex
	pools map[K]*sync.Pool
	new   func() V
}

// New creates a Pool whose per-key sync.Pool instances construct new
// values with newFn.
func New[K comparable, V any](newFn func() V) *Pool[K, V] {
	return &Pool[K, V]{
		pools: make(map[K]*sync.Pool),
		new:   newFn,
	}
}

// Get retrieves a value from the pool associated with key, creating the
// per-key pool on first use.
func (p *Pool[K, V]) Get(key K) V {
	return p.poolFor(key).Get().(V)
}

// Put returns a value to the pool associated with key for later reuse.
func (p *Pool[K, V]) Put(key K, value V) {
	p.poolFor(key).Put(value)
}

// Warmup pre-populates the pool for key with count values, draining them
// back in immediately. Call during device/queue initialization to avoid
// allocation on the first few submissions.
func (p *Pool[K, V]) Warmup(key K, count int) {
	pool := p.poolFor(key)
	values := make([]V, count)
	for i := range values {
		values[i] = pool.Get().(V)
	}
	for _, v := range values {
		pool.Put(v)
	}
}

// Drop removes the per-key pool entirely, e.g. when a queue is destroyed.
// Values already checked out are unaffected; values still pooled are
// dropped for GC.
func (p *Pool[K, V]) Drop(key K) {
	p.mu.Lock()
	delete(p.pools, key)
	p.mu.Unlock()
}

func (p *Pool[K, V]) poolFor(key K) *sync.Pool {
	p.mu.RLock()
	pool, ok := p.pools[key]
	p.mu.RUnlock()
	if ok {
		return pool
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if pool, ok = p.pools[key]; ok {
		return pool
	}
	pool = &sync.Pool{New: func() any { return p.new() }}
	p.pools[key] = pool
	return pool
}
