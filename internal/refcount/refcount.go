// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package refcount implements the dual reference-counting discipline used
// by device-owned object caches: an external count for the handles clients
// hold, and an internal count for the back-references device caches keep
// (render pass cache, framebuffer cache, bind group layout dedup, and
// similar). The native resource is released only once both counts reach
// zero, so a cache entry can keep a handle alive after the last client
// reference drops, but never past the point where both drop.
package refcount

import "sync/atomic"

// Counted tracks external and internal references to a single native
// resource and releases it exactly once, when both counts have reached
// zero.
//
// External references model ownership by RHI clients; internal references
// model non-owning back-references held by device caches. Dropping the
// last external reference logically destroys the object (it must stop
// accepting new work) without necessarily releasing the native handle,
// since a cache may still be holding it.
type Counted struct {
	external atomic.Int32
	internal atomic.Int32
	release  func()
	released atomic.Bool
}

// New creates a Counted with one external reference already held (the
// reference returned to the caller of the creating function) and no
// internal references. release is invoked exactly once, when both counts
// reach zero; it must be idempotent-safe to call at most once, which New
// guarantees.
func New(release func()) *Counted {
	c := &Counted{release: release}
	c.external.Store(1)
	return c
}

// NewCacheOwned creates a Counted with one internal reference already held
// and no external references, for objects that start out owned solely by
// a device cache (e.g. a freshly created Framebuffer not yet handed to any
// client). release fires once the cache later drops that internal
// reference via ReleaseInternalRef, unless an external reference was
// added in the meantime.
func NewCacheOwned(release func()) *Counted {
	c := &Counted{release: release}
	c.internal.Store(1)
	return c
}

// AddExternalRef increments the external reference count. Callers must
// already hold a valid external reference (directly or transitively)
// before calling this; it is not safe to resurrect an object whose
// external count has already reached zero.
func (c *Counted) AddExternalRef() {
	c.external.Add(1)
}

// ReleaseExternalRef drops one external reference. Returns true the first
// time the external count reaches zero, signaling the object is logically
// destroyed and must stop being handed out to new clients. The native
// resource is released only if the internal count is also zero.
func (c *Counted) ReleaseExternalRef() bool {
	n := c.external.Add(-1)
	if n < 0 {
		panic("refcount: ReleaseExternalRef called more times than AddExternalRef/New")
	}
	loggedOut := n == 0
	if loggedOut {
		c.maybeRelease()
	}
	return loggedOut
}

// AddInternalRef increments the internal (cache back-reference) count.
func (c *Counted) AddInternalRef() {
	c.internal.Add(1)
}

// ReleaseInternalRef drops one internal reference, e.g. when a cache
// entry referencing this object is evicted. Releases the native resource
// once both counts have reached zero.
func (c *Counted) ReleaseInternalRef() {
	n := c.internal.Add(-1)
	if n < 0 {
		panic("refcount: ReleaseInternalRef called more times than AddInternalRef")
	}
	c.maybeRelease()
}

// IsLogicallyDestroyed reports whether the external count has reached
// zero. A logically destroyed object may still be referenced by a cache
// and its native handle may still be live.
func (c *Counted) IsLogicallyDestroyed() bool {
	return c.external.Load() <= 0
}

// maybeRelease calls release exactly once, the first time both counts
// observe zero.
func (c *Counted) maybeRelease() {
	if c.external.Load() > 0 || c.internal.Load() > 0 {
		return
	}
	if c.released.CompareAndSwap(false, true) {
		c.release()
	}
}
