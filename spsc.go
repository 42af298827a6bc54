// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wschan

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// Single is a wait-free, bounded, capacity-one single-producer
// single-consumer channel. It hands off exactly one value of type T
// between one producer goroutine and one consumer goroutine — the shape
// a thief uses to push a stolen task back to its victim, or a worker
// uses to post a single steal request.
//
// Layout follows the spec exactly: leading padding so an array of Single
// channels does not false-share with a preceding allocation, the slot
// itself followed by padding up to one cache line, then full on its own
// cache line. Go generics cannot size a padding array off an arbitrary T
// at compile time, so the post-slot pad is a fixed [CacheLineSize]byte
// regardless of sizeof(T); [NewSingle] asserts T fits within one cache
// line, so the slot+pad region never exceeds two lines.
//
// Zero value: NOT ready to use. Always construct with [NewSingle].
type Single[T any] struct {
	_    pad
	slot T
	_    pad
	full atomix.Bool
	_    pad
}

// NewSingle creates a ready-to-use capacity-one channel for T.
//
// Panics if T does not fit within one cache line ([CacheLineSize]
// bytes) — a contract violation per spec §3, detected here because
// unsafe.Sizeof is free and always available, unlike the
// single-producer/single-consumer discipline which cannot be checked
// without per-call owner tracking.
func NewSingle[T any]() *Single[T] {
	var zero T
	if unsafe.Sizeof(zero) > CacheLineSize {
		panic("wschan: T does not fit within one cache line")
	}
	return &Single[T]{}
}

// TrySend moves *src into the channel (producer only).
//
// Returns false, retaining ownership of *src, if the channel is
// observably full. Wait-free: one acquire-load and, on success, one
// release-store — no loops, no blocking.
func (c *Single[T]) TrySend(src *T) bool {
	if c.full.LoadAcquire() {
		return false
	}
	c.slot = *src
	c.full.StoreRelease(true)
	return true
}

// TryRecv moves the channel's value into *dst (consumer only).
//
// Returns false, leaving *dst untouched, if the channel is observably
// empty. Wait-free: one acquire-load and, on success, one release-store.
func (c *Single[T]) TryRecv(dst *T) bool {
	if !c.full.LoadAcquire() {
		return false
	}
	*dst = c.slot
	var zero T
	c.slot = zero
	c.full.StoreRelease(false)
	return true
}

// Clear resets an occupied channel for reuse.
//
// Not thread-safe: the caller must guarantee no producer or consumer is
// concurrently active. Precondition: the channel is full — Clear on an
// empty channel is a contract violation (see DESIGN.md Open Questions
// for why the precondition is kept rather than relaxed).
func (c *Single[T]) Clear() {
	if debugAssertionsEnabled && !c.full.Load() {
		panic("wschan: Clear called on an empty Single channel")
	}
	var zero T
	c.slot = zero
	c.full.StoreRelease(false)
}
