// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wschan

import (
	"sync"
	"unsafe"

	"code.hybscloud.com/atomix"
)

// Bounded is a bounded multi-producer single-consumer channel: a worker's
// inbound mailbox for steal requests or spilled tasks. Producers
// serialize on a mutex; the consumer never takes a lock.
//
// Indices range over [0, 2·capacity) rather than [0, capacity) — the
// double-range trick from spec §3/§9. It distinguishes empty
// (front==back) from full (the forward distance from front to back
// equals capacity) without a separate counter atomic, which keeps the
// consumer lock-free: TryRecv only ever has to read front and back, never
// coordinate with anything producers maintain beyond back itself.
//
// Zero value: NOT ready to use. Always construct with [NewBounded].
type Bounded[T any] struct {
	_        pad
	backLock sync.Mutex
	capacity uint64
	buffer   []T
	_        pad
	front    atomix.Uint64 // consumer-owned
	_        pad
	back     atomix.Uint64 // producer-owned, serialized by backLock
	_        pad
}

func init() {
	var b Bounded[byte]
	frontOff := unsafe.Offsetof(b.front)
	backOff := unsafe.Offsetof(b.back)
	delta := backOff - frontOff
	if delta < CacheLineSize {
		panic("wschan: front and back do not occupy distinct cache lines")
	}
}

// NewBounded creates a ready-to-use bounded channel with room for exactly
// capacity in-flight values.
//
// Panics if capacity <= 0 — a contract violation per spec §7, matching
// the teacher's own convention of panicking on invalid construction
// arguments rather than returning a constructor error.
func NewBounded[T any](capacity int) *Bounded[T] {
	if capacity <= 0 {
		panic("wschan: capacity must be > 0")
	}
	return &Bounded[T]{
		capacity: uint64(capacity),
		buffer:   make([]T, capacity),
	}
}

// Cap returns the channel's fixed capacity.
func (q *Bounded[T]) Cap() int {
	return int(q.capacity)
}

// occupancy returns the forward distance from front to back, i.e. the
// number of sent-but-not-received elements — spec's d = back−front,
// taken modulo the 2·capacity index range so the wrap case (back has
// cycled past 2·capacity−1 while front has not) resolves to the same
// value a signed |back−front| == capacity check would give.
func (q *Bounded[T]) occupancy(back, front uint64) uint64 {
	d := int64(back) - int64(front)
	if d < 0 {
		d += int64(2 * q.capacity)
	}
	return uint64(d)
}

func (q *Bounded[T]) slotIndex(i uint64) uint64 {
	if i >= q.capacity {
		return i - q.capacity
	}
	return i
}

func (q *Bounded[T]) advance(i uint64) uint64 {
	next := i + 1
	if next == 2*q.capacity {
		return 0
	}
	return next
}

// TrySend moves *src into the channel (safe from any number of
// concurrent producer goroutines).
//
// Returns false, retaining ownership of *src, if the channel is
// observably full at the lock-free fast-path check or at the re-check
// taken under backLock.
func (q *Bounded[T]) TrySend(src *T) bool {
	back := q.back.LoadRelaxed()
	front := q.front.LoadAcquire()
	if q.occupancy(back, front) == q.capacity {
		return false
	}

	q.backLock.Lock()
	back = q.back.LoadRelaxed()
	if q.occupancy(back, front) == q.capacity {
		q.backLock.Unlock()
		return false
	}

	q.buffer[q.slotIndex(back)] = *src
	q.back.StoreRelease(q.advance(back))
	q.backLock.Unlock()
	return true
}

// TryRecv moves the channel's oldest value into *dst (single consumer
// only, lock-free).
//
// Returns false, leaving *dst untouched, if the channel is observably
// empty.
func (q *Bounded[T]) TryRecv(dst *T) bool {
	front := q.front.LoadRelaxed()
	back := q.back.LoadAcquire()
	if front == back {
		return false
	}

	pos := q.slotIndex(front)
	*dst = q.buffer[pos]
	var zero T
	q.buffer[pos] = zero
	q.front.StoreRelease(q.advance(front))
	return true
}

// Clear resets the channel to empty for reuse.
//
// Not thread-safe: the caller must guarantee exclusive access — no
// producer or consumer concurrently active.
func (q *Bounded[T]) Clear() {
	if debugAssertionsEnabled {
		if !q.backLock.TryLock() {
			panic("wschan: Clear called while a producer holds backLock")
		}
		q.backLock.Unlock()
	}
	q.front.StoreRelaxed(0)
	q.back.StoreRelaxed(0)
	var zero T
	for i := range q.buffer {
		q.buffer[i] = zero
	}
}
