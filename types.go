// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wschan

// CacheLineSize is the assumed coherence-unit size used to pad the hot
// atomics in [Single] and [Bounded] apart from each other and from
// neighboring allocations. 64 covers every mainstream target this
// runtime runs on; override by embedding additional padding alongside a
// channel if a platform needs a different value — Go has no portable
// compile-time way to query the host cache line size.
const CacheLineSize = 64

// pad is cache-line padding to prevent false sharing between the fields
// that precede and follow it.
type pad [CacheLineSize]byte

// Sender is the producer-side half of a channel: ownership-transferring,
// non-blocking enqueue. Both [Single] and [Bounded] implement it.
type Sender[T any] interface {
	// TrySend moves *src into the channel. Returns false, retaining
	// ownership of *src, if the channel is observably full.
	TrySend(src *T) bool
}

// Receiver is the consumer-side half of a channel: ownership-transferring,
// non-blocking dequeue. Both [Single] and [Bounded] implement it.
type Receiver[T any] interface {
	// TryRecv moves the channel's next value into *dst. Returns false,
	// leaving *dst untouched, if the channel is observably empty.
	TryRecv(dst *T) bool
}

// Channel is the combined producer/consumer interface shared by every
// variant in this package.
//
// The interface intentionally excludes a length/size query: an accurate
// count would require cross-core synchronization beyond what the
// fullness/emptiness checks already need, and callers of a work-stealing
// mailbox only ever need try-send/try-recv plus backoff.
type Channel[T any] interface {
	Sender[T]
	Receiver[T]
	// Clear resets the channel for reuse. Not thread-safe: the caller
	// must guarantee no concurrent TrySend/TryRecv is in flight.
	Clear()
}
