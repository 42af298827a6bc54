// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wschan

// Options configures channel construction, narrowed from the teacher's
// four-way (SPSC/MPSC/SPMC/MPMC) builder to the two variants this spec
// defines.
type Options struct {
	singleProducer bool
	singleConsumer bool
	capacity       int
}

// Builder creates channels with fluent configuration, for call sites
// that decide producer/consumer arity from configuration rather than
// hard-coding [NewSingle] or [NewBounded] directly.
//
// Example:
//
//	ch := wschan.Build[Task](wschan.New(64).SingleProducer().SingleConsumer())
//	mailbox := wschan.Build[Task](wschan.New(64).SingleConsumer())
type Builder struct {
	opts Options
}

// New creates a channel builder with the given capacity. Capacity is
// only consulted by the [Bounded] path — [Single] is always capacity
// one per spec §3, so SingleProducer().SingleConsumer() ignores it.
//
// Panics if capacity <= 0.
func New(capacity int) *Builder {
	if capacity <= 0 {
		panic("wschan: capacity must be > 0")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// SingleProducer declares that only one goroutine will call TrySend.
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// SingleConsumer declares that only one goroutine will call TryRecv.
// This spec only has single-consumer channels, so every valid
// configuration sets this.
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// Build creates a Channel[T] with automatic algorithm selection.
//
//	SingleProducer + SingleConsumer → *Single[T]  (capacity ignored)
//	SingleConsumer only             → *Bounded[T]
//
// Panics if neither SingleConsumer nor SingleProducer+SingleConsumer is
// set — this spec has no multi-consumer variant to fall back to.
func Build[T any](b *Builder) Channel[T] {
	switch {
	case b.opts.singleProducer && b.opts.singleConsumer:
		return NewSingle[T]()
	case b.opts.singleConsumer:
		return NewBounded[T](b.opts.capacity)
	default:
		panic("wschan: Build requires SingleConsumer(), optionally with SingleProducer()")
	}
}

// BuildSingle creates a [Single] channel with compile-time type safety.
// Panics if the builder is not configured with SingleProducer().SingleConsumer().
func BuildSingle[T any](b *Builder) *Single[T] {
	if !b.opts.singleProducer || !b.opts.singleConsumer {
		panic("wschan: BuildSingle requires SingleProducer().SingleConsumer()")
	}
	return NewSingle[T]()
}

// BuildBounded creates a [Bounded] channel with compile-time type safety.
// Panics if the builder is configured with SingleProducer() — a Bounded
// channel is multi-producer by definition.
func BuildBounded[T any](b *Builder) *Bounded[T] {
	if b.opts.singleProducer {
		panic("wschan: BuildBounded requires no SingleProducer()")
	}
	return NewBounded[T](b.opts.capacity)
}
