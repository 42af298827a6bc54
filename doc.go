// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wschan provides the inter-thread message-passing substrate for
// a work-stealing task runtime: a small family of shared-memory channels
// that transfer task descriptors between worker goroutines with precise
// concurrency guarantees.
//
// Two variants are provided:
//
//   - Single: wait-free, bounded, capacity-one, one producer / one
//     consumer. Used for a stolen-task handoff or a steal request.
//   - Bounded: bounded multi-producer/single-consumer, producer-side
//     mutex, lock-free consumer. Used as a worker's inbound mailbox.
//
// The scheduler, stealing policy, thread bootstrap, and any public
// runtime API are out of scope — this package only moves values between
// goroutines that already agree on who is allowed to call what.
//
// # Quick Start
//
//	steal := wschan.NewSingle[Task]()
//	mailbox := wschan.NewBounded[Task](64)
//
// Builder API, for code that decides producer/consumer arity from
// configuration rather than at the call site:
//
//	ch := wschan.Build[Task](wschan.New(64).SingleProducer().SingleConsumer()) // → *Single[Task]
//	ch := wschan.Build[Task](wschan.New(64).SingleConsumer())                  // → *Bounded[Task]
//
// # Basic Usage
//
// Both variants share the same ownership-transferring, non-blocking
// TrySend/TryRecv shape:
//
//	task := Task{ID: 7}
//	if !mailbox.TrySend(&task) {
//	    // mailbox full — caller decides whether to retry, drop, or
//	    // redirect to another worker's mailbox.
//	}
//
//	var t Task
//	if mailbox.TryRecv(&t) {
//	    process(t)
//	}
//
// # Common Patterns
//
// Stolen-task handoff (Single):
//
//	steal := wschan.NewSingle[Task]()
//
//	// Thief goroutine
//	go func() {
//	    for {
//	        t := findVictimTask()
//	        for !steal.TrySend(&t) {
//	            runtime.Gosched()
//	        }
//	    }
//	}()
//
//	// Victim goroutine
//	go func() {
//	    var t Task
//	    for {
//	        if steal.TryRecv(&t) {
//	            run(t)
//	        }
//	    }
//	}()
//
// Worker mailbox (Bounded):
//
//	mailbox := wschan.NewBounded[Task](256)
//
//	// Any number of thieves post steal requests or spilled tasks
//	for range thieves {
//	    go func() {
//	        for task := range stolen {
//	            for !mailbox.TrySend(&task) {
//	                runtime.Gosched()
//	            }
//	        }
//	    }()
//	}
//
//	// The owning worker alone drains its mailbox
//	go func() {
//	    var t Task
//	    for {
//	        if mailbox.TryRecv(&t) {
//	            run(t)
//	        }
//	    }
//	}()
//
// # Ownership
//
// TrySend transfers ownership of the argument from caller to channel;
// TryRecv transfers ownership from channel to caller. No value is ever
// observed by two parties at once. Dropping a channel while it is
// non-empty abandons the residual elements — there is no destructor
// hook, matching spec §3's "no destructor that must run on channel
// teardown" contract.
//
// # Thread Safety
//
//   - Single: exactly one producer goroutine, one consumer goroutine.
//     Neither may call Clear concurrently with the other.
//   - Bounded: any number of producer goroutines, exactly one consumer
//     goroutine. Clear requires exclusive access.
//
// Violating these constraints is a programmer error (undefined behavior
// at the spec level), not a recoverable runtime condition. The
// wschandebug build tag enables the subset of these violations that are
// cheaply detectable (see debug.go).
//
// # Memory Ordering
//
// Single synchronizes producer and consumer purely through acquire/
// release operations on its full flag. Bounded synchronizes producers
// among themselves with backLock and synchronizes with its single
// consumer through acquire/release operations on back (producer→consumer)
// and front (consumer→producer). See spsc.go and mpsc.go for the full
// ordering rationale at each operation.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channels, WaitGroup) but cannot observe happens-before relationships
// established purely through atomic acquire/release pairs on otherwise
// plain fields. Bounded's consumer-side slot read after an acquire-load
// of back is correct but may read as a false positive under -race in
// adversarial interleavings; concurrency stress tests that depend on
// this are gated behind the RaceEnabled constant (see race.go).
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives
// with explicit memory ordering and [code.hybscloud.com/spin] for
// adaptive busy-wait in its stress tests. It intentionally does not use
// [code.hybscloud.com/iox]'s blocking-retry helpers: spec's Non-goals
// exclude blocking send/recv primitives, and iox.Backoff exists
// specifically to implement that excluded behavior (see DESIGN.md).
package wschan
