// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wschan_test

import (
	"sync"
	"testing"

	"github.com/ashgrove-labs/wschan"
)

type task struct {
	id, value int
}

func TestSingleBasic(t *testing.T) {
	ch := wschan.NewSingle[int]()

	var out int
	if ch.TryRecv(&out) {
		t.Fatal("TryRecv on empty channel returned true")
	}

	in := 42
	if !ch.TrySend(&in) {
		t.Fatal("TrySend on empty channel returned false")
	}

	second := 7
	if ch.TrySend(&second) {
		t.Fatal("TrySend on full channel returned true")
	}

	if !ch.TryRecv(&out) {
		t.Fatal("TryRecv on full channel returned false")
	}
	if out != 42 {
		t.Fatalf("TryRecv: got %d, want 42", out)
	}

	if ch.TryRecv(&out) {
		t.Fatal("second TryRecv on now-empty channel returned true")
	}
}

func TestSingleStruct(t *testing.T) {
	ch := wschan.NewSingle[task]()

	in := task{id: 1, value: 100}
	if !ch.TrySend(&in) {
		t.Fatal("TrySend failed")
	}

	var out task
	if !ch.TryRecv(&out) {
		t.Fatal("TryRecv failed")
	}
	if out != in {
		t.Fatalf("TryRecv: got %+v, want %+v", out, in)
	}
}

func TestSingleClear(t *testing.T) {
	ch := wschan.NewSingle[int]()
	in := 9
	if !ch.TrySend(&in) {
		t.Fatal("TrySend failed")
	}

	ch.Clear()

	var out int
	if ch.TryRecv(&out) {
		t.Fatal("TryRecv observed a value after Clear")
	}

	in = 10
	if !ch.TrySend(&in) {
		t.Fatal("TrySend failed after Clear")
	}
}

func TestSingleOversizedTPanics(t *testing.T) {
	type big [wschan.CacheLineSize + 1]byte

	defer func() {
		if recover() == nil {
			t.Fatal("NewSingle[big] did not panic")
		}
	}()
	wschan.NewSingle[big]()
}

// TestScenarioS1SPSCRoundTrip is spec §8 scenario S1: the consumer spins
// on TryRecv while the producer sends a single value; the consumer must
// observe it exactly once, and a second TryRecv must return false.
func TestScenarioS1SPSCRoundTrip(t *testing.T) {
	ch := wschan.NewSingle[int]()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		v := 42
		for !ch.TrySend(&v) {
		}
	}()

	received := make(chan int, 1)
	go func() {
		defer wg.Done()
		var v int
		for !ch.TryRecv(&v) {
		}
		received <- v
	}()

	wg.Wait()
	got := <-received
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}

	var v int
	if ch.TryRecv(&v) {
		t.Fatal("second TryRecv returned true")
	}
}

// TestScenarioS2SPSCTenItems is spec §8 scenario S2: ten values
// 42,53,...,141 sent one at a time over a capacity-one channel, received
// in order by a busy-looping consumer.
func TestScenarioS2SPSCTenItems(t *testing.T) {
	ch := wschan.NewSingle[int]()
	const n = 10

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := range n {
			v := 42 + 11*j
			for !ch.TrySend(&v) {
			}
		}
	}()

	got := make([]int, 0, n)
	for len(got) < n {
		var v int
		if ch.TryRecv(&v) {
			got = append(got, v)
		}
	}
	wg.Wait()

	for j := range n {
		want := 42 + 11*j
		if got[j] != want {
			t.Fatalf("item %d: got %d, want %d", j, got[j], want)
		}
	}
}
