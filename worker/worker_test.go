package worker

import (
	"sync/atomic"
	"testing"
)

func TestRunVisitsEveryIndex(t *testing.T) {
	const n = 100
	var seen [n]int32
	Run(n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})
	for i, c := range seen {
		if c != 1 {
			t.Fatalf("index %d ran %d times", i, c)
		}
	}
}

func TestRunSurvivesPanics(t *testing.T) {
	var ran int32
	Run(8, func(i int) {
		atomic.AddInt32(&ran, 1)
		if i%2 == 0 {
			panic("boom")
		}
	})
	if ran != 8 {
		t.Fatalf("expected 8 calls, got %d", ran)
	}

	// The pool must still accept work after recovering.
	Run(4, func(int) { atomic.AddInt32(&ran, 1) })
	if ran != 12 {
		t.Fatalf("expected 12 calls, got %d", ran)
	}
}
