package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/voxelarena/skelsim/skeleton"
)

func frameAt(x float32) skeleton.Frame {
	return skeleton.Frame{Position: mgl32.Vec3{x, 0, 0}}
}

func TestFrameHistoryGet(t *testing.T) {
	h := NewFrameHistory(4)
	if _, ok := h.Latest(); ok {
		t.Fatalf("expected empty history to have no latest frame")
	}

	for tick := int64(1); tick <= 6; tick++ {
		h.Add(tick, frameAt(float32(tick)))
	}
	if h.Len() != 4 || h.Capacity() != 4 {
		t.Fatalf("expected len=4 cap=4, got len=%d cap=%d", h.Len(), h.Capacity())
	}

	for tick := int64(3); tick <= 6; tick++ {
		hf, ok := h.Get(tick)
		if !ok {
			t.Fatalf("expected tick %d to be present", tick)
		}
		if hf.Frame.Position.X() != float32(tick) {
			t.Fatalf("tick %d returned frame %v", tick, hf.Frame)
		}
	}
	for _, tick := range []int64{1, 2, 7} {
		if _, ok := h.Get(tick); ok {
			t.Fatalf("expected tick %d to be missing", tick)
		}
	}

	latest, ok := h.Latest()
	if !ok || latest.Tick != 6 {
		t.Fatalf("expected latest tick 6, got %d (%v)", latest.Tick, ok)
	}
}

func TestFrameHistoryGetClosest(t *testing.T) {
	h := NewFrameHistory(8)
	if _, ok := h.GetClosest(5); ok {
		t.Fatalf("expected no closest frame in an empty history")
	}

	for _, tick := range []int64{10, 20, 30} {
		h.Add(tick, frameAt(float32(tick)))
	}
	tests := []struct {
		tick, want int64
	}{
		{0, 10},
		{14, 10},
		{15, 20},
		{26, 30},
		{100, 30},
	}
	for _, tt := range tests {
		hf, ok := h.GetClosest(tt.tick)
		if !ok || hf.Tick != tt.want {
			t.Fatalf("GetClosest(%d) = %d, want %d", tt.tick, hf.Tick, tt.want)
		}
	}
}

func TestFrameHistoryRangeAndClear(t *testing.T) {
	h := NewFrameHistory(3)
	for tick := int64(1); tick <= 5; tick++ {
		h.Add(tick, frameAt(float32(tick)))
	}

	got := h.GetRange(2, 4)
	if len(got) != 2 || got[0].Tick != 3 || got[1].Tick != 4 {
		t.Fatalf("unexpected range %+v", got)
	}

	h.Clear()
	if h.Len() != 0 || h.GetRange(0, 10) != nil {
		t.Fatalf("expected cleared history to be empty")
	}
	h.Add(9, frameAt(9))
	if latest, _ := h.Latest(); latest.Tick != 9 {
		t.Fatalf("expected history to be usable after clear, got %+v", latest)
	}
}

func TestNewFrameHistoryMinimumCapacity(t *testing.T) {
	h := NewFrameHistory(0)
	h.Add(1, frameAt(1))
	h.Add(2, frameAt(2))
	if h.Capacity() != 1 || h.Len() != 1 {
		t.Fatalf("expected a single slot history, got cap=%d len=%d", h.Capacity(), h.Len())
	}
}
