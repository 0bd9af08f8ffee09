package entity

import "github.com/voxelarena/skelsim/skeleton"

// HistoricalFrame is a frame of an entity that was recorded at a certain tick.
type HistoricalFrame struct {
	Frame skeleton.Frame
	Tick  int64
}

// FrameHistory is a fixed-size circular buffer of frames, ordered by the tick they were recorded at.
type FrameHistory struct {
	buffer   []HistoricalFrame
	capacity int
	head     int // Points to the next write position
	size     int // Current number of elements
}

// NewFrameHistory creates a new frame history with the specified capacity. A capacity below one is
// raised to one.
func NewFrameHistory(capacity int) *FrameHistory {
	if capacity < 1 {
		capacity = 1
	}
	return &FrameHistory{
		buffer:   make([]HistoricalFrame, capacity),
		capacity: capacity,
	}
}

// Add inserts a new frame into the history, overwriting the oldest one when full.
func (h *FrameHistory) Add(tick int64, f skeleton.Frame) {
	h.buffer[h.head] = HistoricalFrame{Frame: f, Tick: tick}
	h.head = (h.head + 1) % h.capacity
	if h.size < h.capacity {
		h.size++
	}
}

// at returns the i-th most recent entry.
func (h *FrameHistory) at(i int) HistoricalFrame {
	return h.buffer[(h.head-1-i+h.capacity)%h.capacity]
}

// Get retrieves the frame recorded at exactly tick.
func (h *FrameHistory) Get(tick int64) (HistoricalFrame, bool) {
	for i := 0; i < h.size; i++ {
		hf := h.at(i)
		if hf.Tick == tick {
			return hf, true
		}
		// If we've gone past the tick we're looking for, stop searching
		if hf.Tick < tick {
			break
		}
	}
	return HistoricalFrame{}, false
}

// GetClosest retrieves the frame recorded closest to tick. Ties resolve to the more recent frame.
func (h *FrameHistory) GetClosest(tick int64) (HistoricalFrame, bool) {
	var (
		closest HistoricalFrame
		best    int64 = 1<<63 - 1
		found   bool
	)
	for i := 0; i < h.size; i++ {
		hf := h.at(i)
		if dist := abs64(hf.Tick - tick); dist < best {
			best, closest, found = dist, hf, true
		}
	}
	return closest, found
}

// GetRange retrieves the frames recorded within [startTick, endTick], oldest first.
func (h *FrameHistory) GetRange(startTick, endTick int64) []HistoricalFrame {
	if h.size == 0 {
		return nil
	}

	result := make([]HistoricalFrame, 0, h.size)
	for i := h.size - 1; i >= 0; i-- {
		hf := h.at(i)
		if hf.Tick >= startTick && hf.Tick <= endTick {
			result = append(result, hf)
		}
	}
	return result
}

// Latest returns the most recently added frame.
func (h *FrameHistory) Latest() (HistoricalFrame, bool) {
	if h.size == 0 {
		return HistoricalFrame{}, false
	}
	return h.at(0), true
}

// Len returns the current number of frames in the history.
func (h *FrameHistory) Len() int {
	return h.size
}

// Capacity returns the maximum number of frames the history holds.
func (h *FrameHistory) Capacity() int {
	return h.capacity
}

// Clear removes all frames from the history.
func (h *FrameHistory) Clear() {
	h.head = 0
	h.size = 0
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
