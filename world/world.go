package world

import (
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/sasha-s/go-deadlock"
)

// World is a sparse voxel map made of chunks. It answers collision queries for skeletons and is safe to
// query from several goroutines at once. Mutating it while skeletons are ticking against it makes those
// ticks non-deterministic.
type World struct {
	chunks map[cube.Pos]*Chunk
	logger *slog.Logger

	deadlock.RWMutex
}

// New creates an empty world. If logger is nil, slog.Default() is used.
func New(logger *slog.Logger) *World {
	if logger == nil {
		logger = slog.Default()
	}
	return &World{
		chunks: make(map[cube.Pos]*Chunk),
		logger: logger,
	}
}

// SetBlock marks the voxel at pos as solid or empty.
func (w *World) SetBlock(pos cube.Pos, solid bool) {
	w.Lock()
	defer w.Unlock()

	w.setBlock(pos, solid)
}

// Fill marks every voxel in the inclusive range [min, max] as solid or empty.
func (w *World) Fill(min, max cube.Pos, solid bool) {
	w.Lock()
	defer w.Unlock()

	for x := min[0]; x <= max[0]; x++ {
		for y := min[1]; y <= max[1]; y++ {
			for z := min[2]; z <= max[2]; z++ {
				w.setBlock(cube.Pos{x, y, z}, solid)
			}
		}
	}
}

func (w *World) setBlock(pos cube.Pos, solid bool) {
	chunkPos, x, y, z := chunkPosOf(pos)
	c, ok := w.chunks[chunkPos]
	if !ok {
		if !solid {
			return
		}
		c = &Chunk{}
		w.chunks[chunkPos] = c
		w.logger.Debug("created chunk", "chunkPos", chunkPos)
	}

	c.Set(x, y, z, solid)
	if c.Empty() {
		delete(w.chunks, chunkPos)
		w.logger.Debug("removed empty chunk", "chunkPos", chunkPos)
	}
}

// Solid returns true if the voxel at pos is solid.
func (w *World) Solid(pos cube.Pos) bool {
	w.RLock()
	defer w.RUnlock()

	return w.solid(pos)
}

func (w *World) solid(pos cube.Pos) bool {
	chunkPos, x, y, z := chunkPosOf(pos)
	c, ok := w.chunks[chunkPos]
	if !ok {
		return false
	}
	return c.Solid(x, y, z)
}

// Bumps returns true if the box overlaps any solid voxel. A box that only touches the face of a voxel
// does not bump into it.
func (w *World) Bumps(bb cube.BBox) bool {
	min, max := bb.Min(), bb.Max()
	x0, x1 := int(math32.Floor(min[0])), int(math32.Ceil(max[0]))-1
	y0, y1 := int(math32.Floor(min[1])), int(math32.Ceil(max[1]))-1
	z0, z1 := int(math32.Floor(min[2])), int(math32.Ceil(max[2]))-1

	w.RLock()
	defer w.RUnlock()

	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for z := z0; z <= z1; z++ {
				if w.solid(cube.Pos{x, y, z}) {
					return true
				}
			}
		}
	}
	return false
}

// ChunkCount returns the amount of chunks holding at least one solid voxel.
func (w *World) ChunkCount() int {
	w.RLock()
	defer w.RUnlock()

	return len(w.chunks)
}

// PurgeChunks removes all chunks from the world.
func (w *World) PurgeChunks() {
	w.Lock()
	defer w.Unlock()

	for chunkPos := range w.chunks {
		delete(w.chunks, chunkPos)
	}
	w.logger.Debug("purged all chunks")
}
