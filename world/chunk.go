package world

import "github.com/ethaniccc/float32-cube/cube"

// ChunkSize is the edge length of a chunk in voxels.
const ChunkSize = 16

// Chunk is a 16x16x16 cube of voxels stored as a bitset. A set bit means the voxel is solid.
type Chunk struct {
	bits  [ChunkSize * ChunkSize * ChunkSize / 64]uint64
	count int
}

// Solid returns true if the voxel at the chunk-local coordinates is solid.
func (c *Chunk) Solid(x, y, z int) bool {
	i := chunkIndex(x, y, z)
	return c.bits[i>>6]&(1<<(i&63)) != 0
}

// Set marks the voxel at the chunk-local coordinates as solid or empty.
func (c *Chunk) Set(x, y, z int, solid bool) {
	i := chunkIndex(x, y, z)
	mask := uint64(1) << (i & 63)
	was := c.bits[i>>6]&mask != 0
	if was == solid {
		return
	}
	if solid {
		c.bits[i>>6] |= mask
		c.count++
		return
	}
	c.bits[i>>6] &^= mask
	c.count--
}

// Empty returns true if the chunk has no solid voxels left.
func (c *Chunk) Empty() bool {
	return c.count == 0
}

func chunkIndex(x, y, z int) int {
	return (y*ChunkSize+z)*ChunkSize + x
}

// chunkPosOf returns the position of the chunk holding the voxel at pos, and the position of the voxel
// inside that chunk.
func chunkPosOf(pos cube.Pos) (chunkPos cube.Pos, x, y, z int) {
	chunkPos = cube.Pos{pos[0] >> 4, pos[1] >> 4, pos[2] >> 4}
	return chunkPos, pos[0] & (ChunkSize - 1), pos[1] & (ChunkSize - 1), pos[2] & (ChunkSize - 1)
}
