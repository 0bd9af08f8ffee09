package skeleton

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"
)

// Frame is a snapshot of the kinematic state of a skeleton. It is the unit of state that networking code
// sends around and restores; the skeleton does not interpret it any further.
type Frame struct {
	Position    mgl32.Vec3
	Velocity    mgl32.Vec3
	Orientation Orientation
}

// frameSize is the size of the binary encoding of a Frame: eight float32 values.
const frameSize = 8 * 4

// Checksum returns a hash of the exact bit patterns of the frame. Two peers that simulated the same inputs
// produce the same checksum, so a mismatch signals a desync.
func (f Frame) Checksum() uint64 {
	var buf [frameSize]byte
	vals := [8]float32{
		f.Position[0], f.Position[1], f.Position[2],
		f.Velocity[0], f.Velocity[1], f.Velocity[2],
		f.Orientation.Yaw, f.Orientation.Pitch,
	}
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return xxh3.Hash(buf[:])
}
