package skeleton

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/voxelarena/skelsim/game"
)

// Orientation is the facing direction of a skeleton in radians. It is only used by external code for
// animation and to build walk vectors; it never feeds into the physics by itself.
type Orientation struct {
	Yaw   float32
	Pitch float32
}

// Direction returns the unit vector the orientation looks along.
func (o Orientation) Direction() mgl32.Vec3 {
	return game.DirectionVector(o.Yaw, o.Pitch)
}

// WalkVector turns movement input into a horizontal walk vector relative to the yaw of the orientation.
// forward and strafe are in [-1, 1], with positive strafe moving to the right. Diagonal input is
// normalized so it is never faster than straight input.
func (o Orientation) WalkVector(forward, strafe, speed float32) mgl32.Vec3 {
	l := math32.Sqrt(forward*forward + strafe*strafe)
	if l < 1e-4 {
		return mgl32.Vec3{}
	}
	if l > 1 {
		forward, strafe = forward/l, strafe/l
	}

	sin, cos := math32.Sin(o.Yaw), math32.Cos(o.Yaw)
	front := mgl32.Vec3{-sin, 0, cos}
	right := mgl32.Vec3{-cos, 0, -sin}
	return front.Mul(forward).Add(right.Mul(strafe)).Mul(speed)
}
