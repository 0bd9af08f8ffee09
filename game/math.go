package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// RoundVec32 will round a 32-bit vector to a given precision.
func RoundVec32(v mgl32.Vec3, p int) mgl32.Vec3 {
	return mgl32.Vec3{Round32(v.X(), p), Round32(v.Y(), p), Round32(v.Z(), p)}
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// Vec3HzDist returns the horizontal length of a vector, ignoring its Y component.
func Vec3HzDist(vec3 mgl32.Vec3) float32 {
	return math32.Sqrt(Vec3HzDistSqr(vec3))
}

// DirectionVector returns a unit direction vector from the given yaw and pitch values in radians. A yaw
// of zero faces +Z and a positive pitch looks down.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	m := math32.Cos(pitch)

	return mgl32.Vec3{
		-m * math32.Sin(yaw),
		-math32.Sin(pitch),
		m * math32.Cos(yaw),
	}
}

// IsFinite32 returns true if the value is neither NaN nor infinite.
func IsFinite32(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

// IsFiniteVec32 returns true if every component of the vector is finite.
func IsFiniteVec32(v mgl32.Vec3) bool {
	return IsFinite32(v[0]) && IsFinite32(v[1]) && IsFinite32(v[2])
}
