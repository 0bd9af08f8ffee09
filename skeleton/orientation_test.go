package skeleton

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestWalkVector(t *testing.T) {
	tests := []struct {
		name                   string
		yaw                    float32
		forward, strafe, speed float32
		want                   mgl32.Vec3
	}{
		{"forward facing +z", 0, 1, 0, 10, mgl32.Vec3{0, 0, 10}},
		{"forward facing -x", math32.Pi / 2, 1, 0, 10, mgl32.Vec3{-10, 0, 0}},
		{"strafe right facing +z", 0, 0, 1, 4, mgl32.Vec3{-4, 0, 0}},
		{"backwards", 0, -0.5, 0, 4, mgl32.Vec3{0, 0, -2}},
		{"no input", 1, 0, 0, 10, mgl32.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Orientation{Yaw: tt.yaw}.WalkVector(tt.forward, tt.strafe, tt.speed)
			approxEqualVec(t, got, tt.want, 1e-5, "walk vector")
		})
	}
}

func TestWalkVectorNormalizesDiagonalInput(t *testing.T) {
	got := Orientation{Yaw: 0.3}.WalkVector(1, 1, 10)
	approxEqual(t, got.Len(), 10, 1e-4, "diagonal walk speed")
	if got.Y() != 0 {
		t.Fatalf("expected a horizontal walk vector, got %v", got)
	}
}

func TestDirection(t *testing.T) {
	approxEqualVec(t, Orientation{}.Direction(), mgl32.Vec3{0, 0, 1}, 1e-6, "direction")
	approxEqualVec(t, Orientation{Pitch: math32.Pi / 2}.Direction(), mgl32.Vec3{0, -1, 0}, 1e-6, "direction looking down")
}
