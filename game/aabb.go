package game

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// AABBAt returns the bounding box of the given dimensions anchored at pos (horizontal centre, bottom).
func AABBAt(pos mgl32.Vec3, width, height float32) cube.BBox {
	h := width / 2
	return cube.Box(
		pos[0]-h, pos[1], pos[2]-h,
		pos[0]+h, pos[1]+height, pos[2]+h,
	)
}
