package skeleton

import "github.com/ethaniccc/float32-cube/cube"

// Collider answers whether a world-space box intersects solid geometry. Implementations must be
// deterministic and free of side effects for as long as a tick is running.
type Collider interface {
	Bumps(bb cube.BBox) bool
}

// ColliderFunc is a function that implements Collider.
type ColliderFunc func(bb cube.BBox) bool

// Bumps ...
func (f ColliderFunc) Bumps(bb cube.BBox) bool {
	return f(bb)
}

// Empty is a Collider without any geometry.
var Empty Collider = ColliderFunc(func(cube.BBox) bool { return false })
