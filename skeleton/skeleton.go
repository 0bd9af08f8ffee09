package skeleton

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/voxelarena/skelsim/assert"
	"github.com/voxelarena/skelsim/game"
)

// Skeleton is the physical body of an entity: a box of hsize×vsize×hsize anchored at its horizontal centre
// and vertical bottom. The skeleton is the only thing that mutates its own state, and a single caller must
// own it at a time.
type Skeleton struct {
	hsize float32
	vsize float32

	position    mgl32.Vec3
	velocity    mgl32.Vec3
	orientation Orientation

	cfg Config
}

// New creates a skeleton at rest using DefaultConfig.
func New(pos mgl32.Vec3, orientation Orientation, hsize, vsize float32) *Skeleton {
	return NewWithConfig(DefaultConfig(), pos, orientation, hsize, vsize)
}

// NewWithConfig creates a skeleton at rest that ticks with the given config.
func NewWithConfig(cfg Config, pos mgl32.Vec3, orientation Orientation, hsize, vsize float32) *Skeleton {
	assert.IsTrue(hsize > 0, "skeleton hsize must be positive, got %v", hsize)
	assert.IsTrue(vsize > 0, "skeleton vsize must be positive, got %v", vsize)
	assert.IsTrue(cfg.Substeps > 0, "skeleton config needs at least one substep, got %d", cfg.Substeps)
	assert.IsTrue(game.IsFiniteVec32(pos), "skeleton spawned at non-finite position %v", pos)

	return &Skeleton{
		hsize:       hsize,
		vsize:       vsize,
		position:    pos,
		orientation: orientation,
		cfg:         cfg,
	}
}

// Tick advances the skeleton by dt seconds against the world: gravity first, then movement with collision
// resolution, then rescue out of geometry. The phases always run in this order.
func (s *Skeleton) Tick(w Collider, dt float32) TickResult {
	s.tickGravity(dt)
	bumps, climbed := s.tickMove(w, dt)
	rescued := s.tickRescue(w, dt)

	return TickResult{
		Bumps:   bumps,
		Climbed: climbed,
		Rescued: rescued,
	}
}

// tickGravity accelerates the skeleton downwards and then damps the velocity on all axes.
func (s *Skeleton) tickGravity(dt float32) {
	s.velocity[1] -= s.cfg.Gravity * dt
	s.velocity = s.velocity.Mul(1 - s.cfg.GravityDamping*dt)
}

// tickRescue pushes the skeleton up if it is stuck inside geometry. It never moves horizontally, so a
// skeleton that could only be freed sideways keeps rising.
func (s *Skeleton) tickRescue(w Collider, dt float32) bool {
	if s.PosOK(w, s.position) {
		return false
	}
	s.position[1] += s.cfg.RescueSpeed * dt
	return true
}

// OnGround returns true if there is something solid just beneath the skeleton.
func (s *Skeleton) OnGround(w Collider) bool {
	return !s.PosOK(w, s.position.Sub(mgl32.Vec3{0, s.cfg.GroundProbe, 0}))
}

// TryJump sets the vertical velocity to jumpSpeed if the skeleton is on the ground. Airborne skeletons
// cannot jump.
func (s *Skeleton) TryJump(w Collider, jumpSpeed float32) {
	if s.OnGround(w) {
		s.velocity[1] = jumpSpeed
	}
}

// TryWalk applies the horizontal walk vector. On the ground the walk speed is taken over directly. In the
// air the skeleton accelerates towards it while its horizontal speed is below the air control limit, and
// is damped regardless.
func (s *Skeleton) TryWalk(dt float32, w Collider, walkSpeed mgl32.Vec3) {
	if s.OnGround(w) {
		s.velocity[0] = walkSpeed[0]
		s.velocity[2] = walkSpeed[2]
		return
	}

	if game.Vec3HzDist(s.velocity) < s.cfg.MaxAirControlSpeed {
		s.velocity = s.velocity.Add(walkSpeed.Mul(s.cfg.AirControl).Mul(dt))
	}
	s.velocity = s.velocity.Mul(1 - s.cfg.AirDamping*dt)
}

// PosOK returns true if the skeleton could stand at pos without bumping into the world.
func (s *Skeleton) PosOK(w Collider, pos mgl32.Vec3) bool {
	return !w.Bumps(s.BoundsFor(pos))
}

// BoundsFor returns the bounding box the skeleton would have at pos.
func (s *Skeleton) BoundsFor(pos mgl32.Vec3) cube.BBox {
	return game.AABBAt(pos, s.hsize, s.vsize)
}

// Bounds returns the bounding box of the skeleton at its current position.
func (s *Skeleton) Bounds() cube.BBox {
	return s.BoundsFor(s.position)
}

// Frame returns a snapshot of the kinematic state of the skeleton.
func (s *Skeleton) Frame() Frame {
	return Frame{
		Position:    s.position,
		Velocity:    s.velocity,
		Orientation: s.orientation,
	}
}

// SetFrame restores the kinematic state of the skeleton from f, verbatim.
func (s *Skeleton) SetFrame(f Frame) {
	s.position = f.Position
	s.velocity = f.Velocity
	s.orientation = f.Orientation
}

// Position ...
func (s *Skeleton) Position() mgl32.Vec3 {
	return s.position
}

// Velocity ...
func (s *Skeleton) Velocity() mgl32.Vec3 {
	return s.velocity
}

// Orientation ...
func (s *Skeleton) Orientation() Orientation {
	return s.orientation
}

// SetOrientation updates the facing direction of the skeleton. It has no effect on physics.
func (s *Skeleton) SetOrientation(o Orientation) {
	s.orientation = o
}

// HSize returns the horizontal footprint of the skeleton.
func (s *Skeleton) HSize() float32 {
	return s.hsize
}

// VSize returns the height of the skeleton.
func (s *Skeleton) VSize() float32 {
	return s.vsize
}

// Config returns the tunables the skeleton ticks with.
func (s *Skeleton) Config() Config {
	return s.cfg
}
