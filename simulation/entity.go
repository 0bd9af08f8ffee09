package simulation

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/voxelarena/skelsim/entity"
	"github.com/voxelarena/skelsim/skeleton"
)

// Entity is a skeleton driven by a Simulation, together with its pending intents and frame history.
type Entity struct {
	id      uint64
	skel    *skeleton.Skeleton
	history *entity.FrameHistory

	walk      mgl32.Vec3
	walking   bool
	jumpSpeed float32
	jumping   bool

	last        skeleton.TickResult
	rescueTicks int
}

// EntityFrame is the frame of an entity at the current tick.
type EntityFrame struct {
	ID    uint64
	Frame skeleton.Frame
}

// step applies the pending intents of the entity, ticks its skeleton and records the resulting frame.
func (e *Entity) step(w skeleton.Collider, dt float32, tick int64) {
	if e.walking {
		e.skel.TryWalk(dt, w, e.walk)
	}
	if e.jumping {
		e.skel.TryJump(w, e.jumpSpeed)
	}
	e.walk, e.walking = mgl32.Vec3{}, false
	e.jumpSpeed, e.jumping = 0, false

	e.last = e.skel.Tick(w, dt)
	e.history.Add(tick, e.skel.Frame())
}
