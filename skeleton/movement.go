package skeleton

import "github.com/go-gl/mathgl/mgl32"

// Bumps records which axes were blocked during a single substep.
type Bumps struct {
	X, Y, Z bool
}

// Horizontal returns true if either horizontal axis was blocked.
func (b Bumps) Horizontal() bool {
	return b.X || b.Z
}

// TickResult describes what happened during a single Tick.
type TickResult struct {
	// Bumps holds the collisions of the final substep of the tick.
	Bumps Bumps
	// Climbed is true if the skeleton was moved up a stair.
	Climbed bool
	// Rescued is true if the skeleton ended the tick inside geometry and was pushed up.
	Rescued bool
}

// tickMove moves the skeleton by velocity*dt, split into equal substeps. Every substep resolves the X, Y
// and Z axis independently and in that order, which lets the skeleton slide along walls. Only the bumps of
// the final substep decide whether to attempt a stair climb.
func (s *Skeleton) tickMove(w Collider, dt float32) (last Bumps, climbed bool) {
	delta := s.velocity.Mul(dt)
	n := float32(s.cfg.Substeps)
	subDelta := mgl32.Vec3{delta[0] / n, delta[1] / n, delta[2] / n}

	for i := 0; i < s.cfg.Substeps; i++ {
		last = s.substep(w, subDelta)
	}

	if !(last.Horizontal() && s.velocity[1] >= 0) {
		return last, false
	}

	// What if we kept moving horizontally and took one step up?
	probe := s.position.Add(mgl32.Vec3{delta[0], s.cfg.StairStepHeight, delta[2]})
	if s.PosOK(w, probe) {
		// The skeleton is only moved horizontally: rescue and gravity settle it onto the step.
		s.position = s.position.Add(mgl32.Vec3{delta[0], 0, delta[2]})
		return last, true
	}

	if last.X {
		s.velocity[0] = 0
	}
	if last.Z {
		s.velocity[2] = 0
	}
	return last, false
}

// substep attempts to move the skeleton by d, one axis at a time. A blocked Y axis stops vertical motion
// right away; blocked horizontal axes are only reported.
func (s *Skeleton) substep(w Collider, d mgl32.Vec3) (b Bumps) {
	dx := mgl32.Vec3{d[0], 0, 0}
	if s.PosOK(w, s.position.Add(dx)) {
		s.position = s.position.Add(dx)
	} else {
		b.X = true
	}

	dy := mgl32.Vec3{0, d[1], 0}
	if s.PosOK(w, s.position.Add(dy)) {
		s.position = s.position.Add(dy)
	} else {
		b.Y = true
		s.velocity[1] = 0
	}

	dz := mgl32.Vec3{0, 0, d[2]}
	if s.PosOK(w, s.position.Add(dz)) {
		s.position = s.position.Add(dz)
	} else {
		b.Z = true
	}
	return b
}
