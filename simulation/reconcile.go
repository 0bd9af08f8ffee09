package simulation

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/voxelarena/skelsim/game"
	"github.com/voxelarena/skelsim/skeleton"
)

// Correction is the outcome of comparing a client frame against the authoritative one.
type Correction struct {
	Tick          int64
	Authoritative skeleton.Frame

	PositionDelta mgl32.Vec3
	VelocityDelta mgl32.Vec3

	// NeedsCorrection is true if the client drifted further than the correction threshold and should
	// adopt Authoritative.
	NeedsCorrection bool
}

// Reconcile compares the frame a client reported for tick with the frame the simulation recorded for the
// same entity and tick.
func (s *Simulation) Reconcile(id uint64, tick int64, client skeleton.Frame) (Correction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entities.Get(id)
	if !ok {
		return Correction{}, fmt.Errorf("reconcile: %w %d", ErrUnknownEntity, id)
	}
	hf, ok := e.history.Get(tick)
	if !ok {
		return Correction{}, fmt.Errorf("reconcile entity %d: %w %d", id, ErrNoHistory, tick)
	}

	c := Correction{Tick: tick, Authoritative: hf.Frame}
	if client.Checksum() == hf.Frame.Checksum() {
		return c, nil
	}

	c.PositionDelta = hf.Frame.Position.Sub(client.Position)
	c.VelocityDelta = hf.Frame.Velocity.Sub(client.Velocity)

	threshold := s.opts.CorrectionThreshold
	needsPos := threshold > 0 && c.PositionDelta.Len() > threshold
	needsVel := threshold > 0 && c.VelocityDelta.Len() > threshold
	c.NeedsCorrection = needsPos || needsVel

	if c.NeedsCorrection {
		data := orderedmap.NewOrderedMap[string, any]()
		data.Set("id", id)
		data.Set("tick", tick)
		data.Set("posDelta", game.RoundVec32(c.PositionDelta, 4))
		data.Set("velDelta", game.RoundVec32(c.VelocityDelta, 4))
		s.log.Warnf("client frame drifted from simulation %s", orderedMapToString(data))
	}
	return c, nil
}

// orderedMapToString renders data as [key=value ...] in insertion order.
func orderedMapToString(data *orderedmap.OrderedMap[string, any]) string {
	dataString := "["
	count := data.Len()
	for _, key := range data.Keys() {
		v, _ := data.Get(key)
		dataString += fmt.Sprintf("%s=%v", key, v)

		count--
		if count > 0 {
			dataString += " "
		}
	}
	dataString += "]"

	return dataString
}
