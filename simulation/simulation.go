package simulation

import (
	"fmt"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/samber/lo"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"github.com/voxelarena/skelsim/entity"
	"github.com/voxelarena/skelsim/game"
	"github.com/voxelarena/skelsim/skeleton"
	"github.com/voxelarena/skelsim/utils"
	"github.com/voxelarena/skelsim/worker"
	"go.uber.org/atomic"
)

// stepTimeSamples is the amount of step durations kept for Stats.
const stepTimeSamples = 256

// Simulation drives a set of skeletons against a shared world. Every Step applies the intents queued since
// the previous step, ticks every entity in spawn order and records their frames. All methods are safe for
// concurrent use.
type Simulation struct {
	world skeleton.Collider
	opts  Options
	log   *logrus.Logger

	// mu protects all the following fields.
	mu       deadlock.Mutex
	entities *orderedmap.OrderedMap[uint64, *Entity]

	stepTimes *utils.CircularQueue[float64]

	currentTick atomic.Int64
	nextID      atomic.Uint64
}

// New creates a simulation over w. If log is nil, the standard logrus logger is used.
func New(w skeleton.Collider, opts Options, log *logrus.Logger) *Simulation {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Simulation{
		world:     w,
		opts:      opts,
		log:       log,
		entities:  orderedmap.NewOrderedMap[uint64, *Entity](),
		stepTimes: utils.NewCircularQueue[float64](stepTimeSamples),
	}
}

// Spawn creates a new entity at pos and returns its ID. The spawn frame is recorded at the current tick.
func (s *Simulation) Spawn(pos mgl32.Vec3, orientation skeleton.Orientation, hsize, vsize float32) uint64 {
	e := &Entity{
		id:      s.nextID.Inc(),
		skel:    skeleton.NewWithConfig(s.opts.Physics, pos, orientation, hsize, vsize),
		history: entity.NewFrameHistory(s.opts.HistorySize),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tick := s.currentTick.Load()
	e.history.Add(tick, e.skel.Frame())
	s.entities.Set(e.id, e)
	s.log.WithFields(logrus.Fields{"id": e.id, "pos": pos, "tick": tick}).Debug("spawned entity")
	return e.id
}

// Despawn removes the entity with the given ID. It returns false if no such entity exists.
func (s *Simulation) Despawn(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.entities.Delete(id) {
		return false
	}
	s.log.WithFields(logrus.Fields{"id": id, "tick": s.currentTick.Load()}).Debug("despawned entity")
	return true
}

// Walk queues a walk intent for the next step, replacing any walk intent queued before.
func (s *Simulation) Walk(id uint64, walkSpeed mgl32.Vec3) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entities.Get(id)
	if !ok {
		return fmt.Errorf("walk: %w %d", ErrUnknownEntity, id)
	}
	e.walk, e.walking = walkSpeed, true
	return nil
}

// Jump queues a jump intent for the next step. The jump only happens if the entity is on the ground when
// the step applies it.
func (s *Simulation) Jump(id uint64, jumpSpeed float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entities.Get(id)
	if !ok {
		return fmt.Errorf("jump: %w %d", ErrUnknownEntity, id)
	}
	e.jumpSpeed, e.jumping = jumpSpeed, true
	return nil
}

// Step advances every entity by dt seconds and returns the tick the resulting frames were recorded at.
func (s *Simulation) Step(dt float32) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	tick := s.currentTick.Inc()
	ents := s.entityList()

	if s.opts.Parallel && len(ents) > 1 {
		worker.Run(len(ents), func(i int) {
			ents[i].step(s.world, dt, tick)
		})
	} else {
		for _, e := range ents {
			e.step(s.world, dt, tick)
		}
	}

	for _, e := range ents {
		if hf, ok := e.history.Latest(); !ok || hf.Tick != tick {
			s.log.WithFields(logrus.Fields{"id": e.id, "tick": tick}).Error("entity failed to record a frame")
			continue
		}
		s.trackRescue(e, tick)
	}
	s.recordStepTime(time.Since(start))
	return tick
}

// trackRescue logs when an entity gets stuck in geometry and when rescue frees it again.
func (s *Simulation) trackRescue(e *Entity, tick int64) {
	if e.last.Rescued {
		if e.rescueTicks == 0 {
			s.log.WithFields(logrus.Fields{"id": e.id, "tick": tick, "pos": e.skel.Position()}).Debug("entity stuck in geometry, rescuing")
		}
		e.rescueTicks++
		return
	}
	if e.rescueTicks > 0 {
		s.log.WithFields(logrus.Fields{"id": e.id, "tick": tick, "ticks": e.rescueTicks}).Debug("entity rescued")
		e.rescueTicks = 0
	}
}

// Frame returns the current frame of the entity with the given ID.
func (s *Simulation) Frame(id uint64) (skeleton.Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entities.Get(id)
	if !ok {
		return skeleton.Frame{}, false
	}
	return e.skel.Frame(), true
}

// Frames returns the current frame of every entity, in spawn order.
func (s *Simulation) Frames() []EntityFrame {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Map(s.entityList(), func(e *Entity, _ int) EntityFrame {
		return EntityFrame{ID: e.id, Frame: e.skel.Frame()}
	})
}

// OnGround returns whether the entity with the given ID is standing on something.
func (s *Simulation) OnGround(id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entities.Get(id)
	if !ok {
		return false, fmt.Errorf("on ground: %w %d", ErrUnknownEntity, id)
	}
	return e.skel.OnGround(s.world), nil
}

// LastTick returns the result of the most recent tick of the entity with the given ID.
func (s *Simulation) LastTick(id uint64) (skeleton.TickResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entities.Get(id)
	if !ok {
		return skeleton.TickResult{}, false
	}
	return e.last, true
}

// Restore rewinds the entity with the given ID to the frame recorded at tick. The history itself is left
// untouched, so frames recorded after tick can still be reconciled against. The result of the last tick
// and the rescue tracking are reset.
func (s *Simulation) Restore(id uint64, tick int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entities.Get(id)
	if !ok {
		return fmt.Errorf("restore: %w %d", ErrUnknownEntity, id)
	}
	hf, ok := e.history.Get(tick)
	if !ok {
		return fmt.Errorf("restore entity %d: %w %d", id, ErrNoHistory, tick)
	}
	e.skel.SetFrame(hf.Frame)
	e.last, e.rescueTicks = skeleton.TickResult{}, 0
	return nil
}

// Tick returns the tick of the most recent step.
func (s *Simulation) Tick() int64 {
	return s.currentTick.Load()
}

// Len returns the amount of spawned entities.
func (s *Simulation) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.entities.Len()
}

// entityList returns the entities in spawn order. The caller must hold mu.
func (s *Simulation) entityList() []*Entity {
	ents := make([]*Entity, 0, s.entities.Len())
	for el := s.entities.Front(); el != nil; el = el.Next() {
		ents = append(ents, el.Value)
	}
	return ents
}

// StepStats summarises how long recent steps took.
type StepStats struct {
	Samples int
	Mean    time.Duration
	Median  time.Duration
	StdDev  time.Duration
	Max     time.Duration
}

// Stats returns timing statistics over the most recent steps.
func (s *Simulation) Stats() StepStats {
	s.mu.Lock()
	samples := s.stepTimes.Slice()
	s.mu.Unlock()

	return StepStats{
		Samples: len(samples),
		Mean:    time.Duration(game.Mean(samples)),
		StdDev:  time.Duration(game.StandardDeviation(samples)),
		Max:     time.Duration(game.Max(samples)),
		Median:  time.Duration(game.Median(samples)),
	}
}

// recordStepTime stores d with the recent step times. The caller must hold mu.
func (s *Simulation) recordStepTime(d time.Duration) {
	s.stepTimes.Append(float64(d))
}
