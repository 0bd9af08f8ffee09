package simulation

import (
	"github.com/voxelarena/skelsim/game"
	"github.com/voxelarena/skelsim/settings"
	"github.com/voxelarena/skelsim/skeleton"
)

// Options define how a Simulation ticks its entities.
type Options struct {
	// Physics is the config every spawned skeleton ticks with.
	Physics skeleton.Config
	// Parallel ticks entities on the worker pool. The world must not be mutated while Step runs. A panic
	// while ticking an entity is recovered by the pool instead of crashing the caller: the entity skips
	// the tick, records no frame for it and an error is logged.
	Parallel bool
	// HistorySize is the amount of frames kept per entity.
	HistorySize int
	// CorrectionThreshold is the max position or velocity delta a client frame may have before Reconcile
	// asks for a correction. Zero disables corrections.
	CorrectionThreshold float32
}

// DefaultOptions returns the options a Simulation uses when none are given.
func DefaultOptions() Options {
	return Options{
		Physics:             skeleton.DefaultConfig(),
		HistorySize:         game.DefaultHistorySize,
		CorrectionThreshold: game.DefaultCorrectionThreshold,
	}
}

// OptionsFromSettings builds options from loaded settings.
func OptionsFromSettings(s settings.Settings) Options {
	return Options{
		Physics:             s.Physics.Config(),
		Parallel:            s.Simulation.Parallel,
		HistorySize:         s.Simulation.HistorySize,
		CorrectionThreshold: s.Simulation.CorrectionThreshold,
	}
}
