package skeleton

import "github.com/voxelarena/skelsim/game"

// Config holds the tunables of the skeleton tick. Skeletons that share a world over the network must run
// with identical configs, otherwise their frames diverge.
type Config struct {
	// Gravity is the downward acceleration applied every tick, in units/s².
	Gravity float32
	// GravityDamping is the isotropic velocity damping applied right after gravity, per second.
	GravityDamping float32

	// Substeps is the amount of equal sub-displacements a tick's movement is split into.
	Substeps int
	// StairStepHeight is how high the stair-climb probe reaches above the current position.
	StairStepHeight float32
	// RescueSpeed is the upward speed at which an embedded skeleton is pushed out of geometry.
	RescueSpeed float32
	// GroundProbe is the distance below the skeleton checked to decide whether it is on the ground.
	GroundProbe float32

	// MaxAirControlSpeed is the horizontal speed at or above which air control stops accelerating.
	MaxAirControlSpeed float32
	// AirControl is the strength of airborne acceleration per unit of walk input.
	AirControl float32
	// AirDamping is the velocity damping applied per second while walking in the air.
	AirDamping float32
}

// DefaultConfig returns the config every skeleton uses unless told otherwise.
func DefaultConfig() Config {
	return Config{
		Gravity:            game.DefaultGravity,
		GravityDamping:     game.DefaultGravityDamping,
		Substeps:           game.DefaultSubsteps,
		StairStepHeight:    game.DefaultStairStepHeight,
		RescueSpeed:        game.DefaultRescueSpeed,
		GroundProbe:        game.DefaultGroundProbe,
		MaxAirControlSpeed: game.DefaultMaxAirControlSpeed,
		AirControl:         game.DefaultAirControl,
		AirDamping:         game.DefaultAirDamping,
	}
}
