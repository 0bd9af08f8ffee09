package game

// Default tunables of the skeleton tick. These values are part of the networked simulation: peers running
// different values will desync.
const (
	DefaultGravity        = float32(48.0)
	DefaultGravityDamping = float32(0.05)

	DefaultSubsteps        = 16
	DefaultStairStepHeight = float32(2.1)
	DefaultRescueSpeed     = float32(15.0)
	DefaultGroundProbe     = float32(0.05)

	DefaultMaxAirControlSpeed = float32(12.0)
	DefaultAirControl         = float32(0.8)
	DefaultAirDamping         = float32(0.1)
)

const (
	// DefaultTickRate is the amount of simulation steps per second a driver runs at by default.
	DefaultTickRate = 60
	// DefaultHistorySize is the amount of frames kept per entity for reconciliation.
	DefaultHistorySize = 128
	// DefaultCorrectionThreshold is the max distance a client frame may drift from the authoritative one.
	DefaultCorrectionThreshold = float32(0.3)
)
