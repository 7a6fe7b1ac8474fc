package domain

// Prize types understood by the history statistics
const (
	PrizeTypeCoins   = "coins"
	PrizeTypeSpecial = "special"
	PrizeTypeBonus   = "bonus"
	PrizeTypeJackpot = "jackpot"
)

// Wheel configuration
const (
	// DefaultWheelKey is the singleton key of the active wheel configuration
	DefaultWheelKey = "default"

	// InitialWheelVersion is used when a stored configuration carries no version
	InitialWheelVersion = 1
)

// History pagination
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// UnknownPrizeDescription labels prizes without a description in statistics
const UnknownPrizeDescription = "Unknown"

// Event types
const (
	EventSpinRecorded         = "spin.recorded"
	EventWheelConfigPublished = "wheel.config_published"
)
