package wheel

// =============================================================================
// Error Messages
// =============================================================================

const (
	ErrMsgInvalidTotalWeight = "total weight must be positive"
	ErrMsgInvalidWeight      = "segment %d has a non-finite weight"
	ErrMsgDuplicateSegmentID = "duplicate segment id %d"
	ErrMsgReadConfigFile     = "failed to read wheel config file %s: %w"
	ErrMsgDecodeConfigFile   = "failed to decode wheel config file %s: %w"
	ErrMsgSchemaConfigFile   = "wheel config file %s does not match schema: %w"
	ErrMsgSeedLoadFailed     = "failed to check active wheel config: %w"
	ErrMsgSeedPublishFailed  = "failed to publish seed wheel config: %w"
)

// =============================================================================
// Log Messages
// =============================================================================

const (
	LogMsgTotalWeightDrift  = "Stored total weight differs from segment weights, using live sum"
	LogMsgSeedSkipped       = "Active wheel config present, skipping seed"
	LogMsgSeedNoPath        = "No wheel config found and no seed path configured"
	LogMsgSeedPublished     = "Seeded wheel configuration"
	LogMsgConfigInvalidated = "Wheel config cache invalidated"
)

// =============================================================================
// Cache
// =============================================================================

const (
	// cacheSize holds the active config plus room for a lookup during publish
	cacheSize = 2

	// weightDriftTolerance is the allowed difference between stored and live total weight
	weightDriftTolerance = 1e-9
)
