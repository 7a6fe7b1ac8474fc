package postgres

// Advisory Lock Constants
const (
	// LockNamespaceSpin prefixes per-user spin lock keys
	LockNamespaceSpin = "spin"

	// LockNamespaceWheel prefixes the wheel configuration publish lock key
	LockNamespaceWheel = "wheel_config"

	// HashSeparator joins the namespace and the locked identifier before hashing
	HashSeparator = ":"

	// HashMaskPositiveInt64 keeps advisory lock keys positive
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

// SQL Query Constants
const (
	SQLAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"

	SQLSelectLatestSpin = `
		SELECT spin_id::text, user_id, segment_id, prize_type, prize_amount, prize_description,
		       wheel_version, client_request_id, created_at
		FROM spins
		WHERE user_id = $1
		ORDER BY created_at DESC, spin_id DESC
		LIMIT 1
	`

	SQLInsertSpin = `
		INSERT INTO spins (spin_id, user_id, segment_id, prize_type, prize_amount, prize_description,
		                   wheel_version, client_request_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	SQLSelectSpinPage = `
		SELECT spin_id::text, user_id, segment_id, prize_type, prize_amount, prize_description,
		       wheel_version, client_request_id, created_at
		FROM spins
		WHERE user_id = $1
		ORDER BY created_at DESC, spin_id DESC
		LIMIT $2 OFFSET $3
	`

	SQLCountSpins = `SELECT COUNT(*) FROM spins WHERE user_id = $1`

	SQLSelectActiveWheel = `
		SELECT config_key, version, segments, total_weight, cooldown_minutes, created_at
		FROM wheel_configs
		WHERE config_key = $1
		ORDER BY version DESC
		LIMIT 1
	`

	SQLSelectWheelVersion = `SELECT COALESCE(MAX(version), 0) FROM wheel_configs WHERE config_key = $1`

	SQLInsertWheel = `
		INSERT INTO wheel_configs (config_key, version, segments, total_weight, cooldown_minutes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
)

// Error Messages
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToAcquireLock       = "failed to acquire advisory lock"
	ErrMsgFailedToGetLatestSpin     = "failed to get latest spin"
	ErrMsgFailedToInsertSpin        = "failed to insert spin"
	ErrMsgFailedToQuerySpins        = "failed to query spins"
	ErrMsgFailedToScanSpin          = "failed to scan spin"
	ErrMsgFailedToCountSpins        = "failed to count spins"
	ErrMsgFailedToLoadWheel         = "failed to load wheel configuration"
	ErrMsgFailedToDecodeSegments    = "failed to decode wheel segments"
	ErrMsgFailedToEncodeSegments    = "failed to encode wheel segments"
	ErrMsgFailedToReadWheelVersion  = "failed to read wheel version"
	ErrMsgFailedToInsertWheel       = "failed to insert wheel configuration"
)

// Log Messages
const (
	LogMsgFailedToRollback = "Failed to rollback transaction"
)
