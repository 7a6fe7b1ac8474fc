package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearValidatedVars(t *testing.T) {
	t.Helper()
	vars := append([]string{"ENV_SCHEMA_VERSION", "STORAGE_BACKEND"}, RequiredEnvVars...)
	vars = append(vars, RequiredPostgresEnvVars...)
	vars = append(vars, RequiredBotEnvVars...)
	for _, v := range vars {
		t.Setenv(v, "")
	}
}

func TestValidateEnv_MissingVersion(t *testing.T) {
	clearValidatedVars(t)

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	clearValidatedVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	clearValidatedVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "DB_HOST")
}

func TestValidateEnv_MemoryBackendSkipsDatabase(t *testing.T) {
	clearValidatedVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("API_KEY", "k")
	t.Setenv("JWT_SECRET", "s")

	assert.NoError(t, ValidateEnv())
}

func TestValidateBotEnv(t *testing.T) {
	clearValidatedVars(t)
	t.Setenv("DISCORD_TOKEN", "token")

	err := ValidateBotEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_APP_ID")
	assert.NotContains(t, err.Error(), "DISCORD_TOKEN")
}

func TestValidateEnvWithWarnings_InsecureDefaults(t *testing.T) {
	clearValidatedVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("DB_PASSWORD", "change_this_secure_password")
	t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")
	t.Setenv("JWT_SECRET", "short")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "db")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")
	assert.Contains(t, warnings[2], "JWT_SECRET")
}
