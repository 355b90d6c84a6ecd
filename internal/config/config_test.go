package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DB_DRIVER", "DB_DSN", "SERVER_PORT", "SESSION_SECRET", "MODEL_PATH", "ENCODER_PATH", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "database.db", cfg.DBDSN)
	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, "diabetes-prediction-model.json", cfg.ModelPath)
	assert.Equal(t, "label_encoder.json", cfg.EncoderPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.SessionSecret)
}

func TestLoadYAMLThenEnvOverride(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := "db_dsn: from-yaml.db\nserver_port: \"9000\"\nmodel_path: m.json\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "8081")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-yaml.db", cfg.DBDSN)
	assert.Equal(t, "8081", cfg.ServerPort)
	assert.Equal(t, "m.json", cfg.ModelPath)
}

func TestLoadRejectsBadDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadPostgresNeedsDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "postgres")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_DSN", "host=localhost user=app dbname=app")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
}

func TestLoadBrokenYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_dsn: [unclosed"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	assert.Error(t, err)
}
