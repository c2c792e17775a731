package config_test

import (
	"testing"

	"github.com/hexian000/gosnippets/slog"
	"github.com/hexian000/notifymainpid/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupMap(m map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(lookupMap(nil))
	require.NoError(t, err)
	assert.False(t, cfg.HasExecPID)
	assert.Empty(t, cfg.ExecPID)
	assert.Empty(t, cfg.NotifySocket)
	assert.Equal(t, config.Default.Log, cfg.Log)
	assert.Equal(t, config.Default.LogLevel, cfg.LogLevel)
}

func TestLoadEnv(t *testing.T) {
	cfg, err := config.Load(lookupMap(map[string]string{
		config.EnvExecPID:  "5678",
		"NOTIFY_SOCKET":    "/run/systemd/notify",
		config.EnvLog:      "stderr",
		config.EnvLogLevel: " 6 ",
	}))
	require.NoError(t, err)
	assert.True(t, cfg.HasExecPID)
	assert.Equal(t, "5678", cfg.ExecPID)
	assert.Equal(t, "/run/systemd/notify", cfg.NotifySocket)
	assert.Equal(t, "stderr", cfg.Log)
	assert.Equal(t, slog.Level(6), cfg.LogLevel)
}

func TestLoadEmptyExecPID(t *testing.T) {
	cfg, err := config.Load(lookupMap(map[string]string{
		config.EnvExecPID: "",
	}))
	require.NoError(t, err)
	assert.True(t, cfg.HasExecPID)
	assert.Empty(t, cfg.ExecPID)
}

func TestLoadBadLogLevel(t *testing.T) {
	for _, s := range []string{"verbose", "-1", "1000"} {
		cfg, err := config.Load(lookupMap(map[string]string{
			config.EnvExecPID:  "42",
			config.EnvLogLevel: s,
		}))
		assert.Error(t, err, s)
		require.NotNil(t, cfg)
		assert.Equal(t, config.Default.LogLevel, cfg.LogLevel, s)
		assert.Equal(t, "42", cfg.ExecPID)
	}
}
