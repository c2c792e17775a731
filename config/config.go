// notifymainpid (c) 2021-2025 He Xian <hexian000@outlook.com>
// This code is licensed under MIT license (see LICENSE for details)

package config

import "github.com/hexian000/gosnippets/slog"

const (
	// EnvExecPID is set by systemd for ExecStart= helpers.
	EnvExecPID  = "SYSTEMD_EXEC_PID"
	EnvLog      = "NOTIFYMAINPID_LOG"
	EnvLogLevel = "NOTIFYMAINPID_LOGLEVEL"
)

// LookupFunc has the shape of os.LookupEnv
type LookupFunc func(key string) (string, bool)

// Env is the environment as seen by the helper
type Env struct {
	// raw value of SYSTEMD_EXEC_PID, empty when unset
	ExecPID string
	// whether SYSTEMD_EXEC_PID is set at all
	HasExecPID bool
	// (informational) NOTIFY_SOCKET, consumed by the transport
	NotifySocket string
	// (optional) log output, default to "discard"
	Log string
	// (optional) log level, default to 4 (notice)
	LogLevel slog.Level
}

var Default = Env{
	Log:      "discard",
	LogLevel: slog.LevelNotice,
}
