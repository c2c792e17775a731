// notifymainpid (c) 2021-2025 He Xian <hexian000@outlook.com>
// This code is licensed under MIT license (see LICENSE for details)

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hexian000/gosnippets/slog"
	"github.com/hexian000/notifymainpid/daemon"
)

const logTag = "notifymainpid"

// Load reads the environment through lookup. The returned Env is always
// usable: rejected values keep their defaults and are reported in err.
func Load(lookup LookupFunc) (*Env, error) {
	cfg := Default
	var errs []error
	cfg.ExecPID, cfg.HasExecPID = lookup(EnvExecPID)
	cfg.NotifySocket, _ = lookup(daemon.EnvSocket)
	if s, ok := lookup(EnvLog); ok && s != "" {
		cfg.Log = s
	}
	if s, ok := lookup(EnvLogLevel); ok && s != "" {
		level, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvLogLevel, err))
		} else {
			cfg.LogLevel = slog.Level(level)
		}
	}
	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
		cfg.LogLevel = Default.LogLevel
	}
	return &cfg, errors.Join(errs...)
}

func rangeCheckInt(key string, value int, min int, max int) error {
	if !(min <= value && value <= max) {
		return fmt.Errorf("%s is out of range (%d - %d)", key, min, max)
	}
	return nil
}

func (c *Env) Validate() error {
	if err := rangeCheckInt("loglevel", int(c.LogLevel), 0, int(slog.LevelVeryVerbose)); err != nil {
		return err
	}
	return nil
}

// SetLogger applies the log level and output to l
func (c *Env) SetLogger(l *slog.Logger) error {
	l.SetLevel(c.LogLevel)
	return l.SetOutputConfig(c.Log, logTag)
}
