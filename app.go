// notifymainpid (c) 2021-2025 He Xian <hexian000@outlook.com>
// This code is licensed under MIT license (see LICENSE for details)

package notifymainpid

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/hexian000/gosnippets/formats"
	"github.com/hexian000/gosnippets/slog"
	"github.com/hexian000/notifymainpid/config"
	"github.com/hexian000/notifymainpid/daemon"
)

var Version = "dev"

const (
	ExitOK    = 0
	ExitUsage = 1
)

// NotifyFunc has the shape of daemon.PIDNotify
type NotifyFunc func(pid int, unsetEnvironment bool, state string) (bool, error)

type App struct {
	Stderr    io.Writer
	LookupEnv config.LookupFunc
	Notify    NotifyFunc
}

func NewApp() *App {
	return &App{
		Stderr:    os.Stderr,
		LookupEnv: os.LookupEnv,
		Notify:    daemon.PIDNotify,
	}
}

// Run takes the arguments without the program name. Once the argument count
// is accepted every failure is logged and absorbed, so the exit code is
// ExitOK.
func (a *App) Run(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(a.Stderr, "error: incorrect number of arguments")
		return ExitUsage
	}
	cfg, err := config.Load(a.LookupEnv)
	if err := cfg.SetLogger(slog.Default()); err != nil {
		slog.Warningf("logging: %s", formats.Error(err))
	}
	if err != nil {
		slog.Warningf("config: %s", formats.Error(err))
	}
	slog.Debugf("notifymainpid %s, runtime: %s", Version, runtime.Version())

	mainPID, err := ReadPIDFile(args[0])
	if err != nil {
		slog.Infof("pid file %q: %s", args[0], formats.Error(err))
	}
	if !cfg.HasExecPID {
		slog.Infof("%s is not set", config.EnvExecPID)
	}
	execPID := ParsePID(cfg.ExecPID)

	state := FormatState(mainPID)
	slog.Debugf("notify: pid=%d socket=%q state=%q", execPID, cfg.NotifySocket, state)
	ok, err := a.Notify(execPID, false, state)
	switch {
	case err != nil:
		slog.Infof("notify: %s", formats.Error(err))
	case !ok:
		slog.Infof("notify: %s is not set", daemon.EnvSocket)
	default:
		slog.Debugf("notify: main pid %d is ready", mainPID)
	}
	return ExitOK
}
