// notifymainpid (c) 2021-2025 He Xian <hexian000@outlook.com>
// This code is licensed under MIT license (see LICENSE for details)

package daemon

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hexian000/gosnippets/slog"
	sd "github.com/hexian000/gosnippets/systemd"
)

// MainPIDPrefix names the main process of the service in a state message.
// The other states are exported by gosnippets/systemd.
const MainPIDPrefix = "MAINPID="

// EnvSocket names the datagram socket of the service manager.
const EnvSocket = "NOTIFY_SOCKET"

var ErrUnsupported = errors.New("systemd is not supported on current platform")

// Notify sends state on behalf of the calling process.
func Notify(state string) (bool, error) {
	return sd.Notify(state)
}

// PIDNotify sends state to the service manager and attributes it to pid.
// A pid of zero or less, or our own pid, sends as the calling process.
// It reports false with a nil error when no service manager is listening.
func PIDNotify(pid int, unsetEnvironment bool, state string) (bool, error) {
	if unsetEnvironment {
		defer func() {
			_ = os.Unsetenv(EnvSocket)
		}()
	}
	socket := os.Getenv(EnvSocket)
	if socket == "" {
		return false, nil
	}
	if err := checkAddr(socket); err != nil {
		return false, err
	}
	if pid <= 0 || pid == os.Getpid() {
		slog.Debugf("notify %q: as self", socket)
		return Notify(state)
	}
	slog.Debugf("notify %q: on behalf of pid %d", socket, pid)
	return Send(socket, pid, state)
}

func checkAddr(socket string) error {
	if strings.HasPrefix(socket, "/") || strings.HasPrefix(socket, "@") {
		return nil
	}
	return fmt.Errorf("unsupported %s address: %q", EnvSocket, socket)
}
