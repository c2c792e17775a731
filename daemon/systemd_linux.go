package daemon

import (
	"net"
	"os"

	"github.com/hexian000/gosnippets/formats"
	"github.com/hexian000/gosnippets/slog"
	"golang.org/x/sys/unix"
)

func credentials(pid int) []byte {
	return unix.UnixCredentials(&unix.Ucred{
		Pid: int32(pid),
		Uid: uint32(os.Getuid()),
		Gid: uint32(os.Getgid()),
	})
}

// Send writes one datagram to socket. For a foreign pid the datagram carries
// SCM_CREDENTIALS naming that pid; if the kernel refuses them, it is sent
// again with our own credentials.
func Send(socket string, pid int, state string) (bool, error) {
	if err := checkAddr(socket); err != nil {
		return false, err
	}
	conn, err := net.DialUnix("unixgram", nil, &net.UnixAddr{Name: socket, Net: "unixgram"})
	if err != nil {
		return false, err
	}
	defer conn.Close()

	b := []byte(state)
	if pid > 0 && pid != os.Getpid() {
		_, _, err := conn.WriteMsgUnix(b, credentials(pid), nil)
		if err == nil {
			return true, nil
		}
		slog.Debugf("send as pid %d: %s", pid, formats.Error(err))
	}
	if _, err := conn.Write(b); err != nil {
		return false, err
	}
	return true, nil
}
