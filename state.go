package notifymainpid

import (
	"strconv"
	"strings"

	sd "github.com/hexian000/gosnippets/systemd"
	"github.com/hexian000/notifymainpid/daemon"
)

// FormatState renders the readiness message naming mainPID as the main
// process. There is no trailing newline.
func FormatState(mainPID int) string {
	return strings.Join([]string{
		daemon.MainPIDPrefix + strconv.Itoa(mainPID),
		sd.Ready,
	}, "\n")
}
