//go:build !linux

package daemon

func Send(socket string, pid int, state string) (bool, error) {
	if err := checkAddr(socket); err != nil {
		return false, err
	}
	return false, ErrUnsupported
}
