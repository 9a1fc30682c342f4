package scanner

import (
	"net"
	"strconv"
)

// IsPortInUse reports whether a TCP listener cannot be bound on the
// loopback address at port. The probe listener is closed before returning,
// so the answer is only a snapshot.
func IsPortInUse(port uint16) bool {
	l, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(int(port))))
	if err != nil {
		return true
	}
	defer l.Close()
	return false
}
