package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// parsePort parses a TCP port argument.
func parsePort(s string) (uint16, error) {
	port, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid port number: %s", s)
	}
	return uint16(port), nil
}
