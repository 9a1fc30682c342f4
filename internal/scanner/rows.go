package scanner

import (
	"bufio"
	"bytes"
	"sort"
	"strconv"
	"strings"
)

// rows splits tabular tool output into whitespace-separated fields, one
// slice per non-blank line. skip drops that many leading lines (headers).
func rows(output []byte, skip int) [][]string {
	var out [][]string
	sc := bufio.NewScanner(bytes.NewReader(output))
	for i := 0; sc.Scan(); i++ {
		if i < skip {
			continue
		}
		if fields := strings.Fields(sc.Text()); len(fields) > 0 {
			out = append(out, fields)
		}
	}
	return out
}

// splitHostPort splits "host:port" on the last colon, so IPv6 forms like
// "[::1]:3000" and "*:8080" work. ok is false when there is no numeric port.
func splitHostPort(addr string) (host string, port int, ok bool) {
	i := strings.LastIndex(addr, ":")
	if i == -1 {
		return "", 0, false
	}
	port, err := strconv.Atoi(addr[i+1:])
	if err != nil {
		return "", 0, false
	}
	return addr[:i], port, true
}

// portSet collects Port entries, dropping repeated port/PID pairs.
type portSet struct {
	seen  map[[2]int]bool
	ports []Port
}

func (s *portSet) add(p Port) {
	if s.seen == nil {
		s.seen = make(map[[2]int]bool)
	}
	key := [2]int{p.Port, p.PID}
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.ports = append(s.ports, p)
}

// pidSet is the deduplicated set of process identifiers found by discovery.
type pidSet map[string]struct{}

func (s pidSet) add(pid string) {
	if pid != "" {
		s[pid] = struct{}{}
	}
}

// sorted returns the set's members in a stable order.
func (s pidSet) sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
