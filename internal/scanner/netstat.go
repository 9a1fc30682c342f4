package scanner

import (
	"strconv"
	"strings"
)

// netstatScanner discovers listeners with netstat and terminates them with
// taskkill. It is the strategy used on Windows.
type netstatScanner struct {
	run Runner
}

// NewNetstat returns the netstat/taskkill strategy backed by r.
func NewNetstat(r Runner) Scanner {
	return &netstatScanner{run: r}
}

// netstat -ano: all connections, numeric, owner PID
var netstatArgs = []string{"-ano", "-p", "tcp"}

func (s *netstatScanner) Scan() ([]Port, error) {
	res, err := runTool(s.run, StepScan, "", "netstat", netstatArgs...)
	if err != nil {
		return nil, err
	}

	ports := parseNetstatOutput(res.Stdout)

	// names are best effort; a failed tasklist leaves them blank
	if res, err := runTool(s.run, StepScan, "", "tasklist", "/FO", "CSV", "/NH"); err == nil {
		names := parseTasklist(res.Stdout)
		for i := range ports {
			ports[i].Process = names[ports[i].PID]
		}
	}
	return ports, nil
}

func (s *netstatScanner) Listeners(port uint16) ([]string, error) {
	res, err := runTool(s.run, StepDiscover, "", "netstat", netstatArgs...)
	if err != nil {
		return nil, err
	}
	return ParseNetstatListeners(res.Stdout, port), nil
}

func (s *netstatScanner) Kill(pid string) error {
	_, err := runTool(s.run, StepTerminate, pid, "taskkill", "/PID", pid, "/F")
	return err
}

// netstatRow is one LISTENING row of `netstat -ano`:
// Proto  Local Address  Foreign Address  State  PID
type netstatRow struct {
	host string
	port int
	pid  string
}

func netstatListening(output []byte) []netstatRow {
	var out []netstatRow
	for _, f := range rows(output, 0) {
		if len(f) < 5 || !strings.EqualFold(f[3], "LISTENING") {
			continue
		}
		host, port, ok := splitHostPort(f[1])
		if !ok {
			continue
		}
		out = append(out, netstatRow{host: host, port: port, pid: f[4]})
	}
	return out
}

// ParseNetstatListeners extracts the owning PIDs of rows in `netstat -ano`
// output whose local address ends in port and whose state is LISTENING.
// The result is deduplicated and sorted.
func ParseNetstatListeners(output []byte, port uint16) []string {
	pids := pidSet{}
	for _, r := range netstatListening(output) {
		if r.port == int(port) {
			pids.add(r.pid)
		}
	}
	return pids.sorted()
}

func parseNetstatOutput(output []byte) []Port {
	var set portSet
	for _, r := range netstatListening(output) {
		pid, err := strconv.Atoi(r.pid)
		if err != nil {
			continue
		}
		set.add(Port{Port: r.port, PID: pid, Address: strings.Trim(r.host, "[]")})
	}
	return set.ports
}

// parseTasklist maps PIDs to image names from `tasklist /FO CSV /NH`:
// "process.exe","1234","Console","1","10,000 K"
func parseTasklist(output []byte) map[int]string {
	names := make(map[int]string)
	for _, line := range strings.Split(string(output), "\n") {
		cols := strings.Split(strings.TrimSpace(line), ",")
		if len(cols) < 2 {
			continue
		}
		pid, err := strconv.Atoi(strings.Trim(cols[1], `"`))
		if err != nil {
			continue
		}
		names[pid] = strings.Trim(cols[0], `"`)
	}
	return names
}
