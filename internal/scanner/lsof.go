package scanner

import (
	"regexp"
	"strconv"
	"strings"
)

// lsofScanner discovers listeners with lsof and terminates them with
// kill -9. It is the strategy used on macOS, Linux and the BSDs.
type lsofScanner struct {
	run Runner
	// fullNames asks lsof for untruncated command names (+c 0).
	fullNames bool
	// ssFallback switches to ss when lsof cannot be launched.
	ssFallback bool
}

// NewLsof returns the lsof/kill strategy backed by r.
func NewLsof(r Runner) Scanner {
	return &lsofScanner{run: r}
}

var (
	// NAME can end with " (LISTEN)" as a separate field, so no end anchor
	lsofAddrRegex = regexp.MustCompile(`^(\*|\[?[^\]]+\]?):(\d+)`)
	ssPIDRegex    = regexp.MustCompile(`pid=(\d+)`)
	ssProcRegex   = regexp.MustCompile(`"([^"]+)"`)
)

func (s *lsofScanner) Scan() ([]Port, error) {
	args := []string{"-iTCP", "-sTCP:LISTEN", "-P", "-n"}
	if s.fullNames {
		args = append(args, "+c", "0")
	}

	res, err := runTool(s.run, StepScan, "", "lsof", args...)
	switch {
	case err == nil:
		return parseLsofOutput(res.Stdout), nil
	case noMatch(res, err):
		return []Port{}, nil
	case s.ssFallback && launchFailed(err):
		res, err := runTool(s.run, StepScan, "", "ss", "-tlnp")
		if err != nil {
			return nil, err
		}
		return parseSSOutput(res.Stdout), nil
	}
	return nil, err
}

func (s *lsofScanner) Listeners(port uint16) ([]string, error) {
	// -t prints bare PIDs, one per line
	res, err := runTool(s.run, StepDiscover, "", "lsof", "-nP", "-t", "-iTCP:"+strconv.Itoa(int(port)), "-sTCP:LISTEN")
	switch {
	case err == nil:
		return ParsePIDList(res.Stdout), nil
	case noMatch(res, err):
		return nil, nil
	case s.ssFallback && launchFailed(err):
		res, err := runTool(s.run, StepDiscover, "", "ss", "-tlnp")
		if err != nil {
			return nil, err
		}
		return ParseSSListeners(res.Stdout, port), nil
	}
	return nil, err
}

func (s *lsofScanner) Kill(pid string) error {
	_, err := runTool(s.run, StepTerminate, pid, "kill", "-9", pid)
	return err
}

// ParsePIDList parses `lsof -t` output: one PID per line, blanks ignored.
// The result is deduplicated and sorted.
func ParsePIDList(output []byte) []string {
	pids := pidSet{}
	for _, f := range rows(output, 0) {
		pids.add(f[0])
	}
	return pids.sorted()
}

// ParseSSListeners extracts every pid= owner of LISTEN rows in `ss -tlnp`
// output whose local port is port. The result is deduplicated and sorted.
func ParseSSListeners(output []byte, port uint16) []string {
	pids := pidSet{}
	for _, r := range ssListening(output) {
		if r.port != int(port) {
			continue
		}
		for _, pid := range r.pids {
			pids.add(pid)
		}
	}
	return pids.sorted()
}

// ssRow is one row of `ss -tlnp`:
// State Recv-Q Send-Q Local Address:Port Peer Address:Port Process
// LISTEN 0 128 0.0.0.0:22 0.0.0.0:* users:(("sshd",pid=1234,fd=3))
type ssRow struct {
	host    string
	port    int
	pids    []string
	process string
}

func ssListening(output []byte) []ssRow {
	var out []ssRow
	for _, f := range rows(output, 1) {
		if len(f) < 5 || f[0] != "LISTEN" {
			continue
		}
		host, port, ok := splitHostPort(f[3])
		if !ok {
			continue
		}
		r := ssRow{host: host, port: port}
		if len(f) >= 6 {
			// a socket shared by several processes lists each one
			users := strings.Join(f[5:], " ")
			for _, m := range ssPIDRegex.FindAllStringSubmatch(users, -1) {
				r.pids = append(r.pids, m[1])
			}
			if m := ssProcRegex.FindStringSubmatch(users); m != nil {
				r.process = m[1]
			}
		}
		out = append(out, r)
	}
	return out
}

func parseSSOutput(output []byte) []Port {
	var set portSet
	for _, r := range ssListening(output) {
		if len(r.pids) == 0 {
			// ss shows no owner for other users' sockets without root
			set.add(Port{Port: r.port, Address: r.host, Process: r.process})
			continue
		}
		for _, p := range r.pids {
			pid, _ := strconv.Atoi(p)
			set.add(Port{Port: r.port, PID: pid, Address: r.host, Process: r.process})
		}
	}
	return set.ports
}

// parseLsofOutput reads `lsof -iTCP -sTCP:LISTEN -P -n` rows:
// COMMAND PID USER FD TYPE DEVICE SIZE/OFF NODE NAME [(LISTEN)]
// NAME is the 9th field; a trailing "(LISTEN)" may follow it.
func parseLsofOutput(output []byte) []Port {
	var set portSet
	for _, f := range rows(output, 1) {
		if len(f) < 9 {
			continue
		}
		pid, err := strconv.Atoi(f[1])
		if err != nil {
			continue
		}
		m := lsofAddrRegex.FindStringSubmatch(f[8])
		if m == nil {
			continue
		}
		port, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		set.add(Port{
			Port:    port,
			PID:     pid,
			Process: unescapeProcessName(f[0]),
			User:    f[2],
			Address: m[1],
		})
	}
	return set.ports
}

var processNameReplacer = strings.NewReplacer(`\x20`, " ", `\x2d`, "-")

// unescapeProcessName turns lsof's escaped names back into readable text
// (e.g., "Code\x20Helper" -> "Code Helper").
func unescapeProcessName(name string) string {
	return processNameReplacer.Replace(name)
}
