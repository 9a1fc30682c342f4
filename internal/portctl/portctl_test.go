package portctl

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/productdevbook/port-killer/native/internal/scanner"
	"github.com/rs/zerolog"
)

type fakeScanner struct {
	ports     []scanner.Port
	pids      []string
	listErr   error
	killErrs  map[string]error
	killed    []string
	listedFor []uint16
}

func (f *fakeScanner) Scan() ([]scanner.Port, error) {
	return f.ports, nil
}

func (f *fakeScanner) Listeners(port uint16) ([]string, error) {
	f.listedFor = append(f.listedFor, port)
	return f.pids, f.listErr
}

func (f *fakeScanner) Kill(pid string) error {
	f.killed = append(f.killed, pid)
	return f.killErrs[pid]
}

func newTestController(s scanner.Scanner) *Controller {
	return New(s, zerolog.New(io.Discard))
}

func TestGreet(t *testing.T) {
	c := newTestController(&fakeScanner{})
	for _, name := range []string{"", "Ada", "名前", "  spaced  ", "%s%d"} {
		got := c.Greet(name)
		if got == "" || !strings.Contains(got, name) {
			t.Errorf("Greet(%q) = %q", name, got)
		}
	}
}

func TestIsPortInUseUsesProbe(t *testing.T) {
	c := newTestController(&fakeScanner{})
	var probed uint16
	c.probe = func(port uint16) bool {
		probed = port
		return true
	}

	if !c.IsPortInUse(5173) || probed != 5173 {
		t.Fatalf("probe not consulted, probed=%d", probed)
	}
}

func TestForceKillNoListeners(t *testing.T) {
	s := &fakeScanner{}
	if err := newTestController(s).ForceKillProcessOnPort(8080); err != nil {
		t.Fatalf("ForceKillProcessOnPort: %v", err)
	}
	if len(s.killed) != 0 {
		t.Fatalf("killed %v with no listeners", s.killed)
	}
	if !reflect.DeepEqual(s.listedFor, []uint16{8080}) {
		t.Fatalf("discovery called for %v", s.listedFor)
	}
}

func TestForceKillKillsEach(t *testing.T) {
	s := &fakeScanner{pids: []string{"100", "200"}}
	if err := newTestController(s).ForceKillProcessOnPort(3000); err != nil {
		t.Fatalf("ForceKillProcessOnPort: %v", err)
	}
	if !reflect.DeepEqual(s.killed, []string{"100", "200"}) {
		t.Fatalf("killed = %v", s.killed)
	}
}

func TestForceKillDiscoveryError(t *testing.T) {
	discoverErr := &scanner.ToolError{Step: scanner.StepDiscover, Tool: "netstat", ExitCode: 1}
	s := &fakeScanner{listErr: discoverErr}

	err := newTestController(s).ForceKillProcessOnPort(3000)
	if !errors.Is(err, discoverErr) {
		t.Fatalf("err = %v, want discovery error", err)
	}
	if len(s.killed) != 0 {
		t.Fatalf("killed %v after discovery failure", s.killed)
	}
}

func TestForceKillStopsAtFirstFailure(t *testing.T) {
	s := &fakeScanner{
		pids: []string{"1111", "4321", "9999"},
		killErrs: map[string]error{
			"4321": &scanner.ToolError{Step: scanner.StepTerminate, Tool: "taskkill", PID: "4321", ExitCode: 128},
		},
	}

	err := newTestController(s).ForceKillProcessOnPort(3000)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "4321") {
		t.Fatalf("error %q does not name the PID", err)
	}
	if !reflect.DeepEqual(s.killed, []string{"1111", "4321"}) {
		t.Fatalf("killed = %v, want to stop after 4321", s.killed)
	}
}

func TestListenersSorted(t *testing.T) {
	s := &fakeScanner{ports: []scanner.Port{
		{Port: 8080, PID: 2},
		{Port: 3000, PID: 9},
		{Port: 8080, PID: 1},
	}}

	ports, err := newTestController(s).Listeners()
	if err != nil {
		t.Fatalf("Listeners: %v", err)
	}
	var got []int
	for _, p := range ports {
		got = append(got, p.Port*100+p.PID)
	}
	if want := []int{300009, 808001, 808002}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}
