package portctl

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/productdevbook/port-killer/native/internal/scanner"
	"github.com/rs/zerolog"
)

// TestHelperListener is not a real test. It is re-executed as a child
// process that holds a loopback listener until it is killed.
func TestHelperListener(t *testing.T) {
	if os.Getenv("PORTCTL_HELPER_LISTENER") != "1" {
		return
	}
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Println(l.Addr().(*net.TCPAddr).Port)
	for {
		conn, err := l.Accept()
		if err != nil {
			os.Exit(3)
		}
		conn.Close()
	}
}

func discoveryTool() string {
	if runtime.GOOS == "windows" {
		return "netstat"
	}
	return "lsof"
}

func TestForceKillSystem(t *testing.T) {
	if testing.Short() {
		t.Skip("spawns and kills a child process")
	}
	if _, err := exec.LookPath(discoveryTool()); err != nil {
		t.Skipf("%s not available: %v", discoveryTool(), err)
	}

	c := New(scanner.New(), zerolog.New(io.Discard))

	unused := unusedPort(t)
	if c.IsPortInUse(unused) {
		t.Fatalf("port %d unexpectedly in use", unused)
	}
	if err := c.ForceKillProcessOnPort(unused); err != nil {
		t.Fatalf("kill on unused port: %v", err)
	}

	child := exec.Command(os.Args[0], "-test.run=^TestHelperListener$")
	child.Env = append(os.Environ(), "PORTCTL_HELPER_LISTENER=1")
	stdout, err := child.StdoutPipe()
	if err != nil {
		t.Fatalf("stdout pipe: %v", err)
	}
	if err := child.Start(); err != nil {
		t.Fatalf("start helper: %v", err)
	}
	done := make(chan error, 1)
	go func() { done <- child.Wait() }()
	t.Cleanup(func() {
		child.Process.Kill()
		<-done
	})

	line, err := bufio.NewReader(stdout).ReadString('\n')
	if err != nil {
		t.Fatalf("read helper port: %v", err)
	}
	p, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		t.Fatalf("parse helper port %q: %v", line, err)
	}
	port := uint16(p)

	if !c.IsPortInUse(port) {
		t.Fatalf("helper port %d reported free", port)
	}
	pids, err := scanner.New().Listeners(port)
	if err != nil {
		t.Fatalf("Listeners: %v", err)
	}
	if len(pids) == 0 {
		t.Skipf("%s cannot see sockets in this environment", discoveryTool())
	}

	if err := c.ForceKillProcessOnPort(port); err != nil {
		t.Fatalf("ForceKillProcessOnPort: %v", err)
	}

	select {
	case <-done:
		done <- nil
	case <-time.After(10 * time.Second):
		t.Fatal("helper still running after kill")
	}

	deadline := time.Now().Add(5 * time.Second)
	for c.IsPortInUse(port) {
		if time.Now().After(deadline) {
			t.Fatalf("port %d still in use after kill", port)
		}
		time.Sleep(100 * time.Millisecond)
	}

	// nothing left to kill
	if err := c.ForceKillProcessOnPort(port); err != nil {
		t.Fatalf("second kill: %v", err)
	}
}

func unusedPort(t *testing.T) uint16 {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()
	return uint16(l.Addr().(*net.TCPAddr).Port)
}
