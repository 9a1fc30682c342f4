package scanner

import (
	"bytes"
	"errors"
	"os/exec"
)

// Result is the captured outcome of a subprocess that was started.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the process exited with status 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner abstracts subprocess execution so strategies can be exercised
// without invoking real system utilities.
//
// Run returns a non-nil error only when the command could not be started.
// A command that ran and exited non-zero is reported through Result.ExitCode.
type Runner interface {
	Run(name string, args ...string) (Result, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(name string, args ...string) (Result, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}
	return res, nil
}

// runTool runs name through r and classifies failures as ToolErrors for
// step. The Result is returned even on an exit failure so callers can
// inspect what the tool printed.
func runTool(r Runner, step Step, pid, name string, args ...string) (Result, error) {
	res, err := r.Run(name, args...)
	if err != nil {
		return res, launchError(step, name, pid, err)
	}
	if !res.Success() {
		return res, exitError(step, name, pid, res)
	}
	return res, nil
}

// noMatch reports whether err is lsof's "nothing matched" result: exit
// status 1 with nothing on stdout.
func noMatch(res Result, err error) bool {
	var te *ToolError
	return errors.As(err, &te) && te.Launched() && te.ExitCode == 1 &&
		len(bytes.TrimSpace(res.Stdout)) == 0
}

// launchFailed reports whether err means the tool could not be started.
func launchFailed(err error) bool {
	var te *ToolError
	return errors.As(err, &te) && !te.Launched()
}
