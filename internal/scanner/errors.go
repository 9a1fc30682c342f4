package scanner

import (
	"fmt"
	"strings"
)

// Step names the phase of a kill sequence that failed.
type Step string

const (
	StepDiscover  Step = "discover listeners"
	StepTerminate Step = "terminate"
	StepScan      Step = "scan ports"
)

// ToolError reports a failed system utility invocation.
//
// When Err is set the tool could not be launched at all; otherwise it ran
// and exited with ExitCode.
type ToolError struct {
	Step     Step
	Tool     string
	PID      string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ToolError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Step))
	if e.PID != "" {
		b.WriteString(" PID ")
		b.WriteString(e.PID)
	}
	b.WriteString(": ")
	if e.Err != nil {
		fmt.Fprintf(&b, "run %s: %v", e.Tool, e.Err)
		return b.String()
	}
	fmt.Fprintf(&b, "%s exited with status %d", e.Tool, e.ExitCode)
	if e.Stderr != "" {
		fmt.Fprintf(&b, " (%s)", e.Stderr)
	}
	return b.String()
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// Launched reports whether the tool started; false means it could not be run.
func (e *ToolError) Launched() bool {
	return e.Err == nil
}

func launchError(step Step, tool, pid string, err error) *ToolError {
	return &ToolError{Step: step, Tool: tool, PID: pid, ExitCode: -1, Err: err}
}

func exitError(step Step, tool, pid string, res Result) *ToolError {
	return &ToolError{
		Step:     step,
		Tool:     tool,
		PID:      pid,
		ExitCode: res.ExitCode,
		Stderr:   firstLine(res.Stderr),
	}
}

func firstLine(b []byte) string {
	s := strings.TrimSpace(string(b))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s
}
