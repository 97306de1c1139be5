package udever

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// commandTimeout bounds every external command invocation.
const commandTimeout = 5 * time.Second

// Runner executes external commands. The orchestrator talks to systemctl and
// udevadm exclusively through this interface so tests can substitute fakes.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands via os/exec with a bounded timeout per call.
type ExecRunner struct {
	Timeout time.Duration
}

// NewExecRunner creates a runner with the default command timeout.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Timeout: commandTimeout}
}

// Run executes the named command, returning its stdout. Commands are resolved
// through PATH up front and never pass through a shell.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = commandTimeout
	}
	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("command not found: %s: %w", name, err)
	}

	cmd := exec.CommandContext(execCtx, path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	if execCtx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("command timed out after %s: %s %v", timeout, name, args)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%s %v exited with code %d: %s", name, args, exitErr.ExitCode(), stderr.String())
		}
		return "", fmt.Errorf("%s %v: %w", name, args, err)
	}

	return stdout.String(), nil
}
