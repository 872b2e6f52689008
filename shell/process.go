package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/Germanized/GradleInstaller/contracts"
)

// ProcessRunner runs programs to completion. Once the context ends the
// program is killed, and output pipes still held by its descendants are
// closed after waitDelay.
type ProcessRunner struct {
	waitDelay time.Duration
}

func NewProcessRunner() *ProcessRunner {
	return &ProcessRunner{waitDelay: 3 * time.Second}
}

func (this *ProcessRunner) Run(ctx context.Context, command contracts.Command) (contracts.ProcessResult, error) {
	process := exec.CommandContext(ctx, command.Program, command.Arguments...)
	process.Env = command.Env
	process.Dir = command.Directory
	process.WaitDelay = this.waitDelay
	hideConsoleWindow(process)

	var stdout, stderr bytes.Buffer
	process.Stdout = &stdout
	process.Stderr = &stderr

	err := process.Run()
	result := contracts.ProcessResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if ctx.Err() != nil {
		return result, fmt.Errorf("%w: %s: %w", contracts.TimeoutErr, command.Program, ctx.Err())
	}
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		result.ExitCode = exit.ExitCode()
		return result, nil
	}
	if err != nil {
		return result, fmt.Errorf("running %s: %w", command.Program, err)
	}
	return result, nil
}
