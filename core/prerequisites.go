package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Germanized/GradleInstaller/contracts"
)

type RuntimeCheck struct {
	runner  contracts.ProcessRunner
	timeout time.Duration
}

func NewRuntimeCheck(runner contracts.ProcessRunner, timeout time.Duration) *RuntimeCheck {
	return &RuntimeCheck{runner: runner, timeout: timeout}
}

// CheckJava reports the first line of `java -version`, which the JDK writes to stderr.
func (this *RuntimeCheck) CheckJava(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, this.timeout)
	defer cancel()

	result, err := this.runner.Run(ctx, contracts.Command{Program: "java", Arguments: []string{"-version"}})
	if err != nil {
		return "", fmt.Errorf("java is not available: %w", err)
	}
	if result.ExitCode != 0 {
		return "", fmt.Errorf("java -version exited with code %d", result.ExitCode)
	}
	report := strings.TrimSpace(result.Stderr)
	if report == "" {
		report = strings.TrimSpace(result.Stdout)
	}
	firstLine, _, _ := strings.Cut(report, "\n")
	return strings.TrimSpace(firstLine), nil
}
