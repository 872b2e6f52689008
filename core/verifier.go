package core

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/smartystreets/logging"

	"github.com/Germanized/GradleInstaller/contracts"
)

type Verifier struct {
	disk        contracts.FileChecker
	runner      contracts.ProcessRunner
	environment contracts.Environment
	timeout     time.Duration
	logger      *logging.Logger
}

func NewVerifier(disk contracts.FileChecker, runner contracts.ProcessRunner, environment contracts.Environment, timeout time.Duration) *Verifier {
	return &Verifier{disk: disk, runner: runner, environment: environment, timeout: timeout}
}

// Verify runs the installed tool's version command. The result is Passed only
// when the command exits 0 and its output names expectedToken.
func (this *Verifier) Verify(ctx context.Context, executable, expectedToken string) contracts.VerificationResult {
	if _, err := this.disk.Stat(executable); err != nil {
		return contracts.VerificationResult{
			Outcome: contracts.VerificationFailed,
			Err:     fmt.Errorf("executable not found at %s: %w", executable, err),
		}
	}

	ctx, cancel := context.WithTimeout(ctx, this.timeout)
	defer cancel()

	outcome, err := this.runner.Run(ctx, toolCommand(executable, this.environment.Environ(), "--no-daemon", "--version"))
	if err != nil {
		return contracts.VerificationResult{Outcome: contracts.VerificationFailed, Err: err}
	}
	this.logger.Printf("[INFO] %s --version exited %d", executable, outcome.ExitCode)

	result := contracts.VerificationResult{ReportedOutput: strings.TrimSpace(outcome.Stdout), ExitCode: outcome.ExitCode}
	switch {
	case outcome.ExitCode != 0:
		result.Outcome = contracts.VerificationFailed
		result.Err = fmt.Errorf("version command exited with code %d: %s", outcome.ExitCode, strings.TrimSpace(outcome.Stderr))
	case strings.Contains(outcome.Stdout, expectedToken):
		result.Outcome = contracts.VerificationPassed
		result.Succeeded = true
	default:
		result.Outcome = contracts.VerificationAmbiguous
		result.Err = fmt.Errorf("output does not mention %q", expectedToken)
	}
	return result
}

func GradleExecutable(config contracts.InstallConfig) string {
	return filepath.Join(config.BinDir, "gradle.bat")
}

func toolCommand(executable string, base []string, arguments ...string) contracts.Command {
	binDir := filepath.Dir(executable)
	return contracts.Command{
		Program:   executable,
		Arguments: arguments,
		Env:       overrideToolEnvironment(base, filepath.Dir(binDir), binDir),
	}
}

// overrideToolEnvironment points GRADLE_HOME at homeDir and puts binDir first
// on PATH. Names are matched case-insensitively, as Windows does.
func overrideToolEnvironment(base []string, homeDir, binDir string) []string {
	result := make([]string, 0, len(base)+2)
	path := ""
	for _, entry := range base {
		name, value, _ := strings.Cut(entry, "=")
		switch {
		case strings.EqualFold(name, "GRADLE_HOME"):
			continue
		case strings.EqualFold(name, "PATH"):
			path = value
			continue
		}
		result = append(result, entry)
	}
	if path == "" {
		path = binDir
	} else {
		path = binDir + pathListSeparator + path
	}
	return append(result, "GRADLE_HOME="+homeDir, "PATH="+path)
}
