package contracts

import "context"

type Command struct {
	Program   string
	Arguments []string
	Env       []string
	Directory string
}

type ProcessResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ProcessRunner returns an error only when the program could not be started
// or did not finish in time; a non-zero exit code is reported in the result.
type ProcessRunner interface {
	Run(ctx context.Context, command Command) (ProcessResult, error)
}
