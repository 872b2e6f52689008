package core

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/smartystreets/logging"

	"github.com/Germanized/GradleInstaller/contracts"
)

type PrivilegeState int

const (
	Unelevated PrivilegeState = iota
	RelaunchRequested
	Elevated
	Terminated
)

func (this PrivilegeState) String() string {
	switch this {
	case Unelevated:
		return "unelevated"
	case RelaunchRequested:
		return "relaunch-requested"
	case Elevated:
		return "elevated"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(this))
	}
}

// PrivilegeGate decides whether this process may continue with the install.
// A relaunch never resumes in-process: it always ends in Terminated.
type PrivilegeGate struct {
	elevator contracts.Elevator
	prompter contracts.Prompter
	reporter contracts.Reporter
	state    PrivilegeState
	exitCode int
	logger   *logging.Logger
}

func NewPrivilegeGate(elevator contracts.Elevator, prompter contracts.Prompter, reporter contracts.Reporter) *PrivilegeGate {
	return &PrivilegeGate{elevator: elevator, prompter: prompter, reporter: reporter, state: Unelevated}
}

func (this *PrivilegeGate) State() PrivilegeState { return this.state }
func (this *PrivilegeGate) ExitCode() int         { return this.exitCode }

// Enter runs the gate to a final state: Elevated (continue) or Terminated.
func (this *PrivilegeGate) Enter(arguments []string) PrivilegeState {
	if this.state != Unelevated {
		return this.state
	}
	if this.elevator.IsElevated() {
		this.transition(Elevated)
		return this.state
	}

	this.reporter.Warning("Administrator privileges are required to set system-wide environment variables.")
	restart, err := this.prompter.Confirm("Do you want to try restarting as administrator now?", true)
	if err != nil {
		this.logger.Printf("[WARN] elevation prompt: %s", err)
		this.reporter.Danger("Installation interrupted.")
		return this.terminate(1)
	}
	if !restart {
		this.reporter.Danger("Administrator privileges are required. Please re-run this program as an administrator.")
		return this.terminate(1)
	}

	this.transition(RelaunchRequested)
	this.reporter.Info("Requesting administrator privileges; a new window will open.")
	if err = this.elevator.RelaunchElevated(arguments); err != nil {
		this.logger.Printf("[WARN] elevated relaunch failed: %s", err)
		this.reporter.Danger("Failed to restart as administrator: %s", DescribeRelaunchFailure(err))
		this.reporter.Info("Right-click the program and choose \"Run as administrator\".")
		return this.terminate(1)
	}
	return this.terminate(0)
}

func (this *PrivilegeGate) terminate(exitCode int) PrivilegeState {
	this.exitCode = exitCode
	this.transition(Terminated)
	return this.state
}

func (this *PrivilegeGate) transition(to PrivilegeState) {
	if !isAllowedPrivilegeTransition(this.state, to) {
		panic(fmt.Sprintf("disallowed privilege transition: %s -> %s", this.state, to))
	}
	this.logger.Printf("[INFO] privilege gate: %s -> %s", this.state, to)
	this.state = to
}

func isAllowedPrivilegeTransition(from, to PrivilegeState) bool {
	switch from {
	case Unelevated:
		return to == Elevated || to == RelaunchRequested || to == Terminated
	case RelaunchRequested:
		return to == Terminated
	default:
		return false
	}
}

// DescribeRelaunchFailure maps ShellExecute failure codes to their usual causes.
func DescribeRelaunchFailure(err error) string {
	var code syscall.Errno
	if !errors.As(err, &code) {
		return err.Error()
	}
	switch code {
	case 0, 8:
		return "the system is out of memory or resources"
	case 2:
		return "the executable file was not found"
	case 3:
		return "the executable path was not found"
	case 5:
		return "access was denied; elevation may be blocked by policy"
	case 31, 1155:
		return "no application is associated with this operation"
	case 1223:
		return "the elevation prompt was cancelled"
	default:
		return fmt.Sprintf("unexpected error code %d (%s)", uintptr(code), err)
	}
}
