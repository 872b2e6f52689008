//go:build windows

package shell

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/windows"
)

type Elevator struct{}

func NewElevator() *Elevator {
	return &Elevator{}
}

func (this *Elevator) IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// RelaunchElevated starts this executable again through the "runas" verb.
// The first argument is the program name and is not forwarded.
func (this *Elevator) RelaunchElevated(arguments []string) error {
	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating executable: %w", err)
	}
	directory, _ := os.Getwd()

	var escaped []string
	if len(arguments) > 1 {
		for _, argument := range arguments[1:] {
			escaped = append(escaped, windows.EscapeArg(argument))
		}
	}

	verb, _ := windows.UTF16PtrFromString("runas")
	file, _ := windows.UTF16PtrFromString(executable)
	parameters, _ := windows.UTF16PtrFromString(strings.Join(escaped, " "))
	workingDirectory, _ := windows.UTF16PtrFromString(directory)
	return windows.ShellExecute(0, verb, file, parameters, workingDirectory, windows.SW_NORMAL)
}
