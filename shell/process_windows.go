//go:build windows

package shell

import (
	"os/exec"
	"syscall"
)

const createNoWindow = 0x08000000

func hideConsoleWindow(process *exec.Cmd) {
	process.SysProcAttr = &syscall.SysProcAttr{CreationFlags: createNoWindow, HideWindow: true}
}
