//go:build windows

package shell

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"golang.org/x/sys/windows"

	"github.com/Germanized/GradleInstaller/contracts"
)

const oleAlreadyInitialized = 0x1 // S_FALSE

type ShortcutWriter struct{}

func NewShortcutWriter() *ShortcutWriter {
	return &ShortcutWriter{}
}

func (this *ShortcutWriter) DesktopDirectory() (string, error) {
	return windows.KnownFolderPath(windows.FOLDERID_Desktop, 0)
}

// WriteShortcut saves a .lnk file through the WScript.Shell automation object.
func (this *ShortcutWriter) WriteShortcut(shortcut contracts.Shortcut) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var failure *ole.OleError
		if !errors.As(err, &failure) || failure.Code() != oleAlreadyInitialized {
			return fmt.Errorf("initializing COM: %w", err)
		}
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WScript.Shell")
	if err != nil {
		return fmt.Errorf("creating WScript.Shell: %w", err)
	}
	defer unknown.Release()

	scripting, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("querying WScript.Shell: %w", err)
	}
	defer scripting.Release()

	created, err := oleutil.CallMethod(scripting, "CreateShortcut", shortcut.Path)
	if err != nil {
		return fmt.Errorf("creating shortcut %s: %w", shortcut.Path, err)
	}
	link := created.ToIDispatch()
	defer link.Release()

	properties := []struct{ name, value string }{
		{"TargetPath", shortcut.Target},
		{"Arguments", shortcut.Arguments},
		{"Description", shortcut.Description},
		{"IconLocation", shortcut.IconLocation},
		{"WorkingDirectory", shortcut.WorkingDirectory},
	}
	for _, property := range properties {
		if _, err = oleutil.PutProperty(link, property.name, property.value); err != nil {
			return fmt.Errorf("setting shortcut %s: %w", property.name, err)
		}
	}
	if _, err = oleutil.CallMethod(link, "Save"); err != nil {
		return fmt.Errorf("saving shortcut %s: %w", shortcut.Path, err)
	}
	return nil
}
