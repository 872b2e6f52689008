//go:build windows

package shell

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	hwndBroadcast      = 0xFFFF
	wmSettingChange    = 0x001A
	smtoNormal         = 0x0000
	smtoAbortIfHung    = 0x0002
	broadcastTimeoutMS = 1000
)

var (
	user32                 = windows.NewLazySystemDLL("user32.dll")
	procSendMessageTimeout = user32.NewProc("SendMessageTimeoutW")
)

type EnvironmentBroadcaster struct{}

func NewEnvironmentBroadcaster() *EnvironmentBroadcaster {
	return &EnvironmentBroadcaster{}
}

// BroadcastEnvironmentChange tells top-level windows that the "Environment"
// settings changed so new processes they spawn see the update.
func (this *EnvironmentBroadcaster) BroadcastEnvironmentChange() error {
	if err := procSendMessageTimeout.Find(); err != nil {
		return err
	}
	area, _ := windows.UTF16PtrFromString("Environment")
	var result uintptr
	succeeded, _, err := procSendMessageTimeout.Call(
		hwndBroadcast,
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(area)),
		smtoAbortIfHung|smtoNormal,
		broadcastTimeoutMS,
		uintptr(unsafe.Pointer(&result)),
	)
	if succeeded == 0 {
		return fmt.Errorf("SendMessageTimeoutW: %w", err)
	}
	return nil
}
