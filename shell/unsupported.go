//go:build !windows

package shell

import "github.com/Germanized/GradleInstaller/contracts"

type RegistryStore struct{}

func NewRegistryStore() *RegistryStore { return &RegistryStore{} }

func (this *RegistryStore) Get(contracts.Namespace, string) (contracts.Value, error) {
	return contracts.Value{}, contracts.UnsupportedPlatformErr
}
func (this *RegistryStore) Set(contracts.Namespace, string, contracts.Value) error {
	return contracts.UnsupportedPlatformErr
}
func (this *RegistryStore) Delete(contracts.Namespace, string) error {
	return contracts.UnsupportedPlatformErr
}

type Elevator struct{}

func NewElevator() *Elevator { return &Elevator{} }

func (this *Elevator) IsElevated() bool                { return false }
func (this *Elevator) RelaunchElevated([]string) error { return contracts.UnsupportedPlatformErr }

type EnvironmentBroadcaster struct{}

func NewEnvironmentBroadcaster() *EnvironmentBroadcaster { return &EnvironmentBroadcaster{} }

func (this *EnvironmentBroadcaster) BroadcastEnvironmentChange() error {
	return contracts.UnsupportedPlatformErr
}

type ShortcutWriter struct{}

func NewShortcutWriter() *ShortcutWriter { return &ShortcutWriter{} }

func (this *ShortcutWriter) DesktopDirectory() (string, error) {
	return "", contracts.UnsupportedPlatformErr
}
func (this *ShortcutWriter) WriteShortcut(contracts.Shortcut) error {
	return contracts.UnsupportedPlatformErr
}
