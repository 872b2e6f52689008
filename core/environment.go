package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smartystreets/logging"

	"github.com/Germanized/GradleInstaller/contracts"
)

var SystemEnvironmentKey = contracts.Namespace{
	Hive: contracts.MachineHive,
	Key:  `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`,
}

const pathVariable = "Path"

// EnvironmentConfigurator edits the machine-wide environment. Every write
// requires an elevated process.
type EnvironmentConfigurator struct {
	store       contracts.KeyValueStore
	broadcaster contracts.EnvironmentBroadcaster
	logger      *logging.Logger
}

func NewEnvironmentConfigurator(store contracts.KeyValueStore, broadcaster contracts.EnvironmentBroadcaster) *EnvironmentConfigurator {
	return &EnvironmentConfigurator{store: store, broadcaster: broadcaster}
}

func (this *EnvironmentConfigurator) SetSystemVariable(name, value string) (changed bool, err error) {
	current, err := this.store.Get(SystemEnvironmentKey, name)
	if err != nil && !errors.Is(err, contracts.ValueNotFoundErr) {
		return false, fmt.Errorf("reading %s: %w", name, err)
	}
	desired := contracts.NewStringValue(value)
	if strings.Contains(value, "%") {
		desired = contracts.NewExpandStringValue(value)
	}
	if err == nil && current == desired {
		return false, nil
	}
	if err = this.store.Set(SystemEnvironmentKey, name, desired); err != nil {
		return false, fmt.Errorf("writing %s: %w", name, err)
	}
	this.logger.Printf("[INFO] set system variable %s=%s", name, value)
	return true, nil
}

// AppendToSystemPath adds directory to the machine PATH unless an equivalent
// entry is already listed. The stored value keeps its original kind.
func (this *EnvironmentConfigurator) AppendToSystemPath(directory string) (changed bool, err error) {
	current, err := this.store.Get(SystemEnvironmentKey, pathVariable)
	if errors.Is(err, contracts.ValueNotFoundErr) {
		current, err = contracts.NewExpandStringValue(""), nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", pathVariable, err)
	}

	updated, changed := appendPathEntry(current.Text, directory)
	if !changed {
		this.logger.Printf("[INFO] %s already lists %s", pathVariable, directory)
		return false, nil
	}
	if current.Kind != contracts.StringValue {
		current.Kind = contracts.ExpandStringValue
	}
	current.Text = updated
	if err = this.store.Set(SystemEnvironmentKey, pathVariable, current); err != nil {
		return false, fmt.Errorf("writing %s: %w", pathVariable, err)
	}
	this.logger.Printf("[INFO] appended %s to the system %s", directory, pathVariable)
	return true, nil
}

func (this *EnvironmentConfigurator) BroadcastEnvironmentChange() error {
	if err := this.broadcaster.BroadcastEnvironmentChange(); err != nil {
		this.logger.Printf("[WARN] environment change broadcast failed: %s", err)
		return err
	}
	return nil
}
