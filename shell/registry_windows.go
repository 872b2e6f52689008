//go:build windows

package shell

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/Germanized/GradleInstaller/contracts"
)

type RegistryStore struct{}

func NewRegistryStore() *RegistryStore {
	return &RegistryStore{}
}

func (this *RegistryStore) Get(namespace contracts.Namespace, name string) (contracts.Value, error) {
	key, err := registry.OpenKey(rootKey(namespace.Hive), namespace.Key, registry.QUERY_VALUE)
	if err != nil {
		return contracts.Value{}, registryError(namespace, name, err)
	}
	defer func() { _ = key.Close() }()

	_, kind, err := key.GetValue(name, nil)
	if err != nil {
		return contracts.Value{}, registryError(namespace, name, err)
	}
	switch kind {
	case registry.SZ, registry.EXPAND_SZ:
		text, _, err := key.GetStringValue(name)
		if err != nil {
			return contracts.Value{}, registryError(namespace, name, err)
		}
		if kind == registry.EXPAND_SZ {
			return contracts.NewExpandStringValue(text), nil
		}
		return contracts.NewStringValue(text), nil
	case registry.DWORD:
		number, _, err := key.GetIntegerValue(name)
		if err != nil {
			return contracts.Value{}, registryError(namespace, name, err)
		}
		return contracts.NewDWordValue(uint32(number)), nil
	default:
		return contracts.Value{}, fmt.Errorf("%s\\%s: unsupported value type %d", namespace, name, kind)
	}
}

func (this *RegistryStore) Set(namespace contracts.Namespace, name string, value contracts.Value) error {
	key, _, err := registry.CreateKey(rootKey(namespace.Hive), namespace.Key, registry.SET_VALUE)
	if err != nil {
		return registryError(namespace, name, err)
	}
	defer func() { _ = key.Close() }()

	switch value.Kind {
	case contracts.ExpandStringValue:
		err = key.SetExpandStringValue(name, value.Text)
	case contracts.DWordValue:
		err = key.SetDWordValue(name, value.Number)
	default:
		err = key.SetStringValue(name, value.Text)
	}
	return registryError(namespace, name, err)
}

func (this *RegistryStore) Delete(namespace contracts.Namespace, name string) error {
	key, err := registry.OpenKey(rootKey(namespace.Hive), namespace.Key, registry.SET_VALUE)
	if err != nil {
		return registryError(namespace, name, err)
	}
	defer func() { _ = key.Close() }()
	return registryError(namespace, name, key.DeleteValue(name))
}

func rootKey(hive contracts.Hive) registry.Key {
	if hive == contracts.UserHive {
		return registry.CURRENT_USER
	}
	return registry.LOCAL_MACHINE
}

func registryError(namespace contracts.Namespace, name string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, registry.ErrNotExist):
		return fmt.Errorf("%s\\%s: %w", namespace, name, contracts.ValueNotFoundErr)
	default:
		return fmt.Errorf("%s\\%s: %w", namespace, name, err)
	}
}
