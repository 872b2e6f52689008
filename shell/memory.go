package shell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Germanized/GradleInstaller/contracts"
)

// InMemoryStore is a KeyValueStore backed by maps. Key paths are compared
// case-insensitively, as the registry does.
type InMemoryStore struct {
	values map[string]map[string]contracts.Value
	Writes int
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{values: make(map[string]map[string]contracts.Value)}
}

func (this *InMemoryStore) Get(namespace contracts.Namespace, name string) (contracts.Value, error) {
	value, found := this.values[keyOf(namespace)][strings.ToLower(name)]
	if !found {
		return contracts.Value{}, fmt.Errorf("%s\\%s: %w", namespace, name, contracts.ValueNotFoundErr)
	}
	return value, nil
}

func (this *InMemoryStore) Set(namespace contracts.Namespace, name string, value contracts.Value) error {
	key := keyOf(namespace)
	if this.values[key] == nil {
		this.values[key] = make(map[string]contracts.Value)
	}
	this.values[key][strings.ToLower(name)] = value
	this.Writes++
	return nil
}

func (this *InMemoryStore) Delete(namespace contracts.Namespace, name string) error {
	key := keyOf(namespace)
	if _, found := this.values[key][strings.ToLower(name)]; !found {
		return fmt.Errorf("%s\\%s: %w", namespace, name, contracts.ValueNotFoundErr)
	}
	delete(this.values[key], strings.ToLower(name))
	this.Writes++
	return nil
}

// Names lists the value names stored under namespace, sorted.
func (this *InMemoryStore) Names(namespace contracts.Namespace) (names []string) {
	for name := range this.values[keyOf(namespace)] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func keyOf(namespace contracts.Namespace) string {
	return strings.ToLower(namespace.String())
}
