package contracts

type Hive int

const (
	MachineHive Hive = iota
	UserHive
)

func (this Hive) String() string {
	if this == UserHive {
		return "HKCU"
	}
	return "HKLM"
}

// Namespace addresses one key of a hierarchical key/value store.
type Namespace struct {
	Hive Hive
	Key  string
}

func (this Namespace) String() string {
	return this.Hive.String() + `\` + this.Key
}

type ValueKind int

const (
	StringValue ValueKind = iota
	ExpandStringValue
	DWordValue
)

type Value struct {
	Kind   ValueKind
	Text   string
	Number uint32
}

func NewStringValue(text string) Value       { return Value{Kind: StringValue, Text: text} }
func NewExpandStringValue(text string) Value { return Value{Kind: ExpandStringValue, Text: text} }
func NewDWordValue(number uint32) Value      { return Value{Kind: DWordValue, Number: number} }

// KeyValueStore is the minimal view of the registry the installer needs.
// Get returns ValueNotFoundErr (wrapped) when the value does not exist.
type KeyValueStore interface {
	Get(namespace Namespace, name string) (Value, error)
	Set(namespace Namespace, name string, value Value) error
	Delete(namespace Namespace, name string) error
}
