package contracts

type Elevator interface {
	IsElevated() bool
	RelaunchElevated(arguments []string) error
}

type EnvironmentBroadcaster interface {
	BroadcastEnvironmentChange() error
}

type Shortcut struct {
	Path             string
	Target           string
	Arguments        string
	Description      string
	IconLocation     string
	WorkingDirectory string
}

type ShortcutWriter interface {
	DesktopDirectory() (string, error)
	WriteShortcut(Shortcut) error
}
