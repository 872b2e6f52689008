package contracts

type Tone int

const (
	ToneInfo Tone = iota
	ToneSuccess
	ToneWarning
	ToneDanger
)

type Panel struct {
	Title string
	Tone  Tone
	Lines []string
}

// Reporter renders user-facing status lines. Diagnostics go to the log instead.
type Reporter interface {
	Banner(version string)
	Section(title string)
	Info(format string, args ...interface{})
	Success(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Danger(format string, args ...interface{})
	Detail(text string)
	Panel(Panel)
	ProgressSink
}

// Prompter asks yes/no questions. Confirm returns an error wrapping
// InterruptedErr when the user aborts the question instead of answering it.
type Prompter interface {
	Confirm(question string, defaultAnswer bool) (bool, error)
	Pause(message string)
}
