package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
	"github.com/smartystreets/clock"

	"github.com/Germanized/GradleInstaller/contracts"
)

const (
	consoleWidth      = 78
	progressBarWidth  = 40
	progressRedrawGap = 100 * time.Millisecond
)

var logo = []string{
	`   ____               _ _         ____       _               `,
	`  / ___|_ __ __ _  __| | | ___   / ___|  ___| |_ _   _ _ __  `,
	` | |  _| '__/ _' |/ _' | |/ _ \  \___ \ / _ \ __| | | | '_ \ `,
	` | |_| | | | (_| | (_| | |  __/   ___) |  __/ |_| |_| | |_) |`,
	`  \____|_|  \__,_|\__,_|_|\___|  |____/ \___|\__|\__,_| .__/ `,
	`                                                      |_|    `,
}

// Console is the terminal Reporter and Prompter.
type Console struct {
	out     io.Writer
	in      *bufio.Reader
	confirm func(question string, defaultAnswer bool) (bool, error)
	clock   *clock.Clock

	lastDraw time.Time
	drawn    bool
}

func NewConsole(out io.Writer, in io.Reader) *Console {
	return &Console{out: out, in: bufio.NewReader(in), confirm: surveyConfirm}
}

func (this *Console) Banner(version string) {
	fmt.Fprintln(this.out)
	for index, line := range logo {
		shade := color.RGB(0, 60+index*39, 60+index*39)
		shade.Fprintln(this.out, line)
	}
	fmt.Fprintln(this.out)
	color.New(color.FgHiCyan, color.Bold).Fprintf(this.out, "  Welcome to the Gradle %s setup for Windows\n", version)
	color.New(color.Faint).Fprintln(this.out, "  Installs Gradle system-wide and configures GRADLE_HOME and PATH.")
}

func (this *Console) Section(title string) {
	rule := strings.Repeat("─", max(0, consoleWidth-len(title)-4))
	fmt.Fprintln(this.out)
	color.New(color.FgHiBlue, color.Bold).Fprintf(this.out, "── %s %s\n", title, rule)
}

func (this *Console) Info(format string, args ...interface{}) {
	this.line(color.New(color.FgCyan), "[INFO]", format, args...)
}
func (this *Console) Success(format string, args ...interface{}) {
	this.line(color.New(color.FgGreen), "[ OK ]", format, args...)
}
func (this *Console) Warning(format string, args ...interface{}) {
	this.line(color.New(color.FgYellow), "[WARN]", format, args...)
}
func (this *Console) Danger(format string, args ...interface{}) {
	this.line(color.New(color.FgRed, color.Bold), "[FAIL]", format, args...)
}

func (this *Console) line(style *color.Color, prefix, format string, args ...interface{}) {
	style.Fprintf(this.out, "  %s ", prefix)
	fmt.Fprintf(this.out, format+"\n", args...)
}

func (this *Console) Detail(text string) {
	faint := color.New(color.Faint)
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		faint.Fprintf(this.out, "         %s\n", line)
	}
}

func (this *Console) Panel(panel contracts.Panel) {
	style := toneColor(panel.Tone)
	border := "+" + strings.Repeat("-", consoleWidth-2) + "+"
	fmt.Fprintln(this.out)
	style.Fprintln(this.out, border)
	toneColor(panel.Tone).Add(color.Bold).Fprintf(this.out, "  %s\n", panel.Title)
	for _, line := range panel.Lines {
		fmt.Fprintf(this.out, "  %s\n", line)
	}
	style.Fprintln(this.out, border)
}

func toneColor(tone contracts.Tone) *color.Color {
	switch tone {
	case contracts.ToneSuccess:
		return color.New(color.FgGreen)
	case contracts.ToneWarning:
		return color.New(color.FgYellow)
	case contracts.ToneDanger:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgCyan)
	}
}

func (this *Console) Start(label string) {
	this.lastDraw, this.drawn = time.Time{}, false
	this.Info("%s", label)
}

func (this *Console) Progress(progress contracts.DownloadProgress, summary string) {
	now := this.clock.UTCNow()
	if this.drawn && now.Sub(this.lastDraw) < progressRedrawGap {
		return
	}
	this.lastDraw, this.drawn = now, true
	this.draw(progress, summary)
}

func (this *Console) Finish(progress contracts.DownloadProgress, summary string) {
	this.draw(progress, summary)
	fmt.Fprintln(this.out)
}

func (this *Console) draw(progress contracts.DownloadProgress, summary string) {
	if progress.Indeterminate() {
		fmt.Fprintf(this.out, "\r         %s ", summary)
		return
	}
	filled := int(progress.Percent() / 100 * progressBarWidth)
	filled = min(max(filled, 0), progressBarWidth)
	fmt.Fprint(this.out, "\r         ")
	color.New(color.FgGreen).Fprint(this.out, strings.Repeat("█", filled))
	color.New(color.Faint).Fprint(this.out, strings.Repeat("░", progressBarWidth-filled))
	fmt.Fprintf(this.out, " %s ", summary)
}

// Confirm answers no when the terminal cannot be read. An interrupt
// (Ctrl+C) is reported as contracts.InterruptedErr.
func (this *Console) Confirm(question string, defaultAnswer bool) (bool, error) {
	answer, err := this.confirm(question, defaultAnswer)
	switch {
	case errors.Is(err, terminal.InterruptErr):
		fmt.Fprintln(this.out)
		return false, fmt.Errorf("%q: %w", question, contracts.InterruptedErr)
	case err != nil:
		log.Printf("[WARN] could not read an answer to %q: %s", question, err)
		return false, nil
	default:
		return answer, nil
	}
}

func (this *Console) Pause(message string) {
	fmt.Fprintln(this.out)
	color.New(color.Faint).Fprintf(this.out, "%s", message)
	_, _ = this.in.ReadString('\n')
}

func surveyConfirm(question string, defaultAnswer bool) (answer bool, err error) {
	err = survey.AskOne(&survey.Confirm{Message: question, Default: defaultAnswer}, &answer)
	return answer, err
}
