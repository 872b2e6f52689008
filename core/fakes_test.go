package core

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Germanized/GradleInstaller/contracts"
)

type FakeHTTPGetter struct {
	responses map[string]string
	lengths   map[string]int64
	readers   map[string]func(ctx context.Context) *fakeReader

	requests    []string
	bodies      []*fakeBody
	hadDeadline bool
	failures    []error
	err         error
}

func NewFakeHTTPGetter() *FakeHTTPGetter {
	return &FakeHTTPGetter{
		responses: make(map[string]string),
		lengths:   make(map[string]int64),
		readers:   make(map[string]func(ctx context.Context) *fakeReader),
	}
}

func (this *FakeHTTPGetter) Get(ctx context.Context, address string) (contracts.Response, error) {
	this.requests = append(this.requests, address)
	_, this.hadDeadline = ctx.Deadline()
	if len(this.failures) > 0 {
		err := this.failures[0]
		this.failures = this.failures[1:]
		return contracts.Response{}, err
	}
	if this.err != nil {
		return contracts.Response{}, this.err
	}

	var body *fakeBody
	length := int64(-1)
	if reader, found := this.readers[address]; found {
		body = &fakeBody{Reader: reader(ctx)}
	} else if content, found := this.responses[address]; found {
		body = &fakeBody{Reader: strings.NewReader(content)}
		length = int64(len(content))
	} else {
		return contracts.Response{}, fmt.Errorf("%w: 404 Not Found", contracts.StatusErr)
	}
	if override, found := this.lengths[address]; found {
		length = override
	}
	this.bodies = append(this.bodies, body)
	return contracts.Response{Body: body, ContentLength: length}, nil
}

type fakeBody struct {
	io.Reader
	closed bool
}

func (this *fakeBody) Close() error {
	this.closed = true
	return nil
}

// fakeReader serves content until failAfter bytes were read, then either
// blocks until block is done or fails with err.
type fakeReader struct {
	content   io.Reader
	failAfter int
	read      int
	err       error
	block     context.Context
}

func (this *fakeReader) Read(p []byte) (int, error) {
	if this.read >= this.failAfter {
		if this.block != nil {
			<-this.block.Done()
			return 0, this.block.Err()
		}
		return 0, this.err
	}
	if remaining := this.failAfter - this.read; len(p) > remaining {
		p = p[:remaining]
	}
	count, err := this.content.Read(p)
	this.read += count
	return count, err
}

/////////////////////////////////////////////////

type FakeReporter struct {
	lines   []string
	panels  []contracts.Panel
	banners []string

	progressLabel   string
	progress        []contracts.DownloadProgress
	finished        contracts.DownloadProgress
	finishedSummary string
}

func NewFakeReporter() *FakeReporter {
	return &FakeReporter{}
}

func (this *FakeReporter) add(tone, format string, args ...interface{}) {
	this.lines = append(this.lines, tone+": "+fmt.Sprintf(format, args...))
}

func (this *FakeReporter) Banner(version string) { this.banners = append(this.banners, version) }
func (this *FakeReporter) Section(title string)  { this.add("section", "%s", title) }
func (this *FakeReporter) Detail(text string)    { this.add("detail", "%s", text) }
func (this *FakeReporter) Panel(panel contracts.Panel) {
	this.panels = append(this.panels, panel)
}
func (this *FakeReporter) Info(format string, args ...interface{})    { this.add("info", format, args...) }
func (this *FakeReporter) Success(format string, args ...interface{}) { this.add("success", format, args...) }
func (this *FakeReporter) Warning(format string, args ...interface{}) { this.add("warning", format, args...) }
func (this *FakeReporter) Danger(format string, args ...interface{})  { this.add("danger", format, args...) }

func (this *FakeReporter) Start(label string) { this.progressLabel = label }
func (this *FakeReporter) Progress(progress contracts.DownloadProgress, _ string) {
	this.progress = append(this.progress, progress)
}
func (this *FakeReporter) Finish(progress contracts.DownloadProgress, summary string) {
	this.finished, this.finishedSummary = progress, summary
}

func (this *FakeReporter) text() string {
	return strings.Join(this.lines, "\n")
}

func (this *FakeReporter) lastPanel() contracts.Panel {
	if len(this.panels) == 0 {
		return contracts.Panel{}
	}
	return this.panels[len(this.panels)-1]
}

/////////////////////////////////////////////////

// FakePrompter answers from a queue, falling back to each question's default.
type FakePrompter struct {
	answers     []bool
	interruptAt int // 1-based question number that is interrupted, 0 for none
	questions   []string
	pauses      []string
}

func NewFakePrompter() *FakePrompter {
	return &FakePrompter{}
}

func (this *FakePrompter) Confirm(question string, defaultAnswer bool) (bool, error) {
	this.questions = append(this.questions, question)
	if len(this.questions) == this.interruptAt {
		return false, contracts.InterruptedErr
	}
	if len(this.answers) == 0 {
		return defaultAnswer, nil
	}
	answer := this.answers[0]
	this.answers = this.answers[1:]
	return answer, nil
}

func (this *FakePrompter) Pause(message string) {
	this.pauses = append(this.pauses, message)
}

/////////////////////////////////////////////////

type FakeProcessRunner struct {
	results   []contracts.ProcessResult
	errs      []error
	respond   func(command contracts.Command) (contracts.ProcessResult, error)
	commands  []contracts.Command
	deadlines []bool
}

func NewFakeProcessRunner() *FakeProcessRunner {
	return &FakeProcessRunner{}
}

func (this *FakeProcessRunner) Run(ctx context.Context, command contracts.Command) (contracts.ProcessResult, error) {
	index := len(this.commands)
	this.commands = append(this.commands, command)
	_, hasDeadline := ctx.Deadline()
	this.deadlines = append(this.deadlines, hasDeadline)
	if this.respond != nil {
		return this.respond(command)
	}
	var result contracts.ProcessResult
	var err error
	if index < len(this.results) {
		result = this.results[index]
	}
	if index < len(this.errs) {
		err = this.errs[index]
	}
	return result, err
}

/////////////////////////////////////////////////

type FakeExtractor struct {
	disk    *inMemoryFileSystem
	creates []string
	err     error
	calls   []string
}

func NewFakeExtractor(disk *inMemoryFileSystem) *FakeExtractor {
	return &FakeExtractor{disk: disk}
}

func (this *FakeExtractor) Extract(archivePath, destination string) error {
	this.calls = append(this.calls, archivePath+" -> "+destination)
	if this.err != nil {
		return this.err
	}
	for _, path := range this.creates {
		this.disk.WriteFile(path, []byte("extracted"))
	}
	return nil
}

/////////////////////////////////////////////////

type FakeElevator struct {
	elevated   bool
	err        error
	relaunches [][]string
}

func (this *FakeElevator) IsElevated() bool { return this.elevated }

func (this *FakeElevator) RelaunchElevated(arguments []string) error {
	this.relaunches = append(this.relaunches, arguments)
	return this.err
}

type FakeBroadcaster struct {
	err   error
	calls int
}

func (this *FakeBroadcaster) BroadcastEnvironmentChange() error {
	this.calls++
	return this.err
}

type FakeShortcutWriter struct {
	desktop    string
	desktopErr error
	writeErr   error
	written    []contracts.Shortcut
}

func (this *FakeShortcutWriter) DesktopDirectory() (string, error) {
	return this.desktop, this.desktopErr
}

func (this *FakeShortcutWriter) WriteShortcut(shortcut contracts.Shortcut) error {
	if this.writeErr != nil {
		return this.writeErr
	}
	this.written = append(this.written, shortcut)
	return nil
}
