package core

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/clock"
	"github.com/smartystreets/gunit"
	"github.com/smartystreets/logging"

	"github.com/Germanized/GradleInstaller/contracts"
)

func TestMaintainerFixture(t *testing.T) {
	gunit.Run(new(MaintainerFixture), t)
}

type MaintainerFixture struct {
	*gunit.Fixture

	disk       *inMemoryFileSystem
	runner     *FakeProcessRunner
	maintainer *Maintainer

	root       string
	current    string
	executable string
}

func (this *MaintainerFixture) Setup() {
	this.root = filepath.Join("/", "Gradle")
	this.current = filepath.Join(this.root, "gradle-8.10")
	this.executable = filepath.Join(this.current, "bin", "gradle.bat")
	this.disk = newInMemoryFileSystem()
	this.disk.WriteFile(this.executable, nil)
	this.runner = NewFakeProcessRunner()
	settings := NewSettingsLoader(make(FakeEnvironment)).Load()
	this.maintainer = NewMaintainer(this.disk, this.runner, FakeEnvironment{"PATH": "/usr/bin"}, settings)
	this.maintainer.sleeper = clock.StayAwake()
	this.maintainer.logger = logging.Capture()
}

func (this *MaintainerFixture) install(names ...string) {
	for _, name := range names {
		this.disk.WriteFile(filepath.Join(this.root, name, "bin", "gradle.bat"), nil)
	}
}

func (this *MaintainerFixture) TestStopWaitsForDaemonsToExit() {
	this.runner.results = []contracts.ProcessResult{{ExitCode: 0, Stdout: "Stopping Daemon(s)\n1 Daemon stopped"}}

	report := this.maintainer.StopDaemons(context.Background(), this.executable)

	this.So(report.Err, should.BeNil)
	this.So(report.Output, should.ContainSubstring, "1 Daemon stopped")
	this.So(this.runner.commands[0].Arguments, should.Resemble, []string{"--no-daemon", "--stop"})
	this.So(this.runner.commands[0].Env, should.Contain, "GRADLE_HOME="+this.current)
	this.So(this.maintainer.sleeper.Naps, should.Resemble, []time.Duration{time.Second * 5})
}

func (this *MaintainerFixture) TestStopFailureIsReportedWithShorterWait() {
	this.runner.results = []contracts.ProcessResult{{ExitCode: 1, Stderr: "could not connect"}}

	report := this.maintainer.StopDaemons(context.Background(), this.executable)

	this.So(report.Err, should.NotBeNil)
	this.So(report.Output, should.Equal, "could not connect")
	this.So(this.maintainer.sleeper.Naps, should.Resemble, []time.Duration{time.Second * 2})
}

func (this *MaintainerFixture) TestStopLaunchFailureDoesNotWait() {
	this.runner.errs = []error{errors.New("file not found")}

	report := this.maintainer.StopDaemons(context.Background(), this.executable)

	this.So(report.Err, should.NotBeNil)
	this.So(this.maintainer.sleeper.Naps, should.BeEmpty)
}

func (this *MaintainerFixture) TestNoCandidates() {
	report := this.maintainer.PruneOldVersions(this.root, this.current)

	this.So(report.Removed, should.BeEmpty)
	this.So(report.Failed, should.BeEmpty)
	this.So(report.Err, should.BeNil)
	this.So(this.disk.exists(this.current), should.BeTrue)
}

func (this *MaintainerFixture) TestSingleCandidateRemoved() {
	this.install("gradle-8.9")

	report := this.maintainer.PruneOldVersions(this.root, this.current)

	this.So(report.Removed, should.Resemble, []string{filepath.Join(this.root, "gradle-8.9")})
	this.So(this.disk.exists(filepath.Join(this.root, "gradle-8.9")), should.BeFalse)
	this.So(this.disk.exists(this.executable), should.BeTrue)
}

func (this *MaintainerFixture) TestManyCandidatesRemovedInVersionOrder() {
	this.install("gradle-8.9", "gradle-7.6.4", "gradle-8.10-rc-1", "gradle-8.2")

	report := this.maintainer.PruneOldVersions(this.root, this.current)

	this.So(report.Removed, should.Resemble, []string{
		filepath.Join(this.root, "gradle-7.6.4"),
		filepath.Join(this.root, "gradle-8.2"),
		filepath.Join(this.root, "gradle-8.9"),
		filepath.Join(this.root, "gradle-8.10-rc-1"),
	})
	this.So(this.disk.exists(this.current), should.BeTrue)
}

func (this *MaintainerFixture) TestUnrelatedEntriesKept() {
	this.install("tools", "gradle-", "gradle-nightly")
	this.disk.WriteFile(filepath.Join(this.root, "gradle-8.9.zip"), nil)

	report := this.maintainer.PruneOldVersions(this.root, this.current)

	this.So(report.Removed, should.BeEmpty)
	this.So(this.disk.exists(filepath.Join(this.root, "tools")), should.BeTrue)
	this.So(this.disk.exists(filepath.Join(this.root, "gradle-nightly")), should.BeTrue)
	this.So(this.disk.exists(filepath.Join(this.root, "gradle-8.9.zip")), should.BeTrue)
}

func (this *MaintainerFixture) TestCurrentHomeNeverRemovedWhateverItsSpelling() {
	this.install("gradle-8.9")

	report := this.maintainer.PruneOldVersions(this.root, this.current+string(filepath.Separator))

	this.So(report.Removed, should.HaveLength, 1)
	this.So(this.disk.exists(this.executable), should.BeTrue)
}

func (this *MaintainerFixture) TestFailuresCountedAndScanContinues() {
	this.install("gradle-7.6", "gradle-8.8", "gradle-8.9")
	this.disk.errDelete[filepath.Join(this.root, "gradle-8.8")] = errors.New("file in use")

	report := this.maintainer.PruneOldVersions(this.root, this.current)

	this.So(report.Removed, should.Resemble, []string{filepath.Join(this.root, "gradle-7.6"), filepath.Join(this.root, "gradle-8.9")})
	this.So(report.Failed, should.Resemble, []string{filepath.Join(this.root, "gradle-8.8")})
	this.So(report.Err.Error(), should.ContainSubstring, "file in use")
	this.So(this.maintainer.logger.Log.String(), should.ContainSubstring, "[WARN]")
}

func (this *MaintainerFixture) TestListingFailure() {
	this.disk.errListing[this.root] = errors.New("access denied")

	report := this.maintainer.PruneOldVersions(this.root, this.current)

	this.So(report.Err, should.NotBeNil)
	this.So(report.Removed, should.BeEmpty)
}
