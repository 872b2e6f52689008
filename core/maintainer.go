package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	goversion "github.com/hashicorp/go-version"
	"github.com/smartystreets/clock"
	"github.com/smartystreets/logging"

	"github.com/Germanized/GradleInstaller/contracts"
)

type maintainerFileSystem interface {
	contracts.DirectoryLister
	contracts.TreeDeleter
}

type StopReport struct {
	Output string
	Err    error
}

type PruneReport struct {
	Removed []string
	Failed  []string
	Err     error
}

type Maintainer struct {
	disk        maintainerFileSystem
	runner      contracts.ProcessRunner
	environment contracts.Environment
	settings    contracts.Settings
	sleeper     *clock.Sleeper
	logger      *logging.Logger
}

func NewMaintainer(disk maintainerFileSystem, runner contracts.ProcessRunner, environment contracts.Environment, settings contracts.Settings) *Maintainer {
	return &Maintainer{disk: disk, runner: runner, environment: environment, settings: settings}
}

// StopDaemons asks the installed tool to stop its background workers, then
// waits so their file handles are released before pruning starts.
func (this *Maintainer) StopDaemons(ctx context.Context, executable string) StopReport {
	ctx, cancel := context.WithTimeout(ctx, this.settings.ProcessTimeout)
	defer cancel()

	result, err := this.runner.Run(ctx, toolCommand(executable, this.environment.Environ(), "--no-daemon", "--stop"))
	if err != nil {
		return StopReport{Err: fmt.Errorf("running %s --stop: %w", executable, err)}
	}
	report := StopReport{Output: strings.TrimSpace(result.Stdout + "\n" + result.Stderr)}
	if result.ExitCode != 0 {
		report.Err = fmt.Errorf("%s --stop exited with code %d", executable, result.ExitCode)
		this.sleeper.Sleep(this.settings.StopFailureWait)
		return report
	}
	this.sleeper.Sleep(this.settings.StopWait)
	return report
}

// PruneOldVersions removes every versioned sibling of currentHome. Failures
// do not stop the scan; they are collected into the report.
func (this *Maintainer) PruneOldVersions(installRoot, currentHome string) PruneReport {
	listing, err := this.disk.Listing(installRoot)
	if err != nil {
		return PruneReport{Err: fmt.Errorf("listing %s: %w", installRoot, err)}
	}

	var report PruneReport
	var failures *multierror.Error
	for _, candidate := range pruneCandidates(listing, currentHome) {
		if err = this.disk.DeleteAll(candidate); err != nil {
			this.logger.Printf("[WARN] could not remove %s: %s", candidate, err)
			report.Failed = append(report.Failed, candidate)
			failures = multierror.Append(failures, fmt.Errorf("%s: %w", candidate, err))
			continue
		}
		this.logger.Printf("[INFO] removed old version %s", candidate)
		report.Removed = append(report.Removed, candidate)
	}
	report.Err = failures.ErrorOrNil()
	return report
}

type versionedDirectory struct {
	path    string
	version *goversion.Version
}

func pruneCandidates(listing []contracts.FileInfo, currentHome string) (paths []string) {
	var candidates []versionedDirectory
	for _, item := range listing {
		if !item.IsDir() || samePath(item.Path(), currentHome) {
			continue
		}
		version, found := installedVersion(item.Name())
		if !found {
			continue
		}
		candidates = append(candidates, versionedDirectory{path: item.Path(), version: version})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].version.LessThan(candidates[j].version) })
	for _, candidate := range candidates {
		paths = append(paths, candidate.path)
	}
	return paths
}

func installedVersion(name string) (*goversion.Version, bool) {
	if len(name) <= len(homeDirectoryPrefix) || !strings.EqualFold(name[:len(homeDirectoryPrefix)], homeDirectoryPrefix) {
		return nil, false
	}
	version, err := goversion.NewVersion(name[len(homeDirectoryPrefix):])
	if err != nil {
		return nil, false
	}
	return version, true
}
