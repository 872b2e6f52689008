package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/smartystreets/logging"

	"github.com/Germanized/GradleInstaller/contracts"
)

type installerFileSystem interface {
	contracts.FileChecker
	contracts.TreeDeleter
	contracts.DirectoryLister
}

type InstallOutcome int

const (
	Extracted InstallOutcome = iota
	Replaced
	KeptExisting
)

type PackageInstaller struct {
	disk      installerFileSystem
	extractor contracts.Extractor
	prompter  contracts.Prompter
	reporter  contracts.Reporter
	logger    *logging.Logger
}

func NewPackageInstaller(disk installerFileSystem, extractor contracts.Extractor, prompter contracts.Prompter, reporter contracts.Reporter) *PackageInstaller {
	return &PackageInstaller{disk: disk, extractor: extractor, prompter: prompter, reporter: reporter}
}

// Install extracts archivePath into installRoot. An existing expectedHomeDir is
// left untouched unless the user agrees to replace it.
func (this *PackageInstaller) Install(archivePath, installRoot, expectedHomeDir string) (InstallOutcome, error) {
	outcome := Extracted

	exists, err := this.exists(expectedHomeDir)
	if err != nil {
		return outcome, err
	}
	if exists {
		this.reporter.Warning("Target directory %s already exists.", expectedHomeDir)
		var replace bool
		replace, err = this.prompter.Confirm(fmt.Sprintf("Remove existing directory %s and perform a fresh extraction?", expectedHomeDir), true)
		if err != nil {
			return outcome, err
		}
		if !replace {
			this.reporter.Info("Extraction skipped; keeping the existing directory.")
			return KeptExisting, nil
		}
		if err = this.disk.DeleteAll(expectedHomeDir); err != nil {
			return outcome, fmt.Errorf("%w %s: %s", ReplaceExistingErr, expectedHomeDir, err)
		}
		this.reporter.Success("Removed existing target directory.")
		outcome = Replaced
	}

	if err = this.extractor.Extract(archivePath, installRoot); err != nil {
		return outcome, fmt.Errorf("extracting %s: %w", archivePath, err)
	}
	this.logger.Printf("[INFO] extracted %s into %s", archivePath, installRoot)

	if err = this.verifyLayout(installRoot, expectedHomeDir); err != nil {
		return outcome, err
	}
	return outcome, nil
}

func (this *PackageInstaller) exists(path string) (bool, error) {
	_, err := this.disk.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("inspecting %s: %w", path, err)
}

func (this *PackageInstaller) verifyLayout(installRoot, expectedHomeDir string) error {
	info, err := this.disk.Stat(expectedHomeDir)
	if err == nil && info.IsDir() {
		return nil
	}
	var names []string
	listing, _ := this.disk.Listing(installRoot)
	for _, item := range listing {
		names = append(names, item.Name())
	}
	return fmt.Errorf("%w: expected directory %s; %s contains [%s]",
		LayoutMismatchErr, filepath.Base(expectedHomeDir), installRoot, strings.Join(names, ", "))
}

var (
	ReplaceExistingErr = errors.New("could not remove existing directory")
	LayoutMismatchErr  = errors.New("unexpected archive layout")
)
