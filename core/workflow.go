package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartystreets/logging"

	"github.com/Germanized/GradleInstaller/contracts"
)

// Collaborators are the OS-facing adapters a Workflow runs against.
type Collaborators struct {
	Elevator    contracts.Elevator
	HTTP        contracts.HTTPGetter
	Downloads   contracts.HTTPGetter
	Disk        contracts.FileSystem
	Extractor   contracts.Extractor
	Registry    contracts.KeyValueStore
	Broadcaster contracts.EnvironmentBroadcaster
	Shortcuts   contracts.ShortcutWriter
	Runner      contracts.ProcessRunner
	Environment contracts.Environment
	Reporter    contracts.Reporter
	Prompter    contracts.Prompter
}

const (
	stageElevation   = "elevation"
	stageVersion     = "version"
	stageRuntime     = "java"
	stageSettings    = "settings"
	stagePrepare     = "prepare"
	stageDownload    = "download"
	stageChecksum    = "checksum"
	stageExtract     = "extract"
	stageEnvironment = "environment"
	stageBroadcast   = "broadcast"
	stagePalette     = "console-colors"
	stageShortcut    = "shortcut"
	stageVerify      = "verify"
	stageStop        = "daemon-stop"
	stagePrune       = "prune"
	stageCleanup     = "cleanup"
)

// stagePolicy says what a failure in each stage means for the run.
var stagePolicy = map[string]contracts.StageStatus{
	stageElevation:   contracts.StageFatal,
	stageVersion:     contracts.StageFatal,
	stagePrepare:     contracts.StageFatal,
	stageDownload:    contracts.StageFatal,
	stageExtract:     contracts.StageFatal,
	stageRuntime:     contracts.StageWarning,
	stageSettings:    contracts.StageFatal,
	stageChecksum:    contracts.StageWarning,
	stageEnvironment: contracts.StageWarning,
	stageBroadcast:   contracts.StageWarning,
	stagePalette:     contracts.StageWarning,
	stageShortcut:    contracts.StageWarning,
	stageVerify:      contracts.StageWarning,
	stageStop:        contracts.StageWarning,
	stagePrune:       contracts.StageWarning,
	stageCleanup:     contracts.StageWarning,
}

func failureStatus(stage string, err error) contracts.StageStatus {
	if errors.Is(err, contracts.CorruptArchiveErr) || errors.Is(err, userDeclinedErr) || errors.Is(err, contracts.InterruptedErr) {
		return contracts.StageFatal
	}
	if status, found := stagePolicy[stage]; found {
		return status
	}
	return contracts.StageWarning
}

type Workflow struct {
	settings contracts.Settings
	disk     contracts.FileSystem
	reporter contracts.Reporter
	prompter contracts.Prompter

	gate       *PrivilegeGate
	resolver   *VersionResolver
	runtime    *RuntimeCheck
	downloader *Downloader
	checksums  *ChecksumIntegrityCheck
	installer  *PackageInstaller
	variables  *EnvironmentConfigurator
	palette    *ConsolePalette
	shortcuts  *ShortcutBuilder
	verifier   *Verifier
	maintainer *Maintainer
	logger     *logging.Logger

	config       *contracts.InstallConfig
	results      []contracts.StageResult
	cancelled    bool
	verification contracts.VerificationResult
	envStatus    environmentStatus
	shortcutPath string
	paletteSet   bool
}

type environmentStatus struct {
	attempted bool
	failed    bool
}

func NewWorkflow(settings contracts.Settings, with Collaborators) *Workflow {
	return &Workflow{
		settings: settings,
		disk:     with.Disk,
		reporter: with.Reporter,
		prompter: with.Prompter,

		gate:       NewPrivilegeGate(with.Elevator, with.Prompter, with.Reporter),
		resolver:   NewVersionResolver(with.HTTP, settings.VersionEndpoint, settings.VersionTimeout),
		runtime:    NewRuntimeCheck(with.Runner, settings.ProcessTimeout),
		downloader: NewDownloader(NewRetryClient(with.Downloads, settings.MaxRetry), with.Disk, settings.ChunkSize, settings.ReadTimeout),
		checksums:  NewChecksumIntegrityCheck(with.HTTP, settings.VersionTimeout),
		installer:  NewPackageInstaller(with.Disk, with.Extractor, with.Prompter, with.Reporter),
		variables:  NewEnvironmentConfigurator(with.Registry, with.Broadcaster),
		palette:    NewConsolePalette(with.Registry),
		shortcuts:  NewShortcutBuilder(with.Environment, with.Shortcuts),
		verifier:   NewVerifier(with.Disk, with.Runner, with.Environment, settings.ProcessTimeout),
		maintainer: NewMaintainer(with.Disk, with.Runner, with.Environment, settings),
	}
}

func (this *Workflow) Results() []contracts.StageResult { return this.results }

// Run drives the whole installation and returns the process exit code.
func (this *Workflow) Run(ctx context.Context, arguments []string) int {
	if this.gate.Enter(arguments) == Terminated {
		if exitCode := this.gate.ExitCode(); exitCode != 0 {
			this.record(stageElevation, elevationNotGrantedErr)
			this.prompter.Pause("Press Enter to exit.")
			return exitCode
		}
		return 0
	}

	exitCode := this.install(ctx)
	if this.config != nil {
		this.cleanup()
	}
	this.summarize(exitCode)
	this.prompter.Pause("Press Enter to exit.")
	return exitCode
}

func (this *Workflow) install(ctx context.Context) int {
	this.reporter.Info("Fetching latest Gradle version information...")
	version, err := this.resolver.FetchLatestVersion(ctx)
	if this.record(stageVersion, err).Fatal() {
		this.reporter.Danger("Could not determine the latest Gradle version: %s", err)
		return exitFailure
	}
	config := NewInstallConfig(version, this.settings)
	this.config = &config
	this.reporter.Banner(version)

	if !this.checkPrerequisites(ctx) {
		return exitFailure
	}
	proceed, err := this.confirmSettings(config)
	if this.record(stageSettings, err).Fatal() {
		this.reporter.Danger("Installation interrupted.")
		return exitFailure
	}
	if !proceed {
		this.cancelled = true
		this.reporter.Warning("Installation aborted by user.")
		return exitSuccess
	}
	if !this.downloadAndExtract(ctx, config) {
		return exitFailure
	}
	this.configureEnvironment(config)
	this.customize(config)
	this.verify(ctx, config)
	if this.verification.Succeeded {
		this.maintain(ctx, config)
	} else {
		this.reporter.Warning("Gradle verification failed. Stopping daemons and removing old versions will be skipped.")
		this.reporter.Warning("Please verify your Gradle installation and environment variables manually.")
	}
	return exitSuccess
}

func (this *Workflow) checkPrerequisites(ctx context.Context) bool {
	this.reporter.Section("System Checks")
	this.reporter.Info("Checking for Java installation...")
	java, err := this.runtime.CheckJava(ctx)
	if err == nil {
		this.reporter.Success("Java found: %s", java)
		this.record(stageRuntime, nil)
		return true
	}
	this.reporter.Warning("Java JDK not found or verification failed (%s). Gradle may not work.", err)
	proceed, promptErr := this.prompter.Confirm("Continue with Gradle installation anyway?", false)
	if promptErr != nil {
		this.reporter.Danger("Installation interrupted.")
		return !this.record(stageRuntime, promptErr).Fatal()
	}
	if !proceed {
		this.reporter.Danger("Installation aborted. Please install a Java JDK and try again.")
		return !this.record(stageRuntime, fmt.Errorf("%w: %s", userDeclinedErr, err)).Fatal()
	}
	this.record(stageRuntime, err)
	return true
}

func (this *Workflow) confirmSettings(config contracts.InstallConfig) (bool, error) {
	this.reporter.Panel(contracts.Panel{
		Title: "Installation Settings",
		Tone:  contracts.ToneInfo,
		Lines: []string{
			"Gradle version:   " + config.Version,
			"Download URL:     " + config.DownloadURL,
			"Install root:     " + config.InstallRoot,
			"GRADLE_HOME:      " + config.HomeDir,
			"PATH addition:    " + config.BinDir,
			"Temporary files:  " + config.TempDir,
		},
	})
	return this.prompter.Confirm("Proceed with installation using these settings?", true)
}

func (this *Workflow) downloadAndExtract(ctx context.Context, config contracts.InstallConfig) bool {
	this.reporter.Section("Download & Extraction")
	err := this.disk.MakeDirectories(config.TempDir)
	if err == nil {
		err = this.disk.MakeDirectories(config.InstallRoot)
	}
	if this.record(stagePrepare, err).Fatal() {
		this.reporter.Danger("Could not create working directories: %s", err)
		return false
	}

	this.reporter.Info("Downloading Gradle %s from %s...", config.Version, config.DownloadURL)
	receipt, err := this.downloader.Download(ctx, config.DownloadURL, config.ArchivePath, this.reporter)
	if this.record(stageDownload, err).Fatal() {
		if errors.Is(err, contracts.TimeoutErr) {
			this.reporter.Danger("Download failed: the request timed out connecting to or reading from %s", config.DownloadURL)
		} else {
			this.reporter.Danger("Download failed: %s", err)
		}
		return false
	}
	this.reporter.Success("Download complete (%s).", humanFileSize(float64(receipt.BytesWritten)))

	err = this.checksums.Verify(ctx, config.ChecksumURL(), receipt.SHA256)
	switch result := this.record(stageChecksum, err); {
	case result.Fatal():
		this.reporter.Danger("Checksum verification failed: %s", err)
		return false
	case result.Warning():
		this.reporter.Warning("Could not verify the archive checksum: %s", err)
	default:
		this.reporter.Success("SHA-256 checksum verified.")
	}

	this.reporter.Info("Extracting Gradle to %s...", config.InstallRoot)
	outcome, err := this.installer.Install(config.ArchivePath, config.InstallRoot, config.HomeDir)
	if this.record(stageExtract, err).Fatal() {
		switch {
		case errors.Is(err, contracts.CorruptArchiveErr):
			this.reporter.Danger("Extraction failed: the downloaded file %s is not a valid ZIP archive or is corrupted.", config.ArchivePath)
		case errors.Is(err, LayoutMismatchErr):
			this.reporter.Danger("Post-extraction check failed: %s", err)
			this.reporter.Info("The archive might have an unexpected top-level folder structure.")
		case errors.Is(err, contracts.InterruptedErr):
			this.reporter.Danger("Installation interrupted.")
		case errors.Is(err, ReplaceExistingErr):
			this.reporter.Danger("%s", err)
			this.reporter.Info("Please remove it manually (make sure no files are in use) and re-run the installer.")
		default:
			this.reporter.Danger("An unexpected error occurred during extraction: %s", err)
		}
		return false
	}
	if outcome != KeptExisting {
		this.reporter.Success("Extraction complete.")
	}
	return true
}

func (this *Workflow) configureEnvironment(config contracts.InstallConfig) {
	this.reporter.Section("Environment Configuration (System-wide)")
	this.envStatus.attempted = true
	changed := false

	homeChanged, err := this.variables.SetSystemVariable("GRADLE_HOME", config.HomeDir)
	switch {
	case err != nil:
		this.envStatus.failed = true
		this.record(stageEnvironment, err)
		this.reporter.Danger("Failed to set system variable GRADLE_HOME: %s", err)
	case homeChanged:
		changed = true
		this.reporter.Success("System variable GRADLE_HOME set to %s", config.HomeDir)
	default:
		this.reporter.Info("System variable GRADLE_HOME already set to %s", config.HomeDir)
	}

	pathChanged, err := this.variables.AppendToSystemPath(config.BinDir)
	switch {
	case err != nil:
		this.envStatus.failed = true
		this.record(stageEnvironment, err)
		this.reporter.Danger("Failed to update system PATH: %s", err)
	case pathChanged:
		changed = true
		this.reporter.Success("Added %s to system PATH.", config.BinDir)
	default:
		this.reporter.Info("%s is already in system PATH.", config.BinDir)
	}

	if !this.envStatus.failed {
		this.record(stageEnvironment, nil)
	}
	if !changed {
		this.reporter.Info("No system environment variables needed changes.")
		return
	}
	if err = this.variables.BroadcastEnvironmentChange(); this.record(stageBroadcast, err).Warning() {
		this.reporter.Warning("Could not notify running programs of the change (%s). They will see it after a restart.", err)
	} else {
		this.reporter.Success("Broadcasted environment change to running programs.")
	}
	this.reporter.Info("Open a NEW Command Prompt for these changes to take effect; in some cases a restart is needed.")
}

func (this *Workflow) customize(config contracts.InstallConfig) {
	this.reporter.Section("User Experience Customizations")
	this.reporter.Info("Setting default CMD color scheme...")
	err := this.palette.Apply()
	if this.record(stagePalette, err).Warning() {
		this.reporter.Warning("Could not update the CMD color scheme: %s", err)
	} else {
		this.paletteSet = true
		this.reporter.Success("Default CMD color scheme updated for new Command Prompt windows.")
	}

	this.reporter.Info("Creating Gradle Command Prompt shortcut on the desktop...")
	path, err := this.shortcuts.Create(config)
	if this.record(stageShortcut, err).Warning() {
		this.reporter.Warning("Could not create the desktop shortcut: %s", err)
		return
	}
	this.shortcutPath = path
	this.reporter.Success("Shortcut created: %s", path)
}

func (this *Workflow) verify(ctx context.Context, config contracts.InstallConfig) {
	this.reporter.Section("Final Verification")
	this.reporter.Info("Verifying Gradle installation...")
	this.verification = this.verifier.Verify(ctx, GradleExecutable(config), config.VersionToken())
	if this.verification.ReportedOutput != "" {
		this.reporter.Detail(this.verification.ReportedOutput)
	}
	this.record(stageVerify, this.verification.Err)
	switch this.verification.Outcome {
	case contracts.VerificationPassed:
		this.reporter.Success("Gradle %s verified successfully!", config.Version)
	case contracts.VerificationAmbiguous:
		this.reporter.Warning("Gradle ran, but its output does not mention %q.", config.VersionToken())
	default:
		this.reporter.Danger("Gradle %s verification failed: %s", config.Version, this.verification.Err)
	}
}

func (this *Workflow) maintain(ctx context.Context, config contracts.InstallConfig) {
	this.reporter.Section("Post-Install Operations")
	this.reporter.Info("Stopping running Gradle daemons (if any)...")
	stop := this.maintainer.StopDaemons(ctx, GradleExecutable(config))
	if stop.Output != "" {
		this.reporter.Detail(stop.Output)
	}
	if this.record(stageStop, stop.Err).Warning() {
		this.reporter.Warning("'gradle --stop' finished with an error (%s); this is expected when no daemons were running.", stop.Err)
	} else {
		this.reporter.Success("Gradle daemons stopped.")
	}

	this.reporter.Info("Cleaning up old Gradle installations in %s (keeping %s)...", config.InstallRoot, config.HomeDir)
	prune := this.maintainer.PruneOldVersions(config.InstallRoot, config.HomeDir)
	for _, removed := range prune.Removed {
		this.reporter.Success("Removed %s", removed)
	}
	for _, failed := range prune.Failed {
		this.reporter.Danger("Failed to remove %s", failed)
	}
	this.record(stagePrune, prune.Err)
	switch {
	case len(prune.Failed) > 0:
		this.reporter.Warning("%d old version(s) removed, %d could not be removed automatically. A reboot may release lingering file locks.", len(prune.Removed), len(prune.Failed))
	case prune.Err != nil:
		this.reporter.Warning("Could not scan for old versions: %s", prune.Err)
	case len(prune.Removed) == 0:
		this.reporter.Info("No old Gradle versions found to remove.")
	default:
		this.reporter.Success("Cleaned up %d old Gradle version(s).", len(prune.Removed))
	}
}

func (this *Workflow) cleanup() {
	this.reporter.Section("Final Cleanup (Temporary Files)")
	outcome, err := RemoveArchive(this.disk, this.config.ArchivePath)
	this.record(stageCleanup, err)
	switch outcome {
	case ArchiveRemoved:
		this.reporter.Success("Removed temporary file %s", this.config.ArchivePath)
	case ArchiveAbsent:
		this.reporter.Info("Temporary file %s not found, skipping removal.", this.config.ArchivePath)
	default:
		this.reporter.Warning("Error during temporary file cleanup: %s", err)
	}
}

func (this *Workflow) record(stage string, err error) contracts.StageResult {
	result := contracts.StageResult{Stage: stage, Status: contracts.StageOK, Err: err}
	if err != nil {
		result.Status = failureStatus(stage, err)
		this.logger.Printf("[WARN] stage %s: %s: %s", stage, result.Status, err)
	}
	this.results = append(this.results, result)
	return result
}

func (this *Workflow) firstFatal() (contracts.StageResult, bool) {
	for _, result := range this.results {
		if result.Fatal() {
			return result, true
		}
	}
	return contracts.StageResult{}, false
}

func (this *Workflow) warnings() (count int) {
	for _, result := range this.results {
		if result.Warning() {
			count++
		}
	}
	return count
}

const (
	exitSuccess = 0
	exitFailure = 1
)

var (
	userDeclinedErr        = errors.New("declined by user")
	elevationNotGrantedErr = errors.New("administrator privileges not granted")
)
