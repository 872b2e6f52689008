package core

import (
	"path/filepath"

	"github.com/Germanized/GradleInstaller/contracts"
)

func NewInstallConfig(version string, settings contracts.Settings) contracts.InstallConfig {
	archiveName := "gradle-" + version + "-bin.zip"
	homeDir := filepath.Join(settings.InstallRoot, homeDirectoryPrefix+version)
	return contracts.InstallConfig{
		Version:     version,
		DownloadURL: settings.DistributionBase + "/" + archiveName,
		ArchiveName: archiveName,
		ArchivePath: filepath.Join(settings.TempRoot, archiveName),
		TempDir:     settings.TempRoot,
		InstallRoot: settings.InstallRoot,
		HomeDir:     homeDir,
		BinDir:      filepath.Join(homeDir, "bin"),
	}
}

const homeDirectoryPrefix = "gradle-"
