package core

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/Germanized/GradleInstaller/contracts"
)

const (
	DefaultTempRoot         = `C:\Temp`
	DefaultInstallRoot      = `C:\Gradle`
	DefaultVersionEndpoint  = "https://services.gradle.org/versions/current"
	DefaultDistributionBase = "https://services.gradle.org/distributions"

	scratchDirectoryName = "gradle_installer"
	logFileName          = "gradle-setup.log"
)

type SettingsLoader struct {
	environment contracts.Environment
}

func NewSettingsLoader(environment contracts.Environment) *SettingsLoader {
	return &SettingsLoader{environment: environment}
}

func (this *SettingsLoader) Load() contracts.Settings {
	tempRoot := filepath.Join(this.lookup("TEMP", DefaultTempRoot), scratchDirectoryName)
	return contracts.Settings{
		TempRoot:         tempRoot,
		InstallRoot:      DefaultInstallRoot,
		VersionEndpoint:  this.lookup("GRADLE_SETUP_VERSION_URL", DefaultVersionEndpoint),
		DistributionBase: strings.TrimRight(this.lookup("GRADLE_SETUP_DISTRIBUTION_URL", DefaultDistributionBase), "/"),
		LogPath:          filepath.Join(tempRoot, logFileName),

		VersionTimeout:  time.Second * 15,
		ConnectTimeout:  time.Second * 10,
		ReadTimeout:     time.Second * 300,
		ProcessTimeout:  time.Minute * 2,
		StopWait:        time.Second * 5,
		StopFailureWait: time.Second * 2,
		ChunkSize:       32 * 1024,
		MaxRetry:        2,
	}
}

func (this *SettingsLoader) lookup(key, fallback string) string {
	value, found := this.environment.LookupEnv(key)
	value = strings.TrimSpace(value)
	if !found || value == "" {
		return fallback
	}
	return value
}
