package contracts

import "time"

// Settings holds the fixed roots, endpoints and budgets of a run.
type Settings struct {
	TempRoot         string
	InstallRoot      string
	VersionEndpoint  string
	DistributionBase string
	LogPath          string

	VersionTimeout  time.Duration
	ConnectTimeout  time.Duration
	ReadTimeout     time.Duration
	ProcessTimeout  time.Duration
	StopWait        time.Duration
	StopFailureWait time.Duration
	ChunkSize       int
	MaxRetry        int
}

// InstallConfig is derived once from the resolved version and never modified afterward.
type InstallConfig struct {
	Version     string
	DownloadURL string
	ArchiveName string
	ArchivePath string
	TempDir     string
	InstallRoot string
	HomeDir     string
	BinDir      string
}

func (this InstallConfig) ChecksumURL() string {
	return this.DownloadURL + ".sha256"
}

func (this InstallConfig) VersionToken() string {
	return "Gradle " + this.Version
}
