package core

import (
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"

	"github.com/Germanized/GradleInstaller/contracts"
)

func TestInstallConfigWindowsFixture(t *testing.T) {
	gunit.Run(new(InstallConfigWindowsFixture), t)
}

type InstallConfigWindowsFixture struct {
	*gunit.Fixture
}

func (this *InstallConfigWindowsFixture) TestWindowsPaths() {
	settings := NewSettingsLoader(FakeEnvironment{"TEMP": `C:\Users\dev\AppData\Local\Temp`}).Load()

	config := NewInstallConfig("8.10", settings)

	this.So(config.HomeDir, should.Equal, `C:\Gradle\gradle-8.10`)
	this.So(config.BinDir, should.Equal, `C:\Gradle\gradle-8.10\bin`)
	this.So(config.ArchivePath, should.Equal, `C:\Users\dev\AppData\Local\Temp\gradle_installer\gradle-8.10-bin.zip`)
	this.So(config, should.Resemble, contracts.InstallConfig{
		Version:     "8.10",
		DownloadURL: "https://services.gradle.org/distributions/gradle-8.10-bin.zip",
		ArchiveName: "gradle-8.10-bin.zip",
		ArchivePath: `C:\Users\dev\AppData\Local\Temp\gradle_installer\gradle-8.10-bin.zip`,
		TempDir:     `C:\Users\dev\AppData\Local\Temp\gradle_installer`,
		InstallRoot: `C:\Gradle`,
		HomeDir:     `C:\Gradle\gradle-8.10`,
		BinDir:      `C:\Gradle\gradle-8.10\bin`,
	})
}
