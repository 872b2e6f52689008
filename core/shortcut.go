package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Germanized/GradleInstaller/contracts"
)

type ShortcutBuilder struct {
	environment contracts.Environment
	writer      contracts.ShortcutWriter
}

func NewShortcutBuilder(environment contracts.Environment, writer contracts.ShortcutWriter) *ShortcutBuilder {
	return &ShortcutBuilder{environment: environment, writer: writer}
}

// Create writes the versioned command prompt shortcut to the desktop and returns its path.
func (this *ShortcutBuilder) Create(config contracts.InstallConfig) (string, error) {
	desktop, err := this.writer.DesktopDirectory()
	if err != nil {
		return "", fmt.Errorf("locating desktop: %w", err)
	}
	shortcut := this.describe(config, desktop)
	if err = this.writer.WriteShortcut(shortcut); err != nil {
		return "", fmt.Errorf("writing %s: %w", shortcut.Path, err)
	}
	return shortcut.Path, nil
}

func (this *ShortcutBuilder) describe(config contracts.InstallConfig, desktop string) contracts.Shortcut {
	shell := this.commandShell()
	return contracts.Shortcut{
		Path:             filepath.Join(desktop, ShortcutName(config.Version)),
		Target:           shell,
		Arguments:        shortcutArguments(config),
		Description:      fmt.Sprintf("Command Prompt for Gradle %s (GRADLE_HOME=%s)", config.Version, config.HomeDir),
		IconLocation:     shell + ",0",
		WorkingDirectory: this.userProfile(),
	}
}

// userProfile is the prompt's starting directory. Empty leaves it to Windows.
func (this *ShortcutBuilder) userProfile() string {
	profile, _ := this.environment.LookupEnv("USERPROFILE")
	return strings.TrimSpace(profile)
}

func (this *ShortcutBuilder) commandShell() string {
	windows, found := this.environment.LookupEnv("windir")
	if !found || strings.TrimSpace(windows) == "" {
		windows = `C:\Windows`
	}
	return strings.TrimRight(windows, `\`) + `\system32\cmd.exe`
}

func ShortcutName(version string) string {
	return fmt.Sprintf("Gradle Command Prompt (%s).lnk", version)
}

func shortcutArguments(config contracts.InstallConfig) string {
	commands := []string{
		fmt.Sprintf("title Gradle %s Command Prompt", config.Version),
		"color 0E",
		fmt.Sprintf("echo Gradle %s Environment Initialized", config.Version),
		"echo GRADLE_HOME is set to: " + config.HomeDir,
		"echo PATH includes: " + config.BinDir,
		"echo.",
		"gradle --version",
		"echo.",
		"cd /d %USERPROFILE%",
	}
	return `/K "` + strings.Join(commands, " & ") + `"`
}
