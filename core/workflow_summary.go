package core

import (
	"fmt"

	"github.com/Germanized/GradleInstaller/contracts"
)

func (this *Workflow) summarize(exitCode int) {
	switch {
	case exitCode != exitSuccess:
		this.reporter.Panel(this.failurePanel())
	case this.cancelled:
		this.reporter.Panel(contracts.Panel{
			Title: "[CANCELLED]",
			Tone:  contracts.ToneWarning,
			Lines: []string{"Installation aborted by user. No changes were made."},
		})
	default:
		this.reporter.Panel(this.completionPanel())
	}
}

func (this *Workflow) failurePanel() contracts.Panel {
	lines := []string{"Gradle setup did not complete."}
	if fatal, found := this.firstFatal(); found {
		lines = append(lines, fmt.Sprintf("Failed step: %s (%s)", fatal.Stage, fatal.Err))
	}
	lines = append(lines,
		"",
		"Re-run the installer once the problem is resolved; every step is safe to repeat.",
		"Diagnostic log: "+this.settings.LogPath,
	)
	return contracts.Panel{Title: "[FAILED]", Tone: contracts.ToneDanger, Lines: lines}
}

func (this *Workflow) completionPanel() contracts.Panel {
	config := *this.config
	panel := contracts.Panel{Title: "[SUCCESS]", Tone: contracts.ToneSuccess}
	intro := "Gradle setup completed successfully!"
	if this.warnings() > 0 {
		panel.Title, panel.Tone = "[WARNING]", contracts.ToneWarning
		intro = fmt.Sprintf("Gradle setup completed with %d warning(s).", this.warnings())
	}

	verification := "Passed"
	if !this.verification.Succeeded {
		verification = "Failed (" + this.verification.Outcome.String() + ")"
	}
	environment := "Configured (GRADLE_HOME and PATH)"
	if this.envStatus.failed {
		environment = "Not fully configured, see warnings above"
	}
	shortcut := "Created"
	if this.shortcutPath == "" {
		shortcut = "Not created or failed"
	}
	colors := "Updated in registry"
	if !this.paletteSet {
		colors = "Not updated"
	}

	panel.Lines = []string{
		intro,
		"",
		"Target Gradle Version:    " + config.Version,
		"Installed to/GRADLE_HOME: " + config.HomeDir,
		"",
		"Verification:             " + verification,
		"System Environment:       " + environment,
		"Desktop Shortcut:         " + shortcut,
		"Default CMD Colors:       " + colors,
		"",
		"Important Next Steps:",
		"  1. Open a NEW Command Prompt window or use the desktop shortcut so the environment changes apply.",
		"  2. In the new terminal, type `gradle --version` to confirm the installation.",
	}
	if !this.verification.Succeeded {
		panel.Lines = append(panel.Lines, "  3. Since verification failed, double-check your Java installation and PATH settings.")
	}
	panel.Lines = append(panel.Lines, "", "Diagnostic log: "+this.settings.LogPath)
	return panel
}
