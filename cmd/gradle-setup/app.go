package main

import (
	"os"

	"github.com/Germanized/GradleInstaller/contracts"
	"github.com/Germanized/GradleInstaller/core"
	"github.com/Germanized/GradleInstaller/shell"
)

func NewApp(settings contracts.Settings) *core.Workflow {
	client := shell.NewHTTPGetter(shell.NewHTTPClient(settings.ConnectTimeout))
	console := shell.NewConsole(os.Stdout, os.Stdin)
	return core.NewWorkflow(settings, core.Collaborators{
		Elevator:    shell.NewElevator(),
		HTTP:        client,
		Downloads:   client,
		Disk:        shell.NewDiskFileSystem(),
		Extractor:   shell.NewZipExtractor(),
		Registry:    shell.NewRegistryStore(),
		Broadcaster: shell.NewEnvironmentBroadcaster(),
		Shortcuts:   shell.NewShortcutWriter(),
		Runner:      shell.NewProcessRunner(),
		Environment: shell.NewEnvironment(),
		Reporter:    console,
		Prompter:    console,
	})
}
