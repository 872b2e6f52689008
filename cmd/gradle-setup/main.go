package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Germanized/GradleInstaller/contracts"
	"github.com/Germanized/GradleInstaller/core"
	"github.com/Germanized/GradleInstaller/shell"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	settings := core.NewSettingsLoader(shell.NewEnvironment()).Load()
	openLog(settings)

	exitCode := 0
	app := &cli.Command{
		Name:  "gradle-setup",
		Usage: "Install the latest Gradle release system-wide on Windows",
		Action: func(ctx context.Context, _ *cli.Command) error {
			exitCode = NewApp(settings).Run(ctx, os.Args)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print the build version",
				Action: func(context.Context, *cli.Command) error {
					fmt.Printf("gradle-setup [%s]\n", ldflagsSoftwareVersion)
					return nil
				},
			},
		},
	}
	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Println("[WARN]", err)
		exitCode = 1
	}
	os.Exit(exitCode)
}

// openLog sends diagnostics to a rotating file next to the scratch directory.
// Without it they stay on stderr.
func openLog(settings contracts.Settings) {
	if err := shell.NewDiskFileSystem().MakeDirectories(settings.TempRoot); err != nil {
		log.Println("[WARN] diagnostic log disabled:", err)
		return
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   settings.LogPath,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
	})
	log.Printf("[INFO] gradle-setup [%s] starting", ldflagsSoftwareVersion)
}

var ldflagsSoftwareVersion = "debug"
