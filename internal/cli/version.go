package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/klauern/rulegen/internal/config"
	"github.com/klauern/rulegen/internal/formatter"
)

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Display version, build and format information",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "short",
				Usage: "Print only the version number",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Bool("short") {
				fmt.Println(Version)
				return nil
			}

			fmt.Printf("rulegen version %s\n", Version)
			fmt.Printf("  commit: %s\n", Commit)
			fmt.Printf("  built: %s\n", BuildDate)
			fmt.Printf("  go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			fmt.Printf("  formats: %d built in\n", len(formatter.NewRegistry().All()))
			fmt.Printf("  config: %s\n", projectConfig())
			return nil
		},
	}
}

// projectConfig names the config file found in the working directory.
func projectConfig() string {
	wd, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	if path, ok := config.FindFile(wd); ok {
		return path
	}
	return "none (defaults)"
}
