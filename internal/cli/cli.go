// Package cli provides the command-line interface for rulegen.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/klauern/rulegen/internal/config"
	"github.com/klauern/rulegen/internal/logging"
	"github.com/klauern/rulegen/internal/ui"
)

var (
	// Version is the current version of the application.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// BuildDate is the date and time of the build.
	BuildDate = "unknown"
)

// Run executes the CLI application with the given context and arguments.
func Run(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:    "rulegen",
		Usage:   "Generate AI coding assistant rule files from one source document",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output (info level logging)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug output (debug level logging, implies verbose)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Write logs to stderr as JSON",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a .rulegen.yaml or .rulegen.toml file",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			configureColors(cmd)
			if err := configureLogging(cmd); err != nil {
				return ctx, err
			}
			return logging.NewContext(ctx, logging.Default()), nil
		},
		Commands: []*cli.Command{
			versionCommand(),
			generateCommand(),
			initCommand(),
			appendCommand(),
			formatsCommand(),
			templateCommand(),
			gitignoreCommand(),
			pruneCommand(),
			cacheCommand(),
		},
	}
	return app.Run(ctx, args)
}

// configureColors turns color off for --no-color, NO_COLOR, a dumb terminal
// or a stdout that is not a terminal.
func configureColors(cmd *cli.Command) {
	if cmd.Bool("no-color") || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" || !ui.IsTerminal(os.Stdout) {
		ui.DisableColors()
		return
	}
	ui.EnableColors()
}

// configureLogging installs the default logger. --log-level wins over
// --debug, which wins over --verbose, which wins over RULEGEN_LOG_LEVEL.
func configureLogging(cmd *cli.Command) error {
	opts := logging.DefaultOptions()

	switch {
	case cmd.IsSet("log-level"):
		level, err := logging.ParseLevel(cmd.String("log-level"))
		if err != nil {
			return err
		}
		opts.Level = level
	case cmd.Bool("debug"):
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	case cmd.Bool("verbose"):
		opts.Level = slog.LevelInfo
	}
	if cmd.Bool("log-json") {
		opts.JSON = true
	}

	logging.SetDefault(logging.New(opts))
	logging.Debug("logging configured",
		slog.String("level", opts.Level.String()),
		slog.Bool("json", opts.JSON),
	)
	return nil
}

// loadConfig reads the file named by --config, or the project config of the
// working directory.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path := cmd.String("config"); path != "" {
		cfg, err = config.LoadFromPath(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Path() != "" {
		logging.Debug("loaded config", logging.Path(cfg.Path()))
	}
	return cfg, nil
}
