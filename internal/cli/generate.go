package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/klauern/rulegen/internal/cache"
	"github.com/klauern/rulegen/internal/config"
	"github.com/klauern/rulegen/internal/formatter"
	"github.com/klauern/rulegen/internal/generate"
	"github.com/klauern/rulegen/internal/gitignore"
	"github.com/klauern/rulegen/internal/logging"
	"github.com/klauern/rulegen/internal/model"
	"github.com/klauern/rulegen/internal/progress"
	"github.com/klauern/rulegen/internal/source"
	"github.com/klauern/rulegen/internal/ui"
	"github.com/klauern/rulegen/internal/ui/tui"
)

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"gen"},
		Usage:     "Generate rule files for every supported assistant",
		UsageText: "rulegen generate [options] [input]",
		Description: `Read a rules document (a local file or an http(s) URL) and write the
   files each AI coding assistant expects.

   Without an input, the jobs of the project config file are run.

   Examples:
     rulegen generate rules.md
     rulegen generate --formats cursor,claude rules.mdc
     rulegen generate --output ./app https://example.com/rules.md
     rulegen generate --interactive rules.mdc`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Project directory to write files under",
			},
			&cli.StringSliceFlag{
				Name:    "formats",
				Aliases: []string{"f"},
				Usage:   "Only generate these format ids (comma-separated)",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite existing files",
			},
			&cli.BoolFlag{
				Name:  "ide-style",
				Value: true,
				Usage: "Also dump every rule into a flat IDE folder for multi-rule sources",
			},
			&cli.StringFlag{
				Name:  "ide-folder",
				Usage: "Name of the IDE dump folder",
				Value: generate.DefaultIDEFolder,
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Pick formats interactively",
			},
			&cli.BoolFlag{
				Name:  "detect",
				Usage: "Only generate formats already present in the output directory",
			},
			&cli.BoolFlag{
				Name:  "gitignore",
				Usage: "Add generated paths to the project .gitignore",
			},
			&cli.DurationFlag{
				Name:  "cache-ttl",
				Usage: "Reuse URLs fetched by earlier runs for this long (0 disables the disk cache)",
			},
		},
		Action: runGenerate,
	}
}

// job is one input and the options it is generated with.
type job struct {
	opts generate.Options
}

func runGenerate(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	args := cmd.Args()
	if args.Len() > 1 {
		return errors.New("generate accepts at most one input")
	}

	jobs, err := planJobs(cmd, cfg)
	if err != nil {
		return err
	}

	registry := formatter.NewRegistry()
	if cmd.Bool("interactive") {
		selected, ok, err := pickFormats(ctx, registry, jobs[0].opts.Formats)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled")
			return nil
		}
		for i := range jobs {
			jobs[i].opts.Formats = selected
		}
	}

	reader, err := newReader(cmd.Duration("cache-ttl"))
	if err != nil {
		return err
	}
	r := newRunner(registry, reader)

	verbose := cmd.Bool("verbose") || cmd.Bool("debug")
	var errs []error
	for _, j := range jobs {
		if len(jobs) > 1 {
			fmt.Printf("==> %s\n", j.opts.Input)
		}

		report, err := r.run(ctx, j.opts)
		if err != nil {
			logging.Error("generation aborted", logging.Path(j.opts.Input), logging.Err(err))
			errs = append(errs, err)
			continue
		}

		if verbose {
			for _, res := range report.Dump {
				fmt.Println(ui.ResultLine(res))
			}
			for _, res := range report.Results {
				fmt.Println(ui.ResultLine(res))
			}
			fmt.Println()
		}
		fmt.Print(report.Summary(verbose))
		for _, id := range report.Unknown {
			if match, ok := registry.Suggest(id); ok {
				fmt.Println(ui.StatusWarning(fmt.Sprintf("unknown format %q, did you mean %q?", id, match)))
			}
		}

		if !report.Success() {
			errs = append(errs, fmt.Errorf("%s: %d file(s) failed", j.opts.Input, len(report.Failed())))
		}
	}

	gitignoreOn := cfg.Gitignore
	if cmd.IsSet("gitignore") {
		gitignoreOn = cmd.Bool("gitignore")
	}
	if gitignoreOn {
		if err := updateGitignores(registry, jobs); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// planJobs builds the generation options from the config file, overridden by
// flags. A positional input replaces the configured jobs.
func planJobs(cmd *cli.Command, cfg *config.Config) ([]job, error) {
	base := generate.DefaultOptions()
	base.OutputDir = cfg.OutputDir
	base.Formats = cfg.Formats
	base.Force = cfg.Force
	base.IDEStyle = cfg.IDEStyle
	base.IDEFolder = cfg.IDEFolder
	base.Verbose = cmd.Bool("verbose") || cmd.Bool("debug")
	base.Detect = cmd.Bool("detect")

	if cmd.IsSet("force") {
		base.Force = cmd.Bool("force")
	}
	if cmd.IsSet("ide-style") {
		base.IDEStyle = cmd.Bool("ide-style")
	}
	if cmd.IsSet("ide-folder") {
		base.IDEFolder = cmd.String("ide-folder")
	}

	if input := cmd.Args().Get(0); input != "" {
		opts := base
		opts.Input = input
		applyJobFlags(cmd, &opts)
		return []job{{opts: opts}}, nil
	}

	if len(cfg.Jobs) == 0 {
		return nil, errors.New("no input given: pass a file or URL, or configure jobs in .rulegen.yaml")
	}

	jobs := make([]job, 0, len(cfg.Jobs))
	for _, j := range cfg.Jobs {
		opts := base
		opts.Input = j.Input
		opts.OutputDir = cfg.JobOutputDir(j)
		opts.Formats = cfg.JobFormats(j)
		applyJobFlags(cmd, &opts)
		jobs = append(jobs, job{opts: opts})
	}
	return jobs, nil
}

func applyJobFlags(cmd *cli.Command, opts *generate.Options) {
	if cmd.IsSet("output") {
		opts.OutputDir = cmd.String("output")
	}
	if cmd.IsSet("formats") {
		opts.Formats = cleanList(cmd.StringSlice("formats"))
	}
}

// cleanList splits comma-joined entries and drops blanks.
func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, config.SplitList(v)...)
	}
	return out
}

// pickFormats runs the format picker. ok is false when the user quit.
func pickFormats(ctx context.Context, registry *formatter.Registry, preselected []string) ([]string, bool, error) {
	if !ui.IsTerminal(os.Stdin) || !ui.IsTerminal(os.Stdout) {
		return nil, false, errors.New("--interactive needs a terminal")
	}

	all := registry.All()
	items := make([]tui.FormatItem, 0, len(all))
	for _, f := range all {
		spec := f.Spec()
		items = append(items, tui.FormatItem{
			ID:       spec.ID,
			Name:     spec.Name,
			Category: spec.Category,
			Path:     spec.DefaultPath,
		})
	}

	result, err := tui.RunFormatPicker(ctx, items, preselected)
	if err != nil {
		return nil, false, fmt.Errorf("format picker failed: %w", err)
	}
	if result.Action != tui.FormatPickerActionSelect {
		return nil, false, nil
	}
	return result.Selected, true, nil
}

// newReader builds the source reader. Remote documents are shared across jobs
// in memory and, with a positive ttl, across runs on disk.
func newReader(ttl time.Duration) (source.Reader, error) {
	var base source.Reader = source.New()
	if ttl > 0 {
		store, err := cache.New(documentCache, "")
		if err != nil {
			return nil, fmt.Errorf("failed to open document cache: %w", err)
		}
		base = source.NewPersistent(base, store, ttl)
	}

	reader, err := source.NewCached(base, source.DefaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create source cache: %w", err)
	}
	return reader, nil
}

// runner drives one generator and feeds its results to a progress bar.
type runner struct {
	gen *generate.Generator
	bar *progress.Bar
}

func newRunner(registry *formatter.Registry, reader source.Reader) *runner {
	r := &runner{}
	r.gen = generate.New(
		generate.WithRegistry(registry),
		generate.WithReader(reader),
		generate.WithObserver(r.observe),
	)
	return r
}

func (r *runner) observe(res model.Result) {
	if r.bar != nil {
		r.bar.Observe(res)
	}
}

func (r *runner) run(ctx context.Context, opts generate.Options) (*generate.Report, error) {
	rules, err := r.gen.Load(ctx, opts.Input)
	if err != nil {
		return nil, err
	}

	sel := r.gen.Select(opts)
	r.bar = progress.New(progress.Options{
		Max:         int64(generate.Pairs(rules, sel.Formatters)),
		Description: "Generating " + filepath.Base(opts.Input),
	})
	defer func() { r.bar = nil }()

	report := r.gen.RunSelection(opts, sel, rules)
	if err := r.bar.Finish(); err != nil {
		logging.Debug("progress bar finish failed", logging.Err(err))
	}
	if err := r.bar.Clear(); err != nil {
		logging.Debug("progress bar clear failed", logging.Err(err))
	}
	return report, nil
}

func updateGitignores(registry *formatter.Registry, jobs []job) error {
	seen := make(map[string]bool)
	var errs []error
	for _, j := range jobs {
		dir := j.opts.OutputDir
		if dir == "" {
			dir = "."
		}
		if seen[dir] {
			continue
		}
		seen[dir] = true

		changed, err := gitignore.Update(dir, generatedPaths(registry, j.opts.IDEFolder))
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to update .gitignore in %s: %w", dir, err))
			continue
		}
		if changed {
			fmt.Println(ui.StatusSuccess(fmt.Sprintf("Updated %s", filepath.Join(dir, ".gitignore"))))
		}
	}
	return errors.Join(errs...)
}

// generatedPaths lists every path rulegen may write, relative to a project
// directory.
func generatedPaths(registry *formatter.Registry, ideFolder string) []string {
	paths := registry.Paths()
	if ideFolder != "" {
		paths = append(paths, ideFolder)
	}
	return paths
}
