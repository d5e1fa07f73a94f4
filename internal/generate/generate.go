package generate

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/klauern/rulegen/internal/detector"
	"github.com/klauern/rulegen/internal/formatter"
	"github.com/klauern/rulegen/internal/logging"
	"github.com/klauern/rulegen/internal/model"
	"github.com/klauern/rulegen/internal/parser"
	"github.com/klauern/rulegen/internal/source"
)

// Generator runs generation against a formatter registry.
type Generator struct {
	registry *formatter.Registry
	reader   source.Reader
	observer func(model.Result)
}

// Option configures a Generator.
type Option func(*Generator)

// WithRegistry sets the formatter registry.
func WithRegistry(r *formatter.Registry) Option {
	return func(g *Generator) { g.registry = r }
}

// WithReader sets the source reader.
func WithReader(r source.Reader) Option {
	return func(g *Generator) { g.reader = r }
}

// WithObserver registers a callback invoked after every formatter attempt.
func WithObserver(fn func(model.Result)) Option {
	return func(g *Generator) { g.observer = fn }
}

// New creates a Generator with the built-in formatters and the default
// source reader unless options replace them.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.registry == nil {
		g.registry = formatter.NewRegistry()
	}
	if g.reader == nil {
		g.reader = source.New()
	}
	return g
}

// Registry returns the registry formatters are resolved from.
func (g *Generator) Registry() *formatter.Registry {
	return g.registry
}

// Execute reads and parses opts.Input and generates every selected format.
// Only a source or validation failure returns an error; per-file failures are
// reported in the returned Report.
func (g *Generator) Execute(ctx context.Context, opts Options) (*Report, error) {
	rules, err := g.Load(ctx, opts.Input)
	if err != nil {
		return nil, err
	}
	return g.Run(opts, rules), nil
}

// Load reads and parses a source document.
func (g *Generator) Load(ctx context.Context, input string) ([]model.Rule, error) {
	if strings.TrimSpace(input) == "" {
		return nil, fmt.Errorf("no input given")
	}

	content, err := g.reader.Read(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", input, err)
	}

	rules, err := parser.Parse(content, input)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", input, err)
	}
	return rules, nil
}

// Selection is the set of formatters a run will use.
type Selection struct {
	Formatters []formatter.Formatter
	// Unknown lists requested ids with no registered formatter.
	Unknown []string
	// Undetected is set when detection found no existing target and every
	// selected formatter was kept.
	Undetected bool
}

// Select resolves the formatters chosen by opts. Unknown ids never stop a
// run.
func (g *Generator) Select(opts Options) Selection {
	var sel Selection
	if len(opts.Formats) > 0 {
		sel.Formatters, sel.Unknown = g.registry.Resolve(opts.Formats)
	} else {
		sel.Formatters = g.registry.All()
	}

	if !opts.Detect {
		return sel
	}

	present := make(map[string]bool)
	for _, d := range detector.DetectAll(opts.outputDir(), g.registry) {
		present[d.FormatID] = true
	}
	if len(present) == 0 {
		sel.Undetected = true
		return sel
	}

	var detected []formatter.Formatter
	for _, f := range sel.Formatters {
		if present[f.Spec().ID] {
			detected = append(detected, f)
		}
	}
	sel.Formatters = detected
	return sel
}

// Pairs returns how many files Run will attempt for rules and formatters.
func Pairs(rules []model.Rule, formatters []formatter.Formatter) int {
	n := 0
	for _, f := range formatters {
		for _, r := range rules {
			if f.IsRuleCompatible(r) {
				n++
			}
		}
	}
	return n
}

// Run generates already parsed rules with the formatters opts selects.
func (g *Generator) Run(opts Options, rules []model.Rule) *Report {
	return g.RunSelection(opts, g.Select(opts), rules)
}

// RunSelection generates rules with a selection made earlier by Select.
func (g *Generator) RunSelection(opts Options, sel Selection, rules []model.Rule) *Report {
	for _, id := range sel.Unknown {
		logging.Warn("unknown format, skipping", logging.Format(id))
	}
	if sel.Undetected {
		logging.Warn("no existing targets detected, generating all selected formats",
			logging.Path(opts.outputDir()))
	}

	gctx := &model.GenerationContext{
		OutputDir: opts.outputDir(),
		Force:     opts.Force,
		Verbose:   opts.Verbose,
	}

	formatters := sel.Formatters
	report := &Report{
		Source:  opts.Input,
		Rules:   rules,
		Unknown: sel.Unknown,
	}

	if opts.IDEStyle && len(rules) > 1 {
		report.Dump = WriteDump(rules, filepath.Join(gctx.OutputDir, opts.ideFolder()), opts.Force)
	}

	report.Collisions = findCollisions(formatters, rules, gctx)

	for _, f := range formatters {
		id := f.Spec().ID
		for _, rule := range rules {
			if !f.IsRuleCompatible(rule) {
				logging.Info("skipping incompatible rule", logging.Format(id), logging.Rule(rule.Name))
				continue
			}

			res := generateRule(f, rule, gctx)
			if res.Success {
				logging.Info("generated", logging.Format(id), logging.Rule(rule.Name), logging.Path(res.FilePath), logging.Bytes(res.Bytes))
			} else {
				logging.Info("generation failed", logging.Format(id), logging.Rule(rule.Name), logging.Err(res.Error))
			}
			report.Results = append(report.Results, res)
			if g.observer != nil {
				g.observer(res)
			}
		}
	}

	return report
}

// generateRule runs one formatter and turns a panic into a failed result.
func generateRule(f formatter.Formatter, rule model.Rule, gctx *model.GenerationContext) (res model.Result) {
	defer func() {
		if r := recover(); r != nil {
			res = model.Result{
				FormatID: f.Spec().ID,
				RuleName: rule.Name,
				Error:    fmt.Errorf("formatter panicked: %v", r),
			}
		}
	}()
	return f.Generate(rule, gctx)
}

// Collision is a fixed output path claimed by more than one rule.
type Collision struct {
	FormatID string
	Path     string
	Rules    []string

	// Overwrite is set when generation runs with force, so each rule
	// replaces the previous one and the last rule wins. Otherwise the first
	// rule is kept and the later ones fail.
	Overwrite bool
}

// Outcome describes which rule ends up in the shared file.
func (c Collision) Outcome() string {
	if c.Overwrite {
		return "the last one wins"
	}
	return "the first one is kept, later ones fail (use --force to overwrite)"
}

// findCollisions reports formatters that would write several rules to one
// file. Generation keeps going either way.
func findCollisions(formatters []formatter.Formatter, rules []model.Rule, gctx *model.GenerationContext) []Collision {
	var collisions []Collision
	for _, f := range formatters {
		byPath := make(map[string][]string)
		var order []string
		for _, r := range rules {
			if !f.IsRuleCompatible(r) {
				continue
			}
			p := f.OutputPath(r, gctx)
			if _, seen := byPath[p]; !seen {
				order = append(order, p)
			}
			byPath[p] = append(byPath[p], r.Name)
		}
		for _, p := range order {
			if names := byPath[p]; len(names) > 1 {
				c := Collision{FormatID: f.Spec().ID, Path: p, Rules: names, Overwrite: gctx.Force}
				logging.Warn("several rules write the same file, "+c.Outcome(),
					logging.Format(c.FormatID),
					logging.Path(p),
					logging.Count(len(names)),
				)
				collisions = append(collisions, c)
			}
		}
	}
	return collisions
}
