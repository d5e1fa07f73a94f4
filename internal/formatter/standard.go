package formatter

import (
	"path/filepath"
	"strings"

	"github.com/klauern/rulegen/internal/frontmatter"
	"github.com/klauern/rulegen/internal/model"
)

// Standard is a formatter driven entirely by configuration. Most targets are
// a Standard with their own spec and frontmatter pipeline; targets with
// special naming or classification embed it and override what differs.
type Standard struct {
	spec     model.FormatSpec
	pipeline *frontmatter.Pipeline
	// header and footer wrap the rule body when set.
	header func(model.Rule) string
	footer func(model.Rule) string
}

// Option configures a Standard formatter.
type Option func(*Standard)

// WithPipeline sets the frontmatter pipeline.
func WithPipeline(p *frontmatter.Pipeline) Option {
	return func(s *Standard) { s.pipeline = p }
}

// WithSteps sets the frontmatter pipeline from steps.
func WithSteps(steps ...frontmatter.Step) Option {
	return func(s *Standard) { s.pipeline = frontmatter.NewPipeline(steps...) }
}

// WithHeader sets prose written before the rule body.
func WithHeader(fn func(model.Rule) string) Option {
	return func(s *Standard) { s.header = fn }
}

// WithFooter sets prose written after the rule body.
func WithFooter(fn func(model.Rule) string) Option {
	return func(s *Standard) { s.footer = fn }
}

// NewStandard creates a formatter for spec.
func NewStandard(spec model.FormatSpec, opts ...Option) *Standard {
	s := &Standard{spec: spec}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Spec implements Formatter.
func (s *Standard) Spec() model.FormatSpec {
	return s.spec
}

// IsRuleCompatible accepts rules by category: root-file formats only take the
// root rule, memory formats only take the others.
func (s *Standard) IsRuleCompatible(rule model.Rule) bool {
	return CategoryAccepts(s.spec.Category, rule)
}

// CategoryAccepts is the compatibility rule shared by all formatters of a
// category.
func CategoryAccepts(c model.Category, rule model.Rule) bool {
	switch c {
	case model.CategoryRootFile:
		return rule.IsRoot
	case model.CategoryMemory:
		return !rule.IsRoot
	default:
		return true
	}
}

// OutputPath implements Formatter.
func (s *Standard) OutputPath(rule model.Rule, gctx *model.GenerationContext) string {
	return s.PathFor(FileName(rule.Name), gctx)
}

// PathFor joins a file name stem onto the format's location. Root-file
// formats ignore the stem.
func (s *Standard) PathFor(stem string, gctx *model.GenerationContext) string {
	if s.spec.Category == model.CategoryRootFile {
		return filepath.Join(gctx.OutputDir, s.spec.DefaultPath)
	}
	return filepath.Join(gctx.OutputDir, s.spec.DefaultPath, stem+s.spec.Extension)
}

// TransformContent implements Formatter.
func (s *Standard) TransformContent(rule model.Rule) string {
	return s.Compose(s.pipeline.Render(rule), rule)
}

// Compose assembles the file from a rendered frontmatter block, the optional
// header and footer, and the rule body with any existing frontmatter removed.
func (s *Standard) Compose(block string, rule model.Rule) string {
	body := Body(rule)

	var parts []string
	if s.header != nil {
		if h := strings.TrimSpace(s.header(rule)); h != "" {
			parts = append(parts, h)
		}
	}
	if body != "" {
		parts = append(parts, body)
	}
	if s.footer != nil {
		if f := strings.TrimSpace(s.footer(rule)); f != "" {
			parts = append(parts, f)
		}
	}

	var sb strings.Builder
	sb.WriteString(block)
	if len(parts) > 0 {
		if block != "" {
			sb.WriteString("\n")
		}
		sb.WriteString(strings.Join(parts, "\n\n"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Generate implements Formatter.
func (s *Standard) Generate(rule model.Rule, gctx *model.GenerationContext) model.Result {
	return WriteRule(s, rule, gctx)
}

// Body returns the rule content without any frontmatter block, trimmed.
func Body(rule model.Rule) string {
	return strings.TrimSpace(frontmatter.Strip(strings.TrimSpace(rule.Content)))
}
