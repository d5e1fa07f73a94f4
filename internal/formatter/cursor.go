package formatter

import (
	"regexp"
	"strings"

	"github.com/klauern/rulegen/internal/frontmatter"
	"github.com/klauern/rulegen/internal/model"
)

// Cursor writes .cursor/rules/*.mdc files. Rules without an explicit mode are
// classified by scanning their name and body for hints.
type Cursor struct {
	*Standard
}

// cursorHint maps words in a rule to the files it should attach to.
type cursorHint struct {
	pattern *regexp.Regexp
	glob    string
}

var cursorHints = []cursorHint{
	{regexp.MustCompile(`\b(components?|jsx|tsx)\b`), "**/*.{tsx,jsx}"},
	{regexp.MustCompile(`\b(tests?|testing|specs?|jest|vitest)\b`), "**/*.{test,spec}.{ts,tsx,js,jsx}"},
	{regexp.MustCompile(`\b(apis?|endpoints?|routes?)\b`), "**/api/**/*"},
	{regexp.MustCompile(`\b(styles?|styling|css|tailwind)\b`), "**/*.{css,scss}"},
}

// NewCursor creates the Cursor formatter.
func NewCursor() *Cursor {
	c := &Cursor{}
	c.Standard = NewStandard(
		directorySpec("cursor", "Cursor", ".cursor/rules", ".mdc", true),
		WithSteps(c.fields()),
	)
	return c
}

// Classify returns the apply mode and glob Cursor should use for rule.
func (c *Cursor) Classify(rule model.Rule) (model.ApplyType, string) {
	switch rule.ApplyType {
	case model.ApplyAlways:
		return model.ApplyAlways, rule.Glob
	case model.ApplyManual:
		return model.ApplyManual, rule.Glob
	case model.ApplyAuto:
		if rule.Glob != "" {
			return model.ApplyAuto, rule.Glob
		}
		if g := hintGlob(rule); g != "" {
			return model.ApplyAuto, g
		}
		return model.ApplyManual, ""
	}

	if rule.Glob != "" {
		return model.ApplyAuto, rule.Glob
	}
	if rule.IsRoot {
		return model.ApplyAlways, ""
	}
	if g := hintGlob(rule); g != "" {
		return model.ApplyAuto, g
	}
	return model.ApplyManual, ""
}

func hintGlob(rule model.Rule) string {
	text := strings.ToLower(rule.Name + "\n" + rule.Content)
	for _, h := range cursorHints {
		if h.pattern.MatchString(text) {
			return h.glob
		}
	}
	return ""
}

func (c *Cursor) fields() frontmatter.Step {
	return func(r model.Rule, f *frontmatter.Fields) *frontmatter.Fields {
		mode, glob := c.Classify(r)

		desc := r.Description
		if desc == "" {
			desc = r.Title()
		}
		if desc == "" {
			desc = r.Name
		}
		f.Set("description", desc)
		if glob != "" {
			f.Set("globs", glob)
		}
		f.Set("alwaysApply", mode == model.ApplyAlways)
		return f
	}
}

// Generate implements Formatter.
func (c *Cursor) Generate(rule model.Rule, gctx *model.GenerationContext) model.Result {
	return WriteRule(c, rule, gctx)
}
