package formatter

import (
	"strings"

	"github.com/klauern/rulegen/internal/frontmatter"
	"github.com/klauern/rulegen/internal/model"
)

// Kiro writes .kiro/steering files. Kiro ships three foundational steering
// documents; rules about those topics are written to them instead of a
// name-derived file.
type Kiro struct {
	*Standard
}

var kiroSteering = []struct {
	file     string
	keywords []string
}{
	{"product", []string{"product"}},
	{"tech", []string{"tech", "stack"}},
	{"structure", []string{"structure", "architecture"}},
}

// NewKiro creates the Kiro formatter.
func NewKiro() *Kiro {
	return &Kiro{Standard: NewStandard(
		directorySpec("kiro", "Kiro", ".kiro/steering", ".md", true),
		WithSteps(kiroInclusion(), frontmatter.Description()),
	)}
}

// SteeringName returns the file stem for rule.
func (k *Kiro) SteeringName(rule model.Rule) string {
	name := strings.ToLower(rule.Name)
	for _, s := range kiroSteering {
		for _, kw := range s.keywords {
			if strings.Contains(name, kw) {
				return s.file
			}
		}
	}
	return FileName(rule.Name)
}

// OutputPath implements Formatter.
func (k *Kiro) OutputPath(rule model.Rule, gctx *model.GenerationContext) string {
	return k.PathFor(k.SteeringName(rule), gctx)
}

// Generate implements Formatter.
func (k *Kiro) Generate(rule model.Rule, gctx *model.GenerationContext) model.Result {
	return WriteRule(k, rule, gctx)
}

func kiroInclusion() frontmatter.Step {
	return func(r model.Rule, f *frontmatter.Fields) *frontmatter.Fields {
		switch {
		case r.ApplyType == model.ApplyAlways, r.ApplyType == "" && r.IsRoot:
			f.Set("inclusion", "always")
		case r.Glob != "" && r.ApplyType != model.ApplyManual:
			f.Set("inclusion", "fileMatch")
			f.Set("fileMatchPattern", r.Glob)
		default:
			f.Set("inclusion", "manual")
		}
		return f
	}
}
