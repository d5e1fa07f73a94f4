package formatter

import (
	"github.com/klauern/rulegen/internal/frontmatter"
	"github.com/klauern/rulegen/internal/model"
)

func directorySpec(id, name, dir, ext string, requiresMetadata bool) model.FormatSpec {
	return model.FormatSpec{
		ID:                    id,
		Name:                  name,
		Category:              model.CategoryDirectory,
		Extension:             ext,
		SupportsMultipleRules: true,
		RequiresMetadata:      requiresMetadata,
		DefaultPath:           dir,
	}
}

// NewCline writes plain Markdown rules to .clinerules.
func NewCline() *Standard {
	return NewStandard(directorySpec("cline", "Cline", ".clinerules", ".md", false))
}

// NewRoo writes plain Markdown rules to .roo/rules.
func NewRoo() *Standard {
	return NewStandard(directorySpec("roo", "Roo Code", ".roo/rules", ".md", false))
}

// NewKiloCode writes plain Markdown rules to .kilocode/rules.
func NewKiloCode() *Standard {
	return NewStandard(directorySpec("kilocode", "Kilo Code", ".kilocode/rules", ".md", false))
}

// NewTrae writes plain Markdown rules to .trae/rules.
func NewTrae() *Standard {
	return NewStandard(directorySpec("trae", "Trae", ".trae/rules", ".md", false))
}

// NewAmazonQ writes plain Markdown rules to .amazonq/rules.
func NewAmazonQ() *Standard {
	return NewStandard(directorySpec("amazonq", "Amazon Q Developer", ".amazonq/rules", ".md", false))
}

// NewWindsurf writes .windsurf/rules files with a trigger mode.
func NewWindsurf() *Standard {
	return NewStandard(
		directorySpec("windsurf", "Windsurf", ".windsurf/rules", ".md", true),
		WithSteps(windsurfTrigger(), frontmatter.Description(), frontmatter.Glob("globs")),
	)
}

// windsurfTrigger maps the apply type onto Windsurf's trigger values. Rules
// without a hint but with a description are left to the model.
func windsurfTrigger() frontmatter.Step {
	return func(r model.Rule, f *frontmatter.Fields) *frontmatter.Fields {
		trigger := "manual"
		switch r.ApplyType {
		case model.ApplyAlways:
			trigger = "always_on"
		case model.ApplyAuto:
			trigger = "glob"
			if r.Glob == "" {
				trigger = "model_decision"
			}
		case model.ApplyManual:
		default:
			if r.Description != "" {
				trigger = "model_decision"
			}
		}
		f.Set("trigger", trigger)
		return f
	}
}

// NewAugment writes .augment/rules files with an Augment rule type.
func NewAugment() *Standard {
	return NewStandard(
		directorySpec("augment", "Augment Code", ".augment/rules", ".md", true),
		WithSteps(augmentType(), frontmatter.Description()),
	)
}

func augmentType() frontmatter.Step {
	return func(r model.Rule, f *frontmatter.Fields) *frontmatter.Fields {
		t := "manual"
		switch r.ApplyType {
		case model.ApplyAlways:
			t = "always_apply"
		case model.ApplyAuto:
			t = "agent_requested"
		}
		f.Set("type", t)
		return f
	}
}

// NewCopilot writes path-specific GitHub Copilot instructions.
func NewCopilot() *Standard {
	return NewStandard(
		directorySpec("copilot", "GitHub Copilot", ".github/instructions", ".instructions.md", true),
		WithSteps(copilotApplyTo(), frontmatter.Description()),
	)
}

func copilotApplyTo() frontmatter.Step {
	return func(r model.Rule, f *frontmatter.Fields) *frontmatter.Fields {
		applyTo := "**"
		if r.Glob != "" {
			applyTo = r.Glob
		}
		f.Set("applyTo", applyTo)
		return f
	}
}

// NewContinue writes .continue/rules files.
func NewContinue() *Standard {
	return NewStandard(
		directorySpec("continue", "Continue", ".continue/rules", ".md", true),
		WithSteps(
			frontmatter.Name(),
			frontmatter.Description(),
			frontmatter.Glob("globs"),
			func(r model.Rule, f *frontmatter.Fields) *frontmatter.Fields {
				f.Set("alwaysApply", r.ApplyType == model.ApplyAlways)
				return f
			},
		),
	)
}
