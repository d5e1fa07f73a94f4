package formatter

import (
	"fmt"
	"strings"

	"github.com/klauern/rulegen/internal/model"
)

func rootSpec(id, name, path string) model.FormatSpec {
	return model.FormatSpec{
		ID:          id,
		Name:        name,
		Category:    model.CategoryRootFile,
		Extension:   extOf(path),
		DefaultPath: path,
	}
}

func extOf(path string) string {
	base := path[strings.LastIndex(path, "/")+1:]
	if i := strings.LastIndex(base, "."); i > 0 {
		return base[i:]
	}
	return ""
}

// NewClaude writes the root rule to CLAUDE.md.
func NewClaude() *Standard {
	return NewStandard(rootSpec("claude", "Claude Code", "CLAUDE.md"))
}

// NewCodex writes the root rule to AGENTS.md.
func NewCodex() *Standard {
	return NewStandard(rootSpec("codex", "OpenAI Codex", "AGENTS.md"))
}

// NewGemini writes the root rule to GEMINI.md.
func NewGemini() *Standard {
	return NewStandard(rootSpec("gemini", "Gemini CLI", "GEMINI.md"))
}

// NewJunie writes the root rule to .junie/guidelines.md, prefixed with a
// summary of how the rule applies.
func NewJunie() *Standard {
	return NewStandard(rootSpec("junie", "JetBrains Junie", ".junie/guidelines.md"), WithHeader(junieHeader))
}

func junieHeader(r model.Rule) string {
	var sb strings.Builder
	sb.WriteString("# Project Guidelines\n\n")
	fmt.Fprintf(&sb, "- Rule: %s\n", r.Name)
	fmt.Fprintf(&sb, "- Type: %s\n", describeApply(r))
	if r.Glob != "" {
		fmt.Fprintf(&sb, "- Files: %s\n", r.Glob)
	}
	if r.Description != "" {
		fmt.Fprintf(&sb, "- Summary: %s\n", r.Description)
	}
	return sb.String()
}

func describeApply(r model.Rule) string {
	switch r.ApplyType {
	case model.ApplyAuto:
		if r.Glob != "" {
			return "applied to matching files"
		}
		return "applied when relevant"
	case model.ApplyManual:
		return "applied on request"
	default:
		return "always applied"
	}
}

// NewCopilotLegacy writes the root rule to .github/copilot-instructions.md
// with notes on how Copilot picks the file up.
func NewCopilotLegacy() *Standard {
	return NewStandard(
		rootSpec("copilot-legacy", "GitHub Copilot (repository instructions)", ".github/copilot-instructions.md"),
		WithFooter(copilotNotes),
	)
}

func copilotNotes(model.Rule) string {
	return `## Integration notes

- Copilot Chat adds this file to every request made in this repository.
- Path-specific instructions live in .github/instructions/*.instructions.md.
- This file is generated; edit the source rules and regenerate instead.`
}

// NewCursorLegacy writes the root rule to the single .cursorrules file.
func NewCursorLegacy() *Standard {
	return NewStandard(rootSpec("cursor-legacy", "Cursor (legacy .cursorrules)", ".cursorrules"))
}

// NewWindsurfLegacy writes the root rule to the single .windsurfrules file.
func NewWindsurfLegacy() *Standard {
	return NewStandard(rootSpec("windsurf-legacy", "Windsurf (legacy .windsurfrules)", ".windsurfrules"))
}
