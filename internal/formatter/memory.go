package formatter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/klauern/rulegen/internal/model"
)

func memorySpec(id, name, dir string) model.FormatSpec {
	return model.FormatSpec{
		ID:                    id,
		Name:                  name,
		Category:              model.CategoryMemory,
		Extension:             ".md",
		SupportsMultipleRules: true,
		DefaultPath:           dir,
	}
}

// NewClaudeMemory writes non-root rules to .claude/memories.
func NewClaudeMemory() *Standard {
	return NewStandard(memorySpec("claude-memory", "Claude Code memories", ".claude/memories"), WithHeader(memoryTitle))
}

// NewGeminiMemory writes non-root rules to .gemini/memories.
func NewGeminiMemory() *Standard {
	return NewStandard(memorySpec("gemini-memory", "Gemini CLI memories", ".gemini/memories"), WithHeader(memoryTitle))
}

// NewCodexMemory writes non-root rules to .codex/memories.
func NewCodexMemory() *Standard {
	return NewStandard(memorySpec("codex-memory", "OpenAI Codex memories", ".codex/memories"), WithHeader(memoryTitle))
}

// memoryTitle adds a heading when the body does not open with one.
func memoryTitle(r model.Rule) string {
	if strings.HasPrefix(Body(r), "#") {
		return ""
	}
	return "# " + Headline(r.Name)
}

// Headline turns a rule name into a title: "api-design_rules" becomes
// "Api Design Rules".
func Headline(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}
