package formatter

import (
	"fmt"
	"strings"

	"github.com/klauern/rulegen/internal/model"
	"github.com/klauern/rulegen/internal/similarity"
)

// Registry holds formatters in registration order.
type Registry struct {
	formatters []Formatter
	byID       map[string]Formatter
}

// Builtins returns a new instance of every built-in formatter in their
// canonical order.
func Builtins() []Formatter {
	return []Formatter{
		// Directory formats.
		NewCursor(),
		NewWindsurf(),
		NewCline(),
		NewRoo(),
		NewKiloCode(),
		NewTrae(),
		NewAmazonQ(),
		NewAugment(),
		NewKiro(),
		NewCopilot(),
		NewContinue(),
		// Root files.
		NewClaude(),
		NewCodex(),
		NewGemini(),
		NewJunie(),
		NewCopilotLegacy(),
		NewCursorLegacy(),
		NewWindsurfLegacy(),
		// Memories.
		NewClaudeMemory(),
		NewGeminiMemory(),
		NewCodexMemory(),
	}
}

// NewRegistry creates a registry with every built-in formatter.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for _, f := range Builtins() {
		if err := r.Register(f); err != nil {
			panic(err)
		}
	}
	return r
}

// NewEmptyRegistry creates a registry without formatters.
func NewEmptyRegistry() *Registry {
	return &Registry{byID: make(map[string]Formatter)}
}

// Register adds a formatter. IDs are unique and case-insensitive.
func (r *Registry) Register(f Formatter) error {
	id := strings.ToLower(f.Spec().ID)
	if id == "" {
		return fmt.Errorf("formatter %q has no id", f.Spec().Name)
	}
	if _, exists := r.byID[id]; exists {
		return fmt.Errorf("formatter %q already registered", id)
	}
	r.byID[id] = f
	r.formatters = append(r.formatters, f)
	return nil
}

// Get looks a formatter up by id.
func (r *Registry) Get(id string) (Formatter, bool) {
	f, ok := r.byID[strings.ToLower(strings.TrimSpace(id))]
	return f, ok
}

// All returns every formatter in registration order.
func (r *Registry) All() []Formatter {
	out := make([]Formatter, len(r.formatters))
	copy(out, r.formatters)
	return out
}

// ByCategory returns the formatters of category c in registration order.
func (r *Registry) ByCategory(c model.Category) []Formatter {
	var out []Formatter
	for _, f := range r.formatters {
		if f.Spec().Category == c {
			out = append(out, f)
		}
	}
	return out
}

// IDs returns every registered id in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.formatters))
	for i, f := range r.formatters {
		ids[i] = f.Spec().ID
	}
	return ids
}

// Suggest returns the registered id closest to a mistyped one.
func (r *Registry) Suggest(id string) (string, bool) {
	return similarity.Suggest(id, r.IDs())
}

// Resolve looks up ids, returning the formatters found in the order given and
// the ids that are unknown. Duplicates are returned once.
func (r *Registry) Resolve(ids []string) ([]Formatter, []string) {
	var found []Formatter
	var unknown []string
	seen := make(map[string]bool)
	for _, id := range ids {
		key := strings.ToLower(strings.TrimSpace(id))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		f, ok := r.byID[key]
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		found = append(found, f)
	}
	return found, unknown
}

// Paths returns the default path of every registered format, in order, for
// tools that need to know where generated files live.
func (r *Registry) Paths() []string {
	paths := make([]string, 0, len(r.formatters))
	seen := make(map[string]bool)
	for _, f := range r.formatters {
		p := f.Spec().DefaultPath
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	return paths
}
