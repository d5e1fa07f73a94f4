package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klauern/rulegen/internal/model"
)

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	all := reg.All()
	assert.Len(t, all, len(Builtins()))
	assert.Equal(t, "cursor", all[0].Spec().ID, "registration order is preserved")

	seen := make(map[string]bool)
	for _, f := range all {
		spec := f.Spec()
		assert.False(t, seen[spec.ID], "duplicate id %s", spec.ID)
		seen[spec.ID] = true
		assert.True(t, spec.Category.IsValid(), "%s has invalid category", spec.ID)
		assert.NotEmpty(t, spec.Name)
		assert.NotEmpty(t, spec.DefaultPath)
		if spec.Category != model.CategoryRootFile {
			assert.NotEmpty(t, spec.Extension, "%s needs an extension", spec.ID)
			assert.True(t, spec.SupportsMultipleRules, "%s writes a file per rule", spec.ID)
		}
	}

	total := 0
	for _, c := range model.AllCategories() {
		total += len(reg.ByCategory(c))
	}
	assert.Equal(t, len(all), total, "every formatter belongs to exactly one category")
}

func TestRegistryGet(t *testing.T) {
	reg := NewRegistry()

	f, ok := reg.Get("Cursor")
	require.True(t, ok, "lookups are case-insensitive")
	assert.Equal(t, "cursor", f.Spec().ID)

	_, ok = reg.Get("vim")
	assert.False(t, ok)
}

type customFormatter struct {
	*Standard
}

func TestRegistryRegister(t *testing.T) {
	reg := NewEmptyRegistry()
	custom := customFormatter{NewStandard(model.FormatSpec{
		ID:          "zed",
		Name:        "Zed",
		Category:    model.CategoryRootFile,
		DefaultPath: ".rules",
	})}

	require.NoError(t, reg.Register(custom))
	assert.Error(t, reg.Register(custom), "duplicate ids are rejected")
	assert.Error(t, reg.Register(NewStandard(model.FormatSpec{Name: "nameless"})))

	assert.Equal(t, []string{"zed"}, reg.IDs())
	assert.Len(t, reg.ByCategory(model.CategoryRootFile), 1)
	assert.Empty(t, reg.ByCategory(model.CategoryMemory))
}

func TestRegistryResolve(t *testing.T) {
	reg := NewRegistry()

	found, unknown := reg.Resolve([]string{"claude", "nope", "cursor", "CLAUDE", " "})
	require.Len(t, found, 2)
	assert.Equal(t, "claude", found[0].Spec().ID)
	assert.Equal(t, "cursor", found[1].Spec().ID)
	assert.Equal(t, []string{"nope"}, unknown)
}

func TestRegistryPaths(t *testing.T) {
	paths := NewRegistry().Paths()
	assert.Contains(t, paths, ".cursor/rules")
	assert.Contains(t, paths, "CLAUDE.md")
	assert.Contains(t, paths, ".claude/memories")
}

func TestRegistrySuggest(t *testing.T) {
	reg := NewRegistry()

	got, ok := reg.Suggest("windsruf")
	assert.True(t, ok)
	assert.Equal(t, "windsurf", got)

	_, ok = reg.Suggest("xyzzy")
	assert.False(t, ok)
}
