package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klauern/rulegen/internal/model"
)

func TestPipelineRunsStepsInOrder(t *testing.T) {
	p := NewPipeline(
		TypeLiteral("first"),
		Description(),
	).Add(TypeLiteral("second"))

	fields := p.Build(model.Rule{Name: "r", Description: "desc"})

	assert.Equal(t, []string{"type", "description"}, Keys(fields))
	v, _ := fields.Get("type")
	assert.Equal(t, "second", v, "later steps overwrite earlier keys")
	assert.Equal(t, 3, p.Len())
}

func TestCommonSteps(t *testing.T) {
	tests := map[string]struct {
		step Step
		rule model.Rule
		want string
	}{
		"description copied": {
			step: Description(),
			rule: model.Rule{Description: "  Use hooks  "},
			want: "---\ndescription: \"Use hooks\"\n---\n",
		},
		"description missing": {
			step: Description(),
			rule: model.Rule{},
			want: "",
		},
		"glob copied to key": {
			step: Glob("globs"),
			rule: model.Rule{Glob: "**/*.ts"},
			want: "---\nglobs: \"**/*.ts\"\n---\n",
		},
		"type defaults to manual": {
			step: TypeFromApplyType(),
			rule: model.Rule{},
			want: "---\ntype: \"manual\"\n---\n",
		},
		"type from apply type": {
			step: TypeFromApplyType(),
			rule: model.Rule{ApplyType: model.ApplyAlways},
			want: "---\ntype: \"always\"\n---\n",
		},
		"conditional step skipped": {
			step: When(func(r model.Rule) bool { return r.IsRoot }, Literal("root", true)),
			rule: model.Rule{},
			want: "",
		},
		"conditional step applied": {
			step: When(func(r model.Rule) bool { return r.IsRoot }, Literal("root", true)),
			rule: model.Rule{IsRoot: true},
			want: "---\nroot: true\n---\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := NewPipeline(tt.step).Render(tt.rule)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNilPipeline(t *testing.T) {
	var p *Pipeline
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, "", Render(p.Build(model.Rule{Name: "x"})))
}
