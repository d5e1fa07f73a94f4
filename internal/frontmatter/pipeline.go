package frontmatter

import (
	"strings"

	"github.com/klauern/rulegen/internal/model"
)

// Step contributes metadata for a rule. It receives the fields accumulated by
// earlier steps and returns the fields to pass on.
type Step func(rule model.Rule, fields *Fields) *Fields

// Pipeline is an ordered list of steps configured once per formatter.
type Pipeline struct {
	steps []Step
}

// NewPipeline creates a pipeline running steps in the given order.
func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Add appends a step and returns the pipeline for chaining.
func (p *Pipeline) Add(step Step) *Pipeline {
	p.steps = append(p.steps, step)
	return p
}

// Len returns the number of steps.
func (p *Pipeline) Len() int {
	if p == nil {
		return 0
	}
	return len(p.steps)
}

// Build runs every step against rule and returns the accumulated fields.
func (p *Pipeline) Build(rule model.Rule) *Fields {
	fields := NewFields()
	if p == nil {
		return fields
	}
	for _, step := range p.steps {
		if next := step(rule, fields); next != nil {
			fields = next
		}
	}
	return fields
}

// Render builds the fields for rule and renders them as a block. An empty
// result renders as "".
func (p *Pipeline) Render(rule model.Rule) string {
	return Render(p.Build(rule))
}

// Literal sets key to a fixed value.
func Literal(key string, value any) Step {
	return func(_ model.Rule, f *Fields) *Fields {
		f.Set(key, value)
		return f
	}
}

// TypeLiteral sets "type" to a fixed value.
func TypeLiteral(value string) Step {
	return Literal("type", value)
}

// Description copies the rule description when it is set.
func Description() Step {
	return func(r model.Rule, f *Fields) *Fields {
		if d := strings.TrimSpace(r.Description); d != "" {
			f.Set("description", d)
		}
		return f
	}
}

// Glob copies the rule glob into key when it is set.
func Glob(key string) Step {
	return func(r model.Rule, f *Fields) *Fields {
		if g := strings.TrimSpace(r.Glob); g != "" {
			f.Set(key, g)
		}
		return f
	}
}

// TypeFromApplyType sets "type" from the rule's apply type, defaulting to
// manual.
func TypeFromApplyType() Step {
	return func(r model.Rule, f *Fields) *Fields {
		t := r.ApplyType
		if !t.IsValid() {
			t = model.ApplyManual
		}
		f.Set("type", string(t))
		return f
	}
}

// Name sets "name" to the rule name.
func Name() Step {
	return func(r model.Rule, f *Fields) *Fields {
		f.Set("name", r.Name)
		return f
	}
}

// When runs step only for rules matching pred.
func When(pred func(model.Rule) bool, step Step) Step {
	return func(r model.Rule, f *Fields) *Fields {
		if !pred(r) {
			return f
		}
		return step(r, f)
	}
}
