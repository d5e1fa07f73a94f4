package formatter

import (
	"testing"

	"github.com/klauern/rulegen/internal/model"
)

func TestCursorClassify(t *testing.T) {
	c := NewCursor()
	tests := map[string]struct {
		rule     model.Rule
		wantMode model.ApplyType
		wantGlob string
	}{
		"explicit always": {
			rule:     model.Rule{Name: "x", ApplyType: model.ApplyAlways},
			wantMode: model.ApplyAlways,
		},
		"explicit manual ignores hints": {
			rule:     model.Rule{Name: "component rules", ApplyType: model.ApplyManual},
			wantMode: model.ApplyManual,
		},
		"explicit glob": {
			rule:     model.Rule{Name: "x", Glob: "src/**/*.go"},
			wantMode: model.ApplyAuto,
			wantGlob: "src/**/*.go",
		},
		"auto without glob uses hints": {
			rule:     model.Rule{Name: "x", Content: "Write tests first", ApplyType: model.ApplyAuto},
			wantMode: model.ApplyAuto,
			wantGlob: "**/*.{test,spec}.{ts,tsx,js,jsx}",
		},
		"auto without glob or hints": {
			rule:     model.Rule{Name: "x", Content: "nothing", ApplyType: model.ApplyAuto},
			wantMode: model.ApplyManual,
		},
		"root is always": {
			rule:     model.Rule{Name: "default", IsRoot: true, Content: "component"},
			wantMode: model.ApplyAlways,
		},
		"component hint in name": {
			rule:     model.Rule{Name: "react-components", Content: "Keep them small"},
			wantMode: model.ApplyAuto,
			wantGlob: "**/*.{tsx,jsx}",
		},
		"api hint in content": {
			rule:     model.Rule{Name: "backend", Content: "Every API endpoint validates input."},
			wantMode: model.ApplyAuto,
			wantGlob: "**/api/**/*",
		},
		"style hint": {
			rule:     model.Rule{Name: "look", Content: "Use Tailwind utilities"},
			wantMode: model.ApplyAuto,
			wantGlob: "**/*.{css,scss}",
		},
		"word boundaries respected": {
			rule:     model.Rule{Name: "latest", Content: "rapid contest"},
			wantMode: model.ApplyManual,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mode, glob := c.Classify(tt.rule)
			if mode != tt.wantMode || glob != tt.wantGlob {
				t.Errorf("Classify() = (%q, %q), want (%q, %q)", mode, glob, tt.wantMode, tt.wantGlob)
			}
		})
	}
}

func TestCursorTransformContent(t *testing.T) {
	c := NewCursor()

	rule := model.Rule{
		Name:     "react-components",
		Content:  "---\nfoo: bar\n---\n# Components\n\nKeep components small.",
		Metadata: map[string]any{"title": "Components"},
	}
	want := "---\ndescription: \"Components\"\nglobs: \"**/*.{tsx,jsx}\"\nalwaysApply: false\n---\n\n# Components\n\nKeep components small.\n"
	if got := c.TransformContent(rule); got != want {
		t.Errorf("TransformContent() =\n%q\nwant\n%q", got, want)
	}

	root := model.Rule{Name: "default", IsRoot: true, Content: "Always on", Description: "Base"}
	want = "---\ndescription: \"Base\"\nalwaysApply: true\n---\n\nAlways on\n"
	if got := c.TransformContent(root); got != want {
		t.Errorf("TransformContent(root) =\n%q\nwant\n%q", got, want)
	}
}
