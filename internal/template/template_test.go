package template

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauern/rulegen/internal/formatter"
	"github.com/klauern/rulegen/internal/parser"
)

func TestNew(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, typ := range []TemplateType{Basic, Multi, Frontend, Backend} {
		if _, ok := g.templates[typ]; !ok {
			t.Errorf("template %s not loaded", typ)
		}
	}
}

func TestBuiltinsParse(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatal(err)
	}

	wantRules := map[TemplateType][]string{
		Basic:    {"rules"},
		Multi:    {"default", "testing", "documentation"},
		Frontend: {"default", "components", "styling"},
		Backend:  {"default", "api", "tech-stack"},
	}

	for typ, names := range wantRules {
		t.Run(string(typ), func(t *testing.T) {
			content, err := g.Generate(typ, TemplateData{Project: "acme"})
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if err := g.ValidateGenerated(typ, content); err != nil {
				t.Fatalf("ValidateGenerated() error = %v", err)
			}

			rules, err := parser.Parse(content, g.DefaultFileName(typ))
			if err != nil {
				t.Fatal(err)
			}
			if len(rules) != len(names) {
				t.Fatalf("got %d rules, want %d", len(rules), len(names))
			}
			for i, name := range names {
				if rules[i].Name != name {
					t.Errorf("rule %d name = %q, want %q", i, rules[i].Name, name)
				}
			}
		})
	}
}

func TestGenerateData(t *testing.T) {
	g, _ := New()

	content, err := g.Generate(Multi, TemplateData{Name: "Acme Rules", Project: "acme", Date: "2026-01-02"})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Acme Rules", "Baseline guidance for acme", "dated 2026-01-02"} {
		if !strings.Contains(content, want) {
			t.Errorf("content missing %q", want)
		}
	}

	content, err = g.Generate(Basic, TemplateData{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(content, "# Project Rules") || !strings.Contains(content, "working on this project") {
		t.Errorf("defaults not applied:\n%s", content)
	}

	if _, err := g.Generate("nope", TemplateData{}); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestCreateRulesFile(t *testing.T) {
	g, _ := New()
	path := filepath.Join(t.TempDir(), "rules.mdc")

	if err := g.CreateRulesFile(Frontend, TemplateData{}, path, false); err != nil {
		t.Fatalf("CreateRulesFile() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not created: %v", err)
	}

	err := g.CreateRulesFile(Frontend, TemplateData{}, path, false)
	if !errors.Is(err, formatter.ErrExists) {
		t.Errorf("expected already exists error, got %v", err)
	}
	if err := g.CreateRulesFile(Backend, TemplateData{}, path, true); err != nil {
		t.Errorf("force should overwrite, got %v", err)
	}
}

func TestParseTemplateType(t *testing.T) {
	tests := []struct {
		input   string
		want    TemplateType
		wantErr bool
	}{
		{"basic", Basic, false},
		{"MD", Basic, false},
		{"mdc", Multi, false},
		{" react ", Frontend, false},
		{"api", Backend, false},
		{"invalid", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTemplateType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseTemplateType() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseTemplateType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseTemplateTypeSuggests(t *testing.T) {
	_, err := ParseTemplateType("backnd")
	if err == nil || !strings.Contains(err.Error(), `did you mean "backend"`) {
		t.Errorf("ParseTemplateType(backnd) error = %v, want a suggestion", err)
	}
}

func TestLoadCustomTemplate(t *testing.T) {
	g, _ := New()
	dir := t.TempDir()
	path := filepath.Join(dir, "team.mdc")
	content := "---\nname: default\n---\nRules for {{.Project}}\n\n---\nname: extra\n---\nMore"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := g.LoadCustomTemplate("team", path); err != nil {
		t.Fatalf("LoadCustomTemplate() error = %v", err)
	}
	if got := g.DefaultFileName("team"); got != "rules.mdc" {
		t.Errorf("DefaultFileName() = %q", got)
	}

	out, err := g.Generate("team", TemplateData{Project: "acme"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Rules for acme") {
		t.Errorf("Generate() = %q", out)
	}
	if err := g.ValidateGenerated("team", out); err != nil {
		t.Errorf("ValidateGenerated() error = %v", err)
	}

	if err := g.LoadCustomTemplate("bad", filepath.Join(dir, "missing.md")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestListTemplates(t *testing.T) {
	g, _ := New()
	list := g.ListTemplates()
	if len(list) != 4 {
		t.Fatalf("got %d templates, want 4", len(list))
	}
	want := []TemplateType{Backend, Basic, Frontend, Multi}
	for i, info := range list {
		if info.Type != want[i] {
			t.Errorf("template %d = %s, want %s", i, info.Type, want[i])
		}
		if info.Description == "" || info.Extension == "" {
			t.Errorf("template %s missing info", info.Type)
		}
	}
}
