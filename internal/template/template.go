// Package template seeds new rules documents from built-in templates.
package template

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/klauern/rulegen/internal/formatter"
	"github.com/klauern/rulegen/internal/parser"
	"github.com/klauern/rulegen/internal/similarity"
)

// TemplateType names a rules template
type TemplateType string

const (
	Basic    TemplateType = "basic"
	Multi    TemplateType = "multi"
	Frontend TemplateType = "frontend"
	Backend  TemplateType = "backend"
)

// TemplateData holds the data passed to templates
type TemplateData struct {
	Name        string
	Description string
	Project     string
	Year        int
	Date        string
}

// Info describes a template for listings.
type Info struct {
	Type        TemplateType
	Description string
	// Extension is the file extension of documents seeded from the template.
	Extension string
}

// Generator renders templates
type Generator struct {
	templates map[TemplateType]*template.Template
	info      map[TemplateType]Info
}

// New creates a new template generator with built-in templates
func New() (*Generator, error) {
	g := &Generator{
		templates: make(map[TemplateType]*template.Template),
		info:      make(map[TemplateType]Info),
	}

	if err := g.loadBuiltinTemplates(); err != nil {
		return nil, fmt.Errorf("failed to load built-in templates: %w", err)
	}

	return g, nil
}

func (g *Generator) loadBuiltinTemplates() error {
	for _, b := range builtins {
		tmpl, err := template.New(string(b.info.Type)).Parse(b.content)
		if err != nil {
			return fmt.Errorf("failed to parse %s template: %w", b.info.Type, err)
		}
		g.templates[b.info.Type] = tmpl
		g.info[b.info.Type] = b.info
	}
	return nil
}

// LoadCustomTemplate loads a custom template from a file. Files ending in .mdc
// produce multi-section documents.
func (g *Generator) LoadCustomTemplate(name string, path string) error {
	// #nosec G304 - path is a user-supplied template file
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read template file: %w", err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	ext := ".md"
	if parser.DetectDialect(path) == parser.DialectMDC {
		ext = ".mdc"
	}
	typ := TemplateType(name)
	g.templates[typ] = tmpl
	g.info[typ] = Info{Type: typ, Description: "Custom template from " + path, Extension: ext}
	return nil
}

// Generate renders a template
func (g *Generator) Generate(typ TemplateType, data TemplateData) (string, error) {
	tmpl, exists := g.templates[typ]
	if !exists {
		return "", fmt.Errorf("template %s not found", typ)
	}

	now := time.Now()
	if data.Year == 0 {
		data.Year = now.Year()
	}
	if data.Date == "" {
		data.Date = now.Format("2006-01-02")
	}
	if data.Project == "" {
		data.Project = "this project"
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// ValidateGenerated checks that content parses as a rules document of the
// template's dialect.
func (g *Generator) ValidateGenerated(typ TemplateType, content string) error {
	info, ok := g.info[typ]
	if !ok {
		return fmt.Errorf("template %s not found", typ)
	}
	if _, err := parser.Parse(content, "template"+info.Extension); err != nil {
		return fmt.Errorf("generated content is not a valid rules document: %w", err)
	}
	return nil
}

// CreateRulesFile renders typ and writes it to path. An existing file is only
// replaced when force is set.
func (g *Generator) CreateRulesFile(typ TemplateType, data TemplateData, path string, force bool) error {
	content, err := g.Generate(typ, data)
	if err != nil {
		return err
	}

	if err := g.ValidateGenerated(typ, content); err != nil {
		return err
	}

	if _, err := formatter.WriteFile(path, content, force); err != nil {
		return err
	}
	return nil
}

// DefaultFileName returns the file name init uses for typ.
func (g *Generator) DefaultFileName(typ TemplateType) string {
	ext := ".md"
	if info, ok := g.info[typ]; ok {
		ext = info.Extension
	}
	return "rules" + ext
}

// ListTemplates returns every template sorted by name
func (g *Generator) ListTemplates() []Info {
	list := make([]Info, 0, len(g.info))
	for _, info := range g.info {
		list = append(list, info)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Type < list[j].Type })
	return list
}

// ParseTemplateType parses a template type string
func ParseTemplateType(s string) (TemplateType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "basic", "default", "markdown", "md":
		return Basic, nil
	case "multi", "mdc", "sections":
		return Multi, nil
	case "frontend", "react", "web":
		return Frontend, nil
	case "backend", "api", "server":
		return Backend, nil
	default:
		if match, ok := similarity.Suggest(s, templateNames()); ok {
			return "", fmt.Errorf("unknown template type (did you mean %q?)", match)
		}
		return "", errors.New("unknown template type")
	}
}

func templateNames() []string {
	names := make([]string, 0, len(builtins))
	for _, b := range builtins {
		names = append(names, string(b.info.Type))
	}
	return names
}
