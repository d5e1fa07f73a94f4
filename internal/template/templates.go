package template

type builtin struct {
	info    Info
	content string
}

var builtins = []builtin{
	{Info{Basic, "Single Markdown document applied everywhere", ".md"}, basicTemplate},
	{Info{Multi, "Multi-section document with a root rule and scoped rules", ".mdc"}, multiTemplate},
	{Info{Frontend, "React and TypeScript front-end conventions", ".mdc"}, frontendTemplate},
	{Info{Backend, "API and service conventions", ".mdc"}, backendTemplate},
}

const basicTemplate = `# {{if .Name}}{{.Name}}{{else}}Project Rules{{end}}

{{if .Description}}{{.Description}}{{else}}Guidelines for AI coding assistants working on {{.Project}}.{{end}}

## General

- Read the surrounding code before changing it and follow its conventions.
- Keep changes small and focused on the task.
- Prefer clear names over comments.
- Add or update tests alongside behavior changes.

## Communication

- Ask before making destructive or wide-reaching changes.
- Summarize what changed and why when you finish.
`

const multiTemplate = `---
name: default
description: "Baseline guidance for {{.Project}}"
alwaysApply: true
---
# {{if .Name}}{{.Name}}{{else}}Project Rules{{end}}

{{if .Description}}{{.Description}}{{else}}Guidelines for AI coding assistants working on {{.Project}}.{{end}}

- Follow the existing code style.
- Keep changes small and focused.
- Update tests with every behavior change.

---
name: testing
description: "How tests are written"
globs: "**/*_test.*"
---
# Testing

- Use table-driven tests where several cases share a shape.
- Tests must not depend on network access or wall-clock time.

---
name: documentation
description: "Docs and changelog conventions"
---
# Documentation

- Document exported APIs.
- Record user-visible changes in the changelog, dated {{.Date}}.
`

const frontendTemplate = `---
name: default
description: "Front-end baseline for {{.Project}}"
alwaysApply: true
---
# {{if .Name}}{{.Name}}{{else}}Front-end Rules{{end}}

- Use TypeScript with strict mode.
- Prefer function components and hooks.

---
name: components
description: "React component conventions"
globs: "**/*.{tsx,jsx}"
---
# Components

- One component per file, named after the file.
- Keep components small; lift state only when shared.
- Co-locate styles and tests with the component.

---
name: styling
description: "Styling conventions"
globs: "**/*.{css,scss}"
---
# Styling

- Use design tokens instead of literal colors and spacing.
- Avoid global selectors.
`

const backendTemplate = `---
name: default
description: "Service baseline for {{.Project}}"
alwaysApply: true
---
# {{if .Name}}{{.Name}}{{else}}Service Rules{{end}}

- Return errors with context instead of logging and continuing.
- Keep handlers thin; put logic in testable packages.

---
name: api
description: "HTTP API conventions"
globs: "**/api/**/*"
---
# API

- Validate every request body at the edge.
- Use plural nouns for resource paths.
- Version breaking changes.

---
name: tech-stack
description: "Technology choices"
---
# Tech stack

- Document new dependencies and why they were chosen.
- Prefer the standard tooling already used in the repository.
`
