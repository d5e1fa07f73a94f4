package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/klauern/rulegen/internal/template"
	"github.com/klauern/rulegen/internal/ui"
)

func templateCommand() *cli.Command {
	return &cli.Command{
		Name:  "template",
		Usage: "Inspect the built-in rules templates",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List available templates",
				Action: func(_ context.Context, _ *cli.Command) error {
					gen, err := template.New()
					if err != nil {
						return err
					}
					for _, info := range gen.ListTemplates() {
						fmt.Printf("  %-10s %s %s\n",
							ui.Bold(string(info.Type)), info.Description, ui.Dim("("+info.Extension+")"))
					}
					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "Print a rendered template",
				UsageText: "rulegen template show [--raw] <name>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "raw",
						Usage: "Print the document without terminal styling",
					},
					&cli.StringFlag{
						Name:  "project",
						Usage: "Project name used in the template",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return errors.New("template show requires exactly 1 argument: <name>")
					}
					typ, err := template.ParseTemplateType(cmd.Args().Get(0))
					if err != nil {
						return fmt.Errorf("invalid template %q: %w", cmd.Args().Get(0), err)
					}

					gen, err := template.New()
					if err != nil {
						return err
					}
					content, err := gen.Generate(typ, template.TemplateData{Project: cmd.String("project")})
					if err != nil {
						return err
					}

					if cmd.Bool("raw") || !ui.IsTerminal(os.Stdout) || !ui.IsColorEnabled() {
						fmt.Print(content)
						return nil
					}
					fmt.Print(renderMarkdown(content, ui.Width(os.Stdout)))
					return nil
				},
			},
		},
	}
}

// renderMarkdown styles content for the terminal, returning it unchanged when
// rendering fails.
func renderMarkdown(content string, width int) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
