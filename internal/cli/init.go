package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/klauern/rulegen/internal/appender"
	"github.com/klauern/rulegen/internal/logging"
	"github.com/klauern/rulegen/internal/parser"
	"github.com/klauern/rulegen/internal/source"
	"github.com/klauern/rulegen/internal/template"
	"github.com/klauern/rulegen/internal/ui"
)

func initCommand() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create a rules document from a template",
		UsageText: "rulegen init [options] [path]",
		Description: `Seed a new rules document to edit and feed to generate.

   Examples:
     rulegen init
     rulegen init --template multi
     rulegen init --template backend --project billing docs/rules.mdc`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "template",
				Aliases: []string{"t"},
				Usage:   "Template to start from (see 'rulegen template list')",
				Value:   string(template.Basic),
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Name of the first rule",
			},
			&cli.StringFlag{
				Name:  "project",
				Usage: "Project name used in the template",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing file",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return errors.New("init accepts at most one path")
			}

			typ, err := template.ParseTemplateType(cmd.String("template"))
			if err != nil {
				return fmt.Errorf("invalid template %q: %w", cmd.String("template"), err)
			}

			gen, err := template.New()
			if err != nil {
				return err
			}

			path := cmd.Args().Get(0)
			if path == "" {
				path = gen.DefaultFileName(typ)
			}

			data := template.TemplateData{
				Name:    cmd.String("name"),
				Project: cmd.String("project"),
			}
			if err := gen.CreateRulesFile(typ, data, path, cmd.Bool("force")); err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}

			fmt.Println(ui.StatusSuccess(fmt.Sprintf("Created %s from the %s template", path, typ)))
			fmt.Printf("Next: edit it, then run 'rulegen generate %s'\n", path)
			return nil
		},
	}
}

func appendCommand() *cli.Command {
	return &cli.Command{
		Name:      "append",
		Aliases:   []string{"add"},
		Usage:     "Append a rules document to an existing one",
		UsageText: "rulegen append <source> <target>",
		Description: `Append the rules of source (a file or an http(s) URL) to target,
   behind a dated separator so the result stays a valid multi-rule document.

   Examples:
     rulegen append team-rules.md rules.mdc
     rulegen append https://example.com/security.md rules.mdc`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() != 2 {
				return errors.New("append requires exactly 2 arguments: <source> <target>")
			}
			src, target := args.Get(0), args.Get(1)

			content, err := source.New().Read(ctx, src)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", src, err)
			}
			if _, err := parser.Parse(content, src); err != nil {
				return fmt.Errorf("%s is not a valid rules document: %w", src, err)
			}

			if parser.DetectDialect(target) != parser.DialectMDC {
				logging.Warn("target is not an .mdc document, appended rules will not be split into sections",
					logging.Path(target))
			}

			if err := appender.New().AppendFile(target, content); err != nil {
				return err
			}

			fmt.Println(ui.StatusSuccess(fmt.Sprintf("Appended %s to %s", src, target)))
			return nil
		},
	}
}
