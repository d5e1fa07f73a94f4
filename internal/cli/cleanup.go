package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/klauern/rulegen/internal/formatter"
	"github.com/klauern/rulegen/internal/generate"
	"github.com/klauern/rulegen/internal/gitignore"
	"github.com/klauern/rulegen/internal/prune"
	"github.com/klauern/rulegen/internal/ui"
)

func dirFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "dir",
			Usage: "Project directory",
			Value: ".",
		},
		&cli.StringFlag{
			Name:  "ide-folder",
			Usage: "Name of the IDE dump folder",
			Value: generate.DefaultIDEFolder,
		},
	}
}

func gitignoreCommand() *cli.Command {
	return &cli.Command{
		Name:      "gitignore",
		Usage:     "Keep generated rule files out of version control",
		UsageText: "rulegen gitignore [--dir .] [--remove]",
		Description: `Write a marked block listing every generated path to .gitignore.
   Running it again refreshes the block; --remove deletes it.`,
		Flags: append(dirFlags(), &cli.BoolFlag{
			Name:  "remove",
			Usage: "Remove the managed block",
		}),
		Action: func(_ context.Context, cmd *cli.Command) error {
			dir := cmd.String("dir")

			if cmd.Bool("remove") {
				changed, err := gitignore.Remove(dir)
				if err != nil {
					return err
				}
				if changed {
					fmt.Println(ui.StatusSuccess("Removed rulegen block from .gitignore"))
				} else {
					fmt.Println(ui.StatusSkipped("No rulegen block in .gitignore"))
				}
				return nil
			}

			changed, err := gitignore.Update(dir, generatedPaths(formatter.NewRegistry(), cmd.String("ide-folder")))
			if err != nil {
				return err
			}
			if changed {
				fmt.Println(ui.StatusSuccess("Updated .gitignore"))
			} else {
				fmt.Println(ui.StatusSkipped(".gitignore already up to date"))
			}
			return nil
		},
	}
}

func pruneCommand() *cli.Command {
	return &cli.Command{
		Name:      "prune",
		Usage:     "Delete generated rule files",
		UsageText: "rulegen prune [--dir .] [--dry-run]",
		Flags: append(dirFlags(), &cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"d"},
			Usage:   "List what would be deleted without deleting",
		}),
		Action: func(_ context.Context, cmd *cli.Command) error {
			dryRun := cmd.Bool("dry-run")
			targets := generatedPaths(formatter.NewRegistry(), cmd.String("ide-folder"))

			entries, err := prune.Run(cmd.String("dir"), targets, dryRun)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Println("Nothing to prune")
				return nil
			}

			for _, e := range entries {
				name := e.Rel
				if e.IsDir {
					name += "/"
				}
				if dryRun {
					fmt.Printf("  would delete %s\n", ui.Info(name))
				} else {
					fmt.Println(ui.StatusSuccess("deleted " + name))
				}
			}

			if dryRun {
				fmt.Printf("\nDry run - %d path(s) would be deleted\n", len(entries))
			} else {
				fmt.Printf("\nDeleted %d path(s)\n", len(entries))
			}
			return nil
		},
	}
}
