package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/urfave/cli/v3"

	"github.com/klauern/rulegen/internal/formatter"
	"github.com/klauern/rulegen/internal/model"
	"github.com/klauern/rulegen/internal/ui"
)

func formatsCommand() *cli.Command {
	return &cli.Command{
		Name:      "formats",
		Usage:     "List supported output formats",
		UsageText: "rulegen formats [--category directory|root-file|memory]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "category",
				Usage: "Only list formats of this category",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			registry := formatter.NewRegistry()

			formatters := registry.All()
			if c := cmd.String("category"); c != "" {
				category, err := model.ParseCategory(c)
				if err != nil {
					return err
				}
				formatters = registry.ByCategory(category)
			}

			printFormats(formatters)
			return nil
		},
	}
}

func printFormats(formatters []formatter.Formatter) {
	headers := []string{"ID", "NAME", "CATEGORY", "PATH"}
	rows := make([][]string, 0, len(formatters))
	for _, f := range formatters {
		spec := f.Spec()
		rows = append(rows, []string{spec.ID, spec.Name, string(spec.Category), spec.DefaultPath})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	fmt.Printf("%s  %s  %s  %s\n",
		ui.Header(runewidth.FillRight(headers[0], widths[0])),
		ui.Header(runewidth.FillRight(headers[1], widths[1])),
		ui.Header(runewidth.FillRight(headers[2], widths[2])),
		ui.Header(headers[3]))
	for _, row := range rows {
		fmt.Printf("%s  %s  %s  %s\n",
			runewidth.FillRight(row[0], widths[0]),
			runewidth.FillRight(row[1], widths[1]),
			ui.Category(model.Category(row[2]))+pad(row[2], widths[2]),
			row[3])
	}
	fmt.Printf("\n%d format(s)\n", len(rows))
}

// pad returns the spaces that fill s to width columns.
func pad(s string, width int) string {
	return strings.Repeat(" ", max(0, width-runewidth.StringWidth(s)))
}
