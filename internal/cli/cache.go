package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/klauern/rulegen/internal/cache"
	"github.com/klauern/rulegen/internal/ui"
)

// documentCache names the disk cache of fetched rules documents.
const documentCache = "documents"

func cacheCommand() *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect or clear the cache of fetched rules documents",
		Commands: []*cli.Command{
			{
				Name:  "info",
				Usage: "Show where the cache lives and what it holds",
				Action: func(_ context.Context, _ *cli.Command) error {
					store, err := cache.New(documentCache, "")
					if err != nil {
						return fmt.Errorf("failed to open document cache: %w", err)
					}
					fmt.Printf("%s %s\n", ui.Header("Path:"), store.Path())
					fmt.Printf("%s %d document(s)\n", ui.Header("Entries:"), store.Size())
					for _, url := range slices.Sorted(maps.Keys(store.Entries)) {
						cached := store.Entries[url].CachedAt
						fmt.Printf("  %s %s\n", url, ui.Dim(cached.Format("2006-01-02 15:04")))
					}
					return nil
				},
			},
			{
				Name:  "clear",
				Usage: "Delete every cached document",
				Action: func(_ context.Context, _ *cli.Command) error {
					store, err := cache.New(documentCache, "")
					if err != nil {
						return fmt.Errorf("failed to open document cache: %w", err)
					}
					n := store.Size()
					if err := store.Clear(); err != nil {
						return fmt.Errorf("failed to clear document cache: %w", err)
					}
					fmt.Println(ui.StatusSuccess(fmt.Sprintf("Cleared %d document(s)", n)))
					return nil
				},
			},
		},
	}
}
