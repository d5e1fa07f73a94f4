// Command rulegen generates AI coding assistant rule files from one source
// document.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/klauern/rulegen/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Run(ctx, os.Args)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
