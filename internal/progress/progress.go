// Package progress shows a progress bar while rules are written.
package progress

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/klauern/rulegen/internal/logging"
	"github.com/klauern/rulegen/internal/model"
	"github.com/klauern/rulegen/internal/ui"
)

// Bar counts generation attempts as they finish and renders them when a
// terminal is attached. Without one it only logs at debug level.
type Bar struct {
	bar     *progressbar.ProgressBar
	enabled bool
	desc    string
	written int
	failed  int
}

// Options configures the progress bar behavior.
type Options struct {
	// Max is the number of rule and format pairs to attempt.
	Max int64
	// Description is the prefix text shown before the progress bar.
	Description string
	// Writer is the output destination. Defaults to os.Stderr.
	Writer io.Writer
}

// New creates a progress bar. The bar is only shown when colors are enabled,
// the writer is a terminal and debug logging is off.
func New(opts Options) *Bar {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}

	b := &Bar{
		enabled: shouldShowProgress(opts.Writer),
		desc:    opts.Description,
	}

	if !b.enabled {
		logging.Debug(opts.Description+" started", logging.Count(int(opts.Max)))
		return b
	}

	b.bar = progressbar.NewOptions64(
		opts.Max,
		progressbar.OptionSetDescription(opts.Description),
		progressbar.OptionSetWriter(opts.Writer),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(15),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionEnableColorCodes(ui.IsColorEnabled()),
	)
	return b
}

// Observe records one finished attempt and shows its format and the running
// failure count.
func (b *Bar) Observe(r model.Result) {
	if r.Success {
		b.written++
	} else {
		b.failed++
	}
	if !b.enabled {
		return
	}

	desc := fmt.Sprintf("%s [%s]", b.desc, r.FormatID)
	if b.failed > 0 {
		desc += " " + ui.Error(fmt.Sprintf("%d failed", b.failed))
	}
	b.bar.Describe(desc)
	_ = b.bar.Add(1)
}

// Written returns the number of successful attempts observed.
func (b *Bar) Written() int {
	return b.written
}

// Failed returns the number of failed attempts observed.
func (b *Bar) Failed() int {
	return b.failed
}

// Finish completes the bar.
func (b *Bar) Finish() error {
	if !b.enabled {
		logging.Debug(b.desc+" completed",
			logging.Count(b.written),
			slog.Int("failed", b.failed),
		)
		return nil
	}
	return b.bar.Finish()
}

// Clear removes the bar from the terminal.
func (b *Bar) Clear() error {
	if !b.enabled {
		return nil
	}
	return b.bar.Clear()
}

// Enabled reports whether the bar renders anything.
func (b *Bar) Enabled() bool {
	return b.enabled
}

// shouldShowProgress is false for non-terminal writers, when colors are off,
// and at debug level where the bar would interleave with log lines.
func shouldShowProgress(w io.Writer) bool {
	if !ui.IsColorEnabled() {
		return false
	}

	f, ok := w.(*os.File)
	if !ok || !ui.IsTerminal(f) {
		return false
	}

	return !logging.Default().Enabled(context.Background(), logging.LevelDebug)
}
