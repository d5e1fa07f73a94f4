// Package appender merges a new rules document into an existing one.
package appender

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/klauern/rulegen/internal/frontmatter"
	"github.com/klauern/rulegen/internal/logging"
	"github.com/klauern/rulegen/internal/parser"
)

// DateLayout is the date format embedded in separator names.
const DateLayout = "2006-01-02"

// Appender appends documents, naming each separator block after the day it
// was added.
type Appender struct {
	now func() time.Time
}

// Option configures an Appender.
type Option func(*Appender)

// WithClock sets the time source used for separator names.
func WithClock(now func() time.Time) Option {
	return func(a *Appender) { a.now = now }
}

// New creates an Appender using the local clock.
func New(opts ...Option) *Appender {
	a := &Appender{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SeparatorName returns the name given to the separator block at t.
func SeparatorName(t time.Time) string {
	return "appended-" + t.Format(DateLayout)
}

// Separator returns the frontmatter block inserted before appended content.
func Separator(t time.Time) string {
	return frontmatter.Delimiter + "\nname: " + SeparatorName(t) + "\n" + frontmatter.Delimiter
}

// Merge returns existing with addition appended. When existing has content,
// addition is preceded by a blank line and a dated separator block so the
// result parses as a multi-rule document. An empty existing document is
// replaced by the trimmed addition.
func (a *Appender) Merge(existing, addition string) string {
	add := strings.TrimSpace(addition)
	prev := strings.TrimRight(existing, " \t\r\n")
	if strings.TrimSpace(prev) == "" {
		return add + "\n"
	}
	return prev + "\n\n" + Separator(a.now()) + "\n\n" + add + "\n"
}

// AppendFile merges addition into the document at path, creating the file
// when it does not exist.
func (a *Appender) AppendFile(path, addition string) error {
	if strings.TrimSpace(addition) == "" {
		return fmt.Errorf("nothing to append to %s", path)
	}

	// #nosec G304 - path is the user's rules document
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	existing := string(data)
	if wrapped, ok := nameLeadingContent(path, existing); ok {
		logging.Warn("existing content has no frontmatter, naming it so it stays a rule",
			logging.Path(path),
			logging.Rule(parser.DefaultName(path)),
		)
		existing = wrapped
	}

	merged := a.Merge(existing, addition)
	// #nosec G306 - rules documents are committed alongside the project
	if err := os.WriteFile(path, []byte(merged), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	logging.Info("appended rules",
		logging.Path(path),
		logging.Count(len(merged)-len(data)),
	)
	return nil
}

// nameLeadingContent wraps an MDC document that does not open with
// frontmatter in a name block derived from path. Without it the parser drops
// everything before the first appended separator.
func nameLeadingContent(path, existing string) (string, bool) {
	if parser.DetectDialect(path) != parser.DialectMDC {
		return existing, false
	}
	body := strings.TrimLeft(existing, " \t\r\n")
	if body == "" || frontmatter.Split(body).Found {
		return existing, false
	}
	header := frontmatter.Delimiter + "\nname: " + parser.DefaultName(path) + "\n" + frontmatter.Delimiter
	return header + "\n\n" + body, true
}
