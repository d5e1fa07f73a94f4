// Package ui provides terminal output helpers for rulegen.
package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/klauern/rulegen/internal/model"
)

// Color function types for styled output.
var (
	// Success is used for written files (green).
	Success = color.New(color.FgGreen).SprintFunc()
	// Error is used for failed writes (red).
	Error = color.New(color.FgRed).SprintFunc()
	// Warning is used for skipped ids and collisions (yellow).
	Warning = color.New(color.FgYellow).SprintFunc()
	// Info is used for paths and counts (cyan).
	Info = color.New(color.FgCyan).SprintFunc()
	// Bold is used for emphasis.
	Bold = color.New(color.Bold).SprintFunc()
	// Dim is used for secondary information (faint).
	Dim = color.New(color.Faint).SprintFunc()
	// Header is used for table headers (bold cyan).
	Header = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Status symbols.
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolSkipped = "-"
)

// StatusSuccess marks a written file.
func StatusSuccess(msg string) string { return status(Success, SymbolSuccess, msg) }

// StatusError marks a failed write.
func StatusError(msg string) string { return status(Error, SymbolError, msg) }

// StatusWarning marks an unknown id or a collision.
func StatusWarning(msg string) string { return status(Warning, SymbolWarning, msg) }

// StatusSkipped marks something left alone.
func StatusSkipped(msg string) string { return status(Dim, SymbolSkipped, msg) }

func status(paint func(...any) string, symbol, msg string) string {
	if msg == "" {
		return paint(symbol)
	}
	return paint(symbol) + " " + msg
}

// ResultLine renders one generation attempt, e.g.
// "✓ [cursor] react -> .cursor/rules/react.mdc".
func ResultLine(r model.Result) string {
	msg := "[" + r.FormatID + "] " + r.RuleName
	if r.Success {
		return StatusSuccess(msg + " -> " + Info(r.FilePath))
	}
	return StatusError(msg + ": " + r.ErrorMessage())
}

// Category colors a format category for listings.
func Category(c model.Category) string {
	switch c {
	case model.CategoryDirectory:
		return Info(string(c))
	case model.CategoryRootFile:
		return Success(string(c))
	case model.CategoryMemory:
		return Warning(string(c))
	default:
		return string(c)
	}
}

// DisableColors disables all color output.
func DisableColors() {
	color.NoColor = true
}

// EnableColors enables color output.
func EnableColors() {
	color.NoColor = false
}

// IsColorEnabled returns whether colors are currently enabled.
func IsColorEnabled() bool {
	return !color.NoColor
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}

// DefaultWidth is used when the terminal size is unknown.
const DefaultWidth = 80

// Width returns the column count of the terminal attached to f, or
// DefaultWidth.
func Width(f *os.File) int {
	if !IsTerminal(f) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd())) // #nosec G115 - file descriptors fit in int
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}
