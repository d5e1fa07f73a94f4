// Package tui provides the interactive pickers rulegen opens with
// --interactive.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// run shows m on the alternate screen until it quits or ctx is done.
func run(ctx context.Context, m tea.Model) (tea.Model, error) {
	final, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return final, ctx.Err()
	}
	return final, err
}
