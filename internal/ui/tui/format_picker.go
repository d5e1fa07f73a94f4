package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/klauern/rulegen/internal/model"
)

// FormatPickerAction represents the action to perform after format selection.
type FormatPickerAction int

const (
	// FormatPickerActionNone means no action was taken (user quit).
	FormatPickerActionNone FormatPickerAction = iota
	// FormatPickerActionSelect means the user confirmed a selection.
	FormatPickerActionSelect
)

// FormatItem is one selectable formatter.
type FormatItem struct {
	ID       string
	Name     string
	Category model.Category
	Path     string
}

// FormatPickerResult contains the result of the format picker interaction.
type FormatPickerResult struct {
	Action   FormatPickerAction
	Selected []string
}

// formatPickerKeyMap defines the key bindings for the format picker.
type formatPickerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	All     key.Binding
	Confirm key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultFormatPickerKeyMap() formatPickerKeyMap {
	return formatPickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		All: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle all"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "generate"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FormatPickerModel is the BubbleTea model for choosing formats.
type FormatPickerModel struct {
	items    []FormatItem
	selected map[int]bool
	cursor   int
	keys     formatPickerKeyMap
	result   FormatPickerResult
	showHelp bool
	message  string
	width    int
	height   int
	quitting bool
}

// Styles for the format picker TUI.
var formatPickerStyles = struct {
	Title    lipgloss.Style
	Help     lipgloss.Style
	Item     lipgloss.Style
	Cursor   lipgloss.Style
	Category lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1),
	Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Item:     lipgloss.NewStyle().Padding(0, 2),
	Cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 2),
	Category: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")).Padding(0, 1),
	Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
	Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Padding(0, 1),
}

// NewFormatPickerModel creates a picker over items. Items whose id is in
// preselected start checked.
func NewFormatPickerModel(items []FormatItem, preselected []string) FormatPickerModel {
	pre := make(map[string]bool, len(preselected))
	for _, id := range preselected {
		pre[strings.ToLower(id)] = true
	}
	selected := make(map[int]bool)
	for i, it := range items {
		if pre[it.ID] {
			selected[i] = true
		}
	}
	return FormatPickerModel{
		items:    items,
		selected: selected,
		keys:     defaultFormatPickerKeyMap(),
	}
}

// Init implements tea.Model.
func (m FormatPickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m FormatPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		m.message = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			if len(m.items) > 0 {
				m.selected[m.cursor] = !m.selected[m.cursor]
			}

		case key.Matches(msg, m.keys.All):
			all := len(m.Selected()) < len(m.items)
			for i := range m.items {
				m.selected[i] = all
			}

		case key.Matches(msg, m.keys.Confirm):
			ids := m.Selected()
			if len(ids) == 0 {
				m.message = "Select at least one format"
				return m, nil
			}
			m.result = FormatPickerResult{Action: FormatPickerActionSelect, Selected: ids}
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// Selected returns the checked ids in list order.
func (m FormatPickerModel) Selected() []string {
	var ids []string
	for i, it := range m.items {
		if m.selected[i] {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// View implements tea.Model.
func (m FormatPickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatPickerStyles.Title.Render("Generate Rules - Select Formats"))
	b.WriteString("\n")

	var lastCategory model.Category
	for i, it := range m.items {
		if it.Category != lastCategory {
			b.WriteString("\n")
			b.WriteString(formatPickerStyles.Category.Render(string(it.Category)))
			b.WriteString("\n")
			lastCategory = it.Category
		}

		check := "[ ]"
		if m.selected[i] {
			check = "[x]"
		}
		text := fmt.Sprintf("%s %-16s %s", check, it.ID, it.Path)
		if m.width > 0 {
			text = truncateText(text, m.width-6)
		}
		if i == m.cursor {
			b.WriteString(formatPickerStyles.Cursor.Render("> " + text))
		} else {
			b.WriteString(formatPickerStyles.Item.Render("  " + text))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.cursor < len(m.items) {
		b.WriteString(formatPickerStyles.Status.Render(formatDetail("Assistant: ", m.items[m.cursor].Name, m.width-2)))
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString(formatPickerStyles.Error.Render(m.message))
	} else {
		b.WriteString(formatPickerStyles.Status.Render(fmt.Sprintf("%d of %d selected", len(m.Selected()), len(m.items))))
	}
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.renderFullHelp())
	} else {
		b.WriteString(m.renderShortHelp())
	}

	return b.String()
}

func (m FormatPickerModel) renderShortHelp() string {
	keys := []string{"↑/↓ navigate", "space toggle", "a all", "enter generate", "? help", "q quit"}
	return formatPickerStyles.Help.Render(strings.Join(keys, " • "))
}

func (m FormatPickerModel) renderFullHelp() string {
	help := `Navigation:
  ↑/k      Move up
  ↓/j      Move down

Selection:
  Space/x  Toggle format
  a        Select or clear all
  Enter    Generate the selected formats

General:
  ?        Toggle full help
  q/Esc    Quit without generating`
	return formatPickerStyles.Help.Render(help)
}

// Result returns the result of the user interaction.
func (m FormatPickerModel) Result() FormatPickerResult {
	return m.result
}

// RunFormatPicker runs the interactive format picker and returns the result.
func RunFormatPicker(ctx context.Context, items []FormatItem, preselected []string) (FormatPickerResult, error) {
	finalModel, err := run(ctx, NewFormatPickerModel(items, preselected))
	if err != nil {
		return FormatPickerResult{}, err
	}

	if m, ok := finalModel.(FormatPickerModel); ok {
		return m.Result(), nil
	}

	return FormatPickerResult{}, nil
}
