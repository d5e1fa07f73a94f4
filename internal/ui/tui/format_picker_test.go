package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/klauern/rulegen/internal/model"
)

func testItems() []FormatItem {
	return []FormatItem{
		{ID: "cursor", Name: "Cursor", Category: model.CategoryDirectory, Path: ".cursor/rules"},
		{ID: "cline", Name: "Cline", Category: model.CategoryDirectory, Path: ".clinerules"},
		{ID: "claude", Name: "Claude Code", Category: model.CategoryRootFile, Path: "CLAUDE.md"},
	}
}

func update(t *testing.T, m FormatPickerModel, msg tea.Msg) (FormatPickerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	fm, ok := next.(FormatPickerModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return fm, cmd
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyAll   = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	keyHelp  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}
)

func TestNewFormatPickerModel(t *testing.T) {
	m := NewFormatPickerModel(testItems(), []string{"Claude"})

	if m.cursor != 0 {
		t.Errorf("expected cursor 0, got %d", m.cursor)
	}
	if got := m.Selected(); len(got) != 1 || got[0] != "claude" {
		t.Errorf("expected preselected claude, got %v", got)
	}
	if m.Init() != nil {
		t.Error("expected Init to return nil")
	}
}

func TestFormatPickerNavigation(t *testing.T) {
	m := NewFormatPickerModel(testItems(), nil)

	m, _ = update(t, m, keyUp)
	if m.cursor != 0 {
		t.Errorf("cursor should not go negative, got %d", m.cursor)
	}

	for range 5 {
		m, _ = update(t, m, keyDown)
	}
	if m.cursor != 2 {
		t.Errorf("cursor should stop at last item, got %d", m.cursor)
	}
}

func TestFormatPickerToggleAndConfirm(t *testing.T) {
	m := NewFormatPickerModel(testItems(), nil)

	m, cmd := update(t, m, keyEnter)
	if cmd != nil {
		t.Error("confirm with nothing selected should not quit")
	}
	if !strings.Contains(m.View(), "Select at least one format") {
		t.Error("expected selection hint in view")
	}

	m, _ = update(t, m, keySpace)
	m, _ = update(t, m, keyDown)
	m, _ = update(t, m, keyDown)
	m, _ = update(t, m, keySpace)

	m, cmd = update(t, m, keyEnter)
	if cmd == nil {
		t.Fatal("confirm should quit")
	}
	res := m.Result()
	if res.Action != FormatPickerActionSelect {
		t.Errorf("expected select action, got %d", res.Action)
	}
	if strings.Join(res.Selected, ",") != "cursor,claude" {
		t.Errorf("selected = %v", res.Selected)
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestFormatPickerToggleAll(t *testing.T) {
	m := NewFormatPickerModel(testItems(), []string{"cline"})

	m, _ = update(t, m, keyAll)
	if len(m.Selected()) != 3 {
		t.Errorf("expected all selected, got %v", m.Selected())
	}

	m, _ = update(t, m, keyAll)
	if len(m.Selected()) != 0 {
		t.Errorf("expected none selected, got %v", m.Selected())
	}
}

func TestFormatPickerQuit(t *testing.T) {
	m := NewFormatPickerModel(testItems(), []string{"cursor"})

	m, cmd := update(t, m, keyQuit)
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.Result().Action != FormatPickerActionNone {
		t.Error("quitting should not select")
	}
}

func TestFormatPickerView(t *testing.T) {
	m := NewFormatPickerModel(testItems(), []string{"cursor"})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	for _, want := range []string{"Select Formats", "directory", "root-file", "[x] cursor", "[ ] claude", "1 of 3 selected", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m, _ = update(t, m, keyHelp)
	if !strings.Contains(m.View(), "Toggle format") {
		t.Error("full help should be shown")
	}
}
