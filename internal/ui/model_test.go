package ui_test

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/infrastructure/config"
	"github.com/bnema/splitview/internal/ui"
)

func newTestModel() tea.Model {
	idGen := usecase.IDGenerator(uuid.NewString)
	return ui.New(
		context.Background(),
		config.DefaultConfig(),
		usecase.NewManageLayoutUseCase(idGen),
		usecase.NewManageWorkspacesUseCase(idGen),
	)
}

func press(m tea.Model, r rune) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestModel_RendersAfterFirstWindowSize(t *testing.T) {
	m := newTestModel()
	assert.Empty(t, m.View(), "nothing to draw before the terminal size is known")

	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	require.NotEmpty(t, view)
	assert.Contains(t, view, "main.go", "initial pane titled from config")
	assert.Contains(t, view, "workspace 1/1")
	assert.Equal(t, 24, len(strings.Split(view, "\n")), "output fills the terminal exactly")
}

func TestModel_SplitAddsPane(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m, _ = press(m, 'v')

	view := m.View()
	assert.Contains(t, view, "main.go")
	assert.Contains(t, view, "solver.go", "second pane takes the next configured title")
}

func TestModel_NewTabSwitchesWorkspace(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m, _ = press(m, 't')

	view := m.View()
	assert.Contains(t, view, "workspace 2/2")
	assert.NotContains(t, view, "main.go", "the new workspace shows its own pane")
}

func TestModel_ClosingLastPaneQuits(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m, cmd := press(m, 'x')
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	_ = m
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	_, cmd := press(m, 'q')
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
