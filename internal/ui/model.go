// Package ui implements the interactive workspace demo on top of Bubble Tea.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/infrastructure/config"
	"github.com/bnema/splitview/internal/layout"
	"github.com/bnema/splitview/internal/logging"
)

// Model is the Bubble Tea model driving the workspace demo.
type Model struct {
	ctx  context.Context
	cfg  *config.Config
	tabs *layout.Tabs

	layoutUC     *usecase.ManageLayoutUseCase
	workspaceUC  *usecase.ManageWorkspacesUseCase
	defaultSplit usecase.SplitAxis

	keys keyMap
	help help.Model

	width  int
	height int
	ready  bool

	// docSeq cycles through the configured document names when a pane
	// opens without an explicit title.
	docSeq int

	status string
}

// New creates the demo model. The workspace set starts empty and is
// populated on the first window size message.
func New(ctx context.Context, cfg *config.Config, layoutUC *usecase.ManageLayoutUseCase, workspaceUC *usecase.ManageWorkspacesUseCase) *Model {
	return &Model{
		ctx:          ctx,
		cfg:          cfg,
		tabs:         layout.New(entity.Rect{}),
		layoutUC:     layoutUC,
		workspaceUC:  workspaceUC,
		defaultSplit: usecase.SplitAxis(cfg.Workspace.DefaultSplitAxis),
		keys:         newKeyMap(),
		help:         help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.relayout()
		if !m.ready {
			m.ready = true
			m.seedPanes()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// seedPanes opens the configured number of initial panes in the first tab.
func (m *Model) seedPanes() {
	for i := 0; i < m.cfg.Demo.InitialViews; i++ {
		if i == 0 {
			m.openPane()
			continue
		}
		m.splitPane(m.defaultSplit)
	}
}

func (m *Model) nextDocName() string {
	names := m.cfg.Demo.DocumentNames
	name := names[m.docSeq%len(names)]
	m.docSeq++
	return name
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()

	case key.Matches(msg, keys.Open):
		m.openPane()

	case key.Matches(msg, keys.SplitRow):
		m.splitPane(usecase.SplitHorizontal)

	case key.Matches(msg, keys.SplitColumn):
		m.splitPane(usecase.SplitVertical)

	case key.Matches(msg, keys.ClosePane):
		return m.closePane()

	case key.Matches(msg, keys.FocusLeft):
		m.navigate(usecase.NavLeft)
	case key.Matches(msg, keys.FocusDown):
		m.navigate(usecase.NavDown)
	case key.Matches(msg, keys.FocusUp):
		m.navigate(usecase.NavUp)
	case key.Matches(msg, keys.FocusRight):
		m.navigate(usecase.NavRight)

	case key.Matches(msg, keys.SwapLeft):
		m.swap(usecase.NavLeft)
	case key.Matches(msg, keys.SwapDown):
		m.swap(usecase.NavDown)
	case key.Matches(msg, keys.SwapUp):
		m.swap(usecase.NavUp)
	case key.Matches(msg, keys.SwapRight):
		m.swap(usecase.NavRight)

	case key.Matches(msg, keys.NextPane):
		m.cycle(false)
	case key.Matches(msg, keys.PrevPane):
		m.cycle(true)

	case key.Matches(msg, keys.Transpose):
		if err := m.layoutUC.Transpose(m.ctx, usecase.TransposeInput{Tabs: m.tabs}); err != nil {
			m.status = err.Error()
		}

	case key.Matches(msg, keys.NewTab):
		if _, err := m.workspaceUC.Create(m.ctx, usecase.NewWorkspaceInput{Tabs: m.tabs, Name: m.nextDocName()}); err != nil {
			m.status = err.Error()
		}

	case key.Matches(msg, keys.CloseTab):
		out, err := m.workspaceUC.Close(m.ctx, usecase.CloseWorkspaceInput{Tabs: m.tabs})
		switch {
		case err != nil:
			m.status = err.Error()
		case out.Refused:
			m.status = "cannot close the last workspace"
		}

	case key.Matches(msg, keys.NextTab):
		if _, err := m.workspaceUC.Switch(m.ctx, usecase.SwitchWorkspaceInput{Tabs: m.tabs}); err != nil {
			m.status = err.Error()
		}
	case key.Matches(msg, keys.PrevTab):
		if _, err := m.workspaceUC.Switch(m.ctx, usecase.SwitchWorkspaceInput{Tabs: m.tabs, Reverse: true}); err != nil {
			m.status = err.Error()
		}
	}
	return m, nil
}

func (m *Model) openPane() {
	_, err := m.layoutUC.Open(m.ctx, usecase.OpenPaneInput{Tabs: m.tabs, Name: m.nextDocName()})
	if err != nil {
		m.status = err.Error()
	}
}

func (m *Model) splitPane(axis usecase.SplitAxis) {
	_, err := m.layoutUC.Split(m.ctx, usecase.SplitPaneInput{Tabs: m.tabs, Name: m.nextDocName(), Axis: axis})
	if err != nil {
		m.status = err.Error()
	}
}

func (m *Model) closePane() (tea.Model, tea.Cmd) {
	out, err := m.layoutUC.Close(m.ctx, usecase.ClosePaneInput{Tabs: m.tabs})
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	if out.AllEmpty {
		logging.FromContext(m.ctx).Debug().Msg("all workspaces empty, quitting")
		return m, tea.Quit
	}
	if out.TabEmpty {
		// Drop the emptied workspace and land on a populated one.
		if _, err := m.workspaceUC.Close(m.ctx, usecase.CloseWorkspaceInput{Tabs: m.tabs}); err != nil {
			m.status = err.Error()
		}
	}
	return m, nil
}

func (m *Model) navigate(dir usecase.NavigateDirection) {
	if _, err := m.layoutUC.Navigate(m.ctx, usecase.NavigateInput{Tabs: m.tabs, Direction: dir}); err != nil {
		m.status = err.Error()
	}
}

func (m *Model) swap(dir usecase.NavigateDirection) {
	if _, err := m.layoutUC.Swap(m.ctx, usecase.NavigateInput{Tabs: m.tabs, Direction: dir}); err != nil {
		m.status = err.Error()
	}
}

func (m *Model) cycle(reverse bool) {
	if _, err := m.layoutUC.Cycle(m.ctx, usecase.CycleInput{Tabs: m.tabs, Reverse: reverse}); err != nil {
		m.status = err.Error()
	}
}
