package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/layout"
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("245")).
			Align(lipgloss.Center, lipgloss.Center)

	focusedPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("205")).
				Foreground(lipgloss.Color("255")).
				Align(lipgloss.Center, lipgloss.Center)

	tinyPaneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	statusTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))
)

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	return m.renderWorkspace() + "\n" + m.footer()
}

// relayout pushes the currently available screen area, minus the footer,
// into the workspace set.
func (m *Model) relayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	footerHeight := lipgloss.Height(m.footer())
	height := m.height - footerHeight
	if height < 0 {
		height = 0
	}
	area := entity.NewRect(0, 0, uint16(m.width), uint16(height))
	if _, err := m.layoutUC.Resize(m.ctx, usecase.ResizeInput{Tabs: m.tabs, Area: area}); err != nil {
		m.status = err.Error()
	}
}

// renderWorkspace composes the active tab's panes row by row. Panes never
// overlap, so each screen row is the concatenation of the pane slices that
// cross it, with gap columns padded by spaces.
func (m *Model) renderWorkspace() string {
	tab := m.tabs.Active()
	area := m.tabs.TabArea(tab)

	type placed struct {
		area  entity.Rect
		lines []string
	}

	entries := m.tabs.TabViews(tab)
	panes := make([]placed, 0, len(entries))
	for _, e := range entries {
		lines := renderPane(e)
		if lines == nil {
			continue
		}
		panes = append(panes, placed{area: e.View.Area, lines: lines})
	}
	sort.Slice(panes, func(i, j int) bool { return panes[i].area.X < panes[j].area.X })

	rows := make([]string, int(area.Height))
	for y := range rows {
		absY := int(area.Y) + y
		var b strings.Builder
		x := int(area.X)
		for _, p := range panes {
			if absY < int(p.area.Top()) || absY >= int(p.area.Bottom()) {
				continue
			}
			if gap := int(p.area.X) - x; gap > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			b.WriteString(p.lines[absY-int(p.area.Y)])
			x = int(p.area.Right())
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

// renderPane renders one pane as exactly Area.Height lines of Area.Width
// columns. Panes too small for a border degrade to a plain fill.
func renderPane(e layout.ViewEntry) []string {
	area := e.View.Area
	w, h := int(area.Width), int(area.Height)
	if w <= 0 || h <= 0 {
		return nil
	}

	var box string
	if w < 4 || h < 3 {
		box = tinyPaneStyle.Width(w).Height(h).MaxWidth(w).Render("")
	} else {
		style := paneStyle
		if e.Focused {
			style = focusedPaneStyle
		}
		label := fmt.Sprintf("%s\n%dx%d", e.View.Name, w, h)
		box = style.Width(w - 2).Height(h - 2).MaxWidth(w).Render(label)
	}

	lines := strings.Split(box, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, strings.Repeat(" ", w))
	}
	return lines
}

func (m *Model) footer() string {
	tab := m.tabs.Active()
	position := 1
	for i, id := range m.tabs.TabIDs() {
		if id == tab {
			position = i + 1
		}
	}

	parts := []string{
		statusTabStyle.Render(fmt.Sprintf("workspace %d/%d", position, m.tabs.TabCount())),
	}
	if !m.tabs.IsEmpty(tab) {
		if view, ok := m.tabs.TryView(m.tabs.Focus(tab)); ok {
			parts = append(parts, statusStyle.Render(view.Name))
		}
	}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}

	line := strings.Join(parts, statusStyle.Render("  |  "))
	return line + "\n" + m.help.View(m.keys)
}
