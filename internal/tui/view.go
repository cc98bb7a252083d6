package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)

	// Header
	title := " popchart "
	if m.ctl != nil {
		title += "─ " + m.ctl.Variant().Title + " "
	}
	header := lipgloss.NewStyle().Width(contentWidth).Render(titleStyle.Render(title))

	// Sidebar
	var sidebar string
	if l := m.activeList(); l != nil {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Height(contentHeight).Render(l.View())
	}

	// Chart area
	var chartView string
	switch {
	case m.ctl == nil:
		msg := "no dataset loaded  (o: open csv)"
		if m.loading {
			msg = "loading…"
		}
		chartView = lipgloss.Place(m.chartCols, contentHeight, lipgloss.Center, lipgloss.Center, dimStyle.Render(msg))
	case m.showTable:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(m.chartCols, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(contentHeight-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		chartView = lipgloss.Place(m.chartCols, contentHeight, lipgloss.Center, lipgloss.Center, box)
	default:
		chartView = lipgloss.NewStyle().Width(m.chartCols).Height(contentHeight).Render(m.renderChart())
	}

	body := chartView
	if sidebar != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", chartView)
	}

	// Footer: status and tooltip, then help
	status := dimStyle.Render(" " + m.status + " ")
	if m.err != nil {
		status = errStyle.Render(" " + m.status + " ")
	}
	tip := m.renderTooltip()
	if tip != "" {
		tip = dimStyle.Render(tip + " ")
	}
	spacerW := max(0, contentWidth-lipgloss.Width(status)-lipgloss.Width(tip))
	right := lipgloss.Place(spacerW+lipgloss.Width(tip), 1, lipgloss.Right, lipgloss.Center, tip)
	statusLine := lipgloss.JoinHorizontal(lipgloss.Bottom, status, right)
	helpLine := dimStyle.Render(" " + m.help.View(m.keys))
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinVertical(lipgloss.Left, statusLine, helpLine))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}
