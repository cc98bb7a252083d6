package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"popchart/internal/surface"
)

// fadeMsg is one animation frame for the overlay fade.
type fadeMsg time.Time

const frameInterval = time.Second / 30

func fadeTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return fadeMsg(t) })
}

// offChart is where the cursor is taken to be when it leaves the chart.
var offChart = surface.Point{X: -1e9, Y: -1e9}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
	case loadedMsg:
		m.applyLoaded(msg)
	case fadeMsg:
		if m.ctl != nil && m.ctl.Tick(time.Time(msg)) {
			return m, fadeTick()
		}
		m.fading = false
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// a filtering list gets every key
	if l := m.activeList(); l != nil && l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		*l, cmd = l.Update(msg)
		return m, cmd
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Prev):
		m.step(-1)
	case key.Matches(msg, m.keys.Next):
		m.step(1)
	case key.Matches(msg, m.keys.Selector):
		m.showSidebar = !m.showSidebar
		m.showFiles = false
		m.syncSelector()
		m.layout()
	case key.Matches(msg, m.keys.Files):
		m.showFiles = !m.showFiles
		if m.showFiles {
			m.refreshDir()
		}
		m.layout()
	case key.Matches(msg, m.keys.Table):
		m.showTable = !m.showTable
		if m.showTable {
			m.refreshTable()
		}
	case key.Matches(msg, m.keys.Open):
		if m.showFiles {
			if it, ok := m.files.SelectedItem().(fileItem); ok {
				m.loading = true
				m.status = "loading " + it.title
				return m, loadCmd(it.path, m.opts.Policy)
			}
			return m, nil
		}
		if m.showSidebar && m.ctl != nil {
			if it, ok := m.selector.SelectedItem().(keyItem); ok {
				if err := m.ctl.Select(it.key); err != nil {
					m.status = err.Error()
				} else {
					m.afterSelect()
				}
			}
		}
	default:
		var cmd tea.Cmd
		if l := m.activeList(); l != nil {
			*l, cmd = l.Update(msg)
		} else if m.showTable {
			m.tbl, cmd = m.tbl.Update(msg)
		}
		return m, cmd
	}
	cmd := m.fadeCmd()
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ctl == nil || m.scene == nil || m.showTable {
		return m, nil
	}
	p, ok := m.scene.FromScreen(msg.X, msg.Y)
	if !ok {
		p = offChart
	}
	if m.ctl.HoverAt(p, m.hoverTolerance()) {
		if row, ok := m.ctl.Hovered(); ok {
			m.status = fmt.Sprintf("%s %d", row.Location, row.Time)
		}
	}
	// fadeCmd sets m.fading, so it must run before m is copied out
	cmd := m.fadeCmd()
	return m, cmd
}

// activeList is the list shown in the sidebar, if any.
func (m *Model) activeList() *list.Model {
	switch {
	case m.showFiles:
		return &m.files
	case m.showSidebar:
		return &m.selector
	}
	return nil
}

func (m *Model) step(delta int) {
	if m.ctl == nil {
		return
	}
	var moved bool
	if delta < 0 {
		moved = m.ctl.Prev()
	} else {
		moved = m.ctl.Next()
	}
	if !moved {
		if delta < 0 {
			m.status = "at first " + string(m.ctl.Variant().Mode)
		} else {
			m.status = "at last " + string(m.ctl.Variant().Mode)
		}
		return
	}
	m.afterSelect()
}

func (m *Model) afterSelect() {
	m.syncSelector()
	m.refreshTable()
	m.status = fmt.Sprintf("%s %s (%d/%d)", m.ctl.Variant().Mode, m.ctl.Current(), m.ctl.Index()+1, len(m.ctl.Keys()))
	if err := m.ctl.LastErr(); err != nil {
		m.status = err.Error()
	}
}

// fadeCmd starts the frame ticker when the overlay begins a fade.
func (m *Model) fadeCmd() tea.Cmd {
	if m.fading || m.ctl == nil {
		return nil
	}
	if ov := m.ctl.Overlay(); ov == nil || !ov.Animating() {
		return nil
	}
	m.fading = true
	return fadeTick()
}

// hoverTolerance is one and a half cells in surface pixels.
func (m *Model) hoverTolerance() float64 {
	if m.chartCols <= 0 || m.chartRows <= 0 {
		return 0
	}
	cw := m.scene.Width / float64(m.chartCols)
	ch := m.scene.Height / float64(m.chartRows)
	return 1.5 * max(cw, ch)
}

// layout sizes the sidebar lists and places the chart viewport.
func (m *Model) layout() {
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	col := 0
	if m.showSidebar || m.showFiles {
		col = sidebarWidth + 1
	}
	m.chartCol, m.chartRow = col, headerHeight
	m.chartCols = max(10, m.width-col)
	m.chartRows = contentHeight
	m.files.SetSize(sidebarWidth-2, contentHeight-2)
	m.selector.SetSize(sidebarWidth-2, contentHeight-2)
	if m.scene != nil {
		m.scene.SetViewport(m.chartCol, m.chartRow, m.chartCols, m.chartRows)
	}
}
