package tui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"popchart/internal/chart"
	"popchart/internal/dataset"
	"popchart/internal/surface"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.EqualFold(filepath.Ext(name), ".csv") {
			continue
		}
		items = append(items, fileItem{title: name, desc: ".csv", path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.files.SetItems(items)
	if len(items) == 0 {
		m.status = "no csv files in current directory"
	}
}

// loadedMsg carries the result of loadCmd back into Update.
type loadedMsg struct {
	path  string
	table dataset.Table
	err   error
}

// loadCmd reads path off the Update loop.
func loadCmd(path string, policy dataset.Policy) tea.Cmd {
	return func() tea.Msg {
		t, err := dataset.LoadCSV(path, policy)
		return loadedMsg{path: path, table: t, err: err}
	}
}

// applyLoaded swaps in a freshly loaded dataset and builds its controller.
func (m *Model) applyLoaded(msg loadedMsg) {
	m.loading = false
	if msg.err != nil {
		m.err = msg.err
		m.status = "load error: " + msg.err.Error()
		log.Printf("load %s: %v", msg.path, msg.err)
		return
	}

	v := m.opts.Variant
	if m.opts.Select != "" {
		v.Initial = m.opts.Select
	}
	scene := surface.NewScene(v.Width, v.Height)
	ctl, err := chart.New(v, msg.table.Rows, scene)
	if err != nil {
		m.err = err
		m.status = "chart error: " + err.Error()
		return
	}
	m.err = nil
	m.path, m.data, m.scene, m.ctl = msg.path, msg.table, scene, ctl
	m.fading = false
	m.showFiles = false

	m.status = fmt.Sprintf("loaded %s: %d rows", filepath.Base(msg.path), len(msg.table.Rows))
	if n := len(msg.table.Malformed); n > 0 {
		m.status += fmt.Sprintf(", %d malformed (%s)", n, m.opts.Policy)
	}
	if m.opts.Select != "" && ctl.Current() != m.opts.Select {
		m.err = fmt.Errorf("%w %q", chart.ErrUnknownKey, m.opts.Select)
		m.status = m.err.Error()
	}
	log.Printf("load %s: %d rows, %d malformed", msg.path, len(msg.table.Rows), len(msg.table.Malformed))

	m.refreshSelector()
	m.refreshTable()
	m.layout()
}
