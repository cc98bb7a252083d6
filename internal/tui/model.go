// Package tui is the terminal front end: it loads a dataset, renders the
// chart controller's surfaces as braille and feeds it keyboard and mouse
// input from the Bubble Tea loop.
package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"popchart/internal/chart"
	"popchart/internal/dataset"
	"popchart/internal/surface"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// Options configures a Model.
type Options struct {
	// Path is the CSV to load at start. Empty opens the file picker.
	Path    string
	Variant chart.Variant
	// Select overrides the variant's initial key.
	Select string
	Policy dataset.Policy
}

type Model struct {
	width  int
	height int

	opts Options
	keys keyMap
	help help.Model

	showSidebar bool
	showFiles   bool
	showTable   bool

	status string
	err    error

	// File picker
	cwd   string
	files list.Model

	// Key selector
	selector list.Model

	// Data
	path    string
	data    dataset.Table
	scene   *surface.Scene
	ctl     *chart.Controller
	loading bool

	// chart area in cells, kept in step with the scene viewport
	chartCol, chartRow   int
	chartCols, chartRows int

	fading bool

	// series rows
	tbl table.Model
}

func New(opts Options) Model {
	m := Model{
		opts:   opts,
		keys:   newKeyMap(),
		help:   help.New(),
		status: "popchart ready",
	}
	m.cwd, _ = os.Getwd()

	fd := list.NewDefaultDelegate()
	fd.ShowDescription = false
	m.files = list.New(nil, fd, 0, 0)
	m.files.Title = "CSV files"
	m.files.SetShowHelp(false)
	m.files.SetShowStatusBar(false)
	m.files.SetFilteringEnabled(true)

	sd := list.NewDefaultDelegate()
	m.selector = list.New(nil, sd, 0, 0)
	m.selector.Title = string(opts.Variant.Mode)
	m.selector.SetShowHelp(false)
	m.selector.SetShowStatusBar(false)
	m.selector.SetFilteringEnabled(true)

	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)

	if opts.Path == "" {
		m.showFiles = true
		m.refreshDir()
	} else {
		m.loading = true
		m.status = "loading " + opts.Path
	}
	return m
}

// Init starts loading the dataset given on the command line.
func (m Model) Init() tea.Cmd {
	if m.opts.Path == "" {
		return nil
	}
	return loadCmd(m.opts.Path, m.opts.Policy)
}

// Controller is the chart controller, nil until a dataset has loaded.
func (m Model) Controller() *chart.Controller { return m.ctl }

// Status is the footer status line.
func (m Model) Status() string { return m.status }
