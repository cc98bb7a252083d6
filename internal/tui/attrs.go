package tui

import (
	"strconv"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"

	"popchart/internal/dataset"
	"popchart/internal/series"
)

type keyItem struct {
	key  string
	desc string
}

func (k keyItem) Title() string       { return k.key }
func (k keyItem) Description() string { return k.desc }
func (k keyItem) FilterValue() string { return k.key + " " + k.desc }

// refreshSelector fills the key selector from the controller's keys and
// highlights the current one.
func (m *Model) refreshSelector() {
	if m.ctl == nil {
		return
	}
	keys := m.ctl.Keys()
	items := make([]list.Item, len(keys))
	for i, k := range keys {
		desc := ""
		if m.ctl.Variant().Mode == series.ModeLocation {
			desc = dataset.DisplayName(k)
		}
		items[i] = keyItem{key: k, desc: desc}
	}
	m.selector.SetItems(items)
	m.syncSelector()
}

func (m *Model) syncSelector() {
	if m.ctl == nil {
		return
	}
	if i := m.ctl.Index(); i >= 0 {
		m.selector.Select(i)
	}
}

var seriesColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "location", Width: 10},
	{Title: "year", Width: 6},
	{Title: "population", Width: 14},
	{Title: "fertility", Width: 10},
	{Title: "life exp.", Width: 10},
}

// refreshTable rebuilds the table from the selected series.
func (m *Model) refreshTable() {
	if m.ctl == nil {
		return
	}
	rows := m.ctl.Series()
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		trows = append(trows, table.Row{
			strconv.Itoa(i + 1),
			r.Location,
			strconv.Itoa(r.Time),
			cell(r.PopMlns),
			cell(r.FertilityRate),
			cell(r.LifeExpectancy),
		})
	}
	// clear rows before columns so the table never sees a mismatch
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(seriesColumns)
	m.tbl.SetRows(trows)
}

func cell(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
