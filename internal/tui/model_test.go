package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"popchart/internal/chart"
	"popchart/internal/dataset"
)

const sampleCSV = `location,time,pop_mlns,fertility_rate,life_expectancy
AUS,2000,19.15,1.76,79.2
AUS,2001,19.4,1.74,79.6
AUS,2002,19.6,1.75,80.0
NZL,2000,3.86,1.98,78.6
NZL,2001,3.88,1.96,78.8
BRA,2000,174.5,2.36,70.1
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pop.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func variant(t *testing.T, name string) chart.Variant {
	t.Helper()
	v, err := chart.Presets().Get(name)
	require.NoError(t, err)
	return v
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// loaded runs the model's load command and feeds the result back in.
func loaded(t *testing.T, opts Options) Model {
	t.Helper()
	m := New(opts)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	cmd := m.Init()
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	require.NotNil(t, m.Controller())
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestLoadBuildsController(t *testing.T) {
	m := loaded(t, Options{Path: writeSample(t), Variant: variant(t, "line")})
	assert.Equal(t, "AUS", m.Controller().Current())
	assert.Contains(t, m.Status(), "6 rows")
	assert.NotEmpty(t, m.View())
}

func TestLoadErrorShownInStatus(t *testing.T) {
	m := New(Options{Path: "missing.csv", Variant: variant(t, "line")})
	msg := m.Init()()
	m, _ = update(t, m, msg)
	assert.Nil(t, m.Controller())
	assert.Contains(t, m.Status(), "load error")
	assert.True(t, errors.Is(m.err, dataset.ErrDataLoad))
}

func TestSelectFlagOverridesInitial(t *testing.T) {
	m := loaded(t, Options{Path: writeSample(t), Variant: variant(t, "line"), Select: "NZL"})
	assert.Equal(t, "NZL", m.Controller().Current())
	assert.NoError(t, m.err)
}

func TestPrevNextKeys(t *testing.T) {
	m := loaded(t, Options{Path: writeSample(t), Variant: variant(t, "line")})

	m, _ = update(t, m, runes("]"))
	assert.Equal(t, "BRA", m.Controller().Current())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "NZL", m.Controller().Current())
	m, _ = update(t, m, runes("]"))
	assert.Equal(t, "NZL", m.Controller().Current())
	assert.Contains(t, m.Status(), "at last")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "BRA", m.Controller().Current())
	m, _ = update(t, m, runes("["))
	assert.Equal(t, "AUS", m.Controller().Current())
}

func TestSelectorChoosesKey(t *testing.T) {
	m := loaded(t, Options{Path: writeSample(t), Variant: variant(t, "line")})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.showSidebar)
	assert.Len(t, m.selector.Items(), 3)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "BRA", m.Controller().Current())
}

func TestMouseHoverStartsFade(t *testing.T) {
	m := loaded(t, Options{Path: writeSample(t), Variant: variant(t, "line")})
	ctl := m.Controller()
	p := ctl.Mapper().Project(ctl.Series()[1])
	col, row := ctl.Canvas().ScreenPos(p.X, p.Y)

	m, cmd := update(t, m, tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionMotion})
	assert.True(t, ctl.Hovering())
	assert.NotNil(t, cmd)
	assert.True(t, m.fading)
	assert.NotEmpty(t, m.renderTooltip())

	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	assert.False(t, ctl.Hovering())
	assert.Empty(t, m.renderTooltip())
}

func TestTableToggle(t *testing.T) {
	m := loaded(t, Options{Path: writeSample(t), Variant: variant(t, "line")})
	m, _ = update(t, m, runes("t"))
	assert.True(t, m.showTable)
	assert.Len(t, m.tbl.Rows(), 3)
	m, _ = update(t, m, runes("]"))
	assert.Len(t, m.tbl.Rows(), 1)
}

func TestQuit(t *testing.T) {
	m := New(Options{Variant: variant(t, "line")})
	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestFadeRunsOneTickChain(t *testing.T) {
	m := loaded(t, Options{Path: writeSample(t), Variant: variant(t, "line")})
	ctl := m.Controller()
	s := ctl.Series()
	p := ctl.Mapper().Project(s[0])
	col, row := ctl.Canvas().ScreenPos(p.X, p.Y)

	m, cmd := update(t, m, tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionMotion})
	require.NotNil(t, cmd)
	require.True(t, m.fading)

	// still fading: moving again must not start a second ticker
	p = ctl.Mapper().Project(s[2])
	col, row = ctl.Canvas().ScreenPos(p.X, p.Y)
	m, cmd = update(t, m, tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionMotion})
	assert.Nil(t, cmd)
	assert.True(t, m.fading)

	m, cmd = update(t, m, fadeMsg(time.Now().Add(time.Second)))
	assert.Nil(t, cmd)
	assert.False(t, m.fading)
	assert.Equal(t, 1.0, ctl.Overlay().Opacity())
	assert.Contains(t, m.renderChart(), "╭")
}
