package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/floppy-monster/internal/storage"
)

// History layout constants
const (
	historyMaxRuns = 100 // Max runs to load
	historyChrome  = 10  // Rows used by title, stats, borders and help
)

// historyOrder selects which runs the table lists.
type historyOrder int

const (
	orderRecent historyOrder = iota // Newest first
	orderBest                       // Highest score first
)

func (o historyOrder) String() string {
	if o == orderBest {
		return "best runs"
	}
	return "recent runs"
}

// HistoryModel shows the runs of this process in a table.
// It is embedded in Model and shown from the menu or the results panel.
type HistoryModel struct {
	store  *storage.Store
	keys   KeyMap
	table  table.Model
	help   help.Model
	order  historyOrder
	runs   []storage.RunRecord
	stats  storage.RunStats
	err    error
	width  int
	height int
}

// NewHistoryModel creates a history view over the given run log.
// A nil store shows an empty history.
func NewHistoryModel(store *storage.Store, keys KeyMap, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:  store,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 7},
		{Title: "Cause", Width: 10},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-historyChrome, 3)),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Reload reads the runs for the current order from the store.
func (m *HistoryModel) Reload() {
	m.runs, m.stats, m.err = nil, storage.RunStats{}, nil
	if m.store != nil {
		var runs []storage.RunRecord
		var err error
		if m.order == orderBest {
			runs, err = m.store.TopRuns(historyMaxRuns)
		} else {
			runs, err = m.store.RecentRuns(historyMaxRuns)
		}
		if err != nil {
			m.err = err
		}
		m.runs = runs

		if stats, err := m.store.Stats(); err == nil {
			m.stats = *stats
		} else if m.err == nil {
			m.err = err
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		score := fmt.Sprintf("%d", r.Score)
		if r.NewBest {
			score += " *"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			score,
			fmt.Sprintf("%d", r.Ticks),
			r.Cause,
			r.CreatedAt.Local().Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// SetSize adapts the table to a new terminal size.
func (m *HistoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table = m.createTable()
	m.updateTableRows()
	m.help.Width = width
}

// Update scrolls the table, switches between recent and best runs and
// clears the log. Leaving the view is handled by Model.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	var cmd tea.Cmd
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Order):
			m.order = (m.order + 1) % 2
			m.Reload()
		case key.Matches(msg, m.keys.Clear):
			if m.store != nil {
				if err := m.store.Clear(); err != nil {
					m.err = err
					return m, nil
				}
			}
			m.Reload()
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
		}
		return m, cmd
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("RUN HISTORY", m.width)))
	b.WriteString("\n")
	orderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	b.WriteString(orderStyle.Render(centerText("< "+m.order.String()+" >", m.width)))
	b.WriteString("\n\n")

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	stats := fmt.Sprintf("Runs: %d   Best: %d   Avg: %.1f", m.stats.Runs, m.stats.Best, m.stats.AvgScore)
	b.WriteString(statsStyle.Render(centerText(stats, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.renderTableContent())))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.HistoryHelp())))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.err != nil {
		return emptyStyle.Render("Run history unavailable:\n" + m.err.Error())
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No runs yet.\nFly through a gap to set a score!")
	}
	return m.table.View()
}

// centerText pads text with spaces to center it within width.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}
