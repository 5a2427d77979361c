package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lightsout/internal/registry"
	"github.com/vovakirdan/lightsout/internal/storage"
)

// scorePane selects what the scoreboard table lists.
type scorePane int

const (
	paneSessions scorePane = iota // best sessions by puzzles solved
	panePuzzles                   // most recent solved puzzles
)

const scoreboardRows = 50

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	sbPaneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	sbTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	sbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("98")).Padding(0, 1)
	sbBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("98")).Padding(0, 1)
	sbEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	sbStatsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// ScoreboardKeyMap holds the scoreboard bindings.
type ScoreboardKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	Pane        key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevVariant, k.NextVariant, k.Pane, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PrevVariant, k.NextVariant, k.Pane},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns the scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		NextVariant: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next board")),
		PrevVariant: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev board")),
		Pane:        key.NewBinding(key.WithKeys("v", " "), key.WithHelp("v", "sessions/puzzles")),
		Back:        key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists, per variant, either the best sessions or the most
// recent solved puzzles, above a summary of all puzzles solved.
type ScoreboardModel struct {
	store    *storage.Store
	variants []registry.GameInfo
	variant  int
	pane     scorePane

	sessions []storage.ScoreEntry
	puzzles  []storage.PuzzleResult
	stats    *storage.PuzzleStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first variant's best
// sessions. A nil store shows empty tables.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		store:    store,
		variants: registry.List(),
		keys:     DefaultScoreboardKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}
	m.reload()
	return m
}

// reload reads the selected variant's records and rebuilds the table.
func (m *ScoreboardModel) reload() {
	m.sessions, m.puzzles, m.stats = nil, nil, nil

	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.variant].ID
		if sessions, err := m.store.TopScores(id, scoreboardRows); err == nil {
			m.sessions = sessions
		}
		if puzzles, err := m.store.RecentResults(id, scoreboardRows); err == nil {
			m.puzzles = puzzles
		}
		if stats, err := m.store.ResultStats(id); err == nil {
			m.stats = stats
		}
	}

	m.rebuildTable()
}

// rebuildTable lays the table out for the current pane and screen size.
func (m *ScoreboardModel) rebuildTable() {
	var cols []table.Column
	var rows []table.Row
	if m.pane == panePuzzles {
		cols = puzzleColumns(m.width)
		rows = puzzleRows(m.puzzles)
	} else {
		cols = sessionColumns(m.width)
		rows = sessionRows(m.sessions)
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("98")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("98"))
	t.SetStyles(s)

	m.table = t
}

// whenWidth fits the date column into what is left of the screen.
func whenWidth(screenW, used int) int {
	return min(max(screenW-used-8, 6), 12)
}

func sessionColumns(screenW int) []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Solved", Width: 8},
		{Title: "When", Width: whenWidth(screenW, 12)},
	}
}

func sessionRows(entries []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func puzzleColumns(screenW int) []table.Column {
	return []table.Column{
		{Title: "Lvl", Width: 4},
		{Title: "Board", Width: 6},
		{Title: "Moves", Width: 7},
		{Title: "Par", Width: 4},
		{Title: "Time", Width: 7},
		{Title: "Hints", Width: 5},
		{Title: "When", Width: whenWidth(screenW, 33)},
	}
}

// puzzleRows formats solved puzzles. Moves at or under par are starred.
func puzzleRows(results []storage.PuzzleResult) []table.Row {
	rows := make([]table.Row, len(results))
	for i, r := range results {
		moves := fmt.Sprintf("%d", r.Moves)
		if r.Perfect() {
			moves += " *"
		}
		par := "-"
		if r.Par >= 0 {
			par = fmt.Sprintf("%d", r.Par)
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.Level+1),
			fmt.Sprintf("%dx%d", r.Rows, r.Cols),
			moves,
			par,
			formatDuration(r.DurationMS),
			fmt.Sprintf("%d", r.Hints),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// formatDuration renders a solve time as "12.3s" or "2m05s".
func formatDuration(ms int64) string {
	if ms < 60_000 {
		return fmt.Sprintf("%.1fs", float64(ms)/1000)
	}
	secs := ms / 1000
	return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextVariant):
			m.selectVariant(m.variant + 1)
			return m, nil

		case key.Matches(msg, m.keys.PrevVariant):
			m.selectVariant(m.variant - 1)
			return m, nil

		case key.Matches(msg, m.keys.Pane):
			if m.pane == paneSessions {
				m.pane = panePuzzles
			} else {
				m.pane = paneSessions
			}
			m.rebuildTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selectVariant switches to variant i, wrapping around the list.
func (m *ScoreboardModel) selectVariant(i int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.variant = ((i % n) + n) % n
	m.reload()
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(sbTitleStyle.Render("S C O R E S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	heading := "Best sessions"
	if m.pane == panePuzzles {
		heading = "Recent puzzles"
	}
	b.WriteString(centerStyled(sbPaneStyle.Render(heading), m.width))
	b.WriteString("\n")

	body := m.table.View()
	if len(m.table.Rows()) == 0 {
		body = sbEmptyStyle.Render(m.emptyMessage())
	}
	b.WriteString(centerStyled(sbBoxStyle.Render(body), m.width))
	b.WriteString("\n")

	if line := m.renderStats(); line != "" {
		b.WriteString("\n")
		b.WriteString(centerStyled(sbStatsStyle.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(m.help.View(m.keys), m.width))

	return b.String()
}

// renderTabs shows the variant IDs with the selected one highlighted, or
// just the selected title when the tabs don't fit.
func (m ScoreboardModel) renderTabs() string {
	if len(m.variants) == 0 {
		return sbTabStyle.Render("no boards")
	}

	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.variant {
			tabs[i] = sbActiveStyle.Render(v.ID)
		} else {
			tabs[i] = sbTabStyle.Render(v.ID)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width {
		line = sbActiveStyle.Render("< " + m.variants[m.variant].Title + " >")
	}
	return line
}

func (m ScoreboardModel) emptyMessage() string {
	if m.pane == panePuzzles {
		return "No puzzles solved on this board yet."
	}
	return "No sessions recorded yet."
}

// renderStats summarizes every solved puzzle of the selected variant.
func (m ScoreboardModel) renderStats() string {
	st := m.stats
	if st == nil || st.Solved == 0 {
		return ""
	}

	parts := []string{
		fmt.Sprintf("Solved %d", st.Solved),
		fmt.Sprintf("At par %d", st.Perfect),
		fmt.Sprintf("Fewest %d", st.FewestMoves),
		fmt.Sprintf("Avg %.1f", st.AvgMoves),
		fmt.Sprintf("Top level %d", st.BestLevel+1),
	}
	if st.FastestMS > 0 {
		parts = append(parts, "Fastest "+formatDuration(st.FastestMS))
	}
	if st.HintsUsed > 0 {
		parts = append(parts, fmt.Sprintf("Hints %d", st.HintsUsed))
	}
	return strings.Join(parts, " · ")
}

// IsGoingBack reports whether the user asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard in the current terminal. goBack is
// false when the user quit instead of returning to the menu.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
