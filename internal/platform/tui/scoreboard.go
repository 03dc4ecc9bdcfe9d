package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

const (
	statsPanelWidth  = 24
	minWidthForStats = 76 // below this the stats panel folds into one line
)

// levelFilters are cycled with "f". The empty filter shows every round.
var levelFilters = append([]string{""}, Difficulties...)

type scoreboardKeys struct {
	Scroll key.Binding
	Game   key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Game, k.Filter, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var scoreKeys = scoreboardKeys{
	Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
	Game:   key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"), key.WithHelp("tab/←/→", "game")),
	Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "level")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardModel lists every recorded round of one game at a time,
// optionally narrowed to one difficulty level.
type ScoreboardModel struct {
	store  *storage.Store
	games  []registry.GameInfo
	game   int
	filter int

	all   []storage.ScoreEntry // every round of the current game, best first
	stats *storage.GameStats

	table table.Model
	help  help.Model

	width, height int
	quitting      bool
	goingBack     bool
	embedded      bool // inside SessionModel: back returns control instead of quitting
}

// NewScoreboardModel creates a scoreboard showing the first registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForStats
}

func (m ScoreboardModel) newTable() table.Model {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Player", Width: 12},
		{Title: "Level", Width: 7},
		{Title: "Date", Width: 12},
	}
	if !m.wide() && m.width < 52 {
		cols = []table.Column{cols[0], cols[1], cols[4]}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)
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

// reload fetches the current game's rounds and stats from the store.
func (m *ScoreboardModel) reload() {
	m.all, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.game].ID
		if all, err := m.store.AllScores(id); err == nil {
			m.all = all
		}
		if st, err := m.store.GetGameStats(id); err == nil {
			m.stats = st
		}
	}
	m.fillRows()
}

// visible applies the level filter.
func (m ScoreboardModel) visible() []storage.ScoreEntry {
	level := levelFilters[m.filter]
	if level == "" {
		return m.all
	}
	var out []storage.ScoreEntry
	for _, e := range m.all {
		if e.Difficulty == level {
			out = append(out, e)
		}
	}
	return out
}

func (m *ScoreboardModel) fillRows() {
	entries := m.visible()
	full := len(m.table.Columns()) == 5
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		date := e.CreatedAt.Format("Jan 02 15:04")
		if !full {
			rows = append(rows, table.Row{fmt.Sprint(i + 1), fmt.Sprint(e.Score), date})
			continue
		}
		level := e.Difficulty
		if level == "" {
			level = "-"
		}
		rows = append(rows, table.Row{fmt.Sprint(i + 1), fmt.Sprint(e.Score), e.Player, level, date})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchGame(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.game = (m.game + delta + len(m.games)) % len(m.games)
	m.reload()
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
		case key.Matches(msg, scoreKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, scoreKeys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, scoreKeys.Game):
			switch msg.String() {
			case "shift+tab", "left", "h":
				m.switchGame(-1)
			default:
				m.switchGame(1)
			}
			return m, nil
		case key.Matches(msg, scoreKeys.Filter):
			m.filter = (m.filter + 1) % len(levelFilters)
			m.fillRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	body := boardPanelStyle.Render(m.tableView())
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", boardPanelStyle.Width(statsPanelWidth).Render(m.statsView()))
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, body, boardDimStyle.Render(m.statsLine()))
	}
	b.WriteString(centerBlock(body, m.width))
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(scoreKeys)))
	return b.String()
}

func (m ScoreboardModel) tabs() string {
	parts := make([]string, 0, len(m.games)+1)
	for i, g := range m.games {
		if i == m.game {
			parts = append(parts, boardActiveTab.Render(g.Title))
		} else {
			parts = append(parts, boardTabStyle.Render(g.Title))
		}
	}
	level := levelFilters[m.filter]
	if level == "" {
		level = "all"
	}
	parts = append(parts, boardDimStyle.Render("  level: "+level))
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m ScoreboardModel) tableView() string {
	if len(m.visible()) == 0 {
		return boardDimStyle.Italic(true).Padding(1, 2).Render("No scores recorded yet.\nPlay a round to set one!")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsView() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "No rounds yet"
	}
	return fmt.Sprintf("Rounds   %d\nBest     %d\nAverage  %.1f\nTotal    %d\nLast     %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalScore,
		m.stats.LastPlayed.Format("Jan 02"))
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d rounds  best %d  avg %.1f", m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore)
}

// centerBlock centers every line of a multi-line block by its widest line.
func centerBlock(block string, width int) string {
	pad := (width - lipgloss.Width(block)) / 2
	if pad <= 0 {
		return block
	}
	return lipgloss.NewStyle().MarginLeft(pad).Render(block)
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program. It returns true
// when the player went back rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
