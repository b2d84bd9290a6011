// Package tui provides the Bubble Tea game interface.
package tui

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KR1PT1CS/LP1SpeedType/internal/game"
	"github.com/KR1PT1CS/LP1SpeedType/internal/sentences"
	statsPkg "github.com/KR1PT1CS/LP1SpeedType/internal/stats"
)

type screen int

const (
	screenTyping screen = iota
	screenResults
)

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cursorStyle    = pendingStyle.Underline(true)
	metricStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea game UI. It owns the session's rolling
// history and is its only writer.
type Model struct {
	list     []string
	picker   *sentences.Picker
	history  *game.History
	useColor bool

	input        textinput.Model
	historyTable table.Model

	screen screen
	width  int
	height int

	targetRunes []rune
	round       int
	started     bool
	startedAt   time.Time
	errMsg      string

	last game.Result
}

// NewModel constructs a game UI model over the given sentence list.
func NewModel(list []string, picker *sentences.Picker, history *game.History, useColor bool) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 0
	input.Focus()

	m := &Model{
		list:         list,
		picker:       picker,
		history:      history,
		useColor:     useColor,
		input:        input,
		historyTable: newHistoryTable(),
	}
	m.nextRound()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = contentWidth(m.width)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.screen == screenResults {
			return m.updateResults(msg)
		}
		return m.updateTyping(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		m.submit()
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		if !m.started {
			m.started = true
			m.startedAt = time.Now()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.nextRound()
		return m, nil
	case "q", "esc":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.historyTable, cmd = m.historyTable.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if len(m.targetRunes) == 0 {
		return ""
	}
	var content string
	if m.screen == screenResults {
		content = m.viewResults()
	} else {
		content = m.viewTyping()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) viewTyping() string {
	target := wrapStyled(buildStyledRunes(m.targetRunes, []rune(m.input.Value())), contentWidth(m.width))
	lines := []string{
		titleStyle.Render("Type the sentence and press Enter"),
		"",
		target,
		"",
		m.input.View(),
	}
	if m.errMsg != "" {
		lines = append(lines, "", errorStyle.Render(m.errMsg))
	}
	lines = append(lines, "", footerStyle.Render("enter: submit  esc: quit"))
	return strings.Join(lines, "\n")
}

func (m *Model) viewResults() string {
	var chart bytes.Buffer
	_ = statsPkg.RenderBuckets(&chart, m.history.BucketCounts(), m.useColor)
	var summary bytes.Buffer
	_ = statsPkg.RenderSummary(&summary, m.history.Entries())

	lines := []string{
		titleStyle.Render(fmt.Sprintf("Round %d", m.round)),
		metricStyle.Render(fmt.Sprintf("%.2f WPM · %d%% accuracy · %.1fs", m.last.WPM, m.last.Accuracy, m.last.TimeTaken)),
		"",
		m.historyTable.View(),
		"",
		titleStyle.Render("Accuracy distribution"),
		strings.TrimRight(chart.String(), "\n"),
		"",
		strings.TrimRight(summary.String(), "\n"),
		"",
		footerStyle.Render("enter: next round  q: quit"),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) submit() {
	elapsed := 0.0
	if m.started {
		elapsed = time.Since(m.startedAt).Seconds()
	}
	m.finishRound(m.input.Value(), elapsed)
}

func (m *Model) finishRound(typed string, elapsedSeconds float64) {
	res, err := game.Evaluate(typed, string(m.targetRunes), elapsedSeconds)
	if err != nil {
		// No valid timing measurement for this round; keep it armed.
		m.errMsg = "nothing typed yet; the timer starts on the first keystroke"
		return
	}
	m.errMsg = ""
	m.last = res
	m.round++
	m.history.Record(res)
	m.historyTable.SetRows(buildHistoryRows(m.history.Entries()))
	m.screen = screenResults
}

func (m *Model) nextRound() {
	m.targetRunes = []rune(m.picker.Pick(m.list))
	m.input.Reset()
	m.started = false
	m.startedAt = time.Time{}
	m.errMsg = ""
	m.screen = screenTyping
}

func newHistoryTable() table.Model {
	columns := []table.Column{
		{Title: "Round", Width: 11},
		{Title: "WPM", Width: 7},
		{Title: "Accuracy", Width: 8},
		{Title: "Time", Width: 7},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(game.HistorySize),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true)
	styles.Selected = styles.Cell.Foreground(lipgloss.Color("#F0F0F0"))
	t.SetStyles(styles)
	return t
}

func buildHistoryRows(entries []game.Result) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		label := fmt.Sprintf("#%d", i+1)
		if i == 0 {
			label += " (latest)"
		}
		rows = append(rows, table.Row{
			label,
			fmt.Sprintf("%.2f", e.WPM),
			fmt.Sprintf("%d%%", e.Accuracy),
			fmt.Sprintf("%.1fs", e.TimeTaken),
		})
	}
	return rows
}

func contentWidth(total int) int {
	if total <= 0 {
		return 60
	}
	w := int(float64(total) * 0.70)
	if w < 20 {
		w = 20
	}
	return w
}
