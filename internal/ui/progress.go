package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	cprogress "cclex/internal/progress"
)

const (
	labelQueued = "queued"
	labelDone   = "done"
	labelError  = "error"
)

// stageInfo: подпись стадии в списке и её вклад в общий прогресс файла.
var stageInfo = map[cprogress.Stage]struct {
	label  string
	weight float64
}{
	cprogress.StageLoad:   {"loading", 0.2},
	cprogress.StageLex:    {"lexing", 0.5},
	cprogress.StageRender: {"rendering", 0.9},
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	workingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

type unitRow struct {
	path   string
	label  string
	stage  cprogress.Stage
	tokens int
}

func (r *unitRow) finished() bool { return r.label == labelDone || r.label == labelError }

type progressModel struct {
	title      string
	events     <-chan cprogress.Event
	spinner    spinner.Model
	bar        progress.Model
	rows       []unitRow
	byPath     map[string]int
	stageLabel string // стадия всего запуска, например rendering
	width      int
	done       bool
}

type (
	eventMsg  cprogress.Event
	closedMsg struct{}
)

// NewProgressModel returns a Bubble Tea model listing files and their stage.
// It quits once events is closed.
func NewProgressModel(title string, files []string, events <-chan cprogress.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = workingStyle

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 76

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     bar,
		rows:    make([]unitRow, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for i, f := range files {
		m.rows[i] = unitRow{path: f, label: labelQueued}
		m.byPath[f] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.applyEvent(cprogress.Event(msg)), m.next())
	case closedMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width, m.bar.Width = msg.Width, msg.Width-4
		}
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.header()))
	b.WriteString("\n\n")

	nameWidth := max(m.width-26, 20)
	for i := range m.rows {
		r := &m.rows[i]
		fmt.Fprintf(&b, "  %s %s", styleFor(r.label).Render(fmt.Sprintf("%12s", r.label)), truncate(r.path, nameWidth))
		if r.label == labelDone {
			fmt.Fprintf(&b, "  %d tokens", r.tokens)
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteByte('\n')
	return b.String()
}

func (m *progressModel) header() string {
	h := m.title
	if m.stageLabel != "" {
		h += " (" + m.stageLabel + ")"
	}
	if m.done {
		return "done: " + h
	}
	return m.spinner.View() + " " + h
}

// next ждёт одно событие из канала; закрытый канал завершает модель.
func (m *progressModel) next() tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-m.events; ok {
			return eventMsg(ev)
		}
		return closedMsg{}
	}
}

func (m *progressModel) applyEvent(ev cprogress.Event) tea.Cmd {
	label := labelFor(ev.Stage, ev.Status)
	if ev.File == "" {
		if label != "" {
			m.stageLabel = label
		}
		return nil
	}
	i, ok := m.byPath[ev.File]
	// load done не означает, что файл готов: впереди ещё lex
	if !ok || (ev.Stage == cprogress.StageLoad && ev.Status == cprogress.StatusDone) {
		return nil
	}
	r := &m.rows[i]
	if label != "" {
		r.label, r.stage = label, ev.Stage
	}
	if ev.Tokens > 0 {
		r.tokens = ev.Tokens
	}
	return m.bar.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.rows) == 0 {
		return 0
	}
	var sum float64
	for i := range m.rows {
		if m.rows[i].finished() {
			sum++
		} else {
			sum += stageInfo[m.rows[i].stage].weight
		}
	}
	return sum / float64(len(m.rows))
}

func labelFor(stage cprogress.Stage, status cprogress.Status) string {
	switch status {
	case cprogress.StatusQueued:
		return labelQueued
	case cprogress.StatusDone:
		return labelDone
	case cprogress.StatusError:
		return labelError
	case cprogress.StatusWorking:
		return stageInfo[stage].label
	}
	return ""
}

func styleFor(label string) lipgloss.Style {
	switch label {
	case labelDone:
		return doneStyle
	case labelError:
		return errorStyle
	case labelQueued, "":
		return idleStyle
	}
	return workingStyle
}

// truncate cuts value to width display cells, adding "..." when there is room.
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	tail := "..."
	if width <= len(tail) {
		tail = ""
	}
	return runewidth.Truncate(value, width, tail)
}
