// Package ui renders the terminal progress view of multi-file checks.
package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/biomejs/biome-sub001/internal/driver"
)

// stageView is how a working file is shown: its label and the share of the
// file's work done when the stage starts.
type stageView struct {
	label  string
	weight float64
}

var stages = map[driver.Stage]stageView{
	driver.StageLoad:   {"loading", 0.05},
	driver.StageParse:  {"parsing", 0.2},
	driver.StageLint:   {"linting", 0.6},
	driver.StageVerify: {"verifying", 0.8},
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	workingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	queuedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

const statusWidth = 12

type fileRow struct {
	path    string
	status  driver.Status
	stage   driver.Stage
	elapsed time.Duration
}

func (r fileRow) label() string {
	if r.status == driver.StatusWorking {
		return stages[r.stage].label
	}
	return string(r.status)
}

func (r fileRow) style() lipgloss.Style {
	switch r.status {
	case driver.StatusDone:
		return doneStyle
	case driver.StatusError:
		return errorStyle
	case driver.StatusWorking:
		return workingStyle
	}
	return queuedStyle
}

func (r fileRow) share() float64 {
	if r.status.Finished() {
		return 1
	}
	return stages[r.stage].weight
}

type progressModel struct {
	title    string
	events   <-chan driver.Event
	spinner  spinner.Model
	bar      progress.Model
	rows     []fileRow
	byPath   map[string]int
	finished int
	failed   int
	// runStage: стадия всего прогона из событий без файла
	runStage string
	width    int
	closed   bool
}

type eventMsg driver.Event
type closedMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders check progress.
// The model quits when events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(workingStyle))
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(76))

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     bar,
		rows:    make([]fileRow, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for i, f := range files {
		m.rows[i] = fileRow{path: f, status: driver.StatusQueued}
		m.byPath[f] = i
	}
	return m
}

// Run shows the progress view on out until events is closed.
func Run(title string, files []string, events <-chan driver.Event, out io.Writer) error {
	_, err := tea.NewProgram(NewProgressModel(title, files, events), tea.WithOutput(out), tea.WithInput(nil)).Run()
	return err
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next)
}

// next blocks on the event channel; tea runs it in its own goroutine.
func (m *progressModel) next() tea.Msg {
	ev, ok := <-m.events
	if !ok {
		return closedMsg{}
	}
	return eventMsg(ev)
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.applyEvent(driver.Event(msg)), m.next)
	case closedMsg:
		m.closed = true
		return m, tea.Quit
	case spinner.TickMsg:
		if !m.closed {
			m.spinner, cmd = m.spinner.Update(msg)
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case progress.FrameMsg:
		var bar tea.Model
		bar, cmd = m.bar.Update(msg)
		m.bar = bar.(progress.Model)
	}
	return m, cmd
}

func (m *progressModel) applyEvent(ev driver.Event) tea.Cmd {
	if ev.File == "" {
		if view, ok := stages[ev.Stage]; ok && ev.Status == driver.StatusWorking {
			m.runStage = view.label
		}
		return nil
	}
	idx, ok := m.byPath[ev.File]
	if !ok || m.rows[idx].status.Finished() {
		return nil
	}
	row := &m.rows[idx]
	row.status = ev.Status
	if ev.Stage != "" {
		row.stage = ev.Stage
	}
	if ev.Status.Finished() {
		row.elapsed = ev.Elapsed
		m.finished++
		if ev.Status == driver.StatusError {
			m.failed++
		}
	}

	var sum float64
	for _, r := range m.rows {
		sum += r.share()
	}
	return m.bar.SetPercent(sum / float64(len(m.rows)))
}

func (m *progressModel) header() string {
	h := fmt.Sprintf("%s %d/%d", m.title, m.finished, len(m.rows))
	if m.failed > 0 {
		h += fmt.Sprintf(", %d with errors", m.failed)
	}
	if m.runStage != "" && !m.closed {
		h += " (" + m.runStage + ")"
	}
	if m.closed {
		return "done: " + h
	}
	return m.spinner.View() + " " + h
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.header()))
	b.WriteString("\n\n")

	nameWidth := max(m.width-statusWidth-14, 20)
	for _, r := range m.rows {
		status := r.style().Render(fmt.Sprintf("%*s", statusWidth, r.label()))
		fmt.Fprintf(&b, "  %s %s", status, truncate(r.path, nameWidth))
		if r.elapsed > 0 {
			fmt.Fprintf(&b, " %s", r.elapsed.Round(time.Millisecond))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.closed {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteByte('\n')
	return b.String()
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	return runewidth.Truncate(value, width, "…")
}
