package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubetrainer"
	"github.com/SeamusWaldron/cubetrainer/internal/analysis"
	"github.com/SeamusWaldron/cubetrainer/internal/config"
	"github.com/SeamusWaldron/cubetrainer/internal/device"
	"github.com/SeamusWaldron/cubetrainer/internal/render"
	"github.com/SeamusWaldron/cubetrainer/internal/stickering"
	"github.com/SeamusWaldron/cubetrainer/internal/trainer"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	caseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// recentRows is how many solves the times table shows.
const recentRows = 8

var now = time.Now

// Messages
type stateMsg trainer.State
type batteryMsg int
type solvedMsg cubetrainer.SolveStat
type deviceErrMsg struct{ err error }
type errMsg struct{ err error }

// Model
type trainModel struct {
	setName string
	state   trainer.State
	history []cubetrainer.SolveStat // solves from earlier sessions

	sim   *device.Simulator
	input textinput.Model
	times table.Model

	renderers map[bool]*render.Renderer // keyed by hint display
	battery   int
	last      *cubetrainer.SolveStat
	err       error

	dispatch     func(trainer.Event)
	saveSettings func(config.Settings) error
}

func newTrainModel(setName string, state trainer.State, history []cubetrainer.SolveStat, sim *device.Simulator) *trainModel {
	m := &trainModel{
		setName: setName,
		state:   state,
		history: history,
		sim:     sim,
		battery: -1,
	}

	m.times = table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 5},
			{Title: "Case", Width: 18},
			{Title: "Exec", Width: 7},
			{Title: "Recog", Width: 7},
			{Title: "TPS", Width: 5},
		}),
		table.WithHeight(recentRows),
	)
	m.refreshTimes()

	if sim != nil {
		m.input = textinput.New()
		m.input.Placeholder = "R U R' U'"
		m.input.Prompt = "moves> "
		m.input.CharLimit = 200
		m.input.Focus()
	}
	return m
}

func (m *trainModel) Init() tea.Cmd {
	if m.sim != nil {
		return textinput.Blink
	}
	return nil
}

// solves returns every solve of the set, oldest first.
func (m *trainModel) solves() []cubetrainer.SolveStat {
	all := make([]cubetrainer.SolveStat, 0, len(m.history)+len(m.state.Stats))
	all = append(all, m.history...)
	return append(all, m.state.Stats...)
}

func (m *trainModel) refreshTimes() {
	all := m.solves()
	var rows []table.Row
	for i := len(all) - 1; i >= 0 && len(rows) < recentRows; i-- {
		s := all[i]
		rows = append(rows, table.Row{
			fmt.Sprint(i + 1),
			s.Name,
			analysis.Seconds(s.Execution),
			analysis.Seconds(s.Recognition),
			fmt.Sprintf("%.1f", analysis.TPS(s)),
		})
	}
	m.times.SetRows(rows)
}

func (m *trainModel) send(ev trainer.Event) tea.Cmd {
	return func() tea.Msg {
		if m.dispatch != nil {
			m.dispatch(ev)
		}
		return nil
	}
}

func (m *trainModel) cycle(f config.Field) tea.Cmd {
	s, err := m.state.Settings.Cycle(f)
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	save := m.saveSettings
	return func() tea.Msg {
		if save == nil {
			return nil
		}
		if err := save(s); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (m *trainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "ctrl+n":
			return m, m.send(trainer.Skip{At: now()})
		case "ctrl+r":
			return m, m.send(trainer.SelectEntry{Index: -1, At: now()})
		case "ctrl+p":
			return m, m.cycle(config.FieldPlaylistMode)
		case "ctrl+l":
			return m, m.cycle(config.FieldLoopMode)
		case "enter":
			if m.sim != nil {
				text := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				m.err = nil
				if text != "" {
					if err := m.sim.SendAlg(text); err != nil {
						m.err = err
					}
				}
				return m, nil
			}
		}
		if m.sim != nil {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

	case stateMsg:
		m.state = trainer.State(msg)
		if m.renderers == nil && m.state.Puzzle != nil {
			m.renderers = map[bool]*render.Renderer{
				false: render.New(m.state.Puzzle),
				true:  render.New(m.state.Puzzle, render.WithHints(true)),
			}
		}
		m.refreshTimes()

	case batteryMsg:
		m.battery = int(msg)

	case solvedMsg:
		stat := cubetrainer.SolveStat(msg)
		m.last = &stat

	case deviceErrMsg:
		m.err = fmt.Errorf("device: %w", msg.err)

	case errMsg:
		m.err = msg.err
	}
	return m, nil
}

func (m *trainModel) View() string {
	var b strings.Builder
	s := m.state

	b.WriteString(titleStyle.Render("Cube Trainer: " + m.setName))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n\n")

	switch {
	case s.Phase == trainer.Finished:
		b.WriteString(caseStyle.Render("Every case done."))
		b.WriteString("\n")
		b.WriteString("Press ctrl+r to start again.\n")
	case !s.PuzzleReady() || s.Phase == trainer.Uninitialized:
		b.WriteString("Preparing puzzle...\n")
	default:
		entry, _ := s.Entry()
		b.WriteString(caseStyle.Render(fmt.Sprintf("Case %d/%d: %s", s.Index+1, s.Set.Len(), entry.Name)))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Setup: %s\n", s.SetupAlg))
		b.WriteString(fmt.Sprintf("Target: %s   Solved: %s\n", s.Effective, satisfiedList(s.Satisfied&s.Effective)))
		b.WriteString("\n")
		b.WriteString(m.net())
		b.WriteString("\n")
		if len(s.Moves) > 0 {
			moves := make(cubetrainer.Alg, len(s.Moves))
			for i, tm := range s.Moves {
				moves[i] = tm.Move
			}
			b.WriteString("Moves: ")
			b.WriteString(moveStyle.Render(moves.Condense().String()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.last != nil {
		b.WriteString(fmt.Sprintf("Last: %s in %s (recognition %s)\n",
			m.last.Name, analysis.Seconds(m.last.Execution), analysis.Seconds(m.last.Recognition)))
	}
	sum := analysis.Summarize(m.solves())
	best := "-"
	if sum.HasBest {
		best = analysis.Seconds(sum.Best)
	}
	b.WriteString(fmt.Sprintf("Solves: %d   Best: %s", sum.N, best))
	for _, a := range sum.Averages[:2] {
		b.WriteString(fmt.Sprintf("   ao%d: %s", a.Size, analysis.FormatAverage(a)))
	}
	b.WriteString("\n")
	b.WriteString(m.times.View())
	b.WriteString("\n\n")

	if m.sim != nil {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("ctrl+n skip  ctrl+r restart  ctrl+p playlist  ctrl+l loop  esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *trainModel) statusLine() string {
	s := m.state
	conn := "Waiting for cube..."
	if s.Connected {
		conn = "Connected"
		if m.sim != nil {
			conn = "Simulator"
		}
		if m.battery >= 0 {
			conn += fmt.Sprintf(" (Battery: %d%%)", m.battery)
		}
	}
	return fmt.Sprintf("%s   playlist: %s   loop: %s", conn, s.Settings.PlaylistMode, s.Settings.LoopMode)
}

func (m *trainModel) net() string {
	pat, ok := m.state.Pattern()
	if !ok || m.renderers == nil {
		return ""
	}
	var mask stickering.Mask
	if m.state.Settings.UseMaskings {
		mask = m.state.Mask
	}
	return m.renderers[m.state.Settings.ShowHintFacelets].Net(pat, mask)
}
