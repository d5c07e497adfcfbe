// Package tui is the terminal front-end: the same Controller as the desktop
// window, driven by bubbletea.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/habedi/tf2cu/app"
	"github.com/habedi/tf2cu/messages"
	"github.com/rs/zerolog/log"
)

var (
	cText   = lipgloss.Color("#C7BCA2")
	cButton = lipgloss.Color("#A39884")
	cDanger = lipgloss.Color("#E06C5B")
	cFaint  = lipgloss.Color("#6E665E")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(cButton).MarginBottom(1)
	lineStyle   = lipgloss.NewStyle().Foreground(cText)
	errorStyle  = lipgloss.NewStyle().Foreground(cDanger)
	footerStyle = lipgloss.NewStyle().Foreground(cFaint).MarginTop(1)
)

// manifestDoneMsg is delivered once the background manifest load ends.
type manifestDoneMsg struct{}

// Model is the bubbletea model. It owns no state of its own beyond input
// handling; everything shown comes from the Controller.
type Model struct {
	ctrl     *app.Controller
	printer  *messages.Printer
	remember func(string)

	input   textinput.Model
	spinner spinner.Model
	editing bool
}

// NewModel returns a Model for c. remember may be nil.
func NewModel(c *app.Controller, p *messages.Printer, remember func(string)) Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/Steam"
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(cButton)

	return Model{ctrl: c, printer: p, remember: remember, input: ti, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForManifest(m.ctrl.Done()))
}

func waitForManifest(done <-chan struct{}) tea.Cmd {
	if done == nil {
		return nil
	}
	return func() tea.Msg {
		<-done
		return manifestDoneMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "enter", "o":
			m.editing = true
			m.input.SetValue(m.ctrl.Snapshot().Root)
			m.input.CursorEnd()
			focus := m.input.Focus()
			return m, tea.Batch(focus, textinput.Blink)
		}
		return m, nil

	case manifestDoneMsg:
		if m.ctrl.Poll() {
			log.Debug().Msg("Manifest arrived, redrawing")
		}
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.Snapshot().Manifest.Status != app.Pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.editing = false
		m.input.Blur()
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			m.ctrl.Dispatch(app.LocationPickCancelled{})
			return m, nil
		}
		m.ctrl.Dispatch(app.LocationChangeRequested{Path: path})
		if m.remember != nil {
			m.remember(path)
		}
		return m, nil
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		m.ctrl.Dispatch(app.LocationPickCancelled{})
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	s := m.ctrl.Snapshot()
	var b strings.Builder
	b.WriteString(titleStyle.Render("TF2C Updater"))
	b.WriteString("\n")

	lines := m.printer.Lines(s)
	pendingLine := -1
	if s.Installation != nil && s.Manifest.Status == app.Pending {
		pendingLine = 2
	}
	for i, line := range lines {
		style := lineStyle
		if i == len(lines)-1 && s.LocationErr != nil && !s.LocationErr.Kind.Benign() {
			style = errorStyle
		}
		if i == pendingLine {
			line = m.spinner.View() + " " + line
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(footerStyle.Render("enter: confirm • esc: cancel"))
	} else {
		b.WriteString(footerStyle.Render(m.printer.SelectButton(s) + " (enter) • q: quit"))
	}
	b.WriteString("\n")
	return b.String()
}

// Run blocks until the user quits or ctx ends.
func Run(ctx context.Context, c *app.Controller, p *messages.Printer, remember func(string)) error {
	_, err := tea.NewProgram(NewModel(c, p, remember), tea.WithContext(ctx)).Run()
	return err
}
