package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/productdevbook/port-killer/native/internal/scanner"
)

type portsMsg struct {
	ports []scanner.Port
	err   error
}

type killedMsg struct {
	port int
	err  error
}

type tickMsg time.Time

func waitTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) refresh() tea.Cmd {
	return func() tea.Msg {
		ports, err := m.ports.Listeners()
		return portsMsg{ports: ports, err: err}
	}
}

func (m Model) kill(port int) tea.Cmd {
	return func() tea.Msg {
		return killedMsg{port: port, err: m.ports.ForceKillProcessOnPort(uint16(port))}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if h := msg.Height - 6; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case tickMsg:
		if m.input.Focused() || m.confirming {
			return m, waitTick()
		}
		return m, tea.Batch(m.refresh(), waitTick())

	case portsMsg:
		if msg.err != nil {
			m.setStatus(msg.err.Error(), true)
			return m, nil
		}
		m.all = msg.ports
		m.applyFilter()
		return m, nil

	case killedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Kill on port %d failed: %v", msg.port, msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("Killed every process on port %d", msg.port), false)
		}
		return m, m.refresh()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirming {
		m.confirming = false
		if msg.String() == "y" || msg.String() == "Y" {
			m.setStatus(fmt.Sprintf("Killing port %d...", m.confirmPort), false)
			return m, m.kill(m.confirmPort)
		}
		m.setStatus("Kill cancelled", false)
		return m, nil
	}

	if m.input.Focused() {
		switch msg.String() {
		case "esc":
			m.input.SetValue("")
			m.input.Blur()
			m.applyFilter()
			return m, nil
		case "enter":
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.status = ""
		return m, m.input.Focus()
	case "r":
		return m, m.refresh()
	case "x":
		if p, ok := m.selected(); ok {
			m.confirming = true
			m.confirmPort = p.Port
		}
		return m, nil
	case "f":
		if p, ok := m.selected(); ok {
			m.toggleFavorite(p.Port)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) toggleFavorite(port int) {
	added := m.cfg.ToggleFavorite(port)
	if m.store != nil {
		if err := m.store.Save(m.cfg); err != nil {
			m.setStatus(fmt.Sprintf("Saving favorites failed: %v", err), true)
			return
		}
	}
	if added {
		m.setStatus(fmt.Sprintf("Port %d added to favorites", port), false)
	} else {
		m.setStatus(fmt.Sprintf("Port %d removed from favorites", port), false)
	}
	m.applyFilter()
}

func (m Model) selected() (scanner.Port, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.filtered) {
		return scanner.Port{}, false
	}
	return m.filtered[i], true
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *Model) applyFilter() {
	m.filtered = filterPorts(m.all, m.input.Value())
	m.table.SetRows(buildRows(m.filtered, m.cfg))
	if c := m.table.Cursor(); c >= len(m.filtered) {
		m.table.SetCursor(max(len(m.filtered)-1, 0))
	}
}
