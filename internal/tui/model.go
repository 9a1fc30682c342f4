// Package tui is the interactive terminal view of listening ports.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/productdevbook/port-killer/native/internal/config"
	"github.com/productdevbook/port-killer/native/internal/scanner"
)

const refreshInterval = 5 * time.Second

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")). // White
			Background(lipgloss.Color("#D7263D")). // Red
			Padding(0, 1)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#5f5fd7")). // Purple/Blue
				Bold(true).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("#585858")). // Dark Gray
				Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5f5fd7")).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676")). // Dimmed Gray
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f5f")). // Soft red
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5fd75f")) // Green

	confirmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaf5f")). // Orange-amber
			Bold(true)
)

// Ports is what the view needs from the port operations.
type Ports interface {
	Listeners() ([]scanner.Port, error)
	ForceKillProcessOnPort(port uint16) error
}

// Model is the bubbletea model for the port list.
type Model struct {
	ports Ports
	store config.Store
	cfg   *config.Config

	table    table.Model
	input    textinput.Model
	all      []scanner.Port
	filtered []scanner.Port

	confirming  bool
	confirmPort int
	status      string
	statusErr   bool
	width       int
	height      int
}

// New builds the initial model. store may be nil, which disables favorites.
func New(ports Ports, store config.Store) Model {
	columns := []table.Column{
		{Title: "", Width: 2},
		{Title: "Port", Width: 6},
		{Title: "PID", Width: 8},
		{Title: "Process", Width: 24},
		{Title: "User", Width: 12},
		{Title: "Address", Width: 24},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = tableHeaderStyle
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#ffffaf")). // Light Yellow
		Background(lipgloss.Color("#5f00d7")). // Purple
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "Filter port, process, user, address..."
	ti.CharLimit = 64
	ti.Width = 50
	ti.Prompt = "/ "
	ti.PromptStyle = promptStyle
	ti.Blur()

	cfg := &config.Config{}
	if store != nil {
		if loaded, err := store.Load(); err == nil {
			cfg = loaded
		}
	}

	return Model{
		ports: ports,
		store: store,
		cfg:   cfg,
		table: t,
		input: ti,
	}
}

// Start runs the interactive view until the user quits.
func Start(ports Ports, store config.Store) error {
	p := tea.NewProgram(New(ports, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refresh(), waitTick())
}
