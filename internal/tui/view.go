package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	title := titleStyle.Render("portkiller") + footerStyle.Render(fmt.Sprintf("%d listening", len(m.filtered)))

	var status string
	switch {
	case m.confirming:
		status = confirmStyle.Render(fmt.Sprintf("Force kill every process on port %d? (y/N)", m.confirmPort))
	case m.statusErr:
		status = errorStyle.Render(m.status)
	case m.status != "":
		status = okStyle.Render(m.status)
	}

	body := m.table.View()
	if len(m.filtered) == 0 {
		body = footerStyle.Render("No listening ports found.")
	}

	help := footerStyle.Render("↑/↓ move • / filter • x kill • f favorite • r refresh • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.input.View(),
		body,
		status,
		help,
	)
}
