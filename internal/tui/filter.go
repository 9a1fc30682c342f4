package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/muesli/reflow/truncate"
	"github.com/productdevbook/port-killer/native/internal/config"
	"github.com/productdevbook/port-killer/native/internal/scanner"
	"github.com/sahilm/fuzzy"
)

// portSource adapts a port list to fuzzy.Source.
type portSource []scanner.Port

func (s portSource) String(i int) string {
	p := s[i]
	return fmt.Sprintf("%d %s %s %s", p.Port, p.Process, p.User, p.Address)
}

func (s portSource) Len() int { return len(s) }

// filterPorts returns the ports matching query, best match first. An empty
// query keeps every port in its original order.
func filterPorts(ports []scanner.Port, query string) []scanner.Port {
	query = strings.TrimSpace(query)
	if query == "" {
		return ports
	}

	matches := fuzzy.FindFrom(query, portSource(ports))
	out := make([]scanner.Port, 0, len(matches))
	for _, match := range matches {
		out = append(out, ports[match.Index])
	}
	return out
}

func buildRows(ports []scanner.Port, cfg *config.Config) []table.Row {
	rows := make([]table.Row, 0, len(ports))
	for _, p := range ports {
		star := ""
		if cfg != nil && cfg.IsFavorite(p.Port) {
			star = "★"
		}
		user := p.User
		if user == "" {
			user = "-"
		}
		rows = append(rows, table.Row{
			star,
			strconv.Itoa(p.Port),
			strconv.Itoa(p.PID),
			truncate.StringWithTail(p.Process, 24, "…"),
			truncate.StringWithTail(user, 12, "…"),
			truncate.StringWithTail(p.Address, 24, "…"),
		})
	}
	return rows
}
