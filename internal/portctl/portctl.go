// Package portctl implements the operations the desktop shell and the CLI
// invoke: greeting, loopback port probing and forced termination of every
// process listening on a port.
package portctl

import (
	"fmt"
	"sort"

	"github.com/productdevbook/port-killer/native/internal/scanner"
	"github.com/rs/zerolog"
)

// Controller runs port operations against a platform Scanner. It holds no
// state between calls.
type Controller struct {
	scanner scanner.Scanner
	probe   func(port uint16) bool
	logger  zerolog.Logger
}

// New returns a Controller that discovers and kills processes through s.
func New(s scanner.Scanner, logger zerolog.Logger) *Controller {
	return &Controller{
		scanner: s,
		probe:   scanner.IsPortInUse,
		logger:  logger.With().Str("component", "portctl").Logger(),
	}
}

// Greet returns a greeting that embeds name verbatim.
func (c *Controller) Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
}

// IsPortInUse reports whether 127.0.0.1:port cannot be bound right now.
func (c *Controller) IsPortInUse(port uint16) bool {
	inUse := c.probe(port)
	c.logger.Debug().Uint16("port", port).Bool("in_use", inUse).Msg("probed port")
	return inUse
}

// ForceKillProcessOnPort forcibly terminates every process listening on
// port. Finding no listener is success. The first failure aborts the
// sequence and is returned; processes after it are left running.
func (c *Controller) ForceKillProcessOnPort(port uint16) error {
	pids, err := c.scanner.Listeners(port)
	if err != nil {
		c.logger.Error().Err(err).Uint16("port", port).Msg("discovery failed")
		return err
	}
	if len(pids) == 0 {
		c.logger.Debug().Uint16("port", port).Msg("no listeners")
		return nil
	}

	c.logger.Debug().Uint16("port", port).Strs("pids", pids).Msg("found listeners")

	for _, pid := range pids {
		if err := c.scanner.Kill(pid); err != nil {
			c.logger.Error().Err(err).Uint16("port", port).Str("pid", pid).Msg("kill failed")
			return err
		}
		c.logger.Info().Uint16("port", port).Str("pid", pid).Msg("killed process")
	}
	return nil
}

// Listeners returns every listening TCP port sorted by port then PID.
func (c *Controller) Listeners() ([]scanner.Port, error) {
	ports, err := c.scanner.Scan()
	if err != nil {
		return nil, fmt.Errorf("failed to scan ports: %w", err)
	}

	sort.Slice(ports, func(i, j int) bool {
		if ports[i].Port != ports[j].Port {
			return ports[i].Port < ports[j].Port
		}
		return ports[i].PID < ports[j].PID
	})
	return ports, nil
}
