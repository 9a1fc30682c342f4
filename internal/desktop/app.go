// Package desktop exposes the port operations to the desktop shell. App's
// exported methods are bound into the webview and called from the frontend.
package desktop

import (
	"context"

	"github.com/productdevbook/port-killer/native/internal/portctl"
	"github.com/rs/zerolog"
)

// Ports is the set of operations the frontend may call.
type Ports interface {
	Greet(name string) string
	IsPortInUse(port uint16) bool
	ForceKillProcessOnPort(port uint16) error
}

// App is the struct bound into the desktop shell.
type App struct {
	ports  Ports
	logger zerolog.Logger
}

// NewApp returns an App backed by the platform scanner.
func NewApp(ports *portctl.Controller, logger zerolog.Logger) *App {
	return newApp(ports, logger)
}

func newApp(ports Ports, logger zerolog.Logger) *App {
	return &App{
		ports:  ports,
		logger: logger.With().Str("component", "desktop").Logger(),
	}
}

// Startup is called once the shell has created the window.
func (a *App) Startup(ctx context.Context) {
	a.logger.Info().Msg("desktop app started")
}

// Shutdown is called when the shell exits.
func (a *App) Shutdown(ctx context.Context) {
	a.logger.Info().Msg("desktop app stopped")
}

// Greet returns a greeting for name.
func (a *App) Greet(name string) string {
	return a.ports.Greet(name)
}

// IsPortInUse reports whether port is taken on the loopback address.
func (a *App) IsPortInUse(port uint16) bool {
	return a.ports.IsPortInUse(port)
}

// ForceKillProcessOnPort kills every process listening on port. A non-nil
// error reaches the frontend as a rejected promise carrying its message.
func (a *App) ForceKillProcessOnPort(port uint16) error {
	if err := a.ports.ForceKillProcessOnPort(port); err != nil {
		a.logger.Warn().Err(err).Uint16("port", port).Msg("force kill failed")
		return err
	}
	return nil
}
