package main

import (
	"embed"
	"os"

	"github.com/productdevbook/port-killer/native/internal/desktop"
	"github.com/productdevbook/port-killer/native/internal/logging"
	"github.com/productdevbook/port-killer/native/internal/portctl"
	"github.com/productdevbook/port-killer/native/internal/scanner"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	logger := logging.New("portkiller-app", os.Getenv("PORTKILLER_DEBUG") != "", os.Stderr)

	app := desktop.NewApp(portctl.New(scanner.New(), logger), logger)

	err := wails.Run(&options.App{
		Title:     "Port Killer",
		Width:     960,
		Height:    640,
		MinWidth:  640,
		MinHeight: 480,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup:  app.Startup,
		OnShutdown: app.Shutdown,
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to run desktop app")
	}
}
