package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/truncate"
	"github.com/productdevbook/port-killer/native/internal/config"
	"github.com/productdevbook/port-killer/native/internal/logging"
	"github.com/productdevbook/port-killer/native/internal/portctl"
	"github.com/productdevbook/port-killer/native/internal/scanner"
	"github.com/productdevbook/port-killer/native/internal/tui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	version    = "0.1.0"
	jsonOutput bool
	verbose    bool
	logger     = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "portkiller",
	Short: "A fast port killer for developers",
	Long: `portkiller is a cross-platform CLI tool to list and kill processes listening on ports.

Run without arguments in a terminal to open the interactive view.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.New("portkiller", verbose, os.Stderr)
	},
	RunE: runRoot,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(killCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(greetCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.Version = version
}

func newController() *portctl.Controller {
	return portctl.New(scanner.New(), logger)
}

// newTUIController returns a controller that stays silent: the TUI owns the
// terminal, and any log line would be drawn over the alt screen.
func newTUIController(s scanner.Scanner) *portctl.Controller {
	return portctl.New(s, zerolog.Nop())
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !jsonOutput && isatty.IsTerminal(os.Stdout.Fd()) {
		return tui.Start(newTUIController(scanner.New()), config.NewStore())
	}
	return runList(cmd, args)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTable(ports []scanner.Port, cfg *config.Config) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PORT\tPID\tPROCESS\tUSER\tADDRESS\t")
	fmt.Fprintln(w, "----\t---\t-------\t----\t-------\t")

	for _, p := range ports {
		user := p.User
		if user == "" {
			user = "-"
		}
		fav := ""
		if cfg.IsFavorite(p.Port) {
			fav = "★"
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n", p.Port, p.PID, truncate.StringWithTail(p.Process, 32, "…"), user, p.Address, fav)
	}

	return w.Flush()
}
