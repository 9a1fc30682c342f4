package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var killCmd = &cobra.Command{
	Use:   "kill <port>",
	Short: "Force kill every process listening on a port",
	Long: `Force kill every process that is listening on the specified TCP port.
Uses taskkill /F on Windows and kill -9 elsewhere. A port nobody listens on is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runKill,
}

func runKill(cmd *cobra.Command, args []string) error {
	port, err := parsePort(args[0])
	if err != nil {
		return err
	}

	if err := newController().ForceKillProcessOnPort(port); err != nil {
		return fmt.Errorf("failed to kill processes on port %d: %w", port, err)
	}

	if jsonOutput {
		return printJSON(map[string]any{"port": port, "killed": true})
	}
	fmt.Printf("Port %d is clear\n", port)
	return nil
}
