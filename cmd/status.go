package cmd

import (
	"fmt"

	"github.com/productdevbook/port-killer/native/internal/config"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether favorite and watched ports are in use",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewStore().Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	c := newController()
	states := make([]portState, 0)
	for _, p := range cfg.TrackedPorts() {
		if p <= 0 || p > 65535 {
			continue
		}
		port := uint16(p)
		states = append(states, portState{Port: port, InUse: c.IsPortInUse(port)})
	}

	if jsonOutput {
		return printJSON(states)
	}
	if len(states) == 0 {
		fmt.Println("No favorite or watched ports. Add one with `portkiller favorite add <port>`.")
		return nil
	}
	for _, s := range states {
		fmt.Println(describeState(s))
	}
	return nil
}
