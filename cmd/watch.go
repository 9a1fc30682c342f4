package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/productdevbook/port-killer/native/internal/config"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Manage watched ports shared with the desktop app",
}

var watchAddCmd = &cobra.Command{
	Use:   "add <port>",
	Short: "Watch a port for start/stop notifications",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateConfig(args[0], func(cfg *config.Config, port int) string {
			cfg.AddWatched(port)
			return fmt.Sprintf("Watching port %d", port)
		})
	},
}

var watchRemoveCmd = &cobra.Command{
	Use:     "remove <port>",
	Aliases: []string{"rm"},
	Short:   "Stop watching a port",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateConfig(args[0], func(cfg *config.Config, port int) string {
			cfg.RemoveWatched(port)
			return fmt.Sprintf("Stopped watching port %d", port)
		})
	},
}

var watchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List watched ports",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewStore().Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if jsonOutput {
			return printJSON(cfg.WatchedPorts)
		}
		if len(cfg.WatchedPorts) == 0 {
			fmt.Println("No watched ports.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PORT\tON START\tON STOP\tID")
		for _, wp := range cfg.WatchedPorts {
			fmt.Fprintf(w, "%d\t%t\t%t\t%s\n", wp.Port, wp.NotifyOnStart, wp.NotifyOnStop, wp.ID)
		}
		return w.Flush()
	},
}

func init() {
	watchCmd.AddCommand(watchAddCmd, watchRemoveCmd, watchListCmd)
}
