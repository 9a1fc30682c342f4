package cmd

import (
	"fmt"

	"github.com/productdevbook/port-killer/native/internal/config"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all listening ports",
	Long:  `List all TCP ports currently in LISTEN state with their associated processes. Favorites are marked with ★.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	ports, err := newController().Listeners()
	if err != nil {
		return err
	}

	if len(ports) == 0 {
		if jsonOutput {
			fmt.Println("[]")
		} else {
			fmt.Println("No listening ports found.")
		}
		return nil
	}

	if jsonOutput {
		return printJSON(ports)
	}

	cfg, err := config.NewStore().Load()
	if err != nil {
		logger.Warn().Err(err).Msg("could not load favorites")
		cfg = &config.Config{}
	}
	return printTable(ports, cfg)
}
