package cmd

import (
	"fmt"

	"github.com/productdevbook/port-killer/native/internal/config"
	"github.com/spf13/cobra"
)

var favoriteCmd = &cobra.Command{
	Use:     "favorite",
	Aliases: []string{"fav"},
	Short:   "Manage favorite ports shared with the desktop app",
}

var favoriteAddCmd = &cobra.Command{
	Use:   "add <port>",
	Short: "Add a port to favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateConfig(args[0], func(cfg *config.Config, port int) string {
			cfg.AddFavorite(port)
			return fmt.Sprintf("Port %d added to favorites", port)
		})
	},
}

var favoriteRemoveCmd = &cobra.Command{
	Use:     "remove <port>",
	Aliases: []string{"rm"},
	Short:   "Remove a port from favorites",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateConfig(args[0], func(cfg *config.Config, port int) string {
			cfg.RemoveFavorite(port)
			return fmt.Sprintf("Port %d removed from favorites", port)
		})
	},
}

var favoriteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite ports",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewStore().Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if jsonOutput {
			return printJSON(cfg.Favorites)
		}
		if len(cfg.Favorites) == 0 {
			fmt.Println("No favorite ports.")
			return nil
		}
		for _, p := range cfg.Favorites {
			fmt.Println(p)
		}
		return nil
	},
}

func init() {
	favoriteCmd.AddCommand(favoriteAddCmd, favoriteRemoveCmd, favoriteListCmd)
}

// updateConfig loads the shared config, applies fn for the parsed port and
// saves the result.
func updateConfig(arg string, fn func(cfg *config.Config, port int) string) error {
	port, err := parsePort(arg)
	if err != nil {
		return err
	}

	store := config.NewStore()
	cfg, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	msg := fn(cfg, int(port))
	if err := store.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Println(msg)
	return nil
}
