package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var greetCmd = &cobra.Command{
	Use:    "greet [name]",
	Short:  "Print a greeting from the native layer",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(newController().Greet(strings.Join(args, " ")))
		return nil
	},
}
