package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <port>",
	Short: "Check whether a port is in use",
	Long:  `Check whether a TCP listener can be bound on 127.0.0.1 at the given port. The answer is a snapshot and may change immediately.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

type portState struct {
	Port  uint16 `json:"port"`
	InUse bool   `json:"inUse"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	port, err := parsePort(args[0])
	if err != nil {
		return err
	}

	state := portState{Port: port, InUse: newController().IsPortInUse(port)}
	if jsonOutput {
		return printJSON(state)
	}
	fmt.Println(describeState(state))
	return nil
}

func describeState(s portState) string {
	if s.InUse {
		return fmt.Sprintf("Port %d is in use", s.Port)
	}
	return fmt.Sprintf("Port %d is free", s.Port)
}
