package run

import (
	"github.com/snowfork/snowbridge/lightclient-harness/cmd/run/relay"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start a relay service",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(relay.Command())

	return cmd
}
