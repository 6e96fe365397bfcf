package cmd

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/snowfork/snowbridge/lightclient-harness/bootstrap"
	"github.com/snowfork/snowbridge/lightclient-harness/fixtures"
)

func correlateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "correlate",
		Short:   "Report the genesis a fixture set initializes the light client with",
		Args:    cobra.ExactArgs(0),
		Example: "lightclient-harness correlate --config harness.json",
		RunE:    correlateFn,
	}

	cmd.Flags().String("config", "", "Path to configuration file, defaults apply when omitted")
	cmd.Flags().Bool("encode", false, "Also print the SCALE encoded genesis")

	return cmd
}

func correlateFn(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	loader, err := fixtures.NewLoader(cfg.Fixtures)
	if err != nil {
		return err
	}

	tuple, err := bootstrap.LoadGenesis(context.Background(), loader)
	if err != nil {
		return err
	}

	fmt.Printf("network: %s\n", tuple.Network)
	fmt.Printf("execution block: %d %s\n", tuple.ExecutionBlockNumber(), tuple.ExecutionBlockHash())
	fmt.Printf("beacon block: %d %s\n", tuple.BeaconSlot(), tuple.BeaconBlockRoot())

	encode, _ := cmd.Flags().GetBool("encode")
	if encode {
		encoded, err := tuple.Encode()
		if err != nil {
			return err
		}
		fmt.Printf("genesis: %s\n", hexutil.Encode(encoded))
	}

	return nil
}
