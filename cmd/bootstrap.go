package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/snowfork/snowbridge/lightclient-harness/config"
	"github.com/snowfork/snowbridge/lightclient-harness/harness"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header"
)

func bootstrapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Deploy the light client to a sandbox chain and initialize it",
		Args:  cobra.ExactArgs(0),
		RunE:  bootstrapFn,
	}

	cmd.Flags().String("config", "", "Path to configuration file, defaults apply when omitted")
	cmd.Flags().Bool("live", false, "Initialize from the live beacon and eth1 endpoints instead of fixtures")
	cmd.Flags().Uint("cycles", 0, "Relay cycles to run against the initialized contract")
	cmd.Flags().Bool("binary-search", true, "Locate the resume point by bisection")

	return cmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	if path == "" {
		cfg := config.Default()
		return &cfg, nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func bootstrapFn(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	live, _ := cmd.Flags().GetBool("live")
	cycles, _ := cmd.Flags().GetUint("cycles")
	binarySearch, _ := cmd.Flags().GetBool("binary-search")

	ctx := context.Background()

	driver, err := harness.BuildRelayDriver(ctx, cfg, binarySearch, !live)
	if err != nil {
		return err
	}
	defer driver.Close()

	encoded, err := driver.Genesis.Encode()
	if err != nil {
		return err
	}

	fmt.Printf("contract: %s\n", driver.Contract.Address())
	fmt.Printf("relay account: %s\n", driver.Environment.Account.Address())
	fmt.Printf("execution block: %d %s\n", driver.Genesis.ExecutionBlockNumber(), driver.Genesis.ExecutionBlockHash())
	fmt.Printf("beacon block: %d %s\n", driver.Genesis.BeaconSlot(), driver.Genesis.BeaconBlockRoot())
	fmt.Printf("genesis: %s\n", hexutil.Encode(encoded))

	for i := uint(0); i < cycles; i++ {
		err = driver.Relay.SyncOnce(ctx)
		switch {
		case err == nil:
		case errors.Is(err, header.ErrFinalizedHeaderNotImported),
			errors.Is(err, header.ErrFinalizedHeaderUnchanged),
			errors.Is(err, header.ErrNoNewHeaders):
			log.WithError(err).WithField("cycle", i).Debug("relay cycle made no progress")
		default:
			return fmt.Errorf("relay cycle %d: %w", i, err)
		}
	}

	if cycles > 0 {
		finalized, err := driver.Contract.FinalizedExecutionBlock(ctx)
		if err != nil {
			return err
		}
		last, err := driver.Contract.LastBlockNumber(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("after %d cycles: finalized %d %s, last %d\n", cycles, finalized.Number, finalized.Hash, last)
	}

	return nil
}
