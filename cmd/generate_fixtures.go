package cmd

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/snowfork/snowbridge/lightclient-harness/chain/ethereum"
	"github.com/snowfork/snowbridge/lightclient-harness/config"
	"github.com/snowfork/snowbridge/lightclient-harness/fixtures"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/api"
)

func generateFixturesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-fixtures",
		Short: "Pull a fixture set from live endpoints and write it to the fixture directory",
		Args:  cobra.ExactArgs(0),
		RunE:  generateFixturesFn,
	}

	cmd.Flags().String("config", "", "Path to configuration file, defaults apply when omitted")
	cmd.Flags().Uint64("headers", 50, "Execution headers to fetch, starting at the finalized one")
	cmd.Flags().String("out", "", "Output directory, overrides fixtures.dir")

	return cmd
}

func generateFixturesFn(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	count, _ := cmd.Flags().GetUint64("headers")
	if count == 0 {
		return fmt.Errorf("%w: headers must be positive", config.ErrInvalidField)
	}
	out, _ := cmd.Flags().GetString("out")
	if out != "" {
		cfg.Fixtures.Dir = out
	}

	ctx := context.Background()

	conn := ethereum.NewConnection(&config.EthereumConfig{Endpoint: cfg.Eth1Endpoint}, nil)
	err = conn.Connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	s := syncer.New(api.NewBeaconClient(cfg.BeaconEndpoint), conn.Client(), cfg.Spec)

	bundle, err := s.FetchBundle(ctx, cfg.Network, count)
	if err != nil {
		return err
	}

	fixtureConfig := cfg.Fixtures
	fixtureConfig.Network = cfg.Network
	fixtureConfig.StartBlock = bundle.ExecutionHeaders[0].Number.Uint64()
	fixtureConfig.EndBlock = bundle.ExecutionHeaders[len(bundle.ExecutionHeaders)-1].Number.Uint64()
	fixtureConfig.CurrentPeriod = cfg.Spec.ComputeSyncPeriodAtSlot(bundle.LightClientUpdates[0].FinalizedSlot())
	fixtureConfig.NextPeriod = fixtureConfig.CurrentPeriod + 1

	writer, err := fixtures.NewWriter(fixtureConfig)
	if err != nil {
		return err
	}

	err = writer.Write(bundle)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"dir":        fixtureConfig.Dir,
		"startBlock": fixtureConfig.StartBlock,
		"endBlock":   fixtureConfig.EndBlock,
		"period":     fixtureConfig.CurrentPeriod,
	}).Info("generated fixture set")

	return nil
}
