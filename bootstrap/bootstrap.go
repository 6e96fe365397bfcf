// Package bootstrap brings a freshly deployed light client into its genesis state.
package bootstrap

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/snowfork/snowbridge/lightclient-harness/chain/lightclient"
	"github.com/snowfork/snowbridge/lightclient-harness/fixtures"
	"github.com/snowfork/snowbridge/lightclient-harness/genesis"
)

// GenesisSource builds a genesis tuple from live chain data.
type GenesisSource interface {
	FetchGenesis(ctx context.Context, network string) (genesis.Tuple, error)
}

// Init sends the one initialization call and waits for it to settle. Calling it on an
// initialized contract returns lightclient.ErrAlreadyInitialized.
func Init(ctx context.Context, contract lightclient.Contract, tuple genesis.Tuple, settler Settler) error {
	log.WithFields(log.Fields{
		"contract":       contract.Address(),
		"network":        tuple.Network,
		"executionBlock": tuple.ExecutionBlockNumber(),
		"beaconSlot":     tuple.BeaconSlot(),
	}).Info("Initializing light client")

	err := contract.Init(ctx, tuple)
	if err != nil {
		return fmt.Errorf("initialize light client: %w", err)
	}

	err = settler.Settle(ctx, contract, tuple)
	if err != nil {
		return fmt.Errorf("settle initialization: %w", err)
	}

	return nil
}

// LoadGenesis reads a fixture set and correlates it into a genesis tuple.
func LoadGenesis(ctx context.Context, loader *fixtures.Loader) (genesis.Tuple, error) {
	bundle, err := loader.Load(ctx)
	if err != nil {
		return genesis.Tuple{}, err
	}

	return genesis.Correlate(bundle)
}

func FromFiles(ctx context.Context, contract lightclient.Contract, loader *fixtures.Loader, settler Settler) (genesis.Tuple, error) {
	tuple, err := LoadGenesis(ctx, loader)
	if err != nil {
		return genesis.Tuple{}, err
	}

	return tuple, Init(ctx, contract, tuple, settler)
}

func FromLive(ctx context.Context, contract lightclient.Contract, source GenesisSource, network string, settler Settler) (genesis.Tuple, error) {
	tuple, err := source.FetchGenesis(ctx, network)
	if err != nil {
		return genesis.Tuple{}, fmt.Errorf("fetch genesis for %s: %w", network, err)
	}

	return tuple, Init(ctx, contract, tuple, settler)
}
