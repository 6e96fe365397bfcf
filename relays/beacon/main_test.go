package beacon_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snowfork/snowbridge/lightclient-harness/bootstrap"
	"github.com/snowfork/snowbridge/lightclient-harness/chain/lightclient"
	"github.com/snowfork/snowbridge/lightclient-harness/config"
	"github.com/snowfork/snowbridge/lightclient-harness/fixtures"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header"
	"github.com/snowfork/snowbridge/lightclient-harness/sandbox"
)

func TestRelayOnSandbox(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Sandbox.ContractPath = filepath.Join("..", "..", "data", "eth_client.bin")
	cfg.Fixtures.Dir = filepath.Join("..", "..", "data")

	env, err := sandbox.NewProvisioner(cfg.Sandbox).Provision(ctx)
	require.NoError(t, err)
	defer env.Close()

	contract, err := lightclient.NewEthClientContract(env.Wrapper())
	require.NoError(t, err)

	loader, err := fixtures.NewLoader(cfg.Fixtures)
	require.NoError(t, err)
	bundle, err := loader.Load(ctx)
	require.NoError(t, err)

	settler, err := bootstrap.NewSettler(cfg.Settle)
	require.NoError(t, err)
	_, err = bootstrap.FromFiles(ctx, contract, loader, settler)
	require.NoError(t, err)

	relay := beacon.NewRelay(
		&cfg,
		contract,
		header.NewFixtureHeaderSource(bundle.ExecutionHeaders),
		header.NewFixtureUpdateSource(bundle.LightClientUpdates),
		beacon.Options{EnableBinarySearch: true, ValidateHeaders: true},
	)

	for i := 0; i < 10; i++ {
		err := relay.SyncOnce(ctx)
		switch {
		case err == nil:
		case errors.Is(err, header.ErrFinalizedHeaderNotImported):
		case errors.Is(err, header.ErrFinalizedHeaderUnchanged):
		default:
			t.Fatalf("cycle %d: %v", i, err)
		}
	}

	finalized, err := contract.FinalizedExecutionBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, bundle.ExecutionHeaders[49].Hash(), finalized.Hash)

	beaconBlock, err := contract.FinalizedBeaconBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, bundle.LightClientUpdates[3].FinalizedSlot(), beaconBlock.Number)

	last, err := contract.LastBlockNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(5000049), last)
}
