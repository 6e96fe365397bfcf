package genesis_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/snowfork/snowbridge/lightclient-harness/fixtures"
	"github.com/snowfork/snowbridge/lightclient-harness/fixtures/fixturetest"
	"github.com/snowfork/snowbridge/lightclient-harness/genesis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelateAnchorsOnFirstUpdate(t *testing.T) {
	bundle := fixturetest.Bundle(fixturetest.DefaultOptions())

	tuple, err := genesis.Correlate(bundle)
	require.NoError(t, err)

	anchor := bundle.LightClientUpdates[0].FinalityUpdate.HeaderUpdate
	assert.Equal(t, common.HexToHash(anchor.ExecutionBlockHash), tuple.ExecutionBlockHash())
	assert.Equal(t, bundle.ExecutionHeaders[3], tuple.ExecutionHeader)
	assert.Equal(t, uint64(5000003), tuple.ExecutionBlockNumber())
	assert.Equal(t, anchor.BeaconHeader.Slot, tuple.BeaconSlot())
	assert.Equal(t, "sepolia", tuple.Network)
	assert.Len(t, tuple.CurrentSyncCommittee.Pubkeys, 32)
	assert.NotEqual(t, tuple.CurrentSyncCommittee, tuple.NextSyncCommittee)
}

func TestCorrelateShippedFixtures(t *testing.T) {
	loader, err := fixtures.NewLoader(fixturetest.Shipped())
	require.NoError(t, err)
	bundle, err := loader.Load(context.Background())
	require.NoError(t, err)

	tuple, err := genesis.Correlate(bundle)
	require.NoError(t, err)

	assert.Equal(t, common.HexToHash("0xc60b00a437b2868182e5ce1ca02b7fc26a41da22fb6bc5596604589ad5f0047e"), tuple.ExecutionBlockHash())
	assert.Equal(t, uint64(5000003), tuple.ExecutionBlockNumber())
	assert.Equal(t, common.HexToHash("0x310bb96a34563944d2b7faccbe6fc2ab9df5dbbedb484fbe5f7c8da1a098165b"), tuple.BeaconBlockRoot())
	assert.Equal(t, uint64(4096064), tuple.BeaconSlot())
}

func TestCorrelateMissingHeader(t *testing.T) {
	bundle := fixturetest.Bundle(fixturetest.DefaultOptions())
	bundle.ExecutionHeaders = append(bundle.ExecutionHeaders[:3:3], bundle.ExecutionHeaders[4:]...)

	_, err := genesis.Correlate(bundle)
	assert.ErrorIs(t, err, genesis.ErrMissingExecutionHeader)
}

func TestCorrelateIgnoresLaterUpdates(t *testing.T) {
	bundle := fixturetest.Bundle(fixturetest.DefaultOptions())
	// headers finalized by later updates are irrelevant
	bundle.ExecutionHeaders = bundle.ExecutionHeaders[:10]

	tuple, err := genesis.Correlate(bundle)
	require.NoError(t, err)
	assert.Equal(t, uint64(5000003), tuple.ExecutionBlockNumber())
}

func TestCorrelateNoUpdates(t *testing.T) {
	bundle := fixturetest.Bundle(fixturetest.DefaultOptions())
	bundle.LightClientUpdates = nil

	_, err := genesis.Correlate(bundle)
	assert.ErrorIs(t, err, genesis.ErrNoLightClientUpdates)
}

func TestCorrelateInvalidCommittee(t *testing.T) {
	bundle := fixturetest.Bundle(fixturetest.DefaultOptions())
	bundle.NextSyncCommittee.AggregatePubkey = "0x00"

	_, err := genesis.Correlate(bundle)
	assert.Error(t, err)
}

func TestFindExecutionHeaderFirstMatchWins(t *testing.T) {
	headers := fixturetest.ExecutionHeaders(fixturetest.DefaultOptions())
	duplicate := types.CopyHeader(headers[3])
	headers = append([]*types.Header{headers[0], duplicate}, headers[1:]...)

	header, index, err := genesis.FindExecutionHeader(headers, duplicate.Hash())
	require.NoError(t, err)
	assert.Equal(t, 1, index)
	assert.Same(t, duplicate, header)
}

func TestCorrelateIsDeterministic(t *testing.T) {
	opts := fixturetest.DefaultOptions()
	cfg := fixturetest.Write(t, opts, fixturetest.Bundle(opts))

	encode := func() []byte {
		loader, err := fixtures.NewLoader(cfg)
		require.NoError(t, err)
		bundle, err := loader.Load(context.Background())
		require.NoError(t, err)
		tuple, err := genesis.Correlate(bundle)
		require.NoError(t, err)
		encoded, err := tuple.Encode()
		require.NoError(t, err)
		return encoded
	}

	first := encode()
	assert.NotEmpty(t, first)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, encode())
	}
}

func TestPayload(t *testing.T) {
	tuple, err := genesis.Correlate(fixturetest.Bundle(fixturetest.DefaultOptions()))
	require.NoError(t, err)

	payload, err := tuple.Payload()
	require.NoError(t, err)

	var decoded types.Header
	require.NoError(t, rlp.DecodeBytes(payload.ExecutionHeader, &decoded))
	assert.Equal(t, tuple.ExecutionBlockHash(), decoded.Hash())

	// slot, proposer, three roots, block root, execution hash
	assert.Len(t, payload.BeaconHeader, 8+8+5*32)
	assert.Len(t, payload.CurrentSyncCommittee, 33*48)
	assert.Len(t, payload.NextSyncCommittee, 33*48)
}
