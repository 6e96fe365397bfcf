// Package fixturetest generates small, internally consistent fixture sets for tests.
package fixturetest

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/snowfork/snowbridge/lightclient-harness/config"
	"github.com/snowfork/snowbridge/lightclient-harness/fixtures"
	beaconjson "github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/json"
	"github.com/stretchr/testify/require"
)

type Options struct {
	Network    string
	StartBlock uint64
	Headers    int
	// Finalized lists, per light client update, the index of the execution header it finalizes.
	Finalized     []int
	StartSlot     uint64
	SlotsPerIndex uint64
	CommitteeSize int
}

func DefaultOptions() Options {
	return Options{
		Network:       "sepolia",
		StartBlock:    5000000,
		Headers:       50,
		Finalized:     []int{3, 20, 35, 49},
		StartSlot:     4096000,
		SlotsPerIndex: 8,
		CommitteeSize: 32,
	}
}

func word(parts ...interface{}) common.Hash {
	return crypto.Keccak256Hash([]byte(fmt.Sprint(parts...)))
}

func ExecutionHeaders(opts Options) []*types.Header {
	headers := make([]*types.Header, 0, opts.Headers)
	parent := word(opts.Network, "genesis parent")

	for i := 0; i < opts.Headers; i++ {
		number := opts.StartBlock + uint64(i)
		header := &types.Header{
			ParentHash:  parent,
			UncleHash:   types.EmptyUncleHash,
			Coinbase:    common.BytesToAddress(word("coinbase", number).Bytes()),
			Root:        word(opts.Network, "state", number),
			TxHash:      types.EmptyRootHash,
			ReceiptHash: types.EmptyRootHash,
			Difficulty:  big.NewInt(0),
			Number:      new(big.Int).SetUint64(number),
			GasLimit:    30_000_000,
			GasUsed:     uint64(i) * 1000,
			Time:        1700000000 + uint64(i)*12,
			Extra:       []byte{},
			MixDigest:   word("randao", number),
			BaseFee:     big.NewInt(1_000_000_000),
		}
		headers = append(headers, header)
		parent = header.Hash()
	}

	return headers
}

func Committee(opts Options, period uint64) beaconjson.SyncCommittee {
	pubkeys := make([]string, opts.CommitteeSize)
	for i := range pubkeys {
		pubkeys[i] = pubkey(opts.Network, period, i)
	}

	return beaconjson.SyncCommittee{
		Pubkeys:         pubkeys,
		AggregatePubkey: pubkey(opts.Network, period, -1),
	}
}

func pubkey(network string, period uint64, index int) string {
	key := append(word(network, period, index).Bytes(), word(network, period, index, "tail").Bytes()[:16]...)
	return hexutil(key)
}

func hexutil(b []byte) string {
	return fmt.Sprintf("0x%x", b)
}

func beaconHeader(opts Options, slot uint64) beaconjson.BeaconHeader {
	return beaconjson.BeaconHeader{
		Slot:          slot,
		ProposerIndex: slot % 512,
		ParentRoot:    word(opts.Network, "beacon parent", slot).Hex(),
		StateRoot:     word(opts.Network, "beacon state", slot).Hex(),
		BodyRoot:      word(opts.Network, "beacon body", slot).Hex(),
	}
}

func LightClientUpdates(opts Options, headers []*types.Header) []beaconjson.LightClientUpdate {
	updates := make([]beaconjson.LightClientUpdate, 0, len(opts.Finalized))
	bits := make([]byte, opts.CommitteeSize/8)
	for i := range bits {
		bits[i] = 0xff
	}

	for _, index := range opts.Finalized {
		slot := opts.StartSlot + uint64(index)*opts.SlotsPerIndex
		signature := make([]byte, 96)
		binary.BigEndian.PutUint64(signature[88:], slot)

		updates = append(updates, beaconjson.LightClientUpdate{
			AttestedBeaconHeader: beaconHeader(opts, slot+64),
			SyncAggregate: beaconjson.SyncAggregate{
				SyncCommitteeBits:      hexutil(bits),
				SyncCommitteeSignature: hexutil(signature),
			},
			SignatureSlot: slot + 65,
			FinalityUpdate: beaconjson.FinalizedHeaderUpdate{
				HeaderUpdate: beaconjson.HeaderUpdate{
					BeaconHeader:        beaconHeader(opts, slot),
					ExecutionBlockHash:  headers[index].Hash().Hex(),
					ExecutionHashBranch: []string{word("branch", slot).Hex()},
				},
				FinalityBranch: []string{word("finality", slot).Hex()},
			},
		})
	}

	return updates
}

func Bundle(opts Options) *fixtures.Bundle {
	headers := ExecutionHeaders(opts)
	return &fixtures.Bundle{
		Network:              opts.Network,
		ExecutionHeaders:     headers,
		LightClientUpdates:   LightClientUpdates(opts, headers),
		CurrentSyncCommittee: Committee(opts, 0),
		NextSyncCommittee:    Committee(opts, 1),
	}
}

func Config(dir string, opts Options) config.FixtureConfig {
	return config.FixtureConfig{
		Dir:                       dir,
		Network:                   opts.Network,
		StartBlock:                opts.StartBlock,
		EndBlock:                  opts.StartBlock + uint64(opts.Headers) - 1,
		CurrentPeriod:             0,
		NextPeriod:                1,
		ExecutionHeadersTemplate:  config.DefaultExecutionHeadersTemplate,
		LightClientUpdateTemplate: config.DefaultLightClientUpdatesTemplate,
		SyncCommitteeTemplate:     config.DefaultSyncCommitteeTemplate,
	}
}

// Write stores bundle in a fresh temporary directory and returns the config to load it.
func Write(t *testing.T, opts Options, bundle *fixtures.Bundle) config.FixtureConfig {
	t.Helper()

	cfg := Config(filepath.Join(t.TempDir(), "data"), opts)
	writer, err := fixtures.NewWriter(cfg)
	require.NoError(t, err)
	require.NoError(t, writer.Write(bundle))

	return cfg
}

// Shipped is the config of the fixture set in the repository data directory, relative to a
// package directory one level below the module root.
func Shipped() config.FixtureConfig {
	cfg := config.Default().Fixtures
	cfg.Dir = filepath.Join("..", "data")
	return cfg
}
