// Package genesis reconciles a fixture set into the tuple that initializes the light client
// contract.
package genesis

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
	log "github.com/sirupsen/logrus"
	gsrpctypes "github.com/snowfork/go-substrate-rpc-client/v4/types"
	"github.com/snowfork/snowbridge/lightclient-harness/fixtures"
	beaconjson "github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/json"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/scale"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/util"
)

var (
	ErrNoLightClientUpdates   = errors.New("no light client updates")
	ErrMissingExecutionHeader = errors.New("missing matching execution header")
)

// Tuple is everything the contract needs to start tracking the chain. The execution header's
// hash always equals BeaconHeader.ExecutionBlockHash.
type Tuple struct {
	Network              string
	ExecutionHeader      *types.Header
	BeaconHeader         scale.ExtendedBeaconBlockHeader
	CurrentSyncCommittee scale.SyncCommittee
	NextSyncCommittee    scale.SyncCommittee
}

// Correlate anchors on the first light client update of the bundle and pairs it with the
// execution header it finalizes.
func Correlate(bundle *fixtures.Bundle) (Tuple, error) {
	if len(bundle.LightClientUpdates) == 0 {
		return Tuple{}, ErrNoLightClientUpdates
	}
	anchor := bundle.LightClientUpdates[0]

	target, err := util.HexStringToHash(anchor.FinalityUpdate.HeaderUpdate.ExecutionBlockHash)
	if err != nil {
		return Tuple{}, fmt.Errorf("anchor execution block hash: %w", err)
	}

	header, index, err := FindExecutionHeader(bundle.ExecutionHeaders, target)
	if err != nil {
		return Tuple{}, err
	}

	log.WithFields(log.Fields{
		"network":        bundle.Network,
		"executionHash":  target,
		"executionBlock": header.Number,
		"index":          index,
		"beaconSlot":     anchor.FinalizedSlot(),
	}).Info("correlated finalized checkpoint")

	return NewTuple(bundle.Network, header, anchor.FinalityUpdate.HeaderUpdate, bundle.CurrentSyncCommittee, bundle.NextSyncCommittee)
}

// FindExecutionHeader returns the first header with the given hash, in slice order.
func FindExecutionHeader(headers []*types.Header, hash common.Hash) (*types.Header, int, error) {
	for i, header := range headers {
		if header.Hash() == hash {
			return header, i, nil
		}
	}

	return nil, -1, fmt.Errorf("%w: %s among %d headers", ErrMissingExecutionHeader, hash, len(headers))
}

// NewTuple builds a tuple from an execution header and the beacon header update finalizing it.
func NewTuple(network string, header *types.Header, update beaconjson.HeaderUpdate, current, next beaconjson.SyncCommittee) (Tuple, error) {
	extended, err := NewExtendedBeaconBlockHeader(update)
	if err != nil {
		return Tuple{}, err
	}
	if common.Hash(extended.ExecutionBlockHash) != header.Hash() {
		return Tuple{}, fmt.Errorf("%w: header %s does not match %s", ErrMissingExecutionHeader, header.Hash(), extended.ExecutionBlockHash.Hex())
	}

	currentCommittee, err := scale.SyncCommitteeFromJSON(current)
	if err != nil {
		return Tuple{}, fmt.Errorf("current sync committee: %w", err)
	}
	nextCommittee, err := scale.SyncCommitteeFromJSON(next)
	if err != nil {
		return Tuple{}, fmt.Errorf("next sync committee: %w", err)
	}

	return Tuple{
		Network:              network,
		ExecutionHeader:      header,
		BeaconHeader:         extended,
		CurrentSyncCommittee: currentCommittee,
		NextSyncCommittee:    nextCommittee,
	}, nil
}

func (t Tuple) ExecutionBlockHash() common.Hash {
	return t.ExecutionHeader.Hash()
}

func (t Tuple) ExecutionBlockNumber() uint64 {
	return t.ExecutionHeader.Number.Uint64()
}

func (t Tuple) BeaconBlockRoot() common.Hash {
	return common.Hash(t.BeaconHeader.BeaconBlockRoot)
}

func (t Tuple) BeaconSlot() uint64 {
	return uint64(t.BeaconHeader.Header.Slot)
}

// Payload is the encoded form of the tuple fields passed to the contract.
type Payload struct {
	ExecutionHeader      []byte
	BeaconHeader         []byte
	CurrentSyncCommittee []byte
	NextSyncCommittee    []byte
}

func (t Tuple) Payload() (Payload, error) {
	executionHeader, err := rlp.EncodeToBytes(t.ExecutionHeader)
	if err != nil {
		return Payload{}, fmt.Errorf("rlp encode execution header: %w", err)
	}
	beaconHeader, err := gsrpctypes.EncodeToBytes(t.BeaconHeader)
	if err != nil {
		return Payload{}, fmt.Errorf("scale encode beacon header: %w", err)
	}
	current, err := gsrpctypes.EncodeToBytes(t.CurrentSyncCommittee)
	if err != nil {
		return Payload{}, fmt.Errorf("scale encode current sync committee: %w", err)
	}
	next, err := gsrpctypes.EncodeToBytes(t.NextSyncCommittee)
	if err != nil {
		return Payload{}, fmt.Errorf("scale encode next sync committee: %w", err)
	}

	return Payload{
		ExecutionHeader:      executionHeader,
		BeaconHeader:         beaconHeader,
		CurrentSyncCommittee: current,
		NextSyncCommittee:    next,
	}, nil
}

// NewExtendedBeaconBlockHeader pairs a beacon header with its hash tree root and the execution
// block hash it commits to.
func NewExtendedBeaconBlockHeader(update beaconjson.HeaderUpdate) (scale.ExtendedBeaconBlockHeader, error) {
	extended, err := scale.ExtendedBeaconBlockHeaderFromJSON(update)
	if err != nil {
		return scale.ExtendedBeaconBlockHeader{}, fmt.Errorf("extended beacon header: %w", err)
	}
	return extended, nil
}

type encodedTuple struct {
	Network              gsrpctypes.Text
	ExecutionHeader      gsrpctypes.Bytes
	BeaconHeader         scale.ExtendedBeaconBlockHeader
	CurrentSyncCommittee scale.SyncCommittee
	NextSyncCommittee    scale.SyncCommittee
}

// Encode is the SCALE encoding of the whole tuple, equal for equal tuples.
func (t Tuple) Encode() ([]byte, error) {
	executionHeader, err := rlp.EncodeToBytes(t.ExecutionHeader)
	if err != nil {
		return nil, fmt.Errorf("rlp encode execution header: %w", err)
	}

	return gsrpctypes.EncodeToBytes(encodedTuple{
		Network:              gsrpctypes.NewText(t.Network),
		ExecutionHeader:      gsrpctypes.NewBytes(executionHeader),
		BeaconHeader:         t.BeaconHeader,
		CurrentSyncCommittee: t.CurrentSyncCommittee,
		NextSyncCommittee:    t.NextSyncCommittee,
	})
}
