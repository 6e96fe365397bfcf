package scale

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/snowfork/go-substrate-rpc-client/v4/scale"
	"github.com/snowfork/go-substrate-rpc-client/v4/types"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/state"
)

type BeaconHeader struct {
	Slot          types.U64
	ProposerIndex types.U64
	ParentRoot    types.H256
	StateRoot     types.H256
	BodyRoot      types.H256
}

// ExtendedBeaconBlockHeader is the beacon header form accepted by the light client contract.
type ExtendedBeaconBlockHeader struct {
	Header             BeaconHeader
	BeaconBlockRoot    types.H256
	ExecutionBlockHash types.H256
}

type SyncCommittee struct {
	Pubkeys         [][48]byte
	AggregatePubkey [48]byte
}

// Use a custom SCALE encoder to encode Pubkeys as fixed array
func (s SyncCommittee) Encode(encoder scale.Encoder) error {
	var err error
	switch len(s.Pubkeys) {
	case 32:
		var pubkeys [32][48]byte
		copy(pubkeys[:], s.Pubkeys)
		err = encoder.Encode(pubkeys)
	case 512:
		var pubkeys [512][48]byte
		copy(pubkeys[:], s.Pubkeys)
		err = encoder.Encode(pubkeys)
	default:
		return fmt.Errorf("invalid sync committee size %d", len(s.Pubkeys))
	}
	if err != nil {
		return err
	}
	return encoder.Encode(s.AggregatePubkey)
}

type SyncAggregate struct {
	SyncCommitteeBits      []byte
	SyncCommitteeSignature [96]byte
}

// Use a custom SCALE encoder to encode SyncCommitteeBits as fixed array
func (s SyncAggregate) Encode(encoder scale.Encoder) error {
	var err error
	switch len(s.SyncCommitteeBits) {
	case 4:
		//	32 / 8 = 4
		var syncCommitteeBits [4]byte
		copy(syncCommitteeBits[:], s.SyncCommitteeBits)
		err = encoder.Encode(syncCommitteeBits)
	case 64:
		//	512 / 8 = 64
		var syncCommitteeBits [64]byte
		copy(syncCommitteeBits[:], s.SyncCommitteeBits)
		err = encoder.Encode(syncCommitteeBits)
	default:
		return fmt.Errorf("invalid sync committee bits size %d", len(s.SyncCommitteeBits))
	}
	if err != nil {
		return err
	}
	return encoder.Encode(s.SyncCommitteeSignature)
}

type HeaderUpdate struct {
	BeaconHeader        BeaconHeader
	ExecutionBlockHash  types.H256
	ExecutionHashBranch []types.H256
}

type FinalizedHeaderUpdate struct {
	HeaderUpdate   HeaderUpdate
	FinalityBranch []types.H256
}

type SyncCommitteeUpdate struct {
	NextSyncCommittee       SyncCommittee
	NextSyncCommitteeBranch []types.H256
}

type OptionSyncCommitteeUpdate struct {
	HasValue bool
	Value    SyncCommitteeUpdate
}

func (o OptionSyncCommitteeUpdate) Encode(encoder scale.Encoder) error {
	return encoder.EncodeOption(o.HasValue, o.Value)
}

// LightClientUpdate is the payload of a beacon finality update submitted to the contract.
type LightClientUpdate struct {
	AttestedBeaconHeader BeaconHeader
	SyncAggregate        SyncAggregate
	SignatureSlot        types.U64
	FinalityUpdate       FinalizedHeaderUpdate
	SyncCommitteeUpdate  OptionSyncCommitteeUpdate
}

func (b *BeaconHeader) ToSSZ() *state.BeaconBlockHeader {
	return &state.BeaconBlockHeader{
		Slot:          uint64(b.Slot),
		ProposerIndex: uint64(b.ProposerIndex),
		ParentRoot:    common.FromHex(b.ParentRoot.Hex()),
		StateRoot:     common.FromHex(b.StateRoot.Hex()),
		BodyRoot:      common.FromHex(b.BodyRoot.Hex()),
	}
}

// BlockRoot is the SSZ hash tree root of the header.
func (b *BeaconHeader) BlockRoot() (common.Hash, error) {
	root, err := b.ToSSZ().HashTreeRoot()
	if err != nil {
		return common.Hash{}, fmt.Errorf("beacon header hash tree root: %w", err)
	}

	return root, nil
}
