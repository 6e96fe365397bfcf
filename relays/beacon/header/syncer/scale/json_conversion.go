package scale

import (
	"fmt"

	"github.com/snowfork/go-substrate-rpc-client/v4/types"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/json"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/util"
)

func BeaconHeaderFromJSON(h json.BeaconHeader) (BeaconHeader, error) {
	parentRoot, err := util.HexStringTo32Bytes(h.ParentRoot)
	if err != nil {
		return BeaconHeader{}, fmt.Errorf("convert parent root: %w", err)
	}
	stateRoot, err := util.HexStringTo32Bytes(h.StateRoot)
	if err != nil {
		return BeaconHeader{}, fmt.Errorf("convert state root: %w", err)
	}
	bodyRoot, err := util.HexStringTo32Bytes(h.BodyRoot)
	if err != nil {
		return BeaconHeader{}, fmt.Errorf("convert body root: %w", err)
	}

	return BeaconHeader{
		Slot:          types.NewU64(h.Slot),
		ProposerIndex: types.NewU64(h.ProposerIndex),
		ParentRoot:    types.NewH256(parentRoot[:]),
		StateRoot:     types.NewH256(stateRoot[:]),
		BodyRoot:      types.NewH256(bodyRoot[:]),
	}, nil
}

func SyncCommitteeFromJSON(s json.SyncCommittee) (SyncCommittee, error) {
	var syncCommitteePubkeys [][48]byte

	for _, pubkey := range s.Pubkeys {
		publicKey, err := util.HexStringToPublicKey(pubkey)
		if err != nil {
			return SyncCommittee{}, fmt.Errorf("convert sync committee pubkey to byte array: %w", err)
		}

		syncCommitteePubkeys = append(syncCommitteePubkeys, publicKey)
	}

	syncCommitteeAggPubkey, err := util.HexStringToPublicKey(s.AggregatePubkey)
	if err != nil {
		return SyncCommittee{}, fmt.Errorf("convert sync committee aggregate pubkey to byte array: %w", err)
	}

	return SyncCommittee{
		Pubkeys:         syncCommitteePubkeys,
		AggregatePubkey: syncCommitteeAggPubkey,
	}, nil
}

func SyncAggregateFromJSON(s json.SyncAggregate) (SyncAggregate, error) {
	bits, err := util.HexStringToByteArray(s.SyncCommitteeBits)
	if err != nil {
		return SyncAggregate{}, fmt.Errorf("convert sync committee bits: %w", err)
	}
	signature, err := util.HexStringTo96Bytes(s.SyncCommitteeSignature)
	if err != nil {
		return SyncAggregate{}, fmt.Errorf("convert sync committee signature: %w", err)
	}

	return SyncAggregate{
		SyncCommitteeBits:      bits,
		SyncCommitteeSignature: signature,
	}, nil
}

func HeaderUpdateFromJSON(h json.HeaderUpdate) (HeaderUpdate, error) {
	header, err := BeaconHeaderFromJSON(h.BeaconHeader)
	if err != nil {
		return HeaderUpdate{}, err
	}
	executionBlockHash, err := util.HexStringTo32Bytes(h.ExecutionBlockHash)
	if err != nil {
		return HeaderUpdate{}, fmt.Errorf("convert execution block hash: %w", err)
	}
	branch, err := util.ProofBranchToScale(h.ExecutionHashBranch)
	if err != nil {
		return HeaderUpdate{}, fmt.Errorf("convert execution hash branch: %w", err)
	}

	return HeaderUpdate{
		BeaconHeader:        header,
		ExecutionBlockHash:  types.NewH256(executionBlockHash[:]),
		ExecutionHashBranch: branch,
	}, nil
}

// ExtendedBeaconBlockHeaderFromJSON derives the extended header of a header update. The block
// root is recomputed from the header rather than trusted from the input.
func ExtendedBeaconBlockHeaderFromJSON(h json.HeaderUpdate) (ExtendedBeaconBlockHeader, error) {
	update, err := HeaderUpdateFromJSON(h)
	if err != nil {
		return ExtendedBeaconBlockHeader{}, err
	}

	root, err := update.BeaconHeader.BlockRoot()
	if err != nil {
		return ExtendedBeaconBlockHeader{}, err
	}

	return ExtendedBeaconBlockHeader{
		Header:             update.BeaconHeader,
		BeaconBlockRoot:    types.NewH256(root.Bytes()),
		ExecutionBlockHash: update.ExecutionBlockHash,
	}, nil
}

func LightClientUpdateFromJSON(u json.LightClientUpdate) (LightClientUpdate, error) {
	attested, err := BeaconHeaderFromJSON(u.AttestedBeaconHeader)
	if err != nil {
		return LightClientUpdate{}, fmt.Errorf("convert attested header: %w", err)
	}
	aggregate, err := SyncAggregateFromJSON(u.SyncAggregate)
	if err != nil {
		return LightClientUpdate{}, err
	}
	headerUpdate, err := HeaderUpdateFromJSON(u.FinalityUpdate.HeaderUpdate)
	if err != nil {
		return LightClientUpdate{}, fmt.Errorf("convert finalized header update: %w", err)
	}
	finalityBranch, err := util.ProofBranchToScale(u.FinalityUpdate.FinalityBranch)
	if err != nil {
		return LightClientUpdate{}, fmt.Errorf("convert finality branch: %w", err)
	}

	var committeeUpdate OptionSyncCommitteeUpdate
	if u.SyncCommitteeUpdate != nil {
		committee, err := SyncCommitteeFromJSON(u.SyncCommitteeUpdate.NextSyncCommittee)
		if err != nil {
			return LightClientUpdate{}, err
		}
		branch, err := util.ProofBranchToScale(u.SyncCommitteeUpdate.NextSyncCommitteeBranch)
		if err != nil {
			return LightClientUpdate{}, fmt.Errorf("convert next sync committee branch: %w", err)
		}
		committeeUpdate = OptionSyncCommitteeUpdate{
			HasValue: true,
			Value: SyncCommitteeUpdate{
				NextSyncCommittee:       committee,
				NextSyncCommitteeBranch: branch,
			},
		}
	}

	return LightClientUpdate{
		AttestedBeaconHeader: attested,
		SyncAggregate:        aggregate,
		SignatureSlot:        types.NewU64(u.SignatureSlot),
		FinalityUpdate: FinalizedHeaderUpdate{
			HeaderUpdate:   headerUpdate,
			FinalityBranch: finalityBranch,
		},
		SyncCommitteeUpdate: committeeUpdate,
	}, nil
}

func (b *BeaconHeader) ToJSON() json.BeaconHeader {
	return json.BeaconHeader{
		Slot:          uint64(b.Slot),
		ProposerIndex: uint64(b.ProposerIndex),
		ParentRoot:    b.ParentRoot.Hex(),
		StateRoot:     b.StateRoot.Hex(),
		BodyRoot:      b.BodyRoot.Hex(),
	}
}

func (s *SyncCommittee) ToJSON() json.SyncCommittee {
	pubkeys := []string{}
	for _, pubkey := range s.Pubkeys {
		pubkeys = append(pubkeys, util.BytesToHexString(pubkey[:]))
	}

	return json.SyncCommittee{
		Pubkeys:         pubkeys,
		AggregatePubkey: util.BytesToHexString(s.AggregatePubkey[:]),
	}
}

func (h *HeaderUpdate) ToJSON() json.HeaderUpdate {
	return json.HeaderUpdate{
		BeaconHeader:        h.BeaconHeader.ToJSON(),
		ExecutionBlockHash:  h.ExecutionBlockHash.Hex(),
		ExecutionHashBranch: util.ScaleBranchToString(h.ExecutionHashBranch),
	}
}
