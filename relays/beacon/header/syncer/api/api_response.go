package api

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	beaconjson "github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/json"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/util"
)

type HeaderResponse struct {
	Slot          string `json:"slot"`
	ProposerIndex string `json:"proposer_index"`
	ParentRoot    string `json:"parent_root"`
	StateRoot     string `json:"state_root"`
	BodyRoot      string `json:"body_root"`
}

type ExecutionPayloadHeaderResponse struct {
	ParentHash  string `json:"parent_hash"`
	BlockNumber string `json:"block_number"`
	BlockHash   string `json:"block_hash"`
	Timestamp   string `json:"timestamp"`
}

// LightClientHeaderResponse is the capella light client header: a beacon header plus the
// execution payload header it commits to.
type LightClientHeaderResponse struct {
	Beacon          HeaderResponse                 `json:"beacon"`
	Execution       ExecutionPayloadHeaderResponse `json:"execution"`
	ExecutionBranch []string                       `json:"execution_branch"`
}

type SyncCommitteeResponse struct {
	Pubkeys         []string `json:"pubkeys"`
	AggregatePubkey string   `json:"aggregate_pubkey"`
}

type SyncAggregateResponse struct {
	SyncCommitteeBits      string `json:"sync_committee_bits"`
	SyncCommitteeSignature string `json:"sync_committee_signature"`
}

type BootstrapResponse struct {
	Data struct {
		Header                     LightClientHeaderResponse `json:"header"`
		CurrentSyncCommittee       SyncCommitteeResponse     `json:"current_sync_committee"`
		CurrentSyncCommitteeBranch []string                  `json:"current_sync_committee_branch"`
	} `json:"data"`
}

type SyncCommitteePeriodUpdateResponse struct {
	Data struct {
		AttestedHeader          LightClientHeaderResponse `json:"attested_header"`
		NextSyncCommittee       SyncCommitteeResponse     `json:"next_sync_committee"`
		NextSyncCommitteeBranch []string                  `json:"next_sync_committee_branch"`
		FinalizedHeader         LightClientHeaderResponse `json:"finalized_header"`
		FinalityBranch          []string                  `json:"finality_branch"`
		SyncAggregate           SyncAggregateResponse     `json:"sync_aggregate"`
		SignatureSlot           string                    `json:"signature_slot"`
	} `json:"data"`
}

type LatestFinalisedUpdateResponse struct {
	Data struct {
		AttestedHeader  LightClientHeaderResponse `json:"attested_header"`
		FinalizedHeader LightClientHeaderResponse `json:"finalized_header"`
		FinalityBranch  []string                  `json:"finality_branch"`
		SyncAggregate   SyncAggregateResponse     `json:"sync_aggregate"`
		SignatureSlot   string                    `json:"signature_slot"`
	} `json:"data"`
}

type BeaconHeaderResponse struct {
	Data struct {
		Root      string `json:"root"`
		Canonical bool   `json:"canonical"`
		Header    struct {
			Message   HeaderResponse `json:"message"`
			Signature string         `json:"signature"`
		} `json:"header"`
	} `json:"data"`
}

type ErrorMessage struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

type BeaconHeader struct {
	Slot          uint64      `json:"slot"`
	ProposerIndex uint64      `json:"proposer_index"`
	ParentRoot    common.Hash `json:"parent_root"`
	StateRoot     common.Hash `json:"state_root"`
	BodyRoot      common.Hash `json:"body_root"`
}

func (h *HeaderResponse) ToBeaconHeader() (BeaconHeader, error) {
	slot, err := util.ToUint64(h.Slot)
	if err != nil {
		return BeaconHeader{}, fmt.Errorf("slot: %w", err)
	}

	proposerIndex, err := util.ToUint64(h.ProposerIndex)
	if err != nil {
		return BeaconHeader{}, fmt.Errorf("proposer index: %w", err)
	}

	return BeaconHeader{
		Slot:          slot,
		ProposerIndex: proposerIndex,
		ParentRoot:    common.HexToHash(h.ParentRoot),
		StateRoot:     common.HexToHash(h.StateRoot),
		BodyRoot:      common.HexToHash(h.BodyRoot),
	}, nil
}

func (h *HeaderResponse) ToJSON() (beaconjson.BeaconHeader, error) {
	header, err := h.ToBeaconHeader()
	if err != nil {
		return beaconjson.BeaconHeader{}, err
	}

	return beaconjson.BeaconHeader{
		Slot:          header.Slot,
		ProposerIndex: header.ProposerIndex,
		ParentRoot:    header.ParentRoot.Hex(),
		StateRoot:     header.StateRoot.Hex(),
		BodyRoot:      header.BodyRoot.Hex(),
	}, nil
}

func (h *LightClientHeaderResponse) ToHeaderUpdate() (beaconjson.HeaderUpdate, error) {
	beacon, err := h.Beacon.ToJSON()
	if err != nil {
		return beaconjson.HeaderUpdate{}, err
	}

	return beaconjson.HeaderUpdate{
		BeaconHeader:        beacon,
		ExecutionBlockHash:  h.Execution.BlockHash,
		ExecutionHashBranch: h.ExecutionBranch,
	}, nil
}

func (s SyncCommitteeResponse) ToJSON() beaconjson.SyncCommittee {
	return beaconjson.SyncCommittee{
		Pubkeys:         s.Pubkeys,
		AggregatePubkey: s.AggregatePubkey,
	}
}

func (s SyncAggregateResponse) ToJSON() beaconjson.SyncAggregate {
	return beaconjson.SyncAggregate{
		SyncCommitteeBits:      s.SyncCommitteeBits,
		SyncCommitteeSignature: s.SyncCommitteeSignature,
	}
}

func (r LatestFinalisedUpdateResponse) ToLightClientUpdate() (beaconjson.LightClientUpdate, error) {
	attested, err := r.Data.AttestedHeader.Beacon.ToJSON()
	if err != nil {
		return beaconjson.LightClientUpdate{}, fmt.Errorf("attested header: %w", err)
	}

	finalized, err := r.Data.FinalizedHeader.ToHeaderUpdate()
	if err != nil {
		return beaconjson.LightClientUpdate{}, fmt.Errorf("finalized header: %w", err)
	}

	signatureSlot, err := util.ToUint64(r.Data.SignatureSlot)
	if err != nil {
		return beaconjson.LightClientUpdate{}, fmt.Errorf("signature slot: %w", err)
	}

	return beaconjson.LightClientUpdate{
		AttestedBeaconHeader: attested,
		SyncAggregate:        r.Data.SyncAggregate.ToJSON(),
		SignatureSlot:        signatureSlot,
		FinalityUpdate: beaconjson.FinalizedHeaderUpdate{
			HeaderUpdate:   finalized,
			FinalityBranch: r.Data.FinalityBranch,
		},
	}, nil
}

func (r SyncCommitteePeriodUpdateResponse) ToSyncCommitteeUpdate() beaconjson.SyncCommitteeUpdate {
	return beaconjson.SyncCommitteeUpdate{
		NextSyncCommittee:       r.Data.NextSyncCommittee.ToJSON(),
		NextSyncCommitteeBranch: r.Data.NextSyncCommitteeBranch,
	}
}
