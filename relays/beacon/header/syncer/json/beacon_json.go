package json

// The fixture representation of beacon chain light client data. Roots, hashes, keys and
// signatures are 0x-prefixed hex strings.

type BeaconHeader struct {
	Slot          uint64 `json:"slot"`
	ProposerIndex uint64 `json:"proposer_index"`
	ParentRoot    string `json:"parent_root"`
	StateRoot     string `json:"state_root"`
	BodyRoot      string `json:"body_root"`
}

type SyncCommittee struct {
	Pubkeys         []string `json:"pubkeys"`
	AggregatePubkey string   `json:"aggregate_pubkey"`
}

type SyncAggregate struct {
	SyncCommitteeBits      string `json:"sync_committee_bits"`
	SyncCommitteeSignature string `json:"sync_committee_signature"`
}

type HeaderUpdate struct {
	BeaconHeader        BeaconHeader `json:"beacon_header"`
	ExecutionBlockHash  string       `json:"execution_block_hash"`
	ExecutionHashBranch []string     `json:"execution_hash_branch"`
}

type FinalizedHeaderUpdate struct {
	HeaderUpdate   HeaderUpdate `json:"header_update"`
	FinalityBranch []string     `json:"finality_branch"`
}

type SyncCommitteeUpdate struct {
	NextSyncCommittee       SyncCommittee `json:"next_sync_committee"`
	NextSyncCommitteeBranch []string      `json:"next_sync_committee_branch"`
}

type LightClientUpdate struct {
	AttestedBeaconHeader BeaconHeader          `json:"attested_beacon_header"`
	SyncAggregate        SyncAggregate         `json:"sync_aggregate"`
	SignatureSlot        uint64                `json:"signature_slot"`
	FinalityUpdate       FinalizedHeaderUpdate `json:"finality_update"`
	SyncCommitteeUpdate  *SyncCommitteeUpdate  `json:"sync_committee_update"`
}

// FinalizedSlot is the slot of the beacon header the update finalizes.
func (u LightClientUpdate) FinalizedSlot() uint64 {
	return u.FinalityUpdate.HeaderUpdate.BeaconHeader.Slot
}
