package scale

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/snowfork/go-substrate-rpc-client/v4/types"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anchorHeaderUpdate() json.HeaderUpdate {
	return json.HeaderUpdate{
		BeaconHeader: json.BeaconHeader{
			Slot:          4096064,
			ProposerIndex: 273,
			ParentRoot:    "0x6a4f0ab8514048933057a3d6ad67381d69f91aa8e8d10688ec9f20d69feb7d17",
			StateRoot:     "0x93bd1887dd17b6a22d4837d1a0a6ee1bd2c5aa8b3ae37d54bf6b002140978ac3",
			BodyRoot:      "0x63c4b43e3335eeac22b4aaa2f3ee42bff90bca567c797c9d3905623439f84922",
		},
		ExecutionBlockHash:  "0xc60b00a437b2868182e5ce1ca02b7fc26a41da22fb6bc5596604589ad5f0047e",
		ExecutionHashBranch: []string{"0x6b3cf95308a5e456879114aafbab28619d8f9ba5871f98e43d392ce9d16d83b7"},
	}
}

func committee(size int) json.SyncCommittee {
	pubkeys := make([]string, size)
	for i := range pubkeys {
		pubkeys[i] = fmt.Sprintf("0x%096x", i+1)
	}
	return json.SyncCommittee{Pubkeys: pubkeys, AggregatePubkey: fmt.Sprintf("0x%096x", 0xabc)}
}

func TestExtendedBeaconBlockHeaderFromJSON(t *testing.T) {
	extended, err := ExtendedBeaconBlockHeaderFromJSON(anchorHeaderUpdate())
	require.NoError(t, err)

	assert.Equal(t, types.NewU64(4096064), extended.Header.Slot)
	assert.Equal(t, "0x310bb96a34563944d2b7faccbe6fc2ab9df5dbbedb484fbe5f7c8da1a098165b", extended.BeaconBlockRoot.Hex())
	assert.Equal(t, "0xc60b00a437b2868182e5ce1ca02b7fc26a41da22fb6bc5596604589ad5f0047e", extended.ExecutionBlockHash.Hex())
}

func TestExtendedBeaconBlockHeaderFromJSONInvalidHash(t *testing.T) {
	update := anchorHeaderUpdate()
	update.ExecutionBlockHash = "0x1234"

	_, err := ExtendedBeaconBlockHeaderFromJSON(update)
	assert.Error(t, err)
}

func TestHeaderUpdateToJSON(t *testing.T) {
	update, err := HeaderUpdateFromJSON(anchorHeaderUpdate())
	require.NoError(t, err)

	assert.Equal(t, anchorHeaderUpdate(), update.ToJSON())
}

func TestSyncCommitteeEncode(t *testing.T) {
	values := []struct {
		name string
		size int
		len  int
		err  bool
	}{
		{name: "minimal", size: 32, len: 33 * 48},
		{name: "mainnet", size: 512, len: 513 * 48},
		{name: "invalid", size: 7, err: true},
	}

	for _, tt := range values {
		t.Run(tt.name, func(t *testing.T) {
			syncCommittee, err := SyncCommitteeFromJSON(committee(tt.size))
			require.NoError(t, err)

			encoded, err := types.EncodeToBytes(syncCommittee)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, encoded, tt.len)
			assert.Equal(t, committee(tt.size), syncCommittee.ToJSON())
		})
	}
}

func TestLightClientUpdateFromJSON(t *testing.T) {
	update := json.LightClientUpdate{
		AttestedBeaconHeader: anchorHeaderUpdate().BeaconHeader,
		SyncAggregate: json.SyncAggregate{
			SyncCommitteeBits:      "0xffffffff",
			SyncCommitteeSignature: fmt.Sprintf("0x%0192x", 7),
		},
		SignatureSlot: 4096129,
		FinalityUpdate: json.FinalizedHeaderUpdate{
			HeaderUpdate:   anchorHeaderUpdate(),
			FinalityBranch: []string{common.Hash{1}.Hex()},
		},
	}

	scaled, err := LightClientUpdateFromJSON(update)
	require.NoError(t, err)
	assert.False(t, scaled.SyncCommitteeUpdate.HasValue)

	withoutCommittee, err := types.EncodeToBytes(scaled)
	require.NoError(t, err)

	next := committee(32)
	update.SyncCommitteeUpdate = &json.SyncCommitteeUpdate{NextSyncCommittee: next, NextSyncCommitteeBranch: []string{}}
	scaled, err = LightClientUpdateFromJSON(update)
	require.NoError(t, err)
	require.True(t, scaled.SyncCommitteeUpdate.HasValue)

	withCommittee, err := types.EncodeToBytes(scaled)
	require.NoError(t, err)
	// option flag stays, plus the fixed size committee and an empty branch
	assert.Equal(t, len(withoutCommittee)+33*48+1, len(withCommittee))
}
