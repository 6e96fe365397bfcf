package fixtures_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/snowfork/snowbridge/lightclient-harness/config"
	"github.com/snowfork/snowbridge/lightclient-harness/fixtures"
	"github.com/snowfork/snowbridge/lightclient-harness/fixtures/fixturetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNames(t *testing.T) {
	names, err := fixtures.RenderNames(config.Default().Fixtures)
	require.NoError(t, err)

	assert.Equal(t, fixtures.Names{
		ExecutionHeaders:     "execution_block_headers_sepolia_5000000-5000049.json",
		LightClientUpdates:   "light_client_updates_sepolia_5000000-5000049.json",
		CurrentSyncCommittee: "sync_committee_500.json",
		NextSyncCommittee:    "sync_committee_501.json",
	}, names)

	cfg := config.Default().Fixtures
	cfg.SyncCommitteeTemplate = ""
	_, err = fixtures.RenderNames(cfg)
	assert.Error(t, err)
}

func TestLoadShippedFixtures(t *testing.T) {
	loader, err := fixtures.NewLoader(fixturetest.Shipped())
	require.NoError(t, err)

	bundle, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "sepolia", bundle.Network)
	require.Len(t, bundle.ExecutionHeaders, 50)
	require.Len(t, bundle.LightClientUpdates, 4)
	assert.Len(t, bundle.CurrentSyncCommittee.Pubkeys, 512)
	assert.Len(t, bundle.NextSyncCommittee.Pubkeys, 512)

	for i, header := range bundle.ExecutionHeaders {
		assert.Equal(t, uint64(5000000+i), header.Number.Uint64())
		if i > 0 {
			assert.Equal(t, bundle.ExecutionHeaders[i-1].Hash(), header.ParentHash)
		}
	}

	assert.Equal(t, common.HexToHash("0xc60b00a437b2868182e5ce1ca02b7fc26a41da22fb6bc5596604589ad5f0047e"), bundle.ExecutionHeaders[3].Hash())
	assert.Equal(t, bundle.ExecutionHeaders[3].Hash().Hex(), bundle.LightClientUpdates[0].FinalityUpdate.HeaderUpdate.ExecutionBlockHash)
	assert.Equal(t, uint64(4096064), bundle.LightClientUpdates[0].FinalizedSlot())
}

func TestWriteThenLoad(t *testing.T) {
	opts := fixturetest.DefaultOptions()
	bundle := fixturetest.Bundle(opts)
	cfg := fixturetest.Write(t, opts, bundle)

	loader, err := fixtures.NewLoader(cfg)
	require.NoError(t, err)

	loaded, err := loader.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, loaded.ExecutionHeaders, len(bundle.ExecutionHeaders))
	for i := range bundle.ExecutionHeaders {
		assert.Equal(t, bundle.ExecutionHeaders[i].Hash(), loaded.ExecutionHeaders[i].Hash())
	}
	assert.Equal(t, bundle.LightClientUpdates, loaded.LightClientUpdates)
	assert.Equal(t, bundle.CurrentSyncCommittee, loaded.CurrentSyncCommittee)
	assert.Equal(t, bundle.NextSyncCommittee, loaded.NextSyncCommittee)
}

func TestLoaderRereadsFromDisk(t *testing.T) {
	opts := fixturetest.DefaultOptions()
	bundle := fixturetest.Bundle(opts)
	cfg := fixturetest.Write(t, opts, bundle)

	loader, err := fixtures.NewLoader(cfg)
	require.NoError(t, err)

	updates, err := loader.LightClientUpdates()
	require.NoError(t, err)
	require.Len(t, updates, 4)

	names, err := fixtures.RenderNames(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(loader.Path(names.LightClientUpdates), []byte("[]"), 0o644))

	updates, err = loader.LightClientUpdates()
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	values := []struct {
		name string
		read func() error
		err  error
	}{
		{
			name: "missing headers file",
			read: func() error { _, err := fixtures.ReadExecutionHeaders(filepath.Join(dir, "absent.json")); return err },
			err:  fixtures.ErrUnreadableFixture,
		},
		{
			name: "headers not a list",
			read: func() error { _, err := fixtures.ReadExecutionHeaders(write("headers.json", `{"number": "0x1"}`)); return err },
			err:  fixtures.ErrMalformedFixture,
		},
		{
			name: "headers null",
			read: func() error { _, err := fixtures.ReadExecutionHeaders(write("null.json", `null`)); return err },
			err:  fixtures.ErrMalformedFixture,
		},
		{
			name: "header missing fields",
			read: func() error { _, err := fixtures.ReadExecutionHeaders(write("partial.json", `[{"number": "0x1"}]`)); return err },
			err:  fixtures.ErrMalformedFixture,
		},
		{
			name: "updates truncated",
			read: func() error { _, err := fixtures.ReadLightClientUpdates(write("updates.json", `[{"signature_slot": 1`)); return err },
			err:  fixtures.ErrMalformedFixture,
		},
		{
			name: "committee without keys",
			read: func() error { _, err := fixtures.ReadSyncCommittee(write("committee.json", `{"pubkeys": []}`)); return err },
			err:  fixtures.ErrMalformedFixture,
		},
		{
			name: "committee wrong type",
			read: func() error { _, err := fixtures.ReadSyncCommittee(write("list.json", `[1, 2]`)); return err },
			err:  fixtures.ErrMalformedFixture,
		},
	}

	for _, tt := range values {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.read(), tt.err)
		})
	}
}

func TestLoadFailsOnAnyMissingSource(t *testing.T) {
	opts := fixturetest.DefaultOptions()
	cfg := fixturetest.Write(t, opts, fixturetest.Bundle(opts))

	names, err := fixtures.RenderNames(cfg)
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(cfg.Dir, names.NextSyncCommittee)))

	loader, err := fixtures.NewLoader(cfg)
	require.NoError(t, err)

	_, err = loader.Load(context.Background())
	assert.ErrorIs(t, err, fixtures.ErrUnreadableFixture)
}
