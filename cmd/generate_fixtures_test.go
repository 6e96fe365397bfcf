package cmd

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snowfork/snowbridge/lightclient-harness/config"
	"github.com/snowfork/snowbridge/lightclient-harness/fixtures"
	"github.com/snowfork/snowbridge/lightclient-harness/fixtures/fixturetest"
	"github.com/snowfork/snowbridge/lightclient-harness/genesis"
)

// testEthService answers the eth_ calls the header fetcher makes.
type testEthService struct {
	byHash   map[common.Hash]*types.Header
	byNumber map[int64]*types.Header
}

func (s *testEthService) ChainId() *hexutil.Big {
	return (*hexutil.Big)(big.NewInt(11155111))
}

func (s *testEthService) GetBlockByHash(hash common.Hash, _ bool) *types.Header {
	return s.byHash[hash]
}

func (s *testEthService) GetBlockByNumber(number rpc.BlockNumber, _ bool) *types.Header {
	return s.byNumber[number.Int64()]
}

func newEth1Server(t *testing.T, headers []*types.Header) string {
	t.Helper()

	service := &testEthService{
		byHash:   map[common.Hash]*types.Header{},
		byNumber: map[int64]*types.Header{},
	}
	for _, header := range headers {
		service.byHash[header.Hash()] = header
		service.byNumber[header.Number.Int64()] = header
	}

	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("eth", service))
	httpServer := httptest.NewServer(server)
	t.Cleanup(func() {
		httpServer.Close()
		server.Stop()
	})

	return httpServer.URL
}

func word(n int) string {
	return common.BigToHash(big.NewInt(int64(n))).Hex()
}

func beaconHeaderBody(slot uint64) map[string]interface{} {
	return map[string]interface{}{
		"slot":           strconv.FormatUint(slot, 10),
		"proposer_index": "7",
		"parent_root":    word(1),
		"state_root":     word(2),
		"body_root":      word(3),
	}
}

func newBeaconServer(t *testing.T, finalizedSlot uint64, executionHash common.Hash, period uint64, current, next interface{}) string {
	t.Helper()

	finality := map[string]interface{}{"data": map[string]interface{}{
		"attested_header": map[string]interface{}{"beacon": beaconHeaderBody(finalizedSlot + 64)},
		"finalized_header": map[string]interface{}{
			"beacon":           beaconHeaderBody(finalizedSlot),
			"execution":        map[string]interface{}{"block_hash": executionHash.Hex()},
			"execution_branch": []string{word(4), word(5)},
		},
		"finality_branch": []string{word(6)},
		"sync_aggregate":  map[string]interface{}{"sync_committee_bits": "0xff", "sync_committee_signature": "0x0a"},
		"signature_slot":  strconv.FormatUint(finalizedSlot+65, 10),
	}}
	bootstrap := map[string]interface{}{"data": map[string]interface{}{
		"header":                        map[string]interface{}{"beacon": beaconHeaderBody(finalizedSlot)},
		"current_sync_committee":        current,
		"current_sync_committee_branch": []string{word(7)},
	}}
	updates := []interface{}{map[string]interface{}{"data": map[string]interface{}{
		"next_sync_committee":        next,
		"next_sync_committee_branch": []string{word(8)},
		"signature_slot":             strconv.FormatUint(finalizedSlot+65, 10),
	}}}
	updatesURI := "/eth/v1/beacon/light_client/updates?start_period=" + strconv.FormatUint(period, 10) + "&count=1"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body interface{}
		switch {
		case r.URL.Path == "/eth/v1/beacon/light_client/finality_update":
			body = finality
		case strings.HasPrefix(r.URL.Path, "/eth/v1/beacon/light_client/bootstrap/"):
			body = bootstrap
		case r.URL.RequestURI() == updatesURI:
			body = updates
		default:
			w.WriteHeader(http.StatusNotFound)
			return
		}
		require.NoError(t, json.NewEncoder(w).Encode(body))
	}))
	t.Cleanup(server.Close)

	return server.URL
}

func TestGenerateFixturesCommand(t *testing.T) {
	opts := fixturetest.DefaultOptions()
	headers := fixturetest.ExecutionHeaders(opts)
	anchor := headers[3]

	const finalizedSlot = 4096064
	spec := config.Default().Spec
	period := spec.ComputeSyncPeriodAtSlot(finalizedSlot)
	current := fixturetest.Committee(opts, period)
	next := fixturetest.Committee(opts, period+1)

	beaconURL := newBeaconServer(t, finalizedSlot, anchor.Hash(), period, current, next)
	eth1URL := newEth1Server(t, headers)
	out := filepath.Join(t.TempDir(), "generated")

	path := writeConfig(t, "beacon-endpoint: "+beaconURL+"\neth1-endpoint: "+eth1URL+"\nnetwork: sepolia\n")
	rootCmd.SetArgs([]string{"generate-fixtures", "--config", path, "--headers", "10", "--out", out})
	require.NoError(t, rootCmd.Execute())

	fixtureConfig := config.Default().Fixtures
	fixtureConfig.Dir = out
	fixtureConfig.StartBlock = anchor.Number.Uint64()
	fixtureConfig.EndBlock = anchor.Number.Uint64() + 9
	fixtureConfig.CurrentPeriod = period
	fixtureConfig.NextPeriod = period + 1

	loader, err := fixtures.NewLoader(fixtureConfig)
	require.NoError(t, err)
	bundle, err := loader.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, bundle.ExecutionHeaders, 10)
	for i, header := range bundle.ExecutionHeaders {
		assert.Equal(t, headers[3+i].Hash(), header.Hash())
	}
	require.Len(t, bundle.LightClientUpdates, 1)
	assert.Equal(t, uint64(finalizedSlot), bundle.LightClientUpdates[0].FinalizedSlot())
	assert.Equal(t, current, bundle.CurrentSyncCommittee)
	assert.Equal(t, next, bundle.NextSyncCommittee)

	tuple, err := genesis.Correlate(bundle)
	require.NoError(t, err)
	assert.Equal(t, anchor.Hash(), tuple.ExecutionBlockHash())
}

func TestGenerateFixturesCommandStopsAtLatestHeader(t *testing.T) {
	opts := fixturetest.DefaultOptions()
	headers := fixturetest.ExecutionHeaders(opts)
	anchor := headers[45]

	const finalizedSlot = 4096064
	period := config.Default().Spec.ComputeSyncPeriodAtSlot(finalizedSlot)

	beaconURL := newBeaconServer(t, finalizedSlot, anchor.Hash(), period, fixturetest.Committee(opts, period), fixturetest.Committee(opts, period+1))
	eth1URL := newEth1Server(t, headers)
	out := filepath.Join(t.TempDir(), "generated")

	path := writeConfig(t, "beacon-endpoint: "+beaconURL+"\neth1-endpoint: "+eth1URL+"\nnetwork: sepolia\n")
	rootCmd.SetArgs([]string{"generate-fixtures", "--config", path, "--headers", "10", "--out", out})
	require.NoError(t, rootCmd.Execute())

	fixtureConfig := config.Default().Fixtures
	fixtureConfig.Dir = out
	fixtureConfig.StartBlock = anchor.Number.Uint64()
	fixtureConfig.EndBlock = headers[49].Number.Uint64()
	fixtureConfig.CurrentPeriod = period
	fixtureConfig.NextPeriod = period + 1

	loader, err := fixtures.NewLoader(fixtureConfig)
	require.NoError(t, err)
	written, err := loader.ExecutionHeaders()
	require.NoError(t, err)
	assert.Len(t, written, 5)
}

func TestGenerateFixturesCommandRejectsZeroHeaders(t *testing.T) {
	path := writeConfig(t, "network: sepolia\n")
	rootCmd.SetArgs([]string{"generate-fixtures", "--config", path, "--headers", "0"})
	assert.ErrorIs(t, rootCmd.Execute(), config.ErrInvalidField)
}
