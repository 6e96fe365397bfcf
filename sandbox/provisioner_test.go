package sandbox_test

import (
	"context"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snowfork/snowbridge/lightclient-harness/chain/lightclient"
	"github.com/snowfork/snowbridge/lightclient-harness/config"
	"github.com/snowfork/snowbridge/lightclient-harness/sandbox"
)

func testConfig() config.SandboxConfig {
	cfg := config.Default().Sandbox
	cfg.ContractPath = filepath.Join("..", "data", "eth_client.bin")
	return cfg
}

func provision(t *testing.T) *sandbox.Environment {
	t.Helper()

	env, err := sandbox.NewProvisioner(testConfig()).Provision(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = env.Close() })
	return env
}

func TestProvision(t *testing.T) {
	ctx := context.Background()
	env := provision(t)

	balance, err := env.Worker.Balance(ctx, env.Account)
	require.NoError(t, err)
	assert.Equal(t, 1, balance.Sign())
	assert.Equal(t, "relay_account", env.Account.Name)

	code, err := env.Worker.Backend().CodeAt(ctx, env.Contract, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, code)

	contract, err := lightclient.NewEthClientContract(env.Wrapper())
	require.NoError(t, err)

	initialized, err := contract.IsInitialized(ctx)
	require.NoError(t, err)
	assert.False(t, initialized)

	last, err := contract.LastBlockNumber(ctx)
	require.NoError(t, err)
	assert.Zero(t, last)
}

func TestProvisionIndependentEnvironments(t *testing.T) {
	first := provision(t)
	second := provision(t)

	assert.NotEqual(t, first.Worker.RootAccount().Address(), second.Worker.RootAccount().Address())
	assert.NotEqual(t, first.Account.Address(), second.Account.Address())

	code, err := second.Worker.Backend().CodeAt(context.Background(), first.Contract, nil)
	require.NoError(t, err)
	assert.Empty(t, code)
}

func TestProvisionMissingContract(t *testing.T) {
	cfg := testConfig()
	cfg.ContractPath = filepath.Join(t.TempDir(), "missing.bin")

	env, err := sandbox.NewProvisioner(cfg).Provision(context.Background())
	assert.Nil(t, env)
	assert.ErrorIs(t, err, sandbox.ErrProvision)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestProvisionRevertingContract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "revert.bin")
	// PUSH1 0 PUSH1 0 REVERT
	require.NoError(t, os.WriteFile(path, []byte("60006000fd"), 0o600))

	cfg := testConfig()
	cfg.ContractPath = path

	env, err := sandbox.NewProvisioner(cfg).Provision(context.Background())
	assert.Nil(t, env)
	assert.ErrorIs(t, err, sandbox.ErrProvision)
}

func TestProvisionEmptyAccountName(t *testing.T) {
	cfg := testConfig()
	cfg.AccountName = ""

	_, err := sandbox.NewProvisioner(cfg).Provision(context.Background())
	assert.ErrorIs(t, err, sandbox.ErrProvision)
}

func TestReadContractCode(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    []byte
		wantErr bool
	}{
		{name: "plain", content: "6000", want: []byte{0x60, 0x00}},
		{name: "prefixed with newline", content: "0x6000\n", want: []byte{0x60, 0x00}},
		{name: "not hex", content: "zz", wantErr: true},
		{name: "empty", content: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			code, err := sandbox.ReadContractCode(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestWorker(t *testing.T) {
	ctx := context.Background()
	worker, err := sandbox.StartWorker(config.Default().Sandbox.GasLimit)
	require.NoError(t, err)
	// Transfers below only mine when signed for the simulated chain's own id.
	assert.Equal(t, big.NewInt(1337), worker.ChainID())

	value := big.NewInt(params.Ether)
	first, err := worker.CreateSubAccount(ctx, worker.RootAccount(), "alice", value)
	require.NoError(t, err)
	second, err := worker.CreateSubAccount(ctx, worker.RootAccount(), "alice", value)
	require.NoError(t, err)
	assert.Equal(t, first.Address(), second.Address())

	balance, err := worker.Balance(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, new(big.Int).Mul(value, big.NewInt(2)), balance)

	require.NoError(t, worker.Close())
	require.NoError(t, worker.Close())

	_, err = worker.Balance(ctx, first)
	assert.ErrorIs(t, err, sandbox.ErrWorkerClosed)
	_, err = worker.DevDeploy(ctx, []byte{0x00})
	assert.ErrorIs(t, err, sandbox.ErrWorkerClosed)
}
