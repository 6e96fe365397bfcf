package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snowfork/snowbridge/lightclient-harness/chain/ethereum"
	"github.com/snowfork/snowbridge/lightclient-harness/config"
)

const shippedConfig = `
fixtures:
  dir: ../data
sandbox:
  contract-path: ../data/eth_client.bin
settle:
  strategy: poll
  interval: 10ms
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "harness.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCorrelateCommand(t *testing.T) {
	rootCmd.SetArgs([]string{"correlate", "--config", writeConfig(t, shippedConfig), "--encode"})
	assert.NoError(t, rootCmd.Execute())
}

func TestCorrelateCommandMissingFixtures(t *testing.T) {
	missing := "fixtures:\n  dir: " + t.TempDir() + "\n"
	rootCmd.SetArgs([]string{"correlate", "--config", writeConfig(t, missing)})
	assert.Error(t, rootCmd.Execute())
}

func TestBootstrapCommand(t *testing.T) {
	rootCmd.SetArgs([]string{"bootstrap", "--config", writeConfig(t, shippedConfig), "--cycles", "10"})
	assert.NoError(t, rootCmd.Execute())
}

func TestRunRelayRequiresLiveConfig(t *testing.T) {
	rootCmd.SetArgs([]string{"run", "relay", "--config", writeConfig(t, "network: sepolia\n")})
	assert.ErrorIs(t, rootCmd.Execute(), config.ErrMissingField)
}

func TestRunRelayRequiresPrivateKey(t *testing.T) {
	live := "contract-account-id: \"0x5FbDB2315678afecb367f032d93F642f64180aa3\"\nethereum:\n  endpoint: http://127.0.0.1:8545\n"
	rootCmd.SetArgs([]string{"run", "relay", "--config", writeConfig(t, live)})
	assert.ErrorIs(t, rootCmd.Execute(), ethereum.ErrPrivateKeyNotSupplied)
}
