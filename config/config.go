// Copyright 2021 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"math/big"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
)

const (
	ContractTypeEthClient = "eth-client"
	ContractTypeDAO       = "dao"

	SettleStrategyFixed = "fixed"
	SettleStrategyPoll  = "poll"
)

var (
	ErrMissingField        = errors.New("missing required config field")
	ErrInvalidField        = errors.New("invalid config field")
	ErrInvalidContractType = errors.New("invalid contract type")
)

// Config is the configuration surface shared by the bootstrapper and the relay driver. The
// field names follow the relay configuration of the light client deployment.
type Config struct {
	BeaconEndpoint                                string         `mapstructure:"beacon-endpoint"`
	Eth1Endpoint                                  string         `mapstructure:"eth1-endpoint"`
	TotalSubmitHeaders                            uint64         `mapstructure:"total-submit-headers"`
	ClientEndpoint                                string         `mapstructure:"client-endpoint"`
	SignerAccountID                               string         `mapstructure:"signer-account-id"`
	PathToSignerSecretKey                         string         `mapstructure:"path-to-signer-secret-key"`
	ContractAccountID                             string         `mapstructure:"contract-account-id"`
	Network                                       string         `mapstructure:"network"`
	ContractType                                  string         `mapstructure:"contract-type"`
	LightClientUpdatesSubmissionFrequencyInEpochs uint64         `mapstructure:"light-client-updates-submission-frequency-in-epochs"`
	MaxBlocksForFinalization                      uint64         `mapstructure:"max-blocks-for-finalization"`
	ClientNetworkID                               string         `mapstructure:"client-network-id"`
	DAOContractAccountID                          *string        `mapstructure:"dao-contract-account-id"`
	OutputDir                                     *string        `mapstructure:"output-dir"`
	Spec                                          SpecSettings   `mapstructure:"spec"`
	Ethereum                                      EthereumConfig `mapstructure:"ethereum"`
	Fixtures                                      FixtureConfig  `mapstructure:"fixtures"`
	Sandbox                                       SandboxConfig  `mapstructure:"sandbox"`
	Settle                                        SettleConfig   `mapstructure:"settle"`
	Relay                                         RelayConfig    `mapstructure:"relay"`
}

type SpecSettings struct {
	SlotsInEpoch                 uint64 `mapstructure:"slotsInEpoch"`
	EpochsPerSyncCommitteePeriod uint64 `mapstructure:"epochsPerSyncCommitteePeriod"`
}

// EthereumConfig describes the connection to the chain hosting the light client contract.
type EthereumConfig struct {
	Endpoint      string `mapstructure:"endpoint"`
	GasFeeCap     uint64 `mapstructure:"gas-fee-cap"`
	GasTipCap     uint64 `mapstructure:"gas-tip-cap"`
	GasLimit      uint64 `mapstructure:"gas-limit"`
	Confirmations uint64 `mapstructure:"confirmations"`
}

// FixtureConfig locates a fixture set. File names are mustache templates rendered with the
// network, block range and committee period.
type FixtureConfig struct {
	Dir                       string `mapstructure:"dir"`
	Network                   string `mapstructure:"network"`
	StartBlock                uint64 `mapstructure:"start-block"`
	EndBlock                  uint64 `mapstructure:"end-block"`
	CurrentPeriod             uint64 `mapstructure:"current-period"`
	NextPeriod                uint64 `mapstructure:"next-period"`
	ExecutionHeadersTemplate  string `mapstructure:"execution-headers-template"`
	LightClientUpdateTemplate string `mapstructure:"light-client-updates-template"`
	SyncCommitteeTemplate     string `mapstructure:"sync-committee-template"`
}

type SandboxConfig struct {
	ContractPath   string   `mapstructure:"contract-path"`
	AccountName    string   `mapstructure:"account-name"`
	InitialBalance *big.Int `mapstructure:"initial-balance"`
	GasLimit       uint64   `mapstructure:"gas-limit"`
}

type SettleConfig struct {
	Strategy string        `mapstructure:"strategy"`
	Delay    time.Duration `mapstructure:"delay"`
	Interval time.Duration `mapstructure:"interval"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type RelayConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

const (
	DefaultExecutionHeadersTemplate   = "execution_block_headers_{{network}}_{{start}}-{{end}}.json"
	DefaultLightClientUpdatesTemplate = "light_client_updates_{{network}}_{{start}}-{{end}}.json"
	DefaultSyncCommitteeTemplate      = "sync_committee_{{period}}.json"
)

// Default returns the configuration of the bundled sepolia fixture set run against a sandbox.
func Default() Config {
	return Config{
		BeaconEndpoint:     "https://lodestar-sepolia.chainsafe.io",
		Eth1Endpoint:       "https://rpc.sepolia.org",
		TotalSubmitHeaders: 8,
		Network:            "sepolia",
		ContractType:       ContractTypeEthClient,
		LightClientUpdatesSubmissionFrequencyInEpochs: 1,
		MaxBlocksForFinalization:                      5000,
		ClientNetworkID:                               "testnet",
		Spec: SpecSettings{
			SlotsInEpoch:                 32,
			EpochsPerSyncCommitteePeriod: 256,
		},
		Ethereum: EthereumConfig{
			Confirmations: 1,
		},
		Fixtures: FixtureConfig{
			Dir:                       "data",
			Network:                   "sepolia",
			StartBlock:                5000000,
			EndBlock:                  5000049,
			CurrentPeriod:             500,
			NextPeriod:                501,
			ExecutionHeadersTemplate:  DefaultExecutionHeadersTemplate,
			LightClientUpdateTemplate: DefaultLightClientUpdatesTemplate,
			SyncCommitteeTemplate:     DefaultSyncCommitteeTemplate,
		},
		Sandbox: SandboxConfig{
			ContractPath:   filepath.Join("data", "eth_client.bin"),
			AccountName:    "relay_account",
			InitialBalance: new(big.Int).Mul(big.NewInt(30), big.NewInt(params.Ether)),
			GasLimit:       30_000_000,
		},
		Settle: SettleConfig{
			Strategy: SettleStrategyPoll,
			Delay:    30 * time.Second,
			Interval: 100 * time.Millisecond,
			Timeout:  30 * time.Second,
		},
		Relay: RelayConfig{
			Interval: 10 * time.Second,
		},
	}
}

// Validate checks the fields every mode depends on.
func (c Config) Validate() error {
	if c.Network == "" {
		return fmt.Errorf("%w: network", ErrMissingField)
	}
	if c.TotalSubmitHeaders == 0 {
		return fmt.Errorf("%w: total-submit-headers must be positive", ErrInvalidField)
	}
	if c.LightClientUpdatesSubmissionFrequencyInEpochs == 0 {
		return fmt.Errorf("%w: light-client-updates-submission-frequency-in-epochs must be positive", ErrInvalidField)
	}
	if c.Spec.SlotsInEpoch == 0 || c.Spec.EpochsPerSyncCommitteePeriod == 0 {
		return fmt.Errorf("%w: spec settings must be positive", ErrInvalidField)
	}

	switch c.ContractType {
	case ContractTypeEthClient:
	case ContractTypeDAO:
		if c.DAOContractAccountID == nil || *c.DAOContractAccountID == "" {
			return fmt.Errorf("%w: dao-contract-account-id", ErrMissingField)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidContractType, c.ContractType)
	}

	switch c.Settle.Strategy {
	case SettleStrategyFixed, SettleStrategyPoll:
	default:
		return fmt.Errorf("%w: settle strategy %q", ErrInvalidField, c.Settle.Strategy)
	}

	return nil
}

// ValidateLive checks the endpoints and identities needed to talk to live networks.
func (c Config) ValidateLive() error {
	err := c.Validate()
	if err != nil {
		return err
	}

	required := map[string]string{
		"beacon-endpoint":     c.BeaconEndpoint,
		"eth1-endpoint":       c.Eth1Endpoint,
		"contract-account-id": c.ContractAccountID,
		"ethereum.endpoint":   c.Ethereum.Endpoint,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, name)
		}
	}

	if !common.IsHexAddress(c.ContractAccountID) {
		return fmt.Errorf("%w: contract-account-id %q is not an address", ErrInvalidField, c.ContractAccountID)
	}

	return nil
}

func (c Config) ContractAddress() common.Address {
	return common.HexToAddress(c.ContractAccountID)
}

func (s SpecSettings) SlotsPerSyncCommitteePeriod() uint64 {
	return s.SlotsInEpoch * s.EpochsPerSyncCommitteePeriod
}

func (s SpecSettings) ComputeSyncPeriodAtSlot(slot uint64) uint64 {
	return slot / s.SlotsPerSyncCommitteePeriod()
}

func (s SpecSettings) ComputeEpochAtSlot(slot uint64) uint64 {
	return slot / s.SlotsInEpoch
}
