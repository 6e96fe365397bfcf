// Package lightclient is the relay's view of the light client contract: the calls that
// initialize it, feed it headers and read back its finalized state.
package lightclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
	log "github.com/sirupsen/logrus"
	gsrpctypes "github.com/snowfork/go-substrate-rpc-client/v4/types"
	"github.com/snowfork/snowbridge/lightclient-harness/contracts"
	"github.com/snowfork/snowbridge/lightclient-harness/genesis"
	beaconjson "github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/json"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/scale"
)

var (
	ErrAlreadyInitialized = errors.New("light client already initialized")
	ErrTransactionFailed  = errors.New("transaction failed")
)

// BlockID identifies an execution block or, for beacon blocks, a block root and slot.
type BlockID struct {
	Hash   common.Hash
	Number uint64
}

// Contract is a handle to a deployed light client.
type Contract interface {
	Init(ctx context.Context, tuple genesis.Tuple) error
	SubmitExecutionHeader(ctx context.Context, header *types.Header) error
	SubmitBeaconUpdate(ctx context.Context, update beaconjson.LightClientUpdate, executionBlockNumber uint64) error
	FinalizedExecutionBlock(ctx context.Context) (BlockID, error)
	FinalizedBeaconBlock(ctx context.Context) (BlockID, error)
	LastBlockNumber(ctx context.Context) (uint64, error)
	// BlockHashSafe returns false when the contract holds no hash for number.
	BlockHashSafe(ctx context.Context, number uint64) (common.Hash, bool, error)
	IsInitialized(ctx context.Context) (bool, error)
	Address() common.Address
}

// Wrapper binds a contract handle to the chain it lives on and to the account that signs for
// it.
type Wrapper interface {
	Address() common.Address
	Backend() bind.ContractBackend
	CallOpts(ctx context.Context) *bind.CallOpts
	TransactOpts(ctx context.Context) *bind.TransactOpts
	// Wait blocks until tx is included and returns its receipt.
	Wait(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

type EthClientContract struct {
	wrapper  Wrapper
	contract *contracts.EthClient
}

var _ Contract = &EthClientContract{}

func NewEthClientContract(wrapper Wrapper) (*EthClientContract, error) {
	contract, err := contracts.NewEthClient(wrapper.Address(), wrapper.Backend())
	if err != nil {
		return nil, fmt.Errorf("bind eth client contract: %w", err)
	}

	return &EthClientContract{
		wrapper:  wrapper,
		contract: contract,
	}, nil
}

func (c *EthClientContract) Address() common.Address {
	return c.wrapper.Address()
}

func (c *EthClientContract) Init(ctx context.Context, tuple genesis.Tuple) error {
	payload, err := tuple.Payload()
	if err != nil {
		return err
	}

	_, err = c.transact(ctx, "init", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.contract.Init(
			opts,
			tuple.Network,
			tuple.ExecutionBlockHash(),
			tuple.ExecutionBlockNumber(),
			tuple.BeaconBlockRoot(),
			tuple.BeaconSlot(),
			payload.ExecutionHeader,
			payload.BeaconHeader,
			payload.CurrentSyncCommittee,
			payload.NextSyncCommittee,
		)
	})
	if err != nil {
		initialized, queryErr := c.IsInitialized(ctx)
		if queryErr == nil && initialized {
			return fmt.Errorf("%w: %w", ErrAlreadyInitialized, err)
		}
		return err
	}

	log.WithFields(log.Fields{
		"contract":       c.Address(),
		"network":        tuple.Network,
		"executionHash":  tuple.ExecutionBlockHash(),
		"executionBlock": tuple.ExecutionBlockNumber(),
		"beaconRoot":     tuple.BeaconBlockRoot(),
		"beaconSlot":     tuple.BeaconSlot(),
	}).Info("initialized light client")

	return nil
}

func (c *EthClientContract) SubmitExecutionHeader(ctx context.Context, header *types.Header) error {
	encoded, err := rlp.EncodeToBytes(header)
	if err != nil {
		return fmt.Errorf("rlp encode execution header: %w", err)
	}

	_, err = c.transact(ctx, "submitExecutionHeader", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.contract.SubmitExecutionHeader(opts, header.Hash(), header.ParentHash, header.Number.Uint64(), encoded)
	})
	return err
}

func (c *EthClientContract) SubmitBeaconUpdate(ctx context.Context, update beaconjson.LightClientUpdate, executionBlockNumber uint64) error {
	scaled, err := scale.LightClientUpdateFromJSON(update)
	if err != nil {
		return fmt.Errorf("convert light client update: %w", err)
	}
	encoded, err := gsrpctypes.EncodeToBytes(scaled)
	if err != nil {
		return fmt.Errorf("scale encode light client update: %w", err)
	}
	root, err := scaled.FinalityUpdate.HeaderUpdate.BeaconHeader.BlockRoot()
	if err != nil {
		return err
	}

	_, err = c.transact(ctx, "submitBeaconUpdate", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.contract.SubmitBeaconUpdate(
			opts,
			root,
			uint64(scaled.FinalityUpdate.HeaderUpdate.BeaconHeader.Slot),
			scaled.FinalityUpdate.HeaderUpdate.ExecutionBlockHash,
			executionBlockNumber,
			encoded,
		)
	})
	return err
}

func (c *EthClientContract) FinalizedExecutionBlock(ctx context.Context) (BlockID, error) {
	block, err := c.contract.FinalizedExecutionBlock(c.wrapper.CallOpts(ctx))
	if err != nil {
		return BlockID{}, fmt.Errorf("call finalizedExecutionBlock: %w", err)
	}

	return BlockID{Hash: block.Hash, Number: block.Number}, nil
}

func (c *EthClientContract) FinalizedBeaconBlock(ctx context.Context) (BlockID, error) {
	block, err := c.contract.FinalizedBeaconBlock(c.wrapper.CallOpts(ctx))
	if err != nil {
		return BlockID{}, fmt.Errorf("call finalizedBeaconBlock: %w", err)
	}

	return BlockID{Hash: block.Root, Number: block.Slot}, nil
}

func (c *EthClientContract) LastBlockNumber(ctx context.Context) (uint64, error) {
	number, err := c.contract.LastBlockNumber(c.wrapper.CallOpts(ctx))
	if err != nil {
		return 0, fmt.Errorf("call lastBlockNumber: %w", err)
	}

	return number, nil
}

func (c *EthClientContract) BlockHashSafe(ctx context.Context, number uint64) (common.Hash, bool, error) {
	hash, err := c.contract.BlockHashSafe(c.wrapper.CallOpts(ctx), number)
	if err != nil {
		return common.Hash{}, false, fmt.Errorf("call blockHashSafe: %w", err)
	}
	if hash == [32]byte{} {
		return common.Hash{}, false, nil
	}

	return hash, true, nil
}

func (c *EthClientContract) IsInitialized(ctx context.Context) (bool, error) {
	initialized, err := c.contract.Initialized(c.wrapper.CallOpts(ctx))
	if err != nil {
		return false, fmt.Errorf("call initialized: %w", err)
	}

	return initialized, nil
}

func (c *EthClientContract) transact(ctx context.Context, method string, send func(*bind.TransactOpts) (*types.Transaction, error)) (*types.Receipt, error) {
	tx, err := send(c.wrapper.TransactOpts(ctx))
	if err != nil {
		return nil, fmt.Errorf("send %s: %w", method, err)
	}

	receipt, err := c.wrapper.Wait(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("wait for %s: %w", method, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%w: %s in %s", ErrTransactionFailed, method, tx.Hash())
	}

	log.WithFields(log.Fields{
		"method":  method,
		"txHash":  tx.Hash(),
		"block":   receipt.BlockNumber,
		"gasUsed": receipt.GasUsed,
	}).Debug("transaction included")

	return receipt, nil
}
