// Package sandbox stands up an isolated in-process chain, deploys the light client into it and
// funds the account the relay signs with.
package sandbox

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/backends"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	log "github.com/sirupsen/logrus"

	"github.com/snowfork/snowbridge/lightclient-harness/crypto/secp256k1"
)

const transferGas = 21000

var (
	ErrWorkerClosed = errors.New("sandbox worker closed")
	ErrNoCode       = errors.New("no code at deployed address")
	ErrUnfunded     = errors.New("account has no balance")
)

// rootBalance is what the root identity holds at genesis.
var rootBalance = new(big.Int).Mul(big.NewInt(1_000_000), big.NewInt(params.Ether))

type Account struct {
	Name    string
	Keypair *secp256k1.Keypair
}

func (a *Account) Address() common.Address {
	return a.Keypair.CommonAddress()
}

// Worker owns one simulated chain. Every transaction it is handed is sealed into its own block.
type Worker struct {
	mu      sync.Mutex
	backend *backends.SimulatedBackend
	root    *Account
	chainID *big.Int
	closed  bool
}

func StartWorker(gasLimit uint64) (*Worker, error) {
	root, err := secp256k1.GenerateKeypair()
	if err != nil {
		return nil, fmt.Errorf("generate root key: %w", err)
	}

	alloc := core.GenesisAlloc{
		root.CommonAddress(): {Balance: new(big.Int).Set(rootBalance)},
	}
	backend := backends.NewSimulatedBackend(alloc, gasLimit)

	log.WithFields(log.Fields{
		"root":     root.CommonAddress(),
		"gasLimit": gasLimit,
	}).Debug("Started sandbox worker")

	return &Worker{
		backend: backend,
		root:    &Account{Name: "root", Keypair: root},
		chainID: new(big.Int).Set(params.AllDevChainProtocolChanges.ChainID),
	}, nil
}

func (w *Worker) Backend() *backends.SimulatedBackend {
	return w.backend
}

func (w *Worker) ChainID() *big.Int {
	return w.chainID
}

func (w *Worker) RootAccount() *Account {
	return w.root
}

func (w *Worker) TransactOpts(ctx context.Context, account *Account) *bind.TransactOpts {
	return &bind.TransactOpts{
		From: account.Address(),
		Signer: func(_ common.Address, tx *types.Transaction) (*types.Transaction, error) {
			return account.Keypair.SignTx(tx, w.chainID)
		},
		Context: ctx,
	}
}

// DevDeploy deploys creation code from the root account and returns the contract address.
func (w *Worker) DevDeploy(ctx context.Context, code []byte) (common.Address, error) {
	if err := w.checkOpen(); err != nil {
		return common.Address{}, err
	}

	address, tx, _, err := bind.DeployContract(w.TransactOpts(ctx, w.root), abi.ABI{}, code, w.backend)
	if err != nil {
		return common.Address{}, fmt.Errorf("deploy contract: %w", err)
	}

	receipt, err := w.Seal(ctx, tx)
	if err != nil {
		return common.Address{}, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return common.Address{}, fmt.Errorf("deploy contract: transaction %s reverted", tx.Hash())
	}

	deployed, err := w.backend.CodeAt(ctx, address, nil)
	if err != nil {
		return common.Address{}, fmt.Errorf("fetch code at %s: %w", address, err)
	}
	if len(deployed) == 0 {
		return common.Address{}, fmt.Errorf("%w: %s", ErrNoCode, address)
	}

	log.WithFields(log.Fields{
		"address": address,
		"txHash":  tx.Hash(),
		"size":    len(deployed),
	}).Info("Deployed contract to sandbox")

	return address, nil
}

// CreateSubAccount derives a named account from parent and transfers balance to it.
func (w *Worker) CreateSubAccount(ctx context.Context, parent *Account, name string, balance *big.Int) (*Account, error) {
	if err := w.checkOpen(); err != nil {
		return nil, err
	}

	keypair, err := secp256k1.DeriveKeypair(parent.Keypair, name)
	if err != nil {
		return nil, fmt.Errorf("derive account %q: %w", name, err)
	}
	account := &Account{Name: name, Keypair: keypair}

	tx, err := w.transfer(ctx, parent, account.Address(), balance)
	if err != nil {
		return nil, fmt.Errorf("fund account %q: %w", name, err)
	}

	receipt, err := w.Seal(ctx, tx)
	if err != nil {
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("fund account %q: transaction %s reverted", name, tx.Hash())
	}

	log.WithFields(log.Fields{
		"name":    name,
		"address": account.Address(),
		"balance": balance,
	}).Info("Created sandbox account")

	return account, nil
}

func (w *Worker) Balance(ctx context.Context, account *Account) (*big.Int, error) {
	if err := w.checkOpen(); err != nil {
		return nil, err
	}

	balance, err := w.backend.BalanceAt(ctx, account.Address(), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch balance of %s: %w", account.Address(), err)
	}
	return balance, nil
}

// Seal mines the pending transactions into a block and returns the receipt of tx.
func (w *Worker) Seal(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil, ErrWorkerClosed
	}
	w.backend.Commit()
	w.mu.Unlock()

	receipt, err := bind.WaitMined(ctx, w.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("wait for transaction %s: %w", tx.Hash(), err)
	}
	return receipt, nil
}

func (w *Worker) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	return w.backend.Close()
}

func (w *Worker) checkOpen() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWorkerClosed
	}
	return nil
}

func (w *Worker) transfer(ctx context.Context, from *Account, to common.Address, value *big.Int) (*types.Transaction, error) {
	nonce, err := w.backend.PendingNonceAt(ctx, from.Address())
	if err != nil {
		return nil, err
	}
	tip, err := w.backend.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, err
	}
	head, err := w.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, err
	}
	feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))

	tx, err := from.Keypair.SignTx(types.NewTx(&types.DynamicFeeTx{
		ChainID:   w.chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       transferGas,
		To:        &to,
		Value:     value,
	}), w.chainID)
	if err != nil {
		return nil, err
	}

	err = w.backend.SendTransaction(ctx, tx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}
