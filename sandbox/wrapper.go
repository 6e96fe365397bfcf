package sandbox

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/snowfork/snowbridge/lightclient-harness/chain/lightclient"
)

var _ lightclient.Wrapper = &ContractWrapper{}

// ContractWrapper signs for a contract on a sandbox chain. Each transaction is sealed into a
// block as soon as it is waited on.
type ContractWrapper struct {
	worker  *Worker
	account *Account
	address common.Address
}

func NewContractWrapper(worker *Worker, account *Account, address common.Address) *ContractWrapper {
	return &ContractWrapper{
		worker:  worker,
		account: account,
		address: address,
	}
}

func (w *ContractWrapper) Address() common.Address {
	return w.address
}

func (w *ContractWrapper) Backend() bind.ContractBackend {
	return w.worker.Backend()
}

func (w *ContractWrapper) CallOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx, From: w.account.Address()}
}

func (w *ContractWrapper) TransactOpts(ctx context.Context) *bind.TransactOpts {
	return w.worker.TransactOpts(ctx, w.account)
}

func (w *ContractWrapper) Wait(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return w.worker.Seal(ctx, tx)
}
