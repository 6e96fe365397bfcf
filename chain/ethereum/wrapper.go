package ethereum

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/snowfork/snowbridge/lightclient-harness/chain/lightclient"
)

var _ lightclient.Wrapper = &ContractWrapper{}

// ContractWrapper addresses a contract deployed on the chain behind a Connection.
type ContractWrapper struct {
	conn    *Connection
	address common.Address
}

func NewContractWrapper(conn *Connection, address common.Address) *ContractWrapper {
	return &ContractWrapper{conn: conn, address: address}
}

func (w *ContractWrapper) Address() common.Address {
	return w.address
}

func (w *ContractWrapper) Backend() bind.ContractBackend {
	return w.conn.Client()
}

func (w *ContractWrapper) CallOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx, From: w.conn.Keypair().CommonAddress()}
}

func (w *ContractWrapper) TransactOpts(ctx context.Context) *bind.TransactOpts {
	return w.conn.MakeTxOpts(ctx)
}

func (w *ContractWrapper) Wait(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return w.conn.WatchTransaction(ctx, tx, w.conn.config.Confirmations)
}
