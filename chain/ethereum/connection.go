// Copyright 2020 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package ethereum

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"time"

	goEthereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	log "github.com/sirupsen/logrus"

	"github.com/snowfork/snowbridge/lightclient-harness/config"
	"github.com/snowfork/snowbridge/lightclient-harness/crypto/secp256k1"
)

const receiptPollInterval = 500 * time.Millisecond

type Connection struct {
	endpoint string
	kp       *secp256k1.Keypair
	client   *ethclient.Client
	chainID  *big.Int
	config   *config.EthereumConfig
}

type JsonError interface {
	Error() string
	ErrorCode() int
	ErrorData() interface{}
}

func NewConnection(config *config.EthereumConfig, kp *secp256k1.Keypair) *Connection {
	return &Connection{
		endpoint: config.Endpoint,
		kp:       kp,
		config:   config,
	}
}

func (co *Connection) Connect(ctx context.Context) error {
	client, err := ethclient.DialContext(ctx, co.endpoint)
	if err != nil {
		return fmt.Errorf("dial %s: %w", co.endpoint, err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return fmt.Errorf("fetch chain id: %w", err)
	}

	log.WithFields(log.Fields{
		"endpoint": co.endpoint,
		"chainID":  chainID,
	}).Info("Connected to chain")

	co.client = client
	co.chainID = chainID

	return nil
}

func (co *Connection) Close() {
	if co.client != nil {
		co.client.Close()
	}
}

func (co *Connection) Client() *ethclient.Client {
	return co.client
}

func (co *Connection) Keypair() *secp256k1.Keypair {
	return co.kp
}

func (co *Connection) ChainID() *big.Int {
	return co.chainID
}

// HeaderByHash fetches an execution header from the connected node.
func (co *Connection) HeaderByHash(ctx context.Context, hash common.Hash) (*types.Header, error) {
	header, err := co.client.HeaderByHash(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("fetch execution header %s: %w", hash, err)
	}
	return header, nil
}

// queryFailingError replays a failed transaction as a call so the node reports the revert reason.
func (co *Connection) queryFailingError(ctx context.Context, hash common.Hash) error {
	tx, _, err := co.client.TransactionByHash(ctx, hash)
	if err != nil {
		return err
	}

	from, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
	if err != nil {
		return err
	}

	params := goEthereum.CallMsg{
		From:     from,
		To:       tx.To(),
		Gas:      tx.Gas(),
		GasPrice: tx.GasPrice(),
		Value:    tx.Value(),
		Data:     tx.Data(),
	}

	log.WithFields(log.Fields{
		"From":     from,
		"To":       tx.To(),
		"Gas":      tx.Gas(),
		"GasPrice": tx.GasPrice(),
		"Value":    tx.Value(),
		"Data":     hex.EncodeToString(tx.Data()),
	}).Info("Call info")

	_, err = co.client.CallContract(ctx, params, nil)
	return err
}

func (co *Connection) waitForTransaction(ctx context.Context, tx *types.Transaction, confirmations uint64) (*types.Receipt, error) {
	for {
		receipt, err := co.pollTransaction(ctx, tx, confirmations)
		if err != nil {
			return nil, err
		}

		if receipt != nil {
			return receipt, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(receiptPollInterval):
		}
	}
}

func (co *Connection) pollTransaction(ctx context.Context, tx *types.Transaction, confirmations uint64) (*types.Receipt, error) {
	receipt, err := co.client.TransactionReceipt(ctx, tx.Hash())
	if err != nil {
		if errors.Is(err, goEthereum.NotFound) {
			return nil, nil
		}
		return nil, err
	}

	latestHeader, err := co.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, err
	}

	if latestHeader.Number.Uint64()-receipt.BlockNumber.Uint64() >= confirmations {
		return receipt, nil
	}

	return nil, nil
}

func (co *Connection) WatchTransaction(ctx context.Context, tx *types.Transaction, confirmations uint64) (*types.Receipt, error) {
	receipt, err := co.waitForTransaction(ctx, tx, confirmations)
	if err != nil {
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		err = co.queryFailingError(ctx, receipt.TxHash)
		logFields := log.Fields{
			"txHash": tx.Hash().Hex(),
		}
		if err != nil {
			logFields["error"] = err.Error()
			var jsonErr JsonError
			if errors.As(err, &jsonErr) {
				logFields["code"] = fmt.Sprintf("%v", jsonErr.ErrorData())
			}
		}
		log.WithFields(logFields).Error("Failed to send transaction")
		return receipt, nil
	}
	return receipt, nil
}

func (co *Connection) MakeTxOpts(ctx context.Context) *bind.TransactOpts {
	return makeTxOpts(ctx, co.config, co.kp, co.chainID)
}

func makeTxOpts(ctx context.Context, cfg *config.EthereumConfig, keypair *secp256k1.Keypair, chainID *big.Int) *bind.TransactOpts {
	options := bind.TransactOpts{
		From: keypair.CommonAddress(),
		Signer: func(_ common.Address, tx *types.Transaction) (*types.Transaction, error) {
			return keypair.SignTx(tx, chainID)
		},
		Context: ctx,
	}

	if cfg.GasFeeCap > 0 {
		options.GasFeeCap = new(big.Int).SetUint64(cfg.GasFeeCap)
	}

	if cfg.GasTipCap > 0 {
		options.GasTipCap = new(big.Int).SetUint64(cfg.GasTipCap)
	}

	if cfg.GasLimit > 0 {
		options.GasLimit = cfg.GasLimit
	}

	return &options
}
