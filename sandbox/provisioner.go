package sandbox

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	log "github.com/sirupsen/logrus"

	"github.com/snowfork/snowbridge/lightclient-harness/config"
)

var ErrProvision = errors.New("provision sandbox")

// Environment is a running sandbox chain, the light client deployed on it and the funded
// account that signs for the relay. Handles derived from it must not outlive Close.
type Environment struct {
	Worker   *Worker
	Account  *Account
	Contract common.Address
}

func (e *Environment) Wrapper() *ContractWrapper {
	return NewContractWrapper(e.Worker, e.Account, e.Contract)
}

func (e *Environment) Close() error {
	return e.Worker.Close()
}

type Provisioner struct {
	config config.SandboxConfig
}

func NewProvisioner(config config.SandboxConfig) *Provisioner {
	return &Provisioner{config: config}
}

// Provision starts a network, deploys the contract, then creates the relay account from the
// root identity. Nothing is returned unless every step succeeded.
func (p *Provisioner) Provision(ctx context.Context) (*Environment, error) {
	code, err := ReadContractCode(p.config.ContractPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProvision, err)
	}

	worker, err := StartWorker(p.config.GasLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: start worker: %w", ErrProvision, err)
	}

	env, err := p.provision(ctx, worker, code)
	if err != nil {
		_ = worker.Close()
		return nil, fmt.Errorf("%w: %w", ErrProvision, err)
	}

	log.WithFields(log.Fields{
		"contract": env.Contract,
		"account":  env.Account.Address(),
		"chainID":  worker.ChainID(),
	}).Info("Provisioned sandbox")

	return env, nil
}

func (p *Provisioner) provision(ctx context.Context, worker *Worker, code []byte) (*Environment, error) {
	address, err := worker.DevDeploy(ctx, code)
	if err != nil {
		return nil, err
	}

	root := worker.RootAccount()

	account, err := worker.CreateSubAccount(ctx, root, p.config.AccountName, p.config.InitialBalance)
	if err != nil {
		return nil, err
	}

	balance, err := worker.Balance(ctx, account)
	if err != nil {
		return nil, err
	}
	if balance.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnfunded, account.Address())
	}

	return &Environment{
		Worker:   worker,
		Account:  account,
		Contract: address,
	}, nil
}

// ReadContractCode reads hex encoded creation code.
func ReadContractCode(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read contract %s: %w", path, err)
	}

	text := strings.TrimSpace(string(data))
	if !strings.HasPrefix(text, "0x") {
		text = "0x" + text
	}

	code, err := hexutil.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("decode contract %s: %w", path, err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("decode contract %s: empty", path)
	}

	return code, nil
}
