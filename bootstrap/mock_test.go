package bootstrap_test

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"

	"github.com/snowfork/snowbridge/lightclient-harness/chain/lightclient"
	"github.com/snowfork/snowbridge/lightclient-harness/genesis"
	beaconjson "github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/json"
)

type TestContract struct {
	mock.Mock
}

var _ lightclient.Contract = &TestContract{}

func (c *TestContract) Init(ctx context.Context, tuple genesis.Tuple) error {
	args := c.Called(tuple)
	return args.Error(0)
}

func (c *TestContract) SubmitExecutionHeader(ctx context.Context, header *types.Header) error {
	args := c.Called(header)
	return args.Error(0)
}

func (c *TestContract) SubmitBeaconUpdate(ctx context.Context, update beaconjson.LightClientUpdate, executionBlockNumber uint64) error {
	args := c.Called(update, executionBlockNumber)
	return args.Error(0)
}

func (c *TestContract) FinalizedExecutionBlock(ctx context.Context) (lightclient.BlockID, error) {
	args := c.Called()
	return args.Get(0).(lightclient.BlockID), args.Error(1)
}

func (c *TestContract) FinalizedBeaconBlock(ctx context.Context) (lightclient.BlockID, error) {
	args := c.Called()
	return args.Get(0).(lightclient.BlockID), args.Error(1)
}

func (c *TestContract) LastBlockNumber(ctx context.Context) (uint64, error) {
	args := c.Called()
	return args.Get(0).(uint64), args.Error(1)
}

func (c *TestContract) BlockHashSafe(ctx context.Context, number uint64) (common.Hash, bool, error) {
	args := c.Called(number)
	return args.Get(0).(common.Hash), args.Bool(1), args.Error(2)
}

func (c *TestContract) IsInitialized(ctx context.Context) (bool, error) {
	args := c.Called()
	return args.Bool(0), args.Error(1)
}

func (c *TestContract) Address() common.Address {
	return common.HexToAddress("0x00000000000000000000000000000000000000aa")
}

type TestSettler struct {
	mock.Mock
}

func (s *TestSettler) Settle(ctx context.Context, contract lightclient.Contract, tuple genesis.Tuple) error {
	args := s.Called(tuple)
	return args.Error(0)
}

type TestGenesisSource struct {
	mock.Mock
}

func (s *TestGenesisSource) FetchGenesis(ctx context.Context, network string) (genesis.Tuple, error) {
	args := s.Called(network)
	return args.Get(0).(genesis.Tuple), args.Error(1)
}
