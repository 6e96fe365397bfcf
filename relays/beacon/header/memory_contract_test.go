package header_test

import (
	"context"
	"errors"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/snowfork/snowbridge/lightclient-harness/chain/lightclient"
	"github.com/snowfork/snowbridge/lightclient-harness/genesis"
	beaconjson "github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/json"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/scale"
)

var errRejected = errors.New("rejected by light client")

// memoryContract keeps light client state in memory and accepts exactly what the deployed
// contract accepts.
type memoryContract struct {
	mu          sync.Mutex
	initialized bool
	execution   lightclient.BlockID
	beacon      lightclient.BlockID
	last        uint64
	hashes      map[uint64]common.Hash
	hashReads   int
	submitted   int
}

var _ lightclient.Contract = &memoryContract{}

func newMemoryContract(tuple genesis.Tuple) *memoryContract {
	c := &memoryContract{hashes: make(map[uint64]common.Hash)}
	if err := c.Init(context.Background(), tuple); err != nil {
		panic(err)
	}
	return c
}

func (c *memoryContract) Init(_ context.Context, tuple genesis.Tuple) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return lightclient.ErrAlreadyInitialized
	}
	c.initialized = true
	c.execution = lightclient.BlockID{Hash: tuple.ExecutionBlockHash(), Number: tuple.ExecutionBlockNumber()}
	c.beacon = lightclient.BlockID{Hash: tuple.BeaconBlockRoot(), Number: tuple.BeaconSlot()}
	c.last = tuple.ExecutionBlockNumber()
	c.hashes[c.last] = tuple.ExecutionBlockHash()
	return nil
}

func (c *memoryContract) SubmitExecutionHeader(_ context.Context, header *types.Header) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	number := header.Number.Uint64()
	if number <= c.execution.Number || number > c.last+1 || c.hashes[number-1] != header.ParentHash {
		return errRejected
	}
	c.hashes[number] = header.Hash()
	c.last = number
	c.submitted++
	return nil
}

func (c *memoryContract) SubmitBeaconUpdate(_ context.Context, update beaconjson.LightClientUpdate, number uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	hash := common.HexToHash(update.FinalityUpdate.HeaderUpdate.ExecutionBlockHash)
	if update.FinalizedSlot() <= c.beacon.Number || number < c.execution.Number || number > c.last || c.hashes[number] != hash {
		return errRejected
	}

	header, err := scale.BeaconHeaderFromJSON(update.FinalityUpdate.HeaderUpdate.BeaconHeader)
	if err != nil {
		return err
	}
	root, err := header.BlockRoot()
	if err != nil {
		return err
	}

	c.execution = lightclient.BlockID{Hash: hash, Number: number}
	c.beacon = lightclient.BlockID{Hash: root, Number: update.FinalizedSlot()}
	return nil
}

func (c *memoryContract) FinalizedExecutionBlock(context.Context) (lightclient.BlockID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.execution, nil
}

func (c *memoryContract) FinalizedBeaconBlock(context.Context) (lightclient.BlockID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.beacon, nil
}

func (c *memoryContract) LastBlockNumber(context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, nil
}

func (c *memoryContract) BlockHashSafe(_ context.Context, number uint64) (common.Hash, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.hashReads++
	if number > c.last {
		return common.Hash{}, false, nil
	}
	hash, ok := c.hashes[number]
	return hash, ok && hash != (common.Hash{}), nil
}

func (c *memoryContract) IsInitialized(context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized, nil
}

func (c *memoryContract) Address() common.Address {
	return common.Address{}
}

func (c *memoryContract) resetReads() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hashReads = 0
}
