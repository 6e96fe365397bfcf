package header

import (
	"context"
	"fmt"
	"sort"

	goEthereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	beaconjson "github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/json"
)

// FixtureHeaderSource serves a fixed set of execution headers.
type FixtureHeaderSource struct {
	byNumber map[uint64]*types.Header
	byHash   map[common.Hash]*types.Header
	latest   uint64
}

func NewFixtureHeaderSource(headers []*types.Header) *FixtureHeaderSource {
	source := &FixtureHeaderSource{
		byNumber: make(map[uint64]*types.Header, len(headers)),
		byHash:   make(map[common.Hash]*types.Header, len(headers)),
	}

	for _, header := range headers {
		number := header.Number.Uint64()
		source.byNumber[number] = header
		source.byHash[header.Hash()] = header
		if number > source.latest {
			source.latest = number
		}
	}

	return source
}

func (s *FixtureHeaderSource) HeaderByNumber(_ context.Context, number uint64) (*types.Header, error) {
	header, ok := s.byNumber[number]
	if !ok {
		return nil, fmt.Errorf("execution header %d: %w", number, goEthereum.NotFound)
	}
	return header, nil
}

func (s *FixtureHeaderSource) HeaderByHash(_ context.Context, hash common.Hash) (*types.Header, error) {
	header, ok := s.byHash[hash]
	if !ok {
		return nil, fmt.Errorf("execution header %s: %w", hash, goEthereum.NotFound)
	}
	return header, nil
}

func (s *FixtureHeaderSource) LatestNumber(_ context.Context) (uint64, error) {
	return s.latest, nil
}

// FixtureUpdateSource serves a fixed set of finality updates.
type FixtureUpdateSource struct {
	updates []beaconjson.LightClientUpdate
}

func NewFixtureUpdateSource(updates []beaconjson.LightClientUpdate) *FixtureUpdateSource {
	sorted := make([]beaconjson.LightClientUpdate, len(updates))
	copy(sorted, updates)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].FinalizedSlot() < sorted[j].FinalizedSlot() })

	return &FixtureUpdateSource{updates: sorted}
}

func (s *FixtureUpdateSource) FinalityUpdates(_ context.Context, afterSlot uint64) ([]beaconjson.LightClientUpdate, error) {
	index := sort.Search(len(s.updates), func(i int) bool { return s.updates[i].FinalizedSlot() > afterSlot })
	return s.updates[index:], nil
}
