package cache

import (
	"errors"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"
)

const SubmittedHeadersLimit = 50

var ErrHeaderNotCached = errors.New("execution header not in submitted window")

type Finalized struct {
	// Stores the root of the last successfully imported beacon header
	LastSyncedHash common.Hash
	// Stores the last successfully synced slot
	LastSyncedSlot uint64
	// Stores the execution block the last synced beacon header finalized
	LastSyncedExecutionNumber uint64
}

type SubmittedHeaders struct {
	Numbers []uint64
	Hashes  map[uint64]common.Hash
}

type BeaconCache struct {
	LastSyncedSyncCommitteePeriod uint64
	Finalized                     Finalized
	Submitted                     SubmittedHeaders
	slotsInEpoch                  uint64
	epochsPerSyncCommitteePeriod  uint64
	mu                            sync.Mutex
}

func New(slotsInEpoch, epochsPerSyncCommitteePeriod uint64) *BeaconCache {
	return &BeaconCache{
		slotsInEpoch:                 slotsInEpoch,
		epochsPerSyncCommitteePeriod: epochsPerSyncCommitteePeriod,
		Submitted: SubmittedHeaders{
			Numbers: []uint64{},
			Hashes:  make(map[uint64]common.Hash),
		},
	}
}

func (b *BeaconCache) SetLastSyncedFinalizedState(finalizedHeaderRoot common.Hash, slot, executionNumber uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if slot > b.Finalized.LastSyncedSlot {
		b.Finalized.LastSyncedHash = finalizedHeaderRoot
		b.Finalized.LastSyncedSlot = slot
		b.Finalized.LastSyncedExecutionNumber = executionNumber
		b.LastSyncedSyncCommitteePeriod = slot / (b.slotsInEpoch * b.epochsPerSyncCommitteePeriod)
	}
}

func (b *BeaconCache) LastFinalizedHeader() common.Hash {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Finalized.LastSyncedHash
}

func (b *BeaconCache) LastFinalizedSlot() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Finalized.LastSyncedSlot
}

// AddSubmittedHeader records an execution header accepted by the light client. Only the most
// recent SubmittedHeadersLimit numbers are kept.
func (b *BeaconCache) AddSubmittedHeader(number uint64, hash common.Hash) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.addNumber(number)
	b.Submitted.Hashes[number] = hash

	b.pruneOldHeaders()
}

func (b *BeaconCache) SubmittedHash(number uint64) (common.Hash, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	hash, ok := b.Submitted.Hashes[number]
	if !ok {
		return common.Hash{}, ErrHeaderNotCached
	}
	return hash, nil
}

// DropAbove forgets submitted headers above number, used when the light client's chain
// was rewound.
func (b *BeaconCache) DropAbove(number uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	keep := 0
	for _, n := range b.Submitted.Numbers {
		if n > number {
			delete(b.Submitted.Hashes, n)
			continue
		}
		b.Submitted.Numbers[keep] = n
		keep++
	}
	b.Submitted.Numbers = b.Submitted.Numbers[:keep]
}

func (b *BeaconCache) pruneOldHeaders() {
	count := len(b.Submitted.Numbers)
	if count <= SubmittedHeadersLimit {
		return
	}

	numbersToKeep := b.Submitted.Numbers[count-SubmittedHeadersLimit : count]
	numbersToPrune := b.Submitted.Numbers[0 : count-SubmittedHeadersLimit]

	for _, number := range numbersToPrune {
		delete(b.Submitted.Hashes, number)
	}

	log.WithField("prunedNumbers", numbersToPrune).Debug("pruned submitted headers from cache")

	b.Submitted.Numbers = numbersToKeep
}

func (b *BeaconCache) addNumber(number uint64) {
	for _, n := range b.Submitted.Numbers {
		if n == number {
			return
		}
	}
	b.Submitted.Numbers = append(b.Submitted.Numbers, number)
	sort.Slice(b.Submitted.Numbers, func(i, j int) bool { return b.Submitted.Numbers[i] < b.Submitted.Numbers[j] })
}
