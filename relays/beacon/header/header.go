package header

import (
	"context"
	"errors"
	"fmt"
	"time"

	goEthereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/snowfork/snowbridge/lightclient-harness/chain/lightclient"
	"github.com/snowfork/snowbridge/lightclient-harness/config"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/cache"
	beaconjson "github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/json"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/scale"
)

const defaultSyncInterval = 10 * time.Second

var (
	ErrNoNewHeaders               = errors.New("no new execution headers")
	ErrFinalizedHeaderUnchanged   = errors.New("finalized header unchanged")
	ErrFinalizedHeaderNotImported = errors.New("finalized header not imported")
	ErrHeaderLinkBroken           = errors.New("execution header does not link to its parent")
	ErrResumePointUnknown         = errors.New("light client finalized block unknown")
)

// ExecutionHeaderSource serves execution headers. Headers it does not have yet are reported
// with go-ethereum's NotFound.
type ExecutionHeaderSource interface {
	HeaderByNumber(ctx context.Context, number uint64) (*types.Header, error)
	HeaderByHash(ctx context.Context, hash common.Hash) (*types.Header, error)
	LatestNumber(ctx context.Context) (uint64, error)
}

// UpdateSource serves finality updates newer than a slot, oldest first.
type UpdateSource interface {
	FinalityUpdates(ctx context.Context, afterSlot uint64) ([]beaconjson.LightClientUpdate, error)
}

type Options struct {
	// EnableBinarySearch locates the resume point by bisection instead of walking back from
	// the light client's last block.
	EnableBinarySearch bool
	// ValidateHeaders checks number and parent linkage before each submission.
	ValidateHeaders          bool
	TotalSubmitHeaders       uint64
	MaxBlocksForFinalization uint64
	// UpdateIntervalSlots is the minimum slot distance between submitted finality updates.
	UpdateIntervalSlots uint64
	Interval            time.Duration
}

// OptionsFromConfig derives the relay options config controls.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		TotalSubmitHeaders:       cfg.TotalSubmitHeaders,
		MaxBlocksForFinalization: cfg.MaxBlocksForFinalization,
		UpdateIntervalSlots:      cfg.LightClientUpdatesSubmissionFrequencyInEpochs * cfg.Spec.SlotsInEpoch,
		Interval:                 cfg.Relay.Interval,
	}
}

type Header struct {
	cache    *cache.BeaconCache
	contract lightclient.Contract
	headers  ExecutionHeaderSource
	updates  UpdateSource
	opts     Options
}

func New(contract lightclient.Contract, headers ExecutionHeaderSource, updates UpdateSource, setting config.SpecSettings, opts Options) *Header {
	return &Header{
		cache:    cache.New(setting.SlotsInEpoch, setting.EpochsPerSyncCommitteePeriod),
		contract: contract,
		headers:  headers,
		updates:  updates,
		opts:     opts,
	}
}

func (h *Header) Cache() *cache.BeaconCache {
	return h.cache
}

// LoadState seeds the cache from the light client's finalized state.
func (h *Header) LoadState(ctx context.Context) error {
	beacon, err := h.contract.FinalizedBeaconBlock(ctx)
	if err != nil {
		return fmt.Errorf("fetch finalized beacon block: %w", err)
	}
	execution, err := h.contract.FinalizedExecutionBlock(ctx)
	if err != nil {
		return fmt.Errorf("fetch finalized execution block: %w", err)
	}

	log.WithFields(log.Fields{
		"last_finalized_hash":   beacon.Hash,
		"last_finalized_slot":   beacon.Number,
		"last_execution_hash":   execution.Hash,
		"last_execution_number": execution.Number,
	}).Info("set cache: Current state")
	h.cache.SetLastSyncedFinalizedState(beacon.Hash, beacon.Number, execution.Number)
	h.cache.AddSubmittedHeader(execution.Number, execution.Hash)

	return nil
}

func (h *Header) Sync(ctx context.Context, eg *errgroup.Group) error {
	err := h.LoadState(ctx)
	if err != nil {
		return err
	}

	log.Info("starting to sync execution headers")

	interval := h.opts.Interval
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	ticker := time.NewTicker(interval)

	eg.Go(func() error {
		defer ticker.Stop()
		for {
			err := h.SyncOnce(ctx)
			logFields := log.Fields{
				"finalized_header": h.cache.LastFinalizedHeader(),
				"finalized_slot":   h.cache.LastFinalizedSlot(),
			}
			switch {
			case errors.Is(err, ErrNoNewHeaders):
				log.WithFields(logFields).Debug("no new execution headers")
			case errors.Is(err, ErrFinalizedHeaderUnchanged):
				log.WithFields(logFields).Info("not importing unchanged header")
			case errors.Is(err, ErrFinalizedHeaderNotImported):
				log.WithFields(logFields).WithError(err).Warn("Not importing header this cycle")
			case errors.Is(err, context.Canceled):
				return nil
			case err != nil:
				return err
			}

			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				continue
			}
		}
	})

	return nil
}

// SyncOnce submits the next batch of execution headers, then the newest finality update the
// light client can accept.
func (h *Header) SyncOnce(ctx context.Context) error {
	headersErr := h.SyncExecutionHeaders(ctx)
	if headersErr != nil && !errors.Is(headersErr, ErrNoNewHeaders) {
		return headersErr
	}

	err := h.SyncFinalizedHeader(ctx)
	if err != nil {
		return err
	}

	return headersErr
}

func (h *Header) SyncExecutionHeaders(ctx context.Context) error {
	finalized, err := h.contract.FinalizedExecutionBlock(ctx)
	if err != nil {
		return fmt.Errorf("fetch finalized execution block: %w", err)
	}
	last, err := h.contract.LastBlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("fetch last block number: %w", err)
	}

	resume, err := h.FindResumePoint(ctx, finalized.Number, last)
	if err != nil {
		return err
	}
	if resume < last {
		log.WithFields(log.Fields{
			"last":   last,
			"resume": resume,
		}).Warn("light client diverged from source chain, rewinding")
		h.cache.DropAbove(resume)
	}

	end := resume + h.opts.TotalSubmitHeaders
	if limit := finalized.Number + h.opts.MaxBlocksForFinalization; end > limit {
		end = limit
	}
	latest, err := h.headers.LatestNumber(ctx)
	if err != nil {
		return fmt.Errorf("fetch latest execution block: %w", err)
	}
	if end > latest {
		end = latest
	}
	if end <= resume {
		return ErrNoNewHeaders
	}

	parent, ok, err := h.contract.BlockHashSafe(ctx, resume)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: block %d", ErrResumePointUnknown, resume)
	}

	submitted := 0
	for number := resume + 1; number <= end; number++ {
		header, err := h.headers.HeaderByNumber(ctx, number)
		if errors.Is(err, goEthereum.NotFound) {
			break
		}
		if err != nil {
			return err
		}

		if h.opts.ValidateHeaders && (header.Number.Uint64() != number || header.ParentHash != parent) {
			return fmt.Errorf("%w: block %d", ErrHeaderLinkBroken, number)
		}

		err = h.contract.SubmitExecutionHeader(ctx, header)
		if err != nil {
			return fmt.Errorf("submit execution header %d: %w", number, err)
		}

		h.cache.AddSubmittedHeader(number, header.Hash())
		parent = header.Hash()
		submitted++
	}

	if submitted == 0 {
		return ErrNoNewHeaders
	}

	log.WithFields(log.Fields{
		"from": resume + 1,
		"to":   resume + uint64(submitted),
	}).Info("submitted execution headers")

	return nil
}

// FindResumePoint returns the highest block in [finalized, last] on which the light client
// and the source agree. Agreement holds for a prefix of the range, which is what makes
// bisection valid.
func (h *Header) FindResumePoint(ctx context.Context, finalized, last uint64) (uint64, error) {
	if last <= finalized {
		return finalized, nil
	}

	if h.opts.EnableBinarySearch {
		low, high := finalized, last
		for low < high {
			mid := low + (high-low+1)/2
			agree, err := h.agrees(ctx, mid)
			if err != nil {
				return 0, err
			}
			if agree {
				low = mid
			} else {
				high = mid - 1
			}
		}
		return low, nil
	}

	for number := last; number > finalized; number-- {
		agree, err := h.agrees(ctx, number)
		if err != nil {
			return 0, err
		}
		if agree {
			return number, nil
		}
	}

	return finalized, nil
}

func (h *Header) agrees(ctx context.Context, number uint64) (bool, error) {
	stored, ok, err := h.contract.BlockHashSafe(ctx, number)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	header, err := h.headers.HeaderByNumber(ctx, number)
	if errors.Is(err, goEthereum.NotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return header.Hash() == stored, nil
}

func (h *Header) SyncFinalizedHeader(ctx context.Context) error {
	current, err := h.contract.FinalizedBeaconBlock(ctx)
	if err != nil {
		return fmt.Errorf("fetch finalized beacon block: %w", err)
	}

	updates, err := h.updates.FinalityUpdates(ctx, current.Number)
	if err != nil {
		return fmt.Errorf("fetch finality updates: %w", err)
	}

	interval := h.opts.UpdateIntervalSlots
	if interval == 0 {
		interval = 1
	}
	candidates := make([]beaconjson.LightClientUpdate, 0, len(updates))
	for _, update := range updates {
		if update.FinalizedSlot() >= current.Number+interval {
			candidates = append(candidates, update)
		}
	}
	if len(candidates) == 0 {
		return ErrFinalizedHeaderUnchanged
	}

	for i := len(candidates) - 1; i >= 0; i-- {
		update := candidates[i]
		number, imported, err := h.executionBlockImported(ctx, update)
		if err != nil {
			return err
		}
		if !imported {
			continue
		}

		return h.submitFinalityUpdate(ctx, update, number)
	}

	return fmt.Errorf("%w: %d candidates, newest at slot %d", ErrFinalizedHeaderNotImported, len(candidates), candidates[len(candidates)-1].FinalizedSlot())
}

func (h *Header) executionBlockImported(ctx context.Context, update beaconjson.LightClientUpdate) (uint64, bool, error) {
	hash := common.HexToHash(update.FinalityUpdate.HeaderUpdate.ExecutionBlockHash)

	header, err := h.headers.HeaderByHash(ctx, hash)
	if errors.Is(err, goEthereum.NotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	number := header.Number.Uint64()
	stored, ok, err := h.contract.BlockHashSafe(ctx, number)
	if err != nil {
		return 0, false, err
	}

	return number, ok && stored == hash, nil
}

func (h *Header) submitFinalityUpdate(ctx context.Context, update beaconjson.LightClientUpdate, number uint64) error {
	beaconHeader, err := scale.BeaconHeaderFromJSON(update.FinalityUpdate.HeaderUpdate.BeaconHeader)
	if err != nil {
		return fmt.Errorf("convert finalized header: %w", err)
	}
	root, err := beaconHeader.BlockRoot()
	if err != nil {
		return err
	}

	err = h.contract.SubmitBeaconUpdate(ctx, update, number)
	if err != nil {
		return fmt.Errorf("submit finality update at slot %d: %w", update.FinalizedSlot(), err)
	}

	h.cache.SetLastSyncedFinalizedState(root, update.FinalizedSlot(), number)

	log.WithFields(log.Fields{
		"slot":           update.FinalizedSlot(),
		"root":           root,
		"executionBlock": number,
	}).Info("imported finalized header")

	return nil
}
