package syncer

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"

	"github.com/snowfork/snowbridge/lightclient-harness/config"
	"github.com/snowfork/snowbridge/lightclient-harness/fixtures"
	"github.com/snowfork/snowbridge/lightclient-harness/genesis"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/api"
	beaconjson "github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/json"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/scale"
)

var ErrExecutionHeaderMismatch = errors.New("execution header does not match finalized beacon header")

// ExecutionHeaderFetcher reads headers from an execution node.
type ExecutionHeaderFetcher interface {
	HeaderByHash(ctx context.Context, hash common.Hash) (*types.Header, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

type Syncer struct {
	Client  api.BeaconAPI
	headers ExecutionHeaderFetcher
	setting config.SpecSettings
}

func New(client api.BeaconAPI, headers ExecutionHeaderFetcher, setting config.SpecSettings) *Syncer {
	return &Syncer{
		Client:  client,
		headers: headers,
		setting: setting,
	}
}

func (s *Syncer) GetFinalizedUpdate(ctx context.Context) (beaconjson.LightClientUpdate, error) {
	response, err := s.Client.GetLatestFinalizedUpdate(ctx)
	if err != nil {
		return beaconjson.LightClientUpdate{}, fmt.Errorf("fetch latest finalized update: %w", err)
	}

	update, err := response.ToLightClientUpdate()
	if err != nil {
		return beaconjson.LightClientUpdate{}, fmt.Errorf("convert latest finalized update: %w", err)
	}

	return update, nil
}

// FinalityUpdates returns the latest finality update if it finalizes a slot after afterSlot.
// Beacon nodes only serve the latest one, so there is at most one.
func (s *Syncer) FinalityUpdates(ctx context.Context, afterSlot uint64) ([]beaconjson.LightClientUpdate, error) {
	update, err := s.GetFinalizedUpdate(ctx)
	if err != nil {
		return nil, err
	}

	if update.FinalizedSlot() <= afterSlot {
		return nil, nil
	}

	return []beaconjson.LightClientUpdate{update}, nil
}

// FetchBundle pulls a fixture set anchored at the latest finalized beacon header: the
// finality update, both sync committees for its period and headerCount execution headers
// starting at the finalized execution block.
func (s *Syncer) FetchBundle(ctx context.Context, network string, headerCount uint64) (*fixtures.Bundle, error) {
	update, err := s.GetFinalizedUpdate(ctx)
	if err != nil {
		return nil, err
	}
	finalized := update.FinalityUpdate.HeaderUpdate

	header, err := scale.BeaconHeaderFromJSON(finalized.BeaconHeader)
	if err != nil {
		return nil, fmt.Errorf("convert finalized header: %w", err)
	}
	root, err := header.BlockRoot()
	if err != nil {
		return nil, err
	}

	bootstrap, err := s.Client.GetBootstrap(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("fetch bootstrap for %s: %w", root, err)
	}

	period := s.setting.ComputeSyncPeriodAtSlot(finalized.BeaconHeader.Slot)
	periodUpdate, err := s.Client.GetSyncCommitteePeriodUpdate(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("fetch sync committee update for period %d: %w", period, err)
	}

	executionHash := common.HexToHash(finalized.ExecutionBlockHash)
	anchor, err := s.headers.HeaderByHash(ctx, executionHash)
	if err != nil {
		return nil, fmt.Errorf("fetch execution header %s: %w", executionHash, err)
	}
	if anchor.Hash() != executionHash {
		return nil, fmt.Errorf("%w: %s", ErrExecutionHeaderMismatch, executionHash)
	}

	headers := []*types.Header{anchor}
	for i := uint64(1); i < headerCount; i++ {
		number := new(big.Int).Add(anchor.Number, new(big.Int).SetUint64(i))
		next, err := s.headers.HeaderByNumber(ctx, number)
		if err != nil {
			log.WithError(err).WithField("number", number).Info("stopping at unavailable execution header")
			break
		}
		headers = append(headers, next)
	}

	log.WithFields(log.Fields{
		"network":        network,
		"beaconSlot":     finalized.BeaconHeader.Slot,
		"beaconRoot":     root,
		"executionBlock": anchor.Number,
		"headers":        len(headers),
		"period":         period,
	}).Info("fetched live fixture set")

	return &fixtures.Bundle{
		Network:              network,
		ExecutionHeaders:     headers,
		LightClientUpdates:   []beaconjson.LightClientUpdate{update},
		CurrentSyncCommittee: bootstrap.Data.CurrentSyncCommittee.ToJSON(),
		NextSyncCommittee:    periodUpdate.ToSyncCommitteeUpdate().NextSyncCommittee,
	}, nil
}

// FetchGenesis builds the initialization tuple for network from the live chains.
func (s *Syncer) FetchGenesis(ctx context.Context, network string) (genesis.Tuple, error) {
	bundle, err := s.FetchBundle(ctx, network, 1)
	if err != nil {
		return genesis.Tuple{}, err
	}

	return genesis.Correlate(bundle)
}
