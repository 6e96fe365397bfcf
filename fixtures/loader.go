package fixtures

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"
	"github.com/snowfork/snowbridge/lightclient-harness/config"
	beaconjson "github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/json"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnreadableFixture = errors.New("unreadable fixture")
	ErrMalformedFixture  = errors.New("malformed fixture")
)

// Bundle is one complete fixture set.
type Bundle struct {
	Network              string
	ExecutionHeaders     []*types.Header
	LightClientUpdates   []beaconjson.LightClientUpdate
	CurrentSyncCommittee beaconjson.SyncCommittee
	NextSyncCommittee    beaconjson.SyncCommittee
}

// Loader reads a fixture set. Nothing is cached, every call goes back to disk.
type Loader struct {
	dir     string
	network string
	names   Names
}

func NewLoader(cfg config.FixtureConfig) (*Loader, error) {
	names, err := RenderNames(cfg)
	if err != nil {
		return nil, err
	}

	return &Loader{
		dir:     cfg.Dir,
		network: cfg.Network,
		names:   names,
	}, nil
}

func (l *Loader) Network() string {
	return l.network
}

func (l *Loader) Path(name string) string {
	return filepath.Join(l.dir, name)
}

func (l *Loader) ExecutionHeaders() ([]*types.Header, error) {
	return ReadExecutionHeaders(l.Path(l.names.ExecutionHeaders))
}

func (l *Loader) LightClientUpdates() ([]beaconjson.LightClientUpdate, error) {
	return ReadLightClientUpdates(l.Path(l.names.LightClientUpdates))
}

func (l *Loader) CurrentSyncCommittee() (beaconjson.SyncCommittee, error) {
	return ReadSyncCommittee(l.Path(l.names.CurrentSyncCommittee))
}

func (l *Loader) NextSyncCommittee() (beaconjson.SyncCommittee, error) {
	return ReadSyncCommittee(l.Path(l.names.NextSyncCommittee))
}

// Load reads the four fixture sources concurrently.
func (l *Loader) Load(ctx context.Context) (*Bundle, error) {
	bundle := Bundle{Network: l.network}

	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		bundle.ExecutionHeaders, err = l.ExecutionHeaders()
		return err
	})
	eg.Go(func() (err error) {
		bundle.LightClientUpdates, err = l.LightClientUpdates()
		return err
	})
	eg.Go(func() (err error) {
		bundle.CurrentSyncCommittee, err = l.CurrentSyncCommittee()
		return err
	})
	eg.Go(func() (err error) {
		bundle.NextSyncCommittee, err = l.NextSyncCommittee()
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"dir":                l.dir,
		"network":            l.network,
		"executionHeaders":   len(bundle.ExecutionHeaders),
		"lightClientUpdates": len(bundle.LightClientUpdates),
	}).Debug("loaded fixture set")

	return &bundle, nil
}

func ReadExecutionHeaders(path string) ([]*types.Header, error) {
	headers, err := readJSON[[]*types.Header](path)
	if err != nil {
		return nil, err
	}
	if headers == nil {
		return nil, fmt.Errorf("%w %s: expected a list of execution headers", ErrMalformedFixture, path)
	}
	for i, header := range headers {
		if header == nil {
			return nil, fmt.Errorf("%w %s: execution header %d is null", ErrMalformedFixture, path, i)
		}
	}

	return headers, nil
}

func ReadLightClientUpdates(path string) ([]beaconjson.LightClientUpdate, error) {
	updates, err := readJSON[[]beaconjson.LightClientUpdate](path)
	if err != nil {
		return nil, err
	}
	if updates == nil {
		return nil, fmt.Errorf("%w %s: expected a list of light client updates", ErrMalformedFixture, path)
	}

	return updates, nil
}

func ReadSyncCommittee(path string) (beaconjson.SyncCommittee, error) {
	committee, err := readJSON[beaconjson.SyncCommittee](path)
	if err != nil {
		return beaconjson.SyncCommittee{}, err
	}
	if len(committee.Pubkeys) == 0 || committee.AggregatePubkey == "" {
		return beaconjson.SyncCommittee{}, fmt.Errorf("%w %s: sync committee without keys", ErrMalformedFixture, path)
	}

	return committee, nil
}

func readJSON[T any](path string) (T, error) {
	var value T

	data, err := os.ReadFile(path)
	if err != nil {
		return value, fmt.Errorf("%w %s: %w", ErrUnreadableFixture, path, err)
	}

	err = json.Unmarshal(data, &value)
	if err != nil {
		return value, fmt.Errorf("%w %s: %w", ErrMalformedFixture, path, err)
	}

	return value, nil
}
