// Package harness composes provisioning, genesis correlation and bootstrap into ready light
// client handles and relay drivers for end-to-end tests.
package harness

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/snowfork/snowbridge/lightclient-harness/bootstrap"
	"github.com/snowfork/snowbridge/lightclient-harness/chain/ethereum"
	"github.com/snowfork/snowbridge/lightclient-harness/chain/lightclient"
	"github.com/snowfork/snowbridge/lightclient-harness/config"
	"github.com/snowfork/snowbridge/lightclient-harness/fixtures"
	"github.com/snowfork/snowbridge/lightclient-harness/genesis"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/api"
	"github.com/snowfork/snowbridge/lightclient-harness/sandbox"
)

// Handle is an initialized light client on its own sandbox. Close releases the sandbox and
// any live connections; the contract must not be used afterwards.
type Handle struct {
	Contract    lightclient.Contract
	Environment *sandbox.Environment
	Genesis     genesis.Tuple
	sources     *sources
}

func (h *Handle) Close() error {
	h.sources.close()
	return h.Environment.Close()
}

type RelayHandle struct {
	*Handle
	Relay *beacon.Relay
}

// BuildContractHandle provisions a sandbox and initializes the light client in it, from the
// fixture set when useFixtures is set and from the live endpoints otherwise.
func BuildContractHandle(ctx context.Context, cfg *config.Config, useFixtures bool) (*Handle, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	settler, err := bootstrap.NewSettler(cfg.Settle)
	if err != nil {
		return nil, err
	}

	if useFixtures {
		return buildFromFixtures(ctx, cfg, settler)
	}
	return buildFromLive(ctx, cfg, settler)
}

// BuildRelayDriver builds a contract handle and a relay driving it in validating mode.
func BuildRelayDriver(ctx context.Context, cfg *config.Config, enableBinarySearch, useFixtures bool) (*RelayHandle, error) {
	handle, err := BuildContractHandle(ctx, cfg, useFixtures)
	if err != nil {
		return nil, err
	}

	relay := beacon.NewRelay(cfg, handle.Contract, handle.sources.headers, handle.sources.updates, beacon.Options{
		EnableBinarySearch: enableBinarySearch,
		ValidateHeaders:    true,
	})

	return &RelayHandle{Handle: handle, Relay: relay}, nil
}

func buildFromFixtures(ctx context.Context, cfg *config.Config, settler bootstrap.Settler) (*Handle, error) {
	var env *sandbox.Environment
	var src *sources

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		env, err = sandbox.NewProvisioner(cfg.Sandbox).Provision(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		src, err = fixtureSources(egCtx, cfg.Fixtures)
		return err
	})

	err := eg.Wait()
	if err != nil {
		if env != nil {
			_ = env.Close()
		}
		return nil, err
	}

	contract, err := lightclient.NewEthClientContract(env.Wrapper())
	if err != nil {
		_ = env.Close()
		return nil, err
	}

	err = bootstrap.Init(ctx, contract, src.tuple, settler)
	if err != nil {
		_ = env.Close()
		return nil, err
	}

	log.WithFields(log.Fields{
		"contract":       contract.Address(),
		"executionBlock": src.tuple.ExecutionBlockNumber(),
	}).Info("Built light client from fixtures")

	return &Handle{
		Contract:    contract,
		Environment: env,
		Genesis:     src.tuple,
		sources:     src,
	}, nil
}

func buildFromLive(ctx context.Context, cfg *config.Config, settler bootstrap.Settler) (*Handle, error) {
	src, err := liveSources(ctx, cfg)
	if err != nil {
		return nil, err
	}

	env, err := sandbox.NewProvisioner(cfg.Sandbox).Provision(ctx)
	if err != nil {
		src.close()
		return nil, err
	}

	fail := func(err error) (*Handle, error) {
		src.close()
		_ = env.Close()
		return nil, err
	}

	contract, err := lightclient.NewEthClientContract(env.Wrapper())
	if err != nil {
		return fail(err)
	}

	tuple, err := bootstrap.FromLive(ctx, contract, src.genesis, cfg.Network, settler)
	if err != nil {
		return fail(err)
	}

	log.WithFields(log.Fields{
		"contract":       contract.Address(),
		"network":        cfg.Network,
		"executionBlock": tuple.ExecutionBlockNumber(),
	}).Info("Built light client from live chain data")

	return &Handle{
		Contract:    contract,
		Environment: env,
		Genesis:     tuple,
		sources:     src,
	}, nil
}

type sources struct {
	tuple   genesis.Tuple
	genesis bootstrap.GenesisSource
	headers header.ExecutionHeaderSource
	updates header.UpdateSource
	close   func()
}

func fixtureSources(ctx context.Context, cfg config.FixtureConfig) (*sources, error) {
	loader, err := fixtures.NewLoader(cfg)
	if err != nil {
		return nil, err
	}

	bundle, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	tuple, err := genesis.Correlate(bundle)
	if err != nil {
		return nil, err
	}

	return &sources{
		tuple:   tuple,
		headers: header.NewFixtureHeaderSource(bundle.ExecutionHeaders),
		updates: header.NewFixtureUpdateSource(bundle.LightClientUpdates),
		close:   func() {},
	}, nil
}

func liveSources(ctx context.Context, cfg *config.Config) (*sources, error) {
	if cfg.BeaconEndpoint == "" {
		return nil, fmt.Errorf("%w: beacon-endpoint", config.ErrMissingField)
	}
	if cfg.Eth1Endpoint == "" {
		return nil, fmt.Errorf("%w: eth1-endpoint", config.ErrMissingField)
	}

	conn := ethereum.NewConnection(&config.EthereumConfig{Endpoint: cfg.Eth1Endpoint}, nil)
	err := conn.Connect(ctx)
	if err != nil {
		return nil, err
	}

	s := syncer.New(api.NewBeaconClient(cfg.BeaconEndpoint), conn.Client(), cfg.Spec)

	return &sources{
		genesis: s,
		headers: ethereum.NewHeaderSource(conn),
		updates: s,
		close:   conn.Close,
	}, nil
}
