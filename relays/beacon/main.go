package beacon

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/snowfork/snowbridge/lightclient-harness/chain/lightclient"
	"github.com/snowfork/snowbridge/lightclient-harness/config"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header"
)

type Options struct {
	EnableBinarySearch bool
	ValidateHeaders    bool
}

// Relay keeps a light client contract following the execution and beacon chains.
type Relay struct {
	config   *config.Config
	contract lightclient.Contract
	headers  *header.Header
}

func NewRelay(
	config *config.Config,
	contract lightclient.Contract,
	headerSource header.ExecutionHeaderSource,
	updateSource header.UpdateSource,
	opts Options,
) *Relay {
	headerOpts := header.OptionsFromConfig(config)
	headerOpts.EnableBinarySearch = opts.EnableBinarySearch
	headerOpts.ValidateHeaders = opts.ValidateHeaders

	return &Relay{
		config:   config,
		contract: contract,
		headers:  header.New(contract, headerSource, updateSource, config.Spec, headerOpts),
	}
}

func (r *Relay) Contract() lightclient.Contract {
	return r.contract
}

func (r *Relay) Headers() *header.Header {
	return r.headers
}

func (r *Relay) Start(ctx context.Context, eg *errgroup.Group) error {
	return r.headers.Sync(ctx, eg)
}

// SyncOnce runs a single relay cycle.
func (r *Relay) SyncOnce(ctx context.Context) error {
	return r.headers.SyncOnce(ctx)
}
