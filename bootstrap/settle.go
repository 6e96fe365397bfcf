package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/snowfork/snowbridge/lightclient-harness/chain/lightclient"
	"github.com/snowfork/snowbridge/lightclient-harness/config"
	"github.com/snowfork/snowbridge/lightclient-harness/genesis"
)

var ErrSettleTimeout = errors.New("timed out waiting for initialization to settle")

// Settler blocks until an initialization is observable to subsequent reads.
type Settler interface {
	Settle(ctx context.Context, contract lightclient.Contract, tuple genesis.Tuple) error
}

// FixedDelay pauses for a fixed duration without reading the contract.
type FixedDelay struct {
	Duration time.Duration
}

func (d FixedDelay) Settle(ctx context.Context, _ lightclient.Contract, _ genesis.Tuple) error {
	log.WithField("delay", d.Duration).Info("Waiting for initialization to settle")

	timer := time.NewTimer(d.Duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Poll reads the finalized execution block until it reports the tuple's hash.
type Poll struct {
	Interval time.Duration
	Timeout  time.Duration
}

func (p Poll) Settle(ctx context.Context, contract lightclient.Contract, tuple genesis.Tuple) error {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	want := tuple.ExecutionBlockHash()
	for {
		block, err := contract.FinalizedExecutionBlock(ctx)
		if err == nil && block.Hash == want {
			log.WithFields(log.Fields{
				"hash":   block.Hash,
				"number": block.Number,
			}).Debug("Initialization settled")
			return nil
		}
		if err != nil {
			log.WithError(err).Debug("Finalized execution block not readable yet")
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%w: expected finalized execution block %s", ErrSettleTimeout, want)
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func NewSettler(cfg config.SettleConfig) (Settler, error) {
	switch cfg.Strategy {
	case config.SettleStrategyFixed:
		return FixedDelay{Duration: cfg.Delay}, nil
	case config.SettleStrategyPoll:
		if cfg.Interval <= 0 || cfg.Timeout <= 0 {
			return nil, fmt.Errorf("%w: poll interval and timeout must be positive", config.ErrInvalidField)
		}
		return Poll{Interval: cfg.Interval, Timeout: cfg.Timeout}, nil
	default:
		return nil, fmt.Errorf("%w: settle strategy %q", config.ErrInvalidField, cfg.Strategy)
	}
}
