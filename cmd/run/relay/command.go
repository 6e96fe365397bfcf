package relay

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/snowfork/snowbridge/lightclient-harness/chain/ethereum"
	"github.com/snowfork/snowbridge/lightclient-harness/chain/lightclient"
	"github.com/snowfork/snowbridge/lightclient-harness/config"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer"
	"github.com/snowfork/snowbridge/lightclient-harness/relays/beacon/header/syncer/api"
)

var (
	configFile         string
	privateKey         string
	privateKeyFile     string
	logLevel           string
	enableBinarySearch bool
	validateHeaders    bool
)

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Keep a deployed light client following the beacon and execution chains",
		Args:  cobra.ExactArgs(0),
		RunE:  run,
	}

	cmd.Flags().StringVar(&configFile, "config", "", "Path to configuration file")
	cmd.MarkFlagRequired("config")

	cmd.Flags().StringVar(&privateKey, "ethereum.private-key", "", "Ethereum private key")
	cmd.Flags().StringVar(&privateKeyFile, "ethereum.private-key-file", "", "The file from which to read the private key")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level")
	cmd.Flags().BoolVar(&enableBinarySearch, "binary-search", true, "Locate the resume point by bisection")
	cmd.Flags().BoolVar(&validateHeaders, "validate-headers", true, "Check header linkage before submitting")

	return cmd
}

func run(_ *cobra.Command, _ []string) error {
	log.SetOutput(logrus.WithFields(logrus.Fields{"logger": "stdlib"}).WriterLevel(logrus.InfoLevel))
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	err = cfg.ValidateLive()
	if err != nil {
		return err
	}

	keypair, err := ethereum.ResolvePrivateKey(privateKey, privateKeyFile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	writer := ethereum.NewConnection(&cfg.Ethereum, keypair)
	err = writer.Connect(ctx)
	if err != nil {
		return err
	}
	defer writer.Close()

	source := ethereum.NewConnection(&config.EthereumConfig{Endpoint: cfg.Eth1Endpoint}, nil)
	err = source.Connect(ctx)
	if err != nil {
		return err
	}
	defer source.Close()

	contract, err := lightclient.NewEthClientContract(ethereum.NewContractWrapper(writer, cfg.ContractAddress()))
	if err != nil {
		return err
	}

	updates := syncer.New(api.NewBeaconClient(cfg.BeaconEndpoint), source.Client(), cfg.Spec)
	relay := beacon.NewRelay(&cfg, contract, ethereum.NewHeaderSource(source), updates, beacon.Options{
		EnableBinarySearch: enableBinarySearch,
		ValidateHeaders:    validateHeaders,
	})

	logrus.WithFields(logrus.Fields{
		"contract": cfg.ContractAddress(),
		"signer":   keypair.CommonAddress(),
		"network":  cfg.Network,
	}).Info("Light client relay started up")

	eg, ctx := errgroup.WithContext(ctx)

	// Ensure clean termination upon SIGINT, SIGTERM
	eg.Go(func() error {
		notify := make(chan os.Signal, 1)
		signal.Notify(notify, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig := <-notify:
			logrus.WithField("signal", sig.String()).Info("Received signal")
			cancel()
		}

		return nil
	})

	err = relay.Start(ctx, eg)
	if err != nil {
		logrus.WithError(err).Error("Unhandled error")
		cancel()
		return err
	}

	err = eg.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		logrus.WithError(err).Error("Unhandled error")
		return err
	}

	return nil
}
