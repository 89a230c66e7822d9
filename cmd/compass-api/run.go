package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/IBM/sarama"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	apiserver "github.com/fleetforge/migration-compass/internal/api_server"
	"github.com/fleetforge/migration-compass/internal/config"
	"github.com/fleetforge/migration-compass/internal/events"
	"github.com/fleetforge/migration-compass/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the migration-compass api",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := initialize()
		if err != nil {
			return err
		}
		defer func() { _ = zap.S().Sync() }()

		zap.S().Named("api").Info("starting migration-compass api")
		defer zap.S().Named("api").Info("migration-compass api stopped")

		zap.S().Named("api").Info("initializing data store")
		db, err := store.InitDB(cfg)
		if err != nil {
			zap.S().Named("api").Fatalf("initializing data store: %v", err)
		}

		s := store.NewStore(db)
		defer s.Close()

		if err := migrateStore(cmd.Context(), cfg, db, s); err != nil {
			zap.S().Named("api").Fatalf("running initial migration: %v", err)
		}

		if err := s.Seed(); err != nil {
			zap.S().Named("api").Fatalf("seeding the default fleet: %v", err)
		}

		eventWriter, err := newEventProducer(cfg)
		if err != nil {
			zap.S().Named("api").Fatalf("creating event producer: %v", err)
		}
		defer eventWriter.Close()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
		defer cancel()

		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.Address)
			if err != nil {
				zap.S().Named("api").Fatalf("creating listener: %v", err)
			}

			server := apiserver.New(cfg, s, listener, eventWriter)
			if err := server.Run(ctx); err != nil {
				zap.S().Named("api").Fatalf("error running api server: %v", err)
			}
		}()

		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.MetricsAddress)
			if err != nil {
				zap.S().Named("metrics").Fatalf("creating listener: %v", err)
			}

			metricsServer := apiserver.NewMetricServer(cfg.Service.MetricsAddress, listener, s)
			if err := metricsServer.Run(ctx); err != nil {
				zap.S().Named("metrics").Fatalf("error running metrics server: %v", err)
			}
		}()

		<-ctx.Done()
		return nil
	},
}

func newListener(address string) (net.Listener, error) {
	if address == "" {
		address = "localhost:0"
	}
	return net.Listen("tcp", address)
}

// newEventProducer wires the kafka writer when brokers are configured,
// falling back to stdout so events remain observable in dev setups.
func newEventProducer(cfg *config.Config) (*events.EventProducer, error) {
	opts := []events.ProducerOptions{}
	if cfg.Service.Kafka.Topic != "" {
		opts = append(opts, events.WithOutputTopic(cfg.Service.Kafka.Topic))
	}

	if len(cfg.Service.Kafka.Brokers) == 0 {
		zap.S().Named("events").Info("no kafka brokers configured, writing events to stdout")
		return events.NewEventProducer(&events.StdoutWriter{}, opts...), nil
	}

	saramaCfg := cfg.Service.Kafka.SaramaConfig
	if saramaCfg == nil {
		saramaCfg = sarama.NewConfig()
		saramaCfg.ClientID = cfg.Service.Kafka.ClientID
		saramaCfg.Version = cfg.Service.Kafka.Version
		saramaCfg.Producer.Return.Successes = true
	}

	writer, err := events.NewKafkaWriter(cfg.Service.Kafka.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}

	zap.S().Named("events").Infof("kafka producer connected: %v", cfg.Service.Kafka.Brokers)
	return events.NewEventProducer(writer, opts...), nil
}
