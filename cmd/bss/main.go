package main

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"

	authservice "github.com/tuncanbit/bss/internal/application/auth"
	"github.com/tuncanbit/bss/internal/application/availabilityservice"
	"github.com/tuncanbit/bss/internal/application/bookingservice"
	"github.com/tuncanbit/bss/internal/application/conversionservice"
	"github.com/tuncanbit/bss/internal/application/distributionservice"
	"github.com/tuncanbit/bss/internal/application/notifier"
	"github.com/tuncanbit/bss/internal/application/paymentservice"
	"github.com/tuncanbit/bss/internal/application/reconciliationservice"
	"github.com/tuncanbit/bss/internal/application/walletservice"
	"github.com/tuncanbit/bss/internal/domain/interfaces"
	"github.com/tuncanbit/bss/internal/infrastructure/cache"
	"github.com/tuncanbit/bss/internal/infrastructure/clients"
	"github.com/tuncanbit/bss/internal/infrastructure/database"
	"github.com/tuncanbit/bss/internal/infrastructure/events"
	httpclients "github.com/tuncanbit/bss/internal/infrastructure/http/clients"
	"github.com/tuncanbit/bss/internal/repositories/reservationrepo"
	"github.com/tuncanbit/bss/internal/repositories/transactionrepo"
	"github.com/tuncanbit/bss/internal/repositories/walletrepo"
	"github.com/tuncanbit/bss/internal/server"
	"github.com/tuncanbit/bss/internal/server/handlers"
	"github.com/tuncanbit/bss/internal/server/middleware"
	"github.com/tuncanbit/bss/internal/server/websocket"
	"github.com/tuncanbit/bss/pkg/config"
	"github.com/tuncanbit/bss/pkg/logger"
)

func main() {
	bootLogger := logger.New()

	cfg, err := config.Load()
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log := logger.NewWithConfig(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.ShutDown()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply database schema")
		}
	}

	var locker cache.Locker = cache.NoopLocker{}
	var rates interfaces.ExchangeRateProvider = clients.NewExchangeAPIClient(&cfg.ExchangeAPIConfig, log)
	if cfg.Redis.Address != "" {
		rdb, err := cache.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, continuing without distributed locks or rate cache")
		} else {
			defer rdb.Close()
			locker = cache.NewRedisLocker(rdb, cfg.Redis.LockTTL, log)
			rates = cache.NewCachedRateProvider(rates, rdb, cfg.ExchangeAPIConfig.CacheTTL, log)
		}
	}

	catalog := httpclients.NewCatalogClient(cfg.Catalog, log)
	gateway := httpclients.NewGatewayClient(cfg.Gateway, log)
	email := httpclients.NewNotificationClient(cfg.Notification, log)

	wsManager := websocket.NewManager(log)
	notify := notifier.New(email, wsManager, log)

	var wg sync.WaitGroup
	background := func(name string, run func(context.Context)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			run(ctx)
			log.Info().Str("worker", name).Msg("Background worker stopped")
		}()
	}

	publisher := startEventPipeline(cfg, notify, background, log)

	reservationRepo := reservationrepo.New(db, log)
	transactionRepo := transactionrepo.New(db, log)
	walletRepo := walletrepo.New(db, log)

	walletService := walletservice.New(walletRepo, db, cfg.Settlement.Currency, log)
	availabilityService := availabilityservice.New(reservationRepo, catalog, log)
	conversionService := conversionservice.New(rates, cfg.Settlement, log)
	paymentService := paymentservice.New(transactionRepo, reservationRepo, walletService, conversionService, gateway, cfg.Settlement, log)
	bookingService := bookingservice.New(reservationRepo, availabilityService, paymentService, catalog, db, locker, publisher, cfg.Settlement, log)
	distributionService := distributionservice.New(reservationRepo, walletService, db, publisher, cfg.Distribution, cfg.Settlement.PlatformOwner, log)
	reconciliationService := reconciliationservice.New(
		transactionRepo,
		reservationRepo,
		distributionService,
		walletService,
		gateway,
		publisher,
		locker,
		cfg.Reconciliation,
		log,
	)

	if cfg.Reconciliation.Enabled {
		background("reconciliation_poller", func(ctx context.Context) {
			if err := reconciliationService.Start(ctx); err != nil && ctx.Err() == nil {
				log.Error().Err(err).Msg("Reconciliation poller stopped unexpectedly")
			}
		})
	}
	background("websocket_sweeper", func(ctx context.Context) {
		wsManager.Run(ctx, cfg.WebSocket.PingPeriod)
	})

	authService := authservice.NewAuthService(cfg.JWT, cfg.Security, log)
	mw := middleware.NewMiddleware(authService, cfg.Server, log)
	h := handlers.New(handlers.Services{
		Availability:   availabilityService,
		Bookings:       bookingService,
		Payments:       paymentService,
		Reconciliation: reconciliationService,
		Distribution:   distributionService,
		Wallets:        walletService,
	}, wsManager, db, mw, cfg, log)

	srv := server.New(cfg, h, mw, log)
	if err := srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server failed")
		stop()
	}

	wg.Wait()
	log.Info().Msg("Shutdown complete")
}

// startEventPipeline publishes to Kafka when brokers are configured and
// feeds the notifier from the topic; otherwise events go through an
// in-process dispatcher.
func startEventPipeline(cfg *config.Config, notify *notifier.Notifier, background func(string, func(context.Context)), log zerolog.Logger) interfaces.EventPublisher {
	if len(cfg.Kafka.Brokers) == 0 {
		dispatcher := events.NewDispatcher(256, 4, notify.Handle, log)
		background("event_dispatcher", dispatcher.Run)
		return dispatcher
	}

	publisher, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create kafka publisher")
	}
	consumer, err := events.NewKafkaConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create kafka consumer")
	}

	background("kafka_consumer", func(ctx context.Context) {
		defer consumer.Close()
		defer publisher.Close()
		if err := consumer.Run(ctx, notify.Handle); err != nil {
			log.Error().Err(err).Msg("Kafka consumer stopped")
		}
	})
	return publisher
}
