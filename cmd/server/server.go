package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/mech-armor-api/internal/catalog"
	"github.com/KirkDiggler/mech-armor-api/internal/config"
	"github.com/KirkDiggler/mech-armor-api/internal/handlers/armor/v1alpha1"
	"github.com/KirkDiggler/mech-armor-api/internal/orchestrators/armor"
	"github.com/KirkDiggler/mech-armor-api/internal/pkg/clock"
	"github.com/KirkDiggler/mech-armor-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/mech-armor-api/internal/redis"
	armordraft "github.com/KirkDiggler/mech-armor-api/internal/repositories/armor_draft"
	"github.com/KirkDiggler/mech-armor-api/internal/repositories/loadout"
)

const (
	shutdownTimeout  = 30 * time.Second
	redisPingTimeout = 5 * time.Second
	meterName        = "github.com/KirkDiggler/mech-armor-api"
)

var configFile string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the mech armor gRPC server with draft storage, the loadout database and the armor service.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().Int("port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&configFile, "config", "", "config file (default ./mech-armor.yaml)")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	v := config.New()
	if err := bindFlags(v, cmd); err != nil {
		return nil, err
	}
	return config.Load(v, configFile)
}

// bindFlags lets an explicitly set --port win over the config file and environment
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlag("server.port", cmd.Flags().Lookup("port")); err != nil {
		return fmt.Errorf("failed to bind port flag: %w", err)
	}
	return nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := cfg.Log.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service, cleanup, err := buildService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ArmorService: service,
	})
	if err != nil {
		return fmt.Errorf("failed to create armor handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic)),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic)),
		),
	)

	v1alpha1.RegisterArmorServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("gRPC server starting on port %d...", cfg.Server.Port)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down gRPC server...")
		healthServer.Shutdown()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-time.After(shutdownTimeout):
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}
		return nil
	})

	return g.Wait()
}

// buildService wires storage, the event bus and metrics into the armor orchestrator. The
// returned cleanup closes every connection that was opened.
func buildService(ctx context.Context, cfg *config.Config) (armor.Service, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	draftRepo, closeDrafts, err := buildDraftRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, closeDrafts)

	db, err := loadout.Open(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to open loadout database: %w", err)
	}
	closers = append(closers, func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close() // nolint:errcheck // safe to ignore in cleanup
		}
	})

	loadoutRepo, err := loadout.NewGorm(&loadout.GormConfig{DB: db})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create loadout repository: %w", err)
	}

	armorCatalog, err := catalog.Default()
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to load armor catalog: %w", err)
	}

	bus := events.NewBus()
	subscribeEventLog(bus)

	service, err := armor.NewOrchestrator(&armor.Config{
		DraftRepo:          draftRepo,
		LoadoutRepo:        loadoutRepo,
		Catalog:            armorCatalog,
		DraftIDGenerator:   idgen.NewUUID("draft"),
		LoadoutIDGenerator: idgen.NewUUID("loadout"),
		Clock:              clock.New(),
		EventBus:           bus,
		Meter:              newMeter(cfg.Metrics),
		HistoryLimit:       cfg.Drafts.HistoryLimit,
		SessionIdleTimeout: cfg.Drafts.TTL,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create armor orchestrator: %w", err)
	}

	log.Printf("Armor service ready (drafts: %s, loadouts: %s)", draftStore(cfg), cfg.DB.Driver)
	return service, cleanup, nil
}

func buildDraftRepository(ctx context.Context, cfg *config.Config) (armordraft.Repository, func(), error) {
	if !cfg.Redis.Enabled {
		return armordraft.NewInMemory(), func() {}, nil
	}

	client, err := redisclient.NewClient(cfg.Redis.Addr, &redisclient.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	closeClient := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		closeClient()
		return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Redis.Addr, err)
	}

	repo, err := armordraft.NewRedis(&armordraft.RedisConfig{
		Client: client,
		TTL:    cfg.Drafts.TTL,
	})
	if err != nil {
		closeClient()
		return nil, nil, fmt.Errorf("failed to create draft repository: %w", err)
	}
	return repo, closeClient, nil
}

func draftStore(cfg *config.Config) string {
	if cfg.Redis.Enabled {
		return "redis " + cfg.Redis.Addr
	}
	return "memory"
}

// newMeter returns the global meter when metrics are enabled. The global provider stays a
// no-op until an exporter installs one.
func newMeter(cfg config.MetricsConfig) metric.Meter {
	if !cfg.Enabled {
		return noop.Meter{}
	}
	return otel.Meter(meterName)
}

// subscribeEventLog logs published armor events at debug, and saved loadouts at info
func subscribeEventLog(bus events.EventBus) {
	bus.SubscribeFunc(armor.EventArmorLoadoutSaved, 100, func(ctx context.Context, e events.Event) error {
		loadoutID, _ := e.Context().Get("loadout_id")
		slog.InfoContext(ctx, "Loadout saved",
			"draft_id", e.Source().GetID(),
			"loadout_id", loadoutID,
		)
		return nil
	})

	for _, eventType := range []string{armor.EventArmorChanged, armor.EventArmorDistributionApplied} {
		bus.SubscribeFunc(eventType, 100, func(ctx context.Context, e events.Event) error {
			slog.DebugContext(ctx, "Armor event",
				"event", e.Type(),
				"draft_id", e.Source().GetID(),
			)
			return nil
		})
	}
}

// interceptorLogger adapts slog to the grpc-middleware logging interface. The middleware
// levels share slog's numeric values.
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func recoverPanic(p any) error {
	slog.Error("Recovered from panic in gRPC handler", "panic", p)
	return status.Errorf(codes.Internal, "internal error")
}
