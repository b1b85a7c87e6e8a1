package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/clients/pokeapi"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/config"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine/rpgtoolkit"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/handlers/pokeadventure/v1alpha1"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/orchestrators/adventure"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/pkg/clock"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/pkg/idgen"
	redisclient "github.com/Guilhermee36/PokeAdventure-sub000/internal/redis"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/repositories/apicache"
	pokemonrepo "github.com/Guilhermee36/PokeAdventure-sub000/internal/repositories/pokemon"
)

const shutdownTimeout = 30 * time.Second

var (
	configPath string
	grpcPort   int
	httpPort   int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the PokeAdventure gRPC server and its HTTP health listener.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides config)")
	serverCmd.Flags().IntVar(&httpPort, "http-port", -1, "HTTP health port, 0 disables (overrides config)")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("http-port") {
		cfg.Server.HTTPPort = httpPort
	}
	return cfg, cfg.Validate()
}

// dependencies is everything the gRPC handler needs, built from config
type dependencies struct {
	handler     *v1alpha1.Handler
	router      http.Handler
	redisClient redisclient.Client
}

func buildDependencies(cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	redisClient, err := redisclient.NewClient(cfg.Redis.Addr, &redisclient.Options{
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	cache, err := apicache.NewRedisRepository(&apicache.Config{
		Client:     redisClient,
		Clock:      clock.New(),
		DefaultTTL: cfg.PokeAPI.CacheTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create api cache: %w", err)
	}

	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     cfg.PokeAPI.BaseURL,
		HTTPTimeout: cfg.PokeAPI.HTTPTimeout,
		Cache:       cache,
		CacheTTL:    cfg.PokeAPI.CacheTTL,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pokeapi client: %w", err)
	}

	chart, err := cfg.TypeChart()
	if err != nil {
		return nil, err
	}

	engine, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		DiceRoller:         dice.DefaultRoller,
		TypeChart:          chart,
		DefaultWildSpecies: cfg.Game.DefaultWildSpecies,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	repo, err := pokemonrepo.NewRedis(&pokemonrepo.RedisConfig{
		Client: redisClient,
		Clock:  clock.New(),
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pokemon repository: %w", err)
	}

	bus := events.NewBus()
	for _, eventType := range []string{
		adventure.EventPokemonSpawned,
		adventure.EventPokemonCaptured,
		adventure.EventPokemonEvolved,
	} {
		bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			logger.Debug("domain event",
				zap.String("event", e.Type()),
				zap.String("source", e.Source().GetID()),
				zap.String("target", e.Target().GetID()))
			return nil
		})
	}

	service, err := adventure.NewOrchestrator(&adventure.Config{
		Engine:      engine,
		Client:      client,
		PokemonRepo: repo,
		IDGenerator: idgen.NewUUID("pkmn"),
		EventBus:    bus,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create adventure service: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{AdventureService: service})
	if err != nil {
		return nil, fmt.Errorf("failed to create adventure handler: %w", err)
	}

	return &dependencies{
		handler:     handler,
		router:      newHTTPRouter(chart, logger),
		redisClient: redisClient,
	}, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Server.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	deps, err := buildDependencies(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = deps.redisClient.Close() }()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	recoveryOpt := grpc_recovery.WithRecoveryHandler(func(p any) error {
		logger.Error("recovered from panic", zap.Any("panic", p))
		return status.Errorf(codes.Internal, "internal error")
	})
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	v1alpha1.RegisterAdventureServiceServer(srv, deps.handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.AdventureServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 2)
	go func() {
		logger.Info("gRPC server starting", zap.Int("port", cfg.Server.GRPCPort))
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	var httpServer *http.Server
	if cfg.Server.HTTPPort > 0 {
		httpServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler:           deps.router,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("HTTP server starting", zap.Int("port", cfg.Server.HTTPPort))
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errChan <- fmt.Errorf("failed to serve http: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if httpServer != nil {
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Warn("http shutdown failed", zap.Error(err))
			}
		}

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			logger.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		srv.Stop()
		return err
	}
}
