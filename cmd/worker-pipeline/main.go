package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mythicforge/hero-forge/internal/adapter"
	"github.com/mythicforge/hero-forge/internal/config"
	"github.com/mythicforge/hero-forge/internal/logger"
	"github.com/mythicforge/hero-forge/internal/metadata"
	"github.com/mythicforge/hero-forge/internal/providers/ethereum"
	"github.com/mythicforge/hero-forge/internal/providers/pinata"
	temporal "github.com/mythicforge/hero-forge/internal/providers/temporal"
	"github.com/mythicforge/hero-forge/internal/render"
	"github.com/mythicforge/hero-forge/internal/store"
	"github.com/mythicforge/hero-forge/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerPipelineConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "worker-pipeline",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Hero Forge pipeline worker")

	// Connect to database. TranslateError turns unique violations into
	// gorm.ErrDuplicatedKey, which the store maps to domain errors.
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(30 * time.Second)

	// Connect to the render farm queue
	renderer, err := render.NewCoordinator(ctx, render.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		RenderSubject:  cfg.NATS.RenderSubject,
		OutputDir:      cfg.Storage.RenderOutputDir,
		RenderTimeout:  cfg.NATS.RenderTimeout,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), fs, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer renderer.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))

	// Initialize the pinning client
	uploader := pinata.NewClient(pinata.Config{
		APIURL:       cfg.Pinata.APIURL,
		APIKey:       cfg.Pinata.APIKey,
		SecretAPIKey: cfg.Pinata.SecretAPIKey,
		Gateway:      cfg.Pinata.Gateway,
	}, httpClient, fs)

	// Connect to Ethereum for on-chain metadata updates
	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial Ethereum RPC", zap.Error(err), zap.String("rpc_url", cfg.Ethereum.RPCURL))
	}
	updater, err := ethereum.NewUpdater(ethereum.Config{
		ChainID:         cfg.Ethereum.ChainID,
		RegistryAddress: cfg.Ethereum.RegistryAddress,
		PrivateKey:      cfg.Ethereum.PrivateKey,
	}, ethClient)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create chain updater", zap.Error(err))
	}
	defer updater.Close()
	logger.InfoCtx(ctx, "Connected to Ethereum RPC", zap.String("rpc_url", cfg.Ethereum.RPCURL))

	assembler := metadata.NewAssembler(cfg.ExternalURL)

	// Initialize executor for activities
	executor := workflows.NewExecutor(workflows.ExecutorConfig{
		MetadataDir: cfg.Storage.MetadataDir,
	}, dataStore, renderer, uploader, updater, assembler, fs, httpClient)

	// Connect to Temporal with logger integration
	temporalLogger := temporal.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal",
		zap.String("host_port", cfg.Temporal.HostPort),
		zap.String("namespace", cfg.Temporal.Namespace),
	)

	// Create Temporal worker with logger and Sentry interceptor
	sentryInterceptor := temporal.NewSentryActivityInterceptor()
	temporalWorker := worker.New(temporalClient,
		cfg.Temporal.PipelineTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			Interceptors: []interceptor.WorkerInterceptor{
				sentryInterceptor,
			},
		})

	// Create pipeline worker instance
	pipelineWorker := workflows.NewPipelineWorker(executor)

	// Register workflows
	temporalWorker.RegisterWorkflow(pipelineWorker.CustomizeToken)
	temporalWorker.RegisterWorkflow(pipelineWorker.RerenderToken)
	logger.InfoCtx(ctx, "Registered pipeline workflows")

	// Register activities
	temporalWorker.RegisterActivity(executor.RenderCharacter)
	temporalWorker.RegisterActivity(executor.UploadImage)
	temporalWorker.RegisterActivity(executor.FetchPriorMetadata)
	temporalWorker.RegisterActivity(executor.AssembleAndUploadMetadata)
	temporalWorker.RegisterActivity(executor.UpdateChainMetadata)
	temporalWorker.RegisterActivity(executor.PersistPipelineResult)
	temporalWorker.RegisterActivity(executor.RecordPipelineFailure)
	logger.InfoCtx(ctx, "Registered pipeline activities")

	// Start the worker
	err = temporalWorker.Start()
	if err != nil {
		logger.FatalCtx(ctx, "Failed to start Temporal worker", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Pipeline worker started",
		zap.String("task_queue", cfg.Temporal.PipelineTaskQueue),
	)

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.InfoCtx(ctx, "Shutting down pipeline worker...")

	temporalWorker.Stop()

	logger.InfoCtx(ctx, "Pipeline worker stopped")
}
