package main

import (
	"collab-hub/auth"
	"collab-hub/clock"
	"collab-hub/contract"
	pb "collab-hub/infrastructure/grpc/api"
	"collab-hub/infrastructure/email"
	"collab-hub/infrastructure/feed"
	"collab-hub/infrastructure/grpc/server"
	"collab-hub/infrastructure/storage"
	"collab-hub/internal"
	"collab-hub/moderation"
	"collab-hub/observability"
	"collab-hub/runtime"
	"collab-hub/runtime/workers"
	"collab-hub/services"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	grpc3 "github.com/mama165/sdk-go/grpc"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const tokenLifetime = 24 * time.Hour

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hub terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component, serves until a signal or a fatal error and
// leaves the deferred cleanups to close the stores.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}
	tokens, err := auth.NewTokenManager(config.JWTSecret, tokenLifetime)
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.SetupTracing(ctx, "collab-hub", config.OtelEndpoint)
	if err != nil {
		return exitRuntime, fmt.Errorf("tracing setup failed: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(flushCtx)
	}()

	// 2. Stores
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) {
		debugPort := config.HealthPort + 1
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", debugPort, endpoint))
		database.StartDebugServer(db, debugPort, endpoint, inspectMapper)
	}

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	channels := storage.NewChannelRepository(db, logger)
	messages := storage.NewMessageRepository(db, logger)
	notifications := storage.NewNotificationRepository(db, logger)
	directory := storage.NewDirectoryRepository(db, logger)
	documents := storage.NewDocumentRepository(db, logger)
	tickets := storage.NewTicketRepository(db, logger)
	reports := storage.NewReportRepository(db, logger)
	outbox := storage.NewOutboxRepository(db, logger)
	index := storage.NewMessageIndex(blugeWriter, logger)

	// 3. Change feed & supervision
	sink := observability.NewLogErrorSink(logger)
	registry := runtime.NewRegistry(sink, logger)
	sup := workers.NewSupervisor(config.RestartInterval, sink, logger)

	var changes contract.ChangeFeed = feed.NewLocalFeed(registry)
	if config.RedisURL != "" {
		redisFeed, err := feed.NewRedisFeed(config.RedisURL, config.RedisChangeChannel, registry, logger)
		if err != nil {
			return exitRuntime, err
		}
		defer func() { _ = redisFeed.Close() }()
		sup.Add(redisFeed)
		changes = redisFeed
		logger.Info("Change feed shared through Redis", "channel", config.RedisChangeChannel)
	}

	censor, err := buildCensor(config, charReplacement, logger)
	if err != nil {
		return exitRuntime, err
	}

	mailer := email.NewSMTPSender(email.Config{
		Host:     config.SMTPHost,
		Port:     config.SMTPPort,
		Username: config.SMTPUsername,
		Password: config.SMTPPassword,
		From:     config.SMTPFrom,
		FromName: config.SMTPFromName,
	}, logger)
	if !mailer.IsConfigured() {
		logger.Warn("SMTP not configured, document emails will be reported as failed")
	}

	// 4. Services
	clk := clock.Real()
	notificationService := services.NewNotificationService(notifications, directory, changes, sink,
		registry, clk, config.NotificationFeedWindow, logger)
	fanout := services.NewFanoutEngine(channels, directory, notificationService, mailer, sink, config.AppURL, logger)
	delivery := workers.NewLatencyHandler(fanout, clk, config.LatencyThreshold, logger)
	relay := workers.NewOutboxRelay(outbox, delivery, sink, logger,
		config.OutboxInterval, config.OutboxBatchSize, config.OutboxMaxAttempts)
	sup.Add(relay)

	chatService := services.NewChatService(channels, messages, index, directory, changes, sink, relay, censor,
		registry, clk, services.ChatConfig{MaxContentLength: config.MaxContentLength, MessageWindow: config.MessageWindow}, logger)
	workflowService := services.NewWorkflowService(documents, tickets, reports, directory, relay, clk, logger)

	errChan := make(chan error, 3)

	// 5. Background workers
	supervised := make(chan struct{})
	go func() {
		defer close(supervised)
		logger.Info("Starting supervisor...")
		sup.Run(ctx)
	}()

	// 6. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(
		grpc.ForceServerCodec(pb.Codec{}),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(logger),
			auth.UnaryInterceptor(tokens),
		),
		grpc.ChainStreamInterceptor(auth.StreamInterceptor(tokens)),
	)
	pb.RegisterChatServiceServer(s, server.NewChatServer(chatService, logger))
	pb.RegisterNotificationServiceServer(s, server.NewNotificationServer(notificationService, logger))
	pb.RegisterWorkflowServiceServer(s, server.NewWorkflowServer(workflowService, logger))

	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("gRPC exposed services", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	health := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.HealthPort),
		Handler:           internal.NewHealthRouter(sink),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("Starting health server", "address", health.Addr)
		if err := health.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("health server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	code := exitOK
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errChan:
		code = exitRuntime
	}

	// 8. Final Cleanup (Graceful Shutdown)
	logger.Info("Shutting down gracefully...")
	s.GracefulStop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = health.Shutdown(shutdownCtx)
	sup.Stop()
	<-supervised
	logger.Info("Program stopped cleanly")

	return code, runErr
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}

// buildCensor returns nil when moderation is disabled.
func buildCensor(config internal.Config, charReplacement rune, logger *slog.Logger) (contract.Censor, error) {
	if !config.ModerationEnabled {
		return nil, nil
	}
	dictionaries, err := moderation.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("loading censored words: %w", err)
	}
	censor, err := moderation.NewLanguageModerator(dictionaries, charReplacement, logger)
	if err != nil {
		return nil, fmt.Errorf("building moderator: %w", err)
	}
	logger.Info("Moderation enabled", "languages", dictionaries.Languages())
	return censor, nil
}

func inspectMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	described := storage.Describe(key, val)
	row.Type = described.Kind
	row.Detail = described.Detail
	return row
}
