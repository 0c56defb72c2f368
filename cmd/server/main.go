package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"

	"courier/auth"
	"courier/infrastructure/grpc/server"
	"courier/infrastructure/search"
	"courier/moderation"
	pbaccount "courier/proto/account"
	pbmessaging "courier/proto/messaging"
	"courier/repositories"
	"courier/runtime"
	"courier/runtime/workers"
	"courier/services"
	"courier/sink"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting. This pattern is preferred over calling
// os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for gRPC and background workers.
func run() error {
	// 1. Configuration & Logger
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Storage (BadgerDB) & full-text index (Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	indexWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing search index...")
		_ = indexWriter.Close()
	}()

	// 3. Repositories & moderation
	userRepository := repositories.NewUserRepository(db, log)
	friendshipRepository := repositories.NewFriendshipRepository(db, log)
	conversationRepository := repositories.NewConversationRepository(db, log)
	messageRepository := repositories.NewMessageRepository(db, log)
	messageIndex := search.NewMessageIndex(indexWriter, log)

	censored, err := moderation.NewCensoredLoader().LoadAll("censored")
	if err != nil {
		return fmt.Errorf("censored words loading failed: %w", err)
	}
	log.Info(fmt.Sprintf("%d censored files loaded [%s]",
		len(censored.Languages), strings.Join(censored.Languages, ",")))
	log.Info(fmt.Sprintf("%d unique censored words loaded", len(censored.Words)))

	moderator, err := moderation.NewModerator(censored.Words, config.ModerationCharReplacement, log)
	if err != nil {
		return fmt.Errorf("moderator build failed: %w", err)
	}

	// 4. Supervision & orchestration
	supervisor := workers.NewSupervisor(log)
	registry := runtime.NewRegistry()
	orchestrator := runtime.NewOrchestrator(log, supervisor, registry,
		config.BufferSize, config.SinkTimeout, config.MetricInterval)
	orchestrator.RegisterSinks(
		sink.NewUnreadSink(conversationRepository, log),
		sink.NewSearchSink(messageIndex, log),
	)

	// 5. Services
	authService := services.NewAuthService(userRepository, config.TokenDuration, log)
	userService := services.NewUserService(userRepository, log)
	friendshipService := services.NewFriendshipService(friendshipRepository, userRepository, orchestrator, log)
	conversationService := services.NewConversationService(conversationRepository,
		messageRepository, userRepository, friendshipService, orchestrator, log)
	messageService := services.NewMessageService(messageRepository, conversationRepository,
		messageIndex, moderator, orchestrator, log)

	// 6. Context & signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 7. Start the engine
	if err = orchestrator.Start(ctx); err != nil {
		return fmt.Errorf("orchestrator failed to start: %w", err)
	}

	// 8. gRPC server setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(
		grpc.UnaryInterceptor(auth.UnaryInterceptor),
		grpc.StreamInterceptor(auth.StreamInterceptor),
	)
	pbaccount.RegisterAuthServiceServer(s, server.NewAuthServer(authService))
	pbaccount.RegisterUserServiceServer(s, server.NewUserServer(userService))
	pbmessaging.RegisterFriendshipServiceServer(s, server.NewFriendshipServer(friendshipService, userService))
	pbmessaging.RegisterConversationServiceServer(s, server.NewConversationServer(conversationService))
	pbmessaging.RegisterMessageServiceServer(s, server.NewMessageServer(log, messageService,
		conversationService, orchestrator, config.ConnectionBufferSize))

	// Use an error channel to capture Serve() issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 9. Wait for stop or error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 10. Final cleanup
	s.GracefulStop()
	orchestrator.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
