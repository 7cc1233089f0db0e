package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"fsanano/train-booking/internal/config"
	"fsanano/train-booking/internal/handler"
	"fsanano/train-booking/internal/logger"
	"fsanano/train-booking/internal/repository"
	"fsanano/train-booking/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Setup storage
	var (
		userStore   service.UserStore
		trainStore  service.TrainStore
		ticketStore service.TicketStore
	)
	if cfg.UsePostgres() {
		dbPool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			zl.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer dbPool.Close()

		if err := dbPool.Ping(ctx); err != nil {
			zl.Fatal("Failed to ping database", zap.Error(err))
		}
		zl.Info("Connected to database")

		if cfg.Migrate {
			if err := repository.Migrate(ctx, dbPool); err != nil {
				zl.Fatal("Failed to migrate database", zap.Error(err))
			}
		}

		userStore = repository.NewUserRepository(dbPool)
		trainStore = repository.NewTrainRepository(dbPool)
		ticketStore = repository.NewTicketRepository(dbPool)
	} else {
		zl.Warn("DATABASE_URL not set, using in-memory storage")
		userStore = repository.NewMemoryUserStore()
		trainStore = repository.NewMemoryTrainStore()
		ticketStore = repository.NewMemoryTicketStore()
	}

	// 3. Setup Logic
	userService := service.NewUserService(userStore)
	trainService := service.NewTrainService(trainStore)
	ticketService := service.NewTicketService(ticketStore, userService, trainService)

	h := handler.NewHandler(zl,
		handler.NewUserHandler(userService, zl),
		handler.NewTrainHandler(trainService, zl),
		handler.NewTicketHandler(ticketService, zl),
	)

	// 4. Setup Server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: h,
	}

	// 5. Run Server with Graceful Shutdown
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zl.Info("Starting server", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		zl.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zl.Error("Server stopped with error", zap.Error(err))
		return
	}

	zl.Info("Server exiting")
}
