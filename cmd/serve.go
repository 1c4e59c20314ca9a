package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dtroode/users-server/internal/api/grpc/health"
	grpcRouter "github.com/dtroode/users-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/users-server/internal/api/grpc/server"
	"github.com/dtroode/users-server/internal/api/http/handler"
	"github.com/dtroode/users-server/internal/api/http/router"
	httpServer "github.com/dtroode/users-server/internal/api/http/server"
	"github.com/dtroode/users-server/internal/config"
	"github.com/dtroode/users-server/internal/logger"
	"github.com/dtroode/users-server/internal/model"
	"github.com/dtroode/users-server/internal/repository/postgres"
	"github.com/dtroode/users-server/internal/server"
	"github.com/dtroode/users-server/internal/service"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server and the health endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
			defer stop()

			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := logger.NewFile(cfg.LogLevel, logFileOptions(cfg))
	logAppVersion(logger)

	db, err := postgres.NewConnection(ctx, cfg.Database.URL, postgres.ConnectionOptions{
		MaxConns:       cfg.Database.MaxConns,
		ConnectRetries: cfg.Database.ConnectRetries,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	userService := service.NewUser(userRepo, logger, cfg.StrictMutations)
	userHandler := handler.NewUser(userService, logger)
	httpRouter := router.New(userHandler, cfg.HTTP.Namespace, logger)

	servers := []model.Server{
		httpServer.NewTCPServer(httpRouter.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), httpServer.Options{
			MaxRequestBytes: cfg.HTTP.MaxRequestBytes,
			Sequential:      cfg.HTTP.Sequential,
			MaxConnections:  cfg.HTTP.MaxConnections,
			ReadTimeout:     cfg.HTTP.ReadTimeout,
			WriteTimeout:    cfg.HTTP.WriteTimeout,
		}, logger),
	}

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Health.Enabled {
		checker := health.NewChecker(db, cfg.Health.Interval, logger)
		grpcSrv := grpcRouter.New(checker, logger).Register()
		servers = append(servers, grpcServer.NewGRPCServer(grpcSrv, fmt.Sprintf(":%s", cfg.Health.Port)))

		g.Go(func() error {
			checker.Run(gctx)
			return nil
		})
	}

	sl := securityLayer(cfg.HTTP)
	for _, s := range servers {
		s := s
		g.Go(func() error {
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("received interruption signal, shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		for _, s := range servers {
			if err := s.Stop(shutdownCtx); err != nil {
				logger.Error("error during server shutdown", "error", err, "address", s.Address())
			}
		}
		return nil
	})

	err = g.Wait()
	logger.Info("shutdown complete")
	return err
}

func securityLayer(cfg config.HTTP) model.SecurityLayer {
	if cfg.EnableHTTPS {
		return server.NewTLSListener(cfg.CertFileName, cfg.PrivateKeyFileName)
	}
	return server.NewPlainListener()
}

func logFileOptions(cfg *config.Config) logger.FileOptions {
	return logger.FileOptions{
		Path:       cfg.LogFile.Path,
		MaxSize:    cfg.LogFile.MaxSize,
		MaxBackups: cfg.LogFile.MaxBackups,
		MaxAge:     cfg.LogFile.MaxAge,
		Compress:   cfg.LogFile.Compress,
	}
}

func logAppVersion(logger *logger.Logger) {
	logger.Info("build info", "version", buildVersion, "date", buildDate, "commit", buildCommit)
}
