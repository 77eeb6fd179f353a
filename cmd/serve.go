package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "neighbortask.com/neighbortask/internal/configs"
	"neighbortask.com/neighbortask/internal/fixtures"
	httpapi "neighbortask.com/neighbortask/internal/http"
	middleware "neighbortask.com/neighbortask/internal/http/middlewares"
	"neighbortask.com/neighbortask/internal/queue"
	repository "neighbortask.com/neighbortask/internal/repositories"
	"neighbortask.com/neighbortask/internal/services"
	"neighbortask.com/neighbortask/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the marketplace HTTP API and notification workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		db := config.NewSQLite(cfg.DatabaseDSN)
		if err := fixtures.Seed(db); err != nil {
			log.Fatalf("failed to seed fixtures: %v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		tokenManager := queue.NewRedisTokenManager(redisClient, cfg.NotifyQueueKey)
		if err := tokenManager.InitializeTokens(ctx, cfg.NotifyQueueSize); err != nil {
			log.Fatalf("failed to initialize notify queue tokens: %v", err)
		}

		taskRepo := repository.NewTaskRepository(db)
		appRepo := repository.NewApplicationRepository(db)
		connRepo := repository.NewConnectionRepository(db)
		msgRepo := repository.NewMessageRepository(db)
		notifRepo := repository.NewNotificationRepository(db)

		notifier := services.NewNotifierService(tokenManager, notifRepo, cfg.NotifyWorkers, cfg.NotifyQueueSize)

		snapshots := session.NewRedisStore(redisClient, cfg.SessionKey)
		authService := services.NewAuthService(
			snapshots,
			[]byte(cfg.JWTSecret),
			time.Duration(cfg.AuthDelayMS)*time.Millisecond,
		)
		if err := authService.Resume(ctx); err != nil {
			log.Printf("session resume failed: %v", err)
		}

		taskService := services.NewTaskService(taskRepo, appRepo, connRepo, notifier)
		connectionService := services.NewConnectionService(connRepo, taskRepo)
		messageService := services.NewMessageService(msgRepo, taskRepo)

		e := echo.New()
		handler := httpapi.NewHandler(authService, taskService, connectionService, messageService, notifier)
		httpapi.Register(e, handler, middleware.RequireSession(authService), cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(shutdownCtx)
		notifier.Shutdown(shutdownCtx)

		log.Println("HTTP server and notification workers shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
