package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zambus/internal/auth"
	intconfig "zambus/internal/config"
	"zambus/internal/db"
	router "zambus/internal/http"
	"zambus/internal/http/handlers"
	"zambus/internal/notify"
	"zambus/internal/services"
	"zambus/internal/storage"
	"zambus/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	dotenvErr := intconfig.LoadDotEnv()
	env := intconfig.LoadEnv()

	utils.InitLogger(utils.LoggerConfig{
		Level:    env.LogLevel,
		Console:  true,
		FilePath: env.LogFile,
	})
	log := utils.Log()
	if dotenvErr != nil {
		log.Warn().Err(dotenvErr).Msg("failed to read .env")
	}
	if err := env.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	ctx := context.Background()

	var store storage.Storage = storage.NewMemory()
	if env.StorageDSN != "" {
		sqlDB, err := intconfig.ConnectDB(ctx, env.StorageDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to MySQL")
		}
		defer sqlDB.Close()

		kv := storage.SQL{DB: sqlDB}
		if err := kv.EnsureTable(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to prepare kv_store table")
		}
		store = kv
		log.Info().Msg("state persisted to MySQL")
	}

	state, err := db.Open(ctx, store, env.SeedData)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load state")
	}

	tokens, err := auth.NewManager(env.JWTSecret, env.JWTTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid JWT configuration")
	}

	hub := notify.NewHub(32)
	hd := &handlers.Handler{
		Env: services.Env{
			DB:             state,
			Notifier:       hub,
			Latency:        env.SimLatency,
			PaymentLatency: env.PaymentLatency,
		},
		Tokens:        tokens,
		Gateway:       services.NewSimulatedGateway(env.PaymentFailureRate, 0),
		Hub:           hub,
		SecureCookies: env.GinMode == gin.ReleaseMode,
	}

	r := router.NewRouter(env, hd)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Msgf("server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown failed")
	}

	log.Info().Msg("server stopped")
}
