package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelease/internal/config"
	"travelease/internal/distance"
	router "travelease/internal/http"
	"travelease/internal/idempotency"
	"travelease/internal/logging"
	"travelease/internal/metrics"
	"travelease/internal/utils"

	"github.com/rs/zerolog"
)

func main() {
	env := config.LoadEnv()

	log := logging.New(env.LogLevel, env.LogFormat)
	utils.SetLogger(log)

	metrics.Register()

	config.ConnectDB(env)
	defer config.CloseDB()

	r := router.NewRouter(router.RouterDeps{
		Env:       env,
		Log:       log,
		Idem:      buildIdempotencyStore(env, log),
		Estimator: distance.NewStub(time.Now().UnixNano()),
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", env.AppAddr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
}

// buildIdempotencyStore prefers Redis with an in-memory fallback; without a
// configured Redis address the process runs on memory alone.
func buildIdempotencyStore(env config.Env, log *zerolog.Logger) idempotency.Store {
	memory := idempotency.NewMemoryStore(24 * time.Hour)
	if env.RedisAddr == "" {
		log.Info().Msg("redis not configured, settlement idempotency is in-memory only")
		return memory
	}
	client := idempotency.NewRedisClient(env.RedisAddr, env.RedisPassword, env.RedisDB)
	primary := idempotency.NewRedisStore(client, 24*time.Hour)
	return idempotency.NewFailoverStore(primary, memory, log)
}
