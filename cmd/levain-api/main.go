// @title         levain API
// @version       0.1.0
// @description   Recipes with baker's percentages, yield scaling and phase usage
// @BasePath      /api/v1

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"levain/internal/modkit/repokit"
	"levain/internal/platform/config"
	"levain/internal/platform/logger"
	phttp "levain/internal/platform/net/http"
	"levain/internal/platform/store"
	"levain/internal/services/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config.New()); err != nil {
		logger.Get().Error().Err(err).Msg("levain-api exited")
		os.Exit(1)
	}
}

// run serves until ctx ends; env prefixes are CORE_API_, SERVICE_PGSQL_ and SERVICE_CLICKHOUSE_
func run(ctx context.Context, env config.Conf) error {
	log := logger.Get()
	svc := env.Prefix("CORE_API_")

	st, err := openStore(ctx, env, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("store close")
		}
	}()
	repokit.MustGuard(ctx, st)

	srv := phttp.NewServer(svc)
	app := api.Mount(srv.Router(), api.Options{
		Config:         svc,
		Store:          st,
		Logger:         log,
		EnableSwagger:  svc.MayBool("SWAGGER", true),
		EnableProfiler: svc.MayBool("PROFILER", false),
	})
	if err := app.Prepare(ctx); err != nil {
		return fmt.Errorf("prepare modules: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	log.Info().Msg("drained, bye")
	return nil
}

// openStore connects postgres, which is required, and clickhouse when a url is set
func openStore(ctx context.Context, env config.Conf, log *logger.Logger) (*store.Store, error) {
	pgEnv := env.Prefix("SERVICE_PGSQL_")
	chURL := env.Prefix("SERVICE_CLICKHOUSE_").MayString("DBURL", "")

	st, err := store.Open(ctx, store.Config{
		AppName: "levain",
		PG: store.PGConfig{
			Enabled:        true,
			URL:            pgEnv.MustString("DBURL"),
			MaxConns:       int32(pgEnv.MayInt("MAX_CONNS", 4)),
			SlowQueryMs:    pgEnv.MayInt("SLOW_MS", 500),
			LogSQL:         pgEnv.MayBool("LOG_SQL", false),
			ConnectRetries: pgEnv.MayInt("CONNECT_RETRIES", 20),
			PingTimeout:    pgEnv.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		CH: store.CHConfig{
			Enabled:    chURL != "",
			URL:        chURL,
			ClientName: "levain",
			ClientTag:  "api",
		},
	}, store.WithLogger(*log))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
