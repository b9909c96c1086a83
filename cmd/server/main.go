package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpadapter "cooleradmin/internal/adapters/http"
	pg "cooleradmin/internal/adapters/postgres"
	"cooleradmin/internal/adapters/upstream"
	"cooleradmin/internal/config"
	"cooleradmin/internal/magiclink"
	"cooleradmin/internal/ports"
	anomsvc "cooleradmin/internal/services/anomalies"
	custsvc "cooleradmin/internal/services/customers"
	maintsvc "cooleradmin/internal/services/maintenance"
	monsvc "cooleradmin/internal/services/monitor"
	"cooleradmin/internal/workers/trafficgen"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("config")
	}

	lvl, _ := zerolog.ParseLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required for maintenance operations")
	}
	if cfg.MagicLinkSecret == "" {
		log.Fatal().Msg("MAGIC_LINK_SECRET is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect")
	}
	defer db.Close()
	if err := pg.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	api := upstream.NewClient(upstream.ClientOptions{
		BaseURL:        cfg.UpstreamBaseURL,
		Token:          cfg.UpstreamToken,
		RequestTimeout: cfg.RequestTimeout,
		RequestsPerSec: cfg.UpstreamRPS,
	})

	links, err := magiclink.NewIssuer(cfg.MagicLinkSecret, cfg.MagicLinkBaseURL, cfg.MagicLinkTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("magic link issuer")
	}

	// Wire adapters to services (ports)
	var _ ports.CoolerClient = api
	var _ ports.MaintenanceRepository = db

	customers := custsvc.New(api, links)
	anomalies := anomsvc.New(api)
	monitor := monsvc.New(api)
	maintenance := maintsvc.New(db)

	srv := httpadapter.New(customers, anomalies, monitor, maintenance, db, cfg.AdminPassword)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	// Optional synthetic traffic workers
	if cfg.TrafficWorkers > 0 {
		go trafficgen.Run(ctx, api, trafficgen.NewGenerator(nil), cfg.TrafficWorkers, cfg.TrafficInterval)
		log.Info().Int("workers", cfg.TrafficWorkers).Dur("interval", cfg.TrafficInterval).Msg("traffic workers started")
	}

	httpSrv := &http.Server{Addr: cfg.ListenAddr, Handler: r}
	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	log.Info().Str("addr", cfg.ListenAddr).Str("upstream", cfg.UpstreamBaseURL).Msg("listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	case err := <-errCh:
		log.Fatal().Err(err).Msg("server error")
	}
}
