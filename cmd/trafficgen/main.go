// Command trafficgen posts synthetic product submissions to the Cooler API
// on an interval, standing in for real customer traffic in test
// environments.
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"cooleradmin/internal/adapters/upstream"
	"cooleradmin/internal/config"
	"cooleradmin/internal/workers/trafficgen"
)

func main() {
	var (
		workers   int
		interval  time.Duration
		customers string
		duration  time.Duration
	)

	root := &cobra.Command{
		Use:   "trafficgen",
		Short: "Generate synthetic product submission traffic",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				log.Warn().Err(err).Msg("config")
			}
			lvl, _ := zerolog.ParseLevel(cfg.LogLevel)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

			api := upstream.NewClient(upstream.ClientOptions{
				BaseURL:        cfg.UpstreamBaseURL,
				Token:          cfg.UpstreamToken,
				RequestTimeout: cfg.RequestTimeout,
				RequestsPerSec: cfg.UpstreamRPS,
			})

			var ids []string
			if customers != "" {
				ids = strings.Split(customers, ",")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}

			log.Info().Int("workers", workers).Dur("interval", interval).Str("upstream", cfg.UpstreamBaseURL).Msg("generating traffic")
			trafficgen.Run(ctx, api, trafficgen.NewGenerator(ids), workers, interval)
			return nil
		},
	}

	root.Flags().IntVar(&workers, "workers", 2, "concurrent submission workers")
	root.Flags().DurationVar(&interval, "interval", 5*time.Second, "delay between submissions")
	root.Flags().StringVar(&customers, "customers", "", "comma-separated customer ids to submit as")
	root.Flags().DurationVar(&duration, "duration", 0, "stop after this long (0 = run until interrupted)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
