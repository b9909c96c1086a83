package trafficgen

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cooleradmin/internal/ports"
)

// Run starts worker goroutines that post synthetic product submissions to
// the upstream intake on an interval. Blocks until ctx is cancelled.
func Run(ctx context.Context, intake ports.ProductIntake, gen *Generator, concurrency int, interval time.Duration) {
	if concurrency < 1 {
		return
	}
	if gen == nil {
		gen = NewGenerator(nil)
	}
	logger := log.With().Str("component", "trafficgen").Logger()

	ticks := make(chan struct{}, concurrency)

	// dispatcher loop
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				close(ticks)
				return
			case <-ticker.C:
				select {
				case ticks <- struct{}{}:
				default:
					// workers are saturated, skip this tick
				}
			}
		}
	}()

	done := make(chan struct{}, concurrency)
	for i := 0; i < concurrency; i++ {
		go worker(ctx, i, intake, gen, ticks, done, logger)
	}
	for i := 0; i < concurrency; i++ {
		<-done
	}
}

func worker(ctx context.Context, idx int, intake ports.ProductIntake, gen *Generator, ticks <-chan struct{}, done chan<- struct{}, logger zerolog.Logger) {
	defer func() { done <- struct{}{} }()

	var sent, failed int
	for range ticks {
		sub := gen.Next()
		if err := intake.SubmitProduct(ctx, sub); err != nil {
			failed++
			logger.Warn().Err(err).Int("worker", idx).Str("submission_id", sub.SubmissionID).Msg("submission failed")
			continue
		}
		sent++
		logger.Debug().Int("worker", idx).Str("submission_id", sub.SubmissionID).Str("sku", sub.SKU).Msg("submitted")
	}
	logger.Info().Int("worker", idx).Int("sent", sent).Int("failed", failed).Msg("worker stopped")
}
