package maintenance

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cooleradmin/internal/ports"
)

// clearable is the fixed set of tables the clear endpoint may touch.
// Requests naming anything else are rejected before any SQL runs.
var clearable = []string{
	"product_submissions",
	"api_requests",
	"anomaly_flags",
	"transactions",
}

type Service struct {
	repo   ports.MaintenanceRepository
	logger zerolog.Logger
}

func New(repo ports.MaintenanceRepository) *Service {
	return &Service{
		repo:   repo,
		logger: log.With().Str("component", "maintenance").Logger(),
	}
}

// Clear empties the requested tables (all clearable tables when empty) and
// aggregates per-table results. A failing table never aborts the rest.
func (s *Service) Clear(ctx context.Context, tables []string) (ports.ClearSummary, error) {
	if len(tables) == 0 {
		tables = clearable
	}
	for _, t := range tables {
		if !isClearable(t) {
			return ports.ClearSummary{}, &ports.ValidationError{Field: "tables", Reason: "table " + t + " is not clearable"}
		}
	}

	summary := ports.ClearSummary{Tables: make([]ports.TableResult, 0, len(tables))}
	for _, t := range tables {
		rows, err := s.repo.ClearTable(ctx, t)
		result := ports.TableResult{Table: t, Rows: rows}
		if err != nil {
			result.Error = err.Error()
			summary.Failures++
			s.logger.Error().Err(err).Str("table", t).Msg("clear failed")
		} else {
			summary.Cleared++
			summary.TotalRows += rows
			s.logger.Info().Str("table", t).Int64("rows", rows).Msg("table cleared")
		}
		summary.Tables = append(summary.Tables, result)
	}
	return summary, nil
}

func isClearable(table string) bool {
	for _, t := range clearable {
		if t == table {
			return true
		}
	}
	return false
}
