package monitor

import (
	"context"

	"cooleradmin/internal/domain"
	"cooleradmin/internal/ports"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// Service serves the read-only dashboard feeds the UI polls.
type Service struct {
	api ports.CoolerClient
}

func New(api ports.CoolerClient) *Service { return &Service{api: api} }

func (s *Service) Requests(ctx context.Context, filter ports.RequestFilter) ([]domain.ApiRequest, error) {
	filter.Page = clamp(filter.Page)
	return s.api.ListRequests(ctx, filter)
}

func (s *Service) Transactions(ctx context.Context, filter ports.TransactionFilter) ([]domain.Transaction, error) {
	filter.Page = clamp(filter.Page)
	return s.api.ListTransactions(ctx, filter)
}

func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	return s.api.Stats(ctx)
}

func clamp(p ports.Page) ports.Page {
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
