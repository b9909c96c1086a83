package ports

import (
	"context"

	"cooleradmin/internal/domain"
)

// CoolerClient is the upstream Cooler API surface the services depend on.
type CoolerClient interface {
	ListCustomers(ctx context.Context, page Page) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (domain.Customer, error)
	CreateCustomer(ctx context.Context, nc domain.NewCustomer) (domain.Customer, error)
	UpdateCustomer(ctx context.Context, id string, patch domain.CustomerPatch) (domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error

	ListAnomalies(ctx context.Context, filter AnomalyFilter) ([]domain.AnomalyFlag, error)
	GetAnomaly(ctx context.Context, id string) (domain.AnomalyFlag, error)
	ResolveAnomaly(ctx context.Context, id string, res domain.Resolution) (domain.AnomalyFlag, error)

	ListRequests(ctx context.Context, filter RequestFilter) ([]domain.ApiRequest, error)
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

// ProductIntake accepts synthetic product submissions. Split from
// CoolerClient so the traffic workers depend on nothing else.
type ProductIntake interface {
	SubmitProduct(ctx context.Context, sub domain.ProductSubmission) error
}

// MaintenanceRepository clears whole tables and reports affected rows.
type MaintenanceRepository interface {
	ClearTable(ctx context.Context, table string) (int64, error)
}
