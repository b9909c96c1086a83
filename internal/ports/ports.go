package ports

import (
	"context"
	"fmt"
	"time"

	"cooleradmin/internal/domain"
)

// Page bounds list queries. Zero Limit means the server default.
type Page struct {
	Limit  int
	Offset int
}

// AnomalyFilter narrows the anomaly review queue.
type AnomalyFilter struct {
	Status   string
	Severity string
	Type     string
	Page
}

// RequestFilter narrows the request monitoring feed.
type RequestFilter struct {
	CustomerID string
	Method     string
	StatusCode int
	Since      *time.Time
	Page
}

// TransactionFilter narrows the transaction list.
type TransactionFilter struct {
	CustomerID string
	Page
}

// MagicLink is a short-lived signed URL for impersonating a customer session.
type MagicLink struct {
	URL       string    `json:"url"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Customers manages customer records and impersonation links.
type Customers interface {
	List(ctx context.Context, page Page) ([]domain.Customer, error)
	Get(ctx context.Context, id string) (domain.Customer, error)
	Create(ctx context.Context, nc domain.NewCustomer) (domain.Customer, error)
	Update(ctx context.Context, id string, patch domain.CustomerPatch) (domain.Customer, error)
	Delete(ctx context.Context, id string) error
	MagicLink(ctx context.Context, id string) (MagicLink, error)
}

// Anomalies serves the review queue and applies resolutions.
type Anomalies interface {
	List(ctx context.Context, filter AnomalyFilter) ([]domain.AnomalyFlag, error)
	Get(ctx context.Context, id string) (domain.AnomalyFlag, error)
	Resolve(ctx context.Context, id string, res domain.Resolution) (domain.AnomalyFlag, error)
}

// Monitor serves the read-only dashboard feeds.
type Monitor interface {
	Requests(ctx context.Context, filter RequestFilter) ([]domain.ApiRequest, error)
	Transactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

// TableResult is the outcome of clearing one table.
type TableResult struct {
	Table string `json:"table"`
	Rows  int64  `json:"rows"`
	Error string `json:"error,omitempty"`
}

// ClearSummary aggregates per-table clear results.
type ClearSummary struct {
	Cleared   int           `json:"cleared"`
	TotalRows int64         `json:"total_rows"`
	Failures  int           `json:"failures"`
	Tables    []TableResult `json:"tables"`
}

// Maintenance performs direct-database administrative operations.
type Maintenance interface {
	Clear(ctx context.Context, tables []string) (ClearSummary, error)
}

// ValidationError reports a rejected request field. Services return it for
// bad input; the HTTP adapter maps it to a 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
