package domain

import "time"

// Core records mirrored from the upstream Cooler API. Lifecycle is owned
// upstream; these carry JSON tags because they pass through unchanged.

// Customer statuses.
const (
	CustomerActive    = "active"
	CustomerSuspended = "suspended"
)

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Plan      string    `json:"plan"`
	Status    string    `json:"status"`
	APIKey    string    `json:"api_key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCustomer is the creation payload accepted by POST /api/customers.
type NewCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Plan    string `json:"plan,omitempty"`
}

// CustomerPatch carries optional fields for PATCH /api/customers/{id}.
// Nil means "leave unchanged".
type CustomerPatch struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Company *string `json:"company,omitempty"`
	Plan    *string `json:"plan,omitempty"`
	Status  *string `json:"status,omitempty"`
}

// Anomaly flag types.
const (
	AnomalyDataQuality   = "data_quality"
	AnomalyProcess       = "process"
	AnomalyBusinessLogic = "business_logic"
)

// Anomaly severities.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Anomaly statuses.
const (
	AnomalyOpen      = "open"
	AnomalyResolved  = "resolved"
	AnomalyDismissed = "dismissed"
)

// AnomalyFlag describes a detected data-quality, process, or business-logic
// issue attached to a product submission.
type AnomalyFlag struct {
	ID           string      `json:"id"`
	SubmissionID string      `json:"submission_id"`
	CustomerID   string      `json:"customer_id"`
	Type         string      `json:"type"`
	Severity     string      `json:"severity"`
	Status       string      `json:"status"`
	Message      string      `json:"message"`
	DetectedAt   time.Time   `json:"detected_at"`
	ResolvedAt   *time.Time  `json:"resolved_at,omitempty"`
	Resolution   *Resolution `json:"resolution,omitempty"`
}

// Resolution actions.
const (
	ActionDismiss  = "dismiss"
	ActionCorrect  = "correct"
	ActionEscalate = "escalate"
)

// Resolution is the action taken on an anomaly flag. Which fields are
// required depends on Action; see anomalies.Service.Resolve.
type Resolution struct {
	Action      string            `json:"action"`
	Note        string            `json:"note,omitempty"`
	Corrections map[string]string `json:"corrections,omitempty"`
	Assignee    string            `json:"assignee,omitempty"`
	Priority    string            `json:"priority,omitempty"`
	Actor       string            `json:"actor,omitempty"`
}

// ApiRequest is one entry of the request monitoring feed.
type ApiRequest struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	DurationMs int       `json:"duration_ms"`
	BodySize   int       `json:"body_size"`
	RemoteAddr string    `json:"remote_addr,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
	Error      string    `json:"error,omitempty"`
}

type Transaction struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Stats is the platform-wide snapshot served by the upstream statistics
// endpoint.
type Stats struct {
	Customers     int64 `json:"customers"`
	Requests      int64 `json:"requests"`
	Requests24h   int64 `json:"requests_24h"`
	Transactions  int64 `json:"transactions"`
	OpenAnomalies int64 `json:"open_anomalies"`
}

// ProductSubmission is the synthetic payload the traffic generator posts to
// the upstream intake endpoint.
type ProductSubmission struct {
	SubmissionID string  `json:"submission_id"`
	CustomerID   string  `json:"customer_id"`
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	PriceCents   int64   `json:"price_cents"`
	WeightGrams  int     `json:"weight_grams"`
	Description  string  `json:"description,omitempty"`
	Source       string  `json:"source"`
	Confidence   float64 `json:"confidence"`
}
