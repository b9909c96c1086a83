package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cooleradmin/internal/domain"
	"cooleradmin/internal/ports"
)

// ErrNotFound is returned when the upstream reports 404 for an entity.
var ErrNotFound = errString("not found")

type errString string

func (e errString) Error() string { return string(e) }

// Client talks to the Cooler platform API with a static bearer token.
type Client struct {
	baseURL string
	token   string
	doer    *httpDoer
	logger  zerolog.Logger
}

type ClientOptions struct {
	BaseURL         string
	Token           string
	RequestTimeout  time.Duration
	RequestsPerSec  int
	MaxRetryTimeout time.Duration
}

func NewClient(opts ClientOptions) *Client {
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		token:   opts.Token,
		doer: newDoer(doerOptions{
			Timeout:         opts.RequestTimeout,
			RequestsPerSec:  opts.RequestsPerSec,
			MaxRetryTimeout: opts.MaxRetryTimeout,
		}),
		logger: log.With().Str("component", "cooler_client").Logger(),
	}
}

// call issues one request and decodes the response into out (when non-nil).
// 404 maps to ErrNotFound, other non-2xx to *StatusError.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().Str("method", method).Str("url", u).Msg("upstream call")

	resp, err := c.doer.do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return &StatusError{Code: resp.StatusCode, Message: readErrMessage(resp.Body)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// readErrMessage pulls the "error" field out of an upstream failure body,
// falling back to a trimmed raw snippet.
func readErrMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(raw))
}

func pageQuery(q url.Values, page ports.Page) url.Values {
	if q == nil {
		q = url.Values{}
	}
	if page.Limit > 0 {
		q.Set("limit", strconv.Itoa(page.Limit))
	}
	if page.Offset > 0 {
		q.Set("offset", strconv.Itoa(page.Offset))
	}
	return q
}

func (c *Client) ListCustomers(ctx context.Context, page ports.Page) ([]domain.Customer, error) {
	var out []domain.Customer
	err := c.call(ctx, http.MethodGet, "/v1/customers", pageQuery(nil, page), nil, &out)
	return out, err
}

func (c *Client) GetCustomer(ctx context.Context, id string) (domain.Customer, error) {
	var out domain.Customer
	err := c.call(ctx, http.MethodGet, "/v1/customers/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

func (c *Client) CreateCustomer(ctx context.Context, nc domain.NewCustomer) (domain.Customer, error) {
	var out domain.Customer
	err := c.call(ctx, http.MethodPost, "/v1/customers", nil, nc, &out)
	return out, err
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, patch domain.CustomerPatch) (domain.Customer, error) {
	var out domain.Customer
	err := c.call(ctx, http.MethodPatch, "/v1/customers/"+url.PathEscape(id), nil, patch, &out)
	return out, err
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/v1/customers/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) ListAnomalies(ctx context.Context, filter ports.AnomalyFilter) ([]domain.AnomalyFlag, error) {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	if filter.Severity != "" {
		q.Set("severity", filter.Severity)
	}
	if filter.Type != "" {
		q.Set("type", filter.Type)
	}
	var out []domain.AnomalyFlag
	err := c.call(ctx, http.MethodGet, "/v1/anomalies", pageQuery(q, filter.Page), nil, &out)
	return out, err
}

func (c *Client) GetAnomaly(ctx context.Context, id string) (domain.AnomalyFlag, error) {
	var out domain.AnomalyFlag
	err := c.call(ctx, http.MethodGet, "/v1/anomalies/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

func (c *Client) ResolveAnomaly(ctx context.Context, id string, res domain.Resolution) (domain.AnomalyFlag, error) {
	var out domain.AnomalyFlag
	err := c.call(ctx, http.MethodPost, "/v1/anomalies/"+url.PathEscape(id)+"/resolution", nil, res, &out)
	return out, err
}

func (c *Client) ListRequests(ctx context.Context, filter ports.RequestFilter) ([]domain.ApiRequest, error) {
	q := url.Values{}
	if filter.CustomerID != "" {
		q.Set("customer_id", filter.CustomerID)
	}
	if filter.Method != "" {
		q.Set("method", filter.Method)
	}
	if filter.StatusCode > 0 {
		q.Set("status_code", strconv.Itoa(filter.StatusCode))
	}
	if filter.Since != nil {
		q.Set("since", filter.Since.UTC().Format(time.RFC3339))
	}
	var out []domain.ApiRequest
	err := c.call(ctx, http.MethodGet, "/v1/requests", pageQuery(q, filter.Page), nil, &out)
	return out, err
}

func (c *Client) ListTransactions(ctx context.Context, filter ports.TransactionFilter) ([]domain.Transaction, error) {
	q := url.Values{}
	if filter.CustomerID != "" {
		q.Set("customer_id", filter.CustomerID)
	}
	var out []domain.Transaction
	err := c.call(ctx, http.MethodGet, "/v1/transactions", pageQuery(q, filter.Page), nil, &out)
	return out, err
}

func (c *Client) Stats(ctx context.Context) (domain.Stats, error) {
	var out domain.Stats
	err := c.call(ctx, http.MethodGet, "/v1/stats", nil, nil, &out)
	return out, err
}

// SubmitProduct posts a synthetic product submission to the intake endpoint.
func (c *Client) SubmitProduct(ctx context.Context, sub domain.ProductSubmission) error {
	return c.call(ctx, http.MethodPost, "/v1/products", nil, sub, nil)
}
