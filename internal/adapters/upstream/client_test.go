package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cooleradmin/internal/domain"
	"cooleradmin/internal/ports"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(ClientOptions{
		BaseURL:         srv.URL,
		Token:           "tok_test",
		RequestTimeout:  2 * time.Second,
		RequestsPerSec:  100,
		MaxRetryTimeout: 10 * time.Second,
	})
	return c, srv
}

func TestBearerTokenAndQuery(t *testing.T) {
	var gotAuth, gotQuery string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]domain.Customer{{ID: "cust_1"}})
	}))

	list, err := c.ListCustomers(context.Background(), ports.Page{Limit: 25, Offset: 50})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Bearer tok_test", gotAuth)
	assert.Equal(t, "limit=25&offset=50", gotQuery)
}

func TestNotFoundMapsToSentinel(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"no such customer"}`, http.StatusNotFound)
	}))

	_, err := c.GetCustomer(context.Background(), "cust_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientErrorNotRetried(t *testing.T) {
	var calls int
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "price out of range"})
	}))

	_, err := c.CreateCustomer(context.Background(), domain.NewCustomer{Name: "x", Email: "x@y.z"})
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnprocessableEntity, se.Code)
	assert.Equal(t, "price out of range", se.Message)
	assert.Equal(t, 1, calls, "4xx must not be retried")
}

func TestServerErrorRetried(t *testing.T) {
	var calls int
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(domain.Stats{Customers: 42})
	}))

	stats, err := c.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.Customers)
	assert.GreaterOrEqual(t, calls, 3)
}

func TestRetryReplaysRequestBody(t *testing.T) {
	var calls int
	var lastBody domain.ProductSubmission
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.NoError(t, json.NewDecoder(r.Body).Decode(&lastBody))
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))

	sub := domain.ProductSubmission{SubmissionID: "sub_1", SKU: "SKU-000001", PriceCents: 499}
	require.NoError(t, c.SubmitProduct(context.Background(), sub))
	assert.Equal(t, 2, calls)
	assert.Equal(t, "sub_1", lastBody.SubmissionID)
	assert.Equal(t, "SKU-000001", lastBody.SKU)
}

func TestResolveAnomalyPostsPayload(t *testing.T) {
	var gotPath, gotMethod string
	var gotRes domain.Resolution
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRes))
		_ = json.NewEncoder(w).Encode(domain.AnomalyFlag{ID: "an_1", Status: domain.AnomalyResolved})
	}))

	res := domain.Resolution{Action: domain.ActionCorrect, Corrections: map[string]string{"sku": "SKU-1"}}
	flag, err := c.ResolveAnomaly(context.Background(), "an_1", res)
	require.NoError(t, err)
	assert.Equal(t, "/v1/anomalies/an_1/resolution", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, res.Corrections, gotRes.Corrections)
	assert.Equal(t, domain.AnomalyResolved, flag.Status)
}

func TestListRequestsFilterEncoding(t *testing.T) {
	since := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	var got string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]domain.ApiRequest{})
	}))

	_, err := c.ListRequests(context.Background(), ports.RequestFilter{
		CustomerID: "cust_1",
		Method:     "POST",
		StatusCode: 500,
		Since:      &since,
		Page:       ports.Page{Limit: 10},
	})
	require.NoError(t, err)
	assert.Contains(t, got, "customer_id=cust_1")
	assert.Contains(t, got, "method=POST")
	assert.Contains(t, got, "status_code=500")
	assert.Contains(t, got, "since=2026-08-01T12%3A00%3A00Z")
	assert.Contains(t, got, "limit=10")
}
