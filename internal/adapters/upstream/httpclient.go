package upstream

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

// httpDoer issues requests with rate limiting and retries on transient
// failures. 4xx responses are returned to the caller without retrying.
type httpDoer struct {
	client  *http.Client
	limiter *rate.Limiter
	maxWait time.Duration
}

type doerOptions struct {
	Timeout         time.Duration
	RequestsPerSec  int
	MaxRetryTimeout time.Duration
}

func newDoer(opts doerOptions) *httpDoer {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RequestsPerSec == 0 {
		opts.RequestsPerSec = 10
	}
	if opts.MaxRetryTimeout == 0 {
		opts.MaxRetryTimeout = 30 * time.Second
	}
	return &httpDoer{
		client:  &http.Client{Timeout: opts.Timeout},
		limiter: rate.NewLimiter(rate.Every(time.Second), opts.RequestsPerSec),
		maxWait: opts.MaxRetryTimeout,
	}
}

// do performs the request. The request must have a rewindable body (GetBody
// set), which is the case for requests built with bytes.Reader bodies.
func (d *httpDoer) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var resp *http.Response
	operation := func() error {
		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return backoff.Permanent(err)
			}
			req.Body = body
		}
		var err error
		resp, err = d.client.Do(req)
		if err != nil {
			return err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			resp.Body.Close()
			return &StatusError{Code: resp.StatusCode}
		}
		return nil
	}

	strategy := backoff.NewExponentialBackOff()
	strategy.MaxElapsedTime = d.maxWait

	if err := backoff.Retry(operation, backoff.WithContext(strategy, ctx)); err != nil {
		return nil, err
	}
	return resp, nil
}

// StatusError reports a non-success upstream status code.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("upstream status %d", e.Code)
}
