package http

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	pkghttp "github.com/klwxsrx/loopon-client/pkg/http"
)

const defaultRetryInterval = 200 * time.Millisecond

type (
	RequestOption       func(*resty.Request)
	RequestClientOption func(*RequestClient)
)

// RequestClient sends requests to the LOOP:ON backend and maps responses to the error taxonomy.
type RequestClient struct {
	client        pkghttp.Client
	retryCount    uint64
	retryInterval time.Duration
}

func NewRequestClient(client pkghttp.Client, opts ...RequestClientOption) *RequestClient {
	c := &RequestClient{
		client:        client,
		retryInterval: defaultRetryInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithRetry repeats idempotent requests failed on transport level at most count times.
func WithRetry(count uint64, initialInterval time.Duration) RequestClientOption {
	return func(c *RequestClient) {
		c.retryCount = count
		if initialInterval > 0 {
			c.retryInterval = initialInterval
		}
	}
}

func WithJSONBody(body any) RequestOption {
	return func(r *resty.Request) {
		r.SetHeader("Content-Type", "application/json").SetBody(body)
	}
}

func WithPathParam(name, value string) RequestOption {
	return func(r *resty.Request) {
		r.SetPathParam(name, value)
	}
}

func WithQueryParam(name, value string) RequestOption {
	return func(r *resty.Request) {
		r.SetQueryParam(name, value)
	}
}

func (c *RequestClient) execute(ctx context.Context, route pkghttp.Route, opts []RequestOption) (*resty.Response, error) {
	operation := func() (*resty.Response, error) {
		req := c.client.NewRequest(ctx)
		for _, opt := range opts {
			opt(req)
		}

		resp, err := req.Execute(route.Method, route.URL)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrNetwork, route.Name(), err)
		}
		return resp, nil
	}

	if c.retryCount == 0 || !route.IsIdempotent() {
		return operation()
	}

	resp, err := backoff.RetryWithData(operation, backoff.WithContext(
		backoff.WithMaxRetries(c.newBackOff(), c.retryCount),
		ctx,
	))
	if err != nil && !errors.Is(err, ErrNetwork) {
		err = fmt.Errorf("%w: %s: %w", ErrNetwork, route.Name(), err)
	}
	return resp, err
}

func (c *RequestClient) newBackOff() backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = c.retryInterval
	eb.Multiplier = 2
	eb.MaxInterval = c.retryInterval * 8
	eb.MaxElapsedTime = 0
	return eb
}
