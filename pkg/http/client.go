package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/klwxsrx/loopon-client/pkg/log"
)

const (
	DefaultRequestIDHeader = "X-Request-ID"
	HeaderAuthorization    = "Authorization"

	bearerPrefix = "Bearer "
)

type (
	ClientOption func(*ClientImpl)

	// TokenProvider returns the bearer token for the outgoing request, false when there is none.
	TokenProvider func(ctx context.Context) (string, bool)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
		With(opts ...ClientOption) Client
	}

	ClientImpl struct {
		DestinationName string
		RESTClient      *resty.Client
		opts            []ClientOption
	}
)

func NewClient(opts ...ClientOption) Client {
	client := ClientImpl{
		DestinationName: "",
		RESTClient:      resty.New(),
		opts:            opts,
	}

	for _, opt := range opts {
		opt(&client)
	}

	return client
}

func (c ClientImpl) NewRequest(ctx context.Context) *resty.Request {
	return c.RESTClient.NewRequest().SetContext(ctx)
}

func (c ClientImpl) With(opts ...ClientOption) Client {
	mergedOpts := make([]ClientOption, 0, len(c.opts)+len(opts))
	mergedOpts = append(mergedOpts, c.opts...)
	mergedOpts = append(mergedOpts, opts...)
	return NewClient(mergedOpts...)
}

func WithClientDestination(name, url string) ClientOption {
	return func(c *ClientImpl) {
		c.DestinationName = name
		c.RESTClient.SetBaseURL(url)
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *ClientImpl) {
		if timeout > 0 {
			c.RESTClient.SetTimeout(timeout)
		}
	}
}

func WithRequestHeader(name, value string) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.SetHeader(name, value)
	}
}

// WithBearerAuth asks the provider before every request and leaves the request untouched when it has no token.
func WithBearerAuth(provider TokenProvider) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			token, ok := provider(req.Context())
			if !ok || token == "" {
				return nil
			}

			req.SetHeader(HeaderAuthorization, bearerPrefix+token)
			return nil
		})
	}
}

func WithRequestID(headerName string) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get(headerName) != "" {
				return nil
			}

			req.SetHeader(headerName, uuid.NewString())
			return nil
		})
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	const destinationNameLogField = "destinationName"
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			l := logger.With(log.Fields{
				destinationNameLogField: getDestinationNameForLogging(c),
				"method":                resp.Request.Method,
				"url":                   resp.Request.URL,
				"code":                  resp.StatusCode(),
				"duration":              resp.Time().String(),
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				l.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				l.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.RESTClient.OnError(func(req *resty.Request, err error) {
			logger.
				With(log.Fields{
					destinationNameLogField: getDestinationNameForLogging(c),
					"method":                req.Method,
					"url":                   req.URL,
				}).
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

func getDestinationNameForLogging(c *ClientImpl) string {
	if c.DestinationName != "" {
		return c.DestinationName
	}
	return "-"
}
