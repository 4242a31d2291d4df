package http

import (
	"fmt"
	"time"

	pkgenv "github.com/klwxsrx/loopon-client/pkg/env"
	pkghttp "github.com/klwxsrx/loopon-client/pkg/http"
	pkglog "github.com/klwxsrx/loopon-client/pkg/log"
	pkgstrings "github.com/klwxsrx/loopon-client/pkg/strings"
)

type Destination string

const (
	DestinationLooponAPI Destination = "looponApi"
)

type ClientFactory struct {
	timeout time.Duration
	logger  pkglog.Logger
}

func NewClientFactory(timeout time.Duration, logger pkglog.Logger) *ClientFactory {
	return &ClientFactory{
		timeout: timeout,
		logger:  logger,
	}
}

// MustInitClient reads the destination base url from <DESTINATION>_URL, e.g. LOOPON_API_URL.
func (f *ClientFactory) MustInitClient(dest Destination, extraOpts ...pkghttp.ClientOption) pkghttp.Client {
	host := pkgenv.Must(pkgenv.Parse[string](URLEnvName(dest)))
	return f.InitClient(dest, host, extraOpts...)
}

func (f *ClientFactory) InitClient(dest Destination, baseURL string, extraOpts ...pkghttp.ClientOption) pkghttp.Client {
	opts := append([]pkghttp.ClientOption{
		pkghttp.WithClientDestination(string(dest), baseURL),
		pkghttp.WithTimeout(f.timeout),
		pkghttp.WithRequestID(pkghttp.DefaultRequestIDHeader),
		pkghttp.WithRequestLogging(f.logger, pkglog.LevelDebug, pkglog.LevelWarn),
	}, extraOpts...)

	return pkghttp.NewClient(opts...)
}

func URLEnvName(dest Destination) string {
	return fmt.Sprintf("%s_URL", pkgstrings.ToScreamingSnakeCase(string(dest)))
}
