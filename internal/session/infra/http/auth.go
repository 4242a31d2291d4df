package http

import (
	"context"

	"github.com/klwxsrx/loopon-client/internal/session/domain"
	pkghttp "github.com/klwxsrx/loopon-client/pkg/http"
	"github.com/klwxsrx/loopon-client/pkg/log"
)

// BearerTokenProvider reads the token store on every request. A store failure sends the
// request unauthenticated, the backend answers 401 and the session logs out.
func BearerTokenProvider(tokens domain.TokenStore, logger log.Logger) pkghttp.TokenProvider {
	return func(ctx context.Context) (string, bool) {
		token, err := tokens.Load(ctx)
		if err != nil {
			logger.WithError(err).Warn(ctx, "failed to load token for request")
			return "", false
		}
		if token == nil {
			return "", false
		}
		return string(*token), true
	}
}
