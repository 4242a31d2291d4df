package http

import (
	"errors"
	"fmt"
	"net/http"

	internalhttp "github.com/klwxsrx/loopon-client/internal/pkg/http"
	"github.com/klwxsrx/loopon-client/internal/session/app/remote"
	pkghttp "github.com/klwxsrx/loopon-client/pkg/http"
)

// mapError keeps the transport error in the chain and adds the matching remote sentinel.
func mapError(route pkghttp.Route, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, internalhttp.ErrUnauthorized):
		return fmt.Errorf("request %s: %w: %w", route.Name(), remote.ErrUnauthorized, err)
	case internalhttp.IsServerError(err, http.StatusNotFound) && route == getCurrentJourneyRoute:
		return fmt.Errorf("request %s: %w: %w", route.Name(), remote.ErrNoCurrentJourney, err)
	case internalhttp.IsServerError(err, http.StatusInternalServerError):
		return fmt.Errorf("request %s: %w: %w", route.Name(), remote.ErrServerFailure, err)
	default:
		return fmt.Errorf("request %s: %w", route.Name(), err)
	}
}
