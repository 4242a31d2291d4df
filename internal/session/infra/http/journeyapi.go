package http

import (
	"context"
	"net/http"

	internalhttp "github.com/klwxsrx/loopon-client/internal/pkg/http"
	"github.com/klwxsrx/loopon-client/internal/session/app/remote"
	"github.com/klwxsrx/loopon-client/internal/session/domain"
	pkghttp "github.com/klwxsrx/loopon-client/pkg/http"
)

var getCurrentJourneyRoute = pkghttp.Route{Method: http.MethodGet, URL: "/api/journeys/current"}

type journeyAPI struct {
	client *internalhttp.RequestClient
}

func NewJourneyAPI(client *internalhttp.RequestClient) remote.JourneyAPI {
	return journeyAPI{client: client}
}

func (j journeyAPI) CheckCurrent(ctx context.Context) error {
	err := internalhttp.SendExpectStatus(ctx, j.client, getCurrentJourneyRoute)
	return mapError(getCurrentJourneyRoute, err)
}

func (j journeyAPI) GetCurrent(ctx context.Context) (domain.Journey, error) {
	out, err := internalhttp.Send[JourneyOut](ctx, j.client, getCurrentJourneyRoute)
	if err != nil {
		return domain.Journey{}, mapError(getCurrentJourneyRoute, err)
	}

	return domain.Journey{ID: out.JourneyID}, nil
}
