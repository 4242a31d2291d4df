package http

import (
	"context"
	"net/http"

	internalhttp "github.com/klwxsrx/loopon-client/internal/pkg/http"
	"github.com/klwxsrx/loopon-client/internal/session/app/remote"
	"github.com/klwxsrx/loopon-client/internal/session/domain"
	pkghttp "github.com/klwxsrx/loopon-client/pkg/http"
)

var getCurrentUserRoute = pkghttp.Route{Method: http.MethodGet, URL: "/api/users/me"}

type userAPI struct {
	client *internalhttp.RequestClient
}

func NewUserAPI(client *internalhttp.RequestClient) remote.UserAPI {
	return userAPI{client: client}
}

func (u userAPI) GetCurrent(ctx context.Context) (domain.User, error) {
	out, err := internalhttp.Send[UserOut](ctx, u.client, getCurrentUserRoute)
	if err != nil {
		return domain.User{}, mapError(getCurrentUserRoute, err)
	}

	return out.toDomain(), nil
}
