package http

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/klwxsrx/loopon-client/internal/pkg/http"
	"github.com/klwxsrx/loopon-client/internal/session/app/remote"
	"github.com/klwxsrx/loopon-client/internal/session/domain"
	pkghttp "github.com/klwxsrx/loopon-client/pkg/http"
)

var (
	loginRoute                   = pkghttp.Route{Method: http.MethodPost, URL: "/api/auth/login"}
	socialLoginRoute             = pkghttp.Route{Method: http.MethodPost, URL: "/api/auth/social-login"}
	signUpRoute                  = pkghttp.Route{Method: http.MethodPost, URL: "/api/auth/signup"}
	requestPasswordResetRoute    = pkghttp.Route{Method: http.MethodPost, URL: "/api/auth/password/code"}
	verifyPasswordResetCodeRoute = pkghttp.Route{Method: http.MethodPost, URL: "/api/auth/password/verify"}
	resetPasswordRoute           = pkghttp.Route{Method: http.MethodPatch, URL: "/api/auth/password"}
)

type authAPI struct {
	client *internalhttp.RequestClient
}

func NewAuthAPI(client *internalhttp.RequestClient) remote.AuthAPI {
	return authAPI{client: client}
}

func (a authAPI) Login(ctx context.Context, email, password string) (domain.Token, error) {
	return a.requestToken(ctx, loginRoute, loginIn{Email: email, Password: password})
}

func (a authAPI) SocialLogin(ctx context.Context, provider domain.SocialProvider, providerToken string) (domain.Token, error) {
	return a.requestToken(ctx, socialLoginRoute, socialLoginIn{Provider: provider, AccessToken: providerToken})
}

func (a authAPI) SignUp(ctx context.Context, email, password, nickname string) (domain.Token, error) {
	return a.requestToken(ctx, signUpRoute, signUpIn{Email: email, Password: password, Nickname: nickname})
}

func (a authAPI) RequestPasswordResetCode(ctx context.Context, email string) error {
	err := internalhttp.SendExpectStatus(ctx, a.client, requestPasswordResetRoute,
		internalhttp.WithJSONBody(passwordResetCodeIn{Email: email}),
	)
	return mapError(requestPasswordResetRoute, err)
}

func (a authAPI) VerifyPasswordResetCode(ctx context.Context, email, code string) error {
	err := internalhttp.SendExpectStatus(ctx, a.client, verifyPasswordResetCodeRoute,
		internalhttp.WithJSONBody(passwordResetVerifyIn{Email: email, Code: code}),
	)
	return mapError(verifyPasswordResetCodeRoute, err)
}

func (a authAPI) ResetPassword(ctx context.Context, email, password string) error {
	err := internalhttp.SendExpectStatus(ctx, a.client, resetPasswordRoute,
		internalhttp.WithJSONBody(passwordResetIn{Email: email, Password: password}),
	)
	return mapError(resetPasswordRoute, err)
}

func (a authAPI) requestToken(ctx context.Context, route pkghttp.Route, body any) (domain.Token, error) {
	out, err := internalhttp.Send[TokenOut](ctx, a.client, route, internalhttp.WithJSONBody(body))
	if err != nil {
		return "", mapError(route, err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("request %s: %w: empty token", route.Name(), internalhttp.ErrDecoding)
	}

	return domain.Token(out.Token), nil
}
