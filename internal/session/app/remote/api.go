//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "AuthAPI=AuthAPI,UserAPI=UserAPI,JourneyAPI=JourneyAPI"
package remote

import (
	"context"
	"errors"

	"github.com/klwxsrx/loopon-client/internal/session/domain"
)

var (
	ErrUnauthorized     = errors.New("session is not authorized")
	ErrNoCurrentJourney = errors.New("current journey not found")
	ErrServerFailure    = errors.New("server failure")
)

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (domain.Token, error)
	SocialLogin(ctx context.Context, provider domain.SocialProvider, providerToken string) (domain.Token, error)
	SignUp(ctx context.Context, email, password, nickname string) (domain.Token, error)
	RequestPasswordResetCode(ctx context.Context, email string) error
	VerifyPasswordResetCode(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, password string) error
}

type UserAPI interface {
	GetCurrent(ctx context.Context) (domain.User, error)
}

// JourneyAPI reports ErrNoCurrentJourney for 404 and ErrServerFailure for 500 of the current journey check.
type JourneyAPI interface {
	CheckCurrent(ctx context.Context) error
	GetCurrent(ctx context.Context) (domain.Journey, error)
}
