package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/loopon-client/internal/session/app/auth"
	"github.com/klwxsrx/loopon-client/internal/session/app/remote"
	"github.com/klwxsrx/loopon-client/internal/session/app/remote/mock"
	"github.com/klwxsrx/loopon-client/internal/session/domain"
	"github.com/klwxsrx/loopon-client/internal/session/domain/stub"
	"github.com/klwxsrx/loopon-client/pkg/log"
)

type sessionSpy struct {
	marked int
}

func (s *sessionSpy) MarkLoggedIn(context.Context) {
	s.marked++
}

type fixture struct {
	api     *mock.AuthAPI
	tokens  *stub.TokenStore
	session *sessionSpy
	service *auth.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := fixture{
		api:     mock.NewAuthAPI(ctrl),
		tokens:  stub.NewTokenStore(nil),
		session: &sessionSpy{},
	}
	f.service = auth.NewService(f.api, f.tokens, f.session, log.NewStub())
	return f
}

func (f fixture) storedToken(t *testing.T) *domain.Token {
	t.Helper()
	token, err := f.tokens.Load(context.Background())
	require.NoError(t, err)
	return token
}

func TestService_Login_StartsSession(t *testing.T) {
	f := newFixture(t)
	f.api.EXPECT().Login(gomock.Any(), "user@loopon.app", "secret").Return(domain.Token("abc"), nil)

	err := f.service.Login(context.Background(), " user@loopon.app ", "secret")
	require.NoError(t, err)

	assert.Equal(t, domain.Token("abc"), *f.storedToken(t))
	assert.Equal(t, 1, f.session.marked)
}

func TestService_Login_ReturnsGenericMessage(t *testing.T) {
	tests := []struct {
		name   string
		apiErr error
	}{
		{name: "unauthorized", apiErr: remote.ErrUnauthorized},
		{name: "server_failure", apiErr: remote.ErrServerFailure},
		{name: "network", apiErr: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.api.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Token(""), tt.apiErr)

			err := f.service.Login(context.Background(), "user@loopon.app", "wrong")

			var failure *auth.FailureError
			require.ErrorAs(t, err, &failure)
			assert.Equal(t, "password does not match", failure.Error())
			assert.ErrorIs(t, err, auth.ErrCredentialsMismatch)
			assert.ErrorIs(t, err, tt.apiErr)
			assert.Nil(t, f.storedToken(t))
			assert.Zero(t, f.session.marked)
		})
	}
}

func TestService_Login_Fails_WhenTokenNotSaved(t *testing.T) {
	f := newFixture(t)
	f.tokens.SaveErr = errors.New("keychain locked")
	f.api.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Token("abc"), nil)

	err := f.service.Login(context.Background(), "user@loopon.app", "secret")

	assert.ErrorIs(t, err, auth.ErrCredentialsMismatch)
	assert.ErrorIs(t, err, f.tokens.SaveErr)
	assert.Zero(t, f.session.marked)
}

func TestService_SignUp_StartsSession(t *testing.T) {
	f := newFixture(t)
	f.api.EXPECT().SignUp(gomock.Any(), "new@loopon.app", "secret", "looper").Return(domain.Token("new"), nil)

	require.NoError(t, f.service.SignUp(context.Background(), "new@loopon.app", "secret", " looper "))

	assert.Equal(t, domain.Token("new"), *f.storedToken(t))
	assert.Equal(t, 1, f.session.marked)
}

func TestService_SocialLogin_Returns(t *testing.T) {
	tests := []struct {
		name          string
		provider      domain.SocialProvider
		tokenProvider auth.SocialTokenProvider
		prepare       func(api *mock.AuthAPI)
		expect        func(t *testing.T, f fixture, err error)
	}{
		{
			name:     "session_when_provider_accepted",
			provider: domain.SocialProviderKakao,
			tokenProvider: func(context.Context) (string, error) {
				return "kakao-token", nil
			},
			prepare: func(api *mock.AuthAPI) {
				api.EXPECT().SocialLogin(gomock.Any(), domain.SocialProviderKakao, "kakao-token").Return(domain.Token("abc"), nil)
			},
			expect: func(t *testing.T, f fixture, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.Token("abc"), *f.storedToken(t))
				assert.Equal(t, 1, f.session.marked)
			},
		},
		{
			name:     "provider_message_when_sdk_failed",
			provider: domain.SocialProviderApple,
			tokenProvider: func(context.Context) (string, error) {
				return "", errors.New("user cancelled")
			},
			prepare: func(*mock.AuthAPI) {},
			expect: func(t *testing.T, f fixture, err error) {
				assert.EqualError(t, err, "apple login failed")
				assert.ErrorIs(t, err, auth.ErrSocialLoginFailed)
				assert.Nil(t, f.storedToken(t))
			},
		},
		{
			name:     "provider_message_when_backend_rejected",
			provider: domain.SocialProviderKakao,
			tokenProvider: func(context.Context) (string, error) {
				return "kakao-token", nil
			},
			prepare: func(api *mock.AuthAPI) {
				api.EXPECT().SocialLogin(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Token(""), remote.ErrUnauthorized)
			},
			expect: func(t *testing.T, f fixture, err error) {
				assert.EqualError(t, err, "kakao login failed")
				assert.ErrorIs(t, err, remote.ErrUnauthorized)
				assert.Zero(t, f.session.marked)
			},
		},
		{
			name:     "unknown_provider",
			provider: domain.SocialProvider("NAVER"),
			tokenProvider: func(context.Context) (string, error) {
				return "token", nil
			},
			prepare: func(*mock.AuthAPI) {},
			expect: func(t *testing.T, _ fixture, err error) {
				assert.ErrorIs(t, err, auth.ErrUnknownProvider)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.prepare(f.api)

			err := f.service.SocialLogin(context.Background(), tt.provider, tt.tokenProvider)
			tt.expect(t, f, err)
		})
	}
}

func TestService_PasswordReset_ValidatesInput(t *testing.T) {
	tests := []struct {
		name   string
		call   func(s *auth.Service) error
		expect error
	}{
		{
			name: "request_code_with_invalid_email",
			call: func(s *auth.Service) error {
				return s.RequestPasswordResetCode(context.Background(), "not-an-email")
			},
			expect: auth.ErrInvalidEmail,
		},
		{
			name: "verify_with_display_name_email",
			call: func(s *auth.Service) error {
				return s.VerifyPasswordResetCode(context.Background(), "Loop <user@loopon.app>", "123456")
			},
			expect: auth.ErrInvalidEmail,
		},
		{
			name: "verify_with_empty_code",
			call: func(s *auth.Service) error {
				return s.VerifyPasswordResetCode(context.Background(), "user@loopon.app", " ")
			},
			expect: auth.ErrVerificationFailed,
		},
		{
			name: "reset_with_mismatched_confirmation",
			call: func(s *auth.Service) error {
				return s.ResetPassword(context.Background(), "user@loopon.app", "secret", "secreT")
			},
			expect: auth.ErrPasswordMismatch,
		},
		{
			name: "reset_with_empty_password",
			call: func(s *auth.Service) error {
				return s.ResetPassword(context.Background(), "user@loopon.app", "", "")
			},
			expect: auth.ErrPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			assert.ErrorIs(t, tt.call(f.service), tt.expect)
		})
	}
}

func TestService_PasswordReset_Flow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	gomock.InOrder(
		f.api.EXPECT().RequestPasswordResetCode(gomock.Any(), "user@loopon.app").Return(nil),
		f.api.EXPECT().VerifyPasswordResetCode(gomock.Any(), "user@loopon.app", "123456").Return(nil),
		f.api.EXPECT().ResetPassword(gomock.Any(), "user@loopon.app", "new-secret").Return(nil),
	)

	require.NoError(t, f.service.RequestPasswordResetCode(ctx, "user@loopon.app"))
	require.NoError(t, f.service.VerifyPasswordResetCode(ctx, "user@loopon.app", " 123456 "))
	require.NoError(t, f.service.ResetPassword(ctx, "user@loopon.app", "new-secret", "new-secret"))
	assert.Nil(t, f.storedToken(t))
}

func TestService_VerifyPasswordResetCode_WrapsBackendFailure(t *testing.T) {
	f := newFixture(t)
	f.api.EXPECT().VerifyPasswordResetCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(remote.ErrServerFailure)

	err := f.service.VerifyPasswordResetCode(context.Background(), "user@loopon.app", "000000")

	assert.EqualError(t, err, "verification code is not valid")
	assert.ErrorIs(t, err, remote.ErrServerFailure)
}
