package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/klwxsrx/loopon-client/internal/session/app/remote"
	"github.com/klwxsrx/loopon-client/internal/session/domain"
	"github.com/klwxsrx/loopon-client/pkg/log"
)

const credentialsMismatchMessage = "password does not match"

var (
	ErrCredentialsMismatch = errors.New(credentialsMismatchMessage)
	ErrSocialLoginFailed   = errors.New("social login failed")
	ErrUnknownProvider     = errors.New("unknown social provider")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrVerificationFailed  = errors.New("verification code is not valid")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrPasswordResetFailed = errors.New("password reset failed")
)

// FailureError carries the user facing message while keeping the real cause for logs.
// It matches both the reason and the cause with errors.Is.
type FailureError struct {
	Message string
	Reason  error
	Cause   error
}

func (e *FailureError) Error() string {
	return e.Message
}

func (e *FailureError) Unwrap() []error {
	return []error{e.Reason, e.Cause}
}

// SocialTokenProvider obtains the provider access token from the provider SDK.
type SocialTokenProvider func(ctx context.Context) (string, error)

type Session interface {
	MarkLoggedIn(ctx context.Context)
}

type Service struct {
	api     remote.AuthAPI
	tokens  domain.TokenStore
	session Session
	logger  log.Logger
}

func NewService(api remote.AuthAPI, tokens domain.TokenStore, session Session, logger log.Logger) *Service {
	return &Service{
		api:     api,
		tokens:  tokens,
		session: session,
		logger:  logger,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) error {
	token, err := s.api.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return s.credentialsFailure(ctx, "login", err)
	}

	err = s.startSession(ctx, token)
	if err != nil {
		return s.credentialsFailure(ctx, "login", err)
	}
	return nil
}

func (s *Service) SignUp(ctx context.Context, email, password, nickname string) error {
	token, err := s.api.SignUp(ctx, strings.TrimSpace(email), password, strings.TrimSpace(nickname))
	if err != nil {
		return s.credentialsFailure(ctx, "sign up", err)
	}

	err = s.startSession(ctx, token)
	if err != nil {
		return s.credentialsFailure(ctx, "sign up", err)
	}
	return nil
}

func (s *Service) SocialLogin(ctx context.Context, provider domain.SocialProvider, tokenProvider SocialTokenProvider) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}

	err := s.socialLogin(ctx, provider, tokenProvider)
	if err != nil {
		s.logger.WithError(err).WithField("provider", provider).Warn(ctx, "social login failed")
		return &FailureError{
			Message: fmt.Sprintf("%s login failed", strings.ToLower(string(provider))),
			Reason:  ErrSocialLoginFailed,
			Cause:   err,
		}
	}
	return nil
}

func (s *Service) socialLogin(ctx context.Context, provider domain.SocialProvider, tokenProvider SocialTokenProvider) error {
	providerToken, err := tokenProvider(ctx)
	if err != nil {
		return fmt.Errorf("get provider token: %w", err)
	}

	token, err := s.api.SocialLogin(ctx, provider, providerToken)
	if err != nil {
		return err
	}

	return s.startSession(ctx, token)
}

func (s *Service) RequestPasswordResetCode(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	err = s.api.RequestPasswordResetCode(ctx, email)
	if err != nil {
		return s.failure(ctx, ErrPasswordResetFailed, err)
	}
	return nil
}

func (s *Service) VerifyPasswordResetCode(ctx context.Context, email, code string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	if strings.TrimSpace(code) == "" {
		return ErrVerificationFailed
	}

	err = s.api.VerifyPasswordResetCode(ctx, email, strings.TrimSpace(code))
	if err != nil {
		return s.failure(ctx, ErrVerificationFailed, err)
	}
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, email, password, confirmation string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	if password == "" || password != confirmation {
		return ErrPasswordMismatch
	}

	err = s.api.ResetPassword(ctx, email, password)
	if err != nil {
		return s.failure(ctx, ErrPasswordResetFailed, err)
	}
	return nil
}

func (s *Service) startSession(ctx context.Context, token domain.Token) error {
	err := s.tokens.Save(ctx, token)
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	s.session.MarkLoggedIn(ctx)
	return nil
}

func (s *Service) credentialsFailure(ctx context.Context, operation string, err error) error {
	s.logger.WithError(err).WithField("operation", operation).Warn(ctx, "authentication failed")
	return &FailureError{
		Message: credentialsMismatchMessage,
		Reason:  ErrCredentialsMismatch,
		Cause:   err,
	}
}

func (s *Service) failure(ctx context.Context, reason, err error) error {
	s.logger.WithError(err).Warn(ctx, reason.Error())
	return &FailureError{
		Message: reason.Error(),
		Reason:  reason,
		Cause:   err,
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	address, err := mail.ParseAddress(email)
	if err != nil || address.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}
