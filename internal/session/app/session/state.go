package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/klwxsrx/loopon-client/internal/session/app/remote"
	"github.com/klwxsrx/loopon-client/internal/session/domain"
	"github.com/klwxsrx/loopon-client/pkg/event"
	"github.com/klwxsrx/loopon-client/pkg/log"
	"github.com/klwxsrx/loopon-client/pkg/worker"
)

type Snapshot struct {
	IsLoggedIn                  bool
	IsFreshLogin                bool
	IsOnboardingCompleted       bool
	HasLoggedInBefore           bool
	HasValidatedSessionAtLaunch bool
	Nickname                    string
}

// State is the process wide session. One instance is created by the container and shared
// by everything that needs the session.
//
// The token store stays the source of truth for the token: the in-memory flags are a cache
// re-checked against the store whenever correctness matters. Every background completion
// carries the generation it started in, Logout bumps the generation so late results are dropped.
type State struct {
	tokens      domain.TokenStore
	preferences domain.Preferences
	users       remote.UserAPI
	dispatcher  event.Dispatcher
	pool        worker.Pool
	logger      log.Logger

	mutex        sync.Mutex
	isLoggedIn   bool
	isFreshLogin bool
	hasValidated bool
	nickname     string
	generation   uint64
}

func NewState(
	tokens domain.TokenStore,
	preferences domain.Preferences,
	users remote.UserAPI,
	dispatcher event.Dispatcher,
	pool worker.Pool,
	logger log.Logger,
) *State {
	return &State{
		tokens:      tokens,
		preferences: preferences,
		users:       users,
		dispatcher:  dispatcher,
		pool:        pool,
		logger:      logger,
	}
}

// HasValidToken is true when the user logged in during this process or a token is stored.
func (s *State) HasValidToken(ctx context.Context) bool {
	s.mutex.Lock()
	isLoggedIn := s.isLoggedIn
	s.mutex.Unlock()
	if isLoggedIn {
		return true
	}

	return s.hasStoredToken(ctx)
}

func (s *State) IsLoggedIn() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.isLoggedIn
}

// IsFreshLogin is true after an interactive login in this process, false after a relaunch.
func (s *State) IsFreshLogin() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.isFreshLogin
}

func (s *State) Nickname() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.nickname
}

func (s *State) IsOnboardingCompleted(ctx context.Context) bool {
	return s.getFlag(ctx, domain.FlagOnboardingCompleted)
}

func (s *State) HasLoggedInBefore(ctx context.Context) bool {
	return s.getFlag(ctx, domain.FlagHasLoggedInBefore)
}

func (s *State) Snapshot(ctx context.Context) Snapshot {
	s.mutex.Lock()
	snapshot := Snapshot{
		IsLoggedIn:                  s.isLoggedIn,
		IsFreshLogin:                s.isFreshLogin,
		HasValidatedSessionAtLaunch: s.hasValidated,
		Nickname:                    s.nickname,
	}
	s.mutex.Unlock()

	snapshot.IsOnboardingCompleted = s.IsOnboardingCompleted(ctx)
	snapshot.HasLoggedInBefore = s.HasLoggedInBefore(ctx)
	return snapshot
}

// MarkLoggedIn flips the session to logged in and fetches the profile in background.
func (s *State) MarkLoggedIn(ctx context.Context) {
	s.mutex.Lock()
	s.isLoggedIn = true
	s.isFreshLogin = true
	generation := s.generation
	s.mutex.Unlock()

	s.setFlag(ctx, domain.FlagHasLoggedInBefore, true)
	s.dispatch(ctx, domain.EventTokenStateChanged{Base: event.NewBase(), HasValidToken: true})
	s.scheduleProfileFetch(ctx, generation)
}

// ValidateSessionAtLaunchIfNeeded fetches the profile at most once per process lifetime
// (or until Logout), concurrent calls while the guard is set are dropped.
func (s *State) ValidateSessionAtLaunchIfNeeded(ctx context.Context) {
	if !s.hasStoredToken(ctx) {
		return
	}

	s.mutex.Lock()
	if s.hasValidated {
		s.mutex.Unlock()
		return
	}
	s.hasValidated = true
	generation := s.generation
	s.mutex.Unlock()

	s.scheduleProfileFetch(ctx, generation)
}

// Logout is idempotent. The in-memory session is cleared even if the token could not be deleted.
func (s *State) Logout(ctx context.Context) error {
	hadToken := s.hasStoredToken(ctx)
	deleteErr := s.tokens.Delete(ctx)

	s.mutex.Lock()
	wasLoggedIn := s.isLoggedIn
	s.isLoggedIn = false
	s.isFreshLogin = false
	s.hasValidated = false
	s.nickname = ""
	s.generation++
	s.mutex.Unlock()

	s.setFlag(ctx, domain.FlagOnboardingCompleted, false)

	if wasLoggedIn || hadToken {
		s.logger.Info(ctx, "session logged out")
		s.dispatch(ctx, domain.EventTokenStateChanged{Base: event.NewBase(), HasValidToken: false})
	}

	if deleteErr != nil {
		return fmt.Errorf("delete token: %w", deleteErr)
	}
	return nil
}

func (s *State) CompleteOnboarding(ctx context.Context) error {
	err := s.preferences.Set(ctx, domain.FlagOnboardingCompleted, true)
	if err != nil {
		return fmt.Errorf("complete onboarding: %w", err)
	}
	return nil
}

func (s *State) ResetOnboarding(ctx context.Context) error {
	err := s.preferences.Set(ctx, domain.FlagOnboardingCompleted, false)
	if err != nil {
		return fmt.Errorf("reset onboarding: %w", err)
	}
	return nil
}

func (s *State) scheduleProfileFetch(ctx context.Context, generation uint64) {
	ctx = context.WithoutCancel(ctx)
	s.pool.Do(func() {
		s.fetchProfile(ctx, generation)
	})
}

func (s *State) fetchProfile(ctx context.Context, generation uint64) {
	user, err := s.users.GetCurrent(ctx)
	if errors.Is(err, remote.ErrUnauthorized) {
		if s.isStale(generation) {
			return
		}

		s.logger.WithError(err).Warn(ctx, "profile fetch unauthorized, logging out")
		if err = s.Logout(ctx); err != nil {
			s.logger.WithError(err).Error(ctx, "failed to logout after unauthorized profile fetch")
		}
		return
	}
	if err != nil {
		s.logger.WithError(err).Warn(ctx, "failed to fetch user profile")
		return
	}

	hasToken := s.hasStoredToken(ctx)

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.generation != generation {
		return
	}
	s.nickname = user.Nickname
	if hasToken {
		s.isLoggedIn = true
	}
}

func (s *State) isStale(generation uint64) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.generation != generation
}

func (s *State) hasStoredToken(ctx context.Context) bool {
	token, err := s.tokens.Load(ctx)
	if err != nil {
		s.logger.WithError(err).Warn(ctx, "failed to load token")
		return false
	}
	return token != nil
}

func (s *State) getFlag(ctx context.Context, flag domain.Flag) bool {
	value, err := s.preferences.Get(ctx, flag)
	if err != nil {
		s.logger.WithError(err).WithField("flag", flag).Warn(ctx, "failed to read preference")
		return false
	}
	return value
}

func (s *State) setFlag(ctx context.Context, flag domain.Flag, value bool) {
	err := s.preferences.Set(ctx, flag, value)
	if err != nil {
		s.logger.WithError(err).WithField("flag", flag).Error(ctx, "failed to write preference")
	}
}

func (s *State) dispatch(ctx context.Context, evt event.Event) {
	err := s.dispatcher.Dispatch(ctx, evt)
	if err != nil {
		s.logger.WithError(err).Error(ctx, "failed to dispatch session event")
	}
}
