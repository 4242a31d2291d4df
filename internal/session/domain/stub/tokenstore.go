package stub

import (
	"context"
	"sync"

	"github.com/klwxsrx/loopon-client/internal/session/domain"
)

type TokenStore struct {
	mutex sync.Mutex
	token *domain.Token

	SaveErr   error
	LoadErr   error
	DeleteErr error
}

func NewTokenStore(token *domain.Token) *TokenStore {
	return &TokenStore{token: token}
}

func (s *TokenStore) Save(_ context.Context, token domain.Token) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.token = &token
	return nil
}

func (s *TokenStore) Load(context.Context) (*domain.Token, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.token == nil {
		return nil, nil
	}
	token := *s.token
	return &token, nil
}

func (s *TokenStore) Delete(context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.token = nil
	return nil
}
