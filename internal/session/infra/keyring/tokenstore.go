package keyring

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/99designs/keyring"

	"github.com/klwxsrx/loopon-client/internal/session/domain"
	"github.com/klwxsrx/loopon-client/pkg/lazy"
)

const (
	ServiceName = "com.loopon.app"
	TokenKey    = "accessToken"

	tokenLabel = "LOOP:ON access token"
)

type Config struct {
	Backends []keyring.BackendType
	FileDir  string
	Password string
}

// Open configures the keyring so the secret never leaves the device: keychain items are not
// synchronizable and stay readable after the first unlock, the file backend is encrypted at rest.
func Open(config Config) (keyring.Keyring, error) {
	cfg := keyring.Config{
		ServiceName:                    ServiceName,
		AllowedBackends:                config.Backends,
		KeychainSynchronizable:         false,
		KeychainAccessibleWhenUnlocked: false,
		KeychainTrustApplication:       true,
		FileDir:                        config.FileDir,
		LibSecretCollectionName:        "loopon",
		KWalletAppID:                   ServiceName,
		KWalletFolder:                  "loopon",
	}
	if config.Password != "" {
		cfg.FilePasswordFunc = keyring.FixedStringPrompt(config.Password)
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return ring, nil
}

type tokenStore struct {
	ring lazy.Loader[keyring.Keyring]
}

func NewTokenStore(ring lazy.Loader[keyring.Keyring]) domain.TokenStore {
	return &tokenStore{ring: ring}
}

func (s *tokenStore) Save(_ context.Context, token domain.Token) error {
	ring, err := s.ring.Load()
	if err != nil {
		return err
	}

	err = removeItem(ring)
	if err != nil {
		return fmt.Errorf("remove previous token: %w", err)
	}

	err = ring.Set(keyring.Item{
		Key:                       TokenKey,
		Data:                      []byte(token),
		Label:                     tokenLabel,
		KeychainNotSynchronizable: true,
	})
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *tokenStore) Load(_ context.Context) (*domain.Token, error) {
	ring, err := s.ring.Load()
	if err != nil {
		return nil, err
	}

	item, err := ring.Get(TokenKey)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}
	if len(item.Data) == 0 {
		return nil, nil
	}

	token := domain.Token(item.Data)
	return &token, nil
}

func (s *tokenStore) Delete(_ context.Context) error {
	ring, err := s.ring.Load()
	if err != nil {
		return err
	}

	err = removeItem(ring)
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

func removeItem(ring keyring.Keyring) error {
	err := ring.Remove(TokenKey)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
