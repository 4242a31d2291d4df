package keyring_test

import (
	"context"
	"errors"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/loopon-client/internal/session/domain"
	sessionkeyring "github.com/klwxsrx/loopon-client/internal/session/infra/keyring"
	"github.com/klwxsrx/loopon-client/pkg/lazy"
)

func newStore() (domain.TokenStore, *keyring.ArrayKeyring) {
	ring := keyring.NewArrayKeyring(nil)
	return sessionkeyring.NewTokenStore(lazy.Value[keyring.Keyring](ring)), ring
}

func TestTokenStore_Save_OverwritesPreviousToken(t *testing.T) {
	ctx := context.Background()
	store, ring := newStore()

	require.NoError(t, store.Save(ctx, "t1"))
	require.NoError(t, store.Save(ctx, "t2"))

	token, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, domain.Token("t2"), *token)

	keys, err := ring.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{sessionkeyring.TokenKey}, keys)

	item, err := ring.Get(sessionkeyring.TokenKey)
	require.NoError(t, err)
	assert.True(t, item.KeychainNotSynchronizable)
}

func TestTokenStore_Load_ReturnsNilWithoutToken(t *testing.T) {
	store, _ := newStore()

	token, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, token)
}

func TestTokenStore_Delete_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore()

	require.NoError(t, store.Delete(ctx))

	require.NoError(t, store.Save(ctx, "t1"))
	require.NoError(t, store.Delete(ctx))
	require.NoError(t, store.Delete(ctx))

	token, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Nil(t, token)
}

func TestTokenStore_ReturnsKeyringOpenError(t *testing.T) {
	store := sessionkeyring.NewTokenStore(lazy.New(func() (keyring.Keyring, error) {
		return nil, errors.New("no backend")
	}))

	_, err := store.Load(context.Background())
	assert.ErrorContains(t, err, "no backend")
	assert.Error(t, store.Save(context.Background(), "t1"))
	assert.Error(t, store.Delete(context.Background()))
}

func TestOpen_FileBackend(t *testing.T) {
	ring, err := sessionkeyring.Open(sessionkeyring.Config{
		Backends: []keyring.BackendType{keyring.FileBackend},
		FileDir:  t.TempDir(),
		Password: "test-password",
	})
	require.NoError(t, err)

	ctx := context.Background()
	store := sessionkeyring.NewTokenStore(lazy.Value(ring))
	require.NoError(t, store.Save(ctx, "persisted"))

	token, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, domain.Token("persisted"), *token)
}
