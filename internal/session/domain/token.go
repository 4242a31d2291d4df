package domain

import "context"

// Token is an opaque bearer credential issued by the backend.
type Token string

// TokenStore keeps at most one token. Absence of a token is a normal state:
// Load returns nil without error and Delete succeeds.
type TokenStore interface {
	Save(ctx context.Context, token Token) error
	Load(ctx context.Context) (*Token, error)
	Delete(ctx context.Context) error
}
