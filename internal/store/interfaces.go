package store

import "context"

// TokenKey is the storage key of the session token in every backend.
const TokenKey = "token"

//go:generate mockgen -source=interfaces.go -destination=../mock/token_storage_mock.go -package=mock

// TokenStorage persists the single session token of the client.
//
// Load returns [ErrTokenNotFound] when no token is stored. Delete of a missing
// token is a no-op. Writers are not coordinated; the last write wins.
type TokenStorage interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}
