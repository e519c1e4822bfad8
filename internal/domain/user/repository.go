package user

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, params CreateUserParams) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	SearchByName(ctx context.Context, term string) ([]*User, error)
	SearchByEmail(ctx context.Context, term string) ([]*User, error)
	Update(ctx context.Context, id string, params UpdateUserParams) (*User, error)
	Delete(ctx context.Context, id string) error

	// SetRefreshToken persists the active refresh token after a login,
	// replacing whatever token was active before.
	SetRefreshToken(ctx context.Context, id, token string) error

	// RotateRefreshToken swaps oldToken for newToken only if oldToken is
	// still the persisted one. Returns ErrNotFound when the swap loses
	// the race or the user is gone.
	RotateRefreshToken(ctx context.Context, id, oldToken, newToken string) error

	// ClearSession drops the active refresh token and stamps the last
	// access time, invalidating access tokens issued before it.
	ClearSession(ctx context.Context, id string) (*User, error)
}
