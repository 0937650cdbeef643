package repository

import (
	"context"

	"github.com/google/uuid"

	"studentapi/internal/model"
)

// UserRepository defines data access for user accounts.
type UserRepository interface {
	// Add inserts a user. It returns false when the user name is already taken.
	Add(ctx context.Context, u model.User) (bool, error)

	GetByUserName(ctx context.Context, userName string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// ChangePassword stores a new password hash and returns the number of affected rows.
	ChangePassword(ctx context.Context, userID int64, passwordHash string) (int64, error)
}

// TokenRepository stores issued bearer tokens. Expired tokens are never purged.
type TokenRepository interface {
	// Add stores the token and returns its id.
	Add(ctx context.Context, t model.Token) (int64, error)

	// GetByCode returns the token with the given code or nil.
	GetByCode(ctx context.Context, code uuid.UUID) (*model.Token, error)
}
