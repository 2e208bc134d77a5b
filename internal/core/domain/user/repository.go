package user

import (
	c "authsvc/internal/core/domain/common"
	"context"
	"time"
)

type CreateUserInput struct {
	Name         string
	Email        c.Email
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

// UserRepository is the credential store. Every method mutates at most one
// record and the store is expected to apply each update atomically.
type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	SetSessionToken(ctx context.Context, id ID, token SessionToken) error
	// SetPasswordResetToken writes the token and its expiry in one update,
	// replacing any previously pending reset.
	SetPasswordResetToken(ctx context.Context, id ID, token ResetToken, expiresAt time.Time) error
	// CompletePasswordReset sets the new password hash and clears the reset
	// token and its expiry, but only if the stored token still equals the
	// presented one. Returns ErrInvalidOrExpiredResetToken if it does not,
	// so concurrent completions with the same token cannot both succeed.
	CompletePasswordReset(ctx context.Context, id ID, token ResetToken, newHash PasswordHash) error
}
