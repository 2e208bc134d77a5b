package user

import (
	c "authsvc/internal/core/domain/common"
	e "authsvc/internal/core/domain/errors"
	"fmt"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type SessionToken string

type ResetToken string

// User is the credential record for one registered identity. The email is
// unique and immutable once created. ResetToken and ResetTokenExpiry are
// present only while a password reset is pending and are always written
// together.
type User struct {
	ID               ID
	Name             string
	Email            c.Email
	PasswordHash     PasswordHash
	SessionToken     c.Optional[SessionToken]
	ResetToken       c.Optional[ResetToken]
	ResetTokenExpiry c.Optional[time.Time]
	CreatedAt        time.Time
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	if u.ResetToken.IsPresent != u.ResetTokenExpiry.IsPresent {
		return e.NewInvalidStateError(
			fmt.Sprintf("reset token and expiry are not set together for user %d", u.ID),
		)
	}
	return nil
}

// HasPendingReset reports whether a reset token is set and not yet expired
// at the given moment.
func (u *User) HasPendingReset(now time.Time) bool {
	if !u.ResetToken.IsPresent || !u.ResetTokenExpiry.IsPresent {
		return false
	}
	return u.ResetTokenExpiry.Value.After(now)
}
