package user

import (
	c "authsvc/internal/core/domain/common"
)

// SessionTokenIssuer issues signed, self-describing session tokens bound to
// a user. A token carries the user ID and its expiry and is verifiable
// without a store lookup.
type SessionTokenIssuer interface {
	IssueToken(id ID, email c.Email) (SessionToken, error)
	// VerifyToken returns the user ID the token was issued for, or
	// ErrSessionTokenExpired / ErrInvalidSessionToken.
	VerifyToken(token SessionToken) (ID, error)
}
