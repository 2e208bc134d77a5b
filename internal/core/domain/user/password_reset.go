package user

import "context"

// ResetTokenGenerator produces random, unpredictable, single-use reset
// tokens. A reset token is opaque and carries no user data.
type ResetTokenGenerator interface {
	GenerateResetToken() (ResetToken, error)
}

type ResetTokenSender interface {
	SendResetToken(ctx context.Context, u User, token ResetToken) error
}
