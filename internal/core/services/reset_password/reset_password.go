package resetpassword

import (
	e "authsvc/internal/core/domain/errors"
	"authsvc/internal/core/domain/logging"
	"authsvc/internal/core/domain/user"
	"authsvc/internal/core/services"
	"context"
	"crypto/subtle"
	"errors"
	"time"
)

type Input struct {
	UserID      user.ID
	Token       user.ResetToken
	NewPassword user.RawPassword
}

type Result struct{}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	passwordHasher user.PasswordHasher
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		now:            now,
	}
}

// Run completes a pending password reset. An unknown user ID, a token
// mismatch and an expired token all surface as the same
// ErrInvalidOrExpiredResetToken so callers cannot probe which one it was.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByID(ctx, input.UserID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, user.ErrInvalidOrExpiredResetToken
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset.",
			logging.Entry("userID", input.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if !u.HasPendingReset(s.now()) {
		return result, user.ErrInvalidOrExpiredResetToken
	}
	if subtle.ConstantTimeCompare([]byte(u.ResetToken.Value), []byte(input.Token)) != 1 {
		return result, user.ErrInvalidOrExpiredResetToken
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash new password.", logging.Entry("err", err))
		return result, err
	}

	// The store clears the token only if it still matches, so the first of
	// two racing completions wins and the second observes a cleared token.
	err = s.userRepository.CompletePasswordReset(ctx, u.ID, input.Token, newPasswordHash)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrInvalidOrExpiredResetToken) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not complete password reset.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New password has been successfully set.",
		logging.Entry("userID", u.ID),
	)
	return result, nil
}
