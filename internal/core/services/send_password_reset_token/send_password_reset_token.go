package sendpasswordresettoken

import (
	c "authsvc/internal/core/domain/common"
	e "authsvc/internal/core/domain/errors"
	"authsvc/internal/core/domain/logging"
	"authsvc/internal/core/domain/user"
	"authsvc/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Email c.Email
}

type Result struct {
	Token user.ResetToken
}

type service struct {
	log                 logging.Logger
	userRepository      user.UserRepository
	resetTokenGenerator user.ResetTokenGenerator
	resetTokenSender    user.ResetTokenSender
	validDuration       time.Duration
	now                 func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	resetTokenGenerator user.ResetTokenGenerator,
	resetTokenSender user.ResetTokenSender,
	validDuration time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if resetTokenGenerator == nil {
		panic(e.NewNilArgumentError("resetTokenGenerator"))
	}
	if resetTokenSender == nil {
		panic(e.NewNilArgumentError("resetTokenSender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                 log,
		userRepository:      userRepository,
		resetTokenGenerator: resetTokenGenerator,
		resetTokenSender:    resetTokenSender,
		validDuration:       validDuration,
		now:                 now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(
			ctx,
			"User not found for password reset request.",
			logging.Entry("email", input.Email),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not get user by email.", logging.Entry("err", err))
		return result, err
	}

	token, err := s.resetTokenGenerator.GenerateResetToken()
	if err != nil {
		s.log.Error(ctx, "Could not generate reset token.", logging.Entry("err", err))
		return result, err
	}
	expiresAt := s.now().Add(s.validDuration)

	// A repeated request overwrites the previous token and expiry together,
	// invalidating any earlier reset link.
	err = s.userRepository.SetPasswordResetToken(ctx, u.ID, token, expiresAt)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not save reset token for user.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	u.ResetToken = c.NewOptional(token, true)
	u.ResetTokenExpiry = c.NewOptional(expiresAt, true)
	if err := s.resetTokenSender.SendResetToken(ctx, u, token); err != nil {
		s.log.Error(
			ctx,
			"Could not send reset token to user.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, user.ErrResetTokenDeliveryFailed
	}

	s.log.Info(
		ctx,
		"Password reset token has been sent.",
		logging.Entry("userID", u.ID),
		logging.Entry("expiresAt", expiresAt),
	)
	return Result{Token: token}, nil
}
