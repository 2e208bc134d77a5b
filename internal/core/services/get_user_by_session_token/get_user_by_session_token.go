package getuserbysessiontoken

import (
	e "authsvc/internal/core/domain/errors"
	"authsvc/internal/core/domain/logging"
	"authsvc/internal/core/domain/user"
	"authsvc/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Token user.SessionToken
}

type Result struct {
	User user.User
}

type service struct {
	log                logging.Logger
	userRepository     user.UserRepository
	sessionTokenIssuer user.SessionTokenIssuer
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	sessionTokenIssuer user.SessionTokenIssuer,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if sessionTokenIssuer == nil {
		panic(e.NewNilArgumentError("sessionTokenIssuer"))
	}
	return &service{
		log:                log,
		userRepository:     userRepository,
		sessionTokenIssuer: sessionTokenIssuer,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	userID, err := s.sessionTokenIssuer.VerifyToken(input.Token)
	if err != nil {
		return result, err
	}
	u, err := s.userRepository.GetByID(ctx, userID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, user.ErrInvalidSessionToken
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user by session token.",
			logging.Entry("userID", userID),
			logging.Entry("err", err),
		)
		return result, err
	}
	// Single active session per user: only the most recently issued token
	// is accepted.
	if !u.SessionToken.IsPresent || u.SessionToken.Value != input.Token {
		return result, user.ErrInvalidSessionToken
	}
	return Result{User: u}, nil
}
