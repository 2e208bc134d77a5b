package login

import (
	c "authsvc/internal/core/domain/common"
	"authsvc/internal/core/domain/logging"
	"authsvc/internal/core/domain/user"
	"authsvc/internal/core/services"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const EMAIL = "test@test.test"
const PASSWORD = "test-password"
const SESSION_TOKEN = "test-session-token"

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger             *logging.FakeLogger
	UserRepository     *user.FakeUserRepository
	PasswordHasher     *user.FakePasswordHasher
	SessionTokenIssuer *user.FakeSessionTokenIssuer
	Service            services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.SessionTokenIssuer = user.NewFakeSessionTokenIssuer(SESSION_TOKEN)
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.PasswordHasher,
		suite.SessionTokenIssuer,
	)
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	createdUser := s.createUser()

	result, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD)},
	)

	s.Nil(err)
	s.Equal(user.SessionToken(SESSION_TOKEN), result.Token)

	userID, err := s.SessionTokenIssuer.VerifyToken(result.Token)
	s.Nil(err)
	s.Equal(createdUser.ID, userID)

	stored, err := s.UserRepository.GetByID(context.Background(), createdUser.ID)
	s.Nil(err)
	s.True(stored.SessionToken.IsPresent)
	s.Equal(result.Token, stored.SessionToken.Value)
}

func (s *testSuite) TestTokenOverwrittenOnRepeatedLogin() {
	createdUser := s.createUser()

	_, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD)},
	)
	s.Nil(err)

	s.SessionTokenIssuer.Token = "other-session-token"
	result, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD)},
	)
	s.Nil(err)

	stored, err := s.UserRepository.GetByID(context.Background(), createdUser.ID)
	s.Nil(err)
	s.Equal(result.Token, stored.SessionToken.Value)
}

func (s *testSuite) TestInvalidPassword() {
	createdUser := s.createUser()

	_, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword("invalid-password")},
	)

	s.True(errors.Is(err, user.ErrInvalidCredentials))
	stored, err := s.UserRepository.GetByID(context.Background(), createdUser.ID)
	s.Nil(err)
	s.False(stored.SessionToken.IsPresent)
}

func (s *testSuite) TestUnknownEmail() {
	s.createUser()

	_, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL + "test"), Password: user.RawPassword(PASSWORD)},
	)

	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) createUser() user.User {
	s.T().Helper()
	password, err := s.PasswordHasher.HashPassword(user.RawPassword(PASSWORD))
	if err != nil {
		s.FailNow(err.Error())
	}
	u, err := s.UserRepository.Create(
		context.Background(),
		user.CreateUserInput{
			Name:         "Test",
			Email:        c.NewEmail(EMAIL),
			PasswordHash: password,
			CreatedAt:    NOW,
		},
	)
	if err != nil {
		s.FailNow(err.Error())
	}
	return u
}
