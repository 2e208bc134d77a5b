package register

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

const NAME = "Ann"
const EMAIL = "ann@x.com"
const PASSWORD = "test-password"

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	PasswordHasher *user.FakePasswordHasher
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.PasswordHasher,
		func() time.Time { return NOW },
	)
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	result, err := s.Service.Run(
		context.Background(),
		Input{Name: NAME, Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD)},
	)

	s.Nil(err)
	s.Equal(NAME, result.User.Name)
	s.Equal(c.Email(EMAIL), result.User.Email)
	s.NotEqual(user.PasswordHash(PASSWORD), result.User.PasswordHash)
	s.True(s.PasswordHasher.ValidatePassword(user.RawPassword(PASSWORD), result.User.PasswordHash))
	s.False(result.User.SessionToken.IsPresent)
	s.False(result.User.ResetToken.IsPresent)
	s.False(result.User.ResetTokenExpiry.IsPresent)
}

func (s *testSuite) TestEmailAlreadyExists() {
	first, err := s.Service.Run(
		context.Background(),
		Input{Name: NAME, Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD)},
	)
	s.Nil(err)

	_, err = s.Service.Run(
		context.Background(),
		Input{Name: "Other", Email: c.NewEmail(EMAIL), Password: user.RawPassword("other-password")},
	)

	s.True(errors.Is(err, user.ErrEmailAlreadyExists))
	stored, err := s.UserRepository.GetByID(context.Background(), first.User.ID)
	s.Nil(err)
	s.Equal(first.User, stored)
}

func (s *testSuite) TestRepositoryError() {
	s.UserRepository.ReturnError = true

	_, err := s.Service.Run(
		context.Background(),
		Input{Name: NAME, Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD)},
	)

	s.NotNil(err)
	s.False(errors.Is(err, user.ErrEmailAlreadyExists))
}
