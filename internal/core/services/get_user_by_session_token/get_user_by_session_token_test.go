package getuserbysessiontoken

import (
	c "authsvc/internal/core/domain/common"
	"authsvc/internal/core/domain/logging"
	"authsvc/internal/core/domain/user"
	"authsvc/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const SESSION_TOKEN = "test-session-token"

type testEnv struct {
	log      *logging.FakeLogger
	userRepo *user.FakeUserRepository
	issuer   *user.FakeSessionTokenIssuer
}

func setupEnv() *testEnv {
	return &testEnv{
		log:      logging.NewFakeLogger(),
		userRepo: user.NewFakeUserRepository(),
		issuer:   user.NewFakeSessionTokenIssuer(SESSION_TOKEN),
	}
}

func (e *testEnv) createService() services.Service[Input, Result] {
	return New(e.log, e.userRepo, e.issuer)
}

func (e *testEnv) createLoggedInUser(t *testing.T) user.User {
	t.Helper()
	u, err := e.userRepo.Create(context.Background(), user.CreateUserInput{
		Name:         "Test",
		Email:        c.NewEmail("test@test.test"),
		PasswordHash: user.PasswordHash("test-password-hash"),
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	token, err := e.issuer.IssueToken(u.ID, u.Email)
	require.NoError(t, err)
	require.NoError(t, e.userRepo.SetSessionToken(context.Background(), u.ID, token))
	stored, err := e.userRepo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	return stored
}

func TestSuccess(t *testing.T) {
	env := setupEnv()
	service := env.createService()
	u := env.createLoggedInUser(t)

	result, err := service.Run(context.Background(), Input{Token: u.SessionToken.Value})

	require.NoError(t, err)
	require.Equal(t, u, result.User)
}

func TestUnknownToken(t *testing.T) {
	env := setupEnv()
	service := env.createService()
	env.createLoggedInUser(t)

	_, err := service.Run(context.Background(), Input{Token: "unknown-token"})

	require.ErrorIs(t, err, user.ErrInvalidSessionToken)
}

func TestSupersededTokenRejected(t *testing.T) {
	env := setupEnv()
	service := env.createService()
	u := env.createLoggedInUser(t)

	oldToken := u.SessionToken.Value
	env.issuer.Token = "newer-session-token"
	newToken, err := env.issuer.IssueToken(u.ID, u.Email)
	require.NoError(t, err)
	require.NoError(t, env.userRepo.SetSessionToken(context.Background(), u.ID, newToken))

	_, err = service.Run(context.Background(), Input{Token: oldToken})
	require.ErrorIs(t, err, user.ErrInvalidSessionToken)

	result, err := service.Run(context.Background(), Input{Token: newToken})
	require.NoError(t, err)
	require.Equal(t, u.ID, result.User.ID)
}
