package resetpassword

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

const OLD_PASSWORD = "old-password"
const NEW_PASSWORD = "new-password"
const RESET_TOKEN = "test-reset-token"

var NOW time.Time = time.Date(2022, 6, 6, 15, 30, 30, 0, time.UTC)

type testEnv struct {
	log      *logging.FakeLogger
	userRepo *user.FakeUserRepository
	hasher   *user.FakePasswordHasher
}

func setupEnv() *testEnv {
	return &testEnv{
		log:      logging.NewFakeLogger(),
		userRepo: user.NewFakeUserRepository(),
		hasher:   user.NewFakePasswordHasher(),
	}
}

func (e *testEnv) createService() services.Service[Input, Result] {
	return New(e.log, e.userRepo, e.hasher, func() time.Time { return NOW })
}

func (e *testEnv) createUserWithPendingReset(
	t *testing.T,
	email string,
	token string,
	expiresAt time.Time,
) user.User {
	t.Helper()
	hash, err := e.hasher.HashPassword(user.RawPassword(OLD_PASSWORD))
	require.NoError(t, err)
	u, err := e.userRepo.Create(context.Background(), user.CreateUserInput{
		Name:         "Test",
		Email:        c.NewEmail(email),
		PasswordHash: hash,
		CreatedAt:    NOW,
	})
	require.NoError(t, err)
	err = e.userRepo.SetPasswordResetToken(
		context.Background(),
		u.ID,
		user.ResetToken(token),
		expiresAt,
	)
	require.NoError(t, err)
	stored, err := e.userRepo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	return stored
}

func TestResetSuccess(t *testing.T) {
	// Setup ---
	env := setupEnv()
	service := env.createService()
	u := env.createUserWithPendingReset(t, "test@test.test", RESET_TOKEN, NOW.Add(time.Hour))

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		UserID:      u.ID,
		Token:       user.ResetToken(RESET_TOKEN),
		NewPassword: user.RawPassword(NEW_PASSWORD),
	})

	// Verify ---
	require.NoError(t, err)
	stored, err := env.userRepo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.False(t, stored.ResetToken.IsPresent)
	require.False(t, stored.ResetTokenExpiry.IsPresent)
	require.False(t, env.hasher.ValidatePassword(user.RawPassword(OLD_PASSWORD), stored.PasswordHash))
	require.True(t, env.hasher.ValidatePassword(user.RawPassword(NEW_PASSWORD), stored.PasswordHash))
}

func TestSecondAttemptWithSameTokenFails(t *testing.T) {
	env := setupEnv()
	service := env.createService()
	u := env.createUserWithPendingReset(t, "test@test.test", RESET_TOKEN, NOW.Add(time.Hour))

	_, err := service.Run(context.Background(), Input{
		UserID:      u.ID,
		Token:       user.ResetToken(RESET_TOKEN),
		NewPassword: user.RawPassword(NEW_PASSWORD),
	})
	require.NoError(t, err)

	_, err = service.Run(context.Background(), Input{
		UserID:      u.ID,
		Token:       user.ResetToken(RESET_TOKEN),
		NewPassword: user.RawPassword("yet-another-password"),
	})
	require.ErrorIs(t, err, user.ErrInvalidOrExpiredResetToken)

	stored, err := env.userRepo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.True(t, env.hasher.ValidatePassword(user.RawPassword(NEW_PASSWORD), stored.PasswordHash))
}

func TestUndifferentiatedFailures(t *testing.T) {
	cases := []struct {
		id     string
		userID func(u, other user.User) user.ID
		token  string
		expiry time.Time
	}{
		{
			id:     "wrong token",
			userID: func(u, other user.User) user.ID { return u.ID },
			token:  "wrong-token",
			expiry: NOW.Add(time.Hour),
		},
		{
			id:     "expired token",
			userID: func(u, other user.User) user.ID { return u.ID },
			token:  RESET_TOKEN,
			expiry: NOW.Add(-time.Minute),
		},
		{
			id:     "unknown user id",
			userID: func(u, other user.User) user.ID { return u.ID + other.ID + 1 },
			token:  RESET_TOKEN,
			expiry: NOW.Add(time.Hour),
		},
		{
			id:     "token of another record",
			userID: func(u, other user.User) user.ID { return other.ID },
			token:  RESET_TOKEN,
			expiry: NOW.Add(time.Hour),
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			env := setupEnv()
			service := env.createService()
			u := env.createUserWithPendingReset(t, "test@test.test", RESET_TOKEN, testcase.expiry)
			other := env.createUserWithPendingReset(
				t,
				"other@test.test",
				"other-reset-token",
				NOW.Add(time.Hour),
			)

			// Exercise ---
			_, err := service.Run(context.Background(), Input{
				UserID:      testcase.userID(u, other),
				Token:       user.ResetToken(testcase.token),
				NewPassword: user.RawPassword(NEW_PASSWORD),
			})

			// Verify ---
			require.ErrorIs(t, err, user.ErrInvalidOrExpiredResetToken)
			stored, getErr := env.userRepo.GetByID(context.Background(), u.ID)
			require.NoError(t, getErr)
			require.True(
				t,
				env.hasher.ValidatePassword(user.RawPassword(OLD_PASSWORD), stored.PasswordHash),
			)
		})
	}
}
