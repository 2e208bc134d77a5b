package session

import (
	c "authsvc/internal/core/domain/common"
	"authsvc/internal/core/domain/user"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWT issues HS256-signed session tokens. A token carries the user ID as
// its subject plus the email and expiry, so it is verifiable without a
// store lookup.
type JWT struct {
	secret        []byte
	validDuration time.Duration
	now           func() time.Time
}

func NewJWT(secret string, validDuration time.Duration, now func() time.Time) *JWT {
	return &JWT{
		secret:        []byte(secret),
		validDuration: validDuration,
		now:           now,
	}
}

func (j *JWT) IssueToken(id user.ID, email c.Email) (user.SessionToken, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(int64(id), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.validDuration)),
		},
		Email: string(email),
	})
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", err
	}
	return user.SessionToken(signed), nil
}

func (j *JWT) VerifyToken(token user.SessionToken) (user.ID, error) {
	parsedClaims := &claims{}
	parsed, err := jwt.ParseWithClaims(
		string(token),
		parsedClaims,
		func(t *jwt.Token) (interface{}, error) { return j.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.now),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return 0, user.ErrSessionTokenExpired
	}
	if err != nil || !parsed.Valid {
		return 0, user.ErrInvalidSessionToken
	}
	userID, err := strconv.ParseInt(parsedClaims.Subject, 10, 64)
	if err != nil {
		return 0, user.ErrInvalidSessionToken
	}
	return user.ID(userID), nil
}
